package service

import (
	"context"
	"errors"

	"github.com/jonathan/ats-optimizer/internal/logging"
	"github.com/jonathan/ats-optimizer/internal/types"
	"github.com/sirupsen/logrus"
)

// Fallback tries Primary first and runs Secondary when it fails. A nil
// Primary goes straight to Secondary.
type Fallback struct {
	Primary   Service
	Secondary Service
	Log       *logrus.Logger
}

var _ Service = (*Fallback)(nil)

// NewFallback returns a remote-first service that falls back to local execution.
func NewFallback(primary Service, log *logrus.Logger) *Fallback {
	return &Fallback{Primary: primary, Secondary: Local{}, Log: log}
}

func (f *Fallback) secondary() Service {
	if f.Secondary == nil {
		return Local{}
	}
	return f.Secondary
}

// shouldFallBack logs err and reports whether the secondary should run.
// Input errors from parsing are final and are not retried locally.
func (f *Fallback) shouldFallBack(op string, err error) bool {
	if errors.Is(err, ErrEmptyText) {
		return false
	}
	logging.OrDiscard(f.Log).WithError(err).WithField("operation", op).
		Warn("remote service unavailable, using local fallback")
	return true
}

// ExtractKeywords implements Service.
func (f *Fallback) ExtractKeywords(ctx context.Context, jobDescription string) (*types.KeywordSet, error) {
	if f.Primary != nil {
		ks, err := f.Primary.ExtractKeywords(ctx, jobDescription)
		if err == nil {
			return ks, nil
		}
		f.shouldFallBack("extract-keywords", err)
	}
	return f.secondary().ExtractKeywords(ctx, jobDescription)
}

// CalculateScore implements Service.
func (f *Fallback) CalculateScore(ctx context.Context, r *types.StructuredResume, ks *types.KeywordSet) (*types.ScoreResult, error) {
	if f.Primary != nil {
		score, err := f.Primary.CalculateScore(ctx, r, ks)
		if err == nil {
			return score, nil
		}
		f.shouldFallBack("calculate-score", err)
	}
	return f.secondary().CalculateScore(ctx, r, ks)
}

// OptimizeResume implements Service.
func (f *Fallback) OptimizeResume(ctx context.Context, r *types.StructuredResume, ks *types.KeywordSet) (*Optimized, error) {
	if f.Primary != nil {
		out, err := f.Primary.OptimizeResume(ctx, r, ks)
		if err == nil {
			return out, nil
		}
		f.shouldFallBack("optimize-resume", err)
	}
	return f.secondary().OptimizeResume(ctx, r, ks)
}

// ParseResumeText implements Service.
func (f *Fallback) ParseResumeText(ctx context.Context, text string) (*types.StructuredResume, error) {
	if f.Primary != nil {
		r, err := f.Primary.ParseResumeText(ctx, text)
		if err == nil {
			return r, nil
		}
		if !f.shouldFallBack("parse-text", err) {
			return nil, err
		}
	}
	return f.secondary().ParseResumeText(ctx, text)
}

// GetSuggestions implements Service.
func (f *Fallback) GetSuggestions(ctx context.Context, resumeSkills []string, ks *types.KeywordSet) ([]types.Suggestion, error) {
	if f.Primary != nil {
		s, err := f.Primary.GetSuggestions(ctx, resumeSkills, ks)
		if err == nil {
			return s, nil
		}
		f.shouldFallBack("suggestions", err)
	}
	return f.secondary().GetSuggestions(ctx, resumeSkills, ks)
}
