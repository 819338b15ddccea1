// Package service exposes the analyser operations behind one interface so
// callers can run them in-process or against a remote ats_agent server.
package service

import (
	"context"
	"errors"

	"github.com/jonathan/ats-optimizer/internal/keywords"
	"github.com/jonathan/ats-optimizer/internal/optimizer"
	"github.com/jonathan/ats-optimizer/internal/parsing"
	"github.com/jonathan/ats-optimizer/internal/scoring"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// ErrEmptyText is returned when there is no resume text to parse.
var ErrEmptyText = errors.New("no text provided")

// Optimized is the result of an optimization pass together with the new
// score and a before/after comparison.
type Optimized struct {
	OptimizedResume *types.OptimizationResult `json:"optimizedResume"`
	Score           types.ScoreResult         `json:"score"`
	Comparison      *types.Comparison         `json:"comparison,omitempty"`
}

// Service is an abstraction over where the analyser runs
type Service interface {
	// ExtractKeywords mines a job description.
	ExtractKeywords(ctx context.Context, jobDescription string) (*types.KeywordSet, error)
	// CalculateScore scores a resume against a keyword set.
	CalculateScore(ctx context.Context, r *types.StructuredResume, ks *types.KeywordSet) (*types.ScoreResult, error)
	// OptimizeResume returns an optimized copy of r and its new score.
	OptimizeResume(ctx context.Context, r *types.StructuredResume, ks *types.KeywordSet) (*Optimized, error)
	// ParseResumeText turns plain resume text into a structured resume.
	ParseResumeText(ctx context.Context, text string) (*types.StructuredResume, error)
	// GetSuggestions lists job keywords missing from resumeSkills.
	GetSuggestions(ctx context.Context, resumeSkills []string, ks *types.KeywordSet) ([]types.Suggestion, error)
}

// Local runs every operation in-process.
type Local struct{}

var _ Service = Local{}

// ExtractKeywords implements Service.
func (Local) ExtractKeywords(_ context.Context, jobDescription string) (*types.KeywordSet, error) {
	return keywords.Extract(jobDescription), nil
}

// CalculateScore implements Service.
func (Local) CalculateScore(_ context.Context, r *types.StructuredResume, ks *types.KeywordSet) (*types.ScoreResult, error) {
	score := scoring.CalculateScore(r, ks)
	return &score, nil
}

// OptimizeResume implements Service. A nil resume is optimized as an empty one.
func (Local) OptimizeResume(_ context.Context, r *types.StructuredResume, ks *types.KeywordSet) (*Optimized, error) {
	if r == nil {
		r = types.NewStructuredResume()
	}
	opt := optimizer.OptimizeResume(r, ks)
	cmp := optimizer.CompareVersions(r, opt.Resume(), opt, ks)
	return &Optimized{
		OptimizedResume: opt,
		Score:           scoring.CalculateScore(opt.Resume(), ks),
		Comparison:      &cmp,
	}, nil
}

// ParseResumeText implements Service.
func (Local) ParseResumeText(_ context.Context, text string) (*types.StructuredResume, error) {
	r := parsing.ParseResumeText(text)
	if r == nil {
		return nil, ErrEmptyText
	}
	return r, nil
}

// GetSuggestions implements Service.
func (Local) GetSuggestions(_ context.Context, resumeSkills []string, ks *types.KeywordSet) ([]types.Suggestion, error) {
	return keywords.GetSuggestions(resumeSkills, ks), nil
}
