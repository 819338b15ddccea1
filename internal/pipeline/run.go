// Package pipeline provides the high-level orchestration of an analysis run:
// job posting in, keywords, score, optimized resume and display projection out.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-optimizer/internal/fetch"
	"github.com/jonathan/ats-optimizer/internal/generator"
	"github.com/jonathan/ats-optimizer/internal/ingestion"
	"github.com/jonathan/ats-optimizer/internal/keywords"
	"github.com/jonathan/ats-optimizer/internal/logging"
	"github.com/jonathan/ats-optimizer/internal/optimizer"
	"github.com/jonathan/ats-optimizer/internal/schemas"
	"github.com/jonathan/ats-optimizer/internal/service"
	"github.com/jonathan/ats-optimizer/internal/types"
)

var (
	// ErrNoJob is returned when no job posting source is given.
	ErrNoJob = errors.New("no job posting provided")
	// ErrNoResume is returned when no resume source is given.
	ErrNoResume = errors.New("no resume provided")
)

// ProgressEvent represents a progress update during pipeline execution
type ProgressEvent struct {
	Step     string `json:"step"`
	Category string `json:"category"`
	Message  string `json:"message"`
	RunID    string `json:"run_id,omitempty"`
	Content  any    `json:"content,omitempty"`
}

// ProgressCallback is called when pipeline progress occurs. Calls are
// serialized.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the pipeline. Exactly one job
// source and at least one resume source must be set.
type RunOptions struct {
	JobPath string
	JobURL  string
	JobText string

	// ResumePath is parsed as text, or decoded against the resume schema
	// when it ends in .json.
	ResumePath string
	ResumeText string
	Resume     *types.StructuredResume

	UseBrowser bool

	// Service runs the analysis; nil means in-process.
	Service service.Service
	// Ingester fetches JobURL; nil builds one from UseBrowser.
	Ingester   *ingestion.Ingester
	Log        *logrus.Logger
	OnProgress ProgressCallback
	Now        func() time.Time
}

// Result holds every artifact of a run.
type Result struct {
	RunID       string                    `json:"runId"`
	JobSource   *ingestion.Metadata       `json:"jobSource,omitempty"`
	Keywords    *types.KeywordSet         `json:"keywords"`
	Resume      *types.StructuredResume   `json:"resume"`
	ScoreBefore types.ScoreResult         `json:"scoreBefore"`
	Optimized   *types.OptimizationResult `json:"optimizedResume"`
	ScoreAfter  types.ScoreResult         `json:"scoreAfter"`
	Comparison  types.Comparison          `json:"comparison"`
	Suggestions []types.Suggestion        `json:"suggestions"`
	Display     types.DisplayResume       `json:"display"`
}

// run carries the state of one Run call.
type run struct {
	opts RunOptions
	id   string
	svc  service.Service
	log  *logrus.Entry
	mu   sync.Mutex
}

// emit calls the progress callback if configured
func (r *run) emit(step, message string, content any) {
	r.log.WithField("step", step).Debug(message)
	if r.opts.OnProgress == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opts.OnProgress(ProgressEvent{
		Step:     step,
		Category: categoryOf(step),
		Message:  message,
		RunID:    r.id,
		Content:  content,
	})
}

// Run executes an analysis. The job branch (ingest, extract keywords) and
// the resume branch (load or parse) run concurrently; scoring, optimization
// and comparison follow once both are done.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	if err := validateSources(opts); err != nil {
		return nil, err
	}

	r := &run{opts: opts, id: uuid.New().String(), svc: opts.Service}
	if r.svc == nil {
		r.svc = service.Local{}
	}
	r.log = logging.OrDiscard(opts.Log).WithField("run_id", r.id)
	r.log.Info("starting analysis run")

	res := &Result{RunID: r.id}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		text, meta, err := r.ingestJob(gCtx)
		if err != nil {
			return fmt.Errorf("job ingestion failed: %w", err)
		}
		res.JobSource = meta
		r.emit(StepIngestJob, "Ingested job posting", meta)

		ks, err := r.svc.ExtractKeywords(gCtx, text)
		if err != nil {
			return fmt.Errorf("keyword extraction failed: %w", err)
		}
		res.Keywords = ks
		r.emit(StepExtractKeywords, fmt.Sprintf("Extracted %d keywords", len(ks.All)), ks)
		return nil
	})

	g.Go(func() error {
		resume, err := r.loadResume(gCtx)
		if err != nil {
			return fmt.Errorf("resume loading failed: %w", err)
		}
		res.Resume = resume
		r.emit(StepLoadResume, "Loaded resume", resume)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	before, err := r.svc.CalculateScore(ctx, res.Resume, res.Keywords)
	if err != nil {
		return nil, fmt.Errorf("scoring failed: %w", err)
	}
	res.ScoreBefore = *before
	r.emit(StepScoreResume, fmt.Sprintf("Scored resume: %d/100", before.Overall), before)

	out, err := r.svc.OptimizeResume(ctx, res.Resume, res.Keywords)
	if err != nil {
		return nil, fmt.Errorf("optimization failed: %w", err)
	}
	res.Optimized = out.OptimizedResume
	res.ScoreAfter = out.Score
	r.emit(StepOptimizeResume, fmt.Sprintf("Made %d changes", len(out.OptimizedResume.Changes)), out.OptimizedResume)

	if out.Comparison != nil {
		res.Comparison = *out.Comparison
	} else {
		res.Comparison = optimizer.CompareVersions(res.Resume, res.Optimized.Resume(), res.Optimized, res.Keywords)
	}
	r.emit(StepCompare, fmt.Sprintf("Score %d → %d", res.Comparison.BeforeScore, res.Comparison.AfterScore), res.Comparison)

	suggestions, err := r.svc.GetSuggestions(ctx, keywords.ResumeSkills(res.Optimized.Resume()), res.Keywords)
	if err != nil {
		return nil, fmt.Errorf("suggestions failed: %w", err)
	}
	res.Suggestions = suggestions
	r.emit(StepSuggestions, fmt.Sprintf("%d skills to consider", len(suggestions)), suggestions)

	res.Display = generator.FormatForDisplay(res.Optimized.Resume())
	r.emit(StepDisplay, "Prepared display projection", nil)

	r.log.WithFields(logrus.Fields{
		"before": res.ScoreBefore.Overall,
		"after":  res.ScoreAfter.Overall,
	}).Info("analysis run complete")
	return res, nil
}

func validateSources(opts RunOptions) error {
	if opts.JobPath != "" && opts.JobURL != "" {
		return fmt.Errorf("job path and job URL are mutually exclusive")
	}
	if opts.JobPath == "" && opts.JobURL == "" && strings.TrimSpace(opts.JobText) == "" {
		return ErrNoJob
	}
	if opts.ResumePath == "" && opts.ResumeText == "" && opts.Resume == nil {
		return ErrNoResume
	}
	return nil
}

func (r *run) now() time.Time {
	if r.opts.Now != nil {
		return r.opts.Now()
	}
	return time.Now()
}

func (r *run) ingestJob(ctx context.Context) (string, *ingestion.Metadata, error) {
	switch {
	case r.opts.JobURL != "":
		in := r.opts.Ingester
		if in == nil {
			in = &ingestion.Ingester{Log: r.opts.Log, Now: r.opts.Now}
			if r.opts.UseBrowser {
				in.Renderer = fetch.NewBrowserRenderer(r.opts.Log)
			}
		}
		return in.IngestFromURL(ctx, r.opts.JobURL)
	case r.opts.JobPath != "":
		return ingestion.IngestFromFile(r.opts.JobPath)
	default:
		text := ingestion.CleanText(r.opts.JobText)
		return text, ingestion.NewMetadata(text, "inline", r.now()), nil
	}
}

func (r *run) loadResume(ctx context.Context) (*types.StructuredResume, error) {
	switch {
	case r.opts.Resume != nil:
		out := r.opts.Resume.Clone()
		out.EnsureDefaults()
		return out, nil
	case r.opts.ResumePath != "" && strings.EqualFold(filepath.Ext(r.opts.ResumePath), ".json"):
		data, err := readFile(r.opts.ResumePath)
		if err != nil {
			return nil, err
		}
		return schemas.DecodeResume(data)
	case r.opts.ResumePath != "":
		text, err := ingestion.ReadResumeFile(r.opts.ResumePath)
		if err != nil {
			return nil, err
		}
		return r.svc.ParseResumeText(ctx, text)
	default:
		return r.svc.ParseResumeText(ctx, ingestion.NormalizeResumeText(r.opts.ResumeText))
	}
}
