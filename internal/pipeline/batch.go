package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-optimizer/internal/ingestion"
	"github.com/jonathan/ats-optimizer/internal/parsing"
	"github.com/jonathan/ats-optimizer/internal/scoring"
	"github.com/jonathan/ats-optimizer/internal/types"
)

// DefaultConcurrency is used by ScoreBatch when concurrency is not positive.
const DefaultConcurrency = 4

// BatchEntry is the score of one resume in a batch.
type BatchEntry struct {
	Name     string            `json:"name"`
	FullName string            `json:"fullName"`
	Score    types.ScoreResult `json:"score"`
}

// ScoreBatch parses and scores every resume text against ks, at most
// concurrency at a time. Empty texts score as an empty resume. Entries are
// sorted by overall score, highest first, then by name.
func ScoreBatch(ctx context.Context, ks *types.KeywordSet, resumes map[string]string, concurrency int) ([]BatchEntry, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	names := make([]string, 0, len(resumes))
	for name := range resumes {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]BatchEntry, len(names))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, name := range names {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			r := parsing.ParseResumeText(resumes[name])
			entry := BatchEntry{Name: name, Score: scoring.CalculateScore(r, ks)}
			if r != nil {
				entry.FullName = r.FullName
			}
			entries[i] = entry
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].Score.Overall != entries[b].Score.Overall {
			return entries[a].Score.Overall > entries[b].Score.Overall
		}
		return entries[a].Name < entries[b].Name
	})
	return entries, nil
}

// LoadResumeDir reads every .txt and .md file in dir, keyed by file name.
func LoadResumeDir(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume directory: %w", err)
	}
	out := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || ingestion.CheckUploadName(e.Name()) != nil {
			continue
		}
		text, err := ingestion.ReadResumeFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out[e.Name()] = text
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no .txt or .md resumes found in %s", dir)
	}
	return out, nil
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}
	return data, nil
}
