package types

import "time"

// Change kinds.
const (
	ChangeAdded    = "added"
	ChangeImproved = "improved"
)

// Change records one edit made by the optimizer.
type Change struct {
	Type     string   `json:"type"`
	Section  string   `json:"section"`
	Text     string   `json:"text"`
	Keywords []string `json:"keywords"`
}

// OptimizationResult is an optimized copy of a resume plus its change log.
// It marshals flat, as a resume with two extra fields.
type OptimizationResult struct {
	StructuredResume
	Changes     []Change  `json:"changes"`
	OptimizedAt time.Time `json:"optimizedAt"`
}

// Resume returns the optimized resume record.
func (o *OptimizationResult) Resume() *StructuredResume {
	if o == nil {
		return nil
	}
	return &o.StructuredResume
}

// Comparison summarises what an optimization pass changed.
type Comparison struct {
	BeforeScore     int      `json:"beforeScore"`
	AfterScore      int      `json:"afterScore"`
	Improvements    []Change `json:"improvements"`
	AddedKeywords   []string `json:"addedKeywords"`
	ChangedSections []string `json:"changedSections"`
}
