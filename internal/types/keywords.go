package types

// KeywordSet is the result of mining a job description.
type KeywordSet struct {
	Technical    []string `json:"technical"`
	Soft         []string `json:"soft"`
	Requirements []string `json:"requirements"`
	Experience   []string `json:"experience"`
	Education    []string `json:"education"`
	// All is technical, soft and requirements in that order, exact duplicates removed.
	All []string `json:"all"`
}

// NewKeywordSet returns a KeywordSet with every list empty but non-nil.
func NewKeywordSet() *KeywordSet {
	return &KeywordSet{
		Technical:    []string{},
		Soft:         []string{},
		Requirements: []string{},
		Experience:   []string{},
		Education:    []string{},
		All:          []string{},
	}
}

// EnsureDefaults replaces nil lists with empty ones.
func (k *KeywordSet) EnsureDefaults() {
	for _, list := range []*[]string{&k.Technical, &k.Soft, &k.Requirements, &k.Experience, &k.Education, &k.All} {
		if *list == nil {
			*list = []string{}
		}
	}
}

// Union returns technical, soft and requirements in that order with exact
// duplicates removed. It is how All is built.
func (k *KeywordSet) Union() []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, list := range [][]string{k.Technical, k.Soft, k.Requirements} {
		for _, s := range list {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

// HasTechnical reports whether the set carries at least one technical keyword.
func (k *KeywordSet) HasTechnical() bool {
	return k != nil && len(k.Technical) > 0
}

// IsTechnical reports whether skill is one of the technical keywords (exact match).
func (k *KeywordSet) IsTechnical(skill string) bool {
	if k == nil {
		return false
	}
	for _, t := range k.Technical {
		if t == skill {
			return true
		}
	}
	return false
}

// MatchResult partitions a keyword list by presence in some text.
type MatchResult struct {
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

// Suggestion kinds and priorities.
const (
	SuggestionTechnical = "technical"
	SuggestionSoft      = "soft"
	PriorityHigh        = "high"
	PriorityMedium      = "medium"
	PriorityLow         = "low"
)

// Suggestion is a job keyword the candidate could add to their skills.
type Suggestion struct {
	Skill    string `json:"skill"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
}
