// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/ats-optimizer/internal/scoring"
	"github.com/jonathan/ats-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// writeList writes up to limit items of list under a heading.
func writeList(sb *strings.Builder, heading string, list []string, limit int) {
	if len(list) == 0 {
		return
	}
	fmt.Fprintf(sb, "%s (%d):\n", heading, len(list))
	count := min(len(list), limit)
	for i := 0; i < count; i++ {
		fmt.Fprintf(sb, "  • %s\n", list[i])
	}
	if len(list) > limit {
		fmt.Fprintf(sb, "  ... and %d more\n", len(list)-limit)
	}
	sb.WriteString("\n")
}

// PrintKeywords outputs a summary of the keywords mined from a job description.
func (p *Printer) PrintKeywords(ks *types.KeywordSet) {
	if ks == nil {
		return
	}

	var sb strings.Builder
	writeList(&sb, "Technical", ks.Technical, maxItemsToShow)
	writeList(&sb, "Soft skills", ks.Soft, 3)
	writeList(&sb, "Requirements", ks.Requirements, 3)
	writeList(&sb, "Experience", ks.Experience, 3)
	writeList(&sb, "Education", ks.Education, 3)
	if sb.Len() == 0 {
		sb.WriteString("No keywords found")
	}

	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n\n"))
}

// PrintResume outputs the header and section counts of a parsed resume.
func (p *Printer) PrintResume(r *types.StructuredResume) {
	if r == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Name:     %s\n", r.FullName)
	fmt.Fprintf(&sb, "Email:    %s\n", r.Email)
	fmt.Fprintf(&sb, "Phone:    %s\n", r.Phone)
	sb.WriteString("\n")

	bullets := 0
	for _, e := range r.Experience {
		bullets += len(e.Bullets)
	}
	fmt.Fprintf(&sb, "Experience:     %d entries, %d bullets\n", len(r.Experience), bullets)
	fmt.Fprintf(&sb, "Education:      %d entries\n", len(r.Education))
	fmt.Fprintf(&sb, "Projects:       %d\n", len(r.Projects))
	fmt.Fprintf(&sb, "Certifications: %d", len(r.Certifications))

	p.printBox("PARSED RESUME", sb.String())
}

// PrintScore outputs the overall score, its sub-scores and the tips.
func (p *Printer) PrintScore(title string, score types.ScoreResult) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Overall:      %d/100 (%s)\n\n", score.Overall, scoring.ScoreLabel(score.Overall))
	fmt.Fprintf(&sb, "Keywords:     %.1f\n", score.Breakdown.Keywords)
	fmt.Fprintf(&sb, "Format:       %.1f\n", score.Breakdown.Format)
	fmt.Fprintf(&sb, "Content:      %.1f\n", score.Breakdown.Content)
	fmt.Fprintf(&sb, "Completeness: %.0f", score.Breakdown.Completeness)

	if len(score.Tips) > 0 {
		sb.WriteString("\n\nTips:")
		for _, tip := range score.Tips {
			fmt.Fprintf(&sb, "\n  [%s] %s", tip.Priority, tip.Text)
		}
	}

	if title == "" {
		title = "ATS SCORE"
	}
	p.printBox(title, sb.String())
}

// PrintChanges outputs the optimizer's change log.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintChanges(changes []types.Change) {
	if len(changes) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO CHANGES NEEDED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Made %d changes:\n\n", len(changes))
	for i, c := range changes {
		marker := "+"
		if c.Type == types.ChangeImproved {
			marker = "~"
		}
		fmt.Fprintf(&sb, "%s %s\n", marker, c.Section)
		fmt.Fprintf(&sb, "  %s", c.Text)
		if len(c.Keywords) > 0 {
			fmt.Fprintf(&sb, "\n  [%s]", strings.Join(c.Keywords, ", "))
		}
		if i < len(changes)-1 {
			sb.WriteString("\n\n")
		}
	}

	p.printBox("OPTIMIZATION CHANGES", sb.String())
}

// PrintComparison outputs the before/after scores of an optimization pass.
func (p *Printer) PrintComparison(cmp types.Comparison) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Score: %d → %d (%+d)\n", cmp.BeforeScore, cmp.AfterScore, cmp.AfterScore-cmp.BeforeScore)
	if len(cmp.ChangedSections) > 0 {
		fmt.Fprintf(&sb, "Sections: %s\n", strings.Join(cmp.ChangedSections, ", "))
	}
	if len(cmp.AddedKeywords) > 0 {
		fmt.Fprintf(&sb, "Keywords: %s", strings.Join(cmp.AddedKeywords, ", "))
	}

	p.printBox("BEFORE / AFTER", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs the skills worth adding, highest priority first
// as given.
func (p *Printer) PrintSuggestions(suggestions []types.Suggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(suggestions), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		s := suggestions[i]
		fmt.Fprintf(&sb, "• %s (%s, %s)", s.Skill, s.Type, s.Priority)
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(suggestions) > count {
		fmt.Fprintf(&sb, "\n... and %d more", len(suggestions)-count)
	}

	p.printBox("SKILL SUGGESTIONS", sb.String())
}
