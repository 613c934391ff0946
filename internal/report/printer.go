// Package report renders ScoreResults for callers: a boxed human-readable
// summary for verbose CLI mode and a tabular CSV export of the per-term
// records.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
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
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScores outputs the two scores side by side. The gap between them shows
// how much of the weighted score rests on synonym and fuzzy credit.
func (p *Printer) PrintScores(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Weighted score: %6.2f%%\n", result.WeightedScore))
	sb.WriteString(fmt.Sprintf("Simple score:   %6.2f%%\n", result.SimpleScore))
	sb.WriteString(fmt.Sprintf("Matched terms:  %d\n", len(result.MatchedTerms)))
	sb.WriteString(fmt.Sprintf("Missing terms:  %d", len(result.MissingTerms)))
	if result.Note != "" {
		sb.WriteString(fmt.Sprintf("\n\nNote: %s", result.Note))
	}

	p.printBox("MATCH SCORE", sb.String())
}

// PrintBreakdown outputs the tier-by-tier matched/missing groups.
func (p *Printer) PrintBreakdown(result *types.ScoreResult) {
	if result == nil || len(result.Breakdown) == 0 {
		return
	}

	var sb strings.Builder
	for i, group := range result.Breakdown {
		sb.WriteString(fmt.Sprintf("%s:\n", strings.ToUpper(group.Category.String())))
		writeTermList(&sb, "matched", group.Matched)
		writeTermList(&sb, "missing", group.Missing)
		if i < len(result.Breakdown)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("BREAKDOWN BY TIER", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs advice for the highest-value missing terms.
func (p *Printer) PrintSuggestions(result *types.ScoreResult) {
	if result == nil {
		return
	}
	if len(result.MissingTerms) == 0 {
		p.printBox("SUGGESTIONS", "Your resume already covers all the key\nterms in the job description.")
		return
	}

	var sb strings.Builder
	sb.WriteString("Consider adding these terms to better\nalign with the job description:\n\n")
	count := min(len(result.MissingTerms), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", result.MissingTerms[i]))
	}
	if len(result.MissingTerms) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingTerms)-maxItemsToShow))
	}
	sb.WriteString("\nHighlight matched skills in your summary\nsection to boost visibility.")

	p.printBox("SUGGESTIONS", sb.String())
}

func writeTermList(sb *strings.Builder, label string, terms []string) {
	if len(terms) == 0 {
		return
	}
	count := min(len(terms), maxItemsToShow)
	sb.WriteString(fmt.Sprintf("  %s: %s", label, strings.Join(terms[:count], ", ")))
	if len(terms) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf(" (+%d more)", len(terms)-maxItemsToShow))
	}
	sb.WriteString("\n")
}
