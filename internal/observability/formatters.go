// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-adapter/internal/diff"
	"github.com/jonathan/resume-adapter/internal/types"
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

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of a structured resume.
func (p *Printer) PrintResume(doc *types.ResumeDocument) {
	if doc == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", doc.Header.FullName))
	if doc.Header.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:    %s\n", doc.Header.Email))
	}
	if doc.Metadata.Language != "" {
		sb.WriteString(fmt.Sprintf("Language: %s\n", doc.Metadata.Language))
	}
	sb.WriteString("\n")

	if len(doc.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(doc.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := doc.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s", entry.Title, entry.Company))
			if entry.StartDate != "" {
				sb.WriteString(fmt.Sprintf(" (%s – %s)", entry.StartDate, entry.EndDate))
			}
			sb.WriteString("\n")
		}
		if len(doc.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(doc.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(doc.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(doc.Education), 3)
		for i := 0; i < count; i++ {
			edu := doc.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s", edu.School))
			if edu.Degree != "" {
				sb.WriteString(fmt.Sprintf(", %s", edu.Degree))
			}
			sb.WriteString("\n")
		}
	}

	p.printBox("ADAPTED RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDiff outputs the structured before/after comparison.
func (p *Printer) PrintDiff(report *diff.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(report.Narrative)
	sb.WriteString("\n")

	if len(report.Changes) > 0 {
		sb.WriteString("\n")
		count := min(len(report.Changes), maxItemsToShow)
		for i := 0; i < count; i++ {
			change := report.Changes[i]
			target := change.Section
			if change.Field != "" {
				target += "." + change.Field
			}
			sb.WriteString(fmt.Sprintf("  %s %s\n", change.Kind, target))
		}
		if len(report.Changes) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more changes\n", len(report.Changes)-maxItemsToShow))
		}
	}

	p.printBox("CHANGES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCostLedger outputs per-step token usage and the request total.
func (p *Printer) PrintCostLedger(ledger *types.CostLedger) {
	if ledger == nil {
		return
	}

	var sb strings.Builder

	if len(ledger.Steps) == 0 {
		sb.WriteString("No LLM calls were made for this request.\n")
	}
	for _, step := range ledger.Steps {
		sb.WriteString(fmt.Sprintf("%-12s", step.Step))
		if step.Model != "" {
			sb.WriteString(fmt.Sprintf(" %s", step.Model))
		}
		sb.WriteString("\n")
		if step.Usage != nil {
			sb.WriteString(fmt.Sprintf("  in=%d out=%d  $%.6f\n",
				step.Usage.PromptTokens, step.Usage.CompletionTokens, step.CostUSD))
		}
	}

	sb.WriteString(fmt.Sprintf("\nTotal: %d tokens  $%.6f",
		ledger.Totals.TotalTokens, ledger.TotalUSD))

	p.printBox("COST", sb.String())
}

// PrintWarnings outputs any lossy-transformation warnings.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintWarnings(warnings []string) {
	if len(warnings) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO WARNINGS")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d warnings:\n\n", len(warnings)))

	for i, warning := range warnings {
		if len(warning) > 50 {
			warning = warning[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s", warning))
		if i < len(warnings)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("WARNINGS", sb.String())
}
