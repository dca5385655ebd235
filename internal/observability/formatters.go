// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/talent-search/internal/match"
	"github.com/jonathan/talent-search/internal/query"
	"github.com/jonathan/talent-search/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxResultsToShow is the default number of candidates to display
	maxResultsToShow = 10
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
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintQueryAnalysis outputs the tokenized form of the free-text query.
func (p *Printer) PrintQueryAnalysis(queryText string, a query.Analysis) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Query:       %q\n", queryText))
	if len(a.Tokens) > 0 {
		sb.WriteString(fmt.Sprintf("Tokens:      %s\n", strings.Join(a.Tokens, ", ")))
	} else {
		sb.WriteString("Tokens:      (none)\n")
	}
	if a.HasRoleQuery {
		sb.WriteString(fmt.Sprintf("Role terms:  %s (role gate active)", strings.Join(a.RoleTokens, ", ")))
	} else {
		sb.WriteString("Role terms:  (none)")
	}

	p.printBox("QUERY ANALYSIS", sb.String())
}

// PrintFilterSummary outputs which structured filters are active.
func (p *Printer) PrintFilterSummary(f types.SearchFilters) {
	lines := activeFilterLines(f)
	if len(lines) == 0 {
		p.printBox("FILTERS", "(no structured filters)")
		return
	}
	p.printBox("FILTERS", strings.Join(lines, "\n"))
}

// activeFilterLines renders one line per active filter leaf.
func activeFilterLines(f types.SearchFilters) []string {
	var lines []string

	if f.Experience.Min != nil || f.Experience.Max != nil {
		lines = append(lines, fmt.Sprintf("Experience:     %s", rangeText(f.Experience)))
	}
	if f.Salary.Min != nil || f.Salary.Max != nil {
		kind := f.Salary.Type
		if kind == "" {
			kind = "current"
		}
		lines = append(lines, fmt.Sprintf("Salary (%s): %s", kind, rangeText(f.Salary)))
	}
	if f.Location.Current != "" {
		lines = append(lines, "Location:       "+f.Location.Current)
	}
	if f.Location.Preferred != "" {
		lines = append(lines, "Preferred loc:  "+f.Location.Preferred)
	}
	if f.Location.Remote {
		lines = append(lines, "Remote:         required")
	}
	if len(f.Keywords) > 0 {
		lines = append(lines, "Keywords:       "+strings.Join(f.Keywords, ", "))
	}
	if len(f.Companies) > 0 {
		lines = append(lines, "Companies:      "+strings.Join(f.Companies, ", "))
	}
	if len(f.Designations) > 0 {
		lines = append(lines, "Designations:   "+strings.Join(f.Designations, ", "))
	}
	if len(f.Education.Degrees) > 0 {
		lines = append(lines, "Degrees:        "+strings.Join(f.Education.Degrees, ", "))
	}
	if len(f.Education.Majors) > 0 {
		lines = append(lines, "Majors:         "+strings.Join(f.Education.Majors, ", "))
	}
	if len(f.Education.Institutions) > 0 {
		lines = append(lines, "Institutions:   "+strings.Join(f.Education.Institutions, ", "))
	}
	if len(f.Certifications) > 0 {
		lines = append(lines, "Certifications: "+strings.Join(f.Certifications, ", "))
	}
	if f.ActiveCertsOnly {
		lines = append(lines, "Active certs:   required")
	}

	return lines
}

func rangeText(r types.RangeFilter) string {
	switch {
	case r.Min != nil && r.Max != nil:
		return fmt.Sprintf("%v to %v", r.Min, r.Max)
	case r.Min != nil:
		return fmt.Sprintf(">= %v", r.Min)
	case r.Max != nil:
		return fmt.Sprintf("<= %v", r.Max)
	default:
		return "(unset)"
	}
}

// PrintResults outputs the scored matches, one line per candidate.
func (p *Printer) PrintResults(results []match.Result, evaluated int) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Evaluated: %d   Matched: %d\n", evaluated, len(results)))

	if len(results) > 0 {
		sb.WriteString("\n")
		count := min(len(results), maxResultsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("%3d  %s\n", results[i].Score, resultLabel(results[i])))
		}
		if len(results) > maxResultsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more\n", len(results)-maxResultsToShow))
		}
	}

	p.printBox("SEARCH RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

// resultLabel picks a display label for one match: name, then email, then id.
func resultLabel(res match.Result) string {
	for _, key := range []string{"name", "email", "id"} {
		if v, ok := res.Record[key]; ok {
			if s := fmt.Sprintf("%v", v); s != "" {
				return s
			}
		}
	}
	return "(unnamed candidate)"
}
