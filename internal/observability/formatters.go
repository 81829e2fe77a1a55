// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-parser/internal/pipeline"
	"github.com/jonathan/resume-parser/internal/types"
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeRecord outputs a human-readable summary of an extracted record.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", orAbsent(record.FullName)))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", orAbsent(record.Email)))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", orAbsent(record.Phone)))
	sb.WriteString(fmt.Sprintf("Address:  %s\n", orAbsent(record.Address)))
	sb.WriteString("\n")

	if len(record.WorkExperience) > 0 {
		sb.WriteString("Work Experience:\n")
		count := min(len(record.WorkExperience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := record.WorkExperience[i]
			sb.WriteString(fmt.Sprintf("  • %s", entry.Organization))
			if entry.Title != "" {
				sb.WriteString(fmt.Sprintf(" — %s", entry.Title))
			}
			sb.WriteString("\n")
		}
		if len(record.WorkExperience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.WorkExperience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(record.Education) > 0 {
		sb.WriteString("Education:\n")
		for _, entry := range record.Education {
			sb.WriteString(fmt.Sprintf("  • %s", entry.Organization))
			if entry.Degree != "" {
				sb.WriteString(fmt.Sprintf(" — %s", entry.Degree))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(record.Skills) > 0 {
		count := min(len(record.Skills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("Skills:   %s", strings.Join(record.Skills[:count], ", ")))
		if len(record.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" (+%d more)", len(record.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("Links:    %d found\n", len(record.Links)))

	p.printBox("Extracted Resume", strings.TrimRight(sb.String(), "\n"))
}

// PrintReadabilityReport outputs a human-readable ATS compliance summary.
func (p *Printer) PrintReadabilityReport(report *pipeline.ReadabilityReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Readable:      %v\n", report.IsReadable))
	sb.WriteString(fmt.Sprintf("ATS compliant: %v\n", report.ATSCompliant))

	if len(report.Fields) > 0 {
		sb.WriteString("\nFields:\n")
		names := make([]string, 0, len(report.Fields))
		for name := range report.Fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			mark := "✗"
			if report.Fields[name] {
				mark = "✓"
			}
			sb.WriteString(fmt.Sprintf("  %s %s\n", mark, name))
		}
	}

	p.printBox("Readability Check", strings.TrimRight(sb.String(), "\n"))
}

func orAbsent(s *string) string {
	if s == nil {
		return "(absent)"
	}
	return *s
}
