// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/mkarlsen/resume-profiler/internal/types"
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

// PrintPartialProfile outputs a human-readable summary of an extraction
// result: which scalar fields were found and how many items each list
// carries.
func (p *Printer) PrintPartialProfile(partial *types.PartialProfile) {
	if partial == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", orDash(partial.Name)))
	sb.WriteString(fmt.Sprintf("Title:  %s\n", orDash(partial.Title)))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", orDash(partial.Email)))
	sb.WriteString(fmt.Sprintf("Phone:  %s\n", orDash(partial.Phone)))
	sb.WriteString("\n")

	if len(partial.Skills) > 0 {
		skills := strings.Join(partial.Skills, ", ")
		if len(skills) > 45 {
			skills = skills[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("Skills: %s\n", skills))
	}
	sb.WriteString(fmt.Sprintf("Experience entries: %d\n", len(partial.Experience)))
	sb.WriteString(fmt.Sprintf("Education entries:  %d\n", len(partial.Education)))
	sb.WriteString(fmt.Sprintf("Projects:           %d", len(partial.Projects)))

	p.printBox("EXTRACTED FIELDS", sb.String())
}

// PrintProfile outputs a summary of the canonical profile after a merge
func (p *Printer) PrintProfile(profile *types.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:   %s\n", orDash(profile.BasicInfo.Name)))
	sb.WriteString(fmt.Sprintf("Title:  %s\n", orDash(profile.BasicInfo.Title)))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", orDash(profile.BasicInfo.Email)))
	sb.WriteString("\n")

	if len(profile.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(profile.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := profile.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s at %s\n", exp.Role, exp.Company))
		}
		if len(profile.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Experience)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(profile.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(profile.Education), 3)
		for i := 0; i < count; i++ {
			edu := profile.Education[i]
			sb.WriteString(fmt.Sprintf("  • %s, %s\n", edu.Degree, edu.Institution))
		}
	}

	p.printBox("PROFILE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTemplate outputs a generated email template
func (p *Printer) PrintTemplate(tmpl *types.EmailTemplate) {
	if tmpl == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Type:    %s\n", tmpl.Type))
	sb.WriteString(fmt.Sprintf("Role:    %s\n", tmpl.Role))
	if tmpl.Company != "" {
		sb.WriteString(fmt.Sprintf("Company: %s\n", tmpl.Company))
	}
	sb.WriteString(fmt.Sprintf("Subject: %s\n", tmpl.Subject))
	sb.WriteString("\n")
	sb.WriteString(tmpl.Body)

	p.printBox(fmt.Sprintf("EMAIL TEMPLATE: %s", strings.ToUpper(string(tmpl.Type))), sb.String())
}

// PrintStep prints a step progress message outside of any box
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStep(format string, args ...any) {
	fmt.Fprintf(p.out, "→ "+format+"\n", args...)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
