// Package report renders simulations for the object-storage archive.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/bryanwahyu/global-sentinel/internal/domain/simulation"
)

// Markdown renders a simulation as a readable briefing.
func Markdown(s *simulation.Simulation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Crisis Simulation %s\n\n", s.ID)
	fmt.Fprintf(&b, "**Scenario:** %s\n\n", oneLine(s.Scenario))
	fmt.Fprintf(&b, "- **Verdict:** %s\n", s.Verdict)
	fmt.Fprintf(&b, "- **Confidence:** %d%%\n", s.Confidence)
	fmt.Fprintf(&b, "- **Timeline:** %s\n", s.Timeline)
	fmt.Fprintf(&b, "- **Impact:** %s\n", s.Impact)
	fmt.Fprintf(&b, "- **Powered by:** %s\n", s.PoweredBy())
	fmt.Fprintf(&b, "- **Generated:** %s\n\n", s.Timestamp)

	if s.SonarAnalysis != nil {
		section(&b, "Reasoning", s.SonarAnalysis.Reasoning)
		section(&b, "Research", s.SonarAnalysis.Research)
	}
	numbered(&b, "Crisis Flow", s.Flowchart)
	numbered(&b, "Mitigations", s.Mitigations)
	bullets(&b, "Supporting Points", s.SupportingPoints)
	bullets(&b, "Counter Points", s.CounterPoints)
	bullets(&b, "Sources", s.Sources)
	return b.String()
}

// HTML converts the markdown briefing with goldmark.
func HTML(md string) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert([]byte(md), &body); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	var out bytes.Buffer
	out.WriteString("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>Global Sentinel Simulation</title></head><body>\n")
	out.Write(body.Bytes())
	out.WriteString("</body></html>\n")
	return out.Bytes(), nil
}

func section(b *strings.Builder, title, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	fmt.Fprintf(b, "## %s\n\n%s\n\n", title, strings.TrimSpace(text))
}

func numbered(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for i, it := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, oneLine(it))
	}
	b.WriteString("\n")
}

func bullets(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", oneLine(it))
	}
	b.WriteString("\n")
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
