package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/casedesk/internal/engine"
	"github.com/rshade/casedesk/internal/guidance"
	"github.com/rshade/casedesk/internal/viewstate"
)

// Dashboard text.
const (
	DashboardTitle     = "Context-Aware Knowledge Assistant"
	GuidancePanelTitle = "AI Case Guidance"
	minRenderWidth     = 40
)

// legalRenderFunc renders the legal-context paragraph for a given width.
type legalRenderFunc func(text string, width int) string

// RenderDashboard renders a complete static dashboard for a: header, case
// panel and guidance panel. The legal context is rendered as markdown.
func RenderDashboard(a engine.Assessment, width int) string {
	width = clampWidth(width)
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderDashboardHeader(a, width),
		"",
		renderDashboardBody(a, width, renderMarkdown),
	)
}

// RenderDashboardHeader renders the title line, the policy update date and
// the view-toggle control.
func RenderDashboardHeader(a engine.Assessment, width int) string {
	title := HeaderStyle.Render(DashboardTitle)

	updated := LabelStyle.Render("Policy Update: ") + ValueStyle.Render(a.Case.LastUpdated)
	toggle := ToggleStyle.Render("[d] " + toggleLabel(a))

	gap := clampWidth(width) - lipgloss.Width(updated) - lipgloss.Width(toggle)
	if gap < 1 {
		gap = 1
	}
	status := lipgloss.JoinHorizontal(lipgloss.Center, updated, strings.Repeat(" ", gap), toggle)

	return lipgloss.JoinVertical(lipgloss.Left, title, status)
}

// toggleLabel names the view the toggle switches to.
func toggleLabel(a engine.Assessment) string {
	if a.Detailed() {
		return viewstate.LabelShowSimplified
	}
	return viewstate.LabelShowDetailed
}

func renderDashboardBody(a engine.Assessment, width int, legal legalRenderFunc) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderCasePanel(a, width),
		RenderGuidancePanel(a, width, legal),
	)
}

// RenderCasePanel renders the boxed case summary with the high-risk badge.
func RenderCasePanel(a engine.Assessment, width int) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render("CASE " + a.Case.ID))
	content.WriteString("\n\n")

	writeField(&content, "Event Type:   ", a.Case.EventType)
	writeField(&content, "Category:     ", a.Case.Category)
	writeField(&content, "Location:     ", a.Case.Location)

	content.WriteString(LabelStyle.Render("Claim Amount: "))
	content.WriteString(ValueStyle.Render(a.AmountLabel))
	if badge := a.Badge(); badge != "" {
		content.WriteString(" ")
		content.WriteString(BadgeStyle.Render(IconWarning + " " + badge))
	}

	if a.Detailed() {
		content.WriteString("\n")
		content.WriteString(LabelStyle.Render("Amount:       "))
		content.WriteString(ValueStyle.Render(a.AmountGrouped))
		content.WriteString(SubtleStyle.Render(" (minor units)"))
	}

	return BoxStyle.Width(width - borderPadding).Render(content.String())
}

// RenderGuidancePanel renders the rule, its citation, the checklist and, in
// detailed view, the legal context.
func RenderGuidancePanel(a engine.Assessment, width int, legal legalRenderFunc) string {
	var content strings.Builder

	content.WriteString(HeaderStyle.Render(GuidancePanelTitle))
	content.WriteString("\n\n")

	g := a.Guidance
	if g == nil {
		content.WriteString(SubtleStyle.Render(
			fmt.Sprintf("No guidance available for event type %q.", a.Case.EventType)))
		return BoxStyle.Width(width - borderPadding).Render(content.String())
	}

	content.WriteString(LabelStyle.Render("Applicable Rule"))
	content.WriteString("\n")
	content.WriteString(`"` + highlight(g.Rule, g.Emphasis) + `"`)
	content.WriteString("\n\n")

	content.WriteString(LabelStyle.Render("Source: "))
	content.WriteString(ValueStyle.Render(formatCitation(g.Citation)))
	content.WriteString("\n\n")

	content.WriteString(LabelStyle.Render(
		fmt.Sprintf("Required Actions (%d/%d)", g.Completed(), len(g.Checklist))))
	for _, item := range g.Checklist {
		content.WriteString("\n")
		if item.Done {
			content.WriteString(OKStyle.Render(IconDone + " " + item.Text))
		} else {
			content.WriteString(IconPending + " " + item.Text)
		}
	}

	if a.Detailed() && g.LegalContext != "" {
		content.WriteString("\n\n")
		content.WriteString(LabelStyle.Render("Legal Context"))
		content.WriteString("\n")
		content.WriteString(legal(g.LegalContext, width-2*borderPadding))
	}

	return BoxStyle.Width(width - borderPadding).Render(content.String())
}

func writeField(sb *strings.Builder, label, value string) {
	sb.WriteString(LabelStyle.Render(label))
	sb.WriteString(ValueStyle.Render(value))
	sb.WriteString("\n")
}

func formatCitation(c guidance.Citation) string {
	parts := make([]string, 0, 3)
	if c.Document != "" {
		parts = append(parts, c.Document)
	}
	if c.Section != "" {
		parts = append(parts, c.Section)
	}
	if c.Page > 0 {
		parts = append(parts, fmt.Sprintf("Page %d", c.Page))
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, " · ")
}

// highlight styles each emphasised phrase in text.
func highlight(text string, phrases []string) string {
	return highlightWith(text, phrases, WarningStyle.Render)
}

// highlightWith marks every occurrence of each phrase in the raw text, then
// renders each maximal marked run once. Overlapping phrases merge into one run.
func highlightWith(text string, phrases []string, render func(...string) string) string {
	marked := make([]bool, len(text))
	found := false
	for _, p := range phrases {
		if p == "" {
			continue
		}
		for from := 0; from < len(text); {
			i := strings.Index(text[from:], p)
			if i < 0 {
				break
			}
			start := from + i
			for j := start; j < start+len(p); j++ {
				marked[j] = true
			}
			found = true
			from = start + len(p)
		}
	}
	if !found {
		return text
	}

	var b strings.Builder
	for start := 0; start < len(text); {
		end := start
		for end < len(text) && marked[end] == marked[start] {
			end++
		}
		if marked[start] {
			b.WriteString(render(text[start:end]))
		} else {
			b.WriteString(text[start:end])
		}
		start = end
	}
	return b.String()
}

func clampWidth(width int) int {
	if width < minRenderWidth {
		return minRenderWidth
	}
	return width
}

// markdownRenderer keeps one glamour renderer per wrap width.
type markdownRenderer struct {
	width    int
	renderer *glamour.TermRenderer
}

func (mr *markdownRenderer) render(text string, width int) string {
	if mr.renderer == nil || mr.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return lipgloss.NewStyle().Width(width).Render(text)
		}
		mr.renderer = r
		mr.width = width
	}
	out, err := mr.renderer.Render(text)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(text)
	}
	return strings.Trim(out, "\n")
}

func renderMarkdown(text string, width int) string {
	var mr markdownRenderer
	return mr.render(text, width)
}

// plainText renders the legal context without markdown processing.
func plainText(text string, width int) string {
	return lipgloss.NewStyle().Width(width).Render(text)
}
