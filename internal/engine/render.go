package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// tabwriterPadding is the minimum padding between columns in table output.
const tabwriterPadding = 2

// Checkbox markers for table output.
const (
	checkDone    = "[x]"
	checkPending = "[ ]"
)

// RenderAssessment writes a in the requested format.
func RenderAssessment(w io.Writer, format OutputFormat, a Assessment) error {
	switch format {
	case OutputTable:
		return RenderAssessmentAsTable(w, a)
	case OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(a); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	case OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(a); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// RenderAssessmentAsTable writes a plain-text, two-column view of a.
func RenderAssessmentAsTable(w io.Writer, a Assessment) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	rows := [][2]string{
		{"CASE ID", a.Case.ID},
		{"EVENT TYPE", a.Case.EventType},
		{"CATEGORY", a.Case.Category},
		{"LOCATION", a.Case.Location},
		{"CLAIM AMOUNT", a.AmountLabel},
	}
	if a.HighValue {
		rows = append(rows, [2]string{"RISK", HighRiskBadge})
	}
	if a.Detailed() {
		rows = append(rows, [2]string{"AMOUNT (MINOR)", a.AmountGrouped})
	}
	rows = append(rows,
		[2]string{"POLICY UPDATE", a.Case.LastUpdated},
		[2]string{"VIEW", a.View},
	)

	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return fmt.Errorf("writing row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if a.Guidance == nil {
		_, err := fmt.Fprintln(w, "\nNo guidance available for this event type.")
		return err
	}
	return renderGuidanceText(w, a)
}

func renderGuidanceText(w io.Writer, a Assessment) error {
	g := a.Guidance
	lines := []string{
		"",
		"APPLICABLE RULE",
		`  "` + g.Rule + `"`,
		"",
		"SOURCE",
		fmt.Sprintf("  Document: %s  Section: %s  Page: %d", g.Citation.Document, g.Citation.Section, g.Citation.Page),
		"",
		fmt.Sprintf("REQUIRED ACTIONS (%d/%d)", g.Completed(), len(g.Checklist)),
	}
	for _, item := range g.Checklist {
		mark := checkPending
		if item.Done {
			mark = checkDone
		}
		lines = append(lines, fmt.Sprintf("  %s %s", mark, item.Text))
	}
	if a.Detailed() && g.LegalContext != "" {
		lines = append(lines, "", "LEGAL CONTEXT", "  "+g.LegalContext)
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing guidance: %w", err)
		}
	}
	return nil
}
