// Package engine assembles the case assessment shown by every casedesk
// surface: the case record, its derived values, the resolved guidance, and
// the active view mode.
package engine

import (
	"strings"

	"github.com/rshade/casedesk/internal/casemodel"
	"github.com/rshade/casedesk/internal/guidance"
	"github.com/rshade/casedesk/internal/viewstate"
)

// HighRiskBadge is the label shown next to high-value claims.
const HighRiskBadge = "High Risk Threshold"

// Options controls presentation details that come from configuration.
type Options struct {
	CurrencySymbol string
	Locale         string
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return Options{CurrencySymbol: "₹", Locale: "en"}
}

// Assessment is one render's worth of case data. It is recomputed from its
// inputs rather than updated in place.
type Assessment struct {
	Case            casemodel.CaseRecord `json:"case" yaml:"case"`
	HighValue       bool                 `json:"high_value" yaml:"high_value"`
	DisplayAmount   string               `json:"display_amount_lakhs" yaml:"display_amount_lakhs"`
	AmountLabel     string               `json:"amount_label" yaml:"amount_label"`
	AmountGrouped   string               `json:"amount_grouped" yaml:"amount_grouped"`
	LocationSegment string               `json:"location_segment" yaml:"location_segment"`
	View            string               `json:"view" yaml:"view"`
	Guidance        *guidance.Guidance   `json:"guidance,omitempty" yaml:"guidance,omitempty"`
}

// NewAssessment derives an Assessment from its inputs. g may be nil when no
// guidance applies. The legal context is kept only in detailed mode.
func NewAssessment(
	record casemodel.CaseRecord,
	g *guidance.Guidance,
	state viewstate.State,
	opts Options,
) Assessment {
	display := casemodel.DisplayAmount(record)
	a := Assessment{
		Case:            record,
		HighValue:       casemodel.IsHighValue(record),
		DisplayAmount:   display,
		AmountLabel:     FormatLakhs(opts.CurrencySymbol, display),
		AmountGrouped:   casemodel.GroupedAmount(record, opts.Locale),
		LocationSegment: casemodel.PrimaryLocationSegment(record),
		View:            state.Mode().String(),
	}
	if g != nil {
		copied := *g
		if !state.IsDetailed() {
			copied.LegalContext = ""
		}
		a.Guidance = &copied
	}
	return a
}

// Detailed reports whether the assessment was built in detailed mode.
func (a Assessment) Detailed() bool {
	return a.View == viewstate.ModeDetailed.String()
}

// Badge returns HighRiskBadge for high-value claims and "" otherwise.
func (a Assessment) Badge() string {
	if a.HighValue {
		return HighRiskBadge
	}
	return ""
}

// FormatLakhs joins a currency symbol and a Lakh amount, e.g. "₹12.0 Lakhs".
func FormatLakhs(symbol, amount string) string {
	return strings.TrimSpace(symbol) + amount + " Lakhs"
}
