// Package casemodel holds the insurance case record shown on the dashboard and
// the pure derivations computed from it.
//
// A CaseRecord is treated as immutable for the lifetime of a render. Every
// derived value (high-value flag, display amount, location segment) is a pure
// function of the record, so callers recompute them instead of caching them.
package casemodel

import (
	"fmt"
	"strings"
)

// CaseRecord is a single insurance claim under review.
type CaseRecord struct {
	// ID is an opaque, display-only identifier.
	ID string `json:"id" yaml:"id"`
	// EventType is the loss category label, e.g. "Storm".
	EventType string `json:"event_type" yaml:"event_type"`
	// Location is a comma-separated place string, most specific first.
	Location string `json:"location" yaml:"location"`
	// AmountMinor is the claim amount in the smallest currency unit.
	AmountMinor int64 `json:"amount_minor" yaml:"amount_minor"`
	// Category is a free-text classification label.
	Category string `json:"category" yaml:"category"`
	// LastUpdated is a display-formatted date. It is never parsed.
	LastUpdated string `json:"last_updated" yaml:"last_updated"`
}

// Sample returns the built-in demonstration case.
func Sample() CaseRecord {
	return CaseRecord{
		ID:          "INS-99281-KL",
		EventType:   "Storm",
		Location:    "Kerala, India",
		AmountMinor: 1_200_000,
		Category:    "Residential",
		LastUpdated: "Oct 24, 2025",
	}
}

// Validate reports whether r can be displayed. The derivations themselves are
// total; this is the gate applied to records arriving from outside.
func Validate(r CaseRecord) error {
	if strings.TrimSpace(r.ID) == "" {
		return ErrMissingID
	}
	if r.AmountMinor < 0 {
		return fmt.Errorf("case %s: %w (got %d)", r.ID, ErrNegativeAmount, r.AmountMinor)
	}
	return nil
}
