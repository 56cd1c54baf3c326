// Package viewstate holds the dashboard's single piece of mutable UI state:
// whether the detailed view is shown.
//
// State is a plain value owned by whoever drives the dashboard, so it can be
// exercised in tests without a terminal.
package viewstate

// Mode names the two dashboard presentations.
type Mode int

const (
	// ModeSimplified hides the legal-context block. It is the initial mode.
	ModeSimplified Mode = iota
	// ModeDetailed shows the legal-context block.
	ModeDetailed
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeSimplified:
		return "simplified"
	case ModeDetailed:
		return "detailed"
	default:
		return "unknown"
	}
}

// Toggle labels. The label names the mode the toggle switches to.
const (
	LabelShowDetailed   = "Detailed View"
	LabelShowSimplified = "Simplified View"
)

// State is the dashboard view state. The zero value is simplified.
type State struct {
	detailed bool
}

// New returns a State in simplified mode.
func New() State {
	return State{}
}

// NewDetailed returns a State that starts in detailed mode.
func NewDetailed() State {
	return State{detailed: true}
}

// ToggleDetailed flips between simplified and detailed.
func (s *State) ToggleDetailed() {
	s.detailed = !s.detailed
}

// IsDetailed reports whether the detailed view is active.
func (s State) IsDetailed() bool {
	return s.detailed
}

// Mode returns the current mode.
func (s State) Mode() Mode {
	if s.detailed {
		return ModeDetailed
	}
	return ModeSimplified
}

// ToggleLabel is the text for the toggle control in the current state.
func (s State) ToggleLabel() string {
	if s.detailed {
		return LabelShowSimplified
	}
	return LabelShowDetailed
}
