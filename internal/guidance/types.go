// Package guidance supplies the case guidance panel: the applicable rule, the
// document it was taken from, the required-actions checklist, and the longer
// legal context shown in the detailed view.
//
// Guidance is looked up from a Catalog by event type. A lookup picks an entry
// and fills the rule template; it does not evaluate rule conditions.
package guidance

// WildcardEventType marks a catalog entry that applies to any event type.
const WildcardEventType = "*"

// Citation points at the source document for a rule.
type Citation struct {
	Document string `json:"document" yaml:"document"`
	Section  string `json:"section" yaml:"section"`
	Page     int    `json:"page" yaml:"page"`
}

// ChecklistItem is one required action.
type ChecklistItem struct {
	Text string `json:"text" yaml:"text"`
	Done bool   `json:"done" yaml:"done"`
}

// Entry is a catalog entry as stored on disk. Rule is a text/template executed
// against RuleData.
type Entry struct {
	EventType    string          `yaml:"event_type"`
	Rule         string          `yaml:"rule"`
	Emphasis     []string        `yaml:"emphasis,omitempty"`
	Citation     Citation        `yaml:"citation"`
	Checklist    []ChecklistItem `yaml:"checklist"`
	LegalContext string          `yaml:"legal_context"`
}

// RuleData is the data available to rule templates.
type RuleData struct {
	Location  string
	EventType string
	Category  string
	CaseID    string
}

// Guidance is a resolved entry ready for display.
type Guidance struct {
	EventType    string          `json:"event_type" yaml:"event_type"`
	Rule         string          `json:"rule" yaml:"rule"`
	Emphasis     []string        `json:"emphasis,omitempty" yaml:"emphasis,omitempty"`
	Citation     Citation        `json:"citation" yaml:"citation"`
	Checklist    []ChecklistItem `json:"checklist" yaml:"checklist"`
	LegalContext string          `json:"legal_context" yaml:"legal_context"`
}

// clone returns a copy whose slices do not alias g.
func (g Guidance) clone() Guidance {
	out := g
	out.Emphasis = append([]string(nil), g.Emphasis...)
	out.Checklist = append([]ChecklistItem(nil), g.Checklist...)
	return out
}

// Completed returns how many checklist items are done.
func (g Guidance) Completed() int {
	n := 0
	for _, item := range g.Checklist {
		if item.Done {
			n++
		}
	}
	return n
}
