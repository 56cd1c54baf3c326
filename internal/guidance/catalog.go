package guidance

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// supportedSchema is the semver constraint a catalog's schema_version must meet.
const supportedSchema = "^1"

// Catalog is a set of guidance entries keyed by event type.
type Catalog struct {
	SchemaVersion string  `yaml:"schema_version"`
	Entries       []Entry `yaml:"entries"`

	templates map[int]*template.Template
}

// defaultLegalContext is the detailed-view paragraph of the built-in catalog.
const defaultLegalContext = "Under the National Disaster Management Act, claims originating from " +
	"designated 'High Impact' zones (which includes Kerala coastal districts) require dual-auth " +
	"validation if the disbursement exceeds the 1 million INR threshold."

// Default returns the built-in catalog used when no catalog file is configured.
func Default() *Catalog {
	c := &Catalog{
		SchemaVersion: "1.0.0",
		Entries: []Entry{
			{
				EventType: "Storm",
				Rule: "For {{.Location}} storm claims exceeding ₹10 lakhs, " +
					"secondary verification is mandatory.",
				Emphasis: []string{"₹10 lakhs", "mandatory"},
				Citation: Citation{Document: "Disaster SOP 2024-V2", Section: "Clause 4.2", Page: 14},
				Checklist: []ChecklistItem{
					{Text: "Verify documents (Identity & Property)", Done: true},
					{Text: "Assign certified field surveyor"},
					{Text: "Complete secondary verification (Manager Level)"},
				},
				LegalContext: defaultLegalContext,
			},
		},
	}
	// The built-in entries are known to be valid.
	if err := c.compile(); err != nil {
		panic(err)
	}
	return c
}

// LoadCatalog reads and validates a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading guidance catalog %s: %w", path, err)
	}
	c, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("guidance catalog %s: %w", path, err)
	}
	return c, nil
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.compile(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the schema version and each entry.
func (c *Catalog) Validate() error {
	v, err := semver.NewVersion(c.SchemaVersion)
	if err != nil {
		return fmt.Errorf("%w: schema_version %q: %w", ErrUnsupportedSchema, c.SchemaVersion, err)
	}
	constraint, err := semver.NewConstraint(supportedSchema)
	if err != nil {
		return fmt.Errorf("building schema constraint: %w", err)
	}
	if !constraint.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrUnsupportedSchema, v, supportedSchema)
	}

	seen := make(map[string]bool, len(c.Entries))
	for i, e := range c.Entries {
		key := strings.ToLower(strings.TrimSpace(e.EventType))
		switch {
		case key == "":
			return fmt.Errorf("%w: entry %d has no event_type", ErrInvalidEntry, i)
		case strings.TrimSpace(e.Rule) == "":
			return fmt.Errorf("%w: entry %q has no rule", ErrInvalidEntry, e.EventType)
		case seen[key]:
			return fmt.Errorf("%w: duplicate event_type %q", ErrInvalidEntry, e.EventType)
		}
		seen[key] = true
	}
	return nil
}

// compile parses every rule template once.
func (c *Catalog) compile() error {
	c.templates = make(map[int]*template.Template, len(c.Entries))
	for i, e := range c.Entries {
		tmpl, err := template.New(e.EventType).Option("missingkey=error").Parse(e.Rule)
		if err != nil {
			return fmt.Errorf("%w: rule for %q: %w", ErrInvalidEntry, e.EventType, err)
		}
		c.templates[i] = tmpl
	}
	return nil
}

// lookup returns the index of the entry for eventType, falling back to the
// wildcard entry. It returns -1 when nothing applies.
func (c *Catalog) lookup(eventType string) int {
	wildcard := -1
	for i, e := range c.Entries {
		if strings.EqualFold(strings.TrimSpace(e.EventType), strings.TrimSpace(eventType)) {
			return i
		}
		if e.EventType == WildcardEventType {
			wildcard = i
		}
	}
	return wildcard
}

// render builds the display guidance for entry i.
func (c *Catalog) render(i int, data RuleData) (Guidance, error) {
	e := c.Entries[i]
	var buf bytes.Buffer
	if err := c.templates[i].Execute(&buf, data); err != nil {
		return Guidance{}, fmt.Errorf("rendering rule for %q: %w", e.EventType, err)
	}
	g := Guidance{
		EventType:    e.EventType,
		Rule:         buf.String(),
		Emphasis:     e.Emphasis,
		Citation:     e.Citation,
		Checklist:    e.Checklist,
		LegalContext: strings.TrimSpace(e.LegalContext),
	}
	return g.clone(), nil
}
