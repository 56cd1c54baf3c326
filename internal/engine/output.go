package engine

import (
	"fmt"
	"strings"
)

// OutputFormat selects how an assessment is written.
type OutputFormat string

// Supported output formats.
const (
	OutputTable OutputFormat = "table"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// SupportedOutputFormats lists every accepted format name.
func SupportedOutputFormats() []OutputFormat {
	return []OutputFormat{OutputTable, OutputJSON, OutputYAML}
}

// ParseOutputFormat parses a format name. Empty selects table.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", OutputTable:
		return OutputTable, nil
	case OutputJSON:
		return OutputJSON, nil
	case OutputYAML, "yml":
		return OutputYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", s)
	}
}
