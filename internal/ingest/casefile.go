// Package ingest loads case records from disk and watches case files for edits.
package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/casedesk/internal/casemodel"
)

// ErrUnsupportedFormat indicates a case file extension that is neither YAML nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported case file format")

// LoadCaseFile reads a case record from a .yaml, .yml or .json file and validates it.
func LoadCaseFile(path string) (casemodel.CaseRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return casemodel.CaseRecord{}, fmt.Errorf("reading case file: %w", err)
	}

	record, err := ParseCase(data, filepath.Ext(path))
	if err != nil {
		return casemodel.CaseRecord{}, fmt.Errorf("case file %s: %w", path, err)
	}
	return record, nil
}

// ParseCase decodes a case record. ext selects the decoder and includes the dot.
func ParseCase(data []byte, ext string) (casemodel.CaseRecord, error) {
	var record casemodel.CaseRecord

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&record); err != nil {
			return casemodel.CaseRecord{}, fmt.Errorf("parsing YAML: %w", err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&record); err != nil {
			return casemodel.CaseRecord{}, fmt.Errorf("parsing JSON: %w", err)
		}
	default:
		return casemodel.CaseRecord{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := casemodel.Validate(record); err != nil {
		return casemodel.CaseRecord{}, err
	}
	return record, nil
}
