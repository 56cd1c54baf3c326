package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/casedesk/internal/casemodel"
)

func TestLoadCaseFile_YAML(t *testing.T) {
	record, err := LoadCaseFile(filepath.Join("testdata", "case.yaml"))
	require.NoError(t, err)
	assert.Equal(t, casemodel.Sample(), record)
}

func TestLoadCaseFile_JSON(t *testing.T) {
	record, err := LoadCaseFile(filepath.Join("testdata", "case.json"))
	require.NoError(t, err)

	assert.Equal(t, "INS-40012-TN", record.ID)
	assert.Equal(t, int64(500_000), record.AmountMinor)
	assert.Equal(t, "Chennai", casemodel.PrimaryLocationSegment(record))
	assert.False(t, casemodel.IsHighValue(record))
}

func TestLoadCaseFile_Missing(t *testing.T) {
	_, err := LoadCaseFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		ext     string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unsupported extension",
			data:    "id = 1",
			ext:     ".toml",
			wantErr: ErrUnsupportedFormat,
		},
		{
			name:    "negative amount",
			data:    "id: X\namount_minor: -5\n",
			ext:     ".yaml",
			wantErr: casemodel.ErrNegativeAmount,
		},
		{
			name:    "missing id",
			data:    `{"amount_minor": 10}`,
			ext:     ".json",
			wantErr: casemodel.ErrMissingID,
		},
		{
			name:    "unknown yaml field",
			data:    "id: X\namount: 10\n",
			ext:     ".yml",
			wantMsg: "parsing YAML",
		},
		{
			name:    "malformed json",
			data:    `{"id":`,
			ext:     ".JSON",
			wantMsg: "parsing JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCase([]byte(tt.data), tt.ext)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}
