package cli_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/casedesk/internal/cli"
)

func TestCaseShow_Table(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, "case", "show")
	require.NoError(t, err)

	assert.Contains(t, out, "CASE ID")
	assert.Contains(t, out, "INS-99281-KL")
	assert.Contains(t, out, "REQUIRED ACTIONS (1/3)")
}

func TestCaseShow_JSON(t *testing.T) {
	setupCLITest(t)

	out, err := executeCmd(t, "case", "show", "--output", "json", "--detailed")
	require.NoError(t, err)

	var decoded struct {
		HighValue bool   `json:"high_value"`
		View      string `json:"view"`
		Guidance  struct {
			LegalContext string `json:"legal_context"`
		} `json:"guidance"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.True(t, decoded.HighValue)
	assert.Equal(t, "detailed", decoded.View)
	assert.NotEmpty(t, decoded.Guidance.LegalContext)
}

func TestCaseShow_CustomCatalog(t *testing.T) {
	setupCLITest(t)
	catalog := writeFile(t, "catalog.yaml", `schema_version: 1.1.0
entries:
  - event_type: "*"
    rule: "Review {{.CaseID}} in {{.Location}} manually."
`)
	casePath := writeFile(t, "case.json",
		`{"id":"INS-1","event_type":"Hail","location":"Pune, Maharashtra","amount_minor":10}`)

	out, err := executeCmd(t, "case", "show", "--case", casePath, "--guidance", catalog, "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "Review INS-1 in Pune manually.")
}

func TestCaseShow_InvalidOutput(t *testing.T) {
	setupCLITest(t)

	_, err := executeCmd(t, "case", "show", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestCaseValidate(t *testing.T) {
	setupCLITest(t)

	t.Run("valid file", func(t *testing.T) {
		path := writeFile(t, "case.yaml", "id: INS-9\nevent_type: Storm\namount_minor: 5\n")
		out, err := executeCmd(t, "case", "validate", "--case", path)
		require.NoError(t, err)
		assert.Contains(t, out, "Case INS-9 is valid")
	})

	t.Run("negative amount exits 2", func(t *testing.T) {
		path := writeFile(t, "case.yaml", "id: INS-9\namount_minor: -5\n")
		_, err := executeCmd(t, "case", "validate", "--case", path)

		var exitErr *cli.ExitError
		require.True(t, errors.As(err, &exitErr))
		assert.Equal(t, cli.ExitCodeInvalid, exitErr.ExitCode)
		assert.Contains(t, exitErr.Error(), "negative")
	})

	t.Run("unsupported extension exits 2", func(t *testing.T) {
		path := writeFile(t, "case.txt", "id: INS-9\n")
		_, err := executeCmd(t, "case", "validate", "--case", path)

		var exitErr *cli.ExitError
		require.True(t, errors.As(err, &exitErr))
	})

	t.Run("missing flag", func(t *testing.T) {
		_, err := executeCmd(t, "case", "validate")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--case is required")
	})
}
