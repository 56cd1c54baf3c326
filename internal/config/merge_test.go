package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeOverlay writes YAML content to a temp file and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	isolateHome(t)
	target := Default()
	target.Logging.Level = "warn"

	overlay := writeOverlay(t, `
display:
  width: 140
`)
	require.NoError(t, ShallowMergeYAML(target, overlay))

	assert.Equal(t, 140, target.Display.Width)
	// Omitted fields in a replaced section take defaults.
	assert.Equal(t, "₹", target.Display.CurrencySymbol)
	// Sections absent from the overlay are untouched.
	assert.Equal(t, "warn", target.Logging.Level)
}

func TestShallowMergeYAML_MultipleSectionsAndUnknownKeys(t *testing.T) {
	isolateHome(t)
	target := Default()

	overlay := writeOverlay(t, `
case:
  file: cases/storm.yaml
guidance:
  catalog: catalogs/kerala.yaml
  cache_ttl_seconds: 30
plugins:
  ignored: true
`)
	require.NoError(t, ShallowMergeYAML(target, overlay))

	assert.Equal(t, "cases/storm.yaml", target.Case.File)
	assert.Equal(t, 200, target.Case.WatchDebounceMs)
	assert.Equal(t, "catalogs/kerala.yaml", target.Guidance.Catalog)
	assert.Equal(t, 30, target.Guidance.CacheTTLSeconds)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	isolateHome(t)
	target := Default()
	before := *target

	require.NoError(t, ShallowMergeYAML(target, writeOverlay(t, "# nothing\n")))
	assert.Equal(t, before, *target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	assert.Error(t, ShallowMergeYAML(nil, "x"))
	assert.Error(t, ShallowMergeYAML(Default(), filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, ShallowMergeYAML(Default(), writeOverlay(t, "display: [\n")))
	assert.Error(t, ShallowMergeYAML(Default(), writeOverlay(t, "display:\n  width: wide\n")))
}
