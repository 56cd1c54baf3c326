package guidance

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/casedesk/internal/casemodel"
)

func TestResolver_Default(t *testing.T) {
	r := NewResolver(nil, DefaultCacheTTL)

	g, err := r.Resolve(casemodel.Sample())
	require.NoError(t, err)

	assert.Equal(t,
		"For Kerala storm claims exceeding ₹10 lakhs, secondary verification is mandatory.",
		g.Rule)
	assert.Equal(t, "Disaster SOP 2024-V2", g.Citation.Document)
	assert.Len(t, g.Checklist, 3)
	assert.Equal(t, 1, g.Completed())
	assert.NotEmpty(t, g.LegalContext)
}

func TestResolver_EventTypeIsCaseInsensitive(t *testing.T) {
	r := NewResolver(nil, 0)
	rec := casemodel.Sample()
	rec.EventType = "STORM"
	rec.Location = "Singletown"

	g, err := r.Resolve(rec)
	require.NoError(t, err)
	assert.Contains(t, g.Rule, "For Singletown storm claims")
}

func TestResolver_TrimsLocationSegment(t *testing.T) {
	r := NewResolver(nil, time.Minute)
	rec := casemodel.Sample()
	rec.Location = " Kochi ,IN"

	g, err := r.Resolve(rec)
	require.NoError(t, err)
	assert.Equal(t,
		"For Kochi storm claims exceeding ₹10 lakhs, secondary verification is mandatory.",
		g.Rule)

	rec.Location = "Kochi, IN"
	_, err = r.Resolve(rec)
	require.NoError(t, err)
	assert.Equal(t, 1, r.CachedCount())
}

func TestResolver_NoGuidance(t *testing.T) {
	r := NewResolver(nil, time.Minute)
	rec := casemodel.Sample()
	rec.EventType = "Earthquake"

	_, err := r.Resolve(rec)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoGuidance)
	assert.Contains(t, err.Error(), "Earthquake")
	assert.Equal(t, 0, r.CachedCount())
}

func TestResolver_Wildcard(t *testing.T) {
	c, err := LoadCatalog(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)
	r := NewResolver(c, time.Minute)

	rec := casemodel.Sample()
	rec.EventType = "Earthquake"
	g, err := r.Resolve(rec)
	require.NoError(t, err)
	assert.Equal(t, "Standard review applies to Earthquake claims in Kerala.", g.Rule)
	assert.Equal(t, "*", g.EventType)

	rec.EventType = "flood"
	g, err = r.Resolve(rec)
	require.NoError(t, err)
	assert.Equal(t, "Flood claims in Kerala require a hydrology report.", g.Rule)
	assert.Equal(t, "Flood claims follow the regional inundation schedule.", g.LegalContext)
}

func TestResolver_Caching(t *testing.T) {
	r := NewResolver(nil, time.Minute)
	rec := casemodel.Sample()

	first, err := r.Resolve(rec)
	require.NoError(t, err)
	assert.Equal(t, 1, r.CachedCount())

	// Mutating a returned value must not leak into the cache.
	first.Checklist[0].Done = false

	second, err := r.Resolve(rec)
	require.NoError(t, err)
	assert.True(t, second.Checklist[0].Done)
	assert.Equal(t, 1, r.CachedCount())

	rec.Location = "Chennai, India"
	third, err := r.Resolve(rec)
	require.NoError(t, err)
	assert.Contains(t, third.Rule, "Chennai")
	assert.Equal(t, 2, r.CachedCount())
}

func TestResolver_CachingDisabled(t *testing.T) {
	r := NewResolver(nil, 0)
	_, err := r.Resolve(casemodel.Sample())
	require.NoError(t, err)
	assert.Equal(t, 0, r.CachedCount())
}

func TestResolver_Concurrent(t *testing.T) {
	r := NewResolver(nil, time.Minute)
	rec := casemodel.Sample()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g, err := r.Resolve(rec)
			assert.NoError(t, err)
			assert.Contains(t, g.Rule, "Kerala")
		}()
	}
	wg.Wait()
}
