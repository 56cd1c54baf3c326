package guidance

import (
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/rshade/casedesk/internal/casemodel"
)

// DefaultCacheTTL is how long a resolved guidance stays cached.
const DefaultCacheTTL = 5 * time.Minute

// Resolver looks up guidance for case records and memoises the rendered result.
// It is safe for concurrent use.
type Resolver struct {
	catalog *Catalog
	cache   *gocache.Cache
}

// NewResolver returns a Resolver over catalog. A nil catalog means Default().
// A non-positive ttl disables caching.
func NewResolver(catalog *Catalog, ttl time.Duration) *Resolver {
	if catalog == nil {
		catalog = Default()
	}
	r := &Resolver{catalog: catalog}
	if ttl > 0 {
		r.cache = gocache.New(ttl, 2*ttl)
	}
	return r
}

// Resolve returns the guidance for record. The rule text is rendered with the
// record's primary location segment, trimmed of surrounding spaces.
func (r *Resolver) Resolve(record casemodel.CaseRecord) (Guidance, error) {
	data := RuleData{
		Location:  strings.TrimSpace(casemodel.PrimaryLocationSegment(record)),
		EventType: record.EventType,
		Category:  record.Category,
		CaseID:    record.ID,
	}
	key := cacheKey(data)

	if r.cache != nil {
		if cached, ok := r.cache.Get(key); ok {
			if g, ok := cached.(Guidance); ok {
				return g.clone(), nil
			}
		}
	}

	i := r.catalog.lookup(record.EventType)
	if i < 0 {
		return Guidance{}, fmt.Errorf("%w %q", ErrNoGuidance, record.EventType)
	}

	g, err := r.catalog.render(i, data)
	if err != nil {
		return Guidance{}, err
	}

	if r.cache != nil {
		r.cache.SetDefault(key, g.clone())
	}
	return g, nil
}

// CachedCount returns the number of cached resolutions.
func (r *Resolver) CachedCount() int {
	if r.cache == nil {
		return 0
	}
	return r.cache.ItemCount()
}

// cacheKey covers every field a rule template can reference.
func cacheKey(d RuleData) string {
	return strings.Join([]string{
		strings.ToLower(strings.TrimSpace(d.EventType)), d.Location, d.Category, d.CaseID,
	}, "\x00")
}
