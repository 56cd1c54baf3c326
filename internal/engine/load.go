package engine

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/casedesk/internal/casemodel"
	"github.com/rshade/casedesk/internal/guidance"
	"github.com/rshade/casedesk/internal/ingest"
	"github.com/rshade/casedesk/internal/logging"
)

// Sources names where the dashboard inputs come from. Empty paths select the
// built-in sample case and default catalog.
type Sources struct {
	CaseFile    string
	CatalogFile string
}

// Inputs are the loaded dashboard inputs.
type Inputs struct {
	Case    casemodel.CaseRecord
	Catalog *guidance.Catalog
}

// Load reads the case record and guidance catalog concurrently.
func Load(ctx context.Context, src Sources) (Inputs, error) {
	logger := logging.FromContext(ctx).With().
		Str("component", "engine").
		Str("operation", "Load").
		Logger()

	var in Inputs
	var g errgroup.Group

	g.Go(func() error {
		if src.CaseFile == "" {
			in.Case = casemodel.Sample()
			return nil
		}
		record, err := ingest.LoadCaseFile(src.CaseFile)
		if err != nil {
			return err
		}
		in.Case = record
		return nil
	})

	g.Go(func() error {
		if src.CatalogFile == "" {
			in.Catalog = guidance.Default()
			return nil
		}
		catalog, err := guidance.LoadCatalog(src.CatalogFile)
		if err != nil {
			return err
		}
		in.Catalog = catalog
		return nil
	})

	if err := g.Wait(); err != nil {
		return Inputs{}, fmt.Errorf("loading dashboard inputs: %w", err)
	}

	logger.Debug().
		Str("case_id", in.Case.ID).
		Bool("sample_case", src.CaseFile == "").
		Int("catalog_entries", len(in.Catalog.Entries)).
		Msg("inputs loaded")
	return in, nil
}

// ResolveGuidance resolves guidance for record. A record with no matching
// catalog entry is not an error: the result is nil and the dashboard shows no
// guidance panel.
func ResolveGuidance(ctx context.Context, r *guidance.Resolver, record casemodel.CaseRecord) (*guidance.Guidance, error) {
	g, err := r.Resolve(record)
	if err != nil {
		if errors.Is(err, guidance.ErrNoGuidance) {
			logging.FromContext(ctx).Info().
				Str("component", "engine").
				Str("event_type", record.EventType).
				Msg("no guidance for event type")
			return nil, nil
		}
		return nil, err
	}
	return &g, nil
}
