package store

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ougirez/riskmap/internal/domain"
)

// Store is a source of the map's static tables. It is read once at startup.
type Store interface {
	ListSites(ctx context.Context) ([]domain.InfrastructureSite, error)
	ListRiskZones(ctx context.Context) ([]domain.RiskZone, error)
	ListHistoricalEvents(ctx context.Context) ([]domain.HistoricalEvent, error)
	ListRiskColors(ctx context.Context) ([]domain.RiskColor, error)
}

// LoadCatalog reads every table from s and checks the catalog invariants.
func LoadCatalog(ctx context.Context, s Store, v *validator.Validate) (*domain.Catalog, error) {
	var (
		c   domain.Catalog
		err error
	)

	if c.Sites, err = s.ListSites(ctx); err != nil {
		return nil, fmt.Errorf("ListSites: %w", err)
	}
	if c.Zones, err = s.ListRiskZones(ctx); err != nil {
		return nil, fmt.Errorf("ListRiskZones: %w", err)
	}
	if c.Events, err = s.ListHistoricalEvents(ctx); err != nil {
		return nil, fmt.Errorf("ListHistoricalEvents: %w", err)
	}
	if c.RiskColors, err = s.ListRiskColors(ctx); err != nil {
		return nil, fmt.Errorf("ListRiskColors: %w", err)
	}

	if err = ValidateCatalog(&c, v); err != nil {
		return nil, err
	}

	return &c, nil
}

func ValidateCatalog(c *domain.Catalog, v *validator.Validate) error {
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	names := make(map[string]struct{}, len(c.Sites))
	for _, s := range c.Sites {
		if _, dup := names[s.Name]; dup {
			return fmt.Errorf("invalid catalog: duplicate site %q", s.Name)
		}
		names[s.Name] = struct{}{}
	}

	zones := map[string]struct{}{
		domain.LayerInfrastructure:   {},
		domain.LayerHistoricalEvents: {},
	}
	for _, z := range c.Zones {
		if _, taken := zones[z.Name]; taken {
			return fmt.Errorf("invalid catalog: risk zone name %q is not unique among map layers", z.Name)
		}
		zones[z.Name] = struct{}{}
	}

	levels := make(map[domain.RiskLevel]struct{}, len(c.RiskColors))
	for _, rc := range c.RiskColors {
		if _, dup := levels[rc.Level]; dup {
			return fmt.Errorf("invalid catalog: duplicate color for risk level %q", rc.Level)
		}
		levels[rc.Level] = struct{}{}
	}
	for _, l := range domain.RiskLevels {
		if _, ok := levels[l]; !ok {
			return fmt.Errorf("invalid catalog: no color for risk level %q", l)
		}
	}

	return nil
}
