package store

import (
	"context"

	"github.com/ougirez/riskmap/internal/domain"
)

type memStore struct {
	catalog *domain.Catalog
}

// NewMemoryStore serves tables that are already in memory, e.g. the builtin
// catalog or one read from a file.
func NewMemoryStore(c *domain.Catalog) Store {
	return &memStore{catalog: c}
}

func (s *memStore) ListSites(_ context.Context) ([]domain.InfrastructureSite, error) {
	return append([]domain.InfrastructureSite(nil), s.catalog.Sites...), nil
}

func (s *memStore) ListRiskZones(_ context.Context) ([]domain.RiskZone, error) {
	out := make([]domain.RiskZone, 0, len(s.catalog.Zones))
	for _, z := range s.catalog.Zones {
		z.Vertices = append([]domain.Position(nil), z.Vertices...)
		out = append(out, z)
	}
	return out, nil
}

func (s *memStore) ListHistoricalEvents(_ context.Context) ([]domain.HistoricalEvent, error) {
	return append([]domain.HistoricalEvent(nil), s.catalog.Events...), nil
}

func (s *memStore) ListRiskColors(_ context.Context) ([]domain.RiskColor, error) {
	return append([]domain.RiskColor(nil), s.catalog.RiskColors...), nil
}
