package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ougirez/riskmap/internal/domain"
	"github.com/ougirez/riskmap/internal/pkg/validate"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	c, err := LoadCatalog(context.Background(), NewMemoryStore(DefaultCatalog()), validate.New())
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	if len(c.Sites) != 4 || len(c.Zones) != 2 || len(c.Events) != 2 || len(c.RiskColors) != 4 {
		t.Fatalf("unexpected table sizes: %d sites, %d zones, %d events, %d colors",
			len(c.Sites), len(c.Zones), len(c.Events), len(c.RiskColors))
	}

	port, ok := c.Site("Chittagong Port")
	if !ok {
		t.Fatalf("Chittagong Port missing")
	}
	if port.RiskLevel != domain.RiskVeryHigh {
		t.Fatalf("Chittagong Port risk = %q", port.RiskLevel)
	}
	if color, _ := c.RiskColor(domain.RiskVeryHigh); color != "#e78ac3" {
		t.Fatalf("very high color = %q", color)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore(DefaultCatalog())
	zones, _ := s.ListRiskZones(context.Background())
	zones[0].Vertices[0].Lat = 0

	again, _ := s.ListRiskZones(context.Background())
	if again[0].Vertices[0].Lat != 21.5 {
		t.Fatalf("memory store table was mutated through a returned slice")
	}
}

func TestValidateCatalogRejects(t *testing.T) {
	tests := map[string]func(c *domain.Catalog){
		"duplicate site": func(c *domain.Catalog) {
			c.Sites = append(c.Sites, c.Sites[0])
		},
		"missing color": func(c *domain.Catalog) {
			c.RiskColors = c.RiskColors[:3]
		},
		"duplicate color": func(c *domain.Catalog) {
			c.RiskColors = append(c.RiskColors, domain.RiskColor{Level: domain.RiskLow, Color: "#000"})
		},
		"bad category": func(c *domain.Catalog) {
			c.Sites[1].Category = "ferry"
		},
		"duplicate zone": func(c *domain.Catalog) {
			c.Zones[1].Name = c.Zones[0].Name
		},
		"zone named like marker layer": func(c *domain.Catalog) {
			c.Zones[0].Name = domain.LayerInfrastructure
		},
		"zone named like event layer": func(c *domain.Catalog) {
			c.Zones[1].Name = domain.LayerHistoricalEvents
		},
		"bad position": func(c *domain.Catalog) {
			c.Events[0].Position.Lat = 120
		},
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := DefaultCatalog()
			mutate(c)
			if err := ValidateCatalog(c, validate.New()); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestLoadCatalogFile(t *testing.T) {
	const doc = `
sites:
  - name: Mongla Port
    position: {lat: 22.4833, lon: 89.6000}
    category: port
    description: Second seaport
    economic_impact: Handles south-west trade
    risk_level: very high
  - name: Padma Bridge Road
    position: {lat: 23.4400, lon: 90.2600}
    category: highway
    risk_level: medium
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c, err := LoadCatalogFile(path)
	if err != nil {
		t.Fatalf("LoadCatalogFile: %v", err)
	}
	if err = ValidateCatalog(c, validate.New()); err != nil {
		t.Fatalf("ValidateCatalog: %v", err)
	}

	if len(c.Sites) != 2 || c.Sites[0].Name != "Mongla Port" {
		t.Fatalf("sites = %#v", c.Sites)
	}
	if c.Sites[0].RiskLevel != domain.RiskVeryHigh || c.Sites[0].Position.Lat != 22.4833 {
		t.Fatalf("first site decoded as %#v", c.Sites[0])
	}
	if len(c.Zones) != 2 || len(c.RiskColors) != 4 {
		t.Fatalf("missing tables did not fall back to builtin ones")
	}
}

func TestLoadCatalogFileMissing(t *testing.T) {
	if _, err := LoadCatalogFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestQueries(t *testing.T) {
	sql, _, err := sitesQuery().ToSql()
	if err != nil {
		t.Fatalf("sitesQuery: %v", err)
	}
	if !strings.HasPrefix(sql, "SELECT name, lat, lon") || !strings.HasSuffix(sql, "FROM infrastructure_sites ORDER BY ordinal") {
		t.Fatalf("sitesQuery sql = %q", sql)
	}

	sql, _, err = zonesQuery().ToSql()
	if err != nil {
		t.Fatalf("zonesQuery: %v", err)
	}
	if !strings.Contains(sql, "JOIN risk_zone_vertices v on v.zone_id=z.id") || !strings.HasSuffix(sql, "ORDER BY z.ordinal, v.seq") {
		t.Fatalf("zonesQuery sql = %q", sql)
	}

	c := DefaultCatalog()
	sql, args, err := insertSitesQuery(c.Sites).ToSql()
	if err != nil {
		t.Fatalf("insertSitesQuery: %v", err)
	}
	if !strings.HasPrefix(sql, "INSERT INTO infrastructure_sites") || !strings.Contains(sql, "$32") {
		t.Fatalf("insertSitesQuery sql = %q", sql)
	}
	if len(args) != 4*8 {
		t.Fatalf("insertSitesQuery args = %d, want 32", len(args))
	}

	sql, _, err = insertZoneQuery(0, c.Zones[0]).ToSql()
	if err != nil {
		t.Fatalf("insertZoneQuery: %v", err)
	}
	if !strings.HasSuffix(sql, "RETURNING id") {
		t.Fatalf("insertZoneQuery sql = %q", sql)
	}
}

func TestGroupZoneVertices(t *testing.T) {
	rows := []zoneVertexRow{
		{ZoneID: 7, Name: "a", Color: "red", Lat: 1, Lon: 1},
		{ZoneID: 7, Name: "a", Color: "red", Lat: 2, Lon: 1},
		{ZoneID: 7, Name: "a", Color: "red", Lat: 2, Lon: 2},
		{ZoneID: 9, Name: "b", Color: "orange", Lat: 5, Lon: 5},
	}
	zones := groupZoneVertices(rows)
	if len(zones) != 2 {
		t.Fatalf("got %d zones, want 2", len(zones))
	}
	if zones[0].Name != "a" || len(zones[0].Vertices) != 3 || zones[0].Vertices[1].Lat != 2 {
		t.Fatalf("zone a = %#v", zones[0])
	}
	if zones[1].Color != "orange" || len(zones[1].Vertices) != 1 {
		t.Fatalf("zone b = %#v", zones[1])
	}
	if got := groupZoneVertices(nil); len(got) != 0 {
		t.Fatalf("expected no zones for no rows")
	}
}
