package store

import (
	"context"
	_ "embed"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/ougirez/riskmap/internal/domain"
	"github.com/ougirez/riskmap/internal/pkg/logger"
	"github.com/ougirez/riskmap/internal/pkg/store/xpgx"
)

type Pool = xpgx.Pool

//go:embed migrations/schema.sql
var schemaSQL string

var (
	sitesColumns  = []string{"name", "lat", "lon", "category", "description", "economic_impact", "risk_level"}
	eventsColumns = []string{"name", "year", "lat", "lon", "impact"}
	colorsColumns = []string{"risk_level", "color"}
)

type siteRow struct {
	Name           string  `db:"name"`
	Lat            float64 `db:"lat"`
	Lon            float64 `db:"lon"`
	Category       string  `db:"category"`
	Description    string  `db:"description"`
	EconomicImpact string  `db:"economic_impact"`
	RiskLevel      string  `db:"risk_level"`
}

type zoneVertexRow struct {
	ZoneID int     `db:"zone_id"`
	Name   string  `db:"name"`
	Color  string  `db:"color"`
	Lat    float64 `db:"lat"`
	Lon    float64 `db:"lon"`
}

type eventRow struct {
	Name   string  `db:"name"`
	Year   int     `db:"year"`
	Lat    float64 `db:"lat"`
	Lon    float64 `db:"lon"`
	Impact string  `db:"impact"`
}

type colorRow struct {
	RiskLevel string `db:"risk_level"`
	Color     string `db:"color"`
}

type idRow struct {
	ID int `db:"id"`
}

type pgStore struct {
	pool Pool
}

// PostgresStore is a Store that can also be (re)populated.
type PostgresStore interface {
	Store
	Migrate(ctx context.Context) error
	ReplaceCatalog(ctx context.Context, c *domain.Catalog) error
}

func NewPostgresStore(pool Pool) PostgresStore {
	return &pgStore{pool: pool}
}

func (s *pgStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func sitesQuery() sq.SelectBuilder {
	return builder().Select(sitesColumns...).
		From(tableSites).
		OrderBy("ordinal")
}

func zonesQuery() sq.SelectBuilder {
	return builder().Select("z.id as zone_id", "z.name", "z.color", "v.lat", "v.lon").
		From(tableRiskZones + " z").
		Join(tableZoneVertices + " v on v.zone_id=z.id").
		OrderBy("z.ordinal", "v.seq")
}

func eventsQuery() sq.SelectBuilder {
	return builder().Select(eventsColumns...).
		From(tableEvents).
		OrderBy("ordinal")
}

func colorsQuery() sq.SelectBuilder {
	return builder().Select(colorsColumns...).
		From(tableRiskColors)
}

func (s *pgStore) ListSites(ctx context.Context) ([]domain.InfrastructureSite, error) {
	rows, err := xpgx.Selectx[siteRow](ctx, s.pool, sitesQuery())
	if err != nil {
		logger.Errorf(ctx, "select sites: %s", err.Error())
		return nil, wrapErr(err)
	}

	sites := make([]domain.InfrastructureSite, 0, len(rows))
	for _, r := range rows {
		sites = append(sites, domain.InfrastructureSite{
			Name:           r.Name,
			Position:       domain.Position{Lat: r.Lat, Lon: r.Lon},
			Category:       domain.Category(r.Category),
			Description:    r.Description,
			EconomicImpact: r.EconomicImpact,
			RiskLevel:      domain.RiskLevel(r.RiskLevel),
		})
	}

	return sites, nil
}

func (s *pgStore) ListRiskZones(ctx context.Context) ([]domain.RiskZone, error) {
	rows, err := xpgx.Selectx[zoneVertexRow](ctx, s.pool, zonesQuery())
	if err != nil {
		logger.Errorf(ctx, "select zones: %s", err.Error())
		return nil, wrapErr(err)
	}

	return groupZoneVertices(rows), nil
}

// groupZoneVertices expects rows ordered by zone, then vertex sequence.
func groupZoneVertices(rows []zoneVertexRow) []domain.RiskZone {
	zones := make([]domain.RiskZone, 0)
	lastID := -1
	for _, r := range rows {
		if r.ZoneID != lastID {
			zones = append(zones, domain.RiskZone{Name: r.Name, Color: r.Color})
			lastID = r.ZoneID
		}
		z := &zones[len(zones)-1]
		z.Vertices = append(z.Vertices, domain.Position{Lat: r.Lat, Lon: r.Lon})
	}
	return zones
}

func (s *pgStore) ListHistoricalEvents(ctx context.Context) ([]domain.HistoricalEvent, error) {
	rows, err := xpgx.Selectx[eventRow](ctx, s.pool, eventsQuery())
	if err != nil {
		logger.Errorf(ctx, "select events: %s", err.Error())
		return nil, wrapErr(err)
	}

	events := make([]domain.HistoricalEvent, 0, len(rows))
	for _, r := range rows {
		events = append(events, domain.HistoricalEvent{
			Name:     r.Name,
			Year:     r.Year,
			Position: domain.Position{Lat: r.Lat, Lon: r.Lon},
			Impact:   r.Impact,
		})
	}

	return events, nil
}

func (s *pgStore) ListRiskColors(ctx context.Context) ([]domain.RiskColor, error) {
	rows, err := xpgx.Selectx[colorRow](ctx, s.pool, colorsQuery())
	if err != nil {
		logger.Errorf(ctx, "select risk colors: %s", err.Error())
		return nil, wrapErr(err)
	}

	byLevel := make(map[domain.RiskLevel]string, len(rows))
	for _, r := range rows {
		byLevel[domain.RiskLevel(r.RiskLevel)] = r.Color
	}

	// legend order follows the severity scale, not the table
	colors := make([]domain.RiskColor, 0, len(rows))
	for _, l := range domain.RiskLevels {
		if c, ok := byLevel[l]; ok {
			colors = append(colors, domain.RiskColor{Level: l, Color: c})
			delete(byLevel, l)
		}
	}
	for l, c := range byLevel {
		colors = append(colors, domain.RiskColor{Level: l, Color: c})
	}

	return colors, nil
}

func (s *pgStore) ReplaceCatalog(ctx context.Context, c *domain.Catalog) error {
	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		for _, table := range []string{tableZoneVertices, tableRiskZones, tableSites, tableEvents, tableRiskColors} {
			if _, err := xpgx.Execx(ctx, tx, builder().Delete(table)); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		if len(c.Sites) > 0 {
			if _, err := xpgx.Execx(ctx, tx, insertSitesQuery(c.Sites)); err != nil {
				return fmt.Errorf("insert sites: %w", err)
			}
		}

		for i, z := range c.Zones {
			inserted, err := xpgx.Getx[idRow](ctx, tx, insertZoneQuery(i, z))
			if err != nil {
				return fmt.Errorf("insert zone %q: %w", z.Name, wrapErr(err))
			}
			if _, err = xpgx.Execx(ctx, tx, insertVerticesQuery(inserted.ID, z.Vertices)); err != nil {
				return fmt.Errorf("insert vertices of %q: %w", z.Name, err)
			}
		}

		if len(c.Events) > 0 {
			if _, err := xpgx.Execx(ctx, tx, insertEventsQuery(c.Events)); err != nil {
				return fmt.Errorf("insert events: %w", err)
			}
		}

		if len(c.RiskColors) > 0 {
			if _, err := xpgx.Execx(ctx, tx, insertColorsQuery(c.RiskColors)); err != nil {
				return fmt.Errorf("insert risk colors: %w", err)
			}
		}

		logger.Infof(ctx, "catalog replaced: %d sites, %d zones, %d events", len(c.Sites), len(c.Zones), len(c.Events))
		return nil
	})
}

func insertSitesQuery(sites []domain.InfrastructureSite) sq.InsertBuilder {
	query := builder().Insert(tableSites).
		Columns(append([]string{"ordinal"}, sitesColumns...)...)
	for i, s := range sites {
		query = query.Values(i, s.Name, s.Position.Lat, s.Position.Lon, string(s.Category), s.Description, s.EconomicImpact, string(s.RiskLevel))
	}
	return query
}

func insertZoneQuery(ordinal int, z domain.RiskZone) sq.InsertBuilder {
	return builder().Insert(tableRiskZones).
		Columns("ordinal", "name", "color").
		Values(ordinal, z.Name, z.Color).
		Suffix("RETURNING id")
}

func insertVerticesQuery(zoneID int, vertices []domain.Position) sq.InsertBuilder {
	query := builder().Insert(tableZoneVertices).
		Columns("zone_id", "seq", "lat", "lon")
	for i, v := range vertices {
		query = query.Values(zoneID, i, v.Lat, v.Lon)
	}
	return query
}

func insertEventsQuery(events []domain.HistoricalEvent) sq.InsertBuilder {
	query := builder().Insert(tableEvents).
		Columns(append([]string{"ordinal"}, eventsColumns...)...)
	for i, e := range events {
		query = query.Values(i, e.Name, e.Year, e.Position.Lat, e.Position.Lon, e.Impact)
	}
	return query
}

func insertColorsQuery(colors []domain.RiskColor) sq.InsertBuilder {
	query := builder().Insert(tableRiskColors).
		Columns(colorsColumns...)
	for _, rc := range colors {
		query = query.Values(string(rc.Level), rc.Color)
	}
	return query
}
