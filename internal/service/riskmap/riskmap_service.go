package riskmap

import (
	"fmt"

	"github.com/ougirez/riskmap/internal/domain"
	"github.com/ougirez/riskmap/internal/domain/dto"
	"github.com/ougirez/riskmap/internal/pkg/constants"
)

const (
	Title = "Bangladesh Transport Infrastructure Risk Map"

	LayerInfrastructure   = domain.LayerInfrastructure
	LayerHistoricalEvents = domain.LayerHistoricalEvents

	eventRadius      = 10
	eventColor       = "purple"
	eventFillOpacity = 0.5

	DefaultIconBaseURL = "https://cdn.rawgit.com/pointhi/leaflet-color-markers/master/img/"
	DefaultTileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
)

var iconColors = map[domain.Category]string{
	domain.CategoryHighway: "blue",
	domain.CategoryPort:    "green",
	domain.CategoryAirport: "red",
	domain.CategoryRailway: "yellow",
}

func DefaultMapOptions() dto.MapOptions {
	return dto.MapOptions{
		Center:                dto.LatLng{23.6850, 90.3563},
		Zoom:                  7,
		TileURL:               DefaultTileURL,
		Attribution:           DefaultAttribution,
		ZoomControlPosition:   "bottomright",
		LayersControlPosition: "topright",
	}
}

type Option func(s *Service)

func WithMapOptions(opts dto.MapOptions) Option {
	return func(s *Service) { s.mapOpts = opts }
}

func WithIconBaseURL(base string) Option {
	return func(s *Service) { s.icons = buildIcons(base) }
}

// WithFilterObserver is called with every filter a site list is derived for.
func WithFilterObserver(fn func(f domain.Filter)) Option {
	return func(s *Service) { s.onFilter = fn }
}

type Service struct {
	catalog  *domain.Catalog
	mapOpts  dto.MapOptions
	icons    map[domain.Category]dto.Icon
	onFilter func(f domain.Filter)
}

func NewService(catalog *domain.Catalog, opts ...Option) *Service {
	s := &Service{
		catalog:  catalog,
		mapOpts:  DefaultMapOptions(),
		icons:    buildIcons(DefaultIconBaseURL),
		onFilter: func(domain.Filter) {},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func buildIcons(base string) map[domain.Category]dto.Icon {
	icons := make(map[domain.Category]dto.Icon, len(iconColors))
	for c, color := range iconColors {
		icons[c] = dto.Icon{
			URL:         fmt.Sprintf("%smarker-icon-2x-%s.png", base, color),
			Size:        [2]int{25, 41},
			Anchor:      [2]int{12, 41},
			PopupAnchor: [2]int{1, -34},
		}
	}
	return icons
}

func (s *Service) FilteredSites(f domain.Filter) []domain.InfrastructureSite {
	s.onFilter(f)
	return domain.FilterSites(s.catalog.Sites, f)
}

func (s *Service) Site(name string) (domain.InfrastructureSite, error) {
	site, ok := s.catalog.Site(name)
	if !ok {
		return domain.InfrastructureSite{}, fmt.Errorf("%w: %q", constants.ErrSiteNotFound, name)
	}
	return site, nil
}

func (s *Service) Markers(state domain.ViewState) []dto.Marker {
	sites := s.FilteredSites(state.Filter)
	markers := make([]dto.Marker, 0, len(sites))
	for _, site := range sites {
		markers = append(markers, dto.Marker{
			Name:      site.Name,
			Position:  site.Position.LatLng(),
			Category:  site.Category,
			RiskLevel: site.RiskLevel,
			Icon:      s.icons[site.Category],
			Popup:     sitePopup(site),
			Href:      state.Select(site.Name).Href(),
			Selected:  state.SelectedName() == site.Name,
		})
	}
	return markers
}

func sitePopup(site domain.InfrastructureSite) dto.Popup {
	return dto.Popup{
		Title: site.Name,
		Lines: []string{
			"Type: " + string(site.Category),
			"Risk Level: " + string(site.RiskLevel),
		},
	}
}

// Detail resolves the selection against the catalog. A name that is not in
// the catalog is treated as no selection.
func (s *Service) Detail(state domain.ViewState) *dto.DetailPanel {
	if state.Selected == nil {
		return nil
	}
	site, ok := s.catalog.Site(*state.Selected)
	if !ok {
		return nil
	}

	color, _ := s.catalog.RiskColor(site.RiskLevel)
	return &dto.DetailPanel{
		Name:           site.Name,
		Category:       string(site.Category),
		RiskLevel:      string(site.RiskLevel),
		RiskColor:      color,
		Description:    site.Description,
		EconomicImpact: site.EconomicImpact,
		Position:       site.Position.String(),
		CloseHref:      state.ClearSelection().Href(),
	}
}

func (s *Service) Zones() []dto.ZoneOverlay {
	zones := make([]dto.ZoneOverlay, 0, len(s.catalog.Zones))
	for _, z := range s.catalog.Zones {
		positions := make([]dto.LatLng, 0, len(z.Vertices))
		for _, v := range z.Vertices {
			positions = append(positions, v.LatLng())
		}
		zones = append(zones, dto.ZoneOverlay{Name: z.Name, Color: z.Color, Positions: positions})
	}
	return zones
}

func (s *Service) Events() []dto.EventOverlay {
	events := make([]dto.EventOverlay, 0, len(s.catalog.Events))
	for _, e := range s.catalog.Events {
		events = append(events, dto.EventOverlay{
			Name:        e.Name,
			Year:        e.Year,
			Position:    e.Position.LatLng(),
			Radius:      eventRadius,
			Color:       eventColor,
			FillColor:   eventColor,
			FillOpacity: eventFillOpacity,
			Popup: dto.Popup{
				Title: fmt.Sprintf("%s (%d)", e.Name, e.Year),
				Lines: []string{"Impact: " + e.Impact},
			},
		})
	}
	return events
}

// Legend does not depend on filter or selection.
func (s *Service) Legend() dto.Legend {
	l := dto.Legend{
		RiskLevels: make([]dto.LegendEntry, 0, len(domain.RiskLevels)),
		Categories: make([]dto.LegendEntry, 0, len(domain.Categories)),
		HistoricalEvent: dto.LegendEntry{
			Label: "Historical Event",
			Shape: dto.LegendShapeCircle,
			Color: eventColor,
		},
	}
	for _, level := range domain.RiskLevels {
		color, _ := s.catalog.RiskColor(level)
		l.RiskLevels = append(l.RiskLevels, dto.LegendEntry{
			Label: level.Label(),
			Shape: dto.LegendShapeSquare,
			Color: color,
		})
	}
	for _, c := range domain.Categories {
		l.Categories = append(l.Categories, dto.LegendEntry{
			Label:   c.Label(),
			Shape:   dto.LegendShapeIcon,
			IconURL: s.icons[c].URL,
			Alt:     string(c),
		})
	}
	return l
}

func (s *Service) Filters(current domain.Filter) []dto.FilterChoice {
	opts := domain.FilterOptions()
	choices := make([]dto.FilterChoice, 0, len(opts))
	for _, o := range opts {
		choices = append(choices, dto.FilterChoice{FilterOption: o, Selected: o.Value == current})
	}
	return choices
}

func (s *Service) View(state domain.ViewState) dto.MapView {
	if state.Filter == "" {
		state.Filter = domain.FilterAll
	}
	detail := s.Detail(state)
	if detail == nil {
		state = state.ClearSelection()
	}

	return dto.MapView{
		Title:   Title,
		State:   state,
		Filters: s.Filters(state.Filter),
		Map:     s.mapOpts,
		Layers: dto.LayerNames{
			Infrastructure:   LayerInfrastructure,
			HistoricalEvents: LayerHistoricalEvents,
		},
		Markers: s.Markers(state),
		Zones:   s.Zones(),
		Events:  s.Events(),
		Detail:  detail,
		Legend:  s.Legend(),
	}
}
