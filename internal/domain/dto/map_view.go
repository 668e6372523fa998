package dto

import "github.com/ougirez/riskmap/internal/domain"

type LatLng = [2]float64

type MapOptions struct {
	Center                LatLng `json:"center"`
	Zoom                  int    `json:"zoom"`
	TileURL               string `json:"tile_url"`
	Attribution           string `json:"attribution"`
	ZoomControlPosition   string `json:"zoom_control_position"`
	LayersControlPosition string `json:"layers_control_position"`
}

type Icon struct {
	URL         string `json:"url"`
	Size        [2]int `json:"size"`
	Anchor      [2]int `json:"anchor"`
	PopupAnchor [2]int `json:"popup_anchor"`
}

type Popup struct {
	Title string   `json:"title"`
	Lines []string `json:"lines"`
}

type Marker struct {
	Name      string           `json:"name"`
	Position  LatLng           `json:"position"`
	Category  domain.Category  `json:"category"`
	RiskLevel domain.RiskLevel `json:"risk_level"`
	Icon      Icon             `json:"icon"`
	Popup     Popup            `json:"popup"`
	Href      string           `json:"href"`
	Selected  bool             `json:"selected"`
}

type ZoneOverlay struct {
	Name      string   `json:"name"`
	Color     string   `json:"color"`
	Positions []LatLng `json:"positions"`
}

type EventOverlay struct {
	Name        string  `json:"name"`
	Year        int     `json:"year"`
	Position    LatLng  `json:"position"`
	Radius      int     `json:"radius"`
	Color       string  `json:"color"`
	FillColor   string  `json:"fill_color"`
	FillOpacity float64 `json:"fill_opacity"`
	Popup       Popup   `json:"popup"`
}

type LayerNames struct {
	Infrastructure   string `json:"infrastructure"`
	HistoricalEvents string `json:"historical_events"`
}

type DetailPanel struct {
	Name           string `json:"name"`
	Category       string `json:"category"`
	RiskLevel      string `json:"risk_level"`
	RiskColor      string `json:"risk_color"`
	Description    string `json:"description"`
	EconomicImpact string `json:"economic_impact"`
	Position       string `json:"position"`
	CloseHref      string `json:"close_href"`
}

const (
	LegendShapeSquare = "square"
	LegendShapeIcon   = "icon"
	LegendShapeCircle = "circle"
)

type LegendEntry struct {
	Label   string `json:"label"`
	Shape   string `json:"shape"`
	Color   string `json:"color,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
	Alt     string `json:"alt,omitempty"`
}

type Legend struct {
	RiskLevels      []LegendEntry `json:"risk_levels"`
	Categories      []LegendEntry `json:"categories"`
	HistoricalEvent LegendEntry   `json:"historical_event"`
}

// Entries flattens the legend in display order.
func (l Legend) Entries() []LegendEntry {
	out := make([]LegendEntry, 0, len(l.RiskLevels)+len(l.Categories)+1)
	out = append(out, l.RiskLevels...)
	out = append(out, l.Categories...)
	return append(out, l.HistoricalEvent)
}

type FilterChoice struct {
	domain.FilterOption
	Selected bool `json:"selected"`
}

type MapView struct {
	Title   string           `json:"title"`
	State   domain.ViewState `json:"state"`
	Filters []FilterChoice   `json:"filters"`
	Map     MapOptions       `json:"map"`
	Layers  LayerNames       `json:"layers"`
	Markers []Marker         `json:"markers"`
	Zones   []ZoneOverlay    `json:"zones"`
	Events  []EventOverlay   `json:"events"`
	Detail  *DetailPanel     `json:"detail,omitempty"`
	Legend  Legend           `json:"legend"`
}
