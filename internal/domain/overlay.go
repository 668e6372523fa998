package domain

// Overlay names of the marker and event layers. Zones are listed in the same
// layers control under their own names, so a zone may not take one of these.
const (
	LayerInfrastructure   = "Critical Infrastructure"
	LayerHistoricalEvents = "Historical Events"
)

type RiskZone struct {
	Name     string     `json:"name" mapstructure:"name" validate:"required"`
	Color    string     `json:"color" mapstructure:"color" validate:"required"`
	Vertices []Position `json:"vertices" mapstructure:"vertices" validate:"min=3,dive"`
}

type HistoricalEvent struct {
	Name     string   `json:"name" mapstructure:"name" validate:"required"`
	Year     int      `json:"year" mapstructure:"year" validate:"gte=1000,lte=9999"`
	Position Position `json:"position" mapstructure:"position"`
	Impact   string   `json:"impact" mapstructure:"impact"`
}

type RiskColor struct {
	Level RiskLevel `json:"level" mapstructure:"level" validate:"risklevel"`
	Color string    `json:"color" mapstructure:"color" validate:"required"`
}
