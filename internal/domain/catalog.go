package domain

// Catalog holds the static tables the map is drawn from. It is built once and
// never mutated afterwards.
type Catalog struct {
	Sites      []InfrastructureSite `json:"sites" mapstructure:"sites" validate:"dive"`
	Zones      []RiskZone           `json:"risk_zones" mapstructure:"risk_zones" validate:"dive"`
	Events     []HistoricalEvent    `json:"historical_events" mapstructure:"historical_events" validate:"dive"`
	RiskColors []RiskColor          `json:"risk_colors" mapstructure:"risk_colors" validate:"dive"`
}

func (c *Catalog) Site(name string) (InfrastructureSite, bool) {
	for _, s := range c.Sites {
		if s.Name == name {
			return s, true
		}
	}
	return InfrastructureSite{}, false
}

func (c *Catalog) RiskColor(level RiskLevel) (string, bool) {
	for _, rc := range c.RiskColors {
		if rc.Level == level {
			return rc.Color, true
		}
	}
	return "", false
}
