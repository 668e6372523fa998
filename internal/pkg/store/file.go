package store

import (
	"fmt"

	"github.com/ougirez/riskmap/internal/domain"
	"github.com/spf13/viper"
)

// LoadCatalogFile reads a catalog from any format viper understands, keyed by
// sites, risk_zones, historical_events and risk_colors. Tables missing from
// the file fall back to the builtin ones.
func LoadCatalogFile(path string) (*domain.Catalog, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}

	var c domain.Catalog
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", path, err)
	}

	def := DefaultCatalog()
	if !v.IsSet("sites") {
		c.Sites = def.Sites
	}
	if !v.IsSet("risk_zones") {
		c.Zones = def.Zones
	}
	if !v.IsSet("historical_events") {
		c.Events = def.Events
	}
	if !v.IsSet("risk_colors") {
		c.RiskColors = def.RiskColors
	}

	return &c, nil
}
