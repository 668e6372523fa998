package domain

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Category string

const (
	CategoryHighway Category = "highway"
	CategoryPort    Category = "port"
	CategoryAirport Category = "airport"
	CategoryRailway Category = "railway"
)

// Categories in legend and dropdown order.
var Categories = []Category{CategoryHighway, CategoryPort, CategoryAirport, CategoryRailway}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Label is the singular display name, e.g. "Highway".
func (c Category) Label() string {
	return capitalize(string(c))
}

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskVeryHigh RiskLevel = "very high"
)

// RiskLevels from least to most severe.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskVeryHigh}

func (r RiskLevel) Valid() bool {
	for _, v := range RiskLevels {
		if r == v {
			return true
		}
	}
	return false
}

// Label capitalizes only the first letter: "Very high Risk".
func (r RiskLevel) Label() string {
	return capitalize(string(r)) + " Risk"
}

type Position struct {
	Lat float64 `json:"lat" mapstructure:"lat" validate:"latitude"`
	Lon float64 `json:"lon" mapstructure:"lon" validate:"longitude"`
}

// LatLng is the [lat, lon] pair Leaflet expects.
func (p Position) LatLng() [2]float64 {
	return [2]float64{p.Lat, p.Lon}
}

// Point is the [lon, lat] pair GeoJSON expects.
func (p Position) Point() orb.Point {
	return orb.Point{p.Lon, p.Lat}
}

func (p Position) String() string {
	return fmt.Sprintf("%s°%s, %s°%s",
		decimal.NewFromFloat(p.Lat).Abs().StringFixed(4), hemisphere(p.Lat, "N", "S"),
		decimal.NewFromFloat(p.Lon).Abs().StringFixed(4), hemisphere(p.Lon, "E", "W"),
	)
}

type InfrastructureSite struct {
	Name           string    `json:"name" mapstructure:"name" validate:"required"`
	Position       Position  `json:"position" mapstructure:"position"`
	Category       Category  `json:"category" mapstructure:"category" validate:"category"`
	Description    string    `json:"description" mapstructure:"description"`
	EconomicImpact string    `json:"economic_impact" mapstructure:"economic_impact"`
	RiskLevel      RiskLevel `json:"risk_level" mapstructure:"risk_level" validate:"risklevel"`
}

func hemisphere(v float64, pos, neg string) string {
	if v < 0 {
		return neg
	}
	return pos
}

// capitalize title-cases the first word only.
func capitalize(s string) string {
	first, rest, found := strings.Cut(s, " ")
	first = cases.Title(language.English).String(first)
	if !found {
		return first
	}
	return first + " " + rest
}
