package store

import "github.com/ougirez/riskmap/internal/domain"

// DefaultCatalog returns the tables the map ships with. Every call builds a
// fresh copy.
func DefaultCatalog() *domain.Catalog {
	return &domain.Catalog{
		Sites: []domain.InfrastructureSite{
			{
				Name:           "National Highway N1",
				Position:       domain.Position{Lat: 23.8103, Lon: 90.4125},
				Category:       domain.CategoryHighway,
				Description:    "Critical north-south corridor, high vulnerability to flooding and erosion",
				EconomicImpact: "Potential 15% reduction in national trade flow if disrupted",
				RiskLevel:      domain.RiskHigh,
			},
			{
				Name:           "Chittagong Port",
				Position:       domain.Position{Lat: 22.3089, Lon: 91.8000},
				Category:       domain.CategoryPort,
				Description:    "Largest seaport in Bangladesh, vulnerable to cyclones and sea-level rise",
				EconomicImpact: "Handles 90% of the country's trade, severe disruption could impact GDP by 5%",
				RiskLevel:      domain.RiskVeryHigh,
			},
			{
				Name:           "Hazrat Shahjalal International Airport",
				Position:       domain.Position{Lat: 23.8513, Lon: 90.4008},
				Category:       domain.CategoryAirport,
				Description:    "Main international airport, at risk from urban flooding",
				EconomicImpact: "Disruption could affect 60% of international passenger traffic",
				RiskLevel:      domain.RiskMedium,
			},
			{
				Name:           "Dhaka-Chittagong Railway",
				Position:       domain.Position{Lat: 23.6238, Lon: 90.5000},
				Category:       domain.CategoryRailway,
				Description:    "Key rail link between capital and port city, vulnerable to flooding and landslides",
				EconomicImpact: "Disruption could reduce national freight capacity by 30%",
				RiskLevel:      domain.RiskHigh,
			},
		},
		Zones: []domain.RiskZone{
			{
				Name:  "High Risk Coastal Areas",
				Color: "red",
				Vertices: []domain.Position{
					{Lat: 21.5, Lon: 89}, {Lat: 22.5, Lon: 89}, {Lat: 22.5, Lon: 92}, {Lat: 21.5, Lon: 92},
				},
			},
			{
				Name:  "Vulnerable River Corridors",
				Color: "orange",
				Vertices: []domain.Position{
					{Lat: 23, Lon: 90}, {Lat: 24, Lon: 90}, {Lat: 24, Lon: 91}, {Lat: 23, Lon: 91},
				},
			},
		},
		Events: []domain.HistoricalEvent{
			{
				Name:     "Cyclone Sidr",
				Year:     2007,
				Position: domain.Position{Lat: 22.0, Lon: 90.0},
				Impact:   "Severe damage to coastal infrastructure",
			},
			{
				Name:     "2004 Flood",
				Year:     2004,
				Position: domain.Position{Lat: 24.0, Lon: 90.0},
				Impact:   "Major disruption to transport networks",
			},
		},
		RiskColors: []domain.RiskColor{
			{Level: domain.RiskLow, Color: "#66c2a5"},
			{Level: domain.RiskMedium, Color: "#ffd92f"},
			{Level: domain.RiskHigh, Color: "#fc8d62"},
			{Level: domain.RiskVeryHigh, Color: "#e78ac3"},
		},
	}
}
