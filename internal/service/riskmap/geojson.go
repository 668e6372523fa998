package riskmap

import (
	"github.com/ougirez/riskmap/internal/domain"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func (s *Service) SitesGeoJSON(state domain.ViewState) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, m := range s.Markers(state) {
		f := geojson.NewFeature(orb.Point{m.Position[1], m.Position[0]})
		f.Properties["name"] = m.Name
		f.Properties["category"] = m.Category
		f.Properties["risk_level"] = m.RiskLevel
		f.Properties["icon"] = m.Icon
		f.Properties["popup"] = m.Popup
		f.Properties["href"] = m.Href
		fc.Append(f)
	}
	return fc
}

// ZonesGeoJSON emits each zone as a polygon with one closed ring.
func (s *Service) ZonesGeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, z := range s.catalog.Zones {
		f := geojson.NewFeature(orb.Polygon{zoneRing(z.Vertices)})
		f.Properties["name"] = z.Name
		f.Properties["color"] = z.Color
		fc.Append(f)
	}
	return fc
}

func zoneRing(vertices []domain.Position) orb.Ring {
	ring := make(orb.Ring, 0, len(vertices)+1)
	for _, v := range vertices {
		ring = append(ring, v.Point())
	}
	if len(ring) > 0 && !ring.Closed() {
		ring = append(ring, ring[0])
	}
	return ring
}

func (s *Service) EventsGeoJSON() *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, e := range s.Events() {
		f := geojson.NewFeature(orb.Point{e.Position[1], e.Position[0]})
		f.Properties["name"] = e.Name
		f.Properties["year"] = e.Year
		f.Properties["radius"] = e.Radius
		f.Properties["color"] = e.Color
		f.Properties["fill_color"] = e.FillColor
		f.Properties["fill_opacity"] = e.FillOpacity
		f.Properties["popup"] = e.Popup
		fc.Append(f)
	}
	return fc
}
