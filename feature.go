package circlemode

import (
	"encoding/json"
	"errors"
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
)

const (
	// ShapeCircle - shape discriminator written to circle features
	ShapeCircle = "Circle"
	// UnitKilometers - unit of the stored radius
	UnitKilometers = "kilometers"
)

// ErrNoEditProperties is returned when a feature carries no editProperties.
var ErrNoEditProperties = errors.New("feature has no editProperties")

// Measurement - a value with its unit
type Measurement struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// EditProperties - metadata read back by editing and export layers
type EditProperties struct {
	Shape  string      `json:"shape"`
	Radius Measurement `json:"radius"`
	Center []float64   `json:"center"`
}

func newCircleFeature(polygon orb.Polygon, radius float64, center orb.Point) *geojson.Feature {
	feature := geojson.NewPolygonFeature(polygonCoordinates(polygon))
	feature.SetProperty("shape", ShapeCircle)
	feature.SetProperty("editProperties", EditProperties{
		Shape:  ShapeCircle,
		Radius: Measurement{Value: radius, Unit: UnitKilometers},
		Center: PointToLngLat(center),
	})
	return feature
}

// ParseEditProperties - read the editProperties of a feature, either as built
// in memory or after a round trip through JSON
func ParseEditProperties(feature *geojson.Feature) (EditProperties, error) {
	var props EditProperties

	raw, ok := feature.Properties["editProperties"]
	if !ok || raw == nil {
		return props, ErrNoEditProperties
	}
	if p, ok := raw.(EditProperties); ok {
		return p, nil
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return props, fmt.Errorf("encode editProperties: %w", err)
	}
	if err := json.Unmarshal(data, &props); err != nil {
		return props, fmt.Errorf("decode editProperties: %w", err)
	}
	return props, nil
}
