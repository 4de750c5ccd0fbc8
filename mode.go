package circlemode

import (
	"log"
	"math"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
)

// MinRadiusKm - floor applied to the radius so coinciding clicks still
// produce a drawable circle
const MinRadiusKm = 0.001

// TwoClickMode - the surface a two-click gesture host drives: Build once per
// completed gesture or preview frame, then Tooltips for the overlay text.
type TwoClickMode interface {
	Build(boundary, center orb.Point, config *ModeConfig) *CircleResult
	Tooltips(config *ModeConfig) []Tooltip
}

// CircleResult - the annotated circle produced by a single Build call
type CircleResult struct {
	Feature *geojson.Feature
	Polygon orb.Polygon
	Center  orb.Point

	// Radius in kilometers, never below MinRadiusKm.
	Radius float64

	// Area of Polygon in square meters.
	Area float64

	Steps int
}

// Record - compact measurement record of the result
func (r *CircleResult) Record() CircleRecord {
	return CircleRecord{
		Center: r.Center,
		Radius: r.Radius,
		Area:   r.Area,
		Steps:  r.Steps,
	}
}

// DrawCircleFromCenterMode derives a circle from a boundary click and a
// center click and keeps the latest measurement for the tooltip.
//
// The mode is driven from a single input loop and is not safe for
// concurrent use.
type DrawCircleFromCenterMode struct {
	// Logger receives diagnostics, log.Default() when nil.
	Logger *log.Logger

	radius     float64
	areaCircle float64
	position   orb.Point
	tooltips   tooltipCache
}

var _ TwoClickMode = (*DrawCircleFromCenterMode)(nil)

// NewDrawCircleFromCenterMode - constructor
func NewDrawCircleFromCenterMode(logger *log.Logger) *DrawCircleFromCenterMode {
	return &DrawCircleFromCenterMode{Logger: logger}
}

func (m *DrawCircleFromCenterMode) logger() *log.Logger {
	if m.Logger == nil {
		return log.Default()
	}
	return m.Logger
}

// Build computes the circle through boundary around center and replaces the
// measurement held by the mode.
func (m *DrawCircleFromCenterMode) Build(boundary, center orb.Point, config *ModeConfig) *CircleResult {
	steps := config.resolveSteps(m.logger())

	m.position = center
	m.radius = math.Max(DistanceKm(boundary, center), MinRadiusKm)

	polygon := orb.Polygon{GenerateCircle(center, m.radius, steps)}
	feature := newCircleFeature(polygon, m.radius, center)
	m.areaCircle = RingArea(polygon[0])

	return &CircleResult{
		Feature: feature,
		Polygon: polygon,
		Center:  center,
		Radius:  m.radius,
		Area:    m.areaCircle,
		Steps:   steps,
	}
}

// Tooltips returns the overlay for the latest measurement, empty until the
// first Build.
func (m *DrawCircleFromCenterMode) Tooltips(config *ModeConfig) []Tooltip {
	return m.tooltips.get(config, m.radius, m.areaCircle, m.position)
}

// Reset drops the measurement, used when the host starts a new gesture.
func (m *DrawCircleFromCenterMode) Reset() {
	m.radius = 0
	m.areaCircle = 0
	m.position = orb.Point{}
}

// Radius - latest radius in kilometers, zero before the first Build
func (m *DrawCircleFromCenterMode) Radius() float64 {
	return m.radius
}

// Area - latest area in square meters, zero before the first Build
func (m *DrawCircleFromCenterMode) Area() float64 {
	return m.areaCircle
}

// Position - latest center point
func (m *DrawCircleFromCenterMode) Position() orb.Point {
	return m.position
}
