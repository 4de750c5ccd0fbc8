package circlemode

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMode() (*DrawCircleFromCenterMode, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewDrawCircleFromCenterMode(log.New(&buf, "", 0)), &buf
}

func TestBuildOneDegreeCircle(t *testing.T) {
	var mode, logs = newTestMode()
	var result = mode.Build(orb.Point{0, 0}, orb.Point{0, 1}, nil)

	assert.InDelta(t, 111.195, result.Radius, 0.001)
	assert.Equal(t, DefaultSteps, result.Steps)
	require.Len(t, result.Polygon, 1)
	assert.Len(t, result.Polygon[0], DefaultSteps+1)
	assert.True(t, IsRingClosed(result.Polygon[0]))
	assert.Equal(t, orb.Point{0, 1}, result.Center)
	assert.Equal(t, RingArea(result.Polygon[0]), result.Area)
	assert.Empty(t, logs.String())
}

func TestBuildRadiusIsDistance(t *testing.T) {
	var mode, _ = newTestMode()
	var boundary = orb.Point{-73.979264, 40.766480}
	var center = orb.Point{-74.001559, 40.719743}

	var result = mode.Build(boundary, center, nil)
	assert.Equal(t, DistanceKm(boundary, center), result.Radius)

	// the ring lies on the stored radius
	for _, vertex := range result.Polygon[0] {
		assert.InDelta(t, result.Radius, DistanceKm(center, vertex), 1e-6)
	}
}

func TestBuildCoincidingClicks(t *testing.T) {
	var mode, _ = newTestMode()
	var point = orb.Point{13.4050, 52.5200}

	var result = mode.Build(point, point, nil)
	assert.Equal(t, MinRadiusKm, result.Radius)
	assert.Greater(t, result.Area, 0.0)
}

func TestBuildStepsBelowMinimum(t *testing.T) {
	for _, steps := range []int{3, 1, 0, -5} {
		var mode, logs = newTestMode()
		var result = mode.Build(orb.Point{0, 0}, orb.Point{1, 1}, &ModeConfig{Steps: StepCount(steps)})

		assert.Equal(t, MinSteps, result.Steps)
		assert.Len(t, result.Polygon[0], MinSteps+1)
		assert.Equal(t, 1, strings.Count(logs.String(), "[warn]"), "steps %d", steps)
	}
}

func TestBuildWarnsOncePerCall(t *testing.T) {
	var mode, logs = newTestMode()
	var config = &ModeConfig{Steps: StepCount(2)}

	mode.Build(orb.Point{0, 0}, orb.Point{1, 1}, config)
	mode.Build(orb.Point{0, 0}, orb.Point{2, 2}, config)
	assert.Equal(t, 2, strings.Count(logs.String(), "[warn]"))
}

func TestBuildConfiguredSteps(t *testing.T) {
	var mode, logs = newTestMode()
	var result = mode.Build(orb.Point{0, 0}, orb.Point{1, 1}, &ModeConfig{Steps: StepCount(MinSteps)})

	assert.Equal(t, MinSteps, result.Steps)
	assert.Len(t, result.Polygon[0], MinSteps+1)
	assert.Empty(t, logs.String())

	result = mode.Build(orb.Point{0, 0}, orb.Point{1, 1}, &ModeConfig{Steps: StepCount(200)})
	assert.Len(t, result.Polygon[0], 201)
}

func TestBuildStepsAboveMaximum(t *testing.T) {
	var mode, logs = newTestMode()
	var result = mode.Build(orb.Point{0, 0}, orb.Point{0, 0.01}, &ModeConfig{Steps: StepCount(MaxSteps + 1)})

	assert.Equal(t, MaxSteps, result.Steps)
	assert.Equal(t, 1, strings.Count(logs.String(), "[warn]"))
}

func TestBuildMetadata(t *testing.T) {
	var mode, _ = newTestMode()
	var result = mode.Build(orb.Point{0, 0}, orb.Point{0, 1}, nil)

	assert.Equal(t, ShapeCircle, result.Feature.Properties["shape"])

	props, err := ParseEditProperties(result.Feature)
	require.NoError(t, err)
	assert.Equal(t, ShapeCircle, props.Shape)
	assert.Equal(t, UnitKilometers, props.Radius.Unit)
	assert.Equal(t, result.Radius, props.Radius.Value)
	assert.Equal(t, []float64{0, 1}, props.Center)

	assert.Len(t, result.Feature.Geometry.Polygon[0], DefaultSteps+1)
}

func TestBuildUpdatesMode(t *testing.T) {
	var mode, _ = newTestMode()

	assert.Equal(t, 0.0, mode.Radius())
	assert.Equal(t, 0.0, mode.Area())

	var first = mode.Build(orb.Point{0, 0}, orb.Point{0, 1}, nil)
	assert.Equal(t, first.Radius, mode.Radius())
	assert.Equal(t, first.Area, mode.Area())
	assert.Equal(t, orb.Point{0, 1}, mode.Position())

	// a new sample replaces the previous measurement
	var second = mode.Build(orb.Point{0, 0}, orb.Point{0, 2}, nil)
	assert.Greater(t, second.Radius, first.Radius)
	assert.Equal(t, second.Radius, mode.Radius())
	assert.Equal(t, orb.Point{0, 2}, mode.Position())
}

func TestResetClearsMeasurement(t *testing.T) {
	var mode, _ = newTestMode()

	mode.Build(orb.Point{0, 0}, orb.Point{0, 1}, nil)
	require.Len(t, mode.Tooltips(nil), 1)

	mode.Reset()
	assert.Equal(t, 0.0, mode.Radius())
	assert.Empty(t, mode.Tooltips(nil))
}
