package circlemode

import (
	"fmt"
	"math"
	"reflect"

	"github.com/paulmach/orb"
)

// Tooltip - text anchored at a map position
type Tooltip struct {
	Position orb.Point `json:"position"`
	Text     string    `json:"text"`
}

// tooltipKey compares configs by value; FormatTooltip is compared by its
// code pointer since funcs are not comparable.
type tooltipKey struct {
	hasSteps  bool
	steps     int
	formatter uintptr
	radius    float64
	area      float64
	position  orb.Point
}

func newTooltipKey(config *ModeConfig, radius, area float64, position orb.Point) tooltipKey {
	key := tooltipKey{radius: radius, area: area, position: position}
	if config != nil {
		if config.Steps != nil {
			key.hasSteps = true
			key.steps = *config.Steps
		}
		if config.FormatTooltip != nil {
			key.formatter = reflect.ValueOf(config.FormatTooltip).Pointer()
		}
	}
	return key
}

// tooltipCache holds the most recent input and output only.
type tooltipCache struct {
	valid    bool
	key      tooltipKey
	tooltips []Tooltip
}

// get returns the cached slice on a repeated query, callers must not modify it.
func (c *tooltipCache) get(config *ModeConfig, radius, area float64, position orb.Point) []Tooltip {
	key := newTooltipKey(config, radius, area, position)
	if c.valid && c.key == key {
		return c.tooltips
	}

	c.key = key
	c.tooltips = formatTooltips(config, radius, area, position)
	c.valid = true
	return c.tooltips
}

func formatTooltips(config *ModeConfig, radius, area float64, position orb.Point) []Tooltip {
	if !measured(radius) || !measured(area) {
		return []Tooltip{}
	}

	var text string
	if config != nil && config.FormatTooltip != nil {
		text = config.FormatTooltip(radius)
	} else {
		// round to 2 decimal places and append units
		text = fmt.Sprintf("Radius: %.2f kilometers\n Area: %.2f", radius, area)
	}

	return []Tooltip{{Position: position, Text: text}}
}

func measured(v float64) bool {
	return v != 0 && !math.IsNaN(v)
}
