package circlemode

import "log"

const (
	// DefaultSteps - vertex count used when no step count is configured
	DefaultSteps = 64
	// MinSteps - smallest vertex count that still draws a closed area
	MinSteps = 4
	// MaxSteps - largest vertex count generated for a single circle
	MaxSteps = 65536
)

// ModeConfig - per-mode options supplied by the host. A nil *ModeConfig is
// valid and resolves to the defaults.
type ModeConfig struct {
	// Steps is the number of ring vertices, nil means DefaultSteps.
	Steps *int

	// FormatTooltip replaces the default tooltip text when set.
	FormatTooltip func(radius float64) string
}

// StepCount - pointer helper for ModeConfig.Steps
func StepCount(n int) *int {
	return &n
}

// resolveSteps reads the step count once per build, clamping it to
// [MinSteps, MaxSteps] and logging a warning when it had to be corrected.
func (c *ModeConfig) resolveSteps(logger *log.Logger) int {
	if c == nil || c.Steps == nil {
		return DefaultSteps
	}

	steps := *c.Steps
	switch {
	case steps < MinSteps:
		logger.Println("[warn] minimum steps to draw a circle is", MinSteps, "got:", steps)
		return MinSteps
	case steps > MaxSteps:
		logger.Println("[warn] maximum steps to draw a circle is", MaxSteps, "got:", steps)
		return MaxSteps
	}
	return steps
}
