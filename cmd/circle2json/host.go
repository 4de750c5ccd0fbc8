package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/pelias/circlemode"
	"github.com/pelias/circlemode/internal/config"
)

// host plays the two-click gesture controller: it hands each completed
// gesture to the mode and writes out the feature it gets back.
type host struct {
	mode     circlemode.TwoClickMode
	config   *circlemode.ModeConfig
	store    *circlemode.FeatureStore
	tooltips bool
}

func newHost(cfg *config.Config, store *circlemode.FeatureStore) *host {
	return &host{
		mode:     circlemode.NewDrawCircleFromCenterMode(nil),
		config:   cfg.ModeConfig(),
		store:    store,
		tooltips: cfg.Tooltips,
	}
}

// gesture builds one circle and returns the encoded feature.
func (h *host) gesture(boundary, center orb.Point) ([]byte, error) {
	result := h.mode.Build(boundary, center, h.config)

	if h.tooltips {
		for _, tooltip := range h.mode.Tooltips(h.config) {
			result.Feature.SetProperty("tooltip", tooltip.Text)
		}
	}

	if h.store != nil {
		id, err := h.store.Append(result)
		if err != nil {
			return nil, err
		}
		result.Feature.SetProperty("id", id)
	}

	return result.Feature.MarshalJSON()
}

// parseGesture reads a [[lng,lat],[lng,lat]] line, boundary first.
func parseGesture(line []byte) (orb.Point, orb.Point, error) {
	var coords [][]float64
	if err := json.Unmarshal(line, &coords); err != nil {
		return orb.Point{}, orb.Point{}, fmt.Errorf("invalid gesture: %w", err)
	}
	if len(coords) != 2 || len(coords[0]) < 2 || len(coords[1]) < 2 {
		return orb.Point{}, orb.Point{}, fmt.Errorf("invalid gesture: want two [lng,lat] positions, got %s", line)
	}
	return orb.Point{coords[0][0], coords[0][1]}, orb.Point{coords[1][0], coords[1][1]}, nil
}

func run(in io.Reader, out io.Writer, h *host) error {
	scanner := bufio.NewScanner(in)

	var n int
	for scanner.Scan() {
		n++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		boundary, center, err := parseGesture(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}

		data, err := h.gesture(boundary, center)
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		if err := writeLine(out, data); err != nil {
			return err
		}
	}

	return scanner.Err()
}
