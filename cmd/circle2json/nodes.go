package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/paulmach/orb"
	"github.com/pelias/circlemode/internal/config"
	"github.com/qedus/osmpbf"
	"github.com/spf13/cobra"
)

var nodesCmd = &cobra.Command{
	Use:   "nodes <pbf>",
	Short: "Draw a circle between two OSM nodes of a PBF extract",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		boundaryID, _ := cmd.Flags().GetInt64("boundary")
		centerID, _ := cmd.Flags().GetInt64("center")

		cfg, err := config.Load(settings)
		if err != nil {
			return err
		}

		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		points, err := findNodes(file, boundaryID, centerID)
		if err != nil {
			return err
		}

		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		if store != nil {
			defer store.Close()
		}

		data, err := newHost(cfg, store).gesture(points[boundaryID], points[centerID])
		if err != nil {
			return err
		}
		return writeLine(cmd.OutOrStdout(), data)
	},
}

func init() {
	nodesCmd.Flags().Int64("boundary", 0, "id of the node on the circle boundary")
	nodesCmd.Flags().Int64("center", 0, "id of the node at the circle center")
	_ = nodesCmd.MarkFlagRequired("boundary")
	_ = nodesCmd.MarkFlagRequired("center")
}

// findNodes scans the extract for the given node ids and stops as soon as
// all of them were seen.
func findNodes(r io.Reader, ids ...int64) (map[int64]orb.Point, error) {
	wanted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	decoder := osmpbf.NewDecoder(r)
	// use several goroutines for faster decoding
	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		return nil, err
	}

	found := make(map[int64]orb.Point, len(wanted))
	for len(found) < len(wanted) {
		v, err := decoder.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		node, ok := v.(*osmpbf.Node)
		if ok && wanted[node.ID] {
			found[node.ID] = orb.Point{node.Lon, node.Lat}
		}
	}

	for id := range wanted {
		if _, ok := found[id]; !ok {
			return nil, fmt.Errorf("node not found: %d", id)
		}
	}
	return found, nil
}
