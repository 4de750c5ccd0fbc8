package main

import (
	"errors"
	"strconv"

	"github.com/pelias/circlemode"
	"github.com/pelias/circlemode/internal/config"
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print a stored circle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}

		cfg, err := config.Load(settings)
		if err != nil {
			return err
		}
		if cfg.LevelDB == "" {
			return errors.New("get requires leveldb")
		}

		store, err := circlemode.OpenFeatureStore(cfg.LevelDB, false)
		if err != nil {
			return err
		}
		defer store.Close()

		feature, err := store.Feature(id)
		if err != nil {
			return err
		}

		data, err := feature.MarshalJSON()
		if err != nil {
			return err
		}
		return writeLine(cmd.OutOrStdout(), data)
	},
}
