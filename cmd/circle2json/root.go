package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pelias/circlemode"
	"github.com/pelias/circlemode/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var settings = viper.New()

var rootCmd = &cobra.Command{
	Use:   "circle2json [file]",
	Short: "Draw circles from two-click gestures and print them as GeoJSON",
	Long: `circle2json reads one gesture per line, [[lng,lat],[lng,lat]] with the
boundary click first and the center click second, and prints the resulting
circle polygon as one GeoJSON feature per line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(settings)
		if err != nil {
			return err
		}

		in := cmd.InOrStdin()
		if len(args) == 1 {
			file, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()
			in = file
		}

		store, err := openStore(cfg)
		if err != nil {
			return err
		}
		if store != nil {
			defer store.Close()
		}

		return run(in, cmd.OutOrStdout(), newHost(cfg, store))
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "path to a config file (default ./circle2json.yaml)")
	flags.Int("steps", circlemode.DefaultSteps, "number of vertices used to approximate each circle")
	flags.String("leveldb", "", "path to a leveldb directory to store circles in")
	flags.Bool("sync", false, "fsync every leveldb write")
	flags.Bool("tooltips", false, "add the tooltip text to each feature")

	for _, name := range []string{"config", "steps", "leveldb", "sync", "tooltips"} {
		if err := settings.BindPFlag(name, flags.Lookup(name)); err != nil {
			log.Fatal(err)
		}
	}

	rootCmd.AddCommand(nodesCmd, getCmd)
}

func openStore(cfg *config.Config) (*circlemode.FeatureStore, error) {
	if cfg.LevelDB == "" {
		return nil, nil
	}
	return circlemode.OpenFeatureStore(cfg.LevelDB, cfg.Sync)
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeLine(out io.Writer, data []byte) error {
	if _, err := out.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(out, "\n")
	return err
}
