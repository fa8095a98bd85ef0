package main

import (
	"os"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"
	"github.com/vinerr/ntree/arrangement"
)

type flags struct {
	config    string
	dims      int
	threshold int
	cache     string
	logLevel  string
	json      bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "ntreectl",
		Short: "Query a light arrangement",
		Long: `ntreectl loads a light arrangement from a CSV or YAML file and finds the
lights around a location.

CSV rows hold the coordinates followed by the light id:
  0.5,0.2,0
YAML files set dims, division_threshold, cache_policy, cache_capacity and a
list of lights with an id and a position.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logs.SetLevel(logs.ParseLevel(f.logLevel))
			logs.Encoder = json.Marshal
			errors.Encoder = json.Marshal
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "Arrangement file (.csv, .yaml or .yml)")
	pf.IntVarP(&f.dims, "dims", "d", 0, "Number of dimensions, required for CSV files")
	pf.IntVar(&f.threshold, "threshold", 0, "Lights a leaf holds before dividing, overrides the file")
	pf.StringVar(&f.cache, "cache", "", "Result cache policy (wtinylfu, lru, ristretto or none), overrides the file")
	pf.StringVar(&f.logLevel, "log-level", logs.InfoLevel.String(), "Log level (debug, info, warn or error)")
	pf.BoolVar(&f.json, "json", false, "Print results as JSON")
	_ = cmd.MarkPersistentFlagRequired("config")

	cmd.AddCommand(
		newClosestCmd(f),
		newRadiusCmd(f),
		newBoxCmd(f),
		newStatsCmd(f),
	)
	return cmd
}

func (f *flags) load() (*arrangement.Arrangement, error) {
	cfg, err := arrangement.Load(f.config, f.dims)
	if err != nil {
		return nil, err
	}
	if f.threshold > 0 {
		cfg.DivisionThreshold = f.threshold
	}
	if f.cache != "" {
		cfg.CachePolicy = f.cache
	}
	return arrangement.New(cfg)
}
