package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ChristopherRabotin/orrery"
	"github.com/ChristopherRabotin/orrery/catalog"
	kitlog "github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	configFile  string
	verbose     bool
	outDir      string
	filename    string
	stamped     bool
	metricsFile string
	plotHeight  int
)

// main registers the commands and flags and executes the root command.
// It exits with status 1 if the command returns an error.
func main() {
	v := viper.New()
	orrery.SetDefaults(v)

	rootCmd := &cobra.Command{
		Use:           "orrery",
		Short:         "orbits of hierarchical systems from their orbital elements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file (toml, yaml or json)")
	rootCmd.PersistentFlags().String("catalog", "", "system file (yaml), the solar system if empty")
	rootCmd.PersistentFlags().Int("resolution", orrery.DefaultResolution, "samples per orbit")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log debug records")
	if err := bindFlags(v, rootCmd.PersistentFlags()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}

	censusCmd := &cobra.Command{
		Use:   "census",
		Short: "count the bodies of the system by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, _, err := setup(v)
			if err != nil {
				return err
			}
			return printCensus(cmd.OutOrStdout(), s)
		},
	}

	propagateCmd := &cobra.Command{
		Use:   "propagate",
		Short: "propagate all orbits and export them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPropagate(cmd, v)
		},
	}
	propagateCmd.Flags().StringVar(&outDir, "out", "", "output directory (overrides general.output_path)")
	propagateCmd.Flags().StringVar(&filename, "name", "", "common name of the exported files (defaults to the system name)")
	propagateCmd.Flags().BoolVar(&stamped, "timestamp", false, "stamp file names with the creation time")
	propagateCmd.Flags().StringVar(&metricsFile, "metrics-file", "", "write propagation metrics to this file (Prometheus text format)")

	radiusCmd := &cobra.Command{
		Use:   "radius [body]",
		Short: "plot the distance of a body to its parent over one period",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, conf, err := setup(v)
			if err != nil {
				return err
			}
			return printRadius(cmd.OutOrStdout(), s, args[0], conf.Resolution, plotHeight)
		},
	}
	radiusCmd.Flags().IntVar(&plotHeight, "height", 12, "plot height in lines")

	boundsCmd := &cobra.Command{
		Use:   "bounds",
		Short: "print the half-size of the box containing the whole system",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, conf, err := setup(v)
			if err != nil {
				return err
			}
			return printBounds(cmd.OutOrStdout(), s, conf.Resolution)
		},
	}

	rootCmd.AddCommand(censusCmd, propagateCmd, radiusCmd, boundsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// flagKeys maps the configuration keys which can be overridden from the command line to their flag.
var flagKeys = map[string]string{
	"general.catalog":    "catalog",
	"general.resolution": "resolution",
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, name := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return fmt.Errorf("binding --%s to %s: %w", name, key, err)
		}
	}
	return nil
}

func newLogger() kitlog.Logger {
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stderr))
	logger = kitlog.With(logger, "ts", kitlog.DefaultTimestampUTC)
	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}

// setup reads the configuration and builds the system.
func setup(v *viper.Viper) (*orrery.System, orrery.Config, error) {
	logger := newLogger()
	used, err := orrery.ReadConfig(v, configFile)
	if err != nil {
		return nil, orrery.Config{}, err
	}
	if used != "" {
		level.Debug(logger).Log("subsys", "conf", "file", used)
	}
	conf, err := orrery.ConfigFrom(v)
	if err != nil {
		return nil, conf, err
	}

	var file catalog.File
	if conf.Catalog == "" {
		file = catalog.Solar()
	} else if file, err = catalog.Load(conf.Catalog); err != nil {
		return nil, conf, err
	}
	s, err := file.System(conf)
	if err != nil {
		return nil, conf, err
	}
	s.SetLogger(logger)
	level.Debug(logger).Log("subsys", "conf", "system", s.Name, "bodies", s.Len(), "resolution", conf.Resolution)
	return s, conf, nil
}

func runPropagate(cmd *cobra.Command, v *viper.Viper) error {
	s, conf, err := setup(v)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	metrics, err := orrery.NewMetrics(reg)
	if err != nil {
		return err
	}
	s.SetMetrics(metrics)

	if err := s.PropagateAll(context.Background(), conf.Resolution); err != nil {
		return err
	}
	exp := orrery.ExportConfig{Dir: conf.OutputDir, Filename: s.Name, Timestamp: stamped, Epoch: conf.Epoch}
	if outDir != "" {
		exp.Dir = outDir
	}
	if filename != "" {
		exp.Filename = filename
	}
	written, err := orrery.Export(s, conf.Resolution, exp)
	if err != nil {
		return err
	}
	for _, path := range written {
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	if metricsFile != "" {
		if err := prometheus.WriteToTextfile(metricsFile, reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}
	return nil
}
