// Command pathfind computes shortest paths in weighted graphs and shortest word
// ladders between dictionary words.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/rhartert/pathfind/config"
	"github.com/rhartert/pathfind/metrics"
)

// app holds what the subcommands share once the root command has loaded the
// configuration.
type app struct {
	cfg       config.Config
	logger    *slog.Logger
	registry  *prometheus.Registry
	collector *metrics.Collector
}

func newRootCmd() *cobra.Command {
	a := &app{}

	var (
		configPath  string
		logLevel    string
		logFormat   string
		metricsFile string
	)

	root := &cobra.Command{
		Use:           "pathfind",
		Short:         "Shortest paths and word ladders",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			var cfg config.Config
			var err error
			if flags.Changed("config") {
				cfg, err = config.Load(configPath)
			} else {
				cfg, err = config.LoadOptional(config.DefaultPath)
			}
			if err != nil {
				return err
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if flags.Changed("log-format") {
				cfg.Log.Format = logFormat
			}
			if flags.Changed("metrics-file") {
				cfg.Metrics.File = metricsFile
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			a.cfg = cfg
			a.logger, err = newLogger(cmd.ErrOrStderr(), cfg.Log)
			if err != nil {
				return err
			}
			a.registry = prometheus.NewRegistry()
			a.collector = metrics.NewCollector(a.registry)
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", config.DefaultPath, "path to a TOML configuration file")
	pf.StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	pf.StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")

	root.AddCommand(newDijkstraCmd(a))
	root.AddCommand(newLadderCmd(a))
	root.AddCommand(newVerifyCmd(a))

	return root
}

// withMetrics wraps run so that the metrics file is written even when run
// fails.
func (a *app) withMetrics(run func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		runErr := run(cmd, args)
		if err := a.writeMetrics(); err != nil {
			return errors.Join(runErr, err)
		}
		return runErr
	}
}

func (a *app) writeMetrics() error {
	if a.cfg.Metrics.File == "" {
		return nil
	}
	if err := metrics.WriteFile(a.cfg.Metrics.File, a.registry); err != nil {
		return fmt.Errorf("cannot write metrics: %w", err)
	}
	a.logger.Debug("metrics written", "file", a.cfg.Metrics.File)
	return nil
}

func newLogger(w io.Writer, cfg config.Log) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
