/*
Package main generates a reactance chart (RX chart): a log-log plot of
frequency against reactance magnitude, overlaid with constant-inductance and
constant-capacitance lines and labelled with component values, saved as an
A3 landscape PDF.

Running the command without flags writes reactancechart.pdf to the working
directory and shows the chart in a window. A YAML file can change colours,
line widths, page size and the output path; the chart geometry is fixed.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"reactancechart/internal/chart"
	"reactancechart/internal/viewer"
)

// options holds the command line flags.
type options struct {
	configFile string
	output     string
	logLevel   string
	debug      bool
	show       bool
	watch      bool
}

// showChart is replaced in tests so that no window is opened.
var showChart = viewer.Show

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "reactancechart",
		Short: "Generate a reactance (RX) chart as an A3 PDF",
		Long: `Generate a reactance chart: frequency (10Hz..1GHz) against reactance
(10mΩ..1MΩ) on log-log axes with constant-L and constant-C lines.

If no config file is specified, default settings will be used.
The output format follows the file extension: .pdf (default), .svg or .png.`,
		Example:       "  reactancechart --config chart.yaml --output chart.pdf --show=false",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configFile, "config", "", "YAML configuration file (optional)")
	f.StringVarP(&opts.output, "output", "o", "", "Output filename (default \""+DefaultOutputPath+"\")")
	f.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	f.BoolVar(&opts.debug, "debug", false, "Enable debug mode for verbose output")
	f.BoolVar(&opts.show, "show", true, "Show the chart in a window after saving")
	f.BoolVar(&opts.watch, "watch", false, "Regenerate the chart whenever the config file changes")
	return cmd
}

func run(ctx context.Context, opts *options) error {
	if err := setLogLevel(opts.logLevel); err != nil {
		return err
	}
	if opts.debug {
		_ = setLogLevel("debug")
	}
	if opts.watch && opts.configFile == "" {
		return errors.New("--watch requires --config")
	}

	config, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	c, err := generate(config)
	if err != nil {
		return err
	}
	fmt.Printf("Reactance chart generated successfully: %s\n", config.Output.Path)

	if opts.watch {
		if opts.show {
			infof("Viewer disabled while watching %s", opts.configFile)
		}
		return watchConfig(ctx, opts.configFile, func() {
			regenerate(opts)
		})
	}

	if opts.show {
		img, err := chart.Raster(c, rasterStyle(config))
		if err != nil {
			warnf("could not rasterise chart for display: %v", err)
			return nil
		}
		if err := showChart(config.Viewer.Title, img); err != nil {
			warnf("could not show chart: %v", err)
		}
	}
	return nil
}

// resolveConfig loads the config file and applies flag overrides.
func resolveConfig(opts *options) (Config, error) {
	config, err := loadConfig(opts.configFile)
	if err != nil {
		return Config{}, err
	}
	if opts.output != "" {
		config.Output.Path = opts.output
		if err := config.Validate(); err != nil {
			return Config{}, err
		}
	}
	debugPrint("Configuration loaded. Output: %s, page: %gx%g in, samples: %d",
		config.Output.Path, config.Page.WidthIn, config.Page.HeightIn, config.Samples)
	return config, nil
}

// generate computes the chart and writes it to the configured output path.
func generate(config Config) (*chart.Chart, error) {
	c := chart.New(config.Samples)
	debugPrint("Computed %d grid lines, %d capacitance and %d inductance curves, %d labels",
		len(c.Grid), len(c.Capacitive), len(c.Inductive), len(c.Annotations))

	if err := chart.Save(config.Output.Path, c, config.Style()); err != nil {
		return nil, err
	}
	return c, nil
}

// regenerate reloads the configuration and rewrites the chart. Failures are
// logged so that a broken edit does not stop the watcher.
func regenerate(opts *options) {
	config, err := resolveConfig(opts)
	if err != nil {
		warnf("keeping previous chart: %v", err)
		return
	}
	if _, err := generate(config); err != nil {
		warnf("error regenerating chart: %v", err)
		return
	}
	infof("Chart regenerated: %s", config.Output.Path)
}

// rasterStyle is the style used for on-screen display.
func rasterStyle(config Config) chart.Style {
	s := config.Style()
	s.DPI = config.Viewer.DPI
	return s
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
