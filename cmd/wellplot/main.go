// Command wellplot renders well log track charts from a table of log samples.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iafilius/welltracks/src/charts"
	"github.com/iafilius/welltracks/src/config"
	"github.com/iafilius/welltracks/src/logger"
	"github.com/iafilius/welltracks/src/tracks"
	"github.com/iafilius/welltracks/src/viewer"
	"github.com/iafilius/welltracks/src/welllog"
)

// cli holds the flag values shared by the subcommands.
type cli struct {
	cfg        config.Config
	input      string
	chartFile  string
	logLevel   string
	outDir     string
	previewDir string
	headless   bool
	panelWidth int
	height     int
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	err = newRootCmd(cfg).Execute()
	logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	c := &cli{cfg: cfg}
	root := &cobra.Command{
		Use:   "wellplot",
		Short: "Render well log track charts",
		Long: `wellplot draws side-by-side well log tracks (curves, categorical class
strips and formation tops) sharing one inverted depth axis.

Tables are read from CSV, XLSX (path.xlsx#Sheet) or SQLite
(sqlite://file.db?table=logs).`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetLogLevel(c.logLevel)
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&c.input, "input", "i", cfg.Input, "Well log table (CSV, XLSX or SQLite)")
	pf.StringVar(&c.chartFile, "charts", cfg.ChartFile, "YAML file overriding chart kinds")
	pf.StringVar(&c.logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	pf.StringVarP(&c.outDir, "out", "o", cfg.OutputDir, "Directory for saved validation charts")
	pf.StringVar(&c.previewDir, "preview-dir", cfg.PreviewDir, "Write headless previews here instead of opening a window")
	pf.BoolVar(&c.headless, "headless", cfg.Headless, "Do not open windows")
	pf.IntVar(&c.panelWidth, "panel-width", cfg.PanelWidth, "Track width in pixels")
	pf.IntVar(&c.height, "height", cfg.Height, "Figure height in pixels")

	root.AddCommand(newPlotCmd(c), newBatchCmd(c), newWellsCmd(c), newKindsCmd(c))
	return root
}

func (c *cli) registry() (*charts.Registry, error) {
	reg := charts.Builtin()
	if c.chartFile != "" {
		if err := reg.LoadFile(c.chartFile); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func (c *cli) table(ctx context.Context) (*welllog.Table, error) {
	if c.input == "" {
		return nil, fmt.Errorf("no input table: use --input or WELLTRACKS_INPUT")
	}
	return welllog.Load(ctx, c.input)
}

func (c *cli) options() tracks.Options {
	cfg := c.cfg
	cfg.PanelWidth, cfg.Height = c.panelWidth, c.height
	return cfg.RenderOptions()
}

// displayer picks the window, a preview writer or nothing.
func (c *cli) displayer(interactive bool) tracks.Displayer {
	switch {
	case c.previewDir != "":
		return &tracks.PreviewDisplayer{Dir: c.previewDir}
	case c.headless || !interactive:
		return nil
	default:
		return &viewer.Window{}
	}
}

func (c *cli) output(reg *charts.Registry, interactive bool) charts.Output {
	return charts.Output{
		Display:  c.displayer(interactive),
		Dir:      c.outDir,
		Options:  c.options(),
		Registry: reg,
	}
}
