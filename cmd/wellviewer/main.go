// Command wellviewer is the interactive well chart browser.
package main

import (
	"flag"
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/iafilius/welltracks/src/charts"
	"github.com/iafilius/welltracks/src/config"
	"github.com/iafilius/welltracks/src/logger"
	"github.com/iafilius/welltracks/src/viewer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	var input, chartFile, logLevel, outDir string
	flag.StringVar(&input, "input", cfg.Input, "Well log table to open (CSV, XLSX or SQLite)")
	flag.StringVar(&chartFile, "charts", cfg.ChartFile, "YAML file overriding chart kinds")
	flag.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	flag.StringVar(&outDir, "out", cfg.OutputDir, "Directory for saved validation charts")
	flag.Parse()
	logger.SetLogLevel(logLevel)
	defer logger.Sync()

	reg := charts.Builtin()
	if chartFile != "" {
		if err := reg.LoadFile(chartFile); err != nil {
			logger.Errorf("%v", err)
			os.Exit(2)
		}
	}

	a := app.NewWithID(viewer.AppID)
	b := viewer.NewBrowser(a, viewer.BrowserConfig{
		Source:   input,
		OutDir:   outDir,
		Options:  cfg.RenderOptions(),
		Registry: reg,
	})
	b.ShowAndRun()
}
