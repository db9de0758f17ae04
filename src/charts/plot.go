// Package charts maps the four chart kinds (lithofacies, electrofacies,
// depositional environment, gas level) and the three variants (data, val,
// test) onto panel lists for the track renderer, and runs one render per well.
package charts

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/iafilius/welltracks/src/logger"
	"github.com/iafilius/welltracks/src/tracks"
	"github.com/iafilius/welltracks/src/welllog"
)

// Output says where a chart goes once rendered.
type Output struct {
	Display  tracks.Displayer // nil skips the display step
	Dir      string           // directory for saved figures; "" is the working directory
	Options  tracks.Options
	Registry *Registry // nil uses Builtin
}

func (o Output) registry() *Registry {
	if o.Registry == nil {
		return Builtin()
	}
	return o.Registry
}

// Result describes one finished chart.
type Result struct {
	Well    string
	Kind    string
	Variant Variant
	Panels  int
	Saved   string // path of the saved figure, "" when the variant does not save
	Bytes   int64
}

// FileName is the saved artifact name for a well and kind: "<well> <suffix>.png".
func FileName(well string, k Kind) string {
	return tracks.SafeFileName(fmt.Sprintf("%s %s", well, k.Suffix)) + ".png"
}

// Plot renders one chart for one well, hands it to the displayer, saves it
// when the variant saves and always releases the figure.
func Plot(tbl *welllog.Table, well, kind string, variant Variant, out Output) (Result, error) {
	k, err := out.registry().Lookup(kind)
	if err != nil {
		return Result{}, err
	}
	return plotKind(tbl, well, k, variant, out)
}

func plotKind(tbl *welllog.Table, well string, k Kind, variant Variant, out Output) (res Result, err error) {
	defer logger.TimeTrack(time.Now(), fmt.Sprintf("plot %s %s %s", well, k.Name, variant))
	res = Result{Well: well, Kind: k.Name, Variant: variant}

	spec, err := BuildSpec(k, variant)
	if err != nil {
		return res, err
	}
	fig, err := tracks.Render(tbl, well, spec, out.Options)
	if err != nil {
		return res, fmt.Errorf("%s %s chart: %w", k.Name, variant, err)
	}
	defer func() {
		if cerr := fig.Close(); err == nil {
			err = cerr
		}
	}()
	res.Panels = len(fig.Panels())

	if out.Display != nil {
		if err := out.Display.Display(fig); err != nil {
			return res, fmt.Errorf("display %s: %w", fig.Title(), err)
		}
	}
	if !variant.Saves() {
		return res, nil
	}
	dir := out.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(dir, FileName(well, k))
	n, err := fig.Save(path)
	if err != nil {
		return res, fmt.Errorf("save %s: %w", path, err)
	}
	res.Saved, res.Bytes = path, n
	logger.Infof("saved %s (%s)", path, humanize.Bytes(uint64(n)))
	return res, nil
}

// Batch plots the chart for every well in tbl with at most workers renders in
// flight. Results follow the table's well order. The first failure cancels
// the wells not yet started.
func Batch(ctx context.Context, tbl *welllog.Table, kind string, variant Variant, out Output, workers int) ([]Result, error) {
	k, err := out.registry().Lookup(kind)
	if err != nil {
		return nil, err
	}
	if _, err := BuildSpec(k, variant); err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}
	wells, err := tbl.Wells()
	if err != nil {
		return nil, err
	}
	results := make([]Result, len(wells))
	logger.Infof("batch %s %s: %d wells, %d workers", k.Name, variant, len(wells), workers)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, w := range wells {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := plotKind(tbl, w, k, variant, out)
			if err != nil {
				return fmt.Errorf("well %s: %w", w, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger.L().Info("batch finished",
		zap.String("kind", k.Name),
		zap.String("variant", variant.String()),
		zap.Int("wells", len(wells)),
		zap.Duration("elapsed", time.Since(start)))
	return results, nil
}
