package viewer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/iafilius/welltracks/src/charts"
	"github.com/iafilius/welltracks/src/logger"
	"github.com/iafilius/welltracks/src/tracks"
	"github.com/iafilius/welltracks/src/welllog"
)

// BrowserConfig carries the settings the browser starts with.
type BrowserConfig struct {
	Source   string // table to open at start, "" restores the last one
	OutDir   string // where val charts are saved
	Options  tracks.Options
	Registry *charts.Registry
}

// Browser is the interactive chart browser: pick a table, a well, a chart
// kind and a variant; the figure is re-rendered on every change.
type Browser struct {
	app    fyne.App
	window fyne.Window
	cfg    BrowserConfig

	source  string
	table   *welllog.Table
	well    string
	kind    string
	variant charts.Variant

	sourceLabel   *widget.Label
	status        *widget.Label
	wellSelect    *widget.Select
	kindSelect    *widget.Select
	variantSelect *widget.Select
	image         *canvas.Image
}

// NewBrowser builds the browser window on a.
func NewBrowser(a fyne.App, cfg BrowserConfig) *Browser {
	if cfg.Registry == nil {
		cfg.Registry = charts.Builtin()
	}
	b := &Browser{
		app:     a,
		window:  a.NewWindow("Well Tracks"),
		cfg:     cfg,
		source:  cfg.Source,
		kind:    "litho",
		variant: charts.VariantData,
	}
	b.window.Resize(fyne.NewSize(1300, 950))
	loadPrefs(b)
	if cfg.Source != "" {
		b.source = cfg.Source
	}

	b.sourceLabel = widget.NewLabel(shortPath(b.source, 60))
	b.status = widget.NewLabel("")
	b.wellSelect = widget.NewSelect(nil, func(v string) {
		b.well = v
		b.redrawAndReport()
	})
	b.wellSelect.PlaceHolder = "(no table)"
	b.kindSelect = widget.NewSelect(cfg.Registry.Names(), func(v string) {
		b.kind = v
		savePrefs(b)
		b.redrawAndReport()
	})
	b.kindSelect.Selected = b.kind
	var variants []string
	for _, v := range charts.Variants() {
		variants = append(variants, v.String())
	}
	b.variantSelect = widget.NewSelect(variants, func(v string) {
		b.variant = charts.Variant(v)
		savePrefs(b)
		b.redrawAndReport()
	})
	b.variantSelect.Selected = b.variant.String()

	b.image = canvas.NewImageFromImage(blank(400, 600))
	b.image.FillMode = canvas.ImageFillContain
	b.image.SetMinSize(fyne.NewSize(900, 800))

	top := container.NewHBox(
		widget.NewButton("Open…", func() { b.openDialog() }),
		widget.NewButton("Reload", func() { b.OpenAsync(b.source) }),
		widget.NewLabel("Well:"), b.wellSelect,
		widget.NewLabel("Chart:"), b.kindSelect,
		widget.NewLabel("Variant:"), b.variantSelect,
		widget.NewSeparator(),
		widget.NewLabel("File:"), b.sourceLabel,
	)
	b.window.SetContent(container.NewBorder(top, b.status, nil, nil, container.NewScroll(b.image)))
	b.buildMenus()
	return b
}

// Window returns the browser window.
func (b *Browser) Window() fyne.Window { return b.window }

// ShowAndRun opens the start table, if any, and runs the event loop.
func (b *Browser) ShowAndRun() {
	if b.source != "" {
		if _, err := os.Stat(b.source); err == nil {
			b.OpenAsync(b.source)
		}
	}
	b.window.ShowAndRun()
}

// OpenAsync loads source off the UI goroutine and installs it when done.
func (b *Browser) OpenAsync(source string) {
	if source == "" {
		return
	}
	b.status.SetText("Loading " + shortPath(source, 60) + "…")
	go func() {
		tbl, err := welllog.Load(context.Background(), source)
		fyne.Do(func() {
			if err != nil {
				b.status.SetText(err.Error())
				dialog.ShowError(err, b.window)
				return
			}
			b.SetTable(tbl, source)
			b.redrawAndReport()
		})
	}()
}

// SetTable installs a loaded table and selects its first well (or the last
// used one when it is present).
func (b *Browser) SetTable(tbl *welllog.Table, source string) {
	b.table, b.source = tbl, source
	b.sourceLabel.SetText(shortPath(source, 60))
	b.recent().Add(source)
	wells, err := tbl.Wells()
	if err != nil {
		b.status.SetText(err.Error())
		wells = nil
	}
	b.wellSelect.Options = wells
	keep := false
	for _, w := range wells {
		if w == b.well {
			keep = true
			break
		}
	}
	if !keep {
		b.well = ""
		if len(wells) > 0 {
			b.well = wells[0]
		}
	}
	b.wellSelect.Selected = b.well
	b.wellSelect.Refresh()
	savePrefs(b)
	b.buildMenus()
	logger.Infof("browser: %s, %s rows, %d wells", source, humanize.Comma(int64(tbl.Len())), len(wells))
}

// Redraw renders the current selection into the image view.
func (b *Browser) Redraw() (charts.Result, error) {
	if b.table == nil || b.well == "" {
		return charts.Result{}, nil
	}
	out := charts.Output{
		Dir:      b.cfg.OutDir,
		Options:  b.cfg.Options,
		Registry: b.cfg.Registry,
		Display: tracks.DisplayFunc(func(fig *tracks.Figure) error {
			img, err := fig.Image()
			if err != nil {
				return err
			}
			b.image.Image = img
			bounds := img.Bounds()
			b.image.SetMinSize(fitSize(bounds, 1260, 860))
			b.image.Refresh()
			return nil
		}),
	}
	return charts.Plot(b.table, b.well, b.kind, b.variant, out)
}

func (b *Browser) redrawAndReport() {
	res, err := b.Redraw()
	switch {
	case err != nil:
		b.status.SetText(err.Error())
	case res.Well == "":
		b.status.SetText("")
	case res.Saved != "":
		b.status.SetText(fmt.Sprintf("%s %s %s: %d panels, saved %s (%s)", res.Well, res.Kind, res.Variant, res.Panels, res.Saved, humanize.Bytes(uint64(res.Bytes))))
	default:
		b.status.SetText(fmt.Sprintf("%s %s %s: %d panels", res.Well, res.Kind, res.Variant, res.Panels))
	}
}

func (b *Browser) buildMenus() {
	var items []*fyne.MenuItem
	for _, f := range b.recent().List() {
		items = append(items, fyne.NewMenuItem(shortPath(f, 60), func() { b.OpenAsync(f) }))
	}
	clearRecent := fyne.NewMenuItem("Clear Recent", func() { b.recent().Clear(); b.buildMenus() })
	recentMenu := fyne.NewMenu("Open Recent", append(items, clearRecent)...)
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open…", func() { b.openDialog() }),
		fyne.NewMenuItem("Reload", func() { b.OpenAsync(b.source) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Figure…", func() { exportPNG(b.window, b.image, b.exportName()) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { b.window.Close() }),
	)
	b.window.SetMainMenu(fyne.NewMainMenu(fileMenu, recentMenu))

	canv := b.window.Canvas()
	if canv == nil {
		return
	}
	for _, mod := range []fyne.KeyModifier{fyne.KeyModifierSuper, fyne.KeyModifierControl} {
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyO, Modifier: mod}, func(fyne.Shortcut) { b.openDialog() })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyR, Modifier: mod}, func(fyne.Shortcut) { b.OpenAsync(b.source) })
		canv.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyW, Modifier: mod}, func(fyne.Shortcut) { b.window.Close() })
	}
}

func (b *Browser) openDialog() {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil || rc == nil {
			return
		}
		path := rc.URI().Path()
		rc.Close()
		b.OpenAsync(path)
	}, b.window)
	d.Show()
}

// exportName is the default file name offered by the export dialog.
func (b *Browser) exportName() string {
	if b.well == "" {
		return "figure.png"
	}
	return tracks.SafeFileName(fmt.Sprintf("%s %s %s", b.well, b.kind, b.variant)) + ".png"
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 245, G: 245, B: 245, A: 255})
		}
	}
	return img
}
