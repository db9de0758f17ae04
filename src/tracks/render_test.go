package tracks

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/iafilius/welltracks/src/welllog"
)

func TestRender_LithoDataExample(t *testing.T) {
	tbl := sampleTable(t, 50)
	fig, err := Render(tbl, "A-1", lithoSpec(), smallOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer fig.Close()

	panels := fig.Panels()
	if len(panels) != 7 {
		t.Fatalf("panel count = %d, want 7", len(panels))
	}
	wantKinds := []PanelKind{PanelTops, PanelCurve, PanelCurve, PanelCurve, PanelCurve, PanelCurve, PanelCategorical}
	for i, p := range panels {
		if p.Kind != wantKinds[i] {
			t.Fatalf("panel %d kind = %s, want %s", i, p.Kind, wantKinds[i])
		}
	}
	if fig.Title() != "A-1 Well" {
		t.Fatalf("title = %q", fig.Title())
	}
	if fig.Legend().Empty() {
		t.Fatalf("expected a legend beside the categorical panel")
	}
	if fig.Legend().Min.X < panels[6].Plot.Max.X {
		t.Fatalf("legend %v overlaps last panel %v", fig.Legend(), panels[6].Plot)
	}
}

func TestRender_SharedDepthRange(t *testing.T) {
	tbl := sampleTable(t, 50)
	fig, err := Render(tbl, "A-1", lithoSpec(), smallOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer fig.Close()

	sub, _ := tbl.Well("A-1")
	depth, _ := sub.Float(welllog.DepthColumn)
	min, max, _ := welllog.FiniteRange(depth)
	for i, p := range fig.Panels() {
		top, bottom := p.Depth.Limits()
		if top != max || bottom != min {
			t.Fatalf("panel %d depth limits (%v,%v), want (%v,%v)", i, top, bottom, max, min)
		}
		if p.Plot.Min.Y != fig.Panels()[0].Plot.Min.Y || p.Plot.Max.Y != fig.Panels()[0].Plot.Max.Y {
			t.Fatalf("panel %d plot rows %v not aligned with panel 0 %v", i, p.Plot, fig.Panels()[0].Plot)
		}
	}
}

func TestRender_CurveBoundsPerColumn(t *testing.T) {
	tbl := sampleTable(t, 50)
	fig, err := Render(tbl, "A-1", lithoSpec(), smallOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer fig.Close()
	sub, _ := tbl.Well("A-1")
	for _, p := range fig.Panels() {
		if p.Kind != PanelCurve {
			continue
		}
		v, _ := sub.Float(p.Column)
		min, max, _ := welllog.FiniteRange(v)
		if p.XMin != min || p.XMax != max {
			t.Fatalf("%s x bounds (%v,%v), want (%v,%v)", p.Column, p.XMin, p.XMax, min, max)
		}
		if p.Points != sub.Len() {
			t.Fatalf("%s drew %d points, want %d", p.Column, p.Points, sub.Len())
		}
	}
}

func TestRender_WellNotFound(t *testing.T) {
	tbl := sampleTable(t, 20)
	fig, err := Render(tbl, "Z-9", lithoSpec(), smallOptions())
	if fig != nil {
		t.Fatalf("expected no figure for a missing well")
	}
	if !errors.Is(err, welllog.ErrWellNotFound) {
		t.Fatalf("expected ErrWellNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "Z-9") {
		t.Fatalf("error must name the well: %v", err)
	}
}

func TestRender_ClassOutOfRange(t *testing.T) {
	tbl := sampleTable(t, 20)
	spec := lithoSpec()
	cp := spec.Panels[6].(CategoricalPanel)
	cp.Palette = cp.Palette[:2] // codes go up to 2
	spec.Panels[6] = cp
	_, err := Render(tbl, "A-1", spec, smallOptions())
	var re *RangeError
	if !errors.As(err, &re) {
		t.Fatalf("expected RangeError, got %v", err)
	}
	if re.Code != 2 || re.Size != 2 || re.Column != "Facies" {
		t.Fatalf("unexpected range error: %+v", re)
	}
	if !errors.Is(err, ErrClassOutOfRange) {
		t.Fatalf("RangeError must wrap ErrClassOutOfRange")
	}
}

func TestRender_MissingColumn(t *testing.T) {
	tbl := sampleTable(t, 20)
	spec := lithoSpec()
	spec.Panels = append(spec.Panels, CurvePanel{Column: "PEF", Label: "PEF"})
	_, err := Render(tbl, "A-1", spec, smallOptions())
	if !errors.Is(err, welllog.ErrMissingColumn) {
		t.Fatalf("expected ErrMissingColumn, got %v", err)
	}
}

func TestRender_TopsMustBeFirst(t *testing.T) {
	tbl := sampleTable(t, 20)
	spec := Spec{Panels: []Panel{CurvePanel{Column: "GR", Label: "GR"}, TopsPanel{Label: "Tops"}}}
	if _, err := Render(tbl, "A-1", spec, smallOptions()); err == nil {
		t.Fatalf("expected error for tops panel in second position")
	}
	if _, err := Render(tbl, "A-1", Spec{}, smallOptions()); !errors.Is(err, ErrEmptySpec) {
		t.Fatalf("expected ErrEmptySpec, got %v", err)
	}
}

func TestRender_TopsCollected(t *testing.T) {
	tbl := sampleTable(t, 20)
	fig, err := Render(tbl, "A-1", lithoSpec(), smallOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer fig.Close()
	want := []Top{{"Upper Sand", 1000}, {"Middle Shale", 1005}}
	if diff := cmp.Diff(want, fig.Panels()[0].Tops); diff != "" {
		t.Fatalf("tops mismatch (-want +got):\n%s", diff)
	}
}

// stripPixelClasses decodes the figure PNG and maps the center pixel of every
// sample band in the categorical panel back to a palette index.
func stripPixelClasses(t *testing.T, fig *Figure, panel int, depth []float64) []int {
	t.Helper()
	var buf bytes.Buffer
	if err := fig.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	info := fig.Panels()[panel]
	bands := info.Depth.bands(depth, info.Plot)
	x := (info.Plot.Min.X + info.Plot.Max.X) / 2
	out := make([]int, len(bands))
	for i, b := range bands {
		y := (b[0] + b[1]) / 2
		r, g, bl, _ := img.At(x, y).RGBA()
		out[i] = -1
		for k, c := range testPalette {
			if uint8(r>>8) == c.R && uint8(g>>8) == c.G && uint8(bl>>8) == c.B {
				out[i] = k
				break
			}
		}
	}
	return out
}

func TestRender_StripPixelsDeterministic(t *testing.T) {
	tbl := sampleTable(t, 50)
	sub, _ := tbl.Well("A-1")
	depth, _ := sub.Float(welllog.DepthColumn)
	facies, _ := sub.Float("Facies")

	var runs [][]int
	for i := 0; i < 2; i++ {
		fig, err := Render(tbl, "A-1", lithoSpec(), smallOptions())
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		runs = append(runs, stripPixelClasses(t, fig, 6, depth))
		if diff := cmp.Diff(runs[0], fig.Panels()[6].Strip.Classes()); diff != "" {
			t.Fatalf("pixels disagree with strip classes (-pixels +strip):\n%s", diff)
		}
		fig.Close()
	}
	if diff := cmp.Diff(runs[0], runs[1]); diff != "" {
		t.Fatalf("re-render changed class assignment:\n%s", diff)
	}
	for i, c := range runs[0] {
		if c != int(facies[i]) {
			t.Fatalf("row %d rendered class %d, data has %v", i, c, facies[i])
		}
	}
}

func TestRender_UnsortedDepthStillDownward(t *testing.T) {
	tbl, err := welllog.New(
		welllog.TextColumn(welllog.WellColumn, []string{"W", "W", "W"}),
		welllog.NumericColumn(welllog.DepthColumn, []float64{1020, 1000, 1010}),
		welllog.NumericColumn("Facies", []float64{2, 0, 1}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	spec := Spec{Panels: []Panel{CategoricalPanel{Column: "Facies", Label: "F", Palette: testPalette}}}
	fig, err := Render(tbl, "W", spec, smallOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer fig.Close()
	top, bottom := fig.Panels()[0].Depth.Limits()
	if top != 1020 || bottom != 1000 {
		t.Fatalf("limits (%v,%v), want (1020,1000)", top, bottom)
	}
	got := stripPixelClasses(t, fig, 0, []float64{1000, 1010, 1020})
	if diff := cmp.Diff([]int{0, 1, 2}, got); diff != "" {
		t.Fatalf("shallow-to-deep classes mismatch (-want +got):\n%s", diff)
	}
}

func TestFigure_CloseReleases(t *testing.T) {
	tbl := sampleTable(t, 10)
	fig, err := Render(tbl, "A-1", lithoSpec(), smallOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img, err := fig.Image()
	if err != nil || img == nil {
		t.Fatalf("Image before close: %v", err)
	}
	if err := fig.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := fig.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if _, err := fig.Image(); !errors.Is(err, ErrFigureClosed) {
		t.Fatalf("Image after close: %v", err)
	}
	if _, err := fig.Save(filepath.Join(t.TempDir(), "x.png")); !errors.Is(err, ErrFigureClosed) {
		t.Fatalf("Save after close: %v", err)
	}
}

func TestFigure_SaveWritesPNG(t *testing.T) {
	tbl := sampleTable(t, 30)
	fig, err := Render(tbl, "A-1", lithoSpec(), smallOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer fig.Close()
	path := filepath.Join(t.TempDir(), "A-1 Litho Validation.png")
	n, err := fig.Save(path)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	st, err := os.Stat(path)
	if err != nil || st.Size() != n {
		t.Fatalf("stat %s: size %v want %d (%v)", path, st, n, err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode config: %v", err)
	}
	if cfg.Height != 500 {
		t.Fatalf("height = %d, want 500", cfg.Height)
	}
}

func TestRender_SkipsInfiniteSamples(t *testing.T) {
	inf := math.Inf(1)
	tbl, err := welllog.New(
		welllog.TextColumn(welllog.WellColumn, []string{"W", "W", "W", "W", "W"}),
		welllog.NumericColumn(welllog.DepthColumn, []float64{1000, 1001, 1002, 1003, math.Inf(-1)}),
		welllog.NumericColumn("GR", []float64{10, 20, inf, 30, 40}),
		welllog.NumericColumn("Facies", []float64{0, 1, 2, 1, 0}),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	spec := Spec{Panels: []Panel{
		CurvePanel{Column: "GR", Label: "GR", Color: testPalette[0]},
		CategoricalPanel{Column: "Facies", Label: "F", Palette: testPalette},
	}}
	fig, err := Render(tbl, "W", spec, smallOptions())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer fig.Close()
	gr := fig.Panels()[0]
	if gr.Points != 3 || gr.XMin != 10 || gr.XMax != 30 {
		t.Fatalf("GR drew %d points over (%v,%v), want 3 over (10,30)", gr.Points, gr.XMin, gr.XMax)
	}
	top, bottom := gr.Depth.Limits()
	if top != 1003 || bottom != 1000 {
		t.Fatalf("limits (%v,%v), want (1003,1000)", top, bottom)
	}
	got := stripPixelClasses(t, fig, 1, []float64{1000, 1001, 1002, 1003})
	if diff := cmp.Diff([]int{0, 1, 2, 1}, got); diff != "" {
		t.Fatalf("strip classes (-want +got):\n%s", diff)
	}
}

func TestRender_ConcurrentFigures(t *testing.T) {
	tbl := sampleTable(t, 40)
	var wg sync.WaitGroup
	errs := make([]error, 8)
	titles := make([]string, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			well := "A-1"
			if i%2 == 1 {
				well = "B-2"
			}
			fig, err := Render(tbl, well, lithoSpec(), smallOptions())
			if err != nil {
				errs[i] = err
				return
			}
			titles[i] = fig.Title()
			errs[i] = fig.Close()
		}()
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			t.Fatalf("render %d: %v", i, err)
		}
		if !strings.HasSuffix(titles[i], " Well") {
			t.Fatalf("render %d title %q", i, titles[i])
		}
	}
}
