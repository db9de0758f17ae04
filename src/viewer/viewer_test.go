package viewer

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"github.com/iafilius/welltracks/src/charts"
	"github.com/iafilius/welltracks/src/tracks"
	"github.com/iafilius/welltracks/src/welllog"
)

func lithoTable(t *testing.T) *welllog.Table {
	t.Helper()
	n := 24
	wells := make([]string, n)
	formation := make([]string, n)
	cols := map[string][]float64{}
	names := []string{"Depth", "GR", "RHOB", "NPHI", "DTCO", "DTSM", "Facies", "Facies_pred"}
	for i := 0; i < n; i++ {
		wells[i] = "A-1"
		if i >= n/2 {
			wells[i] = "B-2"
		}
		if i == 0 || i == n/2 {
			formation[i] = "Top"
		}
		x := float64(i)
		for j, v := range []float64{2000 + x, 40 + x, 2.2 + x/100, 0.3 - x/200, 70 + x, 120 + x, float64(i % 6), float64((i + 1) % 6)} {
			cols[names[j]] = append(cols[names[j]], v)
		}
	}
	in := []welllog.Column{welllog.TextColumn("Well", wells), welllog.TextColumn("Formation", formation)}
	for _, c := range names {
		in = append(in, welllog.NumericColumn(c, cols[c]))
	}
	tbl, err := welllog.New(in...)
	require.NoError(t, err)
	return tbl
}

func newTestBrowser(t *testing.T) *Browser {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	return NewBrowser(a, BrowserConfig{
		OutDir:  t.TempDir(),
		Options: tracks.Options{PanelWidth: 120, Height: 400},
	})
}

func TestBrowser_SetTableSelectsFirstWell(t *testing.T) {
	b := newTestBrowser(t)
	b.SetTable(lithoTable(t), "logs.csv")

	require.Equal(t, "A-1", b.well)
	require.Equal(t, []string{"A-1", "B-2"}, b.wellSelect.Options)
	require.Equal(t, "logs.csv", b.sourceLabel.Text)

	res, err := b.Redraw()
	require.NoError(t, err)
	require.Equal(t, 7, res.Panels)
	require.Empty(t, res.Saved)
	require.NotNil(t, b.image.Image)
	require.Equal(t, 400, b.image.Image.Bounds().Dy())
}

func TestBrowser_ValidationSavesFigure(t *testing.T) {
	b := newTestBrowser(t)
	b.SetTable(lithoTable(t), "logs.csv")
	b.well, b.variant = "B-2", charts.VariantVal

	res, err := b.Redraw()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(b.cfg.OutDir, "B-2 Litho Validation.png"), res.Saved)
	_, err = os.Stat(res.Saved)
	require.NoError(t, err)
	require.Equal(t, "B-2 litho val.png", b.exportName())
}

func TestBrowser_ErrorsGoToStatus(t *testing.T) {
	b := newTestBrowser(t)
	b.SetTable(lithoTable(t), "logs.csv")
	b.kind = "gas"
	b.redrawAndReport()
	require.True(t, strings.Contains(b.status.Text, "Gas"), "status %q", b.status.Text)

	b.kind = "litho"
	b.redrawAndReport()
	require.True(t, strings.HasPrefix(b.status.Text, "A-1 litho data: 7 panels"), "status %q", b.status.Text)
}

func TestBrowser_PrefsRoundTrip(t *testing.T) {
	a := test.NewApp()
	t.Cleanup(a.Quit)
	a.Preferences().SetString("kind", "env")
	a.Preferences().SetString("variant", "test")
	a.Preferences().SetString("lastWell", "B-2")

	b := NewBrowser(a, BrowserConfig{OutDir: t.TempDir()})
	require.Equal(t, "environment", b.kind)
	require.Equal(t, charts.VariantTest, b.variant)

	b.SetTable(lithoTable(t), "logs.csv")
	require.Equal(t, "B-2", b.well, "last well is kept when present")
	require.Equal(t, "logs.csv", a.Preferences().String("lastFile"))
}

func TestWindow_ClosedFigure(t *testing.T) {
	fig, err := tracks.Render(lithoTable(t), "A-1", tracks.Spec{Panels: []tracks.Panel{
		tracks.CurvePanel{Column: "GR", Label: "GR"},
	}}, tracks.Options{PanelWidth: 120, Height: 400})
	require.NoError(t, err)
	require.NoError(t, fig.Close())

	w := &Window{App: test.NewApp()}
	err = w.Display(fig)
	require.True(t, errors.Is(err, tracks.ErrFigureClosed))
	require.False(t, w.used)
}

func TestFitSize(t *testing.T) {
	s := fitSize(image.Rect(0, 0, 2000, 1000), 1000, 1000)
	require.InDelta(t, 1000, s.Width, 0.01)
	require.InDelta(t, 500, s.Height, 0.01)

	s = fitSize(image.Rect(0, 0, 300, 3000), 1000, 1000)
	require.InDelta(t, 100, s.Width, 0.01)
	require.InDelta(t, 1000, s.Height, 0.01)

	s = fitSize(image.Rect(0, 0, 200, 100), 1000, 1000)
	require.InDelta(t, 200, s.Width, 0.01)
}

func TestShortPath(t *testing.T) {
	require.Equal(t, "short.csv", shortPath("short.csv", 60))
	long := "/home/user/projects/volve/logs/2024/well_logs.csv"
	require.Equal(t, "/…/volve/logs/2024/well_logs.csv", shortPath(long, 40))
	require.Equal(t, "data/…/well_logs.csv", shortPath("data/a/b/c/d/e/f/g/well_logs.csv", 20))
	require.Equal(t, "…long_file_name.xlsx", shortPath("/x/a_really_long_file_name.xlsx", 20))
}

func TestRecentSources(t *testing.T) {
	a := test.NewApp()
	t.Cleanup(a.Quit)
	dir := t.TempDir()
	var paths []string
	for _, name := range []string{"a.csv", "b.xlsx", "c.db", "notes.txt"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
		paths = append(paths, p)
	}
	r := recentSources{prefs: a.Preferences(), limit: 2}
	for _, p := range paths {
		r.Add(p)
	}
	require.Equal(t, []string{paths[3], paths[2]}, a.Preferences().StringList(prefRecent))
	require.Equal(t, []string{paths[2]}, r.List(), "unsupported formats are hidden")

	r.Add(paths[1])
	require.Equal(t, []string{paths[1], paths[2]}, a.Preferences().StringList(prefRecent))
	require.NoError(t, os.Remove(paths[2]))
	require.Equal(t, []string{paths[1]}, r.List(), "missing files are hidden")
	r.Clear()
	require.Empty(t, a.Preferences().StringList(prefRecent))
}
