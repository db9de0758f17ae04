package charts

import (
	"math"
	"testing"

	"github.com/iafilius/welltracks/src/tracks"
	"github.com/iafilius/welltracks/src/welllog"
)

// wellTable returns rows for each well in order, every class column filled
// with codes that fit the builtin palettes.
func wellTable(t *testing.T, rows map[string]int, order ...string) *welllog.Table {
	t.Helper()
	cols := map[string][]float64{}
	numeric := []string{"Depth", "GR", "RHOB", "NPHI", "DTCO", "DTSM",
		"Facies", "Facies_pred", "Electrofacies", "Ef_pred", "Environment", "Env_pred", "Gas", "Gas_pred"}
	var wells, formation []string
	for wi, w := range order {
		for i := 0; i < rows[w]; i++ {
			wells = append(wells, w)
			f := ""
			if i == 0 {
				f = "Top " + w
			}
			formation = append(formation, f)
			x := float64(i)
			vals := []float64{
				1000 + 500*float64(wi) + x, 50 + 20*math.Sin(x/4), 2.4 + 0.1*math.Cos(x/3), 0.2 + 0.01*x, 90 + x, 150 - x,
				float64(i % 3), float64((i + 1) % 3), float64(i % 5), float64((i + 2) % 5), float64(i % 6), float64((i + 3) % 6), float64(i % 2), float64((i + 1) % 2),
			}
			for j, c := range numeric {
				cols[c] = append(cols[c], vals[j])
			}
		}
	}
	in := []welllog.Column{
		welllog.TextColumn(welllog.WellColumn, wells),
		welllog.TextColumn(welllog.FormationColumn, formation),
	}
	for _, c := range numeric {
		in = append(in, welllog.NumericColumn(c, cols[c]))
	}
	tbl, err := welllog.New(in...)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	return tbl
}

func smallOutput(dir string) Output {
	return Output{Dir: dir, Options: tracks.Options{PanelWidth: 120, Height: 400}}
}
