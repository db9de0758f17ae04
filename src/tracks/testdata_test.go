package tracks

import (
	"image/color"
	"math"
	"testing"

	"github.com/iafilius/welltracks/src/welllog"
)

// sampleTable builds a two-well table: "A-1" with n rows starting at 1000 m and
// "B-2" with 10 rows deeper down. Facies codes cycle through {0, 1, 2}.
func sampleTable(t *testing.T, n int) *welllog.Table {
	t.Helper()
	var wells, formation []string
	var depth, gr, rhob, nphi, dtco, dtsm, facies []float64
	add := func(well string, d float64, i int) {
		wells = append(wells, well)
		depth = append(depth, d)
		gr = append(gr, 60+30*math.Sin(float64(i)/5))
		rhob = append(rhob, 2.3+0.2*math.Cos(float64(i)/7))
		nphi = append(nphi, 0.25+0.05*math.Sin(float64(i)/3))
		dtco = append(dtco, 80+float64(i%10))
		dtsm = append(dtsm, 140+float64(i%13))
		facies = append(facies, float64(i%3))
		name := ""
		switch i {
		case 0:
			name = "Upper Sand"
		case n / 2:
			name = "Middle Shale"
		}
		formation = append(formation, name)
	}
	for i := 0; i < n; i++ {
		add("A-1", 1000+0.5*float64(i), i)
	}
	for i := 0; i < 10; i++ {
		add("B-2", 3000+float64(i), i)
	}
	tbl, err := welllog.New(
		welllog.TextColumn(welllog.WellColumn, wells),
		welllog.NumericColumn(welllog.DepthColumn, depth),
		welllog.NumericColumn("GR", gr),
		welllog.NumericColumn("RHOB", rhob),
		welllog.NumericColumn("NPHI", nphi),
		welllog.NumericColumn("DTCO", dtco),
		welllog.NumericColumn("DTSM", dtsm),
		welllog.NumericColumn("Facies", facies),
		welllog.TextColumn(welllog.FormationColumn, formation),
	)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}
	return tbl
}

var testPalette = mustPalette("mediumseagreen", "orange", "yellow", "saddlebrown", "grey", "cyan")

func lithoSpec() Spec {
	return Spec{
		DepthLabel: "Measured Depth (m)",
		Panels: []Panel{
			TopsPanel{Label: "Tops"},
			CurvePanel{Column: "GR", Label: "Gamma Ray (API)", Color: mustColor("g")},
			CurvePanel{Column: "RHOB", Label: "Density (g/cc)", Color: mustColor("r")},
			CurvePanel{Column: "NPHI", Label: "NPHI (.pu)", Color: mustColor("black")},
			CurvePanel{Column: "DTCO", Label: "DTCO (us/f)", Color: mustColor("blue")},
			CurvePanel{Column: "DTSM", Label: "DTSM (us/f)", Color: mustColor("red")},
			CategoricalPanel{
				Column:  "Facies",
				Label:   "Lithofacies",
				Palette: testPalette,
				Classes: []string{"Si", "VSiS", "SiSs", "SiCl", "Cl", "SiSsCt"},
			},
		},
	}
}

// smallOptions keeps test figures small so rendering stays fast.
func smallOptions() Options {
	return Options{PanelWidth: 120, Height: 500}
}

// mustPalette is ParsePalette for fixed test palettes; it panics on unknown names.
func mustPalette(names ...string) Palette {
	p, err := ParsePalette(names...)
	if err != nil {
		panic(err)
	}
	return p
}

func mustColor(name string) color.RGBA {
	c, err := ParseColor(name)
	if err != nil {
		panic(err)
	}
	return c
}
