package charts

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/iafilius/welltracks/src/tracks"
)

// Curve is one continuous track of a chart kind.
type Curve struct {
	Column string
	Label  string
	Color  string // color name or #rrggbb
}

// Labels are the categorical track titles per variant.
type Labels struct {
	Data  string // ground truth in the data variant
	Truth string // ground truth in the val variant
	Pred  string // prediction in the val variant
	Test  string // prediction in the test variant
}

// Kind is the configuration of one chart kind. Together with a Variant it
// fixes every panel of a chart.
type Kind struct {
	Name       string
	Truth      string // ground-truth class column
	Pred       string // predicted class column
	Palette    []string
	Classes    []string
	ValueRange tracks.ValueRange
	Labels     Labels
	Tops       bool // leading formation tops panel in data and val
	Curves     []Curve
	TestCurves []Curve
	Suffix     string // saved as "<well> <Suffix>.png"
}

// Validate checks that the kind can be turned into a tracks.Spec.
func (k Kind) Validate() error {
	switch {
	case k.Name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidKind)
	case k.Truth == "" || k.Pred == "":
		return fmt.Errorf("%w: %s: truth and pred columns are required", ErrInvalidKind, k.Name)
	case len(k.Palette) == 0:
		return fmt.Errorf("%w: %s: empty palette", ErrInvalidKind, k.Name)
	case len(k.Classes) > len(k.Palette):
		return fmt.Errorf("%w: %s: %d classes for %d colors", ErrInvalidKind, k.Name, len(k.Classes), len(k.Palette))
	case k.ValueRange.Max < k.ValueRange.Min:
		return fmt.Errorf("%w: %s: value range %v..%v", ErrInvalidKind, k.Name, k.ValueRange.Min, k.ValueRange.Max)
	case k.Suffix == "":
		return fmt.Errorf("%w: %s: empty save suffix", ErrInvalidKind, k.Name)
	}
	if _, err := tracks.ParsePalette(k.Palette...); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidKind, k.Name, err)
	}
	for _, c := range append(append([]Curve{}, k.Curves...), k.TestCurves...) {
		if c.Column == "" {
			return fmt.Errorf("%w: %s: curve without column", ErrInvalidKind, k.Name)
		}
		if _, err := tracks.ParseColor(c.Color); err != nil {
			return fmt.Errorf("%w: %s: curve %s: %v", ErrInvalidKind, k.Name, c.Column, err)
		}
	}
	return nil
}

var (
	gr   = Curve{Column: "GR", Label: "Gamma Ray (API)", Color: "g"}
	rhob = Curve{Column: "RHOB", Label: "Density (g/cc)", Color: "r"}
	nphi = Curve{Column: "NPHI", Label: "NPHI (.pu)", Color: "black"}
	dtco = Curve{Column: "DTCO", Label: "DTCO (us/f)", Color: "blue"}
	dtsm = Curve{Column: "DTSM", Label: "DTSM (us/f)", Color: "red"}

	fullCurves = []Curve{gr, rhob, nphi, dtco, dtsm}
	testCurves = []Curve{gr, rhob, nphi, dtco}
)

func builtinKinds() []Kind {
	return []Kind{
		{
			Name:       "litho",
			Truth:      "Facies",
			Pred:       "Facies_pred",
			Palette:    []string{"mediumseagreen", "orange", "yellow", "saddlebrown", "grey", "cyan"},
			Classes:    []string{"Si", "VSiS", "SiSs", "SiCl", "Cl", "SiSsCt"},
			ValueRange: tracks.ValueRange{Min: 0, Max: 6},
			Labels:     Labels{Data: "Lithofacies", Truth: "Actual Lithofacies", Pred: "Predicted Lithofacies", Test: "Lithofacies"},
			Tops:       true,
			Curves:     fullCurves,
			TestCurves: testCurves,
			Suffix:     "Litho Validation",
		},
		{
			Name:       "electrofacies",
			Truth:      "Electrofacies",
			Pred:       "Ef_pred",
			Palette:    []string{"red", "green", "blue", "yellow", "cyan"},
			Classes:    []string{"Cy", "Fu", "Be", "SI", "Sy"},
			ValueRange: tracks.ValueRange{Min: 0, Max: 4},
			Labels:     Labels{Data: "Electrofacies", Truth: "Actual Pattern", Pred: "Predicted Pattern", Test: "Electrofacies"},
			Tops:       true,
			Curves:     fullCurves,
			TestCurves: testCurves,
			Suffix:     "Electrofacies Validation",
		},
		{
			Name:       "environment",
			Truth:      "Environment",
			Pred:       "Env_pred",
			Palette:    []string{"saddlebrown", "yellowgreen", "turquoise", "darkgreen", "grey", "blue"},
			Classes:    []string{"MoS", "Sh", "MI", "ImS", "Ind", "Ma"},
			ValueRange: tracks.ValueRange{Min: 0, Max: 6},
			Labels:     Labels{Data: "Environment", Truth: "Environment", Pred: "Predicted Environment", Test: "Environment"},
			Tops:       true,
			Curves:     fullCurves,
			TestCurves: testCurves,
			Suffix:     "Depo Env Validation",
		},
		{
			Name:       "gas",
			Truth:      "Gas",
			Pred:       "Gas_pred",
			Palette:    []string{"blue", "yellow"},
			Classes:    []string{"Low", "Average"},
			ValueRange: tracks.ValueRange{Min: 0, Max: 1},
			Labels:     Labels{Data: "Gas Level", Truth: "Actual Gas Level", Pred: "Predicted Gas Level", Test: "Gas Level"},
			Curves:     testCurves,
			TestCurves: testCurves,
			Suffix:     "Gas Validation",
		},
	}
}

var aliases = map[string]string{
	"facies":      "litho",
	"lithofacies": "litho",
	"ef":          "electrofacies",
	"env":         "environment",
	"depo":        "environment",
}

// Registry holds the chart kinds by name. It is safe for concurrent reads
// while a Batch is running.
type Registry struct {
	mu    sync.RWMutex
	kinds map[string]Kind
}

// Builtin returns a registry with the litho, electrofacies, environment and
// gas kinds.
func Builtin() *Registry {
	r := &Registry{kinds: map[string]Kind{}}
	for _, k := range builtinKinds() {
		r.kinds[k.Name] = k
	}
	return r
}

// Lookup resolves a kind by name or alias, case-insensitively.
func (r *Registry) Lookup(name string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if a, ok := aliases[key]; ok {
		key = a
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.kinds[key]
	if !ok {
		return Kind{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownKind, name, strings.Join(r.namesLocked(), ", "))
	}
	return k, nil
}

// Set validates k and adds or replaces it.
func (r *Registry) Set(k Kind) error {
	k.Name = strings.ToLower(strings.TrimSpace(k.Name))
	if err := k.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	r.kinds[k.Name] = k
	r.mu.Unlock()
	return nil
}

// Names returns the registered kind names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

func (r *Registry) namesLocked() []string {
	out := make([]string, 0, len(r.kinds))
	for n := range r.kinds {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
