package viewer

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2"

	"github.com/iafilius/welltracks/src/charts"
)

const (
	prefRecent   = "recentSources"
	prefLastFile = "lastFile"
	prefLastWell = "lastWell"
	prefKind     = "kind"
	prefVariant  = "variant"
)

// recentSources is the most-recently-opened list of well log tables, newest
// first, kept as a string list in the app preferences.
type recentSources struct {
	prefs fyne.Preferences
	limit int
}

func (b *Browser) recent() recentSources {
	return recentSources{prefs: b.app.Preferences(), limit: 8}
}

// List returns the stored sources that still exist and are a table format the
// loader understands.
func (r recentSources) List() []string {
	var out []string
	for _, p := range r.prefs.StringList(prefRecent) {
		if !loadable(p) {
			continue
		}
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			out = append(out, p)
		}
	}
	return out
}

// Add moves path to the front, dropping duplicates and anything past the limit.
func (r recentSources) Add(path string) {
	if path == "" {
		return
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	list := slices.DeleteFunc(r.List(), func(p string) bool { return p == path })
	list = append([]string{path}, list...)
	if len(list) > r.limit {
		list = list[:r.limit]
	}
	r.prefs.SetStringList(prefRecent, list)
}

func (r recentSources) Clear() { r.prefs.RemoveValue(prefRecent) }

func loadable(p string) bool {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".csv", ".xlsx", ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// savePrefs stores the current selection so the next session reopens it.
func savePrefs(b *Browser) {
	p := b.app.Preferences()
	p.SetString(prefLastFile, b.source)
	p.SetString(prefLastWell, b.well)
	p.SetString(prefKind, b.kind)
	p.SetString(prefVariant, b.variant.String())
}

// loadPrefs restores the last selection. Unknown kinds or variants, e.g. from
// an older registry, keep the defaults.
func loadPrefs(b *Browser) {
	p := b.app.Preferences()
	b.source = p.StringWithFallback(prefLastFile, b.source)
	b.well = p.StringWithFallback(prefLastWell, b.well)
	if kind, err := b.cfg.Registry.Lookup(p.String(prefKind)); err == nil {
		b.kind = kind.Name
	}
	if s := p.String(prefVariant); s != "" {
		if v, err := charts.ParseVariant(s); err == nil {
			b.variant = v
		}
	}
}

// shortPath fits p into n runes for labels and menus. Leading directories
// are collapsed to "…" one segment at a time so the file name and its
// nearest folders stay visible; an over-long file name keeps its tail.
func shortPath(p string, n int) string {
	if utf8.RuneCountInString(p) <= n {
		return p
	}
	parts := strings.Split(filepath.ToSlash(p), "/")
	tail := parts[len(parts)-1]
	prefix := parts[0] + "/…/"
	if len(parts) > 1 {
		for i := len(parts) - 2; i >= 1; i-- {
			next := parts[i] + "/" + tail
			if utf8.RuneCountInString(prefix+next) > n {
				break
			}
			tail = next
		}
		if utf8.RuneCountInString(prefix+tail) <= n {
			return prefix + tail
		}
	}
	r := []rune(parts[len(parts)-1])
	if n < 2 || len(r) < n {
		return string(r)
	}
	return "…" + string(r[len(r)-n+1:])
}
