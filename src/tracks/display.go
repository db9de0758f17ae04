package tracks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Displayer shows a rendered figure. Display may block until the user closes
// the view; the caller keeps ownership of the figure.
type Displayer interface {
	Display(fig *Figure) error
}

// DisplayFunc adapts a function to Displayer.
type DisplayFunc func(fig *Figure) error

func (f DisplayFunc) Display(fig *Figure) error { return f(fig) }

// PreviewDisplayer is the headless display: it writes "<Figure.Name>
// Preview.png" into Dir and records the paths it wrote. It may be shared by
// concurrent renders.
type PreviewDisplayer struct {
	Dir string

	mu      sync.Mutex
	written []string
}

// Written returns the preview paths in the order they were saved.
func (p *PreviewDisplayer) Written() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.written...)
}

func (p *PreviewDisplayer) Display(fig *Figure) error {
	dir := p.Dir
	if dir == "" {
		dir = os.TempDir()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create preview dir: %w", err)
	}
	path := filepath.Join(dir, SafeFileName(fig.Name()+" Preview")+".png")
	if _, err := fig.Save(path); err != nil {
		return err
	}
	p.mu.Lock()
	p.written = append(p.written, path)
	p.mu.Unlock()
	return nil
}

// SafeFileName replaces path separators so a well identifier can be used as a
// file name. Spaces are kept.
func SafeFileName(s string) string {
	r := strings.NewReplacer("/", "_", `\`, "_", ":", "_", "\x00", "")
	return strings.TrimSpace(r.Replace(s))
}
