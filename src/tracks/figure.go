package tracks

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// PanelInfo describes one rendered track.
type PanelInfo struct {
	Kind   PanelKind
	Column string
	Label  string
	Plot   image.Rectangle // plot area inside the figure image
	Depth  DepthRange
	XMin   float64 // curve panels: x bounds of the column
	XMax   float64
	Points int    // curve panels: finite samples drawn
	Strip  *Strip // categorical panels
	Tops   []Top  // tops panel
}

// Figure is one rendered well figure. It owns its image until Close.
type Figure struct {
	well   string
	title  string
	name   string
	img    *image.RGBA
	panels []PanelInfo
	legend image.Rectangle
	closed bool
}

// Well returns the well identifier the figure was rendered for.
func (f *Figure) Well() string { return f.well }

// Title returns the figure title.
func (f *Figure) Title() string { return f.title }

// Name identifies the chart for file names: "<well> <spec name>", or the
// title when the spec has no name.
func (f *Figure) Name() string {
	if f.name == "" {
		return f.title
	}
	return f.well + " " + f.name
}

// Panels returns the track descriptions in left-to-right order.
func (f *Figure) Panels() []PanelInfo { return f.panels }

// Legend returns the color bar rectangle, empty when there is none.
func (f *Figure) Legend() image.Rectangle { return f.legend }

// Image returns the composed figure.
func (f *Figure) Image() (image.Image, error) {
	if f.closed {
		return nil, ErrFigureClosed
	}
	return f.img, nil
}

// Encode writes the figure as PNG.
func (f *Figure) Encode(w io.Writer) error {
	if f.closed {
		return ErrFigureClosed
	}
	return png.Encode(w, f.img)
}

// Save writes the figure as a PNG file and returns the number of bytes written.
func (f *Figure) Save(path string) (int64, error) {
	if f.closed {
		return 0, ErrFigureClosed
	}
	out, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: out}
	bw := bufio.NewWriter(cw)
	if err := png.Encode(bw, f.img); err != nil {
		out.Close()
		return 0, fmt.Errorf("encode %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		out.Close()
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", path, err)
	}
	return cw.n, nil
}

// Close releases the figure image. It is safe to call more than once.
func (f *Figure) Close() error {
	f.closed = true
	f.img = nil
	return nil
}

// Closed reports whether Close has been called.
func (f *Figure) Closed() bool { return f.closed }

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
