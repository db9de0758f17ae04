package tracks

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/iafilius/welltracks/src/logger"
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

var (
	labelFace = basicfont.Face7x13

	titleOnce sync.Once
	titleTTF  *opentype.Font
)

// newTitleFace returns a 20px Go Regular face, or the bitmap face when the
// font cannot be loaded. A face is not safe for concurrent use, so each render
// creates its own and closes it when done.
func newTitleFace() font.Face {
	titleOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			logger.Warnf("parse title font: %v; using bitmap face", err)
			return
		}
		titleTTF = f
	})
	if titleTTF == nil {
		return labelFace
	}
	face, err := opentype.NewFace(titleTTF, &opentype.FaceOptions{Size: 20, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		logger.Warnf("create title face: %v; using bitmap face", err)
		return labelFace
	}
	return face
}

func textWidth(face font.Face, s string) int {
	return font.MeasureString(face, s).Ceil()
}

// drawText draws s with its baseline at y, aligned around x.
func drawText(dst draw.Image, face font.Face, s string, x, y int, col color.Color, a align) {
	if s == "" {
		return
	}
	w := textWidth(face, s)
	switch a {
	case alignCenter:
		x -= w / 2
	case alignRight:
		x -= w
	}
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(col), Face: face, Dot: fixed.P(x, y)}
	d.DrawString(s)
}

// drawTextVertical draws s rotated 90° counter-clockwise, centered on (cx, cy).
func drawTextVertical(dst draw.Image, face font.Face, s string, cx, cy int, col color.Color) {
	if s == "" {
		return
	}
	m := face.Metrics()
	w := textWidth(face, s)
	h := (m.Ascent + m.Descent).Ceil()
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	drawText(tmp, face, s, 0, m.Ascent.Ceil(), col, alignLeft)
	// (x, y) in tmp lands on (y, w-1-x) after rotation
	x0, y0 := cx-h/2, cy-w/2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := tmp.RGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			px, py := x0+y, y0+w-1-x
			if image.Pt(px, py).In(dst.Bounds()) {
				blend(dst, px, py, c)
			}
		}
	}
}

// blend composites a premultiplied color over the destination pixel.
func blend(dst draw.Image, x, y int, c color.RGBA) {
	if c.A == 255 {
		dst.Set(x, y, c)
		return
	}
	r, g, b, a := dst.At(x, y).RGBA()
	ia := uint32(255 - c.A)
	dst.Set(x, y, color.RGBA{
		R: uint8(uint32(c.R) + (r>>8)*ia/255),
		G: uint8(uint32(c.G) + (g>>8)*ia/255),
		B: uint8(uint32(c.B) + (b>>8)*ia/255),
		A: uint8(uint32(c.A) + (a>>8)*ia/255),
	})
}

func fillRect(dst draw.Image, r image.Rectangle, col color.Color) {
	draw.Draw(dst, r.Intersect(dst.Bounds()), image.NewUniform(col), image.Point{}, draw.Src)
}

func hline(dst draw.Image, x0, x1, y int, col color.Color) {
	fillRect(dst, image.Rect(x0, y, x1, y+1), col)
}

func vline(dst draw.Image, x, y0, y1 int, col color.Color) {
	fillRect(dst, image.Rect(x, y0, x+1, y1), col)
}

// frame draws a 1px border just inside r.
func frame(dst draw.Image, r image.Rectangle, col color.Color) {
	hline(dst, r.Min.X, r.Max.X, r.Min.Y, col)
	hline(dst, r.Min.X, r.Max.X, r.Max.Y-1, col)
	vline(dst, r.Min.X, r.Min.Y, r.Max.Y, col)
	vline(dst, r.Max.X-1, r.Min.Y, r.Max.Y, col)
}
