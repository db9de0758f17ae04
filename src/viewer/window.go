// Package viewer shows well figures in fyne windows: a blocking Displayer for
// the command line and the interactive browser of cmd/wellviewer.
package viewer

import (
	"errors"
	"image"
	"image/png"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"

	"github.com/iafilius/welltracks/src/logger"
	"github.com/iafilius/welltracks/src/tracks"
)

// AppID identifies the application for fyne preferences.
const AppID = "com.welltracks.viewer"

// ErrWindowUsed is returned when a Window is asked to display a second figure.
// fyne runs its event loop once per process.
var ErrWindowUsed = errors.New("viewer window already shown")

// Window displays one figure in a native window and blocks until the window
// is closed.
type Window struct {
	App  fyne.App // nil creates one with AppID
	used bool
}

func (w *Window) Display(fig *tracks.Figure) error {
	if w.used {
		return ErrWindowUsed
	}
	img, err := fig.Image()
	if err != nil {
		return err
	}
	w.used = true
	a := w.App
	if a == nil {
		a = app.NewWithID(AppID)
	}
	win := a.NewWindow(fig.Title())
	view := figureImage(img)
	win.SetContent(container.NewScroll(view))
	win.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("File",
		fyne.NewMenuItem("Export PNG…", func() { exportPNG(win, view, tracks.SafeFileName(fig.Title())+".png") }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Close", func() { win.Close() }),
	)))
	win.Resize(fitSize(img.Bounds(), 1400, 1000))
	logger.Debugf("display %s", fig.Title())
	win.ShowAndRun()
	return nil
}

// figureImage wraps a rendered figure for display at its native pixel size.
func figureImage(img image.Image) *canvas.Image {
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillContain
	ci.ScaleMode = canvas.ImageScaleSmooth
	b := img.Bounds()
	ci.SetMinSize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	return ci
}

// fitSize returns the window size for an image, capped to maxW x maxH while
// keeping its aspect ratio.
func fitSize(b image.Rectangle, maxW, maxH float32) fyne.Size {
	w, h := float32(b.Dx()), float32(b.Dy())
	if w <= 0 || h <= 0 {
		return fyne.NewSize(maxW, maxH)
	}
	scale := float32(1)
	if w > maxW {
		scale = maxW / w
	}
	if h*scale > maxH {
		scale = maxH / h
	}
	return fyne.NewSize(w*scale, h*scale)
}

// exportPNG asks for a destination and writes the displayed image.
func exportPNG(win fyne.Window, img *canvas.Image, defaultName string) {
	if win == nil || img == nil || img.Image == nil {
		dialog.ShowInformation("Export", "No figure to export.", win)
		return
	}
	fs := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil || wc == nil {
			return
		}
		defer wc.Close()
		if err := png.Encode(wc, img.Image); err != nil {
			dialog.ShowError(err, win)
			return
		}
		logger.Infof("exported %s", wc.URI().Path())
	}, win)
	fs.SetFileName(defaultName)
	fs.Show()
}
