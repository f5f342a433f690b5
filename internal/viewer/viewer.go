// Package viewer shows a rendered chart in a resizable window.
package viewer

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxWindowSide caps the initial window size for large pages.
const maxWindowSide = 1400

// window displays a single image scaled to fit, preserving its aspect ratio.
type window struct {
	img    *ebiten.Image
	width  int
	height int
}

func newWindow(img image.Image) *window {
	b := img.Bounds()
	return &window{
		img:    ebiten.NewImageFromImage(img),
		width:  b.Dx(),
		height: b.Dy(),
	}
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale, dx, dy := fit(w.width, w.height, sw, sh)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(dx, dy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(w.img, op)
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// fit returns the scale and offsets that centre a w x h image inside a
// sw x sh screen.
func fit(w, h, sw, sh int) (scale, dx, dy float64) {
	if w <= 0 || h <= 0 {
		return 1, 0, 0
	}
	scale = float64(sw) / float64(w)
	if s := float64(sh) / float64(h); s < scale {
		scale = s
	}
	dx = (float64(sw) - scale*float64(w)) / 2
	dy = (float64(sh) - scale*float64(h)) / 2
	return scale, dx, dy
}

// windowSize shrinks w x h so that the longer side is at most limit.
func windowSize(w, h, limit int) (int, int) {
	if w <= limit && h <= limit {
		return w, h
	}
	if w >= h {
		return limit, h * limit / w
	}
	return w * limit / h, limit
}

// Show opens a window titled title with img and blocks until it is closed
// with Esc, Q or the window controls.
func Show(title string, img image.Image) error {
	win := newWindow(img)
	ebiten.SetWindowSize(windowSize(win.width, win.height, maxWindowSide))
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
