package render

import (
	"context"
	"image"
	"image/color"
	"sync/atomic"
	"time"

	fb "github.com/gonutz/framebuffer"
	"github.com/sirupsen/logrus"

	"github.com/rook-computer/wallclock/internal/state"
)

// FBRenderer blits the logical canvas to the Linux framebuffer.
type FBRenderer struct {
	Fonts *FontLibrary

	log     *logrus.Entry
	fbDev   *fb.Device
	canvas  *Canvas
	running atomic.Bool
	current Screen
}

func NewFBRenderer(fonts *FontLibrary) *FBRenderer {
	return &FBRenderer{
		Fonts: fonts,
		log:   logrus.WithField("component", "fb"),
	}
}

func (r *FBRenderer) Start(ctx context.Context) error {
	dev, err := fb.Open("/dev/fb0")
	if err != nil {
		return err
	}
	r.fbDev = dev
	bounds := dev.Bounds()
	r.log.Infof("framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	r.canvas = NewCanvas(r.Fonts)
	r.running.Store(true)
	return nil
}

func (r *FBRenderer) Stop() error {
	r.running.Store(false)
	if r.fbDev != nil {
		r.fbDev.Close()
	}
	return nil
}

func (r *FBRenderer) SetScreen(screen Screen) { r.current = screen }

// RedrawWithState draws the current screen for this instant and pushes the
// canvas to the hardware.
func (r *FBRenderer) RedrawWithState(snap state.State) {
	if !r.running.Load() || r.current == nil || r.fbDev == nil {
		return
	}
	r.canvas.renderFrame(r.current, snap, time.Now())
	r.blit()
}

// RunLoop refreshes the panel until the context is done. The cadence only
// affects power draw, never correctness: every frame is computed from a
// fresh snapshot and timestamp.
func (r *FBRenderer) RunLoop(ctx context.Context, store *state.Store) {
	runLoop(ctx, store, r.RedrawWithState)
}

// Canvas exposes the backing surface for the preview endpoint.
func (r *FBRenderer) Canvas() *Canvas { return r.canvas }

// blit scales the logical canvas onto the framebuffer with nearest-neighbor
// sampling. Panels are either 1:1 or close; NN keeps digit edges crisp.
func (r *FBRenderer) blit() {
	bounds := r.fbDev.Bounds()
	fbWidth := bounds.Dx()
	fbHeight := bounds.Dy()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	r.canvas.withImage(func(img *image.RGBA) {
		for y := 0; y < fbHeight; y++ {
			sy := (y * CanvasHeight) / fbHeight
			for x := 0; x < fbWidth; x++ {
				sx := (x * CanvasWidth) / fbWidth
				pixel := img.RGBAAt(sx, sy)
				r.fbDev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
			}
		}
	})
}
