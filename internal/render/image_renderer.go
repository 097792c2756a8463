package render

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rook-computer/wallclock/internal/state"
)

// ImageRenderer runs the exact frame pipeline without display hardware.
// The simulator serves its canvas as PNG; tests can inspect pixels.
type ImageRenderer struct {
	Fonts *FontLibrary

	// Clock returns the instant frames are rendered for. Nil means
	// time.Now; the simulator points it at a controllable fake.
	Clock func() time.Time

	log     *logrus.Entry
	canvas  *Canvas
	running atomic.Bool
	current Screen
}

func NewImageRenderer(fonts *FontLibrary) *ImageRenderer {
	return &ImageRenderer{
		Fonts: fonts,
		log:   logrus.WithField("component", "render"),
	}
}

func (r *ImageRenderer) Start(ctx context.Context) error {
	r.canvas = NewCanvas(r.Fonts)
	r.running.Store(true)
	return nil
}

func (r *ImageRenderer) Stop() error {
	r.running.Store(false)
	return nil
}

func (r *ImageRenderer) SetScreen(screen Screen) { r.current = screen }

func (r *ImageRenderer) RedrawWithState(snap state.State) {
	if !r.running.Load() || r.current == nil {
		return
	}
	now := time.Now()
	if r.Clock != nil {
		now = r.Clock()
	}
	r.canvas.renderFrame(r.current, snap, now)
}

func (r *ImageRenderer) RunLoop(ctx context.Context, store *state.Store) {
	runLoop(ctx, store, r.RedrawWithState)
}

func (r *ImageRenderer) Canvas() *Canvas { return r.canvas }
