package render

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/rook-computer/wallclock/internal/state"
)

type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	SetScreen(screen Screen)
	RunLoop(ctx context.Context, store *state.Store)
	RedrawWithState(snap state.State)
}

// Screen draws one full frame from a state snapshot and the wall-clock
// instant the frame is for. Screens must not assume any tick cadence.
type Screen interface {
	Start(ctx context.Context) error
	Stop() error
	Draw(d Drawer, snap state.State, now time.Time)
}

// Drawer is the primitive surface the renderer hands to screens, keeping
// framebuffer details out of screen code.
type Drawer interface {
	// Size returns the logical canvas size in pixels.
	Size() (width int, height int)

	// FillBackground floods the whole canvas, ignoring any translation.
	FillBackground(c color.Color)

	// Translate offsets subsequent text/image draws by (dx, dy). Screens
	// apply the burn-in shift to content layers and reset to (0,0) before
	// drawing overlays.
	Translate(dx, dy int)

	MeasureText(text string, style TextStyle) TextMetrics
	DrawText(text string, x, y int, style TextStyle) TextMetrics

	DrawImage(img image.Image, x, y int)
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextStyle describes how to render text. Y is the baseline; X is
// interpreted per Align.
type TextStyle struct {
	Color  color.Color
	Family string // font family name; "" means the renderer default
	Size   int    // pixel size; 0 means renderer default
	Align  TextAlign
}

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}

// NoopRenderer satisfies Renderer without a display attached.
type NoopRenderer struct{}

func (n *NoopRenderer) Start(ctx context.Context) error                 { return nil }
func (n *NoopRenderer) Stop() error                                     { return nil }
func (n *NoopRenderer) SetScreen(screen Screen)                         {}
func (n *NoopRenderer) RunLoop(ctx context.Context, store *state.Store) {}
func (n *NoopRenderer) RedrawWithState(snap state.State)                {}
