package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"
	"time"

	"github.com/rook-computer/wallclock/internal/state"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Canvas is the offscreen logical surface screens draw into. It implements
// Drawer; renderers own one and decide where its pixels end up (framebuffer
// blit, PNG preview).
type Canvas struct {
	mu    sync.Mutex
	img   *image.RGBA
	fonts *FontLibrary

	// Current translation for content-layer draws.
	offX, offY int
}

func NewCanvas(fonts *FontLibrary) *Canvas {
	if fonts == nil {
		fonts = NewFontLibrary("")
	}
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight)),
		fonts: fonts,
	}
}

func (c *Canvas) Size() (int, int) { return CanvasWidth, CanvasHeight }

func (c *Canvas) FillBackground(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *Canvas) Translate(dx, dy int) {
	c.offX, c.offY = dx, dy
}

func (c *Canvas) MeasureText(text string, style TextStyle) TextMetrics {
	face := c.fonts.Face(style.Family, style.Size)
	drawer := &font.Drawer{Face: face}
	metrics := face.Metrics()
	return TextMetrics{
		Width:      drawer.MeasureString(text).Ceil(),
		Height:     metrics.Ascent.Ceil() + metrics.Descent.Ceil(),
		Ascent:     metrics.Ascent.Ceil(),
		Descent:    metrics.Descent.Ceil(),
		LineHeight: metrics.Height.Ceil(),
	}
}

func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	face := c.fonts.Face(style.Family, style.Size)
	col := style.Color
	if col == nil {
		col = color.White
	}
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	width := drawer.MeasureString(text).Ceil()

	switch style.Align {
	case TextAlignCenter:
		x -= width / 2
	case TextAlignRight:
		x -= width
	}

	drawer.Dot = fixed.P(x+c.offX, y+c.offY)
	drawer.DrawString(text)

	metrics := face.Metrics()
	return TextMetrics{
		Width:      width,
		Height:     metrics.Ascent.Ceil() + metrics.Descent.Ceil(),
		Ascent:     metrics.Ascent.Ceil(),
		Descent:    metrics.Descent.Ceil(),
		LineHeight: metrics.Height.Ceil(),
	}
}

func (c *Canvas) DrawImage(img image.Image, x, y int) {
	if img == nil {
		return
	}
	bounds := img.Bounds()
	dst := image.Rect(x+c.offX, y+c.offY, x+c.offX+bounds.Dx(), y+c.offY+bounds.Dy())
	draw.Draw(c.img, dst, img, bounds.Min, draw.Over)
}

// renderFrame runs one locked draw of screen onto the canvas.
func (c *Canvas) renderFrame(screen Screen, snap state.State, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.offX, c.offY = 0, 0
	screen.Draw(c, snap, now)
}

// EncodePNG returns the current canvas contents, safe to call while the
// render loop is running.
func (c *Canvas) EncodePNG() ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Canvas) withImage(fn func(img *image.RGBA)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.img)
}

// runLoop drives redraws from snapshots without assuming the engine's
// cadence: it samples once a second and skips frames that could not look
// different (seconds hidden, colon steady, minute unchanged).
func runLoop(ctx context.Context, store *state.Store, redraw func(state.State)) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	lastMinute := -1
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			snap := store.Snapshot()
			animated := snap.Config.ShowSeconds || snap.Config.BlinkColon
			if !animated && now.Minute() == lastMinute && snap.Phase == state.RUNNING {
				continue
			}
			lastMinute = now.Minute()
			redraw(snap)
		}
	}
}
