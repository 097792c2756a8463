package screens

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rook-computer/wallclock/internal/clockface"
	"github.com/rook-computer/wallclock/internal/config"
	"github.com/rook-computer/wallclock/internal/i18n"
	"github.com/rook-computer/wallclock/internal/render"
	"github.com/rook-computer/wallclock/internal/render/layout"
	"github.com/rook-computer/wallclock/internal/state"
	"github.com/rook-computer/wallclock/internal/theme"
)

// Relative scales within the time line, matching the original proportions:
// AM/PM at 30% of the digits, the date at 12%, both dimmed against the
// digits.
const (
	periodScale = 0.30
	dateScale   = 0.12
	periodDim   = 0.6
	dateDim     = 0.4
)

const (
	qrOverlaySizePx = 220
	qrOverlayMargin = 48
)

// ClockScreen is the steady-state face: time line, optional date line, and
// an optional QR overlay pointing at the settings page.
type ClockScreen struct {
	log *logrus.Entry

	// QR image cache; regenerating per frame would dominate the draw.
	qrPayload string
	qrImage   image.Image
}

func NewClockScreen() *ClockScreen {
	return &ClockScreen{log: logrus.WithField("component", "clock")}
}

func (s *ClockScreen) Start(ctx context.Context) error { return nil }
func (s *ClockScreen) Stop() error                     { return nil }

func (s *ClockScreen) Draw(d render.Drawer, snap state.State, now time.Time) {
	cfg := snap.Config
	fg := theme.Foreground(cfg.Theme, now)
	bg := theme.Background(cfg.Theme, now)
	d.FillBackground(bg)

	width, height := d.Size()
	frame := layout.SafeArea(image.Rect(0, 0, width, height), render.SafeAreaFraction)

	// FontSize is percent of canvas width; scale down if the full line
	// would overflow the safe area.
	sizePx := cfg.FontSize * width / 100
	family := string(cfg.Font)
	parts := clockface.Format(now, cfg.Is24h)
	lineWidth := s.lineWidth(d, now, cfg, parts.Period, sizePx)
	if scale := layout.FitWidth(lineWidth, frame.Dx()); scale < 1 {
		sizePx = int(float64(sizePx) * scale)
		lineWidth = s.lineWidth(d, now, cfg, parts.Period, sizePx)
	}

	timeStyle := render.TextStyle{Color: fg, Family: family, Size: sizePx}
	metrics := d.MeasureText("00", timeStyle)

	// Content layer drifts with the burn-in shift; overlays do not.
	d.Translate(snap.Shift.X, snap.Shift.Y)

	baseline := height/2 + metrics.Ascent/2
	dateSize := int(float64(sizePx) * dateScale)
	if cfg.ShowDate && dateSize > 0 {
		// Lift the time line so the pair stays vertically centered.
		baseline -= dateSize
	}

	x := (width - lineWidth) / 2
	x += s.drawSegment(d, parts.Hours, x, baseline, timeStyle)
	x += s.drawColon(d, now, snap, x, baseline, timeStyle, bg)
	x += s.drawSegment(d, parts.Minutes, x, baseline, timeStyle)
	if cfg.ShowSeconds {
		x += s.drawColon(d, now, snap, x, baseline, timeStyle, bg)
		x += s.drawSegment(d, parts.Seconds, x, baseline, timeStyle)
	}
	if parts.Period != "" {
		periodStyle := render.TextStyle{
			Color:  mix(fg, bg, periodDim),
			Family: family,
			Size:   int(float64(sizePx) * periodScale),
		}
		gap := sizePx / 10
		d.DrawText(parts.Period, x+gap, baseline, periodStyle)
	}

	if line := clockface.DateLine(now, cfg); line != "" && dateSize > 0 {
		dateStyle := render.TextStyle{
			Color:  mix(fg, bg, dateDim),
			Family: family,
			Size:   dateSize,
			Align:  render.TextAlignCenter,
		}
		d.DrawText(line, width/2, baseline+dateSize*2, dateStyle)
	}

	d.Translate(0, 0)
	if snap.OverlayVisible {
		s.drawOverlay(d, snap, fg)
	}
}

// lineWidth measures the digits-and-colons line at sizePx.
func (s *ClockScreen) lineWidth(d render.Drawer, now time.Time, cfg config.Config, period string, sizePx int) int {
	family := string(cfg.Font)
	style := render.TextStyle{Family: family, Size: sizePx}
	total := d.MeasureText(clockface.TimeLine(now, cfg), style).Width
	if period != "" {
		periodStyle := render.TextStyle{Family: family, Size: int(float64(sizePx) * periodScale)}
		total += sizePx/10 + d.MeasureText(period, periodStyle).Width
	}
	return total
}

func (s *ClockScreen) drawSegment(d render.Drawer, text string, x, baseline int, style render.TextStyle) int {
	return d.DrawText(text, x, baseline, style).Width
}

// drawColon renders the separator in the background color on hidden
// phases, keeping its advance so the digits never move.
func (s *ClockScreen) drawColon(d render.Drawer, now time.Time, snap state.State, x, baseline int, style render.TextStyle, bg color.RGBA) int {
	if !clockface.ColonVisible(now, snap.Config) {
		style.Color = bg
	}
	return d.DrawText(":", x, baseline, style).Width
}

func (s *ClockScreen) drawOverlay(d render.Drawer, snap state.State, fg color.RGBA) {
	payload := snap.Network.QRPayload
	if payload == "" {
		return
	}
	if payload != s.qrPayload {
		img, err := render.QRImage(payload, qrOverlaySizePx)
		if err != nil {
			s.log.WithError(err).Error("share QR generation failed")
			return
		}
		s.qrPayload = payload
		s.qrImage = img
	}
	if s.qrImage == nil {
		return
	}

	width, height := d.Size()
	box := layout.AnchorBottomRight(image.Rect(0, 0, width, height), qrOverlaySizePx, qrOverlaySizePx, qrOverlayMargin)
	d.DrawImage(s.qrImage, box.Min.X, box.Min.Y)

	if snap.Network.URL != "" {
		caption := i18n.Label("settings", snap.Config.Locale) + ": " + snap.Network.URL
		labelStyle := render.TextStyle{Color: fg, Size: 24, Align: render.TextAlignRight}
		d.DrawText(caption, box.Max.X, box.Min.Y-16, labelStyle)
	}
}

// mix blends a toward b; t=1 keeps a, t=0 gives b. Stands in for the
// original's text opacity without alpha compositing.
func mix(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x)*t + float64(y)*(1-t))
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: 0xFF}
}
