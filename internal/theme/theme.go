// Package theme maps (theme mode, timestamp) to the clock's foreground and
// background colors. Everything here is pure: identical inputs always give
// identical colors, so frames can be rendered (and tested) without a live
// clock.
package theme

import (
	"image/color"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"

	"github.com/rook-computer/wallclock/internal/config"
)

// Palette is a fixed text/background pair.
type Palette struct {
	Text       color.RGBA
	Background color.RGBA
}

// Fixed palettes, each with its own character:
//
//	amber:    retro instrumentation / warm CRT
//	phosphor: green phosphor monitor (P1 / P39)
//	midnight: high-contrast monochrome
var fixed = map[config.ThemeMode]Palette{
	config.ThemeAmber:    {Text: hex("#ffb000"), Background: hex("#0d0800")},
	config.ThemePhosphor: {Text: hex("#33ff66"), Background: hex("#020d04")},
	config.ThemeMidnight: {Text: hex("#e8e8e8"), Background: hex("#050505")},
}

// Night window for the dynamic theme: [22:00, 06:00) local, straddling
// midnight. Night frames drop saturation and contrast.
const (
	nightStartHour = 22.0
	nightEndHour   = 6.0
)

// HourFraction returns the local time of day as hour + minute/60, in [0,24).
func HourFraction(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

func isNight(hourFraction float64) bool {
	return hourFraction >= nightStartHour || hourFraction < nightEndHour
}

// DynamicHSL returns the dynamic theme's hue, saturation, and background
// lightness for a timestamp (hue in degrees, sat/lightness in percent).
// Hue rotates once per day, so 23:59 and 00:00 sit less than a degree
// apart and midnight has no visible seam.
func DynamicHSL(t time.Time) (h, s, l float64) {
	hf := HourFraction(t)
	h = hf / 24 * 360
	if isNight(hf) {
		return h, 30, 8
	}
	return h, 60, 12
}

// Foreground returns the text color for mode at time t.
func Foreground(mode config.ThemeMode, t time.Time) color.RGBA {
	if p, ok := fixed[mode]; ok {
		return p.Text
	}
	h, s, _ := DynamicHSL(t)
	lightness := 80.0
	if isNight(HourFraction(t)) {
		lightness = 65
	}
	return rgba(colorful.Hsl(h, s/100, lightness/100))
}

// Background returns the backdrop color for mode at time t. It shares hue
// and saturation with Foreground but sits at a much lower lightness, so
// the text reads as lighter than the backdrop at every hour.
func Background(mode config.ThemeMode, t time.Time) color.RGBA {
	if p, ok := fixed[mode]; ok {
		return p.Background
	}
	h, s, l := DynamicHSL(t)
	return rgba(colorful.Hsl(h, s/100, l/100))
}

func rgba(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func hex(s string) color.RGBA {
	return rgba(lo.Must(colorful.Hex(s)))
}
