package theme

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rook-computer/wallclock/internal/config"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 14, hour, minute, 0, 0, time.Local)
}

func TestDynamicHueRotatesWithTimeOfDay(t *testing.T) {
	h0, _, _ := DynamicHSL(at(0, 0))
	h6, _, _ := DynamicHSL(at(6, 0))
	h12, _, _ := DynamicHSL(at(12, 0))
	h18, _, _ := DynamicHSL(at(18, 0))

	assert.InDelta(t, 0.0, h0, 0.001)
	assert.InDelta(t, 90.0, h6, 0.001)
	assert.InDelta(t, 180.0, h12, 0.001)
	assert.InDelta(t, 270.0, h18, 0.001)
}

func TestDynamicHueContinuousAcrossMidnight(t *testing.T) {
	before, _, _ := DynamicHSL(at(23, 59))
	after, _, _ := DynamicHSL(at(0, 0))

	// 23:59 maps just under 360 and 00:00 wraps to 0; on the hue circle
	// the two sit less than a degree apart.
	gap := math.Abs(before - 360 - after)
	assert.Less(t, gap, 1.0)
}

func TestNightWindowThresholds(t *testing.T) {
	cases := []struct {
		hour, minute int
		night        bool
	}{
		{21, 59, false},
		{22, 0, true},
		{23, 59, true},
		{0, 0, true},
		{5, 59, true},
		{6, 0, false},
		{12, 0, false},
	}
	for _, tc := range cases {
		_, sat, bgl := DynamicHSL(at(tc.hour, tc.minute))
		if tc.night {
			assert.Equalf(t, 30.0, sat, "%02d:%02d saturation", tc.hour, tc.minute)
			assert.Equalf(t, 8.0, bgl, "%02d:%02d background lightness", tc.hour, tc.minute)
		} else {
			assert.Equalf(t, 60.0, sat, "%02d:%02d saturation", tc.hour, tc.minute)
			assert.Equalf(t, 12.0, bgl, "%02d:%02d background lightness", tc.hour, tc.minute)
		}
	}
}

func TestForegroundDimsAtNight(t *testing.T) {
	day := Foreground(config.ThemeDynamic, at(21, 59))
	night := Foreground(config.ThemeDynamic, at(22, 0))
	assert.NotEqual(t, day, night)

	dayL := luma(day)
	nightL := luma(night)
	assert.Greater(t, dayL, nightL)
}

func TestFixedThemesIgnoreTime(t *testing.T) {
	for _, mode := range []config.ThemeMode{config.ThemeAmber, config.ThemePhosphor, config.ThemeMidnight} {
		fgNoon := Foreground(mode, at(12, 0))
		fgMidnight := Foreground(mode, at(0, 0))
		assert.Equalf(t, fgNoon, fgMidnight, "%s foreground", mode)

		bgNoon := Background(mode, at(12, 0))
		bgMidnight := Background(mode, at(0, 0))
		assert.Equalf(t, bgNoon, bgMidnight, "%s background", mode)
	}
}

func TestFixedPaletteValues(t *testing.T) {
	fg := Foreground(config.ThemeAmber, at(12, 0))
	bg := Background(config.ThemeAmber, at(12, 0))
	assert.Equal(t, uint8(0xff), fg.R)
	assert.Equal(t, uint8(0xb0), fg.G)
	assert.Equal(t, uint8(0x00), fg.B)
	assert.Equal(t, uint8(0x0d), bg.R)
}

func TestTextAlwaysLighterThanBackground(t *testing.T) {
	modes := []config.ThemeMode{config.ThemeDynamic, config.ThemeAmber, config.ThemePhosphor, config.ThemeMidnight}
	for hour := 0; hour < 24; hour++ {
		for _, mode := range modes {
			fg := Foreground(mode, at(hour, 30))
			bg := Background(mode, at(hour, 30))
			assert.Greaterf(t, luma(fg), luma(bg), "%s at %02d:30", mode, hour)
		}
	}
}

func luma(c interface{ RGBA() (r, g, b, a uint32) }) float64 {
	r, g, b, _ := c.RGBA()
	return 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
}
