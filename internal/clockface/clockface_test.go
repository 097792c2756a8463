package clockface

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rook-computer/wallclock/internal/config"
)

func at(hour, minute, second int) time.Time {
	return time.Date(2026, time.March, 14, hour, minute, second, 0, time.UTC)
}

func TestFormat24h(t *testing.T) {
	parts := Format(at(9, 5, 3), true)
	assert.Equal(t, "09", parts.Hours)
	assert.Equal(t, "05", parts.Minutes)
	assert.Equal(t, "03", parts.Seconds)
	assert.Empty(t, parts.Period)

	assert.Equal(t, "00", Format(at(0, 0, 0), true).Hours)
	assert.Equal(t, "23", Format(at(23, 0, 0), true).Hours)
}

func TestFormat12h(t *testing.T) {
	cases := []struct {
		hour   int
		want   string
		period string
	}{
		{0, "12", "AM"},
		{1, "01", "AM"},
		{11, "11", "AM"},
		{12, "12", "PM"},
		{13, "01", "PM"},
		{23, "11", "PM"},
	}
	for _, tc := range cases {
		parts := Format(at(tc.hour, 0, 0), false)
		assert.Equalf(t, tc.want, parts.Hours, "hour %d", tc.hour)
		assert.Equalf(t, tc.period, parts.Period, "hour %d", tc.hour)
	}
}

func TestColonVisible(t *testing.T) {
	blink := config.Defaults // BlinkColon on
	assert.True(t, ColonVisible(at(12, 0, 0), blink))
	assert.False(t, ColonVisible(at(12, 0, 1), blink))
	assert.True(t, ColonVisible(at(12, 0, 2), blink))

	steady := config.Defaults
	steady.BlinkColon = false
	assert.True(t, ColonVisible(at(12, 0, 1), steady))
}

func TestTimeLine(t *testing.T) {
	cfg := config.Defaults
	assert.Equal(t, "14:07:09", TimeLine(at(14, 7, 9), cfg))

	cfg.ShowSeconds = false
	assert.Equal(t, "14:07", TimeLine(at(14, 7, 9), cfg))

	cfg.Is24h = false
	assert.Equal(t, "02:07", TimeLine(at(14, 7, 9), cfg))
}

func TestDateLine(t *testing.T) {
	cfg := config.Defaults
	assert.Equal(t, "Sat, March 14, 2026", DateLine(at(12, 0, 0), cfg))

	cfg.Locale = config.LocaleJA
	assert.Equal(t, "2026年3月14日(土)", DateLine(at(12, 0, 0), cfg))

	cfg.ShowDate = false
	assert.Empty(t, DateLine(at(12, 0, 0), cfg))
}
