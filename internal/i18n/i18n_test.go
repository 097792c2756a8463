package i18n

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rook-computer/wallclock/internal/config"
)

func TestFormatDateEnglish(t *testing.T) {
	d := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Mon, January 5, 2026", FormatDate(d, config.LocaleEN))
}

func TestFormatDateJapanese(t *testing.T) {
	d := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026年1月5日(月)", FormatDate(d, config.LocaleJA))

	sunday := time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026年1月4日(日)", FormatDate(sunday, config.LocaleJA))
}

func TestFormatDateUnknownLocaleFallsBack(t *testing.T) {
	d := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, FormatDate(d, config.LocaleEN), FormatDate(d, config.Locale("fr")))
}

func TestDictionariesCoverBothLocales(t *testing.T) {
	dicts := Dictionaries()
	assert.Len(t, dicts, 2)

	// Every key must exist in both languages so the settings page never
	// shows a mixed-language panel.
	for key := range dicts[config.LocaleEN] {
		assert.Containsf(t, dicts[config.LocaleJA], key, "ja missing %q", key)
	}
	for key := range dicts[config.LocaleJA] {
		assert.Containsf(t, dicts[config.LocaleEN], key, "en missing %q", key)
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Settings", Label("settings", config.LocaleEN))
	assert.Equal(t, "設定", Label("settings", config.LocaleJA))
	assert.Equal(t, "no-such-key", Label("no-such-key", config.LocaleEN))
}
