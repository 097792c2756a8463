// Package i18n formats dates for the two supported display languages.
// The tables are tiny on purpose; the clock shows one date line and a
// handful of UI labels, not arbitrary localized text.
package i18n

import (
	"fmt"
	"time"

	"github.com/rook-computer/wallclock/internal/config"
)

// Kanji weekday names, indexed by time.Weekday (Sunday first).
var jaWeekdays = [7]string{"日", "月", "火", "水", "木", "金", "土"}

// FormatDate renders t's calendar date for loc. Unsupported locales fall
// back to English rather than failing; the caller always gets a date line.
func FormatDate(t time.Time, loc config.Locale) string {
	if loc == config.LocaleJA {
		return fmt.Sprintf("%d年%d月%d日(%s)", t.Year(), int(t.Month()), t.Day(), jaWeekdays[t.Weekday()])
	}
	return t.Format("Mon, January 2, 2006")
}

// Dictionaries returns every settings-UI dictionary keyed by locale. The
// web layer serves this so the settings page and the device render from
// the same tables.
func Dictionaries() map[config.Locale]map[string]string {
	return map[config.Locale]map[string]string{
		config.LocaleEN: en,
		config.LocaleJA: ja,
	}
}

// Label returns the localized settings-UI string for key, falling back to
// the key itself so a missing entry stays visible instead of blank.
func Label(key string, loc config.Locale) string {
	dict := en
	if loc == config.LocaleJA {
		dict = ja
	}
	if s, ok := dict[key]; ok {
		return s
	}
	return key
}

var en = map[string]string{
	"settings":      "Settings",
	"language":      "Language",
	"theme":         "Theme",
	"font":          "Font",
	"fontSize":      "Size",
	"format24h":     "24-hour",
	"showSeconds":   "Seconds",
	"blinkColon":    "Blink colon",
	"showDate":      "Date",
	"shareConfig":   "Copy share link",
	"copied":        "Copied",
	"resetDefaults": "Reset to defaults",
}

var ja = map[string]string{
	"settings":      "設定",
	"language":      "言語",
	"theme":         "テーマ",
	"font":          "フォント",
	"fontSize":      "サイズ",
	"format24h":     "24時間表示",
	"showSeconds":   "秒を表示",
	"blinkColon":    "コロンの点滅",
	"showDate":      "日付を表示",
	"shareConfig":   "共有リンクをコピー",
	"copied":        "コピーしました",
	"resetDefaults": "初期設定に戻す",
}
