// Package clockface turns timestamps into the strings the renderer draws.
package clockface

import (
	"time"

	"github.com/rook-computer/wallclock/internal/config"
	"github.com/rook-computer/wallclock/internal/i18n"
)

// TimeParts is a formatted wall-clock reading. Period is empty in 24-hour
// mode and "AM"/"PM" otherwise.
type TimeParts struct {
	Hours   string
	Minutes string
	Seconds string
	Period  string
}

// Format splits t into zero-padded display segments.
func Format(t time.Time, is24h bool) TimeParts {
	h := t.Hour()
	period := ""
	if !is24h {
		period = "AM"
		if h >= 12 {
			period = "PM"
		}
		h = h % 12
		if h == 0 {
			h = 12
		}
	}
	return TimeParts{
		Hours:   pad2(h),
		Minutes: pad2(t.Minute()),
		Seconds: pad2(t.Second()),
		Period:  period,
	}
}

// ColonVisible reports whether the separators show this instant. With
// blinking enabled they hide on odd seconds; the renderer keeps their
// advance width so the line never shifts.
func ColonVisible(t time.Time, cfg config.Config) bool {
	return !cfg.BlinkColon || t.Second()%2 == 0
}

// TimeLine is the full reading as one string, colons always present. Used
// for measuring and wherever the blink treatment does not apply.
func TimeLine(t time.Time, cfg config.Config) string {
	parts := Format(t, cfg.Is24h)
	line := parts.Hours + ":" + parts.Minutes
	if cfg.ShowSeconds {
		line += ":" + parts.Seconds
	}
	return line
}

// DateLine returns the localized date string, or "" when the date line is
// disabled.
func DateLine(t time.Time, cfg config.Config) string {
	if !cfg.ShowDate {
		return ""
	}
	return i18n.FormatDate(t, cfg.Locale)
}

func pad2(n int) string {
	return string([]byte{'0' + byte(n/10), '0' + byte(n%10)})
}
