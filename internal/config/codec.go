package config

import (
	"net/url"
	"strconv"

	"github.com/samber/lo"
)

// Short query-string keys for share links. These are wire format: renaming
// a struct field must not touch this table.
const (
	keyLocale      = "l"
	keyIs24h       = "h"
	keyShowSeconds = "s"
	keyBlinkColon  = "b"
	keyShowDate    = "d"
	keyFont        = "f"
	keyTheme       = "t"
	keyFontSize    = "z"
)

// Font families travel as two-letter codes so links stay short and stable
// even if display labels ever change.
var fontCodes = map[FontFamily]string{
	FontJetBrainsMono: "jb",
	FontGeist:         "ge",
	FontInter:         "in",
	FontNotoSerifJP:   "ns",
}

var fontsByCode = lo.Invert(fontCodes)

// Serialize reduces cfg to a compact query string holding only the fields
// that differ from Defaults. A default configuration serializes to "".
func Serialize(cfg Config) string {
	v := url.Values{}
	if cfg.Locale != Defaults.Locale {
		v.Set(keyLocale, string(cfg.Locale))
	}
	if cfg.Is24h != Defaults.Is24h {
		v.Set(keyIs24h, boolCode(cfg.Is24h))
	}
	if cfg.ShowSeconds != Defaults.ShowSeconds {
		v.Set(keyShowSeconds, boolCode(cfg.ShowSeconds))
	}
	if cfg.BlinkColon != Defaults.BlinkColon {
		v.Set(keyBlinkColon, boolCode(cfg.BlinkColon))
	}
	if cfg.ShowDate != Defaults.ShowDate {
		v.Set(keyShowDate, boolCode(cfg.ShowDate))
	}
	if cfg.Font != Defaults.Font {
		v.Set(keyFont, fontCodes[cfg.Font])
	}
	if cfg.Theme != Defaults.Theme {
		v.Set(keyTheme, string(cfg.Theme))
	}
	if cfg.FontSize != Defaults.FontSize {
		v.Set(keyFontSize, strconv.Itoa(cfg.FontSize))
	}
	return v.Encode()
}

// Deserialize parses a share query string into a Patch. Input is untrusted:
// every recognized key is validated against its field's domain and silently
// dropped when invalid, unknown keys are ignored, and nothing here ever
// fails. Deserialize(Serialize(c)) applied over Defaults reproduces c.
func Deserialize(query string) Patch {
	// On malformed input ParseQuery keeps the pairs it could read; use those.
	vals, _ := url.ParseQuery(query)

	var p Patch
	if loc := Locale(vals.Get(keyLocale)); loc.Valid() {
		p.Locale = lo.ToPtr(loc)
	}
	if b, ok := parseBoolCode(vals.Get(keyIs24h)); ok {
		p.Is24h = lo.ToPtr(b)
	}
	if b, ok := parseBoolCode(vals.Get(keyShowSeconds)); ok {
		p.ShowSeconds = lo.ToPtr(b)
	}
	if b, ok := parseBoolCode(vals.Get(keyBlinkColon)); ok {
		p.BlinkColon = lo.ToPtr(b)
	}
	if b, ok := parseBoolCode(vals.Get(keyShowDate)); ok {
		p.ShowDate = lo.ToPtr(b)
	}
	if font, ok := fontsByCode[vals.Get(keyFont)]; ok {
		p.Font = lo.ToPtr(font)
	}
	if theme := ThemeMode(vals.Get(keyTheme)); theme.Valid() {
		p.Theme = lo.ToPtr(theme)
	}
	if n, err := strconv.Atoi(vals.Get(keyFontSize)); err == nil && n >= MinFontSize && n <= MaxFontSize {
		p.FontSize = lo.ToPtr(n)
	}
	return p
}

func boolCode(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// parseBoolCode accepts only the literal wire codes "0" and "1"; anything
// else (including "true") does not count as present.
func parseBoolCode(s string) (value, ok bool) {
	switch s {
	case "1":
		return true, true
	case "0":
		return false, true
	}
	return false, false
}
