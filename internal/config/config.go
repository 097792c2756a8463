// Package config holds the clock's single authoritative configuration
// record, its compact wire codec, and the precedence-resolving store.
package config

// Locale selects the date-formatting language.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleJA Locale = "ja"
)

func (l Locale) Valid() bool { return l == LocaleEN || l == LocaleJA }

// FontFamily names one of the four faces the renderer can resolve.
type FontFamily string

const (
	FontJetBrainsMono FontFamily = "JetBrains Mono"
	FontGeist         FontFamily = "Geist"
	FontInter         FontFamily = "Inter"
	FontNotoSerifJP   FontFamily = "Noto Serif JP"
)

func (f FontFamily) Valid() bool {
	switch f {
	case FontJetBrainsMono, FontGeist, FontInter, FontNotoSerifJP:
		return true
	}
	return false
}

// ThemeMode selects a color scheme; ThemeDynamic derives colors from the
// time of day, the rest are fixed palettes.
type ThemeMode string

const (
	ThemeDynamic  ThemeMode = "dynamic"
	ThemeAmber    ThemeMode = "amber"
	ThemePhosphor ThemeMode = "phosphor"
	ThemeMidnight ThemeMode = "midnight"
)

func (t ThemeMode) Valid() bool {
	switch t {
	case ThemeDynamic, ThemeAmber, ThemePhosphor, ThemeMidnight:
		return true
	}
	return false
}

// Font size bounds. The codec tolerates the full [Min,Max] range so
// hand-edited share links keep working; the settings UI only offers
// [UIMin,UIMax].
const (
	MinFontSize   = 1
	MaxFontSize   = 30
	UIMinFontSize = 4
	UIMaxFontSize = 28
)

// Config is the flat value object holding every user-visible display
// setting. It is replaced wholesale on each update, never mutated in place.
// FontSize is the time line's height as a percentage of the canvas width.
type Config struct {
	Locale      Locale     `json:"locale"`
	Is24h       bool       `json:"is24h"`
	ShowSeconds bool       `json:"showSeconds"`
	BlinkColon  bool       `json:"blinkColon"`
	ShowDate    bool       `json:"showDate"`
	Font        FontFamily `json:"font"`
	Theme       ThemeMode  `json:"theme"`
	FontSize    int        `json:"fontSize"`
}

// Defaults is the factory configuration. Every resolved record starts from
// this, so a fully-populated valid Config exists under any combination of
// absent or corrupt override sources.
var Defaults = Config{
	Locale:      LocaleEN,
	Is24h:       true,
	ShowSeconds: true,
	BlinkColon:  true,
	ShowDate:    true,
	Font:        FontJetBrainsMono,
	Theme:       ThemeDynamic,
	FontSize:    16,
}

// Patch is a partial Config: nil fields are "no opinion" and leave the
// next-lower-precedence source in charge of that field.
type Patch struct {
	Locale      *Locale     `json:"locale,omitempty"`
	Is24h       *bool       `json:"is24h,omitempty"`
	ShowSeconds *bool       `json:"showSeconds,omitempty"`
	BlinkColon  *bool       `json:"blinkColon,omitempty"`
	ShowDate    *bool       `json:"showDate,omitempty"`
	Font        *FontFamily `json:"font,omitempty"`
	Theme       *ThemeMode  `json:"theme,omitempty"`
	FontSize    *int        `json:"fontSize,omitempty"`
}

// Apply returns a copy of c with every field present in p overwritten.
// Callers at decode boundaries must Sanitize p first; Apply itself trusts
// its input so in-process UI patches stay a plain merge.
func (c Config) Apply(p Patch) Config {
	out := c
	if p.Locale != nil {
		out.Locale = *p.Locale
	}
	if p.Is24h != nil {
		out.Is24h = *p.Is24h
	}
	if p.ShowSeconds != nil {
		out.ShowSeconds = *p.ShowSeconds
	}
	if p.BlinkColon != nil {
		out.BlinkColon = *p.BlinkColon
	}
	if p.ShowDate != nil {
		out.ShowDate = *p.ShowDate
	}
	if p.Font != nil {
		out.Font = *p.Font
	}
	if p.Theme != nil {
		out.Theme = *p.Theme
	}
	if p.FontSize != nil {
		out.FontSize = *p.FontSize
	}
	return out
}

// Sanitize drops every field whose value is outside its domain. Invalid
// values are never clamped or reported; the field is simply unset so a
// lower-precedence source supplies it.
func (p Patch) Sanitize() Patch {
	out := p
	if p.Locale != nil && !p.Locale.Valid() {
		out.Locale = nil
	}
	if p.Font != nil && !p.Font.Valid() {
		out.Font = nil
	}
	if p.Theme != nil && !p.Theme.Valid() {
		out.Theme = nil
	}
	if p.FontSize != nil && (*p.FontSize < MinFontSize || *p.FontSize > MaxFontSize) {
		out.FontSize = nil
	}
	return out
}

// Merge overlays over on top of p: fields present in over win, the rest
// keep p's opinion. Used when several override sources arrive at startup.
func (p Patch) Merge(over Patch) Patch {
	out := p
	if over.Locale != nil {
		out.Locale = over.Locale
	}
	if over.Is24h != nil {
		out.Is24h = over.Is24h
	}
	if over.ShowSeconds != nil {
		out.ShowSeconds = over.ShowSeconds
	}
	if over.BlinkColon != nil {
		out.BlinkColon = over.BlinkColon
	}
	if over.ShowDate != nil {
		out.ShowDate = over.ShowDate
	}
	if over.Font != nil {
		out.Font = over.Font
	}
	if over.Theme != nil {
		out.Theme = over.Theme
	}
	if over.FontSize != nil {
		out.FontSize = over.FontSize
	}
	return out
}

// IsZero reports whether the patch carries no fields at all.
func (p Patch) IsZero() bool {
	return p.Locale == nil && p.Is24h == nil && p.ShowSeconds == nil &&
		p.BlinkColon == nil && p.ShowDate == nil && p.Font == nil &&
		p.Theme == nil && p.FontSize == nil
}
