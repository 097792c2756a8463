package config

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func TestApplyOverwritesOnlyPresentFields(t *testing.T) {
	got := Defaults.Apply(Patch{
		Is24h:    lo.ToPtr(false),
		Theme:    lo.ToPtr(ThemeAmber),
		FontSize: lo.ToPtr(20),
	})

	assert.False(t, got.Is24h)
	assert.Equal(t, ThemeAmber, got.Theme)
	assert.Equal(t, 20, got.FontSize)

	// Untouched fields keep the receiver's values.
	assert.Equal(t, Defaults.Locale, got.Locale)
	assert.Equal(t, Defaults.Font, got.Font)
	assert.True(t, got.ShowSeconds)
}

func TestApplyEmptyPatchIsIdentity(t *testing.T) {
	assert.Equal(t, Defaults, Defaults.Apply(Patch{}))
}

func TestSanitizeDropsInvalidFields(t *testing.T) {
	p := Patch{
		Locale:   lo.ToPtr(Locale("fr")),
		Font:     lo.ToPtr(FontFamily("Comic Sans")),
		Theme:    lo.ToPtr(ThemeMode("neon")),
		FontSize: lo.ToPtr(999),
		Is24h:    lo.ToPtr(false),
	}
	got := p.Sanitize()

	assert.Nil(t, got.Locale)
	assert.Nil(t, got.Font)
	assert.Nil(t, got.Theme)
	assert.Nil(t, got.FontSize)
	// Valid fields survive untouched.
	assert.NotNil(t, got.Is24h)
	assert.False(t, *got.Is24h)
}

func TestSanitizeNeverClamps(t *testing.T) {
	for _, size := range []int{0, -5, MaxFontSize + 1, 999} {
		got := Patch{FontSize: lo.ToPtr(size)}.Sanitize()
		assert.Nilf(t, got.FontSize, "size %d must be dropped, not clamped", size)
	}
	for _, size := range []int{MinFontSize, UIMinFontSize, UIMaxFontSize, MaxFontSize} {
		got := Patch{FontSize: lo.ToPtr(size)}.Sanitize()
		assert.NotNilf(t, got.FontSize, "size %d is in range and must survive", size)
	}
}

func TestMergeLaterSourceWins(t *testing.T) {
	base := Patch{FontSize: lo.ToPtr(10), Theme: lo.ToPtr(ThemeAmber)}
	over := Patch{FontSize: lo.ToPtr(20)}

	got := base.Merge(over)
	assert.Equal(t, 20, *got.FontSize)
	assert.Equal(t, ThemeAmber, *got.Theme)
}

func TestIsZero(t *testing.T) {
	assert.True(t, Patch{}.IsZero())
	assert.False(t, Patch{ShowDate: lo.ToPtr(false)}.IsZero())
}
