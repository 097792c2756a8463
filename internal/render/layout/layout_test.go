package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeArea(t *testing.T) {
	got := SafeArea(image.Rect(0, 0, 1920, 1080), 0.9)
	assert.Equal(t, image.Rect(96, 54, 1824, 1026), got)

	// Degenerate fractions leave the rect alone.
	full := image.Rect(0, 0, 100, 100)
	assert.Equal(t, full, SafeArea(full, 0))
	assert.Equal(t, full, SafeArea(full, 1))
}

func TestInset(t *testing.T) {
	assert.Equal(t, image.Rect(10, 10, 90, 90), Inset(image.Rect(0, 0, 100, 100), 10))
	// Over-inset collapses rather than inverting.
	got := Inset(image.Rect(0, 0, 10, 10), 20)
	assert.True(t, got.Dx() >= 0 && got.Dy() >= 0)
}

func TestAnchorBottomRight(t *testing.T) {
	got := AnchorBottomRight(image.Rect(0, 0, 1920, 1080), 220, 220, 48)
	assert.Equal(t, image.Rect(1652, 812, 1872, 1032), got)
}

func TestFitWidth(t *testing.T) {
	assert.Equal(t, 1.0, FitWidth(500, 1000))
	assert.Equal(t, 1.0, FitWidth(1000, 1000))
	assert.InDelta(t, 0.5, FitWidth(2000, 1000), 0.0001)
	assert.Equal(t, 1.0, FitWidth(0, 1000))
}
