// Package layout holds the small rectangle math the clock face needs.
package layout

import "image"

// Normalize ensures Min <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// SafeArea returns the centered sub-rectangle covering fraction of rect on
// both axes. Content is fit into this so nothing renders at the bezel.
func SafeArea(rect image.Rectangle, fraction float64) image.Rectangle {
	if fraction <= 0 || fraction >= 1 {
		return Normalize(rect)
	}
	rect = Normalize(rect)
	marginX := int(float64(rect.Dx()) * (1 - fraction) / 2)
	marginY := int(float64(rect.Dy()) * (1 - fraction) / 2)
	return image.Rect(rect.Min.X+marginX, rect.Min.Y+marginY, rect.Max.X-marginX, rect.Max.Y-marginY)
}

// AnchorBottomRight places a widthPx×heightPx box in rect's bottom-right
// corner, inset by marginPx. Used for the QR overlay.
func AnchorBottomRight(rect image.Rectangle, widthPx, heightPx, marginPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	maxX := rect.Max.X - marginPx
	maxY := rect.Max.Y - marginPx
	return Normalize(image.Rect(maxX-widthPx, maxY-heightPx, maxX, maxY))
}

// FitWidth returns the scale in (0,1] that makes contentWidth fit boxWidth.
func FitWidth(contentWidth, boxWidth int) float64 {
	if contentWidth <= 0 || boxWidth <= 0 || contentWidth <= boxWidth {
		return 1
	}
	return float64(boxWidth) / float64(contentWidth)
}
