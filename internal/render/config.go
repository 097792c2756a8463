package render

// Logical canvas; scaled to whatever the framebuffer reports.
const (
	CanvasWidth  = 1920
	CanvasHeight = 1080
)

// Safe area: content wider than this fraction of the canvas is scaled down
// so an oversized font never clips at the edges.
const SafeAreaFraction = 0.9
