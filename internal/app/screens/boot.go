package screens

import (
	"context"
	"image"
	"sync"
	"time"

	"github.com/rook-computer/wallclock/internal/render"
	"github.com/rook-computer/wallclock/internal/render/layout"
	"github.com/rook-computer/wallclock/internal/state"
	"github.com/rook-computer/wallclock/internal/theme"
)

// BootScreen shows while the settings server comes up: product name plus,
// once known, the settings URL and its QR code.
type BootScreen struct {
	mu        sync.Mutex
	qrPayload string
	qrImage   image.Image
}

func NewBootScreen() *BootScreen { return &BootScreen{} }

func (s *BootScreen) Start(ctx context.Context) error { return nil }
func (s *BootScreen) Stop() error                     { return nil }

func (s *BootScreen) Draw(d render.Drawer, snap state.State, now time.Time) {
	cfg := snap.Config
	fg := theme.Foreground(cfg.Theme, now)
	d.FillBackground(theme.Background(cfg.Theme, now))

	width, height := d.Size()
	title := render.TextStyle{Color: fg, Family: string(cfg.Font), Size: 96, Align: render.TextAlignCenter}
	d.DrawText("wallclock", width/2, height/3, title)

	if snap.Network.URL == "" {
		return
	}

	label := render.TextStyle{Color: fg, Size: 32, Align: render.TextAlignCenter}
	d.DrawText(snap.Network.URL, width/2, height/3+80, label)

	if img := s.qr(snap.Network.QRPayload); img != nil {
		box := layout.Inset(image.Rect(0, 0, width, height), 0)
		size := img.Bounds().Dx()
		d.DrawImage(img, (box.Dx()-size)/2, height/2)
	}
}

func (s *BootScreen) qr(payload string) image.Image {
	if payload == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if payload == s.qrPayload {
		return s.qrImage
	}
	img, err := render.QRImage(payload, 256)
	if err != nil {
		return nil
	}
	s.qrPayload = payload
	s.qrImage = img
	return img
}
