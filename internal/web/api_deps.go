package web

import (
	"errors"

	"github.com/rook-computer/wallclock/internal/config"
)

// ConfigService is what the API needs from the running engine: snapshot
// reads, validated updates, and the shareable form of the current record.
//
// The concrete implementation is the app's ConfigController.
type ConfigService interface {
	Snapshot() config.Config
	Update(patch config.Patch) config.Config
	Reset() config.Config
	ShareURL() string
}

type APIV1Deps struct {
	Config ConfigService

	// SpoolShare stores an incoming share query for the next boot.
	// Returns false when the spool could not be written.
	SpoolShare func(query string) bool

	// PreviewPNG returns the current canvas, when a renderer exposes one.
	PreviewPNG func() ([]byte, error)
}

func (d APIV1Deps) withDefaults() APIV1Deps {
	out := d
	if out.Config == nil {
		out.Config = NoopConfigService{}
	}
	if out.SpoolShare == nil {
		out.SpoolShare = func(string) bool { return false }
	}
	if out.PreviewPNG == nil {
		out.PreviewPNG = func() ([]byte, error) { return nil, errors.New("preview not configured") }
	}
	return out
}

// NoopConfigService serves defaults and ignores writes; it keeps the API
// total before the engine is wired in.
type NoopConfigService struct{}

func (NoopConfigService) Snapshot() config.Config           { return config.Defaults }
func (NoopConfigService) Update(config.Patch) config.Config { return config.Defaults }
func (NoopConfigService) Reset() config.Config              { return config.Defaults }
func (NoopConfigService) ShareURL() string                  { return "" }
