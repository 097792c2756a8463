package app

import (
	"github.com/sirupsen/logrus"

	"github.com/rook-computer/wallclock/internal/config"
	"github.com/rook-computer/wallclock/internal/share"
	"github.com/rook-computer/wallclock/internal/state"
)

// ConfigController is the composition point collaborators call: reads,
// updates, and resets go through the config store, then fan out to the
// presentation state and a redraw. It implements web.ConfigService.
type ConfigController struct {
	Store *config.Store
	State *state.Store

	// BaseURL is the device's settings URL, the prefix of share links.
	BaseURL string

	// OnChange runs after the live record is replaced (typically an
	// immediate redraw). Optional.
	OnChange func(config.Config)

	log *logrus.Entry
}

func NewConfigController(store *config.Store, st *state.Store) *ConfigController {
	return &ConfigController{
		Store: store,
		State: st,
		log:   logrus.WithField("component", "controller"),
	}
}

func (c *ConfigController) Snapshot() config.Config {
	return c.Store.Snapshot()
}

func (c *ConfigController) Update(patch config.Patch) config.Config {
	next := c.Store.Update(patch)
	c.propagate(next)
	return next
}

func (c *ConfigController) Reset() config.Config {
	next := c.Store.Reset()
	c.propagate(next)
	return next
}

// ShareURL is the shareable link reproducing the current configuration.
func (c *ConfigController) ShareURL() string {
	return share.BuildURL(c.BaseURL, c.Store.Snapshot())
}

// CopyShareURL puts the share link on the local clipboard, best effort.
// Meaningful on the simulator host; a headless device returns false and
// shows the QR overlay instead.
func (c *ConfigController) CopyShareURL() bool {
	return share.Copy(c.ShareURL())
}

func (c *ConfigController) propagate(cfg config.Config) {
	c.State.SetConfig(cfg)
	c.RefreshNetwork()
	if c.OnChange != nil {
		c.OnChange(cfg)
	}
}

// RefreshNetwork re-derives the overlay QR payload so a scanned code
// always reproduces the configuration currently on the wall.
func (c *ConfigController) RefreshNetwork() {
	if c.BaseURL == "" {
		return
	}
	c.State.SetNetwork(state.NetworkInfo{URL: c.BaseURL, QRPayload: c.ShareURL()})
}
