package app

import (
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"

	"github.com/rook-computer/wallclock/internal/config"
	"github.com/rook-computer/wallclock/internal/state"
)

type nullKV struct{}

func (nullKV) Get(string) mo.Option[[]byte] { return mo.None[[]byte]() }
func (nullKV) Set(string, []byte) bool      { return true }

func newTestController(overrides config.Patch) *ConfigController {
	store := config.NewStore(nullKV{})
	cfg := store.Initialize(overrides)
	controller := NewConfigController(store, state.NewStore(cfg))
	controller.BaseURL = "http://clock.local"
	return controller
}

func TestUpdatePropagatesToState(t *testing.T) {
	c := newTestController(config.Patch{})

	var notified config.Config
	c.OnChange = func(cfg config.Config) { notified = cfg }

	got := c.Update(config.Patch{Theme: lo.ToPtr(config.ThemeAmber)})

	assert.Equal(t, config.ThemeAmber, got.Theme)
	assert.Equal(t, got, c.State.Snapshot().Config)
	assert.Equal(t, got, notified)
}

func TestResetPropagates(t *testing.T) {
	c := newTestController(config.Patch{FontSize: lo.ToPtr(24)})

	assert.Equal(t, config.Defaults, c.Reset())
	assert.Equal(t, config.Defaults, c.State.Snapshot().Config)
}

func TestShareURLTracksLiveRecord(t *testing.T) {
	c := newTestController(config.Patch{})
	assert.Equal(t, "http://clock.local", c.ShareURL())

	c.Update(config.Patch{FontSize: lo.ToPtr(20)})
	assert.Equal(t, "http://clock.local/?z=20", c.ShareURL())
}

func TestUpdateRefreshesQRPayload(t *testing.T) {
	c := newTestController(config.Patch{})
	c.Update(config.Patch{Theme: lo.ToPtr(config.ThemePhosphor)})

	network := c.State.Snapshot().Network
	assert.Equal(t, "http://clock.local", network.URL)
	assert.Equal(t, "http://clock.local/?t=phosphor", network.QRPayload)
}

// A boot driven by a share link, then a settings change: the serialized
// form must reflect both, with defaults still omitted.
func TestShareLinkBootThenUpdate(t *testing.T) {
	c := newTestController(config.Deserialize("z=20&t=amber"))

	cfg := c.Update(config.Patch{Is24h: lo.ToPtr(false)})

	assert.Equal(t, 20, cfg.FontSize)
	assert.Equal(t, config.ThemeAmber, cfg.Theme)
	assert.False(t, cfg.Is24h)
	assert.Equal(t, "h=0&t=amber&z=20", config.Serialize(cfg))
}
