package config

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/wallclock/internal/persist"
)

// brokenKV refuses every read and write, like a device with a dead disk.
type brokenKV struct{}

func (brokenKV) Get(string) mo.Option[[]byte] { return mo.None[[]byte]() }
func (brokenKV) Set(string, []byte) bool      { return false }

// memKV is a tiny in-memory store for precedence tests.
type memKV map[string][]byte

func (kv memKV) Get(key string) mo.Option[[]byte] {
	if raw, ok := kv[key]; ok {
		return mo.Some(raw)
	}
	return mo.None[[]byte]()
}

func (kv memKV) Set(key string, value []byte) bool {
	kv[key] = value
	return true
}

func persisted(t *testing.T, p Patch) memKV {
	t.Helper()
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	return memKV{PersistKey: raw}
}

func TestInitializePrecedence(t *testing.T) {
	// Defaults < persisted < startup overrides, field by field.
	kv := persisted(t, Patch{FontSize: lo.ToPtr(20), Theme: lo.ToPtr(ThemeAmber)})
	store := NewStore(kv)

	cfg := store.Initialize(Patch{FontSize: lo.ToPtr(24)})

	assert.Equal(t, 24, cfg.FontSize)             // override wins
	assert.Equal(t, ThemeAmber, cfg.Theme)        // persisted wins over default
	assert.Equal(t, Defaults.Locale, cfg.Locale)  // default fills the rest
	assert.Equal(t, cfg, store.Snapshot())
}

func TestInitializeWithEmptyStore(t *testing.T) {
	store := NewStore(memKV{})
	assert.Equal(t, Defaults, store.Initialize(Patch{}))
}

func TestInitializeIgnoresCorruptBlob(t *testing.T) {
	kv := memKV{PersistKey: []byte("{not json")}
	store := NewStore(kv)
	assert.Equal(t, Defaults, store.Initialize(Patch{}))
}

func TestInitializeSanitizesPersistedFields(t *testing.T) {
	// A blob with a bad field loses that field only; the rest applies.
	kv := memKV{PersistKey: []byte(`{"fontSize":500,"theme":"amber"}`)}
	store := NewStore(kv)

	cfg := store.Initialize(Patch{})
	assert.Equal(t, Defaults.FontSize, cfg.FontSize)
	assert.Equal(t, ThemeAmber, cfg.Theme)
}

func TestInitializeDoesNotPersist(t *testing.T) {
	// Resolving at startup leaves the store untouched; only explicit
	// updates write.
	kv := memKV{}
	NewStore(kv).Initialize(Patch{FontSize: lo.ToPtr(24)})
	assert.Empty(t, kv)
}

func TestUpdatePersistsFullRecord(t *testing.T) {
	kv := memKV{}
	store := NewStore(kv)
	store.Initialize(Patch{})

	got := store.Update(Patch{Is24h: lo.ToPtr(false)})
	assert.False(t, got.Is24h)
	assert.Equal(t, got, store.Snapshot())

	var stored Config
	require.NoError(t, json.Unmarshal(kv[PersistKey], &stored))
	assert.Equal(t, got, stored)
}

func TestUpdateSurvivesPersistFailure(t *testing.T) {
	store := NewStore(brokenKV{})
	store.Initialize(Patch{})

	got := store.Update(Patch{Theme: lo.ToPtr(ThemeMidnight)})

	// The in-memory record is authoritative regardless of storage.
	assert.Equal(t, ThemeMidnight, got.Theme)
	assert.Equal(t, ThemeMidnight, store.Snapshot().Theme)
}

func TestReset(t *testing.T) {
	kv := memKV{}
	store := NewStore(kv)
	store.Initialize(Patch{FontSize: lo.ToPtr(24)})

	assert.Equal(t, Defaults, store.Reset())
	assert.Equal(t, Defaults, store.Snapshot())

	var stored Config
	require.NoError(t, json.Unmarshal(kv[PersistKey], &stored))
	assert.Equal(t, Defaults, stored)
}

func TestStoreOverFileKV(t *testing.T) {
	// End to end against the real file backend on an in-memory fs: one
	// session writes, the next session resolves what it left behind.
	fs := afero.NewMemMapFs()
	kv := persist.NewFileKV(fs, "/data")

	first := NewStore(kv)
	first.Initialize(Patch{})
	first.Update(Patch{FontSize: lo.ToPtr(20), Theme: lo.ToPtr(ThemeAmber)})

	second := NewStore(persist.NewFileKV(fs, "/data"))
	cfg := second.Initialize(Patch{})
	assert.Equal(t, 20, cfg.FontSize)
	assert.Equal(t, ThemeAmber, cfg.Theme)
}
