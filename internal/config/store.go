package config

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/rook-computer/wallclock/internal/persist"
)

// PersistKey is the namespaced identifier the full record is stored under.
// It matches the key the original web build used, so a blob migrated from
// a browser profile resolves unchanged.
const PersistKey = "wall-clock-config"

// Store owns the live configuration for the session. Reads return
// snapshots; writes replace the whole record and persist it best-effort.
// The in-memory record is always authoritative: a failed persist never
// blocks or reverts an update.
type Store struct {
	kv  persist.KV
	log *logrus.Entry

	mu   sync.RWMutex
	live Config
}

func NewStore(kv persist.KV) *Store {
	return &Store{
		kv:   kv,
		log:  logrus.WithField("component", "config"),
		live: Defaults,
	}
}

// Initialize resolves the startup record. Precedence, lowest to highest:
// Defaults < persisted store < overrides (the consumed share link).
// The result is fully populated; no field is ever left unset.
func (s *Store) Initialize(overrides Patch) Config {
	merged := Defaults.Apply(s.loadPersisted()).Apply(overrides)
	s.mu.Lock()
	s.live = merged
	s.mu.Unlock()
	s.log.WithField("config", Serialize(merged)).Info("configuration resolved")
	return merged
}

// Update applies patch over the live record, persists the full result, and
// returns it. Patches from in-process UI controls are trusted; decode
// boundaries sanitize before calling.
func (s *Store) Update(patch Patch) Config {
	s.mu.Lock()
	s.live = s.live.Apply(patch)
	next := s.live
	s.mu.Unlock()
	s.save(next)
	return next
}

// Reset replaces the live record with Defaults and persists it.
func (s *Store) Reset() Config {
	s.mu.Lock()
	s.live = Defaults
	s.mu.Unlock()
	s.save(Defaults)
	return Defaults
}

// Snapshot returns the current record.
func (s *Store) Snapshot() Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.live
}

// Teardown flushes the live record once more on shutdown. This is the
// session's last chance to land a blob when earlier writes failed and
// storage has since come back; failure is swallowed as always.
func (s *Store) Teardown() {
	s.save(s.Snapshot())
}

// loadPersisted reads the stored blob. Every failure mode (store absent,
// unreadable, corrupt JSON, individual out-of-domain fields) reduces to a
// smaller partial, down to the empty one.
func (s *Store) loadPersisted() Patch {
	raw, ok := s.kv.Get(PersistKey).Get()
	if !ok {
		return Patch{}
	}
	var p Patch
	if err := json.Unmarshal(raw, &p); err != nil {
		s.log.WithError(err).Warn("stored configuration unreadable, using defaults")
		return Patch{}
	}
	return p.Sanitize()
}

func (s *Store) save(cfg Config) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	if !s.kv.Set(PersistKey, raw) {
		s.log.Warn("configuration not persisted, in-memory only for this session")
	}
}
