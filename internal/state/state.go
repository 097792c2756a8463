// Package state holds the shared presentation state the render loop reads
// each frame. Configuration itself lives in the config store; this is the
// session-scoped rest: pixel drift, overlay visibility, and how to reach
// the settings page.
package state

import (
	"sync"

	"github.com/rook-computer/wallclock/internal/config"
)

type Phase int

const (
	BOOTING Phase = iota
	RUNNING
)

// PixelShift is the current anti-burn-in offset, applied to the content
// layer only (overlays stay put, matching the layer split of the display).
type PixelShift struct {
	X int
	Y int
}

// NetworkInfo describes where the settings UI is served.
type NetworkInfo struct {
	URL       string
	QRPayload string
}

type State struct {
	Phase          Phase
	Config         config.Config
	Shift          PixelShift
	OverlayVisible bool
	Network        NetworkInfo
}

// Store guards State behind a mutex. Writers replace whole sub-records;
// readers take snapshots, so a frame never observes a half-applied update.
type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore(cfg config.Config) *Store {
	return &Store{state: State{Phase: BOOTING, Config: cfg}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

func (store *Store) SetConfig(cfg config.Config) {
	store.mu.Lock()
	store.state.Config = cfg
	store.mu.Unlock()
}

func (store *Store) SetShift(shift PixelShift) {
	store.mu.Lock()
	store.state.Shift = shift
	store.mu.Unlock()
}

func (store *Store) SetOverlayVisible(visible bool) {
	store.mu.Lock()
	store.state.OverlayVisible = visible
	store.mu.Unlock()
}

// ToggleOverlay flips overlay visibility and returns the new value.
func (store *Store) ToggleOverlay() bool {
	store.mu.Lock()
	store.state.OverlayVisible = !store.state.OverlayVisible
	visible := store.state.OverlayVisible
	store.mu.Unlock()
	return visible
}

func (store *Store) SetNetwork(network NetworkInfo) {
	store.mu.Lock()
	store.state.Network = network
	store.mu.Unlock()
}
