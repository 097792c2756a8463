package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/rook-computer/wallclock/internal/app"
	"github.com/rook-computer/wallclock/internal/render"
	"github.com/rook-computer/wallclock/internal/state"
)

// SimControl drives the engine without a panel or a keyboard: it can
// freeze the clock at an arbitrary time of day (theme previews) and flip
// the QR overlay, mirroring what evdev keys do on the device.
type SimControl struct {
	App      *app.App
	State    *state.Store
	Renderer *render.ImageRenderer

	mu     sync.RWMutex
	frozen *time.Time
}

func NewSimControl(a *app.App, st *state.Store, renderer *render.ImageRenderer) *SimControl {
	control := &SimControl{App: a, State: st, Renderer: renderer}
	renderer.Clock = control.Now
	return control
}

// Now is the simulated wall-clock reading.
func (c *SimControl) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.frozen != nil {
		return *c.frozen
	}
	return time.Now()
}

// Freeze pins the clock to hh:mm today. An empty value unfreezes.
func (c *SimControl) Freeze(at string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if at == "" {
		c.frozen = nil
		return nil
	}
	parsed, err := time.Parse("15:04", at)
	if err != nil {
		return fmt.Errorf("time must be HH:MM: %w", err)
	}
	now := time.Now()
	pinned := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.Local)
	c.frozen = &pinned
	return nil
}

func registerSimEndpoints(mux *http.ServeMux, control *SimControl) {
	mux.HandleFunc("/sim/time", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if err := control.Freeze(r.URL.Query().Get("at")); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		control.Renderer.RedrawWithState(control.State.Snapshot())
		w.WriteHeader(http.StatusNoContent)
	})

	// POST /sim/overlay toggles; POST /sim/overlay?visible=true|false sets,
	// for scripted screenshot runs that must not depend on prior state.
	mux.HandleFunc("/sim/overlay", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		if raw := r.URL.Query().Get("visible"); raw != "" {
			visible, err := strconv.ParseBool(raw)
			if err != nil {
				http.Error(w, "visible must be a boolean", http.StatusBadRequest)
				return
			}
			control.State.SetOverlayVisible(visible)
		} else {
			control.State.ToggleOverlay()
		}
		control.Renderer.RedrawWithState(control.State.Snapshot())
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/sim/copy-share", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		// Puts the share link on the host clipboard, where one exists.
		if !control.App.Controller.CopyShareURL() {
			http.Error(w, "clipboard unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("/sim/state", func(w http.ResponseWriter, r *http.Request) {
		snap := control.State.Snapshot()
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"config":  snap.Config,
			"shift":   snap.Shift,
			"overlay": snap.OverlayVisible,
			"network": snap.Network,
			"time":    control.Now().Format(time.RFC3339),
		})
	})
}
