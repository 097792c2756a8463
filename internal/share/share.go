// Package share handles shareable configuration links: building them,
// copying them, and consuming an incoming one exactly once at startup.
package share

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/rook-computer/wallclock/internal/config"
)

// SpoolFile is where an incoming share query waits for the next boot.
// POST /api/v1/share/apply writes it; Consume reads and clears it.
const SpoolFile = "share.pending"

// BuildURL appends cfg's non-default settings to base as a query string.
// A default configuration yields the bare base URL.
func BuildURL(base string, cfg config.Config) string {
	query := config.Serialize(cfg)
	if query == "" {
		return base
	}
	return strings.TrimRight(base, "/") + "/?" + query
}

// Consume reads the pending share query from path and returns the sanitized
// overrides plus a clear action. The composition root must invoke clear
// exactly once, before any user-triggered update, so the override applies
// to this boot only and later reboots fall back to persisted state.
func Consume(fs afero.Fs, path string) (config.Patch, func()) {
	log := logrus.WithField("component", "share")
	af := afero.Afero{Fs: fs}

	raw, err := af.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithError(err).Debug("share spool unreadable")
		}
		return config.Patch{}, func() {}
	}

	query := strings.TrimSpace(string(raw))
	query = strings.TrimPrefix(query, "?")
	overrides := config.Deserialize(query)
	if !overrides.IsZero() {
		log.WithField("query", query).Info("applying share link overrides")
	}

	clear := func() {
		if err := fs.Remove(path); err != nil {
			log.WithError(err).Debug("share spool not cleared")
		}
	}
	return overrides, clear
}

// Spool stores an incoming share query for the next boot. On a fresh
// device the config dir may not exist yet, so it is created here the same
// way the persist layer creates it. Returns false on write failure; the
// caller surfaces that as transient feedback, nothing more.
func Spool(fs afero.Fs, path, query string) bool {
	af := afero.Afero{Fs: fs}
	if err := af.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false
	}
	return af.WriteFile(path, []byte(strings.TrimSpace(query)), 0o644) == nil
}

// Copy writes url to the system clipboard, best effort. A false return
// means "show the link some other way", never a fatal condition.
func Copy(url string) bool {
	if err := clipboard.WriteAll(url); err != nil {
		logrus.WithField("component", "share").WithError(err).Debug("clipboard write failed")
		return false
	}
	return true
}
