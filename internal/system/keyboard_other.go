//go:build !linux

package system

import "context"

type KeyActions struct {
	OnExit          func()
	OnOverlayToggle func()
}

// StartKeyWatcher is a no-op off Linux; the simulator drives these actions
// through its control endpoints instead.
func StartKeyWatcher(ctx context.Context, actions KeyActions) {}
