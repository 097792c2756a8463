package app

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/rook-computer/wallclock/internal/state"
)

// Anti-burn-in drift: every interval the content layer moves to a fresh
// random offset within ±shiftRangePx per axis. Small enough to be
// invisible, enough to spread static pixels statistically.
const (
	shiftRangePx  = 2
	shiftInterval = 10 * time.Minute
)

func randomShift() state.PixelShift {
	offset := func() int { return rand.IntN(2*shiftRangePx+1) - shiftRangePx }
	return state.PixelShift{X: offset(), Y: offset()}
}

// runPixelShifter periodically replaces the shift offset and redraws.
func (app *App) runPixelShifter(ctx context.Context) {
	ticker := time.NewTicker(shiftInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			app.State.SetShift(randomShift())
			app.Render.RedrawWithState(app.State.Snapshot())
		}
	}
}
