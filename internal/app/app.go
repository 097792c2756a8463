package app

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/rook-computer/wallclock/internal/app/screens"
	"github.com/rook-computer/wallclock/internal/config"
	"github.com/rook-computer/wallclock/internal/render"
	"github.com/rook-computer/wallclock/internal/state"
	"github.com/rook-computer/wallclock/internal/system"
	"github.com/rook-computer/wallclock/internal/web"
)

// App wires the engine to its collaborators and owns the run lifecycle.
type App struct {
	ConfigStore *config.Store
	Controller  *ConfigController
	State       *state.Store
	Render      render.Renderer
	Web         web.Server

	// Console controls tty graphics-mode handling; the simulator and
	// tests leave it off.
	Console bool

	log *logrus.Entry

	currentScreen render.Screen

	exitOnce atomic.Bool
	exitCh   chan error
}

func New(configStore *config.Store, st *state.Store, renderer render.Renderer, server web.Server) *App {
	app := &App{
		ConfigStore: configStore,
		State:       st,
		Render:      renderer,
		Web:         server,
		log:         logrus.WithField("component", "app"),
		exitCh:      make(chan error, 1),
	}
	app.Controller = NewConfigController(configStore, st)
	app.Controller.OnChange = func(config.Config) {
		app.Render.RedrawWithState(app.State.Snapshot())
	}
	return app
}

// Exit requests the app to stop running. Any collaborator can call this to
// terminate the process via the generic codepath.
func (app *App) Exit(err error) {
	if app.exitCh == nil {
		return
	}
	if !app.exitOnce.CompareAndSwap(false, true) {
		return
	}
	select {
	case app.exitCh <- err:
	default:
	}
}

// Start runs the clock until the context is canceled or Exit is called.
func (app *App) Start(ctx context.Context) error {
	if app.exitCh == nil {
		app.exitCh = make(chan error, 1)
	}
	app.exitOnce.Store(false)

	if app.Render == nil {
		app.Render = &render.NoopRenderer{}
	}
	if app.Web == nil {
		app.Web = &web.NoopServer{}
	}

	if err := app.Render.Start(ctx); err != nil {
		app.log.WithError(err).Error("renderer start failed")
		return err
	}
	defer app.Render.Stop()

	if app.Console {
		// Switch console to KD_GRAPHICS to suppress the hardware cursor.
		if err := system.SetGraphicsMode(); err != nil {
			app.log.WithError(err).Error("set graphics mode failed")
		}
		_ = system.HideCursor()
		defer func() { _ = system.ShowCursor(); _ = system.RestoreTextMode() }()
	}

	if err := app.setScreen(ctx, screens.NewBootScreen()); err != nil {
		return err
	}
	// Immediate first frame so the panel isn't black while the server
	// comes up.
	app.Render.RedrawWithState(app.State.Snapshot())

	if err := app.Web.Start(ctx); err != nil {
		// The clock still runs without a settings surface.
		app.log.WithError(err).Error("settings server start failed")
	}

	app.State.SetPhase(state.RUNNING)
	if err := app.setScreen(ctx, screens.NewClockScreen()); err != nil {
		return err
	}
	app.Render.RedrawWithState(app.State.Snapshot())

	loopCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		app.Render.RunLoop(loopCtx, app.State)
	}()
	go func() {
		defer wg.Done()
		app.runPixelShifter(loopCtx)
	}()

	if app.Console {
		system.StartKeyWatcher(loopCtx, system.KeyActions{
			OnExit: func() { app.Exit(nil) },
			OnOverlayToggle: func() {
				app.State.ToggleOverlay()
				app.Render.RedrawWithState(app.State.Snapshot())
			},
		})
	}

	var err error
	select {
	case <-ctx.Done():
		err = ctx.Err()
	case err = <-app.exitCh:
	}
	cancel()
	wg.Wait()
	return err
}

func (app *App) setScreen(ctx context.Context, screen render.Screen) error {
	if app.currentScreen != nil {
		_ = app.currentScreen.Stop()
	}
	app.currentScreen = screen
	app.Render.SetScreen(screen)
	return screen.Start(ctx)
}

// Stop tears the session down: the web server closes and the live record
// gets one final best-effort flush.
func (app *App) Stop() error {
	if app.Web != nil {
		_ = app.Web.Stop()
	}
	app.ConfigStore.Teardown()
	return nil
}
