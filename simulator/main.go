package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/rook-computer/wallclock/internal/app"
	"github.com/rook-computer/wallclock/internal/config"
	"github.com/rook-computer/wallclock/internal/persist"
	"github.com/rook-computer/wallclock/internal/render"
	"github.com/rook-computer/wallclock/internal/share"
	"github.com/rook-computer/wallclock/internal/state"
	"github.com/rook-computer/wallclock/internal/web"
)

// The simulator runs the full clock engine without a framebuffer: frames go
// to an in-memory canvas served as /api/v1/preview.png, and /sim/* endpoints
// stand in for the device's keyboard.
func main() {
	serverDefaults, err := web.DefaultServerConfigFromEnv(":8080")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	debug := flag.Bool("debug", false, "enable debug logging")
	listenAddr := flag.String("listen", serverDefaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	staticDir := flag.String("static-dir", "", "serve the settings UI from this directory instead of the embedded assets")
	fontsDir := flag.String("fonts-dir", "fonts", "directory holding the clock font files")
	configDir := flag.String("config-dir", "", "directory for persisted settings (default: a wallclock-sim dir next to the user config dir)")
	shareQuery := flag.String("share", "", "apply a share-link query string (e.g. \"z=20&t=amber\") for this run")
	ephemeral := flag.Bool("ephemeral", false, "keep settings in memory only; nothing is written to disk")
	frozenAt := flag.String("time", "", "freeze the simulated clock at HH:MM (local); empty follows real time")
	flag.Parse()

	logrus.SetLevel(logrus.InfoLevel)
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	fs := afero.NewOsFs()
	dir := *configDir
	if dir == "" {
		dir = persist.DefaultDir() + "-sim"
	}
	var kv persist.KV = persist.NewFileKV(fs, dir)
	if *ephemeral {
		// Settings live in the store's memory only; the spool moves to
		// memfs so nothing of the run touches disk.
		kv = persist.NullKV{}
		fs = afero.NewMemMapFs()
	}
	configStore := config.NewStore(kv)

	spoolPath := filepath.Join(dir, share.SpoolFile)
	overrides, clearSpool := share.Consume(fs, spoolPath)
	overrides = overrides.Merge(config.Deserialize(strings.TrimPrefix(*shareQuery, "?")))
	cfg := configStore.Initialize(overrides)
	clearSpool()

	st := state.NewStore(cfg)
	renderer := render.NewImageRenderer(render.NewFontLibrary(*fontsDir))
	// Simulator always runs with permissive CORS so the UI can be developed
	// against it from a separate origin.
	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: true})

	a := app.New(configStore, st, renderer, server)
	a.Controller.BaseURL = web.SelfURL(*listenAddr)
	a.Controller.RefreshNetwork()

	control := NewSimControl(a, st, renderer)
	if *frozenAt != "" {
		if err := control.Freeze(*frozenAt); err != nil {
			fmt.Println("bad -time value:", err)
			os.Exit(2)
		}
	}

	mux := web.NewDefaultMux(*staticDir, web.APIV1Config{Deps: web.APIV1Deps{
		Config: a.Controller,
		SpoolShare: func(query string) bool {
			return share.Spool(fs, spoolPath, query)
		},
		PreviewPNG: func() ([]byte, error) {
			if canvas := renderer.Canvas(); canvas != nil {
				return canvas.EncodePNG()
			}
			return nil, fmt.Errorf("renderer not started")
		},
	}})
	registerSimEndpoints(mux, control)

	server.StaticDir = *staticDir
	server.Handler = mux

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logrus.WithField("addr", *listenAddr).Info("simulator listening")
	if err := a.Start(ctx); err != nil && err != context.Canceled {
		logrus.WithError(err).Error("simulator stopped")
	}
	if err := a.Stop(); err != nil {
		logrus.WithError(err).Error("shutdown error")
	}
}
