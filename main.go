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

func main() {
	serverDefaults, err := web.DefaultServerConfigFromEnv(":80")
	if err != nil {
		fmt.Println("server config error:", err)
		os.Exit(2)
	}

	debug := flag.Bool("debug", false, "enable debug logging")
	listenAddr := flag.String("listen", serverDefaults.ListenAddr, "http listen address; also configurable via "+web.EnvListenAddr)
	devMode := flag.Bool("dev", serverDefaults.DevMode, "enable dev mode (permissive CORS); also configurable via "+web.EnvDevMode)
	staticDir := flag.String("static-dir", "", "serve the settings UI from this directory instead of the embedded assets")
	fontsDir := flag.String("fonts-dir", render.DefaultFontsDir, "directory holding the clock font files")
	shareQuery := flag.String("share", "", "apply a share-link query string (e.g. \"z=20&t=amber\") for this boot")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via WALLCLOCK_STDIO_LOG")
	flag.Parse()

	// Best-effort: capture panics to a file even when the console is left
	// in graphics mode.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("WALLCLOCK_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	logrus.SetLevel(logrus.WarnLevel)
	if *debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	fs := afero.NewOsFs()
	configDir := persist.DefaultDir()
	configStore := config.NewStore(persist.NewFileKV(fs, configDir))

	// Startup overrides, one-shot by construction: the spool file is
	// cleared immediately after the merge, the flag dies with the process.
	spoolPath := filepath.Join(configDir, share.SpoolFile)
	overrides, clearSpool := share.Consume(fs, spoolPath)
	overrides = overrides.Merge(config.Deserialize(strings.TrimPrefix(*shareQuery, "?")))
	cfg := configStore.Initialize(overrides)
	clearSpool()

	st := state.NewStore(cfg)
	renderer := render.NewFBRenderer(render.NewFontLibrary(*fontsDir))
	server := web.NewHTTPServer(web.ServerConfig{ListenAddr: *listenAddr, DevMode: *devMode})

	a := app.New(configStore, st, renderer, server)
	a.Console = true
	a.Controller.BaseURL = web.SelfURL(*listenAddr)
	a.Controller.RefreshNetwork()

	server.StaticDir = *staticDir
	server.Handler = web.NewDefaultMux(*staticDir, web.APIV1Config{Deps: web.APIV1Deps{
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Start(ctx); err != nil && err != context.Canceled {
		logrus.WithError(err).Error("clock stopped")
	}
	if err := a.Stop(); err != nil {
		logrus.WithError(err).Error("shutdown error")
	}
}
