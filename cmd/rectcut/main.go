// RectCut: interactive rectangle partitioning
//
// Recursively cut a rectangle into a binary space partition with the mouse,
// or drag the shared edge of a linked pair, and export the layout.
//
// Build:
//   go build -o rectcut ./cmd/rectcut
//
// Run:
//   rectcut -mode cut -scale 8
//   rectcut -mode drag -config ~/.rectcut/config.yaml

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/rectcut/internal/project"
	"github.com/piwi3910/rectcut/internal/session"
	"github.com/piwi3910/rectcut/internal/ui"
)

func main() {
	var opts project.Overrides
	opts.RegisterFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := opts.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rectcut: %v\n", err)
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: session.ParseLevel(cfg.LogLevel),
	}))
	session.SetLogger(logger)

	application := app.NewWithID("com.piwi3910.rectcut")
	window := application.NewWindow("RectCut — Rectangle Partitioning")

	appUI, err := ui.NewApp(application, window, cfg, opts.ConfigPath, logger)
	if err != nil {
		logger.Error("startup failed", slog.Any("err", err))
		os.Exit(1)
	}
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(float32(cfg.BufferWidth*cfg.Scale), float32(cfg.BufferHeight*cfg.Scale)))
	window.CenterOnScreen()
	window.ShowAndRun()
}
