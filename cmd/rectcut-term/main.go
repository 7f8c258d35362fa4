// rectcut-term runs RectCut in a terminal with mouse support. Each cell is
// one partition unit; the root rectangle is inset from the terminal size.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/piwi3910/rectcut/internal/project"
	"github.com/piwi3910/rectcut/internal/session"
	"github.com/piwi3910/rectcut/internal/term"
)

func main() {
	var opts project.Overrides
	opts.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log-file", "", "write logs to this file (the terminal is in use)")
	flag.Parse()

	if err := run(opts, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "rectcut-term: %v\n", err)
		os.Exit(1)
	}
}

func run(opts project.Overrides, logPath string) error {
	cfg, err := opts.Load()
	if err != nil {
		return err
	}

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		session.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
			Level: session.ParseLevel(cfg.LogLevel),
		})))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	s, err := session.New(term.BufferFor(cfg, screen))
	if err != nil {
		return err
	}
	term.New(screen, s).Run()
	return nil
}
