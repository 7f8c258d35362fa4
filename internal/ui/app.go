package ui

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/rectcut/internal/export"
	"github.com/piwi3910/rectcut/internal/model"
	"github.com/piwi3910/rectcut/internal/project"
	"github.com/piwi3910/rectcut/internal/session"
	"github.com/piwi3910/rectcut/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	app        fyne.App
	window     fyne.Window
	config     model.AppConfig
	configPath string
	logger     *slog.Logger

	canvas *widgets.PartitionCanvas
	status *widget.Label
}

// NewApp builds the application around a session for cfg. Preference
// changes are written back to configPath when it is not empty.
func NewApp(application fyne.App, window fyne.Window, cfg model.AppConfig, configPath string, logger *slog.Logger) (*App, error) {
	s, err := session.New(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{
		app:        application,
		window:     window,
		config:     cfg,
		configPath: configPath,
		logger:     logger,
		status:     widget.NewLabel(""),
	}
	a.canvas = widgets.NewPartitionCanvas(s, cfg.Viewport())
	a.canvas.OnChanged = a.refreshStatus
	a.canvas.OnQuit = func() {
		a.logger.Info("quit")
		a.window.Close()
	}
	a.refreshStatus()
	return a, nil
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export PDF...", func() {
			a.exportFile("partition.pdf", export.ExportPDF)
		}),
		fyne.NewMenuItem("Export Piece Labels...", func() {
			a.exportFile("labels.pdf", export.ExportLabels)
		}),
		fyne.NewMenuItem("Export DXF...", func() {
			a.exportFile("partition.dxf", export.ExportDXF)
		}),
		fyne.NewMenuItem("Export Cut List (Excel)...", func() {
			a.exportFile("cutlist.xlsx", export.ExportXLSX)
		}),
		fyne.NewMenuItem("Export PNG...", func() {
			a.exportFile("partition.png", func(path string, l export.Layout) error {
				return export.ExportPNG(path, l, a.config.Buffer(), a.config.Scale)
			})
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	modeMenu := fyne.NewMenu("Mode",
		fyne.NewMenuItem("Cut", func() { a.switchMode(model.ModeCut) }),
		fyne.NewMenuItem("Drag Linked Edge", func() { a.switchMode(model.ModeDrag) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset", func() { a.switchMode(a.config.Mode) }),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Light Theme", func() { a.setTheme("light") }),
		fyne.NewMenuItem("Dark Theme", func() { a.setTheme("dark") }),
		fyne.NewMenuItem("System Theme", func() { a.setTheme("system") }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Controls", func() { a.showControlsDialog() }),
		fyne.NewMenuItem("About", func() { a.showAboutDialog() }),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, modeMenu, viewMenu, helpMenu))
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.window.Canvas().SetOnTypedKey(a.canvas.TypedKey)
	a.applyTheme()
	return container.NewBorder(nil, a.status, nil, nil, a.canvas)
}

// Canvas returns the partition widget.
func (a *App) Canvas() *widgets.PartitionCanvas { return a.canvas }

func (a *App) refreshStatus() {
	a.status.SetText(StatusText(a.canvas.Frame()))
}

// StatusText summarises a frame for the status bar.
func StatusText(f session.Frame) string {
	switch f.Mode {
	case model.ModeDrag:
		return fmt.Sprintf("Mode: drag | Pieces: %d | Drag the shared edge, Esc or Q to quit", len(f.Rects))
	default:
		return fmt.Sprintf("Mode: cut | Next cut: %s | Pieces: %d | Left click cuts, right click switches", f.Orientation, len(f.Rects))
	}
}

func (a *App) switchMode(mode model.Mode) {
	cfg := a.config
	cfg.Mode = mode
	s, err := session.New(cfg)
	if err != nil {
		a.showError("switch mode", err)
		return
	}
	a.config = cfg
	a.canvas.SetSession(s)
	a.refreshStatus()
	a.saveConfig()
}

func (a *App) setTheme(name string) {
	a.config.Theme = name
	a.applyTheme()
	a.saveConfig()
}

func (a *App) applyTheme() {
	if a.app == nil {
		return
	}
	a.app.Settings().SetTheme(NewRectCutThemeFor(a.config.Theme, a.app.Settings().ThemeVariant()))
}

func (a *App) saveConfig() {
	if a.configPath == "" {
		return
	}
	if err := project.SaveAppConfig(a.configPath, a.config); err != nil {
		a.logger.Error("save config failed", slog.String("path", a.configPath), slog.Any("err", err))
	}
}

// exportFile asks for a destination and writes the current partition there.
func (a *App) exportFile(defaultName string, write func(string, export.Layout) error) {
	layout := export.FromPartition(a.canvas.Session().Partition())

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			a.showError("export dialog", err)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := write(path, layout); err != nil {
			a.showError("export "+filepath.Base(path), err)
			return
		}
		a.logger.Info("exported", slog.String("path", path), slog.Int("pieces", len(layout.Pieces)))
		dialog.ShowInformation("Export Complete",
			fmt.Sprintf("Exported %d pieces to %s", len(layout.Pieces), path), a.window)
	}, a.window)

	d.SetFileName(defaultName)
	if a.config.ExportDir != "" {
		if dir, err := storage.ListerForURI(storage.NewFileURI(a.config.ExportDir)); err == nil {
			d.SetLocation(dir)
		}
	}
	d.Show()
}

func (a *App) showError(action string, err error) {
	a.logger.Error(action+" failed", slog.Any("err", err))
	dialog.ShowError(fmt.Errorf("%s: %w", action, err), a.window)
}

func (a *App) showControlsDialog() {
	dialog.ShowInformation("Controls",
		"Cut mode:\n"+
			"  Left click inside a rectangle to cut it.\n"+
			"  Right click to switch between vertical and horizontal cuts.\n"+
			"  Border pixels are reserved and never cut.\n\n"+
			"Drag mode:\n"+
			"  Press on the shared edge and drag to resize both halves.\n\n"+
			"Esc or Q quits.",
		a.window,
	)
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About RectCut",
		"RectCut — interactive rectangle partitioning\n\n"+
			"Recursively cut a rectangle into smaller ones and export\n"+
			"the layout as PDF, labels, DXF, Excel or PNG.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}
