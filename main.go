package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/hud/backend"
	"github.com/OpticalFlyer/hud/config"
	"github.com/OpticalFlyer/hud/ui"
	"github.com/OpticalFlyer/hud/widget"
)

var backgroundColor = color.RGBA{30, 34, 40, 255}

// Demo implements ebiten.Game around a ui.Controller.
type Demo struct {
	cfg       *config.Config
	ui        *ui.Controller
	renderer  *backend.Renderer
	input     backend.InputPoller
	debugMode bool
	quit      bool

	clicks  int
	counter *widget.Label
	status  *widget.Label
}

func newDemo(cfg *config.Config) *Demo {
	d := &Demo{
		cfg:       cfg,
		renderer:  backend.NewRenderer(),
		debugMode: cfg.Debug,
		ui: ui.NewController(
			ui.WithScreenSize(cfg.Window.Width, cfg.Window.Height),
			ui.WithDimColor(color.RGBA{A: cfg.DimAlpha}),
		),
	}

	controls := widget.NewPanel(10, 10, 230, 150, "Controls", 2, 2)
	controls.Layout().SetSpacing(d.cfg.Layout.Padding, d.cfg.Layout.Margin)
	d.counter = widget.NewLabel(0, 0, "Clicks: 0")
	d.add(controls,
		widget.NewButton(0, 0, "Click", d.click),
		d.counter,
		widget.NewButton(0, 0, "Dialog", func() { d.showDialog("Hello", "Dialogs gate input until closed.") }),
		widget.NewButton(0, 0, "Debug", func() { d.debugMode = !d.debugMode }),
	)

	status := widget.NewPanel(260, 10, 240, 80, "Status", 1, 1)
	status.Layout().SetSpacing(d.cfg.Layout.Padding, d.cfg.Layout.Margin)
	d.status = widget.NewLabel(0, 0, "Focus: none")
	d.add(status, d.status)

	for _, p := range []*widget.Panel{controls, status} {
		if err := d.ui.Add(p); err != nil {
			log.Fatal(err)
		}
	}
	return d
}

func (d *Demo) add(p *widget.Panel, children ...ui.Node) {
	for _, c := range children {
		if err := p.Add(c); err != nil {
			log.Fatal(err)
		}
	}
}

func (d *Demo) click() {
	d.clicks++
	d.counter.SetText(fmt.Sprintf("Clicks: %d", d.clicks))
}

func (d *Demo) showDialog(title, message string, choices ...string) {
	dialog := widget.NewDialog(title, message, func(choice string) {
		if choice == "Quit" {
			d.quit = true
		}
	}, choices...)
	dialog.UpdateWindowSize(int(d.ui.Screen().Width), int(d.ui.Screen().Height))
	if err := d.ui.AddForeground(dialog); err != nil {
		log.Printf("opening dialog: %v", err)
	}
}

func (d *Demo) Update() error {
	if d.quit {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		d.debugMode = !d.debugMode
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !d.ui.HasModal() {
		d.showDialog("Quit", "Leave the demo?", "Quit", "Cancel")
	}

	d.ui.Update(1/float64(ebiten.TPS()), d.input.Poll())
	backend.SetCursor(d.ui.Cursor())

	focus := "none"
	if f := d.ui.Focused(); f != nil {
		focus = f.Base().Name()
	}
	d.status.SetText("Focus: " + focus)
	return nil
}

func (d *Demo) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	d.renderer.Begin(screen)
	d.ui.Draw(d.renderer)

	if d.debugMode {
		backend.DrawDebugInfo(screen, d.ui)
	}
}

func (d *Demo) Layout(outsideWidth, outsideHeight int) (int, int) {
	d.ui.UpdateWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	configPath := flag.String("config", "hud.json", "path to the JSON configuration file")
	flag.Parse()

	manager := config.NewManager(*configPath)
	if err := manager.Load(); err != nil {
		log.Fatal(err)
	}
	cfg := manager.Config()
	widget.FontAsset = cfg.Font
	if cfg.Debug {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ui.SetLogger(l)
		widget.SetLogger(l)
	}

	loader := backend.NewLoader(cfg.AssetDir, cfg.FontSize)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := loader.Preload(ctx, cfg.Preload...); err != nil {
		log.Printf("preloading assets: %v", err)
	}
	cancel()

	app := newDemo(cfg)
	if err := app.ui.LoadContent(loader); err != nil {
		log.Printf("loading content: %v", err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetVsyncEnabled(cfg.Window.VSync)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
