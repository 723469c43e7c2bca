// Command splatdemo bounces a sprite across a window, mirroring it on the
// way back. Press Escape or close the window to quit.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"

	"github.com/phanxgames/splat"
	"github.com/tanema/gween/ease"
)

// demoWindow is what the demo needs from either window implementation.
type demoWindow interface {
	splat.Window
	splat.EventSource
	splat.Injector
	Run(tick func() error) error
}

type demo struct {
	cfg    *Config
	log    *slog.Logger
	ctx    *splat.Context
	win    demoWindow
	script *splat.ScriptRunner

	canvas *splat.Canvas
	layer  *splat.Layer
	image  *splat.Image
	inst   *splat.Instance
	bounce *Bouncer
	pulse  *splat.TweenGroup
	faded  bool
	frames int
}

// pulseSeconds is the duration of one fade in tween mode, and tickSeconds the
// fixed step the tween advances per tick.
const (
	pulseSeconds = 1.5
	tickSeconds  = 1.0 / 60
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	headless := flag.Bool("headless", false, "run without a window on the null backend")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "splatdemo: %v\n", err)
		os.Exit(1)
	}
	if *headless {
		cfg.Headless = true
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	splat.SetLogger(logger)

	d := &demo{cfg: cfg, log: logger}
	if err := d.run(); err != nil {
		logger.Error("demo failed", "err", err)
		os.Exit(1)
	}
}

func (d *demo) run() error {
	var backend splat.Backend
	if d.cfg.Headless {
		w := splat.NewNullWindow(d.cfg.Window.Width, d.cfg.Window.Height)
		w.MaxFrames = d.cfg.FrameLimit()
		d.win = w
		backend = splat.NewNullBackend()
	} else {
		d.win = splat.NewEbitenWindow(splat.WindowConfig{
			Title:     d.cfg.Title,
			Width:     d.cfg.Window.Width,
			Height:    d.cfg.Window.Height,
			Resizable: true,
			ShowFPS:   d.cfg.ShowFPS,
		})
		backend = splat.NewEbitenBackend()
	}

	if d.cfg.Script != "" {
		data, err := os.ReadFile(d.cfg.Script)
		if err != nil {
			return fmt.Errorf("reading script: %w", err)
		}
		if d.script, err = splat.LoadScript(data); err != nil {
			return err
		}
	}

	if err := d.prepare(backend); err != nil {
		return err
	}
	defer d.finish()

	return d.win.Run(d.tick)
}

// prepare builds the scene: one canvas, one layer, one image, one instance
// at the top-left corner.
func (d *demo) prepare(backend splat.Backend) error {
	ctx, err := splat.Prepare(backend, d.win, d.cfg.Viewport.Width, d.cfg.Viewport.Height)
	if err != nil {
		return err
	}
	d.ctx = ctx
	ctx.SetDebugMode(d.cfg.Debug)
	if d.cfg.ScreenshotDir != "" {
		ctx.ScreenshotDir = d.cfg.ScreenshotDir
	}

	if d.canvas, err = ctx.CreateCanvas(); err != nil {
		return err
	}
	if d.layer, err = ctx.CreateLayer(d.canvas); err != nil {
		return err
	}

	surf, err := loadSurface(d.cfg.Image)
	if err != nil {
		return err
	}
	if d.image, err = ctx.CreateImage(surf); err != nil {
		return err
	}
	w, _ := d.image.Size()
	d.bounce = NewBouncer(d.cfg.Viewport.Width, w, d.cfg.Speed)

	d.inst, err = ctx.CreateInstance(d.image, d.layer, 0, 0, 0, 0, 1, 1, 0)
	return err
}

// tick moves the sprite, renders, and drains pending events.
func (d *demo) tick() error {
	if d.script != nil {
		d.script.Step(d.ctx, d.win)
	}

	x, flags, set := d.bounce.Step()
	if set {
		d.inst.SetFlags(flags)
	}
	d.inst.SetPosition(x, 0)
	if d.cfg.Tween {
		d.stepPulse()
	}

	if err := d.ctx.Render(d.canvas); err != nil {
		return err
	}
	d.frames++

	for {
		ev, ok := d.win.PollEvent()
		if !ok {
			break
		}
		if ev.IsQuit() {
			d.log.Info("quit requested", "frames", d.frames)
			return splat.ErrStop
		}
	}
	return nil
}

// stepPulse advances the alpha tween, reversing it at each end.
func (d *demo) stepPulse() {
	if d.pulse == nil || d.pulse.Done {
		to := 0.3
		if d.faded {
			to = 1
		}
		d.faded = !d.faded
		d.pulse = splat.TweenAlpha(d.inst, to, pulseSeconds, ease.InOutSine)
	}
	d.pulse.Update(tickSeconds)
}

// finish tears down in dependency order. It tolerates a partially built
// scene.
func (d *demo) finish() {
	if d.ctx == nil {
		return
	}
	if d.inst != nil {
		d.ctx.DestroyInstance(d.inst)
		d.inst = nil
	}
	if d.image != nil {
		if err := d.ctx.DestroyImage(d.image); err != nil {
			d.log.Warn("destroy image", "err", err)
		}
		d.image = nil
	}
	if d.layer != nil {
		d.ctx.DestroyLayer(d.layer)
		d.layer = nil
	}
	if d.canvas != nil {
		d.ctx.DestroyCanvas(d.canvas)
		d.canvas = nil
	}
	d.ctx.Close()
	d.ctx = nil
}

// loadSurface decodes the file at path, or generates a 64x64 checkerboard
// when path is empty.
func loadSurface(path string) (*splat.Surface, error) {
	if path == "" {
		return splat.SurfaceFromImage(checkerboard(64, 8)), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()
	return splat.DecodeSurface(f)
}

// checkerboard returns a size x size image of cell-sized squares with a
// solid bar down the left edge, so mirroring is visible.
func checkerboard(size, cell int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	light := color.NRGBA{R: 240, G: 200, B: 60, A: 255}
	dark := color.NRGBA{R: 40, G: 90, B: 200, A: 255}
	bar := color.NRGBA{R: 220, G: 40, B: 40, A: 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := dark
			if (x/cell+y/cell)%2 == 0 {
				c = light
			}
			if x < cell {
				c = bar
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
