package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/ushitora-anqou/rasteriser/colour"
	"github.com/ushitora-anqou/rasteriser/constant"
	"github.com/ushitora-anqou/rasteriser/driver"
	"github.com/ushitora-anqou/rasteriser/input"
	"github.com/ushitora-anqou/rasteriser/util"
	"github.com/ushitora-anqou/rasteriser/window"
)

type config struct {
	driver  string
	width   int
	height  int
	title   string
	retain  bool
	frames  uint64
	fps     int
	vsync   bool
	verbose bool
}

func parseFlags() *config {
	cfg := &config{}
	flag.StringVar(&cfg.driver, "driver", defaultDriver, "Window backend: gl, text or headless.")
	flag.IntVar(&cfg.width, "width", constant.WINDOW_WIDTH, "Window width in pixels.")
	flag.IntVar(&cfg.height, "height", constant.WINDOW_HEIGHT, "Window height in pixels.")
	flag.StringVar(&cfg.title, "title", constant.WINDOW_TITLE, "Window title.")
	flag.BoolVar(&cfg.retain, "retain", false, "Keep the pixel buffer between frames instead of clearing it.")
	flag.Uint64Var(&cfg.frames, "frames", 0, "Close a headless window after N frames (0 = never).")
	flag.IntVar(&cfg.fps, "fps", constant.TARGET_FPS, "Target frame rate.")
	flag.BoolVar(&cfg.vsync, "vsync", false, "Wait for vertical sync when presenting (gl).")
	flag.BoolVar(&cfg.verbose, "v", false, "Log debug messages.")
	flag.Parse()
	return cfg
}

func run() error {
	cfg := parseFlags()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	util.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	kind, err := driver.ParseKind(cfg.driver)
	if err != nil {
		return err
	}
	drv, err := driver.Create(kind, driver.WithVSync(cfg.vsync), driver.WithHeadlessCloseAfter(cfg.frames))
	if err != nil {
		return err
	}

	wind, err := drv.CreateWindow(cfg.width, cfg.height, cfg.title)
	if err != nil {
		return err
	}
	defer wind.Close()

	keys := input.NewTracker(window.InputHandlerFunc(func(code window.KeyCode, state window.KeyState) {
		if state == window.Pressed {
			util.Logger().Info("Key pressed", "key", code)
		} else {
			util.Logger().Info("Key released", "key", code)
		}
	}))
	wind.SetInputHandler(keys)

	// Main loop
	cursorX, cursorY := cfg.width/2, cfg.height/2
	synchronizer := util.NewTimeSynchronizer(cfg.fps)
	for {
		for x := constant.LINE_X_BEGIN; x < constant.LINE_X_END; x++ {
			wind.DrawPixel(x, constant.LINE_Y, colour.RGBA{R: 255, G: 50, B: 50, A: 255})
		}

		cursorX = clamp(cursorX+keys.Axis(window.KeyLeft, window.KeyRight), 0, cfg.width-1)
		cursorY = clamp(cursorY+keys.Axis(window.KeyUp, window.KeyDown), 0, cfg.height-1)
		wind.DrawPixel(cursorX, cursorY, colour.Hex(constant.CURSOR_COLOR))

		running, err := wind.Update(!cfg.retain)
		if err != nil {
			return err
		}
		if !running {
			break
		}
		synchronizer.MaySleep()
	}
	return nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func main() {
	err := run()
	if err != nil {
		log.Fatal(err)
	}
}
