// Command radfield animates the radiated electric field of an accelerating point charge.
//
// Configuration is layered: built-in defaults, then the TOML file named by
// -config, then RADFIELD_* environment variables, then explicit flags.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/lixenwraith/radfield/animation"
	"github.com/lixenwraith/radfield/audio"
	"github.com/lixenwraith/radfield/config"
	"github.com/lixenwraith/radfield/core"
	"github.com/lixenwraith/radfield/render"
	"github.com/lixenwraith/radfield/render/tui"
	"github.com/lixenwraith/radfield/render/window"
)

func main() {
	if err := runMain(os.Args[1:]); err != nil {
		Fatal(err)
	}
}

// runMain parses args and runs the program
// It returns only after the log file is closed, since Fatal skips deferred calls
func runMain(args []string) error {
	fs := flag.NewFlagSet("radfield", flag.ContinueOnError)
	opts := registerFlags(fs)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logFile := setupLogging(*opts.debug)
	if logFile != nil {
		defer logFile.Close()
	}

	err := start(fs, opts)
	if err != nil {
		log.Printf("radfield: exiting: %v", err)
	}
	return err
}

// start loads the configuration and runs the selected display
func start(fs *flag.FlagSet, opts *flagOptions) error {
	cfg, err := loadConfig(fs, opts)
	if err != nil {
		return err
	}
	return run(cfg)
}

// Fatal prints err and exits
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

// loadConfig layers file, environment and explicitly set flags, then validates
func loadConfig(fs *flag.FlagSet, opts *flagOptions) (*config.Config, error) {
	cfg, err := config.Load(*opts.configPath)
	if err != nil {
		return nil, err
	}
	opts.apply(fs, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// build creates the grid, driver and scene for cfg
func build(cfg *config.Config) (*animation.Driver, *render.Scene, error) {
	g, err := cfg.BuildGrid()
	if err != nil {
		return nil, nil, err
	}
	log.Printf("radfield: grid %v, %d points", g.Shape, g.Len())

	driver := animation.NewDriver(g, cfg.Constants(), cfg.Kinematics(), animation.Options{
		Frames:   cfg.Animation.Frames,
		Interval: cfg.Interval(),
		Dt:       cfg.Animation.Dt,
		Loop:     cfg.Animation.Loop,
		Workers:  cfg.Animation.Workers,
		Probe:    cfg.ProbePoint(),
		HasProbe: true,
	})

	scene := render.NewScene(g, render.NewCamera(cfg.Limits()), render.SceneOptions{
		Length:    cfg.Render.Length,
		Normalize: cfg.Render.Normalize,
		Title:     cfg.Render.Title,
	})
	log.Printf("radfield: %d frames, dt %g, loop %v, %d workers",
		cfg.Animation.Frames, cfg.Animation.Dt, cfg.Animation.Loop, cfg.Animation.Workers)

	return driver, scene, nil
}

func run(cfg *config.Config) error {
	driver, scene, err := build(cfg)
	if err != nil {
		return err
	}

	// Audio is optional, a missing device only disables the tone
	var extra animation.Sink
	if cfg.Audio.Enabled {
		engine := audio.NewEngine(cfg.Audio.Volume)
		if err := engine.Initialize(); err != nil {
			log.Printf("audio: initialization failed: %v (continuing without audio)", err)
		} else {
			defer engine.Cleanup()
			extra = engine
		}
	}

	switch cfg.Display {
	case config.DisplayWindow:
		return window.Run(driver, scene, extra, cfg.Render.Title)
	default:
		return runTerminal(driver, scene, extra)
	}
}

func runTerminal(driver *animation.Driver, scene *render.Scene, extra animation.Sink) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("terminal display needs a TTY on stdout, use -display %s", config.DisplayWindow)
	}

	screen, err := tui.NewScreen(scene)
	if err != nil {
		return err
	}
	defer screen.Fini()

	core.SetCrashCleanup(screen.Fini)
	defer func() { core.HandleCrash(recover()) }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	screen.Listen(stop)

	if err := driver.Run(ctx, animation.Tee{screen, extra}); err != nil {
		return err
	}

	// A finished non-looping run holds its last frame until quit
	if !driver.Options().Loop {
		<-ctx.Done()
	}
	return nil
}
