//go:build !inkview

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"inkpad/app"
	"inkpad/hal"
	"inkpad/internal/buildinfo"
	"inkpad/internal/config"
	"inkpad/internal/demo"
	"inkpad/internal/storage"
)

func main() {
	var (
		configPath string
		statePath  string
		scriptPath string
		headless   bool
		hz         int
	)
	flag.StringVar(&configPath, "config", "", "Device profile (TOML).")
	flag.StringVar(&statePath, "state", "", "State database path (overrides the profile).")
	flag.BoolVar(&headless, "headless", false, "Run without a window, replaying -script.")
	flag.StringVar(&scriptPath, "script", "", "Event script for headless mode.")
	flag.IntVar(&hz, "hz", 30, "Event rate in headless mode.")
	flag.Parse()

	if err := run(configPath, statePath, scriptPath, headless, hz); err != nil {
		if err == context.Canceled {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, statePath, scriptPath string, headless bool, hz int) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if statePath != "" {
		cfg.Storage.Path = statePath
	}

	store, err := openStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	log := hal.StdoutLogger()
	panel := hal.NewPanel(cfg.PanelSize())
	backendName := "simulator"
	if headless {
		backendName = "headless"
	}
	runner, err := app.New(panel, demo.New(), app.Config{
		Geometry: cfg.Geometry(),
		Fonts:    cfg.Fonts,
		Keys:     &cfg.Keys,
		Storage:  store,
		Logger:   log,
		Backend:  backendName,
	})
	if err != nil {
		return err
	}

	guard := app.GuardPanics(runner)
	if !headless {
		if err := hal.RunWindow(panel, guard, hal.WindowConfig{
			Title: "inkpad (" + buildinfo.Short() + ")",
			Scale: cfg.Window.Scale,
		}); err != nil {
			return err
		}
		return guard.Err()
	}

	script := []hal.Event{{Kind: hal.EventShow}}
	if scriptPath != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return err
		}
		script, err = hal.ParseScript(f)
		f.Close()
		if err != nil {
			return err
		}
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := hal.RunHeadless(ctx, panel, guard, hal.HeadlessConfig{Hz: hz, Script: script}); err != nil {
		return err
	}
	if err := guard.Err(); err != nil {
		return err
	}
	full, partial := panel.Refreshes()
	log.WriteLineString(fmt.Sprintf("headless: %d frames, %d full and %d partial refreshes", runner.Frames(), full, partial))
	return nil
}

func openStore(path string) (storage.Store, error) {
	if path == "" {
		return storage.NewMemory(), nil
	}
	return storage.OpenSQLite(path)
}
