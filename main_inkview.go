//go:build inkview

package main

import (
	"flag"
	"fmt"
	"os"

	"inkpad/app"
	"inkpad/hal"
	"inkpad/internal/config"
	"inkpad/internal/demo"
	"inkpad/internal/storage"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Device profile (TOML).")
	flag.Parse()

	if err := run(configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	var store storage.Store = storage.NewMemory()
	if cfg.Storage.Path != "" {
		s, err := storage.OpenSQLite(cfg.Storage.Path)
		if err != nil {
			return err
		}
		store = s
	}
	defer store.Close()

	var guard *app.PanicGuard
	err := hal.RunInkView(func(dev hal.Device) (hal.EventHandler, error) {
		runner, err := app.New(dev, demo.New(), app.Config{
			Geometry: cfg.Geometry(),
			Fonts:    cfg.Fonts,
			Keys:     &cfg.Keys,
			Storage:  store,
			Logger:   hal.StdoutLogger(),
			Backend:  "inkview",
		})
		if err != nil {
			return nil, err
		}
		guard = app.GuardPanics(runner)
		return guard, nil
	})
	if err != nil {
		return err
	}
	if guard != nil {
		return guard.Err()
	}
	return nil
}
