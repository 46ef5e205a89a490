// Command inkshot replays an event script against the demo on a software
// panel and writes what the panel shows as a PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"inkpad/app"
	"inkpad/hal"
	"inkpad/internal/config"
	"inkpad/internal/demo"
	"inkpad/internal/storage"
)

const defaultShotPath = "Shot.png"

func main() {
	var scriptPath string
	var configPath string
	var outPath string
	var verbose bool
	flag.StringVar(&scriptPath, "script", "", "Event script to replay.")
	flag.StringVar(&configPath, "config", "", "Device profile (TOML).")
	flag.StringVar(&outPath, "out", defaultShotPath, "Output PNG path.")
	flag.BoolVar(&verbose, "v", false, "Log runner output to stdout.")
	flag.Parse()

	if scriptPath == "" {
		fmt.Fprintln(os.Stderr, "error: -script is required")
		os.Exit(2)
	}
	if outPath == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}

	if err := run(scriptPath, configPath, outPath, verbose); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(scriptPath, configPath, outPath string, verbose bool) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	f, err := os.Open(scriptPath)
	if err != nil {
		return fmt.Errorf("open script %q: %w", scriptPath, err)
	}
	script, err := hal.ParseScript(f)
	f.Close()
	if err != nil {
		return err
	}

	var log hal.Logger = hal.DiscardLogger{}
	if verbose {
		log = hal.StdoutLogger()
	}
	panel := hal.NewPanel(cfg.PanelSize())
	runner, err := app.New(panel, demo.New(), app.Config{
		Geometry: cfg.Geometry(),
		Fonts:    cfg.Fonts,
		Keys:     &cfg.Keys,
		Storage:  storage.NewMemory(),
		Logger:   log,
		Backend:  "inkshot",
	})
	if err != nil {
		return err
	}

	guard := app.GuardPanics(runner)
	for _, ev := range script {
		if panel.Closed() {
			break
		}
		guard.HandleEvent(ev)
		guard.Tick()
	}

	// The panel still shows the panic screen; write it before failing.
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %q: %w", outPath, err)
	}
	if err := png.Encode(out, panel.Snapshot()); err != nil {
		out.Close()
		return fmt.Errorf("encode %q: %w", outPath, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	if err := guard.Err(); err != nil {
		return fmt.Errorf("%s written after failure: %w", outPath, err)
	}
	full, partial := panel.Refreshes()
	fmt.Printf("%s: %d frames, %d full and %d partial refreshes\n", outPath, runner.Frames(), full, partial)
	return nil
}
