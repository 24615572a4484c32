package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"pocketcalc/app"
	"pocketcalc/calc"
	"pocketcalc/hal"
	"pocketcalc/internal/config"
)

func main() {
	var cfg hal.HeadlessConfig
	var f runFlags
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&f.keys, "keys", "", `Keys to press at startup, e.g. "1 2 + 3 =".`)
	flag.StringVar(&f.configPath, "config", "", "Path to a YAML settings file.")
	flag.BoolVar(&f.printConfig, "print-config", false, "Print the effective settings as YAML and exit.")
	flag.BoolVar(&f.trace, "trace", false, "Log every key press.")
	flag.BoolVar(&f.mute, "mute", false, "Disable the key click.")
	flag.Parse()

	if err := run(cfg, f); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type runFlags struct {
	keys        string
	configPath  string
	printConfig bool
	trace       bool
	mute        bool
}

func run(cfg hal.HeadlessConfig, f runFlags) error {
	settings, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.printConfig {
		b, err := settings.Marshal()
		if err != nil {
			return fmt.Errorf("print config: %w", err)
		}
		_, err = os.Stdout.Write(b)
		return err
	}
	theme, err := settings.Theme.Resolve()
	if err != nil {
		return err
	}
	script, err := calc.ParseKeys(f.keys)
	if err != nil {
		return err
	}

	opts := hal.Options{
		Width:  settings.Window.Width,
		Height: settings.Window.Height,
		Scale:  settings.Window.Scale,
		Title:  settings.Window.Title,
		Mute:   f.mute || !settings.Sound.Click,
		Volume: settings.Sound.Volume,
	}
	appCfg := app.Config{
		Script:          script,
		ExitAfterScript: cfg.Enabled && len(script) > 0,
		Trace:           f.trace || settings.Trace,
		Theme:           theme,
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if cfg.Enabled {
		opts.Mute = true
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, opts, newApp, cfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		return nil
	}

	return hal.RunWindow(opts, newApp)
}
