// SPDX-License-Identifier: EPL-2.0

// Command samplehost runs the sample loader against a directory card
// the way a plugin host would: a control loop steps the loader at the
// configured rate while a watcher mounts and unmounts the card as its
// directory appears and disappears.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ik5/samplebank/catalog"
	"github.com/ik5/samplebank/config"
	"github.com/ik5/samplebank/formats"
	"github.com/ik5/samplebank/loader"
	"github.com/ik5/samplebank/media"
)

// tick is the wall-clock granularity of the control loop. Each tick
// runs as many cycles as the control rate asks for.
const tick = time.Millisecond

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "samplehost:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("samplehost", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "JSON config file")
		root       = fs.String("root", "", "card directory (overrides media_root)")
		level      = fs.String("log-level", "", "debug, info, warn or error")
		exitLoaded = fs.Bool("exit-when-loaded", false, "stop once every sample is loaded")
		timeout    = fs.Duration("timeout", 0, "stop after this long (0 runs until interrupted)")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadConfig(*configPath, config.Config{MediaRoot: *root, Logging: config.Logging{Level: *level}})
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	card := media.NewCard(cfg.MediaRoot, formats.DefaultRegistry(), media.CardOptions{
		Logger:  logger,
		Latency: cfg.ReadLatency.Std(),
	})
	defer card.Close()

	l, err := loader.New(card, catalog.Elements(), cfg.LoaderOptions())
	if err != nil {
		return err
	}
	host := loader.NewHost(l, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if *timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *timeout)
		defer cancel()
	}

	logger.Info("samplehost: starting", "root", cfg.MediaRoot, "folder", cfg.FolderName,
		"rate", cfg.ControlRateHz, "max_retries", cfg.MaxRetries)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return media.Watch(ctx, card, cfg.MountPollInterval.Std(), logger)
	})
	g.Go(func() error {
		return controlLoop(ctx, host, cfg.ControlRateHz, *exitLoaded, logger)
	})

	err = g.Wait()
	if errors.Is(err, errLoaded) {
		err = nil
	}

	loaded, total := l.Progress()
	logger.Info("samplehost: stopped", "state", l.State(), "loaded", loaded, "total", total,
		"retries", l.Retries(), "cycles", host.Cycles())
	return err
}

// loadConfig layers defaults, the config file, the environment and
// flags, in that order.
func loadConfig(path string, flags config.Config) (config.Config, error) {
	cfg := config.Defaults()

	if path != "" {
		over, err := config.LoadJSON(path, nil)
		if err != nil {
			return cfg, err
		}
		cfg = config.Merge(cfg, over)
	}

	env, err := config.EnvOverlay(os.Environ())
	if err != nil {
		return cfg, err
	}
	cfg = config.Merge(cfg, env)

	flags.RetryDelayCycles, flags.MaxRetries, flags.RequestTimeoutCycles = -1, -1, -1
	cfg = config.Merge(cfg, flags)

	return cfg, config.Validate(cfg)
}

var errLoaded = errors.New("samples loaded")

func controlLoop(ctx context.Context, host *loader.Host, rate int, exitLoaded bool, logger *slog.Logger) error {
	perTick := max(rate*int(tick)/int(time.Second), 1)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	status := ""
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		ready := false
		for range perTick {
			ready = host.Cycle()
		}

		if s := host.Status(); s != status {
			status = s
			logger.Info("samplehost: display", "status", s, "cycle", host.Cycles())
		}
		if ready && exitLoaded {
			return errLoaded
		}
	}
}
