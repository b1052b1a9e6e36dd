// Command nucleus boots the kernel on the host: it wires a timer goroutine
// to the interrupt router and hands stdin to the monitor console.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"nucleus/fs"
	"nucleus/internal/buildinfo"
	"nucleus/internal/config"
	"nucleus/internal/logging"
	"nucleus/kernel"
	"nucleus/monitor"
	"nucleus/tracing"
)

func main() {
	configPath := flag.String("config", "nucleus.yaml", "runtime configuration file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "nucleus:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := logging.Init(cfg.LogFile, cfg.LogLevel); err != nil {
		return err
	}
	if cfg.Trace {
		if err := tracing.Init("nucleus", buildinfo.Short(), cfg.TraceOutput); err != nil {
			slog.Warn("tracing disabled", "error", err)
		}
	}

	bootID := uuid.New().String()
	slog.Info("kernel boot",
		"boot_id", bootID,
		"version", buildinfo.Short(),
		"pages", kernel.NumPages,
		"page_size", kernel.PageSize,
		"tick_interval", cfg.Interval(),
	)

	k := kernel.New(fs.New(nil))

	stop := make(chan struct{})
	done := make(chan struct{})
	go timerLoop(k, cfg.Interval(), stop, done)

	err = monitor.New(k, os.Stdout).Run(os.Stdin)

	close(stop)
	<-done
	slog.Info("kernel halt", "boot_id", bootID, "free_pages", k.FreePages())
	return err
}

// timerLoop delivers the timer interrupt at a fixed period until stopped.
func timerLoop(k *kernel.Kernel, every time.Duration, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			k.Route(kernel.VecTimer, nil)
		case <-stop:
			return
		}
	}
}
