package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/clockcast/clockcast/internal/app"
	"github.com/clockcast/clockcast/internal/config"
	"github.com/clockcast/clockcast/internal/render"
	"github.com/clockcast/clockcast/internal/state"
	"github.com/clockcast/clockcast/internal/stream"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging to ./clockcast-debug.log")
	stderrLog := flag.String("stderr-log", "", "redirect stderr (including panics) to this file; also configurable via "+config.EnvStderrLog)
	flag.Parse()

	// Stdout carries the binary frame stream, so diagnostics must never
	// touch it. Best-effort: send stderr (and panic stack traces) to a
	// file when asked.
	logPath := *stderrLog
	if logPath == "" {
		logPath = os.Getenv(config.EnvStderrLog)
	}
	if logPath != "" {
		if err := redirectStderr(logPath); err != nil {
			fmt.Fprintln(os.Stderr, "stderr log redirect error:", err)
		}
	}

	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./clockcast-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Fprintln(os.Stderr, "debug log open error:", err)
		}
	}

	params := config.Load(os.Stdin)
	fontCfg := config.DefaultFontConfigFromEnv()
	face := render.LoadFace(fontCfg.Path, fontCfg.Size, logger)

	a := app.New(state.NewStore(), render.New(face), stream.NewEmitter(os.Stdout))
	a.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := a.Run(ctx, params); err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("main", "run error: %v", err)
		fmt.Fprintln(os.Stderr, "clockcast:", err)
		os.Exit(1)
	}
}
