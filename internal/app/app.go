package app

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/clockcast/clockcast/internal/config"
	"github.com/clockcast/clockcast/internal/state"
	"github.com/clockcast/clockcast/internal/stream"
)

// TickInterval is the pause between frames, measured from the completion
// of the previous emit. Slow ticks are not compensated for, so the
// effective rate under load falls below 4 Hz.
const TickInterval = 250 * time.Millisecond

// FrameRenderer produces one canvas per tick for the given wall-clock time.
type FrameRenderer interface {
	Frame(t time.Time) *image.RGBA
}

// App is the single-threaded scheduler that drives the render-emit loop.
type App struct {
	Store  *state.Store
	Render FrameRenderer
	Sink   stream.FrameWriter
	Logger Logger

	// Clock and SleepFn exist for tests; the defaults use real time.
	Clock    Clock
	Interval time.Duration
	SleepFn  func(time.Duration)
}

func New(store *state.Store, renderer FrameRenderer, sink stream.FrameWriter) *App {
	return &App{
		Store:    store,
		Render:   renderer,
		Sink:     sink,
		Logger:   NoopLogger{},
		Clock:    SystemClock(),
		Interval: TickInterval,
		SleepFn:  time.Sleep,
	}
}

// Run emits frames until the wall-clock deadline passes, then returns nil.
// An emit failure is fatal: the frame protocol has no recovery story for a
// disconnected consumer, so the error propagates immediately and no
// further frames are attempted.
func (app *App) Run(ctx context.Context, params config.Params) error {
	deadline := app.Clock.Now().Add(time.Duration(params.DurationSec * float64(time.Second)))
	app.Store.SetPhase(state.RUNNING)
	app.Logger.Infof("app", "running for %gs", params.DurationSec)

	for ctx.Err() == nil {
		now := app.Clock.Now()
		if !now.Before(deadline) {
			break
		}
		if err := app.Sink.Emit(app.Render.Frame(now)); err != nil {
			app.Store.SetPhase(state.FAILED)
			app.Logger.Errorf("app", "emit failed: %v", err)
			return fmt.Errorf("emit frame: %w", err)
		}
		app.Store.AddFrame()
		app.SleepFn(app.Interval)
	}

	app.Store.SetPhase(state.STOPPED)
	app.Logger.Infof("app", "stopped after %d frames", app.Store.Snapshot().Frames)
	return ctx.Err()
}
