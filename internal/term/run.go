package term

import (
	"context"
	"time"

	"sand-ca/internal/core"
	"sand-ca/internal/logging"

	"github.com/gdamore/tcell/v2"
)

// Run drives the view until ctx is cancelled or the user quits. The caller
// owns the screen and must have called Init; Run does not call Fini.
func Run(ctx context.Context, view *View, tps int) error {
	step := core.NewFixedStep(tps)
	view.screen.EnableMouse()
	view.screen.HideCursor()
	view.Invalidate()
	view.Draw()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := view.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(step.Interval())
	defer ticker.Stop()
	logging.WithField("tps", tps).Info("terminal loop started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if !view.Handle(ev) {
				logging.Info("quit requested")
				return nil
			}
		case <-ticker.C:
			if n := step.Due(); n > 0 {
				view.session.Step(n)
			}
			view.Draw()
		}
	}
}
