package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/1broseidon/altdrag/internal/drag"
	"github.com/1broseidon/altdrag/internal/platform"
)

// Dispatcher consumes decoded events. *drag.Machine implements it.
type Dispatcher interface {
	Handle(ev platform.Event)
	DropTarget(windowID platform.WindowID) bool
	Stats() drag.Stats
}

// LoopConfig holds configuration for the event loop.
type LoopConfig struct {
	// Close unblocks a pending NextEvent, normally by closing the display
	// connection. It is called once when the Run context is cancelled.
	Close  func()
	Logger *slog.Logger
}

// Loop reads events one at a time and hands each to the dispatcher before
// reading the next.
type Loop struct {
	source     platform.EventSource
	dispatcher Dispatcher
	close      func()
	logger     *slog.Logger
}

// NewLoop creates an event loop over source.
func NewLoop(cfg LoopConfig, source platform.EventSource, dispatcher Dispatcher) *Loop {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	closeFn := cfg.Close
	if closeFn == nil {
		closeFn = func() {}
	}

	return &Loop{
		source:     source,
		dispatcher: dispatcher,
		close:      closeFn,
		logger:     logger,
	}
}

// Run processes events until the source reports platform.ErrClosed, which
// is a normal shutdown and returns nil. Cancelling ctx closes the source.
// Any other source failure is returned.
func (l *Loop) Run(ctx context.Context) error {
	stop := context.AfterFunc(ctx, l.close)
	defer stop()

	l.logger.Info("event loop started")

	for {
		ev, err := l.source.NextEvent()
		if err != nil {
			if errors.Is(err, platform.ErrClosed) {
				l.logStopped()
				return nil
			}

			var perr *platform.ProtocolError
			if errors.As(err, &perr) {
				l.logger.Warn("display server reported an error", "error", perr.Err)
				if perr.Resource != platform.NoWindow {
					l.dispatcher.DropTarget(perr.Resource)
				}
				continue
			}

			return fmt.Errorf("event source failed: %w", err)
		}

		l.logger.Debug("event", "event", ev)
		l.dispatcher.Handle(ev)
	}
}

func (l *Loop) logStopped() {
	stats := l.dispatcher.Stats()
	l.logger.Info("event loop stopped",
		"events", stats.Events,
		"sessions_started", stats.SessionsStarted,
		"sessions_aborted", stats.SessionsAborted,
		"reconfigures", stats.Reconfigures,
	)
}
