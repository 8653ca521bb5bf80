package drag

import (
	"log/slog"

	"github.com/1broseidon/altdrag/internal/platform"
)

// Options configures a Machine.
type Options struct {
	Geometry platform.GeometrySource
	Mover    platform.Mover
	// MoveMask is the button-state bit that makes motion move the target.
	MoveMask uint16
	// ResizeMask is the button-state bit that makes motion resize the target.
	ResizeMask uint16
	Logger     *slog.Logger
}

// Machine turns pointer events into geometry changes. It owns the only
// session and is driven from a single goroutine, one event at a time.
type Machine struct {
	geometry   platform.GeometrySource
	mover      platform.Mover
	moveMask   uint16
	resizeMask uint16
	logger     *slog.Logger

	session *Session
	stats   Stats
}

// NewMachine creates an idle machine. When neither mask is set the
// conventional buttons are used: 1 moves, 3 resizes.
func NewMachine(opts Options) *Machine {
	moveMask, resizeMask := opts.MoveMask, opts.ResizeMask
	if moveMask == 0 && resizeMask == 0 {
		moveMask = platform.Button1Mask
		resizeMask = platform.Button3Mask
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Machine{
		geometry:   opts.Geometry,
		mover:      opts.Mover,
		moveMask:   moveMask,
		resizeMask: resizeMask,
		logger:     logger,
	}
}

// Phase reports whether a session is active.
func (m *Machine) Phase() Phase {
	if m.session != nil {
		return PhaseDragging
	}
	return PhaseIdle
}

// Active returns true while a session exists.
func (m *Machine) Active() bool {
	return m.session != nil
}

// Session returns a copy of the active session.
func (m *Machine) Session() (Session, bool) {
	if m.session == nil {
		return Session{}, false
	}
	return *m.session, true
}

// Stats returns the counters accumulated so far.
func (m *Machine) Stats() Stats {
	return m.stats
}

// Handle processes one event to completion.
func (m *Machine) Handle(ev platform.Event) {
	m.stats.Events++

	switch ev := ev.(type) {
	case platform.ButtonPress:
		m.press(ev)
	case platform.Motion:
		m.motion(ev)
	case platform.ButtonRelease:
		m.release(ev)
	}
}

// DropTarget ends the session if it is manipulating windowID. It is used
// when the server reports an error against a window asynchronously.
func (m *Machine) DropTarget(windowID platform.WindowID) bool {
	if m.session == nil || m.session.Target != windowID {
		return false
	}
	m.abort("window error reported by server")
	return true
}

func (m *Machine) press(ev platform.ButtonPress) {
	// Every press starts over, including a second button pressed mid-drag.
	m.session = nil

	if ev.Child == platform.NoWindow {
		m.logger.Debug("press without a window under the pointer", "button", ev.Button)
		return
	}

	baseline, err := m.geometry.WindowGeometry(ev.Child)
	if err != nil {
		m.stats.SessionsAborted++
		m.logger.Warn("drag not started", "window", ev.Child, "error", err)
		return
	}

	m.session = &Session{
		Target:   ev.Child,
		PressX:   ev.RootX,
		PressY:   ev.RootY,
		Baseline: baseline,
		Button:   ev.Button,
	}
	m.stats.SessionsStarted++
	m.logger.Debug("drag started",
		"window", ev.Child,
		"button", ev.Button,
		"x", baseline.X, "y", baseline.Y,
		"width", baseline.Width, "height", baseline.Height,
	)
}

func (m *Machine) motion(ev platform.Motion) {
	if m.session == nil {
		return
	}

	bounds := Compute(*m.session, ev.RootX, ev.RootY, ev.State, m.moveMask, m.resizeMask)
	if err := m.mover.MoveResize(m.session.Target, bounds); err != nil {
		m.logger.Warn("reconfigure failed", "window", m.session.Target, "error", err)
		m.abort("target window unavailable")
		return
	}
	m.stats.Reconfigures++
}

func (m *Machine) release(ev platform.ButtonRelease) {
	if m.session == nil {
		return
	}
	m.logger.Debug("drag finished", "window", m.session.Target, "button", ev.Button)
	m.session = nil
}

func (m *Machine) abort(reason string) {
	m.logger.Info("drag aborted", "window", m.session.Target, "reason", reason)
	m.session = nil
	m.stats.SessionsAborted++
}
