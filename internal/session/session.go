package session

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/termsense/internal/config"
	"github.com/dshills/termsense/internal/filter"
	"github.com/dshills/termsense/internal/osc"
	"github.com/dshills/termsense/internal/segment"
)

// Options configures a new session.
type Options struct {
	// Name is a human-readable name for the session.
	Name string

	// Cols is the terminal width assumed until the decoder reports one
	// (defaults from configuration).
	Cols int

	// MaxRows bounds the segment store (defaults from configuration).
	MaxRows int

	// OnClipboard is called for accepted clipboard copies.
	OnClipboard func(selection, data string)

	// OnNotification is called for notifications that pass the filter.
	// title is nil when the notification has none.
	OnNotification func(title *string, body string, urgency osc.Urgency)

	// OnCursorShape is called for cursor shape changes.
	OnCursorShape func(shape osc.CursorShape)

	// OnClose is called when the session closes.
	OnClose func()
}

// Session owns the OSC interpreter and segment store for one terminal stream.
type Session struct {
	id   string
	name string

	mu       sync.Mutex
	interp   *osc.Interpreter
	segments *segment.Store
	filter   *filter.Lua
	cfg      config.Config
	cols     int

	closed atomic.Bool

	onClipboard    func(selection, data string)
	onNotification func(title *string, body string, urgency osc.Urgency)
	onCursorShape  func(shape osc.CursorShape)
	onClose        func()
}

// newSession creates a session with the given options and configuration.
func newSession(opts Options, cfg config.Config) (*Session, error) {
	if opts.Name == "" {
		opts.Name = "session"
	}
	if opts.MaxRows <= 0 {
		opts.MaxRows = cfg.Sessions.MaxRows
	}
	if opts.Cols <= 0 {
		opts.Cols = cfg.Sessions.DefaultCols
	}

	s := &Session{
		id:             uuid.New().String(),
		name:           opts.Name,
		interp:         osc.NewInterpreter(),
		segments:       segment.NewStore(opts.MaxRows),
		cfg:            cfg,
		cols:           opts.Cols,
		onClipboard:    opts.OnClipboard,
		onNotification: opts.OnNotification,
		onCursorShape:  opts.OnCursorShape,
		onClose:        opts.OnClose,
	}

	if cfg.Notifications.FilterScript != "" {
		f, err := filter.LoadScript(cfg.Notifications.FilterScript)
		if err != nil {
			return nil, fmt.Errorf("notification filter: %w", err)
		}
		s.filter = f
	}

	return s, nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Name returns the session's display name.
func (s *Session) Name() string {
	return s.name
}

// Segments returns the session's segment store.
func (s *Session) Segments() *segment.Store {
	return s.segments
}

// Cols returns the last known terminal width.
func (s *Session) Cols() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cols
}

// Dispatch feeds one decoded OSC sequence through the interpreter and routes
// the resulting actions. It is the only mutating entry point and serializes
// internally, so the interpreter only ever sees sequential calls.
func (s *Session) Dispatch(command int, payload string, cursorRow, cursorCol, cols int) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	if cols < 1 {
		return ErrInvalidSize
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cols = cols
	for _, action := range s.interp.Parse(command, payload, cursorRow, cursorCol, cols) {
		s.apply(action)
	}
	return nil
}

// Resize records the new terminal width and clips stored segments when the
// terminal narrowed.
func (s *Session) Resize(cols int) error {
	if s.closed.Load() {
		return ErrSessionClosed
	}
	if cols < 1 {
		return ErrInvalidSize
	}

	s.mu.Lock()
	narrowed := cols < s.cols
	s.cols = cols
	s.mu.Unlock()

	if narrowed {
		s.segments.Clip(cols)
	}
	return nil
}

// Evict drops segment rows scrolled out of the host's retention window.
func (s *Session) Evict(beforeRow int) {
	s.segments.Evict(beforeRow)
}

// Close shuts down the session. Dispatch calls after Close fail with
// ErrSessionClosed.
func (s *Session) Close() error {
	if s.closed.Swap(true) {
		return nil // Already closed
	}

	s.mu.Lock()
	if s.filter != nil {
		s.filter.Close()
	}
	s.mu.Unlock()

	if s.onClose != nil {
		s.onClose()
	}
	return nil
}

// IsRunning returns true if the session has not been closed.
func (s *Session) IsRunning() bool {
	return !s.closed.Load()
}

// apply routes one interpreter action. Called with the session mutex held.
func (s *Session) apply(action osc.Action) {
	switch action.Kind {
	case osc.ActionAddSegment:
		s.segments.Apply(action)

	case osc.ActionClipboardCopy:
		if !s.cfg.Clipboard.Enabled {
			return
		}
		if max := s.cfg.Clipboard.MaxDecodedBytes; max > 0 && len(action.Data) > max {
			return
		}
		if s.onClipboard != nil {
			s.onClipboard(action.Selection, action.Data)
		}

	case osc.ActionNotification:
		if !s.cfg.Notifications.Enabled {
			return
		}
		title, body, urgency := action.Title, action.Body, action.Urgency
		if s.filter != nil {
			// Filter errors fail open: a broken script must not eat
			// notifications.
			decision, _ := s.filter.Apply(title, body, urgency)
			if !decision.Allow {
				return
			}
			title, body, urgency = decision.Title, decision.Body, decision.Urgency
		}
		if s.onNotification != nil {
			s.onNotification(title, body, urgency)
		}

	case osc.ActionSetCursorShape:
		if s.onCursorShape != nil {
			s.onCursorShape(action.Shape)
		}
	}
}
