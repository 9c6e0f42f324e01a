// Package watcher provides file watching for configuration live reload.
//
// The watcher monitors configuration files through fsnotify and delivers
// debounced change events, so a reload is triggered once per save even when
// an editor writes the file in several operations.
package watcher

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Common errors returned by watcher operations.
var (
	ErrWatcherClosed   = errors.New("watcher is closed")
	ErrPathNotExist    = errors.New("path does not exist")
	ErrAlreadyWatching = errors.New("path is already being watched")
)

// Op represents the type of file system operation.
type Op uint32

const (
	// OpCreate indicates the file was created.
	OpCreate Op = 1 << iota
	// OpWrite indicates the file was written to.
	OpWrite
	// OpRemove indicates the file was removed.
	OpRemove
	// OpRename indicates the file was renamed.
	OpRename
)

// String returns a human-readable representation of the operation.
func (op Op) String() string {
	switch op {
	case OpCreate:
		return "CREATE"
	case OpWrite:
		return "WRITE"
	case OpRemove:
		return "REMOVE"
	case OpRename:
		return "RENAME"
	default:
		return "UNKNOWN"
	}
}

// Has returns true if the operation includes the given op.
func (op Op) Has(o Op) bool {
	return op&o == o
}

// Event represents a configuration file change.
type Event struct {
	// Path is the absolute path of the changed file.
	Path string

	// Op is the combined set of operations observed in the debounce window.
	Op Op

	// Timestamp is when the last underlying event arrived.
	Timestamp time.Time
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the coalescing window for rapid changes.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithBufferSize sets the event channel capacity.
func WithBufferSize(n int) Option {
	return func(w *Watcher) {
		if n > 0 {
			w.bufSize = n
		}
	}
}

// Watcher monitors configuration files for changes.
type Watcher struct {
	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	paths   map[string]bool
	pending map[string]*pendingEvent
	closed  bool

	debounce time.Duration
	bufSize  int

	events  chan Event
	errs    chan error
	closeCh chan struct{}
	wg      sync.WaitGroup
}

// pendingEvent tracks a debounced event for one path.
type pendingEvent struct {
	timer *time.Timer
	op    Op
	last  time.Time
}

// New creates a watcher. The caller must Close it when done.
func New(opts ...Option) (*Watcher, error) {
	w := &Watcher{
		paths:    make(map[string]bool),
		pending:  make(map[string]*pendingEvent),
		debounce: 100 * time.Millisecond,
		bufSize:  16,
		closeCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w.fsw = fsw
	w.events = make(chan Event, w.bufSize)
	w.errs = make(chan error, w.bufSize)

	w.wg.Add(1)
	go w.processLoop()

	return w, nil
}

// Watch starts watching a file. The containing directory is registered with
// fsnotify so atomic rename-over saves are still observed.
func (w *Watcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			return ErrPathNotExist
		}
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return ErrWatcherClosed
	}
	if w.paths[absPath] {
		return ErrAlreadyWatching
	}
	if err := w.fsw.Add(filepath.Dir(absPath)); err != nil {
		return err
	}
	w.paths[absPath] = true
	return nil
}

// Events returns the debounced event channel. It is closed by Close.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Errors returns the error channel. It is closed by Close.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	close(w.closeCh)
	for path, p := range w.pending {
		p.timer.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()

	err := w.fsw.Close()
	w.wg.Wait()

	w.mu.Lock()
	close(w.events)
	close(w.errs)
	w.mu.Unlock()
	return err
}

// processLoop translates fsnotify events into debounced watcher events.
func (w *Watcher) processLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
				// Error channel full; the newest error is the one dropped.
			}
		}
	}
}

// handle coalesces an fsnotify event into the pending set for its path.
func (w *Watcher) handle(ev fsnotify.Event) {
	op := convertOp(ev.Op)
	if op == 0 {
		return
	}

	path, err := filepath.Abs(ev.Name)
	if err != nil {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed || !w.paths[path] {
		// The directory is watched; ignore siblings of the config file.
		return
	}

	if p, ok := w.pending[path]; ok {
		p.op |= op
		p.last = time.Now()
		p.timer.Reset(w.debounce)
		return
	}

	p := &pendingEvent{op: op, last: time.Now()}
	p.timer = time.AfterFunc(w.debounce, func() {
		w.flush(path)
	})
	w.pending[path] = p
}

// flush delivers the pending event for path, if still relevant. The send
// happens under the mutex: Close also closes the channel under it, so a
// late-firing timer can never send after close.
func (w *Watcher) flush(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, ok := w.pending[path]
	if !ok || w.closed {
		return
	}
	delete(w.pending, path)

	select {
	case w.events <- Event{Path: path, Op: p.op, Timestamp: p.last}:
	default:
		// Event channel full; the consumer is not keeping up. Dropping is
		// safe: a reload reads the file fresh regardless of how many saves
		// preceded it.
	}
}

// convertOp maps fsnotify operations onto the watcher's Op set.
func convertOp(op fsnotify.Op) Op {
	var out Op
	if op.Has(fsnotify.Create) {
		out |= OpCreate
	}
	if op.Has(fsnotify.Write) {
		out |= OpWrite
	}
	if op.Has(fsnotify.Remove) {
		out |= OpRemove
	}
	if op.Has(fsnotify.Rename) {
		out |= OpRename
	}
	return out
}
