package session

import (
	"errors"
	"testing"

	"github.com/dshills/termsense/internal/config"
	"github.com/dshills/termsense/internal/event"
)

type recordingBus struct {
	events []string
	data   []map[string]any
}

func (b *recordingBus) Publish(eventType string, data map[string]any) {
	b.events = append(b.events, eventType)
	b.data = append(b.data, data)
}

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager(ManagerConfig{})
	defer m.Shutdown()

	sess, err := m.Create(Options{Name: "main"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if sess.Name() != "main" {
		t.Errorf("Name() = %q, want main", sess.Name())
	}
	if sess.ID() == "" {
		t.Error("expected non-empty session id")
	}

	got, ok := m.Get(sess.ID())
	if !ok || got != sess {
		t.Error("Get did not return the created session")
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
}

func TestManagerDefaultsConfig(t *testing.T) {
	m := NewManager(ManagerConfig{})
	defer m.Shutdown()

	sess, err := m.Create(Options{})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if sess.Cols() != config.Default().Sessions.DefaultCols {
		t.Errorf("Cols() = %d, want configured default", sess.Cols())
	}
}

func TestManagerCloseRemovesSession(t *testing.T) {
	m := NewManager(ManagerConfig{})
	defer m.Shutdown()

	sess, err := m.Create(Options{Name: "temp"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := m.Close(sess.ID()); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if _, ok := m.Get(sess.ID()); ok {
		t.Error("closed session still tracked")
	}
	if m.Count() != 0 {
		t.Errorf("Count() = %d after close, want 0", m.Count())
	}

	if err := m.Close(sess.ID()); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestManagerCloseAll(t *testing.T) {
	m := NewManager(ManagerConfig{})
	defer m.Shutdown()

	for i := 0; i < 3; i++ {
		if _, err := m.Create(Options{}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	if err := m.CloseAll(); err != nil {
		t.Fatalf("close all failed: %v", err)
	}
	if m.Count() != 0 {
		t.Errorf("Count() = %d after CloseAll, want 0", m.Count())
	}
}

func TestManagerShutdownBlocksCreate(t *testing.T) {
	m := NewManager(ManagerConfig{})
	m.Shutdown()

	if _, err := m.Create(Options{}); !errors.Is(err, ErrManagerClosed) {
		t.Errorf("expected ErrManagerClosed, got %v", err)
	}

	// Shutdown is idempotent.
	m.Shutdown()
}

func TestManagerPublishesLifecycleEvents(t *testing.T) {
	bus := &recordingBus{}
	m := NewManager(ManagerConfig{EventBus: bus})
	defer m.Shutdown()

	sess, err := m.Create(Options{Name: "evt"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	sess.Close()

	if len(bus.events) != 2 || bus.events[0] != "session.created" || bus.events[1] != "session.closed" {
		t.Fatalf("unexpected event sequence %v", bus.events)
	}
	for i, data := range bus.data {
		if data["id"] != sess.ID() {
			t.Errorf("event %d id = %v, want %v", i, data["id"], sess.ID())
		}
		if _, ok := data["timestamp"]; !ok {
			t.Errorf("event %d missing timestamp", i)
		}
	}
}

func TestManagerWithEventBus(t *testing.T) {
	bus := event.NewBus()
	m := NewManager(ManagerConfig{EventBus: bus})
	defer m.Shutdown()

	var types []string
	bus.Subscribe("session.*", func(eventType string, _ map[string]any) {
		types = append(types, eventType)
	})

	sess, err := m.Create(Options{})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	sess.Close()

	if len(types) != 2 || types[0] != "session.created" || types[1] != "session.closed" {
		t.Errorf("bus saw %v", types)
	}
}

func TestManagerOnCloseStillRuns(t *testing.T) {
	m := NewManager(ManagerConfig{})
	defer m.Shutdown()

	closed := false
	sess, err := m.Create(Options{OnClose: func() { closed = true }})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	sess.Close()
	if !closed {
		t.Error("caller OnClose not invoked after manager wrapping")
	}
}
