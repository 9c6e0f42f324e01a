// Package session wires the OSC interpreter into a consumable unit.
//
// A Session owns one interpreter and one segment store for a terminal
// stream. The host's VT decoder calls Dispatch for every decoded OSC
// sequence; the session applies segment actions to its store and routes
// clipboard, notification and cursor-shape actions to the configured sinks,
// optionally running notifications through a Lua filter first.
//
// The Manager tracks sessions by id, applies configuration defaults, and
// publishes lifecycle events to an optional event bus.
//
// # Usage
//
//	manager := session.NewManager(session.ManagerConfig{
//	    Config:   cfg,
//	    EventBus: bus,
//	})
//
//	sess, err := manager.Create(session.Options{
//	    Name: "main",
//	    OnNotification: func(title *string, body string, urgency osc.Urgency) {
//	        notifier.Send(title, body, urgency)
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// From the decoder loop:
//	sess.Dispatch(cmd, payload, row, col, cols)
//
// # Thread Safety
//
// Dispatch serializes through a per-session mutex, upholding the
// interpreter's single-writer contract even for hosts that decode on more
// than one goroutine. Sinks are invoked from inside Dispatch and must not
// call back into the session.
package session
