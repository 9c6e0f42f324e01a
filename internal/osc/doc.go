// Package osc interprets Operating System Command sequences for Termsense.
//
// The package translates decoded OSC payloads into discrete consumer actions:
//
//   - Clipboard writes (OSC 52)
//   - Desktop notifications (OSC 9, 99, 777)
//   - Hyperlink spans (OSC 8)
//   - Shell-integration segments (OSC 133)
//   - Annotations and cursor shape (OSC 1337)
//
// # Architecture
//
// An Interpreter instance owns all cross-call state for one terminal session:
// the current prompt identifier, the column where the in-progress prompt or
// input segment began, and the open hyperlink span, if any. The single entry
// point is Parse, which dispatches on the OSC command number and returns the
// ordered list of actions the payload produced. Unknown commands and
// malformed payloads produce no actions and leave state untouched.
//
// The interpreter never sees raw escape bytes. The upstream VT decoder strips
// the ESC ] ... ST/BEL framing and the command number, then calls Parse with
// the payload and the current cursor position.
//
// # Usage
//
//	interp := osc.NewInterpreter()
//	actions := interp.Parse(osc.CmdShellIntegration, "A", row, col, cols)
//	for _, a := range actions {
//	    // Apply to the grid, clipboard, notifier...
//	}
//
// # Thread Safety
//
// Unlike most Termsense packages, the Interpreter is NOT safe for concurrent
// use. It is exclusively owned by the decoding loop of one session and must
// be called sequentially; Parse is a synchronous state transition with no
// I/O. Hosts handling several sessions give each its own Interpreter. The
// session package enforces this confinement for callers that need it.
package osc
