package osc

// Interpreter translates decoded OSC payloads into consumer actions.
//
// One Interpreter serves one terminal session and carries all state that must
// survive across calls: the prompt identifier, the start column of the
// in-progress prompt or input segment, and the open hyperlink span, if any.
// See the package documentation for the confinement contract.
type Interpreter struct {
	// promptID increments on each prompt-start mark and groups the
	// prompt/input/finished segments of one command cycle.
	promptID int

	// segmentStartCol is the column where the in-progress prompt or input
	// segment began.
	segmentStartCol int

	// activeLink is the open hyperlink span, or nil.
	activeLink *openLink
}

// openLink records an open hyperlink span.
type openLink struct {
	url      string
	id       *string // nil when the params carried no id
	startRow int
	startCol int
}

// NewInterpreter creates an interpreter with a fresh session state.
func NewInterpreter() *Interpreter {
	return &Interpreter{}
}

// Parse interprets one decoded OSC sequence and returns the actions it
// produced, in order. cursorRow and cursorCol are the cursor position at the
// time the sequence arrived; cols is the current terminal width.
//
// Unknown command numbers and malformed payloads return nil and leave the
// interpreter state unchanged. Parse never returns an error: the protocol has
// no reporting channel back to the emitting program, so bad input degrades to
// no actions.
func (in *Interpreter) Parse(command int, payload string, cursorRow, cursorCol, cols int) []Action {
	switch command {
	case CmdHyperlink:
		return in.parseHyperlink(payload, cursorRow, cursorCol, cols)
	case CmdNotify:
		return parseNotify(payload)
	case CmdClipboard:
		return parseClipboard(payload)
	case CmdKittyNotify:
		return parseKittyNotify(payload)
	case CmdShellIntegration:
		return in.parseShellMark(payload, cursorRow, cursorCol)
	case CmdRxvtNotify:
		return parseRxvtNotify(payload)
	case CmdITerm:
		return in.parseITerm(payload, cursorRow, cols)
	default:
		return nil
	}
}

// PromptID returns the identifier of the current prompt cycle. It starts at
// zero and increases by one on each prompt-start mark.
func (in *Interpreter) PromptID() int {
	return in.promptID
}
