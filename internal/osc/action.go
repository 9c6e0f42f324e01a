package osc

// OSC command numbers the interpreter understands. Anything else is ignored.
const (
	// CmdHyperlink opens and closes hyperlink spans.
	CmdHyperlink = 8

	// CmdNotify is the simple one-field notification convention.
	CmdNotify = 9

	// CmdClipboard reads and writes the system clipboard. Reads are refused.
	CmdClipboard = 52

	// CmdKittyNotify is the kitty structured notification convention.
	CmdKittyNotify = 99

	// CmdShellIntegration marks prompt, input, and output boundaries.
	CmdShellIntegration = 133

	// CmdRxvtNotify is the urxvt subcommand notification convention.
	CmdRxvtNotify = 777

	// CmdITerm carries iTerm2 extensions (annotations, cursor shape).
	CmdITerm = 1337
)

// SemanticType classifies a labeled column range on a terminal row.
type SemanticType int

const (
	// SegmentPrompt covers the shell prompt text.
	SegmentPrompt SemanticType = iota

	// SegmentCommandInput covers the command the user typed.
	SegmentCommandInput

	// SegmentCommandFinished is a zero-width marker carrying the exit code.
	SegmentCommandFinished

	// SegmentHyperlink covers a hyperlink span; metadata holds the URL.
	SegmentHyperlink

	// SegmentAnnotation covers a free-form annotation; metadata holds the message.
	SegmentAnnotation
)

// String returns the semantic type name.
func (t SemanticType) String() string {
	switch t {
	case SegmentPrompt:
		return "prompt"
	case SegmentCommandInput:
		return "command-input"
	case SegmentCommandFinished:
		return "command-finished"
	case SegmentHyperlink:
		return "hyperlink"
	case SegmentAnnotation:
		return "annotation"
	default:
		return "unknown"
	}
}

// CursorShape is a requested text cursor shape.
type CursorShape int

const (
	// CursorBlock is a filled block cursor.
	CursorBlock CursorShape = iota

	// CursorBarLeft is a thin bar on the left cell edge.
	CursorBarLeft

	// CursorUnderline is an underline cursor.
	CursorUnderline
)

// String returns the cursor shape name.
func (s CursorShape) String() string {
	switch s {
	case CursorBlock:
		return "block"
	case CursorBarLeft:
		return "bar-left"
	case CursorUnderline:
		return "underline"
	default:
		return "unknown"
	}
}

// Urgency is a notification urgency level.
type Urgency int

const (
	// UrgencyLow is for notifications that need no attention.
	UrgencyLow Urgency = 0

	// UrgencyNormal is the default urgency.
	UrgencyNormal Urgency = 1

	// UrgencyCritical is for notifications that demand attention.
	UrgencyCritical Urgency = 2
)

// String returns the urgency name.
func (u Urgency) String() string {
	switch u {
	case UrgencyLow:
		return "low"
	case UrgencyNormal:
		return "normal"
	case UrgencyCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ActionKind tags the variant an Action holds.
type ActionKind int

const (
	// ActionAddSegment labels a column range on one row.
	ActionAddSegment ActionKind = iota

	// ActionSetCursorShape changes the text cursor shape.
	ActionSetCursorShape

	// ActionClipboardCopy writes decoded data to a clipboard selection.
	ActionClipboardCopy

	// ActionNotification raises a desktop notification.
	ActionNotification
)

// String returns the action kind name.
func (k ActionKind) String() string {
	switch k {
	case ActionAddSegment:
		return "add-segment"
	case ActionSetCursorShape:
		return "set-cursor-shape"
	case ActionClipboardCopy:
		return "clipboard-copy"
	case ActionNotification:
		return "notification"
	default:
		return "unknown"
	}
}

// Action is a tagged union of the four consumer-facing action variants.
// Only the field group matching Kind is meaningful; consumers switch on Kind
// and treat the value as immutable.
type Action struct {
	Kind ActionKind

	// ActionAddSegment fields.
	Row      int
	StartCol int
	EndCol   int
	Type     SemanticType
	Metadata string
	PromptID int

	// ActionSetCursorShape fields.
	Shape CursorShape

	// ActionClipboardCopy fields.
	Selection string
	Data      string

	// ActionNotification fields. Title is nil when the wire format carried no
	// title; nil and the empty string are distinct values.
	Title   *string
	Body    string
	Urgency Urgency
}

// addSegment builds an AddSegment action.
func addSegment(row, startCol, endCol int, typ SemanticType, metadata string, promptID int) Action {
	return Action{
		Kind:     ActionAddSegment,
		Row:      row,
		StartCol: startCol,
		EndCol:   endCol,
		Type:     typ,
		Metadata: metadata,
		PromptID: promptID,
	}
}

// notification builds a Notification action. title may be nil.
func notification(title *string, body string, urgency Urgency) Action {
	return Action{
		Kind:    ActionNotification,
		Title:   title,
		Body:    body,
		Urgency: urgency,
	}
}
