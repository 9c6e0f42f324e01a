package osc

import "strings"

// parseITerm handles the OSC 1337 iTerm2 extensions Termsense supports:
// full-width annotations and cursor shape changes. Other 1337 payloads
// (file transfer, badges, user vars) are ignored.
func (in *Interpreter) parseITerm(payload string, cursorRow, cols int) []Action {
	if message, found := strings.CutPrefix(payload, "AddAnnotation="); found {
		return []Action{addSegment(cursorRow, 0, cols, SegmentAnnotation, message, in.promptID)}
	}

	if value, found := strings.CutPrefix(payload, "SetCursorShape="); found {
		shape := CursorBlock
		switch value {
		case "1":
			shape = CursorBarLeft
		case "2":
			shape = CursorUnderline
		}
		// Anything else, "0" included, is a block cursor.
		return []Action{{Kind: ActionSetCursorShape, Shape: shape}}
	}

	return nil
}
