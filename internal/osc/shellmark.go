package osc

// parseShellMark handles OSC 133 shell-integration marks, dispatched on the
// payload's leading character:
//
//	A    prompt start: new prompt cycle begins at the cursor
//	B    input start: the prompt text ends, the typed command begins
//	C    output start: the typed command ends
//	D[;exit]  command finished, with its exit code
//
// A and B anchor segmentStartCol; C deliberately does not, so shells that
// emit B again without an intervening A reuse the previous anchor. That
// matches observed shell behavior with nested command blocks.
func (in *Interpreter) parseShellMark(payload string, cursorRow, cursorCol int) []Action {
	if payload == "" {
		return nil
	}

	switch payload[0] {
	case 'A':
		in.promptID++
		in.segmentStartCol = cursorCol
		return nil

	case 'B':
		var actions []Action
		if in.segmentStartCol < cursorCol {
			actions = []Action{addSegment(cursorRow, in.segmentStartCol, cursorCol, SegmentPrompt, "", in.promptID)}
		}
		in.segmentStartCol = cursorCol
		return actions

	case 'C':
		if in.segmentStartCol < cursorCol {
			return []Action{addSegment(cursorRow, in.segmentStartCol, cursorCol, SegmentCommandInput, "", in.promptID)}
		}
		return nil

	case 'D':
		// Zero-width marker, not a span. Exit code defaults to success.
		exitCode := "0"
		if len(payload) > 2 {
			exitCode = payload[2:]
		}
		return []Action{addSegment(cursorRow, cursorCol, cursorCol, SegmentCommandFinished, exitCode, in.promptID)}

	default:
		return nil
	}
}
