package osc

import "strings"

// parseHyperlink handles OSC 8 payloads of the form "params;url", where
// params is ":"-separated key=value pairs. A non-empty url opens a span at
// the cursor; an empty url closes the open span, if any.
//
// At most one span is open at a time. Opening a new span while one is active
// closes the previous span when it produced visible text on the same row, and
// silently discards it otherwise. A span left open across a row change is
// truncated to its starting row, extended to the full row width.
func (in *Interpreter) parseHyperlink(payload string, cursorRow, cursorCol, cols int) []Action {
	params, url, found := strings.Cut(payload, ";")
	if !found {
		return nil
	}

	var id *string
	for _, pair := range strings.Split(params, ":") {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		if key == "id" {
			v := value
			id = &v
		}
		// Other params are ignored without error.
	}

	if url == "" {
		// Explicit close.
		if in.activeLink == nil {
			return nil
		}
		actions := in.closeLink(cursorRow, cursorCol, cols, false)
		in.activeLink = nil
		return actions
	}

	// Open, replacing any active span.
	var actions []Action
	if in.activeLink != nil {
		actions = in.closeLink(cursorRow, cursorCol, cols, true)
	}
	in.activeLink = &openLink{
		url:      url,
		id:       id,
		startRow: cursorRow,
		startCol: cursorCol,
	}
	return actions
}

// closeLink emits the segment for the active span, if it earned one.
//
// On the starting row the span runs from its start column to the cursor; a
// zero-width span emits nothing. When the cursor has left the starting row, a
// replacement discards the span outright, while an explicit close pads the
// span to the full width of its starting row — the text it covered wrapped or
// scrolled, and the start row is the only row the span can still label.
func (in *Interpreter) closeLink(cursorRow, cursorCol, cols int, replacing bool) []Action {
	link := in.activeLink
	if link.startRow == cursorRow {
		if link.startCol < cursorCol {
			return []Action{addSegment(link.startRow, link.startCol, cursorCol, SegmentHyperlink, link.url, in.promptID)}
		}
		return nil
	}
	if replacing {
		return nil
	}
	return []Action{addSegment(link.startRow, link.startCol, cols, SegmentHyperlink, link.url, in.promptID)}
}
