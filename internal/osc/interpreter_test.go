package osc

import "testing"

func TestParseUnknownCommand(t *testing.T) {
	in := NewInterpreter()

	for _, cmd := range []int{0, 1, 2, 7, 10, 100, 1336} {
		if actions := in.Parse(cmd, "anything", 0, 0, 80); len(actions) != 0 {
			t.Errorf("command %d must be ignored, got %d actions", cmd, len(actions))
		}
	}
}

func TestParseActionOrdering(t *testing.T) {
	in := NewInterpreter()

	// Replacing an active hyperlink must emit the closing segment for the old
	// span before any state for the new one takes effect.
	in.Parse(CmdHyperlink, ";https://a.com", 0, 0, 80)
	actions := in.Parse(CmdHyperlink, ";https://b.com", 0, 5, 80)

	if len(actions) != 1 {
		t.Fatalf("expected closing segment for a.com, got %d actions", len(actions))
	}
	if actions[0].Metadata != "https://a.com" {
		t.Errorf("closing segment must reference the replaced span, got %q", actions[0].Metadata)
	}
}

func TestMalformedPayloadsLeaveStateUntouched(t *testing.T) {
	// Run a known-good session twice, the second time with malformed payloads
	// interleaved. Both must produce identical actions.
	run := func(in *Interpreter, noise bool) []Action {
		var out []Action
		step := func(cmd int, payload string, row, col int) {
			out = append(out, in.Parse(cmd, payload, row, col, 80)...)
		}

		step(CmdShellIntegration, "A", 0, 0)
		if noise {
			step(CmdClipboard, "no-separator", 0, 2)
			step(CmdHyperlink, "no-separator", 0, 2)
			step(CmdRxvtNotify, "wrong;sub;cmd", 0, 2)
			step(CmdShellIntegration, "Q", 0, 2)
			step(4242, "unknown", 0, 2)
		}
		step(CmdShellIntegration, "B", 0, 6)
		step(CmdHyperlink, ";https://x.com", 0, 6)
		if noise {
			step(CmdClipboard, "c;?", 0, 9)
			step(CmdITerm, "Unknown=thing", 0, 9)
		}
		step(CmdHyperlink, ";", 0, 14)
		step(CmdShellIntegration, "D;1", 0, 14)
		return out
	}

	clean := run(NewInterpreter(), false)
	noisy := run(NewInterpreter(), true)

	if len(clean) != len(noisy) {
		t.Fatalf("malformed input changed the action stream: %d vs %d actions", len(clean), len(noisy))
	}
	for i := range clean {
		if !actionsEqual(clean[i], noisy[i]) {
			t.Errorf("action %d diverged: %+v vs %+v", i, clean[i], noisy[i])
		}
	}
}

// actionsEqual compares actions including the optional title pointer.
func actionsEqual(a, b Action) bool {
	if a.Kind != b.Kind || a.Row != b.Row || a.StartCol != b.StartCol ||
		a.EndCol != b.EndCol || a.Type != b.Type || a.Metadata != b.Metadata ||
		a.PromptID != b.PromptID || a.Shape != b.Shape ||
		a.Selection != b.Selection || a.Data != b.Data ||
		a.Body != b.Body || a.Urgency != b.Urgency {
		return false
	}
	if (a.Title == nil) != (b.Title == nil) {
		return false
	}
	if a.Title != nil && *a.Title != *b.Title {
		return false
	}
	return true
}

func TestSegmentInvariantStartBeforeEnd(t *testing.T) {
	in := NewInterpreter()

	var all []Action
	feed := func(cmd int, payload string, row, col int) {
		all = append(all, in.Parse(cmd, payload, row, col, 80)...)
	}

	feed(CmdShellIntegration, "A", 0, 0)
	feed(CmdShellIntegration, "B", 0, 4)
	feed(CmdShellIntegration, "C", 0, 12)
	feed(CmdShellIntegration, "D;0", 1, 0)
	feed(CmdHyperlink, ";https://x.com", 2, 3)
	feed(CmdHyperlink, ";", 2, 9)
	feed(CmdITerm, "AddAnnotation=note", 3, 0)

	for _, a := range all {
		if a.Kind != ActionAddSegment {
			continue
		}
		if a.StartCol > a.EndCol {
			t.Errorf("segment with start > end: %+v", a)
		}
		if a.StartCol == a.EndCol && a.Type != SegmentCommandFinished {
			t.Errorf("zero-width segment outside finished markers: %+v", a)
		}
	}
}
