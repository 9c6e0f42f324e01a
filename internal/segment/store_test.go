package segment

import (
	"testing"

	"github.com/dshills/termsense/internal/osc"
)

func seg(row, start, end int, typ osc.SemanticType, meta string, prompt int) osc.Action {
	return osc.Action{
		Kind:     osc.ActionAddSegment,
		Row:      row,
		StartCol: start,
		EndCol:   end,
		Type:     typ,
		Metadata: meta,
		PromptID: prompt,
	}
}

func TestStoreApplyAndRow(t *testing.T) {
	s := NewStore(0)

	s.Apply(seg(2, 10, 20, osc.SegmentCommandInput, "", 1))
	s.Apply(seg(2, 0, 10, osc.SegmentPrompt, "", 1))
	s.Apply(seg(3, 0, 5, osc.SegmentPrompt, "", 2))

	spans := s.Row(2)
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans on row 2, got %d", len(spans))
	}
	if spans[0].StartCol != 0 || spans[1].StartCol != 10 {
		t.Errorf("spans must be ordered by start column, got %+v", spans)
	}
	if s.RowCount() != 2 {
		t.Errorf("expected 2 rows, got %d", s.RowCount())
	}
}

func TestStoreIgnoresNonSegmentActions(t *testing.T) {
	s := NewStore(0)

	s.Apply(osc.Action{Kind: osc.ActionClipboardCopy, Selection: "c", Data: "x"})
	s.Apply(osc.Action{Kind: osc.ActionSetCursorShape, Shape: osc.CursorBarLeft})

	if s.RowCount() != 0 {
		t.Errorf("non-segment actions must not be stored, got %d rows", s.RowCount())
	}
}

func TestStoreByPrompt(t *testing.T) {
	s := NewStore(0)

	s.Apply(seg(5, 0, 4, osc.SegmentPrompt, "", 3))
	s.Apply(seg(5, 4, 12, osc.SegmentCommandInput, "", 3))
	s.Apply(seg(8, 0, 0, osc.SegmentCommandFinished, "0", 3))
	s.Apply(seg(9, 0, 4, osc.SegmentPrompt, "", 4))

	placed := s.ByPrompt(3)
	if len(placed) != 3 {
		t.Fatalf("expected 3 spans for prompt 3, got %d", len(placed))
	}
	if placed[0].Row != 5 || placed[2].Row != 8 {
		t.Errorf("spans must be ordered by row, got %+v", placed)
	}
	for _, p := range placed {
		if p.PromptID != 3 {
			t.Errorf("wrong prompt id in result: %+v", p)
		}
	}
}

func TestStoreClip(t *testing.T) {
	s := NewStore(0)

	s.Apply(seg(0, 10, 60, osc.SegmentHyperlink, "https://x.com", 0))
	s.Apply(seg(0, 50, 50, osc.SegmentCommandFinished, "0", 0))
	s.Apply(seg(1, 45, 70, osc.SegmentAnnotation, "note", 0))

	s.Clip(40)

	row0 := s.Row(0)
	if len(row0) != 1 {
		t.Fatalf("expected 1 span on row 0 after clip, got %d", len(row0))
	}
	if row0[0].EndCol != 40 {
		t.Errorf("span must be truncated to the new width, got end %d", row0[0].EndCol)
	}
	if s.Row(1) != nil {
		t.Errorf("span entirely past the new width must be dropped, got %+v", s.Row(1))
	}
}

func TestStoreClipKeepsMarkersAtEdge(t *testing.T) {
	s := NewStore(0)

	s.Apply(seg(0, 40, 40, osc.SegmentCommandFinished, "1", 0))
	s.Clip(40)

	row := s.Row(0)
	if len(row) != 1 || row[0].Metadata != "1" {
		t.Errorf("zero-width marker at the edge must survive, got %+v", row)
	}
}

func TestStoreEvict(t *testing.T) {
	s := NewStore(0)

	for row := 0; row < 10; row++ {
		s.Apply(seg(row, 0, 5, osc.SegmentPrompt, "", row))
	}

	s.Evict(7)

	if s.RowCount() != 3 {
		t.Errorf("expected rows 7-9 to remain, got %d rows", s.RowCount())
	}
	if s.Row(6) != nil {
		t.Error("row 6 must be evicted")
	}
	if s.Row(7) == nil {
		t.Error("row 7 must remain")
	}
}

func TestStoreMaxRowsEvictsOldest(t *testing.T) {
	s := NewStore(3)

	for row := 0; row < 5; row++ {
		s.Apply(seg(row, 0, 5, osc.SegmentPrompt, "", row))
	}

	if s.RowCount() != 3 {
		t.Fatalf("expected store bounded to 3 rows, got %d", s.RowCount())
	}
	if s.Row(0) != nil || s.Row(1) != nil {
		t.Error("oldest rows must be evicted first")
	}
	if s.Row(4) == nil {
		t.Error("newest row must remain")
	}
}

func TestStoreClear(t *testing.T) {
	s := NewStore(0)

	s.Apply(seg(0, 0, 5, osc.SegmentPrompt, "", 0))
	s.Clear()

	if s.RowCount() != 0 {
		t.Errorf("expected empty store after clear, got %d rows", s.RowCount())
	}
}
