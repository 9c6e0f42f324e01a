package segment

import (
	"sort"
	"sync"

	"github.com/dshills/termsense/internal/osc"
)

// DefaultMaxRows bounds how many distinct rows a store tracks before the
// oldest rows are evicted.
const DefaultMaxRows = 10000

// Span is a labeled column range on one row.
type Span struct {
	StartCol int
	EndCol   int
	Type     osc.SemanticType
	Metadata string
	PromptID int
}

// Placed is a span together with its row, for queries that cross rows.
type Placed struct {
	Row int
	Span
}

// Store holds the semantic segments of one terminal session, indexed by row.
type Store struct {
	mu      sync.RWMutex
	rows    map[int][]Span
	maxRows int
}

// NewStore creates a store bounded to maxRows distinct rows. Values <= 0 use
// DefaultMaxRows.
func NewStore(maxRows int) *Store {
	if maxRows <= 0 {
		maxRows = DefaultMaxRows
	}
	return &Store{
		rows:    make(map[int][]Span),
		maxRows: maxRows,
	}
}

// Apply ingests an interpreter action. Actions other than AddSegment are
// ignored; they belong to other consumers.
func (s *Store) Apply(a osc.Action) {
	if a.Kind != osc.ActionAddSegment {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	span := Span{
		StartCol: a.StartCol,
		EndCol:   a.EndCol,
		Type:     a.Type,
		Metadata: a.Metadata,
		PromptID: a.PromptID,
	}

	spans := s.rows[a.Row]
	// Keep each row ordered by start column; arrival order breaks ties.
	idx := sort.Search(len(spans), func(i int) bool {
		return spans[i].StartCol > span.StartCol
	})
	spans = append(spans, Span{})
	copy(spans[idx+1:], spans[idx:])
	spans[idx] = span
	s.rows[a.Row] = spans

	s.evictOverflowLocked()
}

// Row returns a copy of the spans on the given row, ordered by start column.
func (s *Store) Row(row int) []Span {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spans := s.rows[row]
	if len(spans) == 0 {
		return nil
	}
	out := make([]Span, len(spans))
	copy(out, spans)
	return out
}

// ByPrompt returns all spans belonging to one prompt cycle, ordered by row
// then start column.
func (s *Store) ByPrompt(promptID int) []Placed {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Placed
	for row, spans := range s.rows {
		for _, span := range spans {
			if span.PromptID == promptID {
				out = append(out, Placed{Row: row, Span: span})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].StartCol < out[j].StartCol
	})
	return out
}

// RowCount returns the number of rows holding at least one span.
func (s *Store) RowCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

// Clip truncates spans to the given width, for a terminal that narrowed.
// Spans entirely beyond the width are dropped; zero-width markers sitting at
// or before the new edge survive.
func (s *Store) Clip(cols int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for row, spans := range s.rows {
		kept := spans[:0]
		for _, span := range spans {
			if span.StartCol > cols {
				continue
			}
			if span.EndCol > cols {
				span.EndCol = cols
			}
			if span.StartCol == span.EndCol && span.Type != osc.SegmentCommandFinished {
				continue
			}
			kept = append(kept, span)
		}
		if len(kept) == 0 {
			delete(s.rows, row)
			continue
		}
		s.rows[row] = kept
	}
}

// Evict drops all rows before the given row, for scrollback eviction.
func (s *Store) Evict(beforeRow int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for row := range s.rows {
		if row < beforeRow {
			delete(s.rows, row)
		}
	}
}

// Clear drops every span.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = make(map[int][]Span)
}

// evictOverflowLocked drops the lowest rows until the store fits its bound.
// Rows grow downward, so the lowest indices are the oldest.
func (s *Store) evictOverflowLocked() {
	if len(s.rows) <= s.maxRows {
		return
	}

	rows := make([]int, 0, len(s.rows))
	for row := range s.rows {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	for _, row := range rows {
		if len(s.rows) <= s.maxRows {
			break
		}
		delete(s.rows, row)
	}
}
