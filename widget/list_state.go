package widget

import (
	"encoding/json"
	"fmt"
)

// ListState tracks the selection cursor for a list across renders. It is the
// only state that persists between render calls: the caller owns it and
// passes it to Render, which borrows it for the duration of the call.
//
// Panics if created or resized to a size of 0.
type ListState struct {
	size     int
	selected int
	first    int
}

// NewListState creates state for a list of length size.
func NewListState(size int) *ListState {
	s := &ListState{size: 1}
	s.Resize(size)
	return s
}

// setPos records the display line at the top of the window. Called by the
// window selector after every render so the next render starts scrolling
// from where this one ended.
func (s *ListState) setPos(pos int) {
	s.first = pos
}

// CycleNext selects the next item, wrapping to the first item at the end.
func (s *ListState) CycleNext() {
	s.selected = (s.selected + 1) % s.size
}

// CyclePrev selects the previous item, wrapping to the last item at the
// start.
func (s *ListState) CyclePrev() {
	s.selected = (s.selected + s.size - 1) % s.size
}

// Next selects the next item without wrapping.
func (s *ListState) Next() {
	s.selected = min(s.selected+1, s.size-1)
}

// Prev selects the previous item without wrapping.
func (s *ListState) Prev() {
	s.selected = max(s.selected-1, 0)
}

// Select sets the selection to n. A selection beyond the end of the list
// clamps to the last item.
func (s *ListState) Select(n int) {
	s.selected = n
	if s.selected >= s.size {
		s.selected = s.size - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
}

// Selected returns the index of the selected item.
func (s *ListState) Selected() int {
	return s.selected
}

// Resize sets the number of items in the list, re-clamping the selection if
// it is now out of range. Panics if size is less than 1.
func (s *ListState) Resize(size int) {
	if size < 1 {
		panic(fmt.Sprintf("widget: invalid ListState size %d", size))
	}
	s.size = size
	if s.selected >= s.size {
		s.selected = s.size - 1
	}
}

type listStateJSON struct {
	Size     int `json:"size"`
	Selected int `json:"selected"`
	First    int `json:"first"`
}

// MarshalJSON encodes the state's three integers for persistence across
// process runs.
func (s *ListState) MarshalJSON() ([]byte, error) {
	return json.Marshal(listStateJSON{Size: s.size, Selected: s.selected, First: s.first})
}

// UnmarshalJSON restores previously serialized state. A size of less than 1
// is rejected with an error rather than a panic, since the input may come
// from outside the process.
func (s *ListState) UnmarshalJSON(data []byte) error {
	var raw listStateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Size < 1 {
		return fmt.Errorf("widget: invalid ListState size %d", raw.Size)
	}
	s.size = raw.Size
	s.selected = raw.Selected
	if s.selected >= s.size {
		s.selected = s.size - 1
	}
	if s.selected < 0 {
		s.selected = 0
	}
	s.first = raw.First
	return nil
}
