package widget

// selPhase tracks where the selection's display-line span sits relative to
// the scan position. The selection occupies one contiguous run of
// mustDisplay lines, so the phase only ever moves forward:
// notSeen -> started -> complete.
type selPhase int

const (
	selNotSeen selPhase = iota
	selStarted
	selComplete
)

// selState is the selection-visibility state machine run over the display
// line stream.
type selState struct {
	phase selPhase
	start int
}

// observe feeds one line into the state machine. The first mustDisplay line
// records the selection's start index; the first non-mustDisplay line after
// that completes the span. complete is terminal.
func (s *selState) observe(mustDisplay bool, index int) {
	switch {
	case s.phase == selNotSeen && mustDisplay:
		s.phase = selStarted
		s.start = index
	case s.phase == selStarted && !mustDisplay:
		s.phase = selComplete
	}
}

// window tracks the top of the display window during selection scroll.
//
// When possible the lines on screen should stay the same even as the
// selection changes; goal holds the previous render's top for that. The top
// may advance past the goal to bring the whole selection on screen, but once
// restricted it never advances past the selection's first line, so the start
// of the selection cannot be scrolled off the top of the viewport.
type window struct {
	goal        int
	top         int
	restriction int
	restricted  bool
}

// restrict pins the window's upper bound to the selection's start the first
// time the selection is seen. Idempotent.
func (w *window) restrict(s selState) {
	if !w.restricted && s.phase == selStarted {
		w.restricted = true
		w.restriction = s.start
	}
}

// advance moves the top of the window forward by one line.
func (w *window) advance() {
	w.top++
}

// aligned reports whether the top has reached or passed the goal.
func (w *window) aligned() bool {
	return w.top >= w.goal
}

// atRestriction reports whether the top has reached the restriction.
func (w *window) atRestriction() bool {
	return w.restricted && w.top >= w.restriction
}

// selectionScroll selects the viewport slice so the selection is fully
// visible when it fits, pinned to its first line when it does not, and
// scrolling is otherwise minimal. The final top is persisted into state so
// the next render starts from it. Single forward pass; exits as soon as the
// window stabilizes.
func selectionScroll(lines lineIter, height int, state *ListState) []displayLine {
	if height <= 0 {
		return nil
	}

	w := window{goal: state.first}
	var sel selState
	ring := newLineRing(height)

scan:
	for i := 0; ; i++ {
		dl, ok := lines.next()
		if !ok {
			break
		}
		sel.observe(dl.mustDisplay, i)
		w.restrict(sel)

		// Fill the window before advancing it.
		if !ring.full() {
			ring.push(dl)
			continue
		}

		switch sel.phase {
		case selNotSeen:
			// Selection hasn't appeared yet; keep sliding toward it
			// (and toward the remembered position).
			w.advance()
			ring.push(dl)
		case selStarted:
			// Advance until the selection's first line reaches the
			// top. This covers the selection having moved above the
			// previously displayed lines.
			if w.atRestriction() {
				break scan
			}
			w.advance()
			ring.push(dl)
		case selComplete:
			// The whole selection is buffered; stop on alignment or
			// restriction. This covers the selection having moved
			// below the window, and selections taller than it.
			if w.aligned() || w.atRestriction() {
				break scan
			}
			w.advance()
			ring.push(dl)
		}
	}

	state.setPos(w.top)
	return ring.slice()
}

// fixed renders the selection starting at a fixed row of the viewport,
// scrolling the content around a stationary highlight. The buffer is
// pre-filled with `at` blank lines; once the selection starts, the buffer
// grows to the viewport height and fills up, evicting filler (and any
// preceding content) from the front.
//
// An offset larger than the viewport is clamped to the viewport height, so
// an oversized offset degrades to a bottom-aligned selection instead of
// overflowing the window.
func fixed(lines lineIter, at, height int, _ *ListState) []displayLine {
	if height <= 0 {
		return nil
	}
	if at > height {
		at = height
	}
	if at < 0 {
		at = 0
	}

	var sel selState
	ring := newLineRing(at)
	for i := 0; i < at; i++ {
		ring.push(fillerLine())
	}

	for i := 0; ; i++ {
		dl, ok := lines.next()
		if !ok {
			break
		}
		sel.observe(dl.mustDisplay, i)
		if sel.phase == selNotSeen {
			ring.push(dl)
			continue
		}
		ring.grow(height)
		ring.push(dl)
		if ring.full() {
			break
		}
	}
	return ring.slice()
}
