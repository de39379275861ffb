package widget

// lineRing is a bounded ring buffer of display lines. Pushing onto a full
// ring evicts the oldest line, which is exactly the "slide the window
// forward" operation the window selectors need.
type lineRing struct {
	lines    []displayLine
	head     int
	count    int
	capacity int
}

func newLineRing(capacity int) *lineRing {
	if capacity < 0 {
		capacity = 0
	}
	return &lineRing{
		lines:    make([]displayLine, capacity),
		capacity: capacity,
	}
}

// push appends a line. If the ring is full, the oldest line is evicted.
// A zero-capacity ring drops everything.
func (r *lineRing) push(dl displayLine) {
	if r.capacity == 0 {
		return
	}
	tail := (r.head + r.count) % r.capacity
	r.lines[tail] = dl
	if r.count < r.capacity {
		r.count++
	} else {
		r.head = (r.head + 1) % r.capacity
	}
}

// full reports whether the ring has reached capacity.
func (r *lineRing) full() bool {
	return r.count == r.capacity
}

// grow raises the ring's capacity, preserving order. Capacities never
// shrink.
func (r *lineRing) grow(capacity int) {
	if capacity <= r.capacity {
		return
	}
	r.lines = r.slice()
	r.lines = append(r.lines, make([]displayLine, capacity-r.count)...)
	r.head = 0
	r.capacity = capacity
}

// slice returns the buffered lines in order, oldest first.
func (r *lineRing) slice() []displayLine {
	out := make([]displayLine, 0, r.count)
	for i := 0; i < r.count; i++ {
		out = append(out, r.lines[(r.head+i)%r.capacity])
	}
	return out
}
