package window

// ring is a fixed-size circular FIFO. It never grows; callers keep
// size <= len(buf).
type ring[T any] struct {
	buf  []T
	head int // index of the oldest element
	size int
}

func newRing[T any](n int) ring[T] {
	return ring[T]{buf: make([]T, n)}
}

func (r *ring[T]) len() int { return r.size }

// push appends v at the tail. The caller guarantees there is room.
func (r *ring[T]) push(v T) {
	r.buf[(r.head+r.size)%len(r.buf)] = v
	r.size++
}

// popFront removes and returns the oldest element.
func (r *ring[T]) popFront() T {
	var zero T
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.size--

	return v
}

// at returns the i-th element counted from the oldest (0-based).
func (r *ring[T]) at(i int) T {
	return r.buf[(r.head+i)%len(r.buf)]
}

func (r *ring[T]) set(i int, v T) {
	r.buf[(r.head+i)%len(r.buf)] = v
}

func (r *ring[T]) reset() {
	var zero T
	for i := range r.buf {
		r.buf[i] = zero
	}
	r.head, r.size = 0, 0
}
