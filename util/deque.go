package util

// Deque is a ring buffer used as a LIFO work stack.
// Elements returned by RemoveFirst are copies; nil means empty.
type Deque[T any] struct {
	buf   []T
	head  int
	count int
}

func NewDeque[T any]() *Deque[T] {
	return &Deque[T]{buf: make([]T, 16)}
}

func (d *Deque[T]) grow() {
	if d.count < len(d.buf) {
		return
	}
	newBuf := make([]T, len(d.buf)*2)
	for i := 0; i < d.count; i++ {
		newBuf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf = newBuf
	d.head = 0
}

func (d *Deque[T]) AddFirst(v T) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.count++
}

func (d *Deque[T]) RemoveFirst() *T {
	if d.count == 0 {
		return nil
	}
	var zero T
	v := d.buf[d.head]
	d.buf[d.head] = zero
	d.head = (d.head + 1) % len(d.buf)
	d.count--
	return &v
}

func (d *Deque[T]) IsEmpty() bool {
	return d.count == 0
}
