package Queues

// circArrQ is a FIFO queue on a circular slice. head is the index of the first
// item, tail the index one past the last; sz disambiguates full from empty.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue returns an empty ArrayQueue that can hold initCap items before growing.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{0, 0, 0, make([]T, initCap)}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize the content to newLen>=sz, unrolling the items so that head becomes 0.
// Time: O(sz)
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.head < u.tail || u.sz == 0 {
		copy(nc, u.content[u.head:u.head+u.sz])
	} else {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:u.tail])
	}
	u.content, u.head = nc, 0
	u.tail = u.sz
	if u.tail == newLen {
		u.tail = 0
	}
}

func (u *circArrQ[T]) Shrink() {
	u.resize(u.sz | 1)
}

// Clear the queue. Items are zeroed so that they can be collected.
func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

// Push item to the back.
// Time: amortized O(1)
func (u *circArrQ[T]) Push(item T) {
	if u.sz == uint(len(u.content)) {
		u.resize(u.sz+u.sz>>1+2)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

// Pop the front item. Returns *EmptyQueueError if the queue is empty.
// Time: O(1)
func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

// Peek the front item, the zero value if empty.
func (u *circArrQ[T]) Peek() (item T) {
	if !u.Empty() {
		item = u.content[u.head]
	}
	return
}
