package Queues

// Queue is a FIFO queue.
type Queue[T any] interface {
	Push(item T)
	//Pop removes and returns the front item, or a non nil error if there's none.
	Pop() (T, error)
	//Peek the front item without removing it.
	Peek() T
	Empty() bool
}

// ArrayQueue is a Queue backed by a single growable slice.
type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the backing slice to fit the current items.
	Shrink()
	Clear()
	Size() uint
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
