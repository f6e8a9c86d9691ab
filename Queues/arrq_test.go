package Queues

import (
	"errors"
	"math/rand"
	"testing"
)

var rg = *rand.New(rand.NewSource(0))

func TestArrayQueue_Empty(t *testing.T) {
	q := MakeArrayQueue[int](0)
	if !q.Empty() || q.Size() != 0 {
		t.Fatalf("new queue not empty")
	}
	if _, e := q.Pop(); e == nil {
		t.Fatalf("pop on empty queue succeeded")
	} else if qe := new(EmptyQueueError); !errors.As(e, &qe) {
		t.Fatalf("wrong error %v", e)
	}
	if q.Peek() != 0 {
		t.Fatalf("peek on empty queue is %d", q.Peek())
	}
}

func TestArrayQueue_FIFO(t *testing.T) {
	for _, initCap := range []uint{0, 1, 3, 64} {
		q := MakeArrayQueue[int](initCap)
		var want []int
		next := 0
		for range 10000 {
			if rg.Intn(3) != 0 {
				q.Push(next)
				want = append(want, next)
				next++
			} else if len(want) > 0 {
				if q.Peek() != want[0] {
					t.Fatalf("peek %d, want %d", q.Peek(), want[0])
				}
				v, e := q.Pop()
				if e != nil || v != want[0] {
					t.Fatalf("pop %d %v, want %d", v, e, want[0])
				}
				want = want[1:]
			}
			if q.Size() != uint(len(want)) {
				t.Fatalf("size is %d, want %d", q.Size(), len(want))
			}
			if rg.Intn(500) == 0 {
				q.Shrink()
			}
		}
		for _, w := range want {
			if v, _ := q.Pop(); v != w {
				t.Fatalf("pop %d, want %d", v, w)
			}
		}
		if !q.Empty() {
			t.Fatalf("queue not drained")
		}
	}
}

func TestArrayQueue_Clear(t *testing.T) {
	q := MakeArrayQueue[string](2)
	q.Push("a")
	q.Push("b")
	q.Push("c")
	q.Clear()
	if !q.Empty() {
		t.Fatalf("queue not empty after clear")
	}
	q.Push("d")
	if v, _ := q.Pop(); v != "d" {
		t.Fatalf("pop %q, want %q", v, "d")
	}
}
