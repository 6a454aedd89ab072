package pretty

import "container/heap"

// Char is a rune rendered single-quoted. Plain runes are int32 and render as
// numbers.
type Char rune

// Present implements Presenter.
func (c Char) Present(Context) string { return "'" + string(c) + "'" }

// --- Tuples ---

// Pair is a two-element tuple rendered as "(first, second)".
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns Pair{a, b}.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// PairElems implements PairLike.
func (p Pair[A, B]) PairElems() (any, any) { return p.First, p.Second }

// Tuple is a fixed-arity heterogeneous sequence rendered as "<e0, e1, ...>".
type Tuple []any

// MakeTuple returns the tuple of vs.
func MakeTuple(vs ...any) Tuple { return Tuple(vs) }

// TupleElems implements TupleLike.
func (t Tuple) TupleElems() []any { return t }

// --- Optional ---

// Optional holds zero or one value.
type Optional[T any] struct {
	v  T
	ok bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{v: v, ok: true} }

// None returns an empty Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.v, o.ok }

// IsSome reports whether a value is present.
func (o Optional[T]) IsSome() bool { return o.ok }

// OptionalValue implements OptionalLike.
func (o Optional[T]) OptionalValue() (any, bool) { return o.v, o.ok }

// --- Adapters ---

// Queue is a FIFO over a slice. It renders as its backing slice, front first.
type Queue[T any] struct {
	items []T
}

// Push appends v at the back.
func (q *Queue[T]) Push(v T) { q.items = append(q.items, v) }

// Pop removes and returns the front element.
func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	return v, true
}

// Front returns the front element without removing it.
func (q Queue[T]) Front() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.items[0], true
}

func (q Queue[T]) Len() int { return len(q.items) }

// Backing implements AdapterLike.
func (q Queue[T]) Backing() any { return q.items }

// Stack is a LIFO over a slice. It renders as its backing slice, bottom
// first.
type Stack[T any] struct {
	items []T
}

// Push places v on top.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return v, true
}

// Top returns the top element without removing it.
func (s Stack[T]) Top() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}
	return s.items[len(s.items)-1], true
}

func (s Stack[T]) Len() int { return len(s.items) }

// Backing implements AdapterLike.
func (s Stack[T]) Backing() any { return s.items }

// PriorityQueue pops the element that sorts first under less. It renders as
// its backing heap slice, in heap order.
type PriorityQueue[T any] struct {
	h *binaryHeap[T]
}

// NewPriorityQueue returns an empty queue ordered by less.
func NewPriorityQueue[T any](less func(a, b T) bool) *PriorityQueue[T] {
	return &PriorityQueue[T]{h: &binaryHeap[T]{less: less}}
}

// Push inserts v.
func (pq *PriorityQueue[T]) Push(v T) { heap.Push(pq.h, v) }

// Pop removes and returns the first element.
func (pq *PriorityQueue[T]) Pop() (T, bool) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return heap.Pop(pq.h).(T), true
}

// Top returns the first element without removing it.
func (pq *PriorityQueue[T]) Top() (T, bool) {
	if pq.h.Len() == 0 {
		var zero T
		return zero, false
	}
	return pq.h.items[0], true
}

func (pq *PriorityQueue[T]) Len() int { return pq.h.Len() }

// Backing implements AdapterLike.
func (pq *PriorityQueue[T]) Backing() any { return pq.h.items }

type binaryHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h *binaryHeap[T]) Len() int           { return len(h.items) }
func (h *binaryHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h *binaryHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *binaryHeap[T]) Push(x any)         { h.items = append(h.items, x.(T)) }

func (h *binaryHeap[T]) Pop() any {
	n := len(h.items)
	v := h.items[n-1]
	var zero T
	h.items[n-1] = zero
	h.items = h.items[:n-1]
	return v
}
