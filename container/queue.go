package container

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Queue is a first-in-first-out container.
type Queue[T any] interface {
	Enqueue(elem T) (Queue[T], error)
	Dequeue() (T, error)
	Peek() (T, error)
	IsEmpty() bool
	Len() int
	String() string
}

var _ Queue[int] = (*LinkedQueue[int])(nil)

// LinkedQueue is a FIFO queue over a doubly linked chain of nodes. The
// nodes live in an arena owned by the queue and link to each other by
// handle. The zero value is an empty queue ready to use.
//
// A LinkedQueue is not safe for concurrent use.
type LinkedQueue[T any] struct {
	nodes []node[T]
	head  handle
	tail  handle
	free  handle
	count int
}

func NewLinkedQueue[T any]() *LinkedQueue[T] {
	return &LinkedQueue[T]{}
}

// Enqueue appends elem at the tail and returns the queue. A nil elem of a
// nillable type is rejected with ErrInvalidArgument and the queue is left
// untouched.
func (q *LinkedQueue[T]) Enqueue(elem T) (Queue[T], error) {
	if isAbsent(elem) {
		return nil, errors.Wrapf(ErrInvalidArgument, "cannot enqueue nil %s", typeName[T]())
	}

	h := q.alloc(elem)
	if q.IsEmpty() {
		q.head = h
	} else {
		q.at(q.tail).next = h
		q.at(h).prev = q.tail
	}
	q.tail = h
	q.count++
	return q, nil
}

// Dequeue removes and returns the element at the head.
func (q *LinkedQueue[T]) Dequeue() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, errors.Wrap(ErrEmptyContainer, "cannot dequeue from an empty queue")
	}

	first := q.head
	n := q.at(first)
	elem := n.element
	if first == q.tail {
		q.head = noNode
		q.tail = noNode
	} else {
		q.head = n.next
		q.at(q.head).prev = noNode
	}
	q.release(first)
	q.count--
	return elem, nil
}

// Peek returns the element at the head without removing it.
func (q *LinkedQueue[T]) Peek() (T, error) {
	if q.IsEmpty() {
		var zero T
		return zero, errors.Wrap(ErrEmptyContainer, "cannot peek into an empty queue")
	}
	return q.at(q.head).element, nil
}

func (q *LinkedQueue[T]) IsEmpty() bool {
	return q.count == 0
}

func (q *LinkedQueue[T]) Len() int {
	return q.count
}

// String renders the elements head to tail as [e1, e2, ..., eN].
func (q *LinkedQueue[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	h := q.head
	for i := 0; i < q.count; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		n := q.at(h)
		fmt.Fprintf(&sb, "%v", n.element)
		h = n.next
	}
	sb.WriteString("]")
	return sb.String()
}
