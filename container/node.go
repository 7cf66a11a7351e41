package container

import "reflect"

// handle addresses a node slot in a queue's arena. Slot i lives at
// nodes[i-1] so that the zero handle can mean "no node".
type handle uint32

const noNode handle = 0

type node[T any] struct {
	element T
	next    handle
	prev    handle
}

func (q *LinkedQueue[T]) at(h handle) *node[T] {
	return &q.nodes[h-1]
}

// alloc takes a slot from the free list, growing the arena when the list
// is empty.
func (q *LinkedQueue[T]) alloc(elem T) handle {
	if q.free != noNode {
		h := q.free
		n := q.at(h)
		q.free = n.next
		*n = node[T]{element: elem}
		return h
	}
	q.nodes = append(q.nodes, node[T]{element: elem})
	return handle(len(q.nodes))
}

// release zeroes the slot and pushes it onto the free list. Free slots
// are chained through next.
func (q *LinkedQueue[T]) release(h handle) {
	*q.at(h) = node[T]{next: q.free}
	q.free = h
}

func isAbsent(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
		return v.IsNil()
	}
	return false
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
