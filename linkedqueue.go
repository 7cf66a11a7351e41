// Package linkedqueue provides a generic FIFO queue backed by a doubly
// linked chain of nodes. The implementation lives in package container.
package linkedqueue

import "github.com/nicosta1132/linkedqueue/container"

// New returns an empty queue.
func New[T any]() container.Queue[T] {
	return container.NewLinkedQueue[T]()
}
