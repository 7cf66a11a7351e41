package container

import "github.com/pkg/errors"

var (
	// ErrInvalidArgument is returned by Enqueue when the element is a nil
	// pointer, interface, map, slice, channel or func.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyContainer is returned by Dequeue and Peek on an empty queue.
	ErrEmptyContainer = errors.New("empty container")
)
