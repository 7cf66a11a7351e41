package linkedqueue_test

import (
	"fmt"

	"github.com/nicosta1132/linkedqueue"
	"github.com/nicosta1132/linkedqueue/container"
	"github.com/pkg/errors"
)

func Example() {
	q := linkedqueue.New[string]()
	for _, s := range []string{"a", "b", "c"} {
		if _, err := q.Enqueue(s); err != nil {
			fmt.Println(err)
			return
		}
	}
	fmt.Println(q)

	first, _ := q.Dequeue()
	fmt.Println(first, q.Len(), q)
	// Output:
	// [a, b, c]
	// a 2 [b, c]
}

func Example_empty() {
	q := linkedqueue.New[*int]()

	_, err := q.Dequeue()
	fmt.Println(err)
	fmt.Println(errors.Is(err, container.ErrEmptyContainer))

	_, err = q.Enqueue(nil)
	fmt.Println(err)
	// Output:
	// cannot dequeue from an empty queue: empty container
	// true
	// cannot enqueue nil *int: invalid argument
}
