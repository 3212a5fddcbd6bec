package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFIFO(t *testing.T) {
	a := assert.New(t)

	var q FIFO[string]
	a.Equal(0, q.Len())

	_, ok := q.Pop()
	a.False(ok)

	q.Push("a")
	q.Push("b")
	q.Push("c")
	a.Equal(3, q.Len())

	for _, expected := range []string{"a", "b", "c"} {
		item, ok := q.Pop()
		a.True(ok)
		a.Equal(expected, item)
	}

	a.Equal(0, q.Len())
	_, ok = q.Pop()
	a.False(ok)

	// usable again after draining
	q.Push("d")
	item, _ := q.Pop()
	a.Equal("d", item)
}

func TestFIFO_interleaved(t *testing.T) {
	a := assert.New(t)

	var q FIFO[int]
	q.Push(1)
	q.Push(2)

	item, _ := q.Pop()
	a.Equal(1, item)

	q.Push(3)
	for _, expected := range []int{2, 3} {
		item, ok := q.Pop()
		a.True(ok)
		a.Equal(expected, item)
	}

	a.Equal(0, q.Len())
}
