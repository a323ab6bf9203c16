package io

import (
	"iter"
)

// Fifo is a bounded circular queue of values.
type Fifo struct {
	Capacity int // Capacity in values.

	ReadIndex  int
	WriteIndex int
	Size       int
	Data       []int64
}

var _ Channel = (*Fifo)(nil)

// NewFifo creates a FIFO holding values, with room for exactly those values.
func NewFifo(values ...int64) (fifo *Fifo) {
	fifo = &Fifo{Capacity: len(values)}
	fifo.Rewind()

	for _, value := range values {
		fifo.Send(value)
	}

	return
}

// Rewind resets the FIFO to empty, resetting indices and reinitializing
// the data buffer.
func (fifo *Fifo) Rewind() {
	fifo.ReadIndex = 0
	fifo.WriteIndex = 0
	fifo.Size = 0
	fifo.Data = make([]int64, fifo.Capacity)
}

// Empty returns true when no values are queued.
func (fifo *Fifo) Empty() bool {
	return fifo.Size == 0
}

// Pop removes and returns the oldest value.
func (fifo *Fifo) Pop() (value int64, err error) {
	if fifo.Size == 0 {
		err = ErrBufferEmpty
		return
	}

	value = fifo.Data[fifo.ReadIndex]
	fifo.ReadIndex++
	if fifo.ReadIndex == fifo.Capacity {
		fifo.ReadIndex = 0
	}
	fifo.Size--

	return
}

// Receive returns an iterator that pops values until the FIFO is empty.
func (fifo *Fifo) Receive() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		for fifo.Size > 0 {
			value, _ := fifo.Pop()
			if !yield(value) {
				return
			}
		}
	}
}

// Pending returns the queued values, oldest first, without removing them.
func (fifo *Fifo) Pending() (values []int64) {
	index := fifo.ReadIndex
	for range fifo.Size {
		values = append(values, fifo.Data[index])
		index++
		if index == fifo.Capacity {
			index = 0
		}
	}
	return
}

// Send appends a value at the current write position.
// Returns ErrChannelFull if the buffer has reached capacity.
func (fifo *Fifo) Send(value int64) (err error) {
	if fifo.Size >= fifo.Capacity {
		err = ErrChannelFull
		return
	}

	fifo.Data[fifo.WriteIndex] = value

	fifo.WriteIndex++
	if fifo.WriteIndex == fifo.Capacity {
		fifo.WriteIndex = 0
	}
	fifo.Size++

	return
}
