package io

import (
	"strings"
	"unicode/utf8"
)

// INPUT_SENTINEL terminates the seeded input stream.
const INPUT_SENTINEL = 0

// Controller is the I/O controller. Input is consumed strictly in order;
// Output only grows.
type Controller struct {
	Input  *Fifo
	Output []int64

	// Echo, if set, receives every value written to Output.
	Echo Channel
}

// NewController creates a controller whose input buffer holds the
// character codes of input followed by INPUT_SENTINEL.
func NewController(input string) (ctl *Controller) {
	codes := make([]int64, 0, utf8.RuneCountInString(input)+1)
	for _, r := range input {
		codes = append(codes, int64(r))
	}
	codes = append(codes, INPUT_SENTINEL)

	ctl = &Controller{
		Input: NewFifo(codes...),
	}

	return
}

// Read pops the next input value. Reading past the sentinel is an
// ErrBufferEmpty error.
func (ctl *Controller) Read() (value int64, err error) {
	return ctl.Input.Pop()
}

// Write appends a value to the output buffer.
func (ctl *Controller) Write(value int64) (err error) {
	ctl.Output = append(ctl.Output, value)

	if ctl.Echo != nil {
		err = ctl.Echo.Send(value)
	}

	return
}

// Text renders the output buffer as characters.
func (ctl *Controller) Text() string {
	var sb strings.Builder
	tape := &Tape{Output: &sb}
	for _, value := range ctl.Output {
		tape.Send(value)
	}
	return sb.String()
}
