package io

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestControllerInput(t *testing.T) {
	assert := assert.New(t)

	ctl := NewController("A")
	assert.Equal([]int64{'A', INPUT_SENTINEL}, ctl.Input.Pending())

	value, err := ctl.Read()
	assert.NoError(err)
	assert.Equal(int64(65), value)

	value, err = ctl.Read()
	assert.NoError(err)
	assert.Equal(int64(INPUT_SENTINEL), value)

	_, err = ctl.Read()
	assert.ErrorIs(err, ErrBufferEmpty)
}

func TestControllerUnicode(t *testing.T) {
	assert := assert.New(t)

	ctl := NewController("añ€")
	assert.Equal([]int64{'a', 'ñ', '€', INPUT_SENTINEL}, ctl.Input.Pending())

	ctl = NewController("")
	assert.Equal([]int64{INPUT_SENTINEL}, ctl.Input.Pending())
}

func TestControllerOutput(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer

	ctl := NewController("")
	assert.NoError(ctl.Write('h'))

	ctl.Echo = &Tape{Output: &buf}
	assert.NoError(ctl.Write('i'))
	assert.NoError(ctl.Write('€'))

	assert.Equal([]int64{'h', 'i', '€'}, ctl.Output)
	assert.Equal("hi€", ctl.Text())
	assert.Equal("i€", buf.String())
}

func TestControllerEchoFull(t *testing.T) {
	assert := assert.New(t)

	ctl := NewController("")
	ctl.Echo = NewFifo()

	assert.ErrorIs(ctl.Write(1), ErrChannelFull)
	assert.Equal([]int64{1}, ctl.Output)
}
