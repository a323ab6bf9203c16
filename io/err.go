package io

import (
	"errors"

	"github.com/ezrec/ucode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull = errors.New(f("channel full"))
	ErrBufferEmpty = errors.New(f("empty buffer"))
)
