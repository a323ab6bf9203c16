package config

import (
	"errors"

	"github.com/ezrec/ucode/translate"
)

var f = translate.From

var (
	ErrWordBits  = errors.New(f("word_bits out of range"))
	ErrTickLimit = errors.New(f("tick_limit must not be negative"))
	ErrDataSize  = errors.New(f("data_size too small"))
)

// ErrValue is a configuration global of the wrong type.
type ErrValue struct {
	Name string
	Type string
}

func (err ErrValue) Error() string {
	return f("%v: expected %v", err.Name, err.Type)
}

// ErrScript locates an error in a configuration script.
type ErrScript struct {
	Name string
	Err  error
}

func (err ErrScript) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err ErrScript) Unwrap() error {
	return err.Err
}
