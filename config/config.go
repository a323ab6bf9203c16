// Package config holds the machine configuration.
//
// A configuration may be loaded from a Starlark script that assigns any
// of the globals word_bits, tick_limit, data_size and verbose:
//
//	word_bits = 16
//	tick_limit = 50 * 1000
//	data_size = DATA_MEMORY_BEGIN_ADDRESS + 256
//
// Machine constants are predeclared for use in expressions.
package config

import (
	"io"
	"iter"
	"log"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/ucode/cpu"
)

const (
	DEFAULT_TICK_LIMIT = 100_000 // Ticks before a run is abandoned.
	DEFAULT_DATA_SIZE  = 4096    // Data memory cells.
)

// Config is the machine configuration.
type Config struct {
	WordBits  int  // Width of a machine word; sets the ALU wrap range.
	TickLimit int  // Maximum ticks per run, 0 for no limit.
	DataSize  int  // Minimum data memory size in cells.
	Verbose   bool // Trace every microcode row.
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		WordBits:  cpu.WORD_BITS_DEFAULT,
		TickLimit: DEFAULT_TICK_LIMIT,
		DataSize:  DEFAULT_DATA_SIZE,
	}
}

// Range returns the signed range of a machine word.
func (cfg Config) Range() cpu.Range {
	return cpu.WordRange(cfg.WordBits)
}

// Validate checks the configuration bounds.
func (cfg Config) Validate() (err error) {
	switch {
	case cfg.WordBits < cpu.WORD_BITS_MIN || cfg.WordBits > cpu.WORD_BITS_MAX:
		err = ErrWordBits
	case cfg.TickLimit < 0:
		err = ErrTickLimit
	case cfg.DataSize < cpu.DATA_MEMORY_BEGIN_ADDRESS:
		err = ErrDataSize
	}
	return
}

// Load executes a configuration script over the default configuration.
// Integer valued defines are predeclared; others are ignored.
func Load(name string, src io.Reader, defines iter.Seq2[string, string]) (cfg Config, err error) {
	defer func() {
		if err != nil {
			err = ErrScript{Name: name, Err: err}
		}
	}()

	cfg = Default()

	prog, err := io.ReadAll(src)
	if err != nil {
		return
	}

	pred := starlark.StringDict{}
	if defines != nil {
		for key, str := range defines {
			value, perr := strconv.ParseInt(str, 0, 64)
			if perr != nil {
				continue
			}
			pred[key] = starlark.MakeInt64(value)
		}
	}

	thread := &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			log.Printf("%v: %v", name, msg)
		},
	}
	opts := syntax.FileOptions{}
	dict, err := starlark.ExecFileOptions(&opts, thread, name, prog, pred)
	if err != nil {
		return
	}

	ints := map[string]*int{
		"word_bits":  &cfg.WordBits,
		"tick_limit": &cfg.TickLimit,
		"data_size":  &cfg.DataSize,
	}
	for key, ptr := range ints {
		value, ok := dict[key]
		if !ok {
			continue
		}
		st_int, ok := value.(starlark.Int)
		if !ok {
			err = ErrValue{Name: key, Type: "int"}
			return
		}
		st_int64, ok := st_int.Int64()
		if !ok {
			err = ErrValue{Name: key, Type: "int"}
			return
		}
		*ptr = int(st_int64)
	}

	if value, ok := dict["verbose"]; ok {
		st_bool, ok := value.(starlark.Bool)
		if !ok {
			err = ErrValue{Name: "verbose", Type: "bool"}
			return
		}
		cfg.Verbose = bool(st_bool)
	}

	err = cfg.Validate()
	return
}
