package cpu

import (
	"fmt"
	"iter"
	"maps"
)

var _cpu_defines = map[string]string{
	"INPUT_CELL_ADDRESS":               fmt.Sprintf("%v", INPUT_CELL_ADDRESS),
	"OUTPUT_CELL_ADDRESS":              fmt.Sprintf("%v", OUTPUT_CELL_ADDRESS),
	"DATA_MEMORY_BEGIN_ADDRESS":        fmt.Sprintf("%v", DATA_MEMORY_BEGIN_ADDRESS),
	"INSTRUCTION_MEMORY_BEGIN_ADDRESS": fmt.Sprintf("%v", INSTRUCTION_MEMORY_BEGIN_ADDRESS),
	"REGISTER_COUNT":                   fmt.Sprintf("%v", REGISTER_COUNT),
	"SCRATCH_REGISTER":                 fmt.Sprintf("%v", SCRATCH_REGISTER),
	"WORD_BITS_MIN":                    fmt.Sprintf("%v", WORD_BITS_MIN),
	"WORD_BITS_MAX":                    fmt.Sprintf("%v", WORD_BITS_MAX),
	"MICROCODE_ROWS":                   fmt.Sprintf("%v", len(Microcode)),
}

// Defines returns an iterator over the machine constants.
func Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}
