package cpu

// AluOp is an ALU operation selector.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0) // add
	ALU_OP_SUB = AluOp(1) // sub
	ALU_OP_MUL = AluOp(2) // mul
	ALU_OP_AND = AluOp(3) // and
)

// Flags is the 2-bit 'NZ' flag register of the ALU.
type Flags int

const (
	FLAG_NONE     = Flags(0b00)
	FLAG_ZERO     = Flags(0b01)
	FLAG_NEGATIVE = Flags(0b10)
)

// Zero is set when the last result was exactly zero.
func (fl Flags) Zero() bool {
	return fl == FLAG_ZERO
}

// Negative is set when the last result was below zero.
func (fl Flags) Negative() bool {
	return fl == FLAG_NEGATIVE
}

func (fl Flags) String() string {
	switch fl {
	case FLAG_ZERO:
		return "Z"
	case FLAG_NEGATIVE:
		return "N"
	case FLAG_NONE:
		return "-"
	}
	return "?"
}

// FlagsOf computes the flags for a value.
func FlagsOf(value int64) Flags {
	switch {
	case value == 0:
		return FLAG_ZERO
	case value < 0:
		return FLAG_NEGATIVE
	}
	return FLAG_NONE
}

// Word width limits. Products of two in-range words must fit in an int64.
const (
	WORD_BITS_MIN     = 8
	WORD_BITS_MAX     = 32
	WORD_BITS_DEFAULT = 32
)

// Range is the signed range of a machine word.
type Range struct {
	Min int64
	Max int64
}

// WordRange returns the two's complement range of a word of the given width.
func WordRange(bits int) Range {
	return Range{
		Min: -(int64(1) << (bits - 1)),
		Max: (int64(1) << (bits - 1)) - 1,
	}
}

// Contains returns true if value is within the range.
func (rng Range) Contains(value int64) bool {
	return value >= rng.Min && value <= rng.Max
}

// Wrap reduces value into the range modulo its span.
func (rng Range) Wrap(value int64) int64 {
	if rng.Contains(value) {
		return value
	}

	span := rng.Max - rng.Min + 1
	offset := (value - rng.Min) % span
	if offset < 0 {
		offset += span
	}

	return offset + rng.Min
}

// Alu is the combinational arithmetic unit. Result and Flags hold the
// outputs of the last operation.
type Alu struct {
	Range  Range
	Result int64
	Flags  Flags
}

// NewAlu creates an ALU for a word width.
func NewAlu(bits int) (alu *Alu) {
	alu = &Alu{
		Range: WordRange(bits),
	}
	return
}

// Compute performs op on left and right, wrapping the result into range
// and updating the flags.
func (alu *Alu) Compute(left, right int64, op AluOp) (result int64, flags Flags, err error) {
	switch op {
	case ALU_OP_ADD:
		result = left + right
	case ALU_OP_SUB:
		result = left - right
	case ALU_OP_MUL:
		result = left * right
	case ALU_OP_AND:
		result = left & right
	default:
		err = ErrAluOp
		return
	}

	result = alu.Range.Wrap(result)
	flags = FlagsOf(result)

	alu.Result = result
	alu.Flags = flags

	return
}
