package cpu

import (
	"errors"

	"github.com/ezrec/ucode/translate"
)

var f = translate.From

var (
	// Control unit errors
	ErrDecode       = errors.New(f("decode"))
	ErrSignal       = errors.New(f("signal invalid"))
	ErrMuxInvalid   = errors.New(f("mux invalid"))
	ErrOperandIndex = errors.New(f("operand index invalid"))
	ErrStopped      = errors.New(f("control unit stopped"))

	// Datapath errors
	ErrAluOp             = errors.New(f("alu operation invalid"))
	ErrRegisterInvalid   = errors.New(f("register invalid"))
	ErrRegisterImmutable = errors.New(f("register is immutable"))
	ErrAddressInvalid    = errors.New(f("address invalid"))
	ErrCellReadOnly      = errors.New(f("write to read-only cell"))
	ErrCellWriteOnly     = errors.New(f("read from write-only cell"))

	// Image errors
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrDataInvalid        = errors.New(f("data invalid"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrFieldRange         = errors.New(f("value does not fit in 16 bits"))
)

// ErrOpcodeFlag is an opcode and flag pair missing from the decode table.
type ErrOpcodeFlag struct {
	Opcode Opcode
	Flag   int
}

func (err ErrOpcodeFlag) Error() string {
	return f("opcode %v flag %d not decodable", err.Opcode, err.Flag)
}

func (err ErrOpcodeFlag) Is(target error) bool {
	return target == ErrDecode
}

// ErrRegister is an out-of-range register index.
type ErrRegister int

func (er ErrRegister) Error() string {
	return f("register r%d does not exist", int(er))
}

func (er ErrRegister) Is(err error) bool {
	return err == ErrRegisterInvalid
}

// ErrOperand is an operand field index outside {0, 1, 2}.
type ErrOperand int

func (eo ErrOperand) Error() string {
	return f("operand index %d invalid", int(eo))
}

func (eo ErrOperand) Is(err error) bool {
	return err == ErrOperandIndex
}

// ErrAddress is an out-of-range memory address.
type ErrAddress struct {
	Memory  string
	Address int
}

func (ea ErrAddress) Error() string {
	return f("%v address %d out of range", ea.Memory, ea.Address)
}

func (ea ErrAddress) Is(err error) bool {
	return err == ErrAddressInvalid
}

// ErrMux is a multiplexer driven with a selector outside its domain.
type ErrMux struct {
	Mux    string
	Signal Signal
}

func (em ErrMux) Error() string {
	return f("%v mux: invalid selector %v", em.Mux, em.Signal)
}

func (em ErrMux) Is(err error) bool {
	return err == ErrMuxInvalid
}

// ErrInstructionText is an instruction image line that is not a
// 32-character binary word.
type ErrInstructionText string

func (err ErrInstructionText) Error() string {
	return f("'%v' is not a 32-bit binary instruction", string(err))
}

func (err ErrInstructionText) Is(target error) bool {
	return target == ErrInstructionInvalid
}

// ErrDataText is a data image line that is not a binary integer.
type ErrDataText string

func (err ErrDataText) Error() string {
	return f("'%v' is not a binary integer", string(err))
}

func (err ErrDataText) Is(target error) bool {
	return target == ErrDataInvalid
}

// ErrImage locates an error in a program image.
type ErrImage struct {
	LineNo int
	Err    error
}

func (err ErrImage) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err ErrImage) Unwrap() error {
	return err.Err
}

// ErrStep identifies the signal whose execution failed.
type ErrStep struct {
	Mpc    int
	Signal Signal
	Err    error
}

func (err *ErrStep) Error() string {
	return f("mpc %d %v: %v", err.Mpc, err.Signal, err.Err)
}

func (err *ErrStep) Unwrap() error {
	return err.Err
}

// ErrSyntax locates an assembler error.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

func (err ErrParseRegister) Is(target error) bool {
	return target == ErrRegisterInvalid
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
