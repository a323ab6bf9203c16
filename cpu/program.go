package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Program is a pair of instruction and data images, as produced by the
// translator.
type Program struct {
	Instructions []Instruction
	Data         []int64
}

// Listing yields each instruction with the program counter value that
// fetches it.
func (prog *Program) Listing() iter.Seq2[int, Instruction] {
	return func(yield func(pc int, ins Instruction) bool) {
		for n, ins := range prog.Instructions {
			if !yield(n+INSTRUCTION_MEMORY_BEGIN_ADDRESS, ins) {
				return
			}
		}
	}
}

// At returns the instruction fetched at program counter pc.
func (prog *Program) At(pc int) (ins Instruction, ok bool) {
	index := pc - INSTRUCTION_MEMORY_BEGIN_ADDRESS
	if index < 0 || index >= len(prog.Instructions) {
		return
	}

	return prog.Instructions[index], true
}

// Binary returns the text images of the program, one word per line.
func (prog *Program) Binary() (code []string, data []string) {
	for _, ins := range prog.Instructions {
		code = append(code, ins.Binary())
	}

	for _, value := range prog.Data {
		data = append(data, FormatData(value))
	}

	return
}

// FormatData returns the text image form of a data word.
func FormatData(value int64) string {
	if value < 0 {
		return fmt.Sprintf("-%031b", -value)
	}
	return fmt.Sprintf("%032b", value)
}

// ParseData parses a text image data word: binary digits with an
// optional leading '-'.
func ParseData(text string) (value int64, err error) {
	text = strings.TrimSpace(text)
	value, err = strconv.ParseInt(text, 2, 64)
	if err != nil {
		err = ErrDataText(text)
	}
	return
}

// lines yields the non-blank lines of an image with their line numbers.
// failed reports a read error, and the number of the line it stopped at.
func lines(input io.Reader) (seq iter.Seq2[int, string], failed func() (int, error)) {
	scanner := bufio.NewScanner(input)
	lineno := 0

	seq = func(yield func(lineno int, line string) bool) {
		for scanner.Scan() {
			lineno++
			line := strings.TrimSpace(scanner.Text())
			if len(line) == 0 {
				continue
			}
			if !yield(lineno, line) {
				return
			}
		}
	}

	failed = func() (int, error) {
		return lineno + 1, scanner.Err()
	}

	return
}

// ReadCode appends the instructions of a text instruction image.
func (prog *Program) ReadCode(input io.Reader) (err error) {
	seq, failed := lines(input)
	for lineno, line := range seq {
		var ins Instruction
		ins, err = ParseInstruction(line)
		if err != nil {
			err = ErrImage{LineNo: lineno, Err: err}
			return
		}
		prog.Instructions = append(prog.Instructions, ins)
	}

	if lineno, serr := failed(); serr != nil {
		err = ErrImage{LineNo: lineno, Err: serr}
	}

	return
}

// ReadData appends the words of a text data image.
func (prog *Program) ReadData(input io.Reader) (err error) {
	seq, failed := lines(input)
	for lineno, line := range seq {
		var value int64
		value, err = ParseData(line)
		if err != nil {
			err = ErrImage{LineNo: lineno, Err: err}
			return
		}
		prog.Data = append(prog.Data, value)
	}

	if lineno, serr := failed(); serr != nil {
		err = ErrImage{LineNo: lineno, Err: serr}
	}

	return
}
