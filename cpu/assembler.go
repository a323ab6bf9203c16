// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO":  "0",
	"INPUT":   fmt.Sprintf("%v", INPUT_CELL_ADDRESS),
	"OUTPUT":  fmt.Sprintf("%v", OUTPUT_CELL_ADDRESS),
	"DATA":    fmt.Sprintf("%v", DATA_MEMORY_BEGIN_ADDRESS),
	"SCRATCH": fmt.Sprintf("r%v", SCRATCH_REGISTER),
}

// Assembler is a two pass assembler for the instruction set. The syntax
// is that of Instruction.String(), plus labels, equates, character
// literals and $(...) compile time expressions:
//
//	    .equ NL '\n'
//	    add r2, r0, #OUTPUT
//	    add r3, r0, #msg
//	loop:
//	    lw r1, r3
//	    beq r1, r0, done
//	    sw r1, r2
//	    add r3, r3, #1
//	    jmp loop
//	done:
//	    halt
//	msg: .word 'H' 'i' NL 0
//
// A label binds to the index of the next instruction, which is the
// branch target form, or to the data address of the next .word.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	predefine map[string]string
	Label     map[string]int    // Map of labels to instruction indexes or data addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

var (
	reCharacter  = regexp.MustCompile(`'\\?[^']'`)
	reExpression = regexp.MustCompile(`\$\([^\$]*\)`)
	reRegister   = regexp.MustCompile(`^r[0-9]+$`)
)

// splitWords splits a line on white space and commas.
func splitWords(line string) []string {
	return strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int64, err error) {
	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrParseNumber(word)
	}
	return
}

// charEval replaces 'x' character literals with their codes.
func charEval(line string) string {
	return reCharacter.ReplaceAllStringFunc(line, func(word string) string {
		str := word[1 : len(word)-1]
		if str[0] == '\\' {
			switch str[1:] {
			case "\\":
				str = "\\"
			case "n":
				str = "\n"
			case "r":
				str = "\r"
			case "t":
				str = "\t"
			case "0":
				str = "\000"
			default:
				return word
			}
		} else if len(str) != 1 {
			return word
		}
		return fmt.Sprintf("%v", str[0])
	})
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value64 int64
		value64, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	return
}

type sourceLine struct {
	LineNo int
	Line   string
}

// bindLabels is the first pass. It assigns each label the instruction
// index or data address of the statement that follows it.
func (asm *Assembler) bindLabels(source []sourceLine) (lineno int, err error) {
	var pending []string
	code := 0
	data := DATA_MEMORY_BEGIN_ADDRESS

	for _, src := range source {
		lineno = src.LineNo
		line := reCharacter.ReplaceAllString(src.Line, "0")
		line = reExpression.ReplaceAllString(line, "0")
		words := splitWords(line)

		for len(words) > 0 && strings.HasSuffix(words[0], ":") {
			label := strings.TrimSuffix(words[0], ":")
			_, ok := asm.Label[label]
			if ok || len(label) == 0 {
				err = ErrLabelDuplicate
				return
			}
			asm.Label[label] = -1
			pending = append(pending, label)
			words = words[1:]
		}

		if len(words) == 0 || words[0] == ".equ" {
			continue
		}

		at := code
		if words[0] == ".word" {
			at = data
			data += len(words) - 1
		} else {
			code++
		}

		for _, label := range pending {
			asm.Label[label] = at
		}
		pending = pending[:0]
	}

	for _, label := range pending {
		asm.Label[label] = code
	}

	for label, at := range asm.Label {
		if _, ok := asm.Equate[label]; ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[label] = fmt.Sprintf("%v", at)
	}

	return
}

// Parse assembles an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Label = map[string]int{}
	asm.Equate = maps.Clone(sysEquate)
	maps.Copy(asm.Equate, asm.predefine)

	var source []sourceLine
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lineno++
		text, _, _ := strings.Cut(scanner.Text(), ";")
		source = append(source, sourceLine{LineNo: lineno, Line: strings.TrimSpace(text)})
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	lineno, err = asm.bindLabels(source)
	if err != nil {
		return
	}

	prog = &Program{}
	for _, src := range source {
		lineno, line = src.LineNo, src.Line

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, line)
		}

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		if len(words) == 0 {
			continue
		}

		if words[0] == ".word" {
			for _, word := range words[1:] {
				var value int64
				value, err = asm.valueOf(word)
				if err != nil {
					return
				}
				prog.Data = append(prog.Data, value)
			}
			continue
		}

		var ins Instruction
		ins, err = asm.parseWords(words)
		if err != nil {
			return
		}
		prog.Instructions = append(prog.Instructions, ins)
	}

	return
}

// parseLine expands a line into words, handling .equ and dropping labels.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	line = charEval(line)

	// Do $() evaluations
	line = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%v", value)
	})
	if err != nil {
		return
	}

	words = splitWords(line)

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		words = words[1:]
	}

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = nil
		return
	}

	for n, word := range words {
		prefix := ""
		if imm, ok := strings.CutPrefix(word, "#"); ok {
			prefix, word = "#", imm
		}
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = prefix + equate
		}
	}

	return
}

// isRegister returns true for words of the form rN.
func isRegister(word string) bool {
	return reRegister.MatchString(word)
}

// register parses a register name.
func (asm *Assembler) register(word string) (index int, err error) {
	if !isRegister(word) {
		err = ErrParseRegister(word)
		return
	}
	index, err = strconv.Atoi(word[1:])
	if err != nil || index >= REGISTER_COUNT {
		err = ErrParseRegister(word)
		return
	}
	return
}

// field parses a 16-bit immediate, address or branch target.
func (asm *Assembler) field(word string) (value int, err error) {
	word = strings.TrimPrefix(word, "#")
	value64, err := asm.valueOf(word)
	if err != nil {
		return
	}
	if value64 < 0 || value64 > FIELD_MASK {
		err = ErrFieldRange
		return
	}
	value = int(value64)
	return
}

// _mnemonic_opcode maps assembler mnemonics to opcodes.
var _mnemonic_opcode = func() map[string]Opcode {
	ops := make(map[string]Opcode, len(_opcode_mnemonic))
	for op, mnemonic := range _opcode_mnemonic {
		ops[mnemonic] = op
	}
	return ops
}()

// parseWords assembles the words of a single instruction.
func (asm *Assembler) parseWords(words []string) (ins Instruction, err error) {
	if words[0] == OP_WRITE_WORD.String()+"r" {
		ins, err = asm.parseStoreReg(words[1:])
		return
	}

	op, ok := _mnemonic_opcode[words[0]]
	if !ok {
		err = ErrOpcodeInvalid
		return
	}

	args := words[1:]
	count := map[Opcode]int{
		OP_NOP: 0, OP_HALT: 0, OP_JUMP: 1,
		OP_LOAD_WORD: 2, OP_WRITE_WORD: 2,
	}[op]
	if op.IsMath() || (op.IsBranch() && op != OP_JUMP) {
		count = 3
	}
	switch {
	case len(args) < count:
		err = ErrOpcodeValueMissing
		return
	case len(args) > count:
		err = ErrOpcodeExtraArgs
		return
	}

	var rb, r1, value int
	if count >= 2 {
		rb, err = asm.register(args[0])
		if err != nil {
			return
		}
	}

	switch {
	case op == OP_NOP, op == OP_HALT:
		ins = MakeInstruction(op, 0, 0, 0, 0)
	case op == OP_JUMP:
		value, err = asm.field(args[0])
		ins = MakeJump(value)
	case op.IsMath():
		r1, err = asm.register(args[1])
		if err != nil {
			return
		}
		if isRegister(args[2]) {
			value, err = asm.register(args[2])
			ins = MakeMath(op, rb, r1, value)
		} else {
			value, err = asm.field(args[2])
			ins = MakeMathImm(op, rb, r1, value)
		}
	case op == OP_LOAD_WORD:
		if isRegister(args[1]) {
			r1, err = asm.register(args[1])
			ins = MakeLoad(rb, r1)
		} else {
			value, err = asm.field(args[1])
			ins = MakeLoadAddr(rb, value)
		}
	case op == OP_WRITE_WORD:
		r1, err = asm.register(args[1])
		ins = MakeStore(rb, r1)
	case op.IsBranch():
		r1, err = asm.register(args[1])
		if err != nil {
			return
		}
		value, err = asm.field(args[2])
		ins = MakeBranch(op, rb, r1, value)
	}

	if err != nil {
		ins = 0
	}

	return
}

// parseStoreReg assembles "swr r2, r1", the flag 1 store of mem[r1] = r2.
func (asm *Assembler) parseStoreReg(args []string) (ins Instruction, err error) {
	switch {
	case len(args) < 2:
		err = ErrOpcodeValueMissing
		return
	case len(args) > 2:
		err = ErrOpcodeExtraArgs
		return
	}

	r2, err := asm.register(args[0])
	if err != nil {
		return
	}
	r1, err := asm.register(args[1])
	if err != nil {
		return
	}

	ins = MakeStoreReg(r1, r2)
	return
}
