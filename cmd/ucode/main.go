// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/ezrec/ucode/config"
	"github.com/ezrec/ucode/cpu"
	"github.com/ezrec/ucode/emulator"
	"github.com/ezrec/ucode/io"
)

// readImage reads a code or data image file into the program.
func readImage(name string, read func(*os.File) error) {
	if len(name) == 0 {
		return
	}

	inf, err := os.Open(name)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}
	defer inf.Close()

	err = read(inf)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}
}

// writeImage writes one word per line.
func writeImage(name string, words []string) {
	ouf, err := os.Create(name)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}
	defer ouf.Close()

	for _, word := range words {
		fmt.Fprintln(ouf, word)
	}
}

// readInput returns the input stream. An interactive stdin is not read.
func readInput(input string) string {
	if input == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return ""
		}
		var buf bytes.Buffer
		_, err := buf.ReadFrom(os.Stdin)
		if err != nil {
			log.Fatalf("stdin: %v", err)
		}
		return buf.String()
	}

	data, err := os.ReadFile(input)
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}
	return string(data)
}

func main() {
	var code string
	var data string
	var source string
	var input string
	var cfgFile string
	var save string
	var list bool
	var dump bool
	var verbose bool

	log.SetPrefix("ucode: ")
	log.SetFlags(0)

	flag.StringVar(&code, "c", "", "Instruction image to execute")
	flag.StringVar(&data, "d", "", "Data image to load")
	flag.StringVar(&source, "a", "", "Assembly source to assemble")
	flag.StringVar(&input, "i", "-", "Input stream")
	flag.StringVar(&cfgFile, "config", "", "Starlark machine configuration")
	flag.StringVar(&save, "o", "", "Save images to PREFIX.code and PREFIX.data, do not execute")
	flag.BoolVar(&list, "l", false, "List the program, do not execute")
	flag.BoolVar(&dump, "dump", false, "Dump the final machine state")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()

	if len(cfgFile) != 0 {
		inf, err := os.Open(cfgFile)
		if err != nil {
			log.Fatalf("%v: %v", cfgFile, err)
		}
		emu.Config, err = config.Load(cfgFile, inf, emulator.Defines())
		inf.Close()
		if err != nil {
			log.Fatal(err)
		}
	}

	prog := &cpu.Program{}

	// Assemble a new program.
	if len(source) != 0 {
		inf, err := os.Open(source)
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
		asm := &cpu.Assembler{Verbose: verbose}
		for name, value := range emulator.Defines() {
			asm.Predefine(name, value)
		}
		prog, err = asm.Parse(inf)
		inf.Close()
		if err != nil {
			log.Fatalf("%v: %v", source, err)
		}
	}

	readImage(code, func(inf *os.File) error { return prog.ReadCode(inf) })
	readImage(data, func(inf *os.File) error { return prog.ReadData(inf) })

	if len(prog.Instructions) == 0 {
		log.Fatalf("no instructions: use -c or -a")
	}

	if len(save) != 0 {
		code_image, data_image := prog.Binary()
		writeImage(save+".code", code_image)
		writeImage(save+".data", data_image)
		return
	}

	if list {
		for pc, ins := range prog.Listing() {
			fmt.Printf("%04d: %v  %v\n", pc, ins.Binary(), ins)
		}
		return
	}

	emu.Program = prog
	emu.Verbose = verbose || emu.Config.Verbose
	emu.Input = readInput(input)
	emu.Echo = &io.Tape{Output: os.Stdout}

	result, err := emu.Run()

	if dump {
		pp.Fprintln(os.Stderr, emu.Snapshot())
	}

	if verbose {
		log.Printf("%v: %d ticks, %d instructions, %d micro-ops", result.Outcome,
			result.Stats.Ticks, result.Stats.Instructions, result.Stats.MicroOps)
	}

	switch {
	case cpu.IsInputExhausted(err):
		// Reading past the end of input ends the program.
	case err != nil:
		log.Fatal(err)
	case result.Outcome == cpu.OUTCOME_TIMEOUT:
		log.Printf("tick limit %d reached", emu.Config.TickLimit)
		os.Exit(2)
	}
}

