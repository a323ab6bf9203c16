package emulator

import (
	"log"

	"github.com/ezrec/ucode/cpu"
)

// LogTracer logs every executed microcode row, and the disassembly of
// each instruction as it is dispatched.
type LogTracer struct {
	Program *cpu.Program
}

var _ cpu.Tracer = (*LogTracer)(nil)

func (lt *LogTracer) Trace(trace cpu.Trace) {
	if trace.Mpc == cpu.MPC_DECODE && lt.Program != nil {
		if ins, ok := lt.Program.At(trace.Pc); ok {
			log.Printf("%04d: %v", trace.Pc, ins)
		}
	}

	log.Printf("%06d %02d: %v", trace.Tick, trace.Mpc, trace.Signals)
}
