// Package cpu implements a horizontally microcoded processor.
//
// The control unit steps a micro-program counter (mpc) through a read-only
// microcode ROM. Each ROM row is a list of control signals asserted in one
// tick against the datapath: an ALU with zero/negative flags, sixteen
// registers (r0 hard-wired to zero) with two latched read ports, a 1-based
// instruction memory and a data memory whose cells 0 and 1 are mapped to
// the I/O controller.
//
// Conditional branches have no conditional micro-jump. A branch row
// compares two registers with the ALU and, depending on the flags, doubles
// the stride of the following mpc increment, selecting between the two
// ROM rows after it.
package cpu
