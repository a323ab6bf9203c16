package cpu

// Microcode ROM entry points.
const (
	MPC_FETCH  = 0 // Start of the universal fetch sequence.
	MPC_DECODE = 2 // Dispatch on the latched IR.

	LINE_NOP     = 3
	LINE_HALT    = 4
	LINE_ADD     = 5
	LINE_ADD_IMM = 6
	LINE_SUB     = 8
	LINE_SUB_IMM = 9
	LINE_MUL     = 11
	LINE_MUL_IMM = 12
	LINE_AND     = 14
	LINE_AND_IMM = 15
	LINE_LW      = 17
	LINE_LW_ADDR = 19
	LINE_SW      = 21
	LINE_SW_REG  = 22
	LINE_BEQ     = 23
	LINE_BNE     = 26
	LINE_BGT     = 29
	LINE_BLT     = 32
	LINE_JUMP    = 35
)

// SCRATCH_REGISTER holds staged immediates and addresses.
const SCRATCH_REGISTER = 15

// Microcode is the control store. Row n is the ordered list of signals
// asserted during one tick at mpc n.
var Microcode = [][]Signal{
	// 0: fetch: pc++, mpc++
	{SIG_SEL_ONE_INC, SIG_SEL_PC_INC, SIG_LATCH_PC, SIG_SEL_MPC_INC, SIG_LATCH_MPC},
	// 1: fetch: latch IR and operands, mpc++
	{SIG_LATCH_IR, SIG_LATCH_OPERANDS, SIG_SEL_MPC_INC, SIG_LATCH_MPC},
	// 2: decode: mpc = IR
	{SIG_SEL_MPC_IR, SIG_LATCH_MPC},

	// 3: nop
	{SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},

	// 4: halt
	{SIG_HALT},

	// 5: add rb, r1, r2
	{SIG_SEL_L_R1, SIG_SEL_R_R2, SIG_ALU_ADD, SIG_SEL_SRC_ALU, SIG_LATCH_REG, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},
	// 6: add rb, r1, #imm
	{SIG_SEL_SRC_CU, SIG_LATCH_REG15, SIG_SEL_MPC_INC, SIG_LATCH_MPC},
	{SIG_SEL_L_R1, SIG_SEL_R_REG15, SIG_ALU_ADD, SIG_SEL_SRC_ALU, SIG_LATCH_REG, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},

	// 8: sub rb, r1, r2
	{SIG_SEL_L_R1, SIG_SEL_R_R2, SIG_ALU_SUB, SIG_SEL_SRC_ALU, SIG_LATCH_REG, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},
	// 9: sub rb, r1, #imm
	{SIG_SEL_SRC_CU, SIG_LATCH_REG15, SIG_SEL_MPC_INC, SIG_LATCH_MPC},
	{SIG_SEL_L_R1, SIG_SEL_R_REG15, SIG_ALU_SUB, SIG_SEL_SRC_ALU, SIG_LATCH_REG, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},

	// 11: mul rb, r1, r2
	{SIG_SEL_L_R1, SIG_SEL_R_R2, SIG_ALU_MUL, SIG_SEL_SRC_ALU, SIG_LATCH_REG, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},
	// 12: mul rb, r1, #imm
	{SIG_SEL_SRC_CU, SIG_LATCH_REG15, SIG_SEL_MPC_INC, SIG_LATCH_MPC},
	{SIG_SEL_L_R1, SIG_SEL_R_REG15, SIG_ALU_MUL, SIG_SEL_SRC_ALU, SIG_LATCH_REG, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},

	// 14: and rb, r1, r2
	{SIG_SEL_L_R1, SIG_SEL_R_R2, SIG_ALU_AND, SIG_SEL_SRC_ALU, SIG_LATCH_REG, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},
	// 15: and rb, r1, #imm
	{SIG_SEL_SRC_CU, SIG_LATCH_REG15, SIG_SEL_MPC_INC, SIG_LATCH_MPC},
	{SIG_SEL_L_R1, SIG_SEL_R_REG15, SIG_ALU_AND, SIG_SEL_SRC_ALU, SIG_LATCH_REG, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},

	// 17: lw rb, r1
	{SIG_SEL_L_R1, SIG_LATCH_READ_MEM, SIG_SEL_MPC_INC, SIG_LATCH_MPC},
	{SIG_SEL_SRC_MEM, SIG_LATCH_REG, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},

	// 19: lw rb, address
	{SIG_SEL_SRC_CU, SIG_LATCH_REG15, SIG_SEL_L_REG15, SIG_LATCH_READ_MEM, SIG_SEL_MPC_INC, SIG_LATCH_MPC},
	{SIG_SEL_SRC_MEM, SIG_LATCH_REG, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},

	// 21: sw rb, r1
	{SIG_SEL_L_R1, SIG_SEL_R_RB, SIG_LATCH_WRITE_MEM, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},
	// 22: swr r2, r1
	{SIG_SEL_L_R1, SIG_SEL_R_R2, SIG_LATCH_WRITE_MEM, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},

	// 23: beq rb, r1, address: Z doubles the stride onto the commit row.
	{SIG_SEL_L_RB, SIG_SEL_R_R1, SIG_ALU_SUB, SIG_SEL_TWICE_INC_IF_Z, SIG_SEL_MPC_INC, SIG_LATCH_MPC},
	{SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},
	{SIG_SEL_PC_ADDR, SIG_LATCH_PC, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},

	// 26: bne rb, r1, address: Z doubles the stride past the commit row.
	{SIG_SEL_L_RB, SIG_SEL_R_R1, SIG_ALU_SUB, SIG_SEL_TWICE_INC_IF_Z, SIG_SEL_MPC_INC, SIG_LATCH_MPC},
	{SIG_SEL_PC_ADDR, SIG_LATCH_PC, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},
	{SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},

	// 29: bgt rb, r1, address: r1 - rb < 0
	{SIG_SEL_L_R1, SIG_SEL_R_RB, SIG_ALU_SUB, SIG_SEL_TWICE_INC_IF_N, SIG_SEL_MPC_INC, SIG_LATCH_MPC},
	{SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},
	{SIG_SEL_PC_ADDR, SIG_LATCH_PC, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},

	// 32: blt rb, r1, address: rb - r1 < 0
	{SIG_SEL_L_RB, SIG_SEL_R_R1, SIG_ALU_SUB, SIG_SEL_TWICE_INC_IF_N, SIG_SEL_MPC_INC, SIG_LATCH_MPC},
	{SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},
	{SIG_SEL_PC_ADDR, SIG_LATCH_PC, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},

	// 35: jmp address
	{SIG_SEL_PC_ADDR, SIG_LATCH_PC, SIG_SEL_MPC_ZERO, SIG_LATCH_MPC},
}

// _decode maps an opcode to its entry line for flag 0 and flag 1.
var _decode = map[Opcode][2]int{
	OP_NOP:        {LINE_NOP, LINE_NOP},
	OP_HALT:       {LINE_HALT, LINE_HALT},
	OP_ADD:        {LINE_ADD, LINE_ADD_IMM},
	OP_SUB:        {LINE_SUB, LINE_SUB_IMM},
	OP_MUL:        {LINE_MUL, LINE_MUL_IMM},
	OP_AND:        {LINE_AND, LINE_AND_IMM},
	OP_LOAD_WORD:  {LINE_LW, LINE_LW_ADDR},
	OP_WRITE_WORD: {LINE_SW, LINE_SW_REG},
	OP_BEQ:        {LINE_BEQ, LINE_BEQ},
	OP_BNE:        {LINE_BNE, LINE_BNE},
	OP_BGT:        {LINE_BGT, LINE_BGT},
	OP_BLT:        {LINE_BLT, LINE_BLT},
	OP_JUMP:       {LINE_JUMP, LINE_JUMP},
}

// Decode returns the microcode entry line for an opcode and flag.
func Decode(op Opcode, flag int) (line int, err error) {
	lines, ok := _decode[op]
	if !ok || flag < 0 || flag >= len(lines) {
		err = ErrOpcodeFlag{Opcode: op, Flag: flag}
		return
	}

	line = lines[flag]
	return
}

// MicroStep returns the signals of ROM row mpc.
func MicroStep(mpc int) (signals []Signal, ok bool) {
	if mpc < 0 || mpc >= len(Microcode) {
		return
	}

	return Microcode[mpc], true
}
