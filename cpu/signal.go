package cpu

// Signal is a single control line asserted by a microcode row.
type Signal int

//go:generate go tool stringer -linecomment -type=Signal
const (
	SIG_HALT               = Signal(0)  // halt
	SIG_LATCH_REG          = Signal(1)  // latch_reg
	SIG_LATCH_REG0         = Signal(2)  // latch_reg0
	SIG_LATCH_REG1         = Signal(3)  // latch_reg1
	SIG_LATCH_REG2         = Signal(4)  // latch_reg2
	SIG_LATCH_REG3         = Signal(5)  // latch_reg3
	SIG_LATCH_REG4         = Signal(6)  // latch_reg4
	SIG_LATCH_REG5         = Signal(7)  // latch_reg5
	SIG_LATCH_REG6         = Signal(8)  // latch_reg6
	SIG_LATCH_REG7         = Signal(9)  // latch_reg7
	SIG_LATCH_REG8         = Signal(10) // latch_reg8
	SIG_LATCH_REG9         = Signal(11) // latch_reg9
	SIG_LATCH_REG10        = Signal(12) // latch_reg10
	SIG_LATCH_REG11        = Signal(13) // latch_reg11
	SIG_LATCH_REG12        = Signal(14) // latch_reg12
	SIG_LATCH_REG13        = Signal(15) // latch_reg13
	SIG_LATCH_REG14        = Signal(16) // latch_reg14
	SIG_LATCH_REG15        = Signal(17) // latch_reg15
	SIG_ALU_ADD            = Signal(18) // alu_add
	SIG_ALU_SUB            = Signal(19) // alu_sub
	SIG_ALU_MUL            = Signal(20) // alu_mul
	SIG_ALU_AND            = Signal(21) // alu_and
	SIG_LATCH_PC           = Signal(22) // latch_pc
	SIG_LATCH_MPC          = Signal(23) // latch_mpc
	SIG_LATCH_IR           = Signal(24) // latch_ir
	SIG_LATCH_OPERANDS     = Signal(25) // latch_operands
	SIG_LATCH_READ_MEM     = Signal(26) // latch_read_mem
	SIG_LATCH_WRITE_MEM    = Signal(27) // latch_write_mem
	SIG_SEL_PC_ADDR        = Signal(28) // sel_pc_addr
	SIG_SEL_PC_INC         = Signal(29) // sel_pc_inc
	SIG_SEL_MPC_ZERO       = Signal(30) // sel_mpc_zero
	SIG_SEL_MPC_INC        = Signal(31) // sel_mpc_inc
	SIG_SEL_MPC_IR         = Signal(32) // sel_mpc_ir
	SIG_SEL_SRC_MEM        = Signal(33) // sel_src_mem
	SIG_SEL_SRC_ALU        = Signal(34) // sel_src_alu
	SIG_SEL_SRC_CU         = Signal(35) // sel_src_cu
	SIG_SEL_L_RB           = Signal(36) // sel_l_rb
	SIG_SEL_L_R1           = Signal(37) // sel_l_r1
	SIG_SEL_L_R2           = Signal(38) // sel_l_r2
	SIG_SEL_R_RB           = Signal(39) // sel_r_rb
	SIG_SEL_R_R1           = Signal(40) // sel_r_r1
	SIG_SEL_R_R2           = Signal(41) // sel_r_r2
	SIG_SEL_L_REG0         = Signal(42) // sel_l_reg0
	SIG_SEL_L_REG1         = Signal(43) // sel_l_reg1
	SIG_SEL_L_REG2         = Signal(44) // sel_l_reg2
	SIG_SEL_L_REG3         = Signal(45) // sel_l_reg3
	SIG_SEL_L_REG4         = Signal(46) // sel_l_reg4
	SIG_SEL_L_REG5         = Signal(47) // sel_l_reg5
	SIG_SEL_L_REG6         = Signal(48) // sel_l_reg6
	SIG_SEL_L_REG7         = Signal(49) // sel_l_reg7
	SIG_SEL_L_REG8         = Signal(50) // sel_l_reg8
	SIG_SEL_L_REG9         = Signal(51) // sel_l_reg9
	SIG_SEL_L_REG10        = Signal(52) // sel_l_reg10
	SIG_SEL_L_REG11        = Signal(53) // sel_l_reg11
	SIG_SEL_L_REG12        = Signal(54) // sel_l_reg12
	SIG_SEL_L_REG13        = Signal(55) // sel_l_reg13
	SIG_SEL_L_REG14        = Signal(56) // sel_l_reg14
	SIG_SEL_L_REG15        = Signal(57) // sel_l_reg15
	SIG_SEL_R_REG0         = Signal(58) // sel_r_reg0
	SIG_SEL_R_REG1         = Signal(59) // sel_r_reg1
	SIG_SEL_R_REG2         = Signal(60) // sel_r_reg2
	SIG_SEL_R_REG3         = Signal(61) // sel_r_reg3
	SIG_SEL_R_REG4         = Signal(62) // sel_r_reg4
	SIG_SEL_R_REG5         = Signal(63) // sel_r_reg5
	SIG_SEL_R_REG6         = Signal(64) // sel_r_reg6
	SIG_SEL_R_REG7         = Signal(65) // sel_r_reg7
	SIG_SEL_R_REG8         = Signal(66) // sel_r_reg8
	SIG_SEL_R_REG9         = Signal(67) // sel_r_reg9
	SIG_SEL_R_REG10        = Signal(68) // sel_r_reg10
	SIG_SEL_R_REG11        = Signal(69) // sel_r_reg11
	SIG_SEL_R_REG12        = Signal(70) // sel_r_reg12
	SIG_SEL_R_REG13        = Signal(71) // sel_r_reg13
	SIG_SEL_R_REG14        = Signal(72) // sel_r_reg14
	SIG_SEL_R_REG15        = Signal(73) // sel_r_reg15
	SIG_SEL_ONE_INC        = Signal(74) // sel_one_inc
	SIG_SEL_TWICE_INC_IF_Z = Signal(75) // sel_twice_inc_if_z
	SIG_SEL_TWICE_INC_IF_N = Signal(76) // sel_twice_inc_if_n
)

// REGISTER_COUNT is the number of cells in the register file.
const REGISTER_COUNT = 16

// Register index to selector tables. Entry n drives register rN.
var (
	_latch_signals = [REGISTER_COUNT]Signal{
		SIG_LATCH_REG0, SIG_LATCH_REG1, SIG_LATCH_REG2, SIG_LATCH_REG3,
		SIG_LATCH_REG4, SIG_LATCH_REG5, SIG_LATCH_REG6, SIG_LATCH_REG7,
		SIG_LATCH_REG8, SIG_LATCH_REG9, SIG_LATCH_REG10, SIG_LATCH_REG11,
		SIG_LATCH_REG12, SIG_LATCH_REG13, SIG_LATCH_REG14, SIG_LATCH_REG15,
	}
	_left_signals = [REGISTER_COUNT]Signal{
		SIG_SEL_L_REG0, SIG_SEL_L_REG1, SIG_SEL_L_REG2, SIG_SEL_L_REG3,
		SIG_SEL_L_REG4, SIG_SEL_L_REG5, SIG_SEL_L_REG6, SIG_SEL_L_REG7,
		SIG_SEL_L_REG8, SIG_SEL_L_REG9, SIG_SEL_L_REG10, SIG_SEL_L_REG11,
		SIG_SEL_L_REG12, SIG_SEL_L_REG13, SIG_SEL_L_REG14, SIG_SEL_L_REG15,
	}
	_right_signals = [REGISTER_COUNT]Signal{
		SIG_SEL_R_REG0, SIG_SEL_R_REG1, SIG_SEL_R_REG2, SIG_SEL_R_REG3,
		SIG_SEL_R_REG4, SIG_SEL_R_REG5, SIG_SEL_R_REG6, SIG_SEL_R_REG7,
		SIG_SEL_R_REG8, SIG_SEL_R_REG9, SIG_SEL_R_REG10, SIG_SEL_R_REG11,
		SIG_SEL_R_REG12, SIG_SEL_R_REG13, SIG_SEL_R_REG14, SIG_SEL_R_REG15,
	}

	_latch_index = reverseIndex(_latch_signals)
	_left_index  = reverseIndex(_left_signals)
	_right_index = reverseIndex(_right_signals)
)

func reverseIndex(table [REGISTER_COUNT]Signal) (index map[Signal]int) {
	index = make(map[Signal]int, len(table))
	for n, sig := range table {
		index[sig] = n
	}
	return
}

func signalFor(table *[REGISTER_COUNT]Signal, index int) (sig Signal, err error) {
	if index < 0 || index >= len(table) {
		err = ErrRegister(index)
		return
	}

	sig = table[index]
	return
}

// LatchSignal returns the write-port selector for register rN.
func LatchSignal(index int) (Signal, error) {
	return signalFor(&_latch_signals, index)
}

// LeftSignal returns the left read-port selector for register rN.
func LeftSignal(index int) (Signal, error) {
	return signalFor(&_left_signals, index)
}

// RightSignal returns the right read-port selector for register rN.
func RightSignal(index int) (Signal, error) {
	return signalFor(&_right_signals, index)
}

// LatchIndex returns the register written by a latch selector.
func (sig Signal) LatchIndex() (index int, ok bool) {
	index, ok = _latch_index[sig]
	return
}

// LeftIndex returns the register read by a left-port selector.
func (sig Signal) LeftIndex() (index int, ok bool) {
	index, ok = _left_index[sig]
	return
}

// RightIndex returns the register read by a right-port selector.
func (sig Signal) RightIndex() (index int, ok bool) {
	index, ok = _right_index[sig]
	return
}
