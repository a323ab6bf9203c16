package cpu

// Bus holds the two latched read-port outputs of the register file.
// Selecting a register drives a wire; the ALU and memory read the wires
// later, so the order of select and use within a row is observable.
type Bus struct {
	left  int64
	right int64
}

// Left returns the left operand wire.
func (bus *Bus) Left() int64 {
	return bus.left
}

// Right returns the right operand wire.
func (bus *Bus) Right() int64 {
	return bus.right
}

// SetLeft drives the left operand wire.
func (bus *Bus) SetLeft(value int64) {
	bus.left = value
}

// SetRight drives the right operand wire.
func (bus *Bus) SetRight(value int64) {
	bus.right = value
}

// RegisterFile is the bank of general registers. r0 reads as zero and
// rejects writes.
type RegisterFile struct {
	Register [REGISTER_COUNT]int64
	Bus      *Bus
}

// NewRegisterFile creates a register file driving the given bus.
func NewRegisterFile(bus *Bus) (rf *RegisterFile) {
	rf = &RegisterFile{
		Bus: bus,
	}
	return
}

func checkIndex(index int) (err error) {
	if index < 0 || index >= REGISTER_COUNT {
		err = ErrRegister(index)
	}
	return
}

// Get returns the value of register rN.
func (rf *RegisterFile) Get(index int) (value int64, err error) {
	err = checkIndex(index)
	if err != nil {
		return
	}

	value = rf.Register[index]
	return
}

// Latch writes value to register rN.
func (rf *RegisterFile) Latch(index int, value int64) (err error) {
	err = checkIndex(index)
	if err != nil {
		return
	}

	if index == 0 {
		err = ErrRegisterImmutable
		return
	}

	rf.Register[index] = value
	return
}

// SelectLeft drives the left bus wire from register rN.
func (rf *RegisterFile) SelectLeft(index int) (err error) {
	value, err := rf.Get(index)
	if err != nil {
		return
	}

	rf.Bus.SetLeft(value)
	return
}

// SelectRight drives the right bus wire from register rN.
func (rf *RegisterFile) SelectRight(index int) (err error) {
	value, err := rf.Get(index)
	if err != nil {
		return
	}

	rf.Bus.SetRight(value)
	return
}

// Reset zeroes all registers and the bus.
func (rf *RegisterFile) Reset() {
	clear(rf.Register[:])
	*rf.Bus = Bus{}
}
