package cpu

import (
	"github.com/ezrec/ucode/io"
)

// Data memory map.
const (
	INPUT_CELL_ADDRESS        = 0 // Read pops the input buffer.
	OUTPUT_CELL_ADDRESS       = 1 // Write pushes the output buffer.
	DATA_MEMORY_BEGIN_ADDRESS = 2 // First general purpose cell.

	INSTRUCTION_MEMORY_BEGIN_ADDRESS = 1 // PC of the first instruction.
)

// InstructionMemory is the read-only program store.
type InstructionMemory struct {
	Cells []Instruction
}

// Read returns the instruction at a 1-based address.
func (im *InstructionMemory) Read(address int) (ins Instruction, err error) {
	index := address - INSTRUCTION_MEMORY_BEGIN_ADDRESS
	if index < 0 || index >= len(im.Cells) {
		err = ErrAddress{Memory: "instruction", Address: address}
		return
	}

	ins = im.Cells[index]
	return
}

// DataMemory is the read/write data store with memory-mapped I/O.
type DataMemory struct {
	Cells []int64
	IO    *io.Controller
	Bus   *Bus

	Out int64 // Memory output latch, read by the data-source mux.
}

// NewDataMemory creates a data memory of size cells with data loaded at
// DATA_MEMORY_BEGIN_ADDRESS. The memory grows to fit data if needed.
func NewDataMemory(size int, data []int64, ctl *io.Controller, bus *Bus) (dm *DataMemory) {
	size = max(size, DATA_MEMORY_BEGIN_ADDRESS+len(data))

	dm = &DataMemory{
		Cells: make([]int64, size),
		IO:    ctl,
		Bus:   bus,
	}
	copy(dm.Cells[DATA_MEMORY_BEGIN_ADDRESS:], data)

	return
}

func (dm *DataMemory) check(address int64) (err error) {
	if address < 0 || address >= int64(len(dm.Cells)) {
		err = ErrAddress{Memory: "data", Address: int(address)}
	}
	return
}

// Read returns the value at address. Reading the input cell pops the
// input buffer; reading the output cell is an error.
func (dm *DataMemory) Read(address int64) (value int64, err error) {
	switch address {
	case INPUT_CELL_ADDRESS:
		value, err = dm.IO.Read()
		return
	case OUTPUT_CELL_ADDRESS:
		err = ErrCellWriteOnly
		return
	}

	err = dm.check(address)
	if err != nil {
		return
	}

	value = dm.Cells[address]
	return
}

// Write stores value at address. Writing the output cell pushes to the
// output buffer only; writing the input cell is an error.
func (dm *DataMemory) Write(address int64, value int64) (err error) {
	switch address {
	case INPUT_CELL_ADDRESS:
		err = ErrCellReadOnly
		return
	case OUTPUT_CELL_ADDRESS:
		err = dm.IO.Write(value)
		return
	}

	err = dm.check(address)
	if err != nil {
		return
	}

	dm.Cells[address] = value
	return
}

// LatchRead reads the cell addressed by the left bus wire into Out.
func (dm *DataMemory) LatchRead() (err error) {
	value, err := dm.Read(dm.Bus.Left())
	if err != nil {
		return
	}

	dm.Out = value
	return
}

// LatchWrite writes the right bus wire to the cell addressed by the left
// bus wire.
func (dm *DataMemory) LatchWrite() (err error) {
	return dm.Write(dm.Bus.Left(), dm.Bus.Right())
}
