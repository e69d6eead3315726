package cpu

import (
	"errors"
	"fmt"
)

var (
	ErrHalted              = errors.New("cpu is halted")
	ErrUnimplementedOpcode = errors.New("unimplemented opcode")
)

// UnimplementedOpcodeError is returned by Step when the opcode table has no
// handler for the fetched byte. PC is the address of the opcode.
type UnimplementedOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("unimplemented opcode $%02X at $%04X", e.Opcode, e.PC)
}

func (e *UnimplementedOpcodeError) Is(target error) bool {
	return target == ErrUnimplementedOpcode
}
