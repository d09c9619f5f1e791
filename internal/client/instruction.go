package client

import (
	"fmt"

	"github.com/dshills/weft/internal/protocol"
)

// InstructionKind identifies an instruction to the owning client process.
type InstructionKind uint8

const (
	// InstructionExit tells the client process to tear down.
	InstructionExit InstructionKind = iota + 1
)

// String returns the instruction kind name.
func (k InstructionKind) String() string {
	switch k {
	case InstructionExit:
		return "exit"
	default:
		return fmt.Sprintf("InstructionKind(%d)", k)
	}
}

// Instruction is a one-way notification from the input pipeline (or the
// IPC receive loop) to the owning client process. It is distinct from the
// server-facing IPC channel.
type Instruction struct {
	Kind   InstructionKind
	Reason protocol.ExitReason
}

// Exit constructs an exit instruction.
func Exit(reason protocol.ExitReason) Instruction {
	return Instruction{Kind: InstructionExit, Reason: reason}
}
