package mips

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/mips-explain/asmparser"
)

// instruction represents a listed MIPS instruction implementing the asmparser.Instruction interface.
type instruction struct {
	address  uint64
	word     string
	mnemonic string
	operands []string
	label    string // Used if this line marks the start of a segment
	line     int
}

// isSegmentStart checks if the line marks the beginning of a segment.
func (i *instruction) isSegmentStart() bool {
	return len(i.label) > 0
}

func (i *instruction) Address() string {
	return fmt.Sprintf("0x%x", i.address)
}

func (i *instruction) Word() string {
	return i.word
}

func (i *instruction) Mnemonic() string {
	return i.mnemonic
}

func (i *instruction) Operands() []string {
	return i.operands
}

func (i *instruction) Text() string {
	if len(i.operands) == 0 {
		return i.mnemonic
	}
	return i.mnemonic + " " + strings.Join(i.operands, ", ")
}

func (i *instruction) Line() int {
	return i.line
}

// segment represents a block of instructions implementing the asmparser.Segment interface.
type segment struct {
	address      uint64
	label        string
	instructions []*instruction
}

// newSegment initializes a new segment with the given address and label.
func newSegment(address uint64, label string) *segment {
	return &segment{
		address:      address,
		label:        label,
		instructions: make([]*instruction, 0),
	}
}

func (s *segment) Address() string {
	return fmt.Sprintf("0x%x", s.address)
}

func (s *segment) Label() string {
	return s.label
}

func (s *segment) Instructions() []asmparser.Instruction {
	instrs := make([]asmparser.Instruction, len(s.instructions))
	for i, ins := range s.instructions {
		instrs[i] = ins
	}
	return instrs
}
