// Package decoder classifies 32-bit MIPS instruction words and slices them into their fields.
package decoder

import (
	"errors"
	"fmt"
)

// Format defines the MIPS encoding family of a decoded word.
type Format string

const (
	FormatR       Format = "R"
	FormatRTrap   Format = "R-Trap"
	FormatI       Format = "I"
	FormatITrap   Format = "I-Trap"
	FormatJ       Format = "J"
	FormatSpecial Format = "Special"
	FormatUnknown Format = "unknown"
)

// InstructionBits is the width of a full MIPS instruction word.
const InstructionBits = 32

// ErrInvalidEncoding is returned when a bitstring is not exactly 32 binary digits.
var ErrInvalidEncoding = errors.New("invalid instruction encoding")

// Instruction is the tagged result of classifying a word.
type Instruction struct {
	Type   Format `json:"type"`
	Opcode string `json:"opcode"` // kept for diagnostics, always the top 6 bits
	Fields Fields `json:"data"`
}

// Fields holds required methods definition for a per-format field record.
type Fields interface {
	Format() Format
	// Segments returns the record in encoding order, most significant bits first.
	Segments() []Segment
}

// Segment is one named slice of an instruction word.
type Segment struct {
	Name     string `json:"name"`
	Bits     string `json:"bits"`
	Register bool   `json:"register"` // the bits select a general purpose register
}

func validate(bits string) error {
	if len(bits) != InstructionBits {
		return fmt.Errorf("%w: expected %d bits, got %d", ErrInvalidEncoding, InstructionBits, len(bits))
	}
	for i, c := range bits {
		if c != '0' && c != '1' {
			return fmt.Errorf("%w: non-binary digit %q at bit %d", ErrInvalidEncoding, c, i)
		}
	}
	return nil
}
