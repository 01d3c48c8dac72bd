// Package asmparser defines the interfaces for reading disassembly listings.
package asmparser

import "io"

// Parser holds interface for parsing a disassembly listing
type Parser interface {
	Parse(path string) ([]Segment, error)
	ParseReader(r io.Reader) ([]Segment, error)
}

// Instruction holds required methods definition for a listed instruction
type Instruction interface {
	Address() string
	// Word returns the encoded instruction as 8 lower-case hex digits, most significant byte first.
	Word() string
	Mnemonic() string
	Operands() []string
	// Text returns the instruction in assembly syntax: mnemonic followed by comma separated operands.
	Text() string
	Line() int
}

// Segment is a labelled block of instructions, usually a function.
type Segment interface {
	Address() string
	Label() string
	Instructions() []Instruction
}
