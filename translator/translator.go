// Package translator normalises instruction text for the decoders.
package translator

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned for text that is not a 32-bit hexadecimal word.
var ErrInvalidHex = errors.New("invalid hexadecimal instruction")

// functCodes holds the SPECIAL (opcode 000000) funct values, plus SPECIAL2 mul.
var functCodes = map[string]string{
	"sll":     "000000",
	"srl":     "000010",
	"sra":     "000011",
	"sllv":    "000100",
	"srlv":    "000110",
	"srav":    "000111",
	"jr":      "001000",
	"jalr":    "001001",
	"syscall": "001100",
	"break":   "001101",
	"mfhi":    "010000",
	"mthi":    "010001",
	"mflo":    "010010",
	"mtlo":    "010011",
	"mult":    "011000",
	"multu":   "011001",
	"div":     "011010",
	"divu":    "011011",
	"add":     "100000",
	"addu":    "100001",
	"sub":     "100010",
	"subu":    "100011",
	"and":     "100100",
	"or":      "100101",
	"xor":     "100110",
	"nor":     "100111",
	"slt":     "101010",
	"sltu":    "101011",
	"tge":     "110000",
	"tgeu":    "110001",
	"tlt":     "110010",
	"tltu":    "110011",
	"teq":     "110100",
	"tne":     "110110",
	"mul":     "000010",
}

// Translator converts between instruction text representations.
type Translator struct{}

// New returns a new Translator.
func New() *Translator {
	return &Translator{}
}

// HexToBinary converts a hexadecimal word, with or without a 0x prefix, into a
// 32-character bitstring. Shorter values are zero extended.
func (t *Translator) HexToBinary(hex string) (string, error) {
	hex = strings.TrimSpace(hex)
	hex = strings.TrimPrefix(strings.TrimPrefix(hex, "0x"), "0X")
	if hex == "" || len(hex) > 8 {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	word, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}
	return fmt.Sprintf("%032b", word), nil
}

// FunctCode returns the 6-bit funct field of an R-type mnemonic.
func (t *Translator) FunctCode(mnemonic string) (string, bool) {
	code, ok := functCodes[strings.ToLower(mnemonic)]
	return code, ok
}
