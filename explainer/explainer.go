// Package explainer routes selected instruction text to the binary or the
// mnemonic decoder.
package explainer

import (
	"fmt"
	"strings"

	"github.com/ChainSafe/mips-explain/decoder"
	"github.com/ChainSafe/mips-explain/mnemonic"
)

// Translator holds the text conversions the explainer depends on.
type Translator interface {
	HexToBinary(hex string) (string, error)
	FunctCode(mnemonic string) (string, bool)
}

// Selection supplies the text to explain and how to interpret it.
type Selection interface {
	CurrentText() string
	IsHexMode() bool
}

// StaticSelection is a Selection with fixed values.
type StaticSelection struct {
	Text string
	Hex  bool
}

func (s StaticSelection) CurrentText() string { return s.Text }

func (s StaticSelection) IsHexMode() bool { return s.Hex }

// Mode is the interpretation applied to the input text.
type Mode string

const (
	ModeHex Mode = "hex" // 8 hex digits, or a 32 character bitstring
	ModeAsm Mode = "asm"
)

// Report is the explanation of one input. Explain sets exactly one of Binary
// and Mnemonic; listing entries carry both views of the same instruction.
type Report struct {
	Input    string               `json:"input"`
	Mode     Mode                 `json:"mode"`
	Address  string               `json:"address,omitempty"`
	Segment  string               `json:"segment,omitempty"`
	Binary   *decoder.Instruction `json:"binary,omitempty"`
	Mnemonic *mnemonic.Result     `json:"mnemonic,omitempty"`
}

// Explainer explains MIPS instructions. It is safe for concurrent use.
type Explainer struct {
	translator Translator
	mnemonics  *mnemonic.Decoder
}

// New returns an Explainer using the given translator.
func New(translator Translator) *Explainer {
	return &Explainer{
		translator: translator,
		mnemonics:  mnemonic.NewDecoder(translator),
	}
}

// ExplainSelection explains the currently selected text.
func (e *Explainer) ExplainSelection(sel Selection) (*Report, error) {
	return e.Explain(sel.CurrentText(), sel.IsHexMode())
}

// Explain decodes text as a machine word when hexMode is set and as an
// assembly line otherwise.
func (e *Explainer) Explain(text string, hexMode bool) (*Report, error) {
	text = strings.TrimSpace(text)
	if hexMode {
		instr, err := e.DecodeWord(text)
		if err != nil {
			return nil, err
		}
		return &Report{Input: text, Mode: ModeHex, Binary: instr}, nil
	}
	res, err := e.mnemonics.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("failed to decode assembly: %w", err)
	}
	return &Report{Input: text, Mode: ModeAsm, Mnemonic: res}, nil
}

// DecodeWord classifies a machine word given in hex, or directly as 32 binary digits.
func (e *Explainer) DecodeWord(word string) (*decoder.Instruction, error) {
	bits := word
	if !isBitstring(word) {
		var err error
		bits, err = e.translator.HexToBinary(word)
		if err != nil {
			return nil, fmt.Errorf("failed to translate instruction: %w", err)
		}
	}
	instr, err := decoder.Classify(bits)
	if err != nil {
		return nil, fmt.Errorf("failed to classify instruction: %w", err)
	}
	return instr, nil
}

// DecodeLine explains an assembly line.
func (e *Explainer) DecodeLine(line string) (*mnemonic.Result, error) {
	return e.mnemonics.Decode(line)
}

func isBitstring(s string) bool {
	if len(s) != decoder.InstructionBits {
		return false
	}
	return strings.Trim(s, "01") == ""
}
