// Package mips provides the implementation of the asmparser interfaces for MIPS listings.
package mips

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ChainSafe/mips-explain/asmparser"
	"github.com/ChainSafe/mips-explain/mnemonic"
)

var (
	// Regular expressions for parsing objdump blocks and instructions.
	// The encoding is either four byte groups (llvm-objdump) or one 8 digit word (GNU objdump).
	blockStartRegex  = regexp.MustCompile(`^([0-9a-fA-F]+)\s+<([^>]+)>:$`)
	instructionRegex = regexp.MustCompile(
		`^([0-9a-fA-F]+):\s+((?:[0-9a-fA-F]{2}\s+){3}[0-9a-fA-F]{2}|[0-9a-fA-F]{8})\s+([a-z][a-z0-9]*(?:\.[a-z0-9]+)*)\s*(.*)$`)
	// symbolRegex matches the "<symbol+offset>" annotation objdump appends to branch targets.
	symbolRegex = regexp.MustCompile(`\s*<[^>]*>`)
)

// parserImpl implements the asmparser.Parser interface.
type parserImpl struct {
	littleEndian bool
}

// NewParser returns a new instance of a MIPS listing parser. littleEndian
// reverses the byte groups of listings produced for mipsel targets.
func NewParser(littleEndian bool) asmparser.Parser {
	return &parserImpl{littleEndian: littleEndian}
}

// Parse reads and parses a MIPS listing file.
func (p *parserImpl) Parse(path string) ([]asmparser.Segment, error) {
	fpath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("error resolving absolute filepath: %w", err)
	}

	codefile, err := os.Open(fpath)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer func() {
		_ = codefile.Close()
	}()
	return p.ParseReader(codefile)
}

// ParseReader parses a MIPS listing into its segments, in listing order.
func (p *parserImpl) ParseReader(r io.Reader) ([]asmparser.Segment, error) {
	var currSegment *segment
	segments := make([]asmparser.Segment, 0)
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		instr, err := p.parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("error parsing line %d: %w", lineNum, err)
		}
		if instr == nil { // Ignore comments and empty lines
			continue
		}
		instr.line = lineNum
		if instr.isSegmentStart() {
			currSegment = newSegment(instr.address, instr.label)
			segments = append(segments, currSegment)
			continue
		}
		if currSegment == nil {
			return nil, fmt.Errorf("invalid listing: instruction encountered before segment definition at line %d", lineNum)
		}
		currSegment.instructions = append(currSegment.instructions, instr)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading listing: %w", err)
	}
	return segments, nil
}

// parseLine attempts to parse a line of a MIPS listing.
func (p *parserImpl) parseLine(line string) (*instruction, error) {
	line = strings.TrimSpace(line)
	switch {
	case blockStartRegex.MatchString(line):
		return parseSegmentStart(line)
	case instructionRegex.MatchString(line):
		return p.parseInstruction(line)
	default:
		return nil, nil // Ignore comments and unrecognized lines
	}
}

// parseSegmentStart extracts segment information from a line.
func parseSegmentStart(line string) (*instruction, error) {
	matches := blockStartRegex.FindStringSubmatch(line)
	if len(matches) != 3 {
		return nil, fmt.Errorf("failed to parse segment start: %s", line)
	}
	pcAddress, err := strconv.ParseUint(matches[1], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid segment address: %w", err)
	}
	return &instruction{address: pcAddress, label: matches[2]}, nil
}

// parseInstruction extracts instruction information from a line.
func (p *parserImpl) parseInstruction(line string) (*instruction, error) {
	matches := instructionRegex.FindStringSubmatch(line)
	if len(matches) != 5 {
		return nil, fmt.Errorf("failed to parse instruction: %s", line)
	}
	pcAddress, err := strconv.ParseUint(matches[1], 16, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid instruction address: %w", err)
	}
	return &instruction{
		address:  pcAddress,
		word:     p.word(matches[2]),
		mnemonic: matches[3],
		operands: mnemonic.SplitOperands(stripAnnotations(matches[4])),
	}, nil
}

// word joins the encoded bytes into a big-endian hex word.
func (p *parserImpl) word(encoded string) string {
	groups := strings.Fields(encoded)
	if p.littleEndian && len(groups) == 4 {
		groups[0], groups[1], groups[2], groups[3] = groups[3], groups[2], groups[1], groups[0]
	}
	return strings.ToLower(strings.Join(groups, ""))
}

// stripAnnotations drops symbol annotations and trailing comments from the operand text.
func stripAnnotations(operands string) string {
	if idx := strings.IndexAny(operands, "#;"); idx >= 0 {
		operands = operands[:idx]
	}
	return strings.TrimSpace(symbolRegex.ReplaceAllString(operands, ""))
}
