// Package mnemonic explains MIPS assembly lines: it extracts the operand
// fields of the operation and renders a description of what it does.
package mnemonic

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedOperand is wrapped by OperandError.
var ErrMalformedOperand = errors.New("malformed operand")

// OperandError identifies the operand that could not be parsed.
type OperandError struct {
	Operation string
	Token     string
	Reason    string
}

func (e *OperandError) Error() string {
	return fmt.Sprintf("%s: %s: operand %q: %s", ErrMalformedOperand, e.Operation, e.Token, e.Reason)
}

func (e *OperandError) Unwrap() error {
	return ErrMalformedOperand
}

// FunctLookup resolves the funct bits of an R-type mnemonic.
type FunctLookup interface {
	FunctCode(mnemonic string) (string, bool)
}

// Result is the decoded form of one assembly line.
type Result struct {
	Operation   string    `json:"operation"`
	Explanation string    `json:"explanation"`
	Fields      *FieldSet `json:"details"`
}

// Decoder decodes assembly lines. It holds no state between calls.
type Decoder struct {
	functs FunctLookup
}

// NewDecoder returns a Decoder. functs may be nil, in which case funct is never applicable.
func NewDecoder(functs FunctLookup) *Decoder {
	return &Decoder{functs: functs}
}

// category is one field-extraction rule and its explanation rule.
type category struct {
	extract func(d *Decoder, op string, args operands) (*FieldSet, error)
	explain func(op string, f *FieldSet) string
}

var (
	rArithmetic = &category{extract: (*Decoder).rArithmeticFields, explain: explainRType}
	rShift      = &category{extract: (*Decoder).rShiftFields, explain: explainRType}
	rShiftVar   = &category{extract: (*Decoder).rShiftVariableFields, explain: explainRType}
	rMultDiv    = &category{extract: (*Decoder).rMultDivFields, explain: explainRType}
	rHiLo       = &category{extract: (*Decoder).rHiLoFields, explain: explainRType}
	rJumpTrap   = &category{extract: (*Decoder).rJumpTrapFields, explain: explainRType}
	iArithmetic = &category{extract: iArithmeticFields, explain: explainIArithmetic}
	memory      = &category{extract: memoryFields, explain: explainMemory}
	branch      = &category{extract: branchFields, explain: explainBranch}
	loadImm     = &category{extract: loadImmediateFields, explain: explainPseudo}
	loadAddr    = &category{extract: loadAddressFields, explain: explainPseudo}
	regMove     = &category{extract: registerMoveFields, explain: explainPseudo}
	jump        = &category{extract: jumpFields, explain: explainPseudo}
	noOperand   = &category{extract: noFields, explain: explainPseudo}
	copMove     = &category{extract: coprocessorMoveFields, explain: explainCoprocessorMove}
	fpConvert   = &category{extract: fpConvertFields, explain: explainConvert}
	fpArith     = &category{extract: fpArithmeticFields, explain: explainFloatArithmetic}
)

var categories = buildCategories(map[*category][]string{
	rArithmetic: {"add", "addu", "sub", "subu", "and", "or", "xor", "nor", "slt", "sltu", "mul", "mulo", "mulou", "rem", "remu"},
	rShift:      {"sll", "srl", "sra"},
	rShiftVar:   {"sllv", "srlv", "srav", "rol", "ror"},
	rMultDiv:    {"mult", "multu", "div", "divu"},
	rHiLo:       {"mfhi", "mflo", "mthi", "mtlo"},
	rJumpTrap:   {"jr", "jalr", "syscall", "break", "teq", "tge", "tgeu", "tlt", "tltu", "tne"},
	iArithmetic: {"addi", "addiu", "andi", "ori", "xori", "slti", "sltiu"},
	memory:      {"lw", "sw", "lb", "lbu", "lh", "lhu", "sb", "sh", "lwl", "lwr", "swl", "swr", "ld", "sd"},
	branch:      {"beq", "bne", "blez", "bgtz", "bltz", "bgez", "bltzal", "bgezal"},
	loadImm:     {"lui", "li"},
	loadAddr:    {"la"},
	regMove:     {"move", "not", "neg", "negu"},
	jump:        {"j", "jal"},
	noOperand:   {"nop", "rfe"},
	copMove:     {"mfc0", "mtc0", "mfc1", "mtc1", "mfc2", "mtc2"},
	fpConvert:   {"cvt.s.w", "cvt.d.w", "cvt.w.s", "cvt.w.d"},
	fpArith:     {"add.s", "sub.s", "mul.s", "div.s", "add.d", "sub.d", "mul.d", "div.d"},
})

func buildCategories(groups map[*category][]string) map[string]*category {
	byOp := make(map[string]*category)
	for c, ops := range groups {
		for _, op := range ops {
			byOp[op] = c
		}
	}
	return byOp
}

// Decode explains a single assembly line. An unrecognised operation is not an
// error: the result says so in its explanation and carries no fields.
func (d *Decoder) Decode(line string) (*Result, error) {
	op, args := tokenize(line)
	c, ok := categories[op]
	if !ok {
		return &Result{
			Operation:   op,
			Explanation: fmt.Sprintf("Unknown instruction: %s", op),
			Fields:      newFieldSet(),
		}, nil
	}
	fields, err := c.extract(d, op, operands(args))
	if err != nil {
		return nil, err
	}
	return &Result{
		Operation:   op,
		Explanation: c.explain(op, fields),
		Fields:      fields,
	}, nil
}

// IsKnown reports whether op is a recognised operation.
func IsKnown(op string) bool {
	_, ok := categories[strings.ToLower(op)]
	return ok
}

// operands are addressed by token position, the operation itself being token 0.
type operands []string

func (o operands) at(pos int) Field {
	if pos < 1 || pos > len(o) {
		return NotApplicable
	}
	return valueOf(o[pos-1])
}

func (d *Decoder) funct(op string) Field {
	if d.functs == nil {
		return NotApplicable
	}
	if code, ok := d.functs.FunctCode(op); ok {
		return valueOf(code)
	}
	return NotApplicable
}

// rFields declares the R-type record in encoding order.
func (d *Decoder) rFields(op string, rs, rt, rd, shamt Field) *FieldSet {
	return newFieldSet().
		set("rs", rs).
		set("rt", rt).
		set("rd", rd).
		set("shamt", shamt).
		set("funct", d.funct(op))
}

var zeroShift = valueOf("0")

func (d *Decoder) rArithmeticFields(op string, o operands) (*FieldSet, error) {
	return d.rFields(op, o.at(2), o.at(3), o.at(1), zeroShift), nil
}

func (d *Decoder) rShiftFields(op string, o operands) (*FieldSet, error) {
	return d.rFields(op, NotApplicable, o.at(2), o.at(1), o.at(3)), nil
}

func (d *Decoder) rShiftVariableFields(op string, o operands) (*FieldSet, error) {
	return d.rFields(op, o.at(3), o.at(2), o.at(1), zeroShift), nil
}

func (d *Decoder) rMultDivFields(op string, o operands) (*FieldSet, error) {
	return d.rFields(op, o.at(1), o.at(2), NotApplicable, zeroShift), nil
}

func (d *Decoder) rHiLoFields(op string, o operands) (*FieldSet, error) {
	if strings.HasPrefix(op, "mf") {
		return d.rFields(op, NotApplicable, NotApplicable, o.at(1), zeroShift), nil
	}
	return d.rFields(op, o.at(1), NotApplicable, NotApplicable, zeroShift), nil
}

func (d *Decoder) rJumpTrapFields(op string, o operands) (*FieldSet, error) {
	switch op {
	case "jr":
		return d.rFields(op, o.at(1), NotApplicable, NotApplicable, zeroShift), nil
	case "jalr":
		// jalr rs, or jalr rd, rs
		if len(o) > 1 {
			return d.rFields(op, o.at(2), NotApplicable, o.at(1), zeroShift), nil
		}
		return d.rFields(op, o.at(1), NotApplicable, NotApplicable, zeroShift), nil
	case "syscall", "break":
		return d.rFields(op, NotApplicable, NotApplicable, NotApplicable, zeroShift), nil
	default:
		return d.rFields(op, o.at(1), o.at(2), NotApplicable, zeroShift), nil
	}
}

func iArithmeticFields(_ *Decoder, _ string, o operands) (*FieldSet, error) {
	return newFieldSet().
		set("rt", o.at(1)).
		set("rs", o.at(2)).
		set("immediate", o.at(3)), nil
}

// memoryFields parses the offset(base) operand at token 2.
func memoryFields(_ *Decoder, op string, o operands) (*FieldSet, error) {
	addr := o.at(2)
	if !addr.Applicable {
		return nil, &OperandError{Operation: op, Token: strings.Join(o, " "), Reason: "missing offset(base) operand"}
	}
	open := strings.Index(addr.Value, "(")
	if open < 0 {
		return nil, &OperandError{Operation: op, Token: addr.Value, Reason: "missing '('"}
	}
	if !strings.HasSuffix(addr.Value, ")") {
		return nil, &OperandError{Operation: op, Token: addr.Value, Reason: "missing ')'"}
	}
	if strings.ContainsAny(addr.Value[:open], ")") {
		return nil, &OperandError{Operation: op, Token: addr.Value, Reason: "unbalanced parentheses"}
	}
	base := addr.Value[open+1 : len(addr.Value)-1]
	if base == "" || strings.ContainsAny(base, "()") {
		return nil, &OperandError{Operation: op, Token: addr.Value, Reason: "invalid base register"}
	}
	return newFieldSet().
		set("rt", o.at(1)).
		set("offset", valueOf(addr.Value[:open])).
		set("rs", valueOf(base)), nil
}

func branchFields(_ *Decoder, op string, o operands) (*FieldSet, error) {
	f := newFieldSet().set("rs", o.at(1))
	if op == "beq" || op == "bne" {
		return f.set("rt", o.at(2)).set("offset", o.at(3)), nil
	}
	return f.set("rt", NotApplicable).set("offset", o.at(2)), nil
}

func loadImmediateFields(_ *Decoder, _ string, o operands) (*FieldSet, error) {
	return newFieldSet().set("rt", o.at(1)).set("immediate", o.at(2)), nil
}

func loadAddressFields(_ *Decoder, _ string, o operands) (*FieldSet, error) {
	return newFieldSet().set("rt", o.at(1)).set("address", o.at(2)), nil
}

func registerMoveFields(_ *Decoder, _ string, o operands) (*FieldSet, error) {
	return newFieldSet().set("rd", o.at(1)).set("rs", o.at(2)), nil
}

func jumpFields(_ *Decoder, _ string, o operands) (*FieldSet, error) {
	return newFieldSet().set("address", o.at(1)), nil
}

func noFields(*Decoder, string, operands) (*FieldSet, error) {
	return newFieldSet(), nil
}

func coprocessorMoveFields(_ *Decoder, op string, o operands) (*FieldSet, error) {
	return newFieldSet().
		set("rt", o.at(1)).
		set("rd", o.at(2)).
		set("coprocessor", valueOf(op[len(op)-1:])), nil
}

func fpConvertFields(_ *Decoder, _ string, o operands) (*FieldSet, error) {
	return newFieldSet().set("fd", o.at(1)).set("fs", o.at(2)), nil
}

func fpArithmeticFields(_ *Decoder, op string, o operands) (*FieldSet, error) {
	precision := "double"
	if strings.HasSuffix(op, ".s") {
		precision = "single"
	}
	return newFieldSet().
		set("fd", o.at(1)).
		set("fs", o.at(2)).
		set("ft", o.at(3)).
		set("precision", valueOf(precision)), nil
}
