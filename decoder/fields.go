package decoder

import "fmt"

//    6      5     5     5     5      6 bits
// [  op  |  rs |  rt |  rd |shamt| funct]  R-type
// [  op  |  rs |  rt |    code   | funct]  R-Trap
// [  op  |  rs |  rt |   immediate      ]  I-type, I-Trap
// [  op  |        target address        ]  J-type
// https://en.wikibooks.org/wiki/MIPS_Assembly/Instruction_Formats

// RFields is a register-register instruction.
type RFields struct {
	Opcode string `json:"opcode"`
	Rs     string `json:"rs"`
	Rt     string `json:"rt"`
	Rd     string `json:"rd"`
	Shamt  string `json:"shamt"`
	Funct  string `json:"funct"`
}

func (f *RFields) Format() Format { return FormatR }

func (f *RFields) Segments() []Segment {
	return []Segment{
		{Name: "opcode", Bits: f.Opcode},
		{Name: "rs", Bits: f.Rs, Register: true},
		{Name: "rt", Bits: f.Rt, Register: true},
		{Name: "rd", Bits: f.Rd, Register: true},
		{Name: "shamt", Bits: f.Shamt},
		{Name: "funct", Bits: f.Funct},
	}
}

// RTrapFields is a conditional trap on two registers, carrying a 10-bit code.
type RTrapFields struct {
	Opcode string `json:"opcode"`
	Rs     string `json:"rs"`
	Rt     string `json:"rt"`
	Code   string `json:"code"`
	Funct  string `json:"funct"`
}

func (f *RTrapFields) Format() Format { return FormatRTrap }

func (f *RTrapFields) Segments() []Segment {
	return []Segment{
		{Name: "opcode", Bits: f.Opcode},
		{Name: "rs", Bits: f.Rs, Register: true},
		{Name: "rt", Bits: f.Rt, Register: true},
		{Name: "code", Bits: f.Code},
		{Name: "funct", Bits: f.Funct},
	}
}

// IFields is a register-immediate instruction.
type IFields struct {
	Opcode    string `json:"opcode"`
	Rs        string `json:"rs"`
	Rt        string `json:"rt"`
	Immediate string `json:"immediate"`
}

func (f *IFields) Format() Format { return FormatI }

func (f *IFields) Segments() []Segment {
	return []Segment{
		{Name: "opcode", Bits: f.Opcode},
		{Name: "rs", Bits: f.Rs, Register: true},
		{Name: "rt", Bits: f.Rt, Register: true},
		{Name: "immediate", Bits: f.Immediate},
	}
}

// ITrapFields is a REGIMM trap-immediate instruction. The rt slot selects the
// trap condition rather than a register.
type ITrapFields struct {
	Opcode    string  `json:"opcode"`
	Rs        string  `json:"rs"`
	RtBinary  string  `json:"rtBinary"`
	RtName    *string `json:"rtName"` // nil when rt is not a trap selector
	Immediate string  `json:"immediate"`
}

func (f *ITrapFields) Format() Format { return FormatITrap }

func (f *ITrapFields) Segments() []Segment {
	return []Segment{
		{Name: "opcode", Bits: f.Opcode},
		{Name: "rs", Bits: f.Rs, Register: true},
		{Name: "rt", Bits: f.RtBinary},
		{Name: "immediate", Bits: f.Immediate},
	}
}

// JFields is a jump with a 26-bit word index.
type JFields struct {
	Opcode  string `json:"opcode"`
	Address string `json:"address"`
}

func (f *JFields) Format() Format { return FormatJ }

func (f *JFields) Segments() []Segment {
	return []Segment{
		{Name: "opcode", Bits: f.Opcode},
		{Name: "address", Bits: f.Address},
	}
}

// Cop0Fields is a system control coprocessor instruction.
type Cop0Fields struct {
	Opcode      string `json:"opcode"`
	Rs          string `json:"rs"`
	Rt          string `json:"rt"`
	Rd          string `json:"rd"`
	Funct       string `json:"funct"`
	Coprocessor string `json:"coprocessor"`
}

func (f *Cop0Fields) Format() Format { return FormatSpecial }

func (f *Cop0Fields) Segments() []Segment {
	return []Segment{
		{Name: "opcode", Bits: f.Opcode},
		{Name: "rs", Bits: f.Rs},
		{Name: "rt", Bits: f.Rt, Register: true},
		{Name: "rd", Bits: f.Rd},
		{Name: "funct", Bits: f.Funct},
	}
}

// Cop1Fields is a floating point coprocessor instruction.
type Cop1Fields struct {
	Opcode      string `json:"opcode"`
	Fmt         string `json:"fmt"`
	Ft          string `json:"ft"`
	Fs          string `json:"fs"`
	Fd          string `json:"fd"`
	Funct       string `json:"funct"`
	Coprocessor string `json:"coprocessor"`
}

func (f *Cop1Fields) Format() Format { return FormatSpecial }

func (f *Cop1Fields) Segments() []Segment {
	return []Segment{
		{Name: "opcode", Bits: f.Opcode},
		{Name: "fmt", Bits: f.Fmt},
		{Name: "ft", Bits: f.Ft},
		{Name: "fs", Bits: f.Fs},
		{Name: "fd", Bits: f.Fd},
		{Name: "funct", Bits: f.Funct},
	}
}

// Cop2Fields is an implementation-defined coprocessor instruction.
type Cop2Fields struct {
	Opcode      string `json:"opcode"`
	Coprocessor string `json:"coprocessor"`
	Rs          string `json:"rs"`
	Rt          string `json:"rt"`
	Rd          string `json:"rd"`
	Funct       string `json:"funct"`
}

func (f *Cop2Fields) Format() Format { return FormatSpecial }

func (f *Cop2Fields) Segments() []Segment {
	return []Segment{
		{Name: "opcode", Bits: f.Opcode},
		{Name: "rs", Bits: f.Rs},
		{Name: "rt", Bits: f.Rt, Register: true},
		{Name: "rd", Bits: f.Rd},
		{Name: "funct", Bits: f.Funct},
	}
}

// SpecialFields is the fallback for special opcodes without a known layout.
type SpecialFields struct {
	Opcode string `json:"opcode"`
	Binary string `json:"binary"`
}

func (f *SpecialFields) Format() Format { return FormatSpecial }

func (f *SpecialFields) Segments() []Segment {
	return []Segment{
		{Name: "opcode", Bits: f.Opcode},
		{Name: "binary", Bits: f.Binary[6:]},
	}
}

// UnknownFields keeps only the opcode of an unrecognised word.
type UnknownFields struct {
	Opcode string `json:"opcode"`
}

func (f *UnknownFields) Format() Format { return FormatUnknown }

func (f *UnknownFields) Segments() []Segment {
	return []Segment{{Name: "opcode", Bits: f.Opcode}}
}

// DecodeFields slices bits according to the given format.
func DecodeFields(format Format, bits string) (Fields, error) {
	if err := validate(bits); err != nil {
		return nil, err
	}
	switch format {
	case FormatR:
		return decodeR(bits), nil
	case FormatRTrap:
		return decodeRTrap(bits), nil
	case FormatI:
		return decodeI(bits), nil
	case FormatITrap:
		return decodeITrap(bits), nil
	case FormatJ:
		return decodeJ(bits), nil
	case FormatSpecial:
		return decodeSpecial(bits), nil
	case FormatUnknown:
		return &UnknownFields{Opcode: bits[0:6]}, nil
	default:
		return nil, fmt.Errorf("unsupported instruction format: %q", format)
	}
}

func decodeR(bits string) *RFields {
	return &RFields{
		Opcode: bits[0:6],
		Rs:     bits[6:11],
		Rt:     bits[11:16],
		Rd:     bits[16:21],
		Shamt:  bits[21:26],
		Funct:  bits[26:32],
	}
}

func decodeRTrap(bits string) *RTrapFields {
	return &RTrapFields{
		Opcode: bits[0:6],
		Rs:     bits[6:11],
		Rt:     bits[11:16],
		Code:   bits[16:26],
		Funct:  bits[26:32],
	}
}

func decodeI(bits string) *IFields {
	return &IFields{
		Opcode:    bits[0:6],
		Rs:        bits[6:11],
		Rt:        bits[11:16],
		Immediate: bits[16:32],
	}
}

func decodeITrap(bits string) *ITrapFields {
	fields := &ITrapFields{
		Opcode:    bits[0:6],
		Rs:        bits[6:11],
		RtBinary:  bits[11:16],
		Immediate: bits[16:32],
	}
	if name, ok := iTrapNames[fields.RtBinary]; ok {
		fields.RtName = &name
	}
	return fields
}

func decodeJ(bits string) *JFields {
	return &JFields{
		Opcode:  bits[0:6],
		Address: bits[6:32],
	}
}

// decodeSpecial picks the coprocessor layout from the exact opcode.
// Bits 21-25 are not part of the COP0/COP2 records.
func decodeSpecial(bits string) Fields {
	opcode := bits[0:6]
	switch opcode {
	case opcodeCop0:
		return &Cop0Fields{
			Opcode:      opcode,
			Rs:          bits[6:11],
			Rt:          bits[11:16],
			Rd:          bits[16:21],
			Funct:       bits[26:32],
			Coprocessor: "0",
		}
	case opcodeCop1:
		return &Cop1Fields{
			Opcode:      opcode,
			Fmt:         bits[6:11],
			Ft:          bits[11:16],
			Fs:          bits[16:21],
			Fd:          bits[21:26],
			Funct:       bits[26:32],
			Coprocessor: "1",
		}
	case opcodeCop2:
		return &Cop2Fields{
			Opcode:      opcode,
			Coprocessor: "2",
			Rs:          bits[6:11],
			Rt:          bits[11:16],
			Rd:          bits[16:21],
			Funct:       bits[26:32],
		}
	default:
		return &SpecialFields{Opcode: opcode, Binary: bits}
	}
}
