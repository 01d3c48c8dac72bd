package decoder

// Classify determines the format of a 32-bit word and extracts its fields.
// The trap sub-checks only run once the parent opcode has matched, since the
// funct and rt ranges carry other meanings outside SPECIAL and REGIMM.
func Classify(bits string) (*Instruction, error) {
	if err := validate(bits); err != nil {
		return nil, err
	}
	opcode := bits[0:6]

	var format Format
	switch {
	case opcode == opcodeSpecial:
		format = FormatR
		if rTrapFuncts.has(bits[26:32]) {
			format = FormatRTrap
		}
	case iTypeOpcodes.has(opcode):
		format = FormatI
		if _, ok := iTrapNames[bits[11:16]]; ok && opcode == opcodeRegimm {
			format = FormatITrap
		}
	case jTypeOpcodes.has(opcode):
		format = FormatJ
	case specialOpcodes.has(opcode):
		format = FormatSpecial
	default:
		format = FormatUnknown
	}

	fields, err := DecodeFields(format, bits)
	if err != nil {
		return nil, err
	}
	return &Instruction{Type: format, Opcode: opcode, Fields: fields}, nil
}
