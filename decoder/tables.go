package decoder

type set map[string]struct{}

func newSet(items ...string) set {
	s := make(set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s set) has(item string) bool {
	_, ok := s[item]
	return ok
}

const (
	opcodeSpecial = "000000"
	opcodeRegimm  = "000001"
	opcodeCop0    = "010000"
	opcodeCop1    = "010001"
	opcodeCop2    = "010010"
)

var (
	// rTrapFuncts are the SPECIAL funct values of tge, tgeu, tlt, tltu, teq and tne.
	rTrapFuncts = newSet("110000", "110001", "110010", "110011", "110100", "110110")

	iTypeOpcodes = newSet(
		"001000", "001001", "001100", "001101", "001110",
		"100011", "101011", "100000", "100100", "100001",
		"100101", "101000", "101001", "000100", "000101",
		"000110", "000111", "001111", "001010", "001011",
		opcodeRegimm, "100010", "100110", "101010", "101110",
		"110111", "111111",
	)

	jTypeOpcodes = newSet("000010", "000011")

	specialOpcodes = newSet(opcodeCop0, opcodeCop1, opcodeCop2, "010011")

	// iTrapNames maps the REGIMM rt selector to its trap-immediate mnemonic.
	iTrapNames = map[string]string{
		"01000": "tgei",
		"01001": "tgeiu",
		"01010": "tlti",
		"01011": "tltiu",
		"01100": "teqi",
		"01110": "tnei",
	}
)
