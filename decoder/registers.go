package decoder

// UnknownRegister is returned for codes outside the 5-bit register table.
const UnknownRegister = "unknown"

// registerNames maps 5-bit register codes to their canonical MIPS mnemonics.
var registerNames = map[string]string{
	"00000": "zero",
	"00001": "at",
	"00010": "v0",
	"00011": "v1",
	"00100": "a0",
	"00101": "a1",
	"00110": "a2",
	"00111": "a3",
	"01000": "t0",
	"01001": "t1",
	"01010": "t2",
	"01011": "t3",
	"01100": "t4",
	"01101": "t5",
	"01110": "t6",
	"01111": "t7",
	"10000": "s0",
	"10001": "s1",
	"10010": "s2",
	"10011": "s3",
	"10100": "s4",
	"10101": "s5",
	"10110": "s6",
	"10111": "s7",
	"11000": "t8",
	"11001": "t9",
	"11010": "k0",
	"11011": "k1",
	"11100": "gp",
	"11101": "sp",
	"11110": "fp",
	"11111": "ra",
}

// RegisterName returns the canonical name for a 5-bit register code, or UnknownRegister.
func RegisterName(code string) string {
	if name, ok := registerNames[code]; ok {
		return name
	}
	return UnknownRegister
}

// Register is a row of the register table.
type Register struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Registers lists all 32 registers ordered by code.
func Registers() []Register {
	regs := make([]Register, 0, len(registerNames))
	for i := 0; i < len(registerNames); i++ {
		code := toBits(uint32(i), 5) //nolint:gosec
		regs = append(regs, Register{Code: code, Name: registerNames[code]})
	}
	return regs
}

// toBits formats the low width bits of v, most significant first.
func toBits(v uint32, width int) string {
	b := make([]byte, width)
	for i := width - 1; i >= 0; i-- {
		b[i] = '0' + byte(v&1)
		v >>= 1
	}
	return string(b)
}
