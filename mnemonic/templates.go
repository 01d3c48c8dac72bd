package mnemonic

import (
	"fmt"
	"strings"
)

// template renders the explanation of one operation from its fields.
type template func(f *FieldSet) string

func (s *FieldSet) v(name string) string {
	return s.Get(name).String()
}

var rTypeTemplates = map[string]template{
	"add":  func(f *FieldSet) string { return fmt.Sprintf("%s = %s + %s (with overflow check)", f.v("rd"), f.v("rs"), f.v("rt")) },
	"addu": func(f *FieldSet) string { return fmt.Sprintf("%s = %s + %s (no overflow check)", f.v("rd"), f.v("rs"), f.v("rt")) },
	"sub":  func(f *FieldSet) string { return fmt.Sprintf("%s = %s - %s (with overflow check)", f.v("rd"), f.v("rs"), f.v("rt")) },
	"subu": func(f *FieldSet) string { return fmt.Sprintf("%s = %s - %s (no overflow check)", f.v("rd"), f.v("rs"), f.v("rt")) },
	"and":  func(f *FieldSet) string { return fmt.Sprintf("%s = %s & %s (bitwise AND)", f.v("rd"), f.v("rs"), f.v("rt")) },
	"or":   func(f *FieldSet) string { return fmt.Sprintf("%s = %s | %s (bitwise OR)", f.v("rd"), f.v("rs"), f.v("rt")) },
	"xor":  func(f *FieldSet) string { return fmt.Sprintf("%s = %s ^ %s (bitwise XOR)", f.v("rd"), f.v("rs"), f.v("rt")) },
	"nor":  func(f *FieldSet) string { return fmt.Sprintf("%s = ~(%s | %s) (bitwise NOR)", f.v("rd"), f.v("rs"), f.v("rt")) },
	"slt": func(f *FieldSet) string {
		return fmt.Sprintf("%s = (%s < %s) ? 1 : 0 (signed comparison)", f.v("rd"), f.v("rs"), f.v("rt"))
	},
	"sltu": func(f *FieldSet) string {
		return fmt.Sprintf("%s = (%s < %s) ? 1 : 0 (unsigned comparison)", f.v("rd"), f.v("rs"), f.v("rt"))
	},
	"sll": func(f *FieldSet) string { return fmt.Sprintf("%s = %s << %s (shift left logical)", f.v("rd"), f.v("rt"), f.v("shamt")) },
	"srl": func(f *FieldSet) string { return fmt.Sprintf("%s = %s >> %s (shift right logical)", f.v("rd"), f.v("rt"), f.v("shamt")) },
	"sra": func(f *FieldSet) string {
		return fmt.Sprintf("%s = %s >> %s (shift right arithmetic)", f.v("rd"), f.v("rt"), f.v("shamt"))
	},
	"sllv": func(f *FieldSet) string {
		return fmt.Sprintf("%s = %s << %s (shift left logical variable)", f.v("rd"), f.v("rt"), f.v("rs"))
	},
	"srlv": func(f *FieldSet) string {
		return fmt.Sprintf("%s = %s >> %s (shift right logical variable)", f.v("rd"), f.v("rt"), f.v("rs"))
	},
	"srav": func(f *FieldSet) string {
		return fmt.Sprintf("%s = %s >> %s (shift right arithmetic variable)", f.v("rd"), f.v("rt"), f.v("rs"))
	},
	"div": func(f *FieldSet) string {
		return fmt.Sprintf("Divide %s by %s (signed), store quotient in LO and remainder in HI", f.v("rs"), f.v("rt"))
	},
	"divu": func(f *FieldSet) string {
		return fmt.Sprintf("Divide %s by %s (unsigned), store quotient in LO and remainder in HI", f.v("rs"), f.v("rt"))
	},
	"mult": func(f *FieldSet) string {
		return fmt.Sprintf("Multiply %s by %s (signed), store 64-bit result in HI:LO", f.v("rs"), f.v("rt"))
	},
	"multu": func(f *FieldSet) string {
		return fmt.Sprintf("Multiply %s by %s (unsigned), store 64-bit result in HI:LO", f.v("rs"), f.v("rt"))
	},
	"mfhi": func(f *FieldSet) string { return fmt.Sprintf("%s = HI (move from HI register)", f.v("rd")) },
	"mflo": func(f *FieldSet) string { return fmt.Sprintf("%s = LO (move from LO register)", f.v("rd")) },
	"mthi": func(f *FieldSet) string { return fmt.Sprintf("HI = %s (move to HI register)", f.v("rs")) },
	"mtlo": func(f *FieldSet) string { return fmt.Sprintf("LO = %s (move to LO register)", f.v("rs")) },
	"jr":   func(f *FieldSet) string { return fmt.Sprintf("Jump to address in %s", f.v("rs")) },
	"jalr": func(f *FieldSet) string {
		link := "$ra"
		if rd := f.Get("rd"); rd.Applicable && rd.Value != "" {
			link = rd.Value
		}
		return fmt.Sprintf("Jump to address in %s and store return address in %s", f.v("rs"), link)
	},
	"syscall": func(*FieldSet) string { return "System call (invoke operating system service)" },
	"break":   func(*FieldSet) string { return "Breakpoint (generate exception)" },
	"teq":     func(f *FieldSet) string { return fmt.Sprintf("Trap if %s == %s", f.v("rs"), f.v("rt")) },
	"tge":     func(f *FieldSet) string { return fmt.Sprintf("Trap if %s >= %s (signed)", f.v("rs"), f.v("rt")) },
	"tgeu":    func(f *FieldSet) string { return fmt.Sprintf("Trap if %s >= %s (unsigned)", f.v("rs"), f.v("rt")) },
	"tlt":     func(f *FieldSet) string { return fmt.Sprintf("Trap if %s < %s (signed)", f.v("rs"), f.v("rt")) },
	"tltu":    func(f *FieldSet) string { return fmt.Sprintf("Trap if %s < %s (unsigned)", f.v("rs"), f.v("rt")) },
	"tne":     func(f *FieldSet) string { return fmt.Sprintf("Trap if %s != %s", f.v("rs"), f.v("rt")) },
	"rol": func(f *FieldSet) string {
		return fmt.Sprintf("%s = %s rotated left by %s bits", f.v("rd"), f.v("rt"), f.v("rs"))
	},
	"ror": func(f *FieldSet) string {
		return fmt.Sprintf("%s = %s rotated right by %s bits", f.v("rd"), f.v("rt"), f.v("rs"))
	},
	"mul": func(f *FieldSet) string {
		return fmt.Sprintf("%s = %s * %s (signed, low 32 bits)", f.v("rd"), f.v("rs"), f.v("rt"))
	},
	"mulo": func(f *FieldSet) string {
		return fmt.Sprintf("%s = %s * %s (signed, with overflow check)", f.v("rd"), f.v("rs"), f.v("rt"))
	},
	"mulou": func(f *FieldSet) string {
		return fmt.Sprintf("%s = %s * %s (unsigned, with overflow check)", f.v("rd"), f.v("rs"), f.v("rt"))
	},
	"rem":  func(f *FieldSet) string { return fmt.Sprintf("%s = %s %% %s (signed remainder)", f.v("rd"), f.v("rs"), f.v("rt")) },
	"remu": func(f *FieldSet) string { return fmt.Sprintf("%s = %s %% %s (unsigned remainder)", f.v("rd"), f.v("rs"), f.v("rt")) },
}

var iTypeTemplates = map[string]template{
	"addi": func(f *FieldSet) string {
		return fmt.Sprintf("%s = %s + %s (signed with overflow check)", f.v("rt"), f.v("rs"), f.v("immediate"))
	},
	"addiu": func(f *FieldSet) string {
		return fmt.Sprintf("%s = %s + %s (signed without overflow check)", f.v("rt"), f.v("rs"), f.v("immediate"))
	},
	"andi": func(f *FieldSet) string { return fmt.Sprintf("%s = %s & %s (bitwise AND)", f.v("rt"), f.v("rs"), f.v("immediate")) },
	"ori":  func(f *FieldSet) string { return fmt.Sprintf("%s = %s | %s (bitwise OR)", f.v("rt"), f.v("rs"), f.v("immediate")) },
	"xori": func(f *FieldSet) string { return fmt.Sprintf("%s = %s ^ %s (bitwise XOR)", f.v("rt"), f.v("rs"), f.v("immediate")) },
	"slti": func(f *FieldSet) string {
		return fmt.Sprintf("%s = (%s < %s) ? 1 : 0 (signed comparison)", f.v("rt"), f.v("rs"), f.v("immediate"))
	},
	"sltiu": func(f *FieldSet) string {
		return fmt.Sprintf("%s = (%s < %s) ? 1 : 0 (unsigned comparison)", f.v("rt"), f.v("rs"), f.v("immediate"))
	},
}

const branchPrefix = "Branch to PC + 4 + (%s << 2) if "

var branchTemplates = map[string]template{
	"beq":  func(f *FieldSet) string { return fmt.Sprintf(branchPrefix+"%s == %s", f.v("offset"), f.v("rs"), f.v("rt")) },
	"bne":  func(f *FieldSet) string { return fmt.Sprintf(branchPrefix+"%s != %s", f.v("offset"), f.v("rs"), f.v("rt")) },
	"blez": func(f *FieldSet) string { return fmt.Sprintf(branchPrefix+"%s <= 0", f.v("offset"), f.v("rs")) },
	"bgtz": func(f *FieldSet) string { return fmt.Sprintf(branchPrefix+"%s > 0", f.v("offset"), f.v("rs")) },
	"bltz": func(f *FieldSet) string { return fmt.Sprintf(branchPrefix+"%s < 0", f.v("offset"), f.v("rs")) },
	"bgez": func(f *FieldSet) string { return fmt.Sprintf(branchPrefix+"%s >= 0", f.v("offset"), f.v("rs")) },
	"bltzal": func(f *FieldSet) string {
		return fmt.Sprintf(branchPrefix+"%s < 0 and store return address in $ra", f.v("offset"), f.v("rs"))
	},
	"bgezal": func(f *FieldSet) string {
		return fmt.Sprintf(branchPrefix+"%s >= 0 and store return address in $ra", f.v("offset"), f.v("rs"))
	},
}

// pseudoTemplates covers the load-immediate/address, move, negate, jump and
// no-operand instructions, one template each.
var pseudoTemplates = map[string]template{
	"lui":  func(f *FieldSet) string { return fmt.Sprintf("Load upper immediate: %s = %s << 16", f.v("rt"), f.v("immediate")) },
	"la":   func(f *FieldSet) string { return fmt.Sprintf("Load address: %s = address of %s", f.v("rt"), f.v("address")) },
	"li":   func(f *FieldSet) string { return fmt.Sprintf("Load immediate: %s = %s", f.v("rt"), f.v("immediate")) },
	"move": func(f *FieldSet) string { return fmt.Sprintf("Move: %s = %s", f.v("rd"), f.v("rs")) },
	"not":  func(f *FieldSet) string { return fmt.Sprintf("Bitwise NOT: %s = ~%s", f.v("rd"), f.v("rs")) },
	"neg":  func(f *FieldSet) string { return fmt.Sprintf("Negate: %s = -%s", f.v("rd"), f.v("rs")) },
	"negu": func(f *FieldSet) string { return fmt.Sprintf("Negate unsigned: %s = -%s", f.v("rd"), f.v("rs")) },
	"j":    func(f *FieldSet) string { return fmt.Sprintf("Jump to address %s", f.v("address")) },
	"jal": func(f *FieldSet) string {
		return fmt.Sprintf("Jump and link: store return address in $ra and jump to %s", f.v("address"))
	},
	"nop": func(*FieldSet) string { return "No operation: does nothing" },
	"rfe": func(*FieldSet) string { return "Return from exception: restores status after exception" },
}

func explainRType(op string, f *FieldSet) string {
	if tmpl, ok := rTypeTemplates[op]; ok {
		return tmpl(f)
	}
	return fmt.Sprintf("R-type instruction: %s operation", op)
}

func explainIArithmetic(op string, f *FieldSet) string {
	if tmpl, ok := iTypeTemplates[op]; ok {
		return tmpl(f)
	}
	return fmt.Sprintf("I-type arithmetic instruction: %s operation", op)
}

func explainBranch(op string, f *FieldSet) string {
	if tmpl, ok := branchTemplates[op]; ok {
		return tmpl(f)
	}
	return fmt.Sprintf("Branch instruction: %s operation", op)
}

func explainPseudo(op string, f *FieldSet) string {
	return pseudoTemplates[op](f)
}

var memorySizes = map[byte]string{
	'b': "byte",
	'h': "halfword",
	'w': "word",
	'd': "doubleword",
	'l': "left word",
	'r': "right word",
}

// explainMemory derives the wording from the mnemonic itself: the first letter
// selects load or store, the second the access size, a trailing u marks it unsigned.
func explainMemory(op string, f *FieldSet) string {
	direction := "Store"
	if strings.HasPrefix(op, "l") {
		direction = "Load"
	}
	size := "word"
	if len(op) > 1 {
		if s, ok := memorySizes[op[1]]; ok {
			size = s
		}
	}
	signedness := ""
	if strings.HasSuffix(op, "u") {
		signedness = " unsigned"
	}
	return fmt.Sprintf("%s %s%s: %s %s, %s(%s)", direction, size, signedness, op, f.v("rt"), f.v("offset"), f.v("rs"))
}

func explainCoprocessorMove(op string, f *FieldSet) string {
	direction := "to"
	if strings.HasPrefix(op, "mf") {
		direction = "from"
	}
	return fmt.Sprintf("%s: Move %s %s coprocessor %s register %s", op, f.v("rt"), direction, f.v("coprocessor"), f.v("rd"))
}

// explainConvert names the formats in the order they appear in the mnemonic.
func explainConvert(op string, f *FieldSet) string {
	parts := strings.Split(op, ".")
	return fmt.Sprintf("Convert %s from %s to %s format, store in %s", f.v("fs"), parts[1], parts[2], f.v("fd"))
}

func explainFloatArithmetic(op string, f *FieldSet) string {
	name := strings.Split(op, ".")[0]
	return fmt.Sprintf("Floating point %s (%s precision): %s = %s %s %s",
		name, f.v("precision"), f.v("fd"), f.v("fs"), name, f.v("ft"))
}
