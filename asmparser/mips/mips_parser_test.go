package mips

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleListing = `/sample: file format elf32-tradbigmips

Disassembly of section .text:

00011000 <internal/abi.Kind.String>:
   11000:   8fc10008  lw at,8(s8)
   11004:   003d082b  sltu at,at,sp
   11008:	0000000c 	syscall
   1100c:	0c023676 	jal	8d9d8 <runtime.read>
   11010:   00000000  nop
0008d9d8 <runtime.read>:
   8d9d8:	8fa40008 	lw	a0,8(sp)
   8d9e4:	24021388 	addiu	v0,zero,5000
   8d9ec:	10e00002 	beqz	a3,8d9f8 <runtime.read+0x20>
   8d9f0:	46020000 	add.s	$f0,$f0,$f2
`

func TestParse(t *testing.T) {
	tempFile, err := os.CreateTemp("", "sample.asm")
	require.NoError(t, err)
	defer os.Remove(tempFile.Name())

	_, err = tempFile.WriteString(sampleListing)
	require.NoError(t, err)
	require.NoError(t, tempFile.Close())

	segments, err := NewParser(false).Parse(tempFile.Name())
	require.NoError(t, err)
	require.Len(t, segments, 2)

	segment1, segment2 := segments[0], segments[1]
	assert.Equal(t, "internal/abi.Kind.String", segment1.Label())
	assert.Equal(t, "0x11000", segment1.Address())
	assert.Equal(t, "runtime.read", segment2.Label())
	assert.Equal(t, "0x8d9d8", segment2.Address())

	instrs := segment1.Instructions()
	require.Len(t, instrs, 5)

	assert.Equal(t, "0x11000", instrs[0].Address())
	assert.Equal(t, "8fc10008", instrs[0].Word())
	assert.Equal(t, "lw", instrs[0].Mnemonic())
	assert.Equal(t, []string{"at", "8(s8)"}, instrs[0].Operands())
	assert.Equal(t, "lw at, 8(s8)", instrs[0].Text())
	assert.Equal(t, 6, instrs[0].Line())

	assert.Equal(t, "sltu at, at, sp", instrs[1].Text())

	assert.Equal(t, "syscall", instrs[2].Text())
	assert.Empty(t, instrs[2].Operands())

	// symbol annotations are dropped from operands
	assert.Equal(t, "jal", instrs[3].Mnemonic())
	assert.Equal(t, []string{"8d9d8"}, instrs[3].Operands())

	assert.Equal(t, "00000000", instrs[4].Word())
	assert.Equal(t, "nop", instrs[4].Mnemonic())

	instrs = segment2.Instructions()
	require.Len(t, instrs, 4)
	assert.Equal(t, "24021388", instrs[1].Word())
	assert.Equal(t, "addiu v0, zero, 5000", instrs[1].Text())
	assert.Equal(t, []string{"a3", "8d9f8"}, instrs[2].Operands())
	assert.Equal(t, "add.s", instrs[3].Mnemonic())
}

func TestParseByteGroups(t *testing.T) {
	listing := `00400000 <main>:
  400000: 8f a4 00 08   lw $a0, 8($sp)
`
	segments, err := NewParser(false).ParseReader(strings.NewReader(listing))
	require.NoError(t, err)
	require.Len(t, segments, 1)
	assert.Equal(t, "8fa40008", segments[0].Instructions()[0].Word())

	listing = `00400000 <main>:
  400000: 08 00 a4 8f   lw $a0, 8($sp)
`
	segments, err = NewParser(true).ParseReader(strings.NewReader(listing))
	require.NoError(t, err)
	assert.Equal(t, "8fa40008", segments[0].Instructions()[0].Word())
	assert.Equal(t, "lw $a0, 8($sp)", segments[0].Instructions()[0].Text())
}

func TestParseInstructionBeforeSegment(t *testing.T) {
	_, err := NewParser(false).ParseReader(strings.NewReader("   11000:   8fc10008  lw at,8(s8)\n"))
	assert.ErrorContains(t, err, "instruction encountered before segment definition")
}

func TestParseMissingFile(t *testing.T) {
	_, err := NewParser(false).Parse("does-not-exist.asm")
	assert.ErrorContains(t, err, "error opening file")
}
