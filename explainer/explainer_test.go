package explainer

import (
	"testing"

	"github.com/ChainSafe/mips-explain/decoder"
	"github.com/ChainSafe/mips-explain/mnemonic"
	"github.com/ChainSafe/mips-explain/translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExplainHex(t *testing.T) {
	e := New(translator.New())

	// add $t0, $t1, $t2
	report, err := e.ExplainSelection(StaticSelection{Text: " 012a4020\n", Hex: true})
	require.NoError(t, err)

	assert.Equal(t, ModeHex, report.Mode)
	assert.Equal(t, "012a4020", report.Input)
	assert.Nil(t, report.Mnemonic)
	require.NotNil(t, report.Binary)
	assert.Equal(t, decoder.FormatR, report.Binary.Type)
	assert.Equal(t, &decoder.RFields{
		Opcode: "000000",
		Rs:     "01001",
		Rt:     "01010",
		Rd:     "01000",
		Shamt:  "00000",
		Funct:  "100000",
	}, report.Binary.Fields)
}

func TestExplainBitstring(t *testing.T) {
	e := New(translator.New())

	report, err := e.Explain("00001000000000000000000000000100", true)
	require.NoError(t, err)
	assert.Equal(t, decoder.FormatJ, report.Binary.Type)
}

func TestExplainHexErrors(t *testing.T) {
	e := New(translator.New())

	_, err := e.Explain("not-hex", true)
	assert.ErrorIs(t, err, translator.ErrInvalidHex)

	_, err = e.Explain("", true)
	assert.Error(t, err)
}

func TestExplainAsm(t *testing.T) {
	e := New(translator.New())

	report, err := e.ExplainSelection(StaticSelection{Text: "add $t0, $t1, $t2"})
	require.NoError(t, err)

	assert.Equal(t, ModeAsm, report.Mode)
	assert.Nil(t, report.Binary)
	require.NotNil(t, report.Mnemonic)
	assert.Equal(t, "$t0 = $t1 + $t2 (with overflow check)", report.Mnemonic.Explanation)
	assert.Equal(t, "100000", report.Mnemonic.Fields.Get("funct").Value)

	report, err = e.Explain("frobnicate $t0", false)
	require.NoError(t, err)
	assert.Equal(t, "Unknown instruction: frobnicate", report.Mnemonic.Explanation)

	_, err = e.Explain("lw $t0, 4", false)
	assert.ErrorIs(t, err, mnemonic.ErrMalformedOperand)
}

func TestExplainIdempotent(t *testing.T) {
	e := New(translator.New())

	first, err := e.Explain("8fa40008", true)
	require.NoError(t, err)
	second, err := e.Explain("8fa40008", true)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
