package renderer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/ChainSafe/mips-explain/explainer"
	"github.com/ChainSafe/mips-explain/profile"
	"github.com/ChainSafe/mips-explain/translator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func explain(t *testing.T, text string, hex bool) *explainer.Report {
	t.Helper()
	report, err := explainer.New(translator.New()).Explain(text, hex)
	require.NoError(t, err)
	return report
}

func TestTextRendererBinary(t *testing.T) {
	var out bytes.Buffer
	err := NewTextRenderer(nil).Render([]*explainer.Report{explain(t, "012a4020", true)}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "Input: 012a4020 (hex)")
	assert.Contains(t, text, "Type: R\n")
	assert.Regexp(t, `rs\s+01001\s+9\s+\$t1`, text)
	assert.Regexp(t, `rd\s+01000\s+8\s+\$t0`, text)
	assert.Regexp(t, `funct\s+100000\s+32`, text)
	assert.NotContains(t, text, ansiReset)
}

func TestTextRendererITrap(t *testing.T) {
	// tgei $a0, 5
	var out bytes.Buffer
	err := NewTextRenderer(nil).Render([]*explainer.Report{explain(t, "04880005", true)}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Type: I-Trap")
	assert.Contains(t, out.String(), "Trap: tgei")
}

func TestTextRendererRegisterPrefix(t *testing.T) {
	prof := profile.Default()
	prof.RegisterPrefix = "%"

	var out bytes.Buffer
	err := NewTextRenderer(prof).Render([]*explainer.Report{explain(t, "012a4020", true)}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "%t1")
}

func TestTextRendererMnemonic(t *testing.T) {
	report := explain(t, "lw $t0, 4($sp)", false)
	report.Address = "0x400000"
	report.Segment = "main"

	var out bytes.Buffer
	require.NoError(t, NewTextRenderer(nil).Render([]*explainer.Report{report}, &out))

	text := out.String()
	assert.Contains(t, text, "0x400000 <main>")
	assert.Contains(t, text, "Operation: lw")
	assert.Contains(t, text, "Explanation: Load word: lw $t0, 4($sp)")
	assert.Regexp(t, `offset\s+4`, text)
}

func TestTextRendererEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewTextRenderer(nil).Render(nil, &out))
	assert.Empty(t, out.String())
}

func TestJSONRenderer(t *testing.T) {
	var out bytes.Buffer
	reports := []*explainer.Report{explain(t, "08000004", true), explain(t, "nop", false)}
	require.NoError(t, NewJSONRenderer().Render(reports, &out))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	binary, ok := decoded[0]["binary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "J", binary["type"])
	assert.Equal(t, "000010", binary["opcode"])
	data, ok := binary["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "00000000000000000000000100", data["address"])

	mnemonic, ok := decoded[1]["mnemonic"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "No operation: does nothing", mnemonic["explanation"])
}

func TestNew(t *testing.T) {
	r, err := New("json", nil)
	require.NoError(t, err)
	assert.Equal(t, "json", r.Format())

	r, err = New("text", profile.Default())
	require.NoError(t, err)
	assert.Equal(t, "text", r.Format())

	_, err = New("html", nil)
	assert.Error(t, err)
}
