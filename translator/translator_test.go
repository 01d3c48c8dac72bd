package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToBinary(t *testing.T) {
	tr := New()

	bits, err := tr.HexToBinary("8fa40008")
	require.NoError(t, err)
	assert.Equal(t, "10001111101001000000000000001000", bits)

	bits, err = tr.HexToBinary("0x012A4020")
	require.NoError(t, err)
	assert.Equal(t, "00000001001010100100000000100000", bits)

	bits, err = tr.HexToBinary(" c ")
	require.NoError(t, err)
	assert.Len(t, bits, 32)
	assert.Equal(t, "00000000000000000000000000001100", bits)

	for _, in := range []string{"", "0x", "123456789", "zz", "-1"} {
		_, err = tr.HexToBinary(in)
		assert.ErrorIs(t, err, ErrInvalidHex, in)
	}
}

func TestFunctCode(t *testing.T) {
	tr := New()

	code, ok := tr.FunctCode("add")
	assert.True(t, ok)
	assert.Equal(t, "100000", code)

	code, ok = tr.FunctCode("TEQ")
	assert.True(t, ok)
	assert.Equal(t, "110100", code)

	_, ok = tr.FunctCode("lw")
	assert.False(t, ok)
}
