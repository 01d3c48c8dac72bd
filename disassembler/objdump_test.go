package disassembler

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultTool(t *testing.T) {
	assert.Equal(t, DefaultTool, New("").Tool)
	assert.Equal(t, "mips-linux-gnu-objdump", New("mips-linux-gnu-objdump").Tool)
}

func TestDisassembleToolNotFound(t *testing.T) {
	_, err := New("no-such-objdump-tool").Disassemble(context.Background(), "a.out", "")
	require.ErrorIs(t, err, ErrToolNotFound)
}

func TestDisassembleWritesOutput(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	out := filepath.Join(t.TempDir(), "listing.txt")
	listing, err := New("echo").Disassemble(context.Background(), "prog.elf", out)
	require.NoError(t, err)
	assert.Contains(t, listing, "-d")
	assert.Contains(t, listing, "prog.elf")

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, listing, string(written))
}
