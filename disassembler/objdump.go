// Package disassembler produces MIPS listings from compiled binaries.
package disassembler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// DefaultTool is the objdump binary used when none is configured.
const DefaultTool = "llvm-objdump"

// ErrToolNotFound is returned when the objdump tool is not on PATH.
var ErrToolNotFound = errors.New("disassembler tool not found")

type Objdump struct {
	Tool string
}

func New(tool string) *Objdump {
	if tool == "" {
		tool = DefaultTool
	}
	return &Objdump{Tool: tool}
}

// Disassemble runs the tool over target and returns the listing. When
// outputPath is set the listing is also written there.
func (o *Objdump) Disassemble(ctx context.Context, target string, outputPath string) (string, error) {
	tool, err := exec.LookPath(o.Tool)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, o.Tool)
	}

	absPath, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}

	//nolint:gosec
	cmd := exec.CommandContext(ctx, tool, "-d", absPath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("failed to generate binary disassembly: %w\nOutput:\n%s", err, string(output))
	}

	if outputPath != "" {
		absOutputPath, err := filepath.Abs(outputPath)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path of output file: %w", err)
		}
		if err := os.WriteFile(absOutputPath, output, 0600); err != nil {
			return "", fmt.Errorf("failed to write to output file: %w", err)
		}
	}
	return string(output), nil
}
