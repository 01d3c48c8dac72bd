package cmd

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ChainSafe/mips-explain/asmparser/mips"
	"github.com/ChainSafe/mips-explain/explainer"
	"github.com/ChainSafe/mips-explain/translator"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

const listing = `00400000 <main>:
  400000:	012a4020 	add	t0,t1,t2
  400004:	8fa40008 	lw	a0,8(sp)
  400008:	04880005 	tgei	a0,5
`

func newApp() *cli.App {
	app := cli.NewApp()
	app.Commands = []*cli.Command{ExplainCommand, ListingCommand, RegistersCommand}
	return app
}

func readReports(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var reports []map[string]any
	require.NoError(t, json.Unmarshal(data, &reports))
	return reports
}

func TestExplainCommandJSON(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	err := newApp().Run([]string{"mips-explain", "explain", "--format", "json", "--report-output-path", out, "0x012a4020"})
	require.NoError(t, err)

	reports := readReports(t, out)
	require.Len(t, reports, 1)
	assert.Equal(t, "0x012a4020", reports[0]["input"])
	binary, ok := reports[0]["binary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "R", binary["type"])
}

func TestExplainCommandAsmJoinsArgs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	err := newApp().Run([]string{"mips-explain", "explain", "--mode", "asm", "--format", "json",
		"--report-output-path", out, "add", "$t0,", "$t1,", "$t2"})
	require.NoError(t, err)

	reports := readReports(t, out)
	require.Len(t, reports, 1)
	res, ok := reports[0]["mnemonic"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "$t0 = $t1 + $t2 (with overflow check)", res["explanation"])
}

func TestExplainCommandProfileOverride(t *testing.T) {
	dir := t.TempDir()
	profilePath := filepath.Join(dir, "profile.yaml")
	require.NoError(t, os.WriteFile(profilePath, []byte("mode: asm\nformat: text\n"), 0600))

	out := filepath.Join(dir, "report.json")
	err := newApp().Run([]string{"mips-explain", "explain", "--profile", profilePath, "--format", "json",
		"--report-output-path", out, "nop"})
	require.NoError(t, err)

	reports := readReports(t, out)
	require.Len(t, reports, 1)
	assert.Equal(t, "asm", reports[0]["mode"])
}

func TestExplainCommandErrors(t *testing.T) {
	err := newApp().Run([]string{"mips-explain", "explain"})
	require.Error(t, err)

	err = newApp().Run([]string{"mips-explain", "explain", "--mode", "octal", "1"})
	require.ErrorContains(t, err, "invalid mode")

	err = newApp().Run([]string{"mips-explain", "explain", "--report-output-path", filepath.Join(t.TempDir(), "r"), "zz"})
	require.ErrorContains(t, err, "invalid hexadecimal instruction")
}

func TestListingCommand(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "main.lst")
	require.NoError(t, os.WriteFile(src, []byte(listing), 0600))

	out := filepath.Join(dir, "report.json")
	err := newApp().Run([]string{"mips-explain", "listing", "--format", "json", "--report-output-path", out, src})
	require.NoError(t, err)

	reports := readReports(t, out)
	require.Len(t, reports, 3)
	assert.Equal(t, "0x400000", reports[0]["address"])
	assert.Equal(t, "main", reports[0]["segment"])
	assert.Contains(t, reports[0], "binary")
	assert.Contains(t, reports[0], "mnemonic")
}

func TestExplainSegments(t *testing.T) {
	segments, err := mips.NewParser(false).ParseReader(strings.NewReader(listing))
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)
	reports := explainSegments(explainer.New(translator.New()), segments, log)
	require.Len(t, reports, 3)

	add := reports[0]
	assert.Equal(t, "add t0, t1, t2", add.Input)
	require.NotNil(t, add.Binary)
	assert.Equal(t, "R", string(add.Binary.Type))
	require.NotNil(t, add.Mnemonic)
	assert.Equal(t, "t0 = t1 + t2 (with overflow check)", add.Mnemonic.Explanation)

	lw := reports[1]
	require.NotNil(t, lw.Mnemonic)
	assert.Equal(t, "Load word: lw a0, 8(sp)", lw.Mnemonic.Explanation)
	assert.Equal(t, "I", string(lw.Binary.Type))

	trap := reports[2]
	assert.Equal(t, "I-Trap", string(trap.Binary.Type))
	require.NotNil(t, trap.Mnemonic)
	assert.Equal(t, "Unknown instruction: tgei", trap.Mnemonic.Explanation)
}

func TestRegistersCommandRejectsBadFormat(t *testing.T) {
	err := newApp().Run([]string{"mips-explain", "registers", "--format", "xml"})
	require.ErrorContains(t, err, "invalid format")
}
