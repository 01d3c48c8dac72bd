// Package renderer provides a way to render explanation reports in different formats.
package renderer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/ChainSafe/mips-explain/decoder"
	"github.com/ChainSafe/mips-explain/explainer"
	"github.com/ChainSafe/mips-explain/mnemonic"
	"github.com/ChainSafe/mips-explain/profile"
	"golang.org/x/term"
)

const (
	ansiBold  = "\033[1m"
	ansiCyan  = "\033[96m"
	ansiReset = "\033[0m"
)

// TextRenderer formats reports as aligned field tables.
type TextRenderer struct {
	profile *profile.Profile
}

// NewTextRenderer creates a new instance of TextRenderer.
func NewTextRenderer(prof *profile.Profile) Renderer {
	if prof == nil {
		prof = profile.Default()
	}
	return &TextRenderer{profile: prof}
}

// Render formats and writes the reports. Headings are highlighted when the
// output is a terminal.
func (r *TextRenderer) Render(reports []*explainer.Report, output io.Writer) error {
	if len(reports) == 0 {
		return nil
	}
	highlight := isTerminal(output)

	var report strings.Builder
	report.WriteString("==============================\n")
	report.WriteString("🔍 MIPS Instruction Explanation\n")
	report.WriteString("==============================\n")

	for _, rep := range reports {
		report.WriteString("\n")
		if rep.Address != "" {
			report.WriteString(fmt.Sprintf("📍 %s <%s>\n", rep.Address, rep.Segment))
		}
		report.WriteString(fmt.Sprintf("%s %s (%s)\n", heading("Input:", highlight), rep.Input, rep.Mode))
		if rep.Binary != nil {
			r.writeBinary(&report, rep.Binary, highlight)
		}
		if rep.Mnemonic != nil {
			r.writeMnemonic(&report, rep.Mnemonic, highlight)
		}
		report.WriteString("------------------------------\n")
	}

	_, err := output.Write([]byte(report.String()))
	return err
}

func (r *TextRenderer) writeBinary(report *strings.Builder, instr *decoder.Instruction, highlight bool) {
	report.WriteString(fmt.Sprintf("%s %s\n", heading("Type:", highlight), instr.Type))

	tw := tabwriter.NewWriter(report, 0, 0, 2, ' ', 0)
	for _, seg := range instr.Fields.Segments() {
		register := ""
		if seg.Register {
			register = r.profile.RegisterPrefix + decoder.RegisterName(seg.Bits)
		}
		_, _ = fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", seg.Name, seg.Bits, decimal(seg.Bits), register)
	}
	_ = tw.Flush()

	switch fields := instr.Fields.(type) {
	case *decoder.ITrapFields:
		condition := decoder.UnknownRegister
		if fields.RtName != nil {
			condition = *fields.RtName
		}
		report.WriteString(fmt.Sprintf("%s %s\n", heading("Trap:", highlight), condition))
	case *decoder.Cop0Fields:
		report.WriteString(fmt.Sprintf("%s %s\n", heading("Coprocessor:", highlight), fields.Coprocessor))
	case *decoder.Cop1Fields:
		report.WriteString(fmt.Sprintf("%s %s\n", heading("Coprocessor:", highlight), fields.Coprocessor))
	case *decoder.Cop2Fields:
		report.WriteString(fmt.Sprintf("%s %s\n", heading("Coprocessor:", highlight), fields.Coprocessor))
	case *decoder.UnknownFields:
		report.WriteString("Unknown instruction\n")
	}
}

func (r *TextRenderer) writeMnemonic(report *strings.Builder, res *mnemonic.Result, highlight bool) {
	report.WriteString(fmt.Sprintf("%s %s\n", heading("Operation:", highlight), res.Operation))
	report.WriteString(fmt.Sprintf("%s %s\n", heading("Explanation:", highlight), res.Explanation))

	tw := tabwriter.NewWriter(report, 0, 0, 2, ' ', 0)
	for _, name := range res.Fields.Names() {
		_, _ = fmt.Fprintf(tw, "  %s\t%s\n", name, res.Fields.Get(name))
	}
	_ = tw.Flush()
}

// Format returns the format type.
func (r *TextRenderer) Format() string {
	return "text"
}

func heading(s string, highlight bool) string {
	if !highlight {
		return s
	}
	return ansiBold + ansiCyan + s + ansiReset
}

func decimal(bits string) string {
	v, err := strconv.ParseUint(bits, 2, 64)
	if err != nil {
		return ""
	}
	return strconv.FormatUint(v, 10)
}

func isTerminal(output io.Writer) bool {
	f, ok := output.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec
}
