package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/mips-explain/explainer"
	"github.com/ChainSafe/mips-explain/translator"
	"github.com/urfave/cli/v2"
)

func CreateExplainCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "explain",
		Usage:       "Explains a single MIPS instruction",
		Description: "Explains a hex or binary machine word field by field, or an assembly line by its mnemonic. Example: explain 012a4020, explain --mode asm 'add $t0, $t1, $t2'",
		ArgsUsage:   "<instruction>",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			ModeFlag,
			FormatFlag,
			LogLevelFlag,
			ReportOutputPathFlag,
		},
	}
}

var ExplainCommand = CreateExplainCommand(ExplainInstruction)

func ExplainInstruction(ctx *cli.Context) error {
	prof, err := loadProfile(ctx)
	if err != nil {
		return err
	}
	log := newLogger(prof)

	text := strings.Join(ctx.Args().Slice(), " ")
	if strings.TrimSpace(text) == "" {
		return errors.New("no instruction given")
	}

	sel := explainer.StaticSelection{Text: text, Hex: prof.Mode == string(explainer.ModeHex)}
	report, err := explainer.New(translator.New()).ExplainSelection(sel)
	if err != nil {
		return fmt.Errorf("unable to explain %q: %w", text, err)
	}
	reports := []*explainer.Report{report}
	dump(log, reports)

	if err := writeReport(reports, ctx.Path(ReportOutputPathFlag.Name), prof); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}
