package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/mips-explain/asmparser"
	"github.com/ChainSafe/mips-explain/asmparser/mips"
	"github.com/ChainSafe/mips-explain/disassembler"
	"github.com/ChainSafe/mips-explain/explainer"
	"github.com/ChainSafe/mips-explain/mnemonic"
	"github.com/ChainSafe/mips-explain/translator"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var (
	LittleEndianFlag = &cli.BoolFlag{
		Name:     "little-endian",
		Usage:    "listing bytes are little-endian (mipsel)",
		Required: false,
		Value:    false,
		EnvVars:  []string{envPrefix + "LITTLE_ENDIAN"},
	}
	BinaryFlag = &cli.BoolFlag{
		Name:     "binary",
		Usage:    "treat the argument as a compiled binary and disassemble it first",
		Required: false,
		Value:    false,
	}
	ObjdumpFlag = &cli.StringFlag{
		Name:     "objdump",
		Usage:    "objdump tool used with --binary",
		Required: false,
		Value:    disassembler.DefaultTool,
		EnvVars:  []string{envPrefix + "OBJDUMP"},
	}
	DisassemblyOutputFlag = &cli.PathFlag{
		Name:     "disassembly-output-path",
		Usage:    "File path to store the disassembled assembly code",
		Required: false,
	}
)

func CreateListingCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "listing",
		Usage:       "Explains every instruction of an objdump listing",
		Description: "Explains every instruction of an objdump listing both from its encoded word and from its disassembled text",
		ArgsUsage:   "<listing-file | binary>",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			FormatFlag,
			LogLevelFlag,
			ReportOutputPathFlag,
			LittleEndianFlag,
			BinaryFlag,
			ObjdumpFlag,
			DisassemblyOutputFlag,
		},
	}
}

var ListingCommand = CreateListingCommand(ExplainListing)

func ExplainListing(ctx *cli.Context) error {
	prof, err := loadProfile(ctx)
	if err != nil {
		return err
	}
	log := newLogger(prof)

	source := ctx.Args().First()
	if source == "" {
		return errors.New("no listing given")
	}

	parser := mips.NewParser(ctx.Bool(LittleEndianFlag.Name))
	var segments []asmparser.Segment
	if ctx.Bool(BinaryFlag.Name) {
		listing, err := disassembler.New(ctx.String(ObjdumpFlag.Name)).
			Disassemble(ctx.Context, source, ctx.Path(DisassemblyOutputFlag.Name))
		if err != nil {
			return fmt.Errorf("error disassembling the file: %w", err)
		}
		segments, err = parser.ParseReader(strings.NewReader(listing))
		if err != nil {
			return fmt.Errorf("error parsing disassembly: %w", err)
		}
	} else {
		segments, err = parser.Parse(source)
		if err != nil {
			return fmt.Errorf("error parsing listing: %w", err)
		}
	}

	reports := explainSegments(explainer.New(translator.New()), segments, log)
	log.WithFields(logrus.Fields{
		"segments":     len(segments),
		"instructions": len(reports),
	}).Debug("listing explained")
	dump(log, reports)

	if err := writeReport(reports, ctx.Path(ReportOutputPathFlag.Name), prof); err != nil {
		return fmt.Errorf("unable to write report: %w", err)
	}
	return nil
}

// explainSegments explains each listed instruction from both its encoding and
// its text. A line whose text cannot be parsed keeps its binary view.
func explainSegments(exp *explainer.Explainer, segments []asmparser.Segment, log logrus.FieldLogger) []*explainer.Report {
	reports := make([]*explainer.Report, 0)
	for _, seg := range segments {
		for _, instr := range seg.Instructions() {
			rep := &explainer.Report{
				Input:   instr.Text(),
				Mode:    explainer.ModeHex,
				Address: instr.Address(),
				Segment: seg.Label(),
			}

			entry := log.WithFields(logrus.Fields{
				"address": instr.Address(),
				"line":    instr.Line(),
			})
			binary, err := exp.DecodeWord(instr.Word())
			if err != nil {
				entry.WithError(err).Warn("unable to decode instruction word")
			} else {
				rep.Binary = binary
			}

			res, err := exp.DecodeLine(instr.Text())
			switch {
			case errors.Is(err, mnemonic.ErrMalformedOperand):
				entry.WithError(err).Warn("unable to decode instruction text")
			case err != nil:
				entry.WithError(err).Error("unexpected decode failure")
			default:
				rep.Mnemonic = res
			}
			reports = append(reports, rep)
		}
	}
	return reports
}
