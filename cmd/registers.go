package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ChainSafe/mips-explain/decoder"
	"github.com/urfave/cli/v2"
)

var RegistersCommand = &cli.Command{
	Name:        "registers",
	Usage:       "Prints the register table",
	Description: "Prints the 32 general purpose registers with their 5 bit codes",
	Action:      PrintRegisters,
	Flags: []cli.Flag{
		ProfileFlag,
		FormatFlag,
	},
}

func PrintRegisters(ctx *cli.Context) error {
	prof, err := loadProfile(ctx)
	if err != nil {
		return err
	}

	regs := decoder.Registers()
	if prof.Format == "json" {
		return json.NewEncoder(os.Stdout).Encode(regs)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, reg := range regs {
		_, _ = fmt.Fprintf(tw, "%s\t%s%s\n", reg.Code, prof.RegisterPrefix, reg.Name)
	}
	return tw.Flush()
}
