package main

import (
	"context"
	"log"
	"os"

	"github.com/ChainSafe/mips-explain/cmd"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = os.Args[0]
	app.Usage = "MIPS Instruction Explainer"
	app.Description = "Explains MIPS machine words and assembly lines field by field"
	app.Commands = []*cli.Command{
		cmd.ExplainCommand,
		cmd.ListingCommand,
		cmd.RegistersCommand,
		cmd.ServeCommand,
	}
	err := app.RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
