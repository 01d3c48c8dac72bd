package cmd

import (
	"os/signal"
	"syscall"

	"github.com/ChainSafe/mips-explain/explainer"
	"github.com/ChainSafe/mips-explain/server"
	"github.com/ChainSafe/mips-explain/translator"
	"github.com/urfave/cli/v2"
)

var ListenFlag = &cli.StringFlag{
	Name:        "listen",
	Usage:       "address the HTTP endpoint listens on",
	Required:    false,
	DefaultText: ":1357",
	EnvVars:     []string{envPrefix + "LISTEN"},
}

func CreateServeCommand(action cli.ActionFunc) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Usage:       "Serves explanations over HTTP",
		Description: "Serves POST /explain, GET /registers and GET /healthz until interrupted",
		Action:      action,
		Flags: []cli.Flag{
			ProfileFlag,
			ModeFlag,
			LogLevelFlag,
			ListenFlag,
		},
	}
}

var ServeCommand = CreateServeCommand(Serve)

func Serve(ctx *cli.Context) error {
	prof, err := loadProfile(ctx)
	if err != nil {
		return err
	}
	log := newLogger(prof)

	sigCtx, stop := signal.NotifyContext(ctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(explainer.New(translator.New()), explainer.Mode(prof.Mode), log)
	return srv.Start(sigCtx, prof.Listen)
}
