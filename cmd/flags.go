// Package cmd defines all the commands for the cli
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ChainSafe/mips-explain/explainer"
	"github.com/ChainSafe/mips-explain/profile"
	"github.com/ChainSafe/mips-explain/renderer"
	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const envPrefix = "MIPS_EXPLAIN_"

var (
	ProfileFlag = &cli.PathFlag{
		Name:     "profile",
		Usage:    "Path to the explainer profile config file",
		Required: false,
		EnvVars:  []string{envPrefix + "PROFILE"},
	}
	ModeFlag = &cli.StringFlag{
		Name:     "mode",
		Usage:    "interpretation of the input. Options: hex, asm",
		Required: false,
		EnvVars:  []string{envPrefix + "MODE"},
	}
	FormatFlag = &cli.StringFlag{
		Name:        "format",
		Usage:       "format of the output. Options: json, text",
		Required:    false,
		DefaultText: "text",
		EnvVars:     []string{envPrefix + "FORMAT"},
	}
	LogLevelFlag = &cli.StringFlag{
		Name:        "log-level",
		Usage:       "logging level. Options: panic, fatal, error, warn, info, debug, trace",
		Required:    false,
		DefaultText: "info",
		EnvVars:     []string{envPrefix + "LOG_LEVEL"},
	}
	ReportOutputPathFlag = &cli.PathFlag{
		Name:     "report-output-path",
		Usage:    "output file path for report. Default: stdout",
		Required: false,
		EnvVars:  []string{envPrefix + "OUTPUT"},
	}
)

// loadProfile reads the profile file and applies flag overrides on top of it.
func loadProfile(ctx *cli.Context) (*profile.Profile, error) {
	prof, err := profile.LoadProfile(ctx.Path(ProfileFlag.Name))
	if err != nil {
		return nil, fmt.Errorf("error loading profile: %w", err)
	}

	overrides := map[string]*string{
		ModeFlag.Name:     &prof.Mode,
		FormatFlag.Name:   &prof.Format,
		LogLevelFlag.Name: &prof.LogLevel,
		ListenFlag.Name:   &prof.Listen,
	}
	for name, field := range overrides {
		if ctx.IsSet(name) {
			*field = ctx.String(name)
		}
	}
	if err := prof.Validate(); err != nil {
		return nil, err
	}
	return prof, nil
}

func newLogger(prof *profile.Profile) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	// Validate has already accepted the level.
	if level, err := logrus.ParseLevel(prof.LogLevel); err == nil {
		log.SetLevel(level)
	}
	return log
}

// dump writes the full decode result when debug logging is enabled.
func dump(log *logrus.Logger, reports []*explainer.Report) {
	if !log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	for _, rep := range reports {
		entry := log.WithFields(logrus.Fields{
			"mode":  rep.Mode,
			"input": rep.Input,
		})
		if rep.Binary != nil {
			entry = entry.WithField("type", rep.Binary.Type)
		}
		entry.Debug(spew.Sdump(rep))
	}
}

// writeReport outputs the reports in the profile's format.
func writeReport(reports []*explainer.Report, outputPath string, prof *profile.Profile) error {
	r, err := renderer.New(prof.Format, prof)
	if err != nil {
		return err
	}

	var output io.Writer = os.Stdout
	if outputPath != "" {
		absPath, err := filepath.Abs(outputPath)
		if err != nil {
			return fmt.Errorf("unable to determine absolute path: %w", err)
		}
		file, err := os.OpenFile(absPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("unable to open output file: %w", err)
		}
		defer func() {
			_ = file.Close()
		}()
		output = file
	}
	return r.Render(reports, output)
}
