package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/stencil/internal/core/styles"
	"github.com/colonyops/stencil/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "stencil config validate [--json]",
				Description: "Validates the configuration file, checking formats, glob patterns, endpoint syntax, and file paths.",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	err := cmd.flags.Config.ValidateDeep()

	if cmd.jsonOutput {
		out := struct {
			Valid bool   `json:"valid"`
			Error string `json:"error,omitempty"`
		}{Valid: err == nil}
		if err != nil {
			out.Error = err.Error()
		}
		if werr := iojson.Write(out); werr != nil {
			return werr
		}
	} else if err != nil {
		fmt.Fprintln(os.Stderr, styles.Error.Render("config invalid"))
		fmt.Fprintln(os.Stderr, err.Error())
	} else {
		fmt.Println(styles.Success.Render("config ok"))
	}

	if err != nil {
		return cli.Exit("", 1)
	}
	return nil
}
