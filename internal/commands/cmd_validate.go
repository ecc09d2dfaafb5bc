package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/stencil/internal/core/content"
	"github.com/colonyops/stencil/internal/core/styles"
	"github.com/colonyops/stencil/pkg/iojson"
)

type ValidateCmd struct {
	flags *Flags

	// flags
	format     string
	jsonOutput bool
}

// NewValidateCmd creates a new validate command
func NewValidateCmd(flags *Flags) *ValidateCmd {
	return &ValidateCmd{flags: flags}
}

// Register adds the validate command to the application
func (cmd *ValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "validate",
		Usage:     "Validate an existing todo list document",
		UsageText: "stencil validate [file]",
		Description: `Parses a todo list from the given file (or stdin) and prints the scored
validation report. Exits non-zero when the report contains errors.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "document format (yaml or json)",
				Value:       "yaml",
				Destination: &cmd.format,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit the report as JSON",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *ValidateCmd) run(ctx context.Context, c *cli.Command) error {
	raw, err := readSource(c.Args().First())
	if err != nil {
		return err
	}

	format, err := content.ParseFormat(cmd.format)
	if err != nil {
		return err
	}

	report, err := cmd.flags.App.Generator.ValidateSource(raw, format)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if cmd.jsonOutput {
		if err := iojson.Write(report); err != nil {
			return err
		}
	} else {
		fmt.Print(styles.FormatReport(report))
	}

	if !report.IsValid {
		return cli.Exit("", 1)
	}
	return nil
}

func readSource(path string) ([]byte, error) {
	if path == "" || path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}
