package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/stencil/internal/core/content"
	"github.com/colonyops/stencil/internal/core/styles"
	"github.com/colonyops/stencil/internal/stencil"
	"github.com/colonyops/stencil/pkg/iojson"
)

type GenerateCmd struct {
	flags *Flags
	input iojson.FileReader[map[string]any]

	// flags
	templateID string
	format     string
	output     string
	jsonOutput bool
	strict     bool
}

// NewGenerateCmd creates a new generate command
func NewGenerateCmd(flags *Flags) *GenerateCmd {
	return &GenerateCmd{flags: flags}
}

// Register adds the generate command to the application
func (cmd *GenerateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "generate",
		Usage:     "Render a template into a validated todo list",
		UsageText: "stencil generate --template <id> [--file input.json] [--format yaml]",
		Description: `Renders the named template with JSON input read from --file or stdin,
runs the validation suite over the result, and writes the generated body
to stdout. The validation report goes to stderr.

Identical input always produces an identical body.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "template",
				Aliases:     []string{"t"},
				Usage:       "template id to render",
				Required:    true,
				Destination: &cmd.templateID,
			},
			cmd.input.Flag(),
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (yaml, json, markdown, text); defaults to the template's format",
				Destination: &cmd.format,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write the body to a file instead of stdout",
				Destination: &cmd.output,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit the full generation record and report as JSON",
				Destination: &cmd.jsonOutput,
			},
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "exit non-zero when the validation report has errors",
				Destination: &cmd.strict,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *GenerateCmd) run(ctx context.Context, c *cli.Command) error {
	input, err := cmd.input.Read()
	if err != nil {
		return err
	}

	opts := stencil.GenerateOptions{TemplateID: cmd.templateID, Input: input}
	if cmd.format != "" {
		format, err := content.ParseFormat(cmd.format)
		if err != nil {
			return err
		}
		opts.Format = format
	}

	res, err := cmd.flags.App.Generator.Generate(ctx, opts)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if cmd.jsonOutput {
		if err := iojson.Write(res); err != nil {
			return err
		}
	} else {
		if cmd.output != "" {
			if err := os.WriteFile(cmd.output, []byte(res.Content.Body), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		} else {
			fmt.Print(res.Content.Body)
		}
		fmt.Fprint(os.Stderr, styles.FormatReport(res.Report))
	}

	if cmd.strict && !res.Report.IsValid {
		return cli.Exit("validation failed", 1)
	}
	return nil
}
