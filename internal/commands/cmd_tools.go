package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/stencil/internal/tools"
	"github.com/colonyops/stencil/pkg/iojson"
)

type ToolsCmd struct {
	flags *Flags
}

// NewToolsCmd creates a new tools command group
func NewToolsCmd(flags *Flags) *ToolsCmd {
	return &ToolsCmd{flags: flags}
}

// Register adds the tools command group to the application
func (cmd *ToolsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "tools",
		Usage: "Inspect and invoke the embedded tool surface",
		Commands: []*cli.Command{
			{
				Name:      "specs",
				Usage:     "Print tool specs as JSON",
				UsageText: "stencil tools specs",
				Action:    cmd.runSpecs,
			},
			{
				Name:      "call",
				Usage:     "Invoke a tool with JSON input from stdin",
				UsageText: "stencil tools call <name> < input.json",
				Action:    cmd.runCall,
			},
		},
	})

	return app
}

func (cmd *ToolsCmd) registry() *tools.Registry {
	return tools.NewRegistry(
		tools.NewGenerateTool(cmd.flags.App),
		tools.NewValidateTool(cmd.flags.App),
		tools.NewGetContentTool(cmd.flags.App),
	)
}

func (cmd *ToolsCmd) runSpecs(ctx context.Context, c *cli.Command) error {
	return iojson.Write(cmd.registry().Specs())
}

func (cmd *ToolsCmd) runCall(ctx context.Context, c *cli.Command) error {
	name := c.Args().First()
	if name == "" {
		return fmt.Errorf("tool name is required")
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	if len(input) == 0 {
		input = []byte("{}")
	}

	out, err := cmd.registry().Call(ctx, name, json.RawMessage(input))
	if err != nil {
		return err
	}

	var pretty any
	if err := json.Unmarshal(out, &pretty); err != nil {
		fmt.Println(string(out))
		return nil
	}
	return iojson.Write(pretty)
}
