package commands

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/colonyops/stencil/internal/core/template"
	"github.com/colonyops/stencil/pkg/iojson"
)

type TemplateCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewTemplateCmd creates a new template command group
func NewTemplateCmd(flags *Flags) *TemplateCmd {
	return &TemplateCmd{flags: flags}
}

// Register adds the template command group to the application
func (cmd *TemplateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "template",
		Usage: "Inspect and lint registered templates",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List registered templates",
				UsageText: "stencil template ls [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runLs,
			},
			{
				Name:      "show",
				Usage:     "Print a template after inheritance resolution",
				UsageText: "stencil template show <id>",
				Action:    cmd.runShow,
			},
			{
				Name:      "lint",
				Usage:     "Check template definition files without registering them",
				UsageText: "stencil template lint <file>...",
				Action:    cmd.runLint,
			},
		},
	})

	return app
}

func (cmd *TemplateCmd) runLs(ctx context.Context, c *cli.Command) error {
	defs := cmd.flags.App.Templates.List()
	slices.SortFunc(defs, func(a, b *template.Definition) int {
		return strings.Compare(a.ID, b.ID)
	})

	if cmd.jsonOutput {
		return iojson.Write(defs)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tVERSION\tEXTENDS\tDESCRIPTION")
	for _, def := range defs {
		desc := ""
		if def.Metadata != nil {
			desc = def.Metadata.Description
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", def.ID, def.Version, def.Extends, desc)
	}
	return w.Flush()
}

func (cmd *TemplateCmd) runShow(ctx context.Context, c *cli.Command) error {
	id := c.Args().First()
	if id == "" {
		return fmt.Errorf("template id is required")
	}

	resolved, err := cmd.flags.App.Templates.Resolve(id)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(resolved.Definition)
	if err != nil {
		return fmt.Errorf("marshal template: %w", err)
	}
	fmt.Printf("# lineage: %s\n%s", strings.Join(resolved.Lineage, " -> "), out)
	return nil
}

func (cmd *TemplateCmd) runLint(ctx context.Context, c *cli.Command) error {
	paths := c.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("at least one file is required")
	}

	failed := 0
	for _, path := range paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		def, err := template.Parse(raw)
		if err == nil {
			err = def.Validate()
		}
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			continue
		}
		fmt.Printf("%s: ok (%s@%s)\n", path, def.ID, def.Version)
	}

	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d file(s) failed", failed), 1)
	}
	return nil
}
