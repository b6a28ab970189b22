package commands

import (
	"fmt"
	"os"

	"github.com/h2cone/create-godotrs/internal/generator"
	"github.com/h2cone/create-godotrs/internal/output"
	"github.com/h2cone/create-godotrs/internal/project"
	"github.com/spf13/cobra"
)

// NewCmd creates and returns the 'new' command for scaffolding projects
func NewCmd() *cobra.Command {
	var templateName, basePath string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Create a new Godot + Rust project",
		Long: `Creates a new Godot 4 project with a Rust GDExtension crate:
• godot/ project with a .gdextension manifest
• rust/ cdylib crate depending on godot-rust/gdext
• .gitignore files for the repo, the engine, and the crate

Templates:
  basic   minimal godot + rust pairing (default)
  proto   adds entity/player/ui and aseprite/LDtk pipeline directories

Example:
  create-godotrs new mygame
  create-godotrs new mygame --template proto`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			projectName := args[0]

			tmpl, err := project.ParseTemplate(templateName)
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			cfg := project.NewConfig(projectName).WithTemplate(tmpl)
			if basePath != "" {
				cfg = cfg.WithBasePath(basePath)
			}

			scaffolder := project.NewScaffolder()

			if dryRun {
				ops, err := scaffolder.Plan(cfg)
				if err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				if err := generator.Execute(cmd.Context(), ops, generator.ExecuteOptions{DryRun: true}); err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				return
			}

			output.Verbose(fmt.Sprintf("Creating project %s (template: %s)", projectName, tmpl))

			if err := scaffolder.Create(cmd.Context(), cfg); err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			output.Success(fmt.Sprintf("Successfully created project: %s", projectName))
			output.Info(fmt.Sprintf("Project location: %s", cfg.ProjectPath()))
			output.Info("Next steps:")
			output.Step(fmt.Sprintf("cd %s/rust && cargo build", projectName))
			output.Step("Open godot/ in the Godot 4 editor")
		},
	}

	cmd.Flags().StringVarP(&templateName, "template", "t", "basic", "Scaffold template (basic or proto)")
	cmd.Flags().StringVarP(&basePath, "path", "p", "", "Base directory for the new project (defaults to the working directory)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show planned operations without writing anything")

	return cmd
}
