package commands

import (
	creategodotrs "github.com/h2cone/create-godotrs"
	"github.com/h2cone/create-godotrs/internal/output"
	"github.com/spf13/cobra"
)

// RootCmd creates and returns the root command for the create-godotrs CLI
func RootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "create-godotrs",
		Short: "Create Godot 4 projects with Rust",
		Long: `create-godotrs scaffolds a Godot 4 project paired with a Rust GDExtension crate.

One command gives you:
• A godot/ project the editor opens directly
• A rust/ crate wired to godot-rust/gdext
• Sensible .gitignore files for both halves

Learn more: https://github.com/h2cone/create-godotrs`,
		Version: creategodotrs.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			output.SetVerbose(verbose)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output for debugging")

	return cmd
}
