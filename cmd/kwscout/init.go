package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kwscout/kwscout/internal/config"
)

// InitCommand represents the init command
type InitCommand struct {
	force      bool
	configPath string
}

// NewInitCommand creates a new init command
func NewInitCommand() *InitCommand {
	return &InitCommand{
		configPath: ".kwscout.toml",
	}
}

// CreateCobraCommand creates the cobra command for configuration initialization
func (i *InitCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize kwscout configuration file",
		Long: `Initialize a kwscout configuration file in the current directory.

Creates a .kwscout.toml file with all available settings and comments
explaining each one. Settings in the file are merged over the built-in
defaults; command line flags win over both.

Examples:
  # Create .kwscout.toml in current directory
  kwscout init

  # Create config file with custom name
  kwscout init --path myconfig.toml

  # Overwrite existing configuration file
  kwscout init --force`,
		RunE: i.runInit,
	}

	cmd.Flags().BoolVarP(&i.force, "force", "f", i.force, "Overwrite existing configuration file")
	cmd.Flags().StringVarP(&i.configPath, "path", "p", i.configPath, "Configuration file path")

	return cmd
}

// runInit executes the init command
func (i *InitCommand) runInit(cmd *cobra.Command, args []string) error {
	configPath, err := filepath.Abs(i.configPath)
	if err != nil {
		return fmt.Errorf("failed to resolve config path: %w", err)
	}

	if i.force {
		if err := os.Remove(configPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing configuration file: %w", err)
		}
	}

	if err := config.WriteDefaultConfig(configPath); err != nil {
		return err
	}

	relPath, err := filepath.Rel(".", configPath)
	if err != nil {
		relPath = configPath
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Configuration file created: %s\n", relPath)
	fmt.Fprintf(cmd.OutOrStdout(), "\nNext steps:\n")
	fmt.Fprintf(cmd.OutOrStdout(), "  1. Set your API token: export %s=<token>\n", config.TokenEnvVar)
	fmt.Fprintf(cmd.OutOrStdout(), "  2. Edit %s to adjust defaults\n", relPath)
	fmt.Fprintf(cmd.OutOrStdout(), "  3. Run 'kwscout analyze <keyword>' to get started\n")

	return nil
}

// NewInitCmd creates and returns the init cobra command
func NewInitCmd() *cobra.Command {
	initCommand := NewInitCommand()
	return initCommand.CreateCobraCommand()
}
