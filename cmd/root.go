package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the meetfewer application
var rootCmd = &cobra.Command{
	Use:   "meetfewer",
	Short: "Suggests meeting slots based on your calendar availability",
	Long: `meetfewer looks at the busy intervals of one or more Google calendars
and suggests the best free slots for a meeting within working hours.

It can run as:
  - A standalone CLI tool (default)
  - An MCP (Model Context Protocol) server for AI assistants`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "meetfewer version %s\n" .Version}}`)

	// If no subcommand is provided, run the suggest command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "suggest")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newCalendarsCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
