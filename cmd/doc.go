// Package cmd implements the command-line interface for meetfewer.
//
// This package provides the following commands:
//   - suggest: Suggest meeting slots based on calendar availability
//   - calendars: List the calendars visible to an account
//   - auth: Authenticate a Google account for calendar access
//   - serve: Start the MCP server to provide scheduling tools for AI assistants
//   - version: Display version information
//   - generate-docs: Generate markdown documentation for all MCP tools
//
// The suggest command is the default command when no subcommand is specified.
package cmd
