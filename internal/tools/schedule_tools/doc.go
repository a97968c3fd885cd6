// Package schedule_tools provides MCP (Model Context Protocol) tools for
// meeting availability.
//
// The tools expose slot suggestions, free/busy queries and calendar listing
// through a standardized MCP interface, so AI assistants can answer "when
// can we meet" questions against the user's Google calendars. All tools
// support multiple authorized accounts and are read-only.
package schedule_tools
