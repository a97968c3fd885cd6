package schedule_tools

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/teemow/meetfewer/internal/schedule"
	"github.com/teemow/meetfewer/internal/server"
	"github.com/teemow/meetfewer/internal/tools/common"
)

// RegisterSuggestTools registers the slot suggestion tool with the MCP server
func RegisterSuggestTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	suggestSlotsTool := mcp.NewTool("schedule_suggest_slots",
		mcp.WithDescription("Suggest free meeting slots within working hours, based on the busy times of one or more calendars"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("calendars",
			mcp.Description("Comma-separated list of calendar IDs or email addresses whose busy times block slots (default: 'primary')"),
		),
		mcp.WithString("from",
			mcp.Description("Start of the search range (RFC3339 format, e.g., '2025-01-06T09:00:00Z'). Defaults to now."),
		),
		mcp.WithNumber("durationMinutes",
			mcp.Description("Meeting duration in minutes (default: 30)"),
		),
		mcp.WithNumber("numSlots",
			mcp.Description("Maximum number of slots to suggest (default: 3)"),
		),
		mcp.WithNumber("daysAhead",
			mcp.Description("Number of calendar days to scan (default: 5)"),
		),
		mcp.WithNumber("workStartHour",
			mcp.Description("Start of the working day, 24-hour clock (default: 9)"),
		),
		mcp.WithNumber("workEndHour",
			mcp.Description("End of the working day, 24-hour clock (default: 17)"),
		),
		mcp.WithString("preferredDays",
			mcp.Description("Comma-separated preferred weekdays, 0=Monday..6=Sunday. Preferred days rank higher but others are still suggested."),
		),
		mcp.WithString("preferredHours",
			mcp.Description("Comma-separated preferred start hours of day (0-23)"),
		),
	)

	s.AddTool(suggestSlotsTool, common.InstrumentedToolHandler("schedule_suggest_slots", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSuggestSlots(ctx, request, sc)
		}))

	return nil
}

func handleSuggestSlots(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	account := common.GetAccountFromArgs(args)

	calendars := []string{"primary"}
	if calendarsStr, ok := args["calendars"].(string); ok && calendarsStr != "" {
		calendars = splitList(calendarsStr)
	}

	start := time.Now()
	if fromStr, ok := args["from"].(string); ok && fromStr != "" {
		parsed, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Invalid from format: %v", err)), nil
		}
		start = parsed
	}

	preferredDays, err := parseIntList(args, "preferredDays")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid preferredDays: %v", err)), nil
	}
	preferredHours, err := parseIntList(args, "preferredHours")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Invalid preferredHours: %v", err)), nil
	}

	prefs, err := schedule.NewPreferences(preferredDays, preferredHours)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cfg := schedule.RequestConfig{
		Start:           start,
		WorkStartHour:   intArg(args, "workStartHour", 9),
		WorkEndHour:     intArg(args, "workEndHour", 17),
		DurationMinutes: intArg(args, "durationMinutes", 30),
		NumSlots:        intArg(args, "numSlots", 3),
		DaysAhead:       intArg(args, "daysAhead", 5),
		CalendarIDs:     calendars,
		Preferences:     prefs,
	}

	client, err := getCalendarClient(ctx, account, sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	engine := schedule.NewEngine(client, slog.Default(), sc.Metrics())
	suggestion, err := engine.SuggestSlots(ctx, cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to suggest slots: %v", err)), nil
	}

	return mcp.NewToolResultText(formatSuggestion(suggestion, cfg)), nil
}

func formatSuggestion(suggestion *schedule.Suggestion, cfg schedule.RequestConfig) string {
	if len(suggestion.Slots) == 0 {
		return fmt.Sprintf("No free %d minute slots found in the next %d day(s)", cfg.DurationMinutes, cfg.DaysAhead)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Suggested %d minute slot(s):\n\n", cfg.DurationMinutes)
	for i, slot := range suggestion.Slots {
		fmt.Fprintf(&b, "%d. %s - %s\n",
			i+1,
			slot.Start().Format("Monday 2 January at 15:04"),
			slot.End().Format("15:04"))
	}
	fmt.Fprintf(&b, "\n%d candidate slot(s) considered in total\n", suggestion.TotalCandidates)

	return b.String()
}

// splitList splits a comma-separated argument and trims whitespace.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parseIntList parses a comma-separated list argument of integers.
// A missing or empty argument yields nil.
func parseIntList(args map[string]interface{}, key string) ([]int, error) {
	raw, ok := args[key].(string)
	if !ok || raw == "" {
		return nil, nil
	}

	var values []int
	for _, part := range splitList(raw) {
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", part)
		}
		values = append(values, v)
	}
	return values, nil
}

// intArg reads a numeric argument, falling back to a default.
func intArg(args map[string]interface{}, key string, fallback int) int {
	if v, ok := args[key].(float64); ok {
		return int(v)
	}
	return fallback
}
