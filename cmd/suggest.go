package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/meetfewer/internal/calendar"
	"github.com/teemow/meetfewer/internal/google"
	"github.com/teemow/meetfewer/internal/schedule"
)

type suggestOptions struct {
	account        string
	calendars      string
	from           string
	duration       int
	slots          int
	days           int
	workStart      int
	workEnd        int
	preferredDays  string
	preferredHours string
	debug          bool
}

func newSuggestCmd() *cobra.Command {
	var opts suggestOptions

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest free meeting slots based on calendar availability",
		Long: `Scan the busy intervals of one or more calendars and suggest the best
free slots for a meeting within working hours.

Preferred weekdays and start hours only affect the ranking; slots outside
the preferences are still suggested when nothing better is free.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(opts)
		},
	}

	cmd.Flags().StringVar(&opts.account, "account", "default", "Google account name to use (default: 'default')")
	cmd.Flags().StringVar(&opts.calendars, "calendars", "primary", "Comma-separated calendar IDs whose busy times block slots")
	cmd.Flags().StringVar(&opts.from, "from", "", "Start of the search range (RFC3339). Defaults to now.")
	cmd.Flags().IntVar(&opts.duration, "duration", 30, "Meeting duration in minutes")
	cmd.Flags().IntVar(&opts.slots, "slots", 3, "Maximum number of slots to suggest")
	cmd.Flags().IntVar(&opts.days, "days", 5, "Number of calendar days to scan")
	cmd.Flags().IntVar(&opts.workStart, "work-start", 9, "Start of the working day (24-hour clock)")
	cmd.Flags().IntVar(&opts.workEnd, "work-end", 17, "End of the working day (24-hour clock)")
	cmd.Flags().StringVar(&opts.preferredDays, "preferred-days", "", "Comma-separated preferred weekdays, 0=Monday..6=Sunday")
	cmd.Flags().StringVar(&opts.preferredHours, "preferred-hours", "", "Comma-separated preferred start hours of day (0-23)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	return cmd
}

func runSuggest(opts suggestOptions) error {
	logger := newCLILogger(opts.debug)

	start := time.Now()
	if opts.from != "" {
		parsed, err := time.Parse(time.RFC3339, opts.from)
		if err != nil {
			return fmt.Errorf("invalid --from value %q: %w", opts.from, err)
		}
		start = parsed
	}

	preferredDays, err := parseIntList(opts.preferredDays)
	if err != nil {
		return fmt.Errorf("invalid --preferred-days value: %w", err)
	}
	preferredHours, err := parseIntList(opts.preferredHours)
	if err != nil {
		return fmt.Errorf("invalid --preferred-hours value: %w", err)
	}

	prefs, err := schedule.NewPreferences(preferredDays, preferredHours)
	if err != nil {
		return err
	}

	cfg := schedule.RequestConfig{
		Start:           start,
		WorkStartHour:   opts.workStart,
		WorkEndHour:     opts.workEnd,
		DurationMinutes: opts.duration,
		NumSlots:        opts.slots,
		DaysAhead:       opts.days,
		CalendarIDs:     parseCommaSeparatedList(opts.calendars),
		Preferences:     prefs,
	}

	ctx := context.Background()

	if !google.HasTokenForAccount(opts.account) {
		return fmt.Errorf("%s", google.GetAuthenticationErrorMessage(opts.account))
	}

	client, err := calendar.NewClientForAccount(ctx, opts.account)
	if err != nil {
		return fmt.Errorf("failed to create calendar client for account %s: %w", opts.account, err)
	}

	engine := schedule.NewEngine(client, logger, nil)
	suggestion, err := engine.SuggestSlots(ctx, cfg)
	if err != nil {
		return err
	}

	if len(suggestion.Slots) == 0 {
		fmt.Println("No free slots found in the requested range.")
		fmt.Printf("(%d candidate slot(s) considered in total)\n", suggestion.TotalCandidates)
		return nil
	}

	fmt.Printf("Suggested %d-minute slots:\n", cfg.DurationMinutes)
	for i, slot := range suggestion.Slots {
		fmt.Printf("  %d. %s - %s\n", i+1,
			slot.Start().Format("Monday 2 January at 15:04"),
			slot.End().Format("15:04"))
	}
	fmt.Printf("(%d candidate slot(s) considered in total)\n", suggestion.TotalCandidates)
	return nil
}

// newCLILogger builds the logger for CLI commands. Log output goes to
// stderr so suggestions on stdout stay clean for piping.
func newCLILogger(debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// parseCommaSeparatedList parses a comma-separated string into a slice,
// trimming whitespace from each element and filtering out empty strings.
// Returns nil if the input is empty or contains only whitespace/commas.
func parseCommaSeparatedList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// parseIntList parses a comma-separated list of integers. An empty input
// yields nil, which downstream code treats as "no preference".
func parseIntList(s string) ([]int, error) {
	parts := parseCommaSeparatedList(s)
	if parts == nil {
		return nil, nil
	}
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("not a number: %q", p)
		}
		result = append(result, n)
	}
	return result, nil
}
