package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teemow/meetfewer/internal/calendar"
	"github.com/teemow/meetfewer/internal/google"
)

func newCalendarsCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "calendars",
		Short: "List the calendars visible to an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalendars(account)
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")
	return cmd
}

func runCalendars(account string) error {
	ctx := context.Background()

	if !google.HasTokenForAccount(account) {
		return fmt.Errorf("%s", google.GetAuthenticationErrorMessage(account))
	}

	client, err := calendar.NewClientForAccount(ctx, account)
	if err != nil {
		return fmt.Errorf("failed to create calendar client for account %s: %w", account, err)
	}

	calendars, err := client.ListCalendars(ctx)
	if err != nil {
		return fmt.Errorf("failed to list calendars: %w", err)
	}

	if len(calendars) == 0 {
		fmt.Println("No calendars found.")
		return nil
	}

	for _, cal := range calendars {
		marker := " "
		if cal.Primary {
			marker = "*"
		}
		fmt.Printf("%s %s", marker, cal.ID)
		if cal.Summary != "" && cal.Summary != cal.ID {
			fmt.Printf("  (%s)", cal.Summary)
		}
		if cal.AccessRole != "" {
			fmt.Printf("  [%s]", cal.AccessRole)
		}
		fmt.Println()
	}
	return nil
}
