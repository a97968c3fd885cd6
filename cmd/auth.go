package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/meetfewer/internal/google"
)

func newAuthCmd() *cobra.Command {
	var (
		account string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authenticate a Google account for calendar access",
		Long: `Authenticate against Google and store a calendar token for the given
account name. Each account keeps its own token file, so you can
authenticate a work and a private account side by side.

Requires the GOOGLE_OAUTH_CLIENT_ID and GOOGLE_OAUTH_CLIENT_SECRET
environment variables to be set to your own OAuth client credentials.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuth(account, force)
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to authenticate (default: 'default')")
	cmd.Flags().BoolVar(&force, "force", false, "Re-authenticate even if a token already exists")

	return cmd
}

func runAuth(account string, force bool) error {
	if google.HasTokenForAccount(account) && !force {
		fmt.Printf("Account %q is already authenticated. Use --force to re-authenticate.\n", account)
		return nil
	}

	authURL, err := google.GetAuthURL()
	if err != nil {
		return err
	}

	fmt.Println("Open the following URL in your browser and authorize access:")
	fmt.Println()
	fmt.Printf("  %s\n", authURL)
	fmt.Println()
	fmt.Print("Enter the authorization code: ")

	reader := bufio.NewReader(os.Stdin)
	code, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("no authorization code provided")
	}

	if err := google.SaveTokenForAccount(context.Background(), account, code); err != nil {
		return fmt.Errorf("failed to save token for account %s: %w", account, err)
	}

	fmt.Printf("Token saved for account %q.\n", account)
	return nil
}
