package google

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateAccountName(t *testing.T) {
	tests := []struct {
		name    string
		account string
		wantErr bool
	}{
		{"valid default", "default", false},
		{"valid work", "work", false},
		{"valid with hyphen", "work-email", false},
		{"valid with underscore", "personal_email", false},
		{"valid alphanumeric", "account123", false},
		{"empty", "", true},
		{"with spaces", "my account", true},
		{"with special chars", "account@work", true},
		{"with slash", "work/personal", true},
		{"with dot", "work.email", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAccountName(tt.account)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAccountName() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetTokenFilePath(t *testing.T) {
	tests := []struct {
		name    string
		account string
		want    string
	}{
		{"default account", "default", "google-default.token"},
		{"work account", "work", "google-work.token"},
		{"personal account", "personal", "google-personal.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := getTokenFilePath(tt.account)
			if filepath.Base(got) != tt.want {
				t.Errorf("getTokenFilePath() = %v, want base %v", got, tt.want)
			}
		})
	}
}

func TestHasTokenForAccount(t *testing.T) {
	if HasTokenForAccount("invalid account") {
		t.Error("HasTokenForAccount() should return false for invalid account name")
	}

	if HasTokenForAccount("") {
		t.Error("HasTokenForAccount() should return false for empty account name")
	}
}

func TestGetAuthURL_MissingCredentials(t *testing.T) {
	os.Unsetenv("GOOGLE_OAUTH_CLIENT_ID")
	os.Unsetenv("GOOGLE_OAUTH_CLIENT_SECRET")

	if _, err := GetAuthURL(); err == nil {
		t.Error("GetAuthURL() should fail without client credentials in the environment")
	}
}

func TestGetAuthURL(t *testing.T) {
	os.Setenv("GOOGLE_OAUTH_CLIENT_ID", "test-client-id")
	os.Setenv("GOOGLE_OAUTH_CLIENT_SECRET", "test-client-secret")
	defer func() {
		os.Unsetenv("GOOGLE_OAUTH_CLIENT_ID")
		os.Unsetenv("GOOGLE_OAUTH_CLIENT_SECRET")
	}()

	url, err := GetAuthURL()
	if err != nil {
		t.Fatalf("GetAuthURL() error = %v", err)
	}

	if !strings.Contains(url, "test-client-id") {
		t.Errorf("GetAuthURL() = %q, should contain the client ID", url)
	}
	if !strings.Contains(url, "calendar.readonly") {
		t.Errorf("GetAuthURL() = %q, should request the read-only calendar scope", url)
	}
}

func TestGetTokenSourceForAccount_NoToken(t *testing.T) {
	os.Setenv("GOOGLE_OAUTH_CLIENT_ID", "test-client-id")
	os.Setenv("GOOGLE_OAUTH_CLIENT_SECRET", "test-client-secret")
	os.Setenv("XDG_CACHE_HOME", t.TempDir())
	defer func() {
		os.Unsetenv("GOOGLE_OAUTH_CLIENT_ID")
		os.Unsetenv("GOOGLE_OAUTH_CLIENT_SECRET")
		os.Unsetenv("XDG_CACHE_HOME")
	}()

	_, err := GetTokenSourceForAccount(context.Background(), "nonexistent")
	if err == nil {
		t.Error("GetTokenSourceForAccount() should fail when no token file exists")
	}
}

func TestGetAuthenticationErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		account string
	}{
		{"default account", "default"},
		{"work account", "work"},
		{"personal account", "personal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := GetAuthenticationErrorMessage(tt.account)
			if msg == "" {
				t.Error("GetAuthenticationErrorMessage() should return non-empty message")
			}
			if !strings.Contains(msg, tt.account) {
				t.Errorf("GetAuthenticationErrorMessage() should mention account %s", tt.account)
			}
			if !strings.Contains(msg, "OAuth") {
				t.Error("GetAuthenticationErrorMessage() should mention OAuth")
			}
		})
	}
}

func TestFileTokenProvider_HasTokenForAccount(t *testing.T) {
	p := NewFileTokenProvider()

	if p.HasTokenForAccount("invalid account") {
		t.Error("HasTokenForAccount() should return false for invalid account name")
	}
}
