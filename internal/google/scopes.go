package google

// DefaultOAuthScopes are the Google OAuth scopes required for availability
// queries. Calendar access is read-only; the tool never creates or modifies
// events.
var DefaultOAuthScopes = []string{
	// OpenID Connect scopes (required for user info)
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",

	// Google Calendar scope (events, free/busy, calendar list)
	"https://www.googleapis.com/auth/calendar.readonly",
}
