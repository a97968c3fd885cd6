// Package google provides OAuth2 authentication and token management for the
// Google Calendar API.
//
// Tokens are stored per account under the user cache directory, so multiple
// Google accounts (work, personal) can be authorized side by side. The
// TokenProvider interface allows different token sources to be plugged in.
package google
