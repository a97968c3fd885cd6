package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/oauth2"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/teemow/meetfewer/internal/google"
	"github.com/teemow/meetfewer/internal/instrumentation"
	"github.com/teemow/meetfewer/internal/schedule"
)

var _ schedule.Source = (*Client)(nil)

// Client wraps the Google Calendar service
type Client struct {
	svc           *calendar.Service
	account       string // The account this client is associated with
	tokenProvider google.TokenProvider
	metrics       *instrumentation.Metrics
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// SetMetrics attaches a metrics recorder for Google API operations.
// A nil recorder disables recording.
func (c *Client) SetMetrics(m *instrumentation.Metrics) {
	c.metrics = m
}

// HasTokenForAccountWithProvider checks if a valid OAuth token exists for the specified account
func HasTokenForAccountWithProvider(account string, provider google.TokenProvider) bool {
	if provider == nil {
		return false
	}
	return provider.HasTokenForAccount(account)
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	provider := google.NewFileTokenProvider()
	return HasTokenForAccountWithProvider(account, provider)
}

// HasToken checks if a valid OAuth token exists for the default account
func HasToken() bool {
	return HasTokenForAccount("default")
}

// NewClientForAccountWithProvider creates a new Calendar client with OAuth2 authentication
// for a specific account. The OAuth token is retrieved from the provided token provider.
func NewClientForAccountWithProvider(ctx context.Context, account string, tokenProvider google.TokenProvider) (*Client, error) {
	if tokenProvider == nil {
		return nil, fmt.Errorf("token provider cannot be nil")
	}

	token, err := tokenProvider.GetTokenForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("failed to get Google OAuth token for account %s: %w", account, err)
	}

	conf, err := google.GetOAuthConfig()
	if err != nil {
		return nil, err
	}
	tokenSource := conf.TokenSource(ctx, token)

	client := oauth2.NewClient(ctx, tokenSource)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	transport.Base = &http.Transport{
		ForceAttemptHTTP2: false,
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{
		svc:           svc,
		account:       account,
		tokenProvider: tokenProvider,
	}, nil
}

// NewClientForAccount creates a new Calendar client for a specific account
// using the default file-based token provider.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	provider := google.NewFileTokenProvider()
	return NewClientForAccountWithProvider(ctx, account, provider)
}

// NewClient creates a new Calendar client for the default account.
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, "default")
}

// NewClientWithProvider creates a new Calendar client for the default account
// using the provided token provider.
func NewClientWithProvider(ctx context.Context, provider google.TokenProvider) (*Client, error) {
	return NewClientForAccountWithProvider(ctx, "default", provider)
}

// recordOp records metrics for one Google API operation when a recorder is attached.
func (c *Client) recordOp(ctx context.Context, operation string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}
	status := instrumentation.StatusSuccess
	if err != nil {
		status = instrumentation.StatusError
	}
	c.metrics.RecordGoogleAPIOperation(ctx, operation, status, time.Since(start))
}

// ListBusyEvents lists the time-blocking events of a calendar within a time range.
// Cancelled, transparent and all-day events do not block time and are skipped.
// Malformed timed events are passed through so callers can reject them.
func (c *Client) ListBusyEvents(ctx context.Context, calendarID string, from, to time.Time) ([]schedule.RawEvent, error) {
	spanCtx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.OperationListEvents,
		attribute.String(instrumentation.SpanAttrCalendarDomain, instrumentation.ExtractCalendarDomain(calendarID)))
	defer span.End()

	start := time.Now()
	events, err := c.svc.Events.List(calendarID).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(spanCtx).
		Do()
	c.recordOp(spanCtx, instrumentation.OperationListEvents, start, err)
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	instrumentation.SetSpanSuccess(span)

	var busy []schedule.RawEvent
	for _, event := range events.Items {
		if raw, ok := busyEventFromAPI(event); ok {
			busy = append(busy, raw)
		}
	}

	return busy, nil
}

// BusyEvents implements schedule.Source.
func (c *Client) BusyEvents(ctx context.Context, calendarID string, from, to time.Time) ([]schedule.RawEvent, error) {
	return c.ListBusyEvents(ctx, calendarID, from, to)
}

// ListCalendars lists all calendars accessible to the user
func (c *Client) ListCalendars(ctx context.Context) ([]CalendarInfo, error) {
	spanCtx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.OperationListCalendars)
	defer span.End()

	start := time.Now()
	list, err := c.svc.CalendarList.List().Context(spanCtx).Do()
	c.recordOp(spanCtx, instrumentation.OperationListCalendars, start, err)
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}
	instrumentation.SetSpanSuccess(span)

	var calendars []CalendarInfo
	for _, entry := range list.Items {
		calendars = append(calendars, toCalendarInfo(entry))
	}

	return calendars, nil
}

// GetCalendar retrieves information about a specific calendar
func (c *Client) GetCalendar(ctx context.Context, calendarID string) (*CalendarInfo, error) {
	spanCtx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.OperationGetCalendar)
	defer span.End()

	start := time.Now()
	entry, err := c.svc.CalendarList.Get(calendarID).Context(spanCtx).Do()
	c.recordOp(spanCtx, instrumentation.OperationGetCalendar, start, err)
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return nil, fmt.Errorf("failed to get calendar: %w", err)
	}
	instrumentation.SetSpanSuccess(span)

	info := toCalendarInfo(entry)
	return &info, nil
}

// GetPrimaryCalendar retrieves information about the primary calendar
func (c *Client) GetPrimaryCalendar(ctx context.Context) (*CalendarInfo, error) {
	return c.GetCalendar(ctx, "primary")
}

// QueryFreeBusy checks availability for calendars in a time range
func (c *Client) QueryFreeBusy(ctx context.Context, timeMin, timeMax time.Time, calendarIDs []string) ([]FreeBusyInfo, error) {
	spanCtx, span := instrumentation.StartGoogleAPISpan(ctx, instrumentation.OperationFreeBusy)
	defer span.End()

	items := make([]*calendar.FreeBusyRequestItem, len(calendarIDs))
	for i, id := range calendarIDs {
		items[i] = &calendar.FreeBusyRequestItem{Id: id}
	}

	query := &calendar.FreeBusyRequest{
		TimeMin: timeMin.Format(time.RFC3339),
		TimeMax: timeMax.Format(time.RFC3339),
		Items:   items,
	}

	start := time.Now()
	result, err := c.svc.Freebusy.Query(query).Context(spanCtx).Do()
	c.recordOp(spanCtx, instrumentation.OperationFreeBusy, start, err)
	if err != nil {
		instrumentation.SetSpanError(span, err)
		return nil, fmt.Errorf("failed to query freebusy: %w", err)
	}
	instrumentation.SetSpanSuccess(span)

	var infos []FreeBusyInfo
	for calID, cal := range result.Calendars {
		info := FreeBusyInfo{
			Calendar: calID,
		}

		for _, busy := range cal.Busy {
			busyStart, _ := time.Parse(time.RFC3339, busy.Start)
			busyEnd, _ := time.Parse(time.RFC3339, busy.End)
			info.Busy = append(info.Busy, TimeRange{Start: busyStart, End: busyEnd})
		}

		for _, calErr := range cal.Errors {
			info.Errors = append(info.Errors, calErr.Reason)
		}

		infos = append(infos, info)
	}

	return infos, nil
}
