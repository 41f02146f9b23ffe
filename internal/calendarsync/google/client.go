package google

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"meetbook/backend/internal/calendarsync"
)

const (
	DefaultBaseURL = "https://www.googleapis.com/calendar/v3"
	eventsScope    = "https://www.googleapis.com/auth/calendar.events"
)

type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	CalendarID   string
	BaseURL      string
}

// Client talks to the Google Calendar v3 REST API.
type Client struct {
	http       *http.Client
	baseURL    string
	calendarID string
}

var _ calendarsync.Provider = (*Client)(nil)

// New builds a client that refreshes its access token from cfg.RefreshToken.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, errors.New("google calendar: client_id, client_secret and refresh_token are required")
	}
	oc := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     endpoints.Google,
		Scopes:       []string{eventsScope},
	}
	ts := oc.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})
	return NewWithTokenSource(cfg, ts, http.DefaultTransport), nil
}

func NewWithTokenSource(cfg Config, ts oauth2.TokenSource, base http.RoundTripper) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Client{
		http: &http.Client{
			Transport: &oauth2.Transport{Source: oauth2.ReuseTokenSource(nil, ts), Base: base},
		},
		baseURL:    baseURL,
		calendarID: calendarID,
	}
}

type eventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone,omitempty"`
}

type attendee struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

type eventBody struct {
	ID          string     `json:"id,omitempty"`
	Summary     string     `json:"summary"`
	Description string     `json:"description,omitempty"`
	Start       eventTime  `json:"start"`
	End         eventTime  `json:"end"`
	Attendees   []attendee `json:"attendees,omitempty"`
}

type eventResponse struct {
	ID string `json:"id"`
}

// EventID maps a request id onto the base32hex alphabet Google accepts for
// client supplied event ids.
func EventID(requestID string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(requestID) {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'v') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (c *Client) eventsURL() string {
	return c.baseURL + "/calendars/" + url.PathEscape(c.calendarID) + "/events"
}

// CreateEvent inserts the event under an id derived from ev.RequestID, so a
// retried create after a lost response answers 409 and resolves to the same id.
func (c *Client) CreateEvent(ctx context.Context, ev calendarsync.Event) (string, error) {
	body := eventBody{
		ID:          EventID(ev.RequestID),
		Summary:     ev.Title,
		Description: ev.Description,
		Start:       eventTime{DateTime: ev.Start.UTC().Format(time.RFC3339), TimeZone: ev.TimeZone},
		End:         eventTime{DateTime: ev.End.UTC().Format(time.RFC3339), TimeZone: ev.TimeZone},
	}
	if len(body.ID) < 5 {
		body.ID = ""
	}
	if ev.AttendeeEmail != "" {
		body.Attendees = []attendee{{Email: ev.AttendeeEmail, DisplayName: ev.AttendeeName}}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.eventsURL()+"?sendUpdates=all", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusConflict && body.ID != "" {
		return body.ID, nil
	}
	if err := checkStatus(resp); err != nil {
		return "", err
	}

	var out eventResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("google calendar: decode response: %w", err)
	}
	if out.ID == "" {
		return "", fmt.Errorf("google calendar: empty event id: %w", calendarsync.ErrRejected)
	}
	return out.ID, nil
}

func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.eventsURL()+"/"+url.PathEscape(eventID)+"?sendUpdates=all", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNotFound, http.StatusGone:
		return nil
	}
	return checkStatus(resp)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	err := fmt.Errorf("google calendar: %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		return err
	}
	return fmt.Errorf("%w: %w", calendarsync.ErrRejected, err)
}
