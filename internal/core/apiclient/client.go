// Package apiclient talks to the bot backend's REST API. Every endpoint
// answers with a success envelope; a response with success=false carries a
// human-readable error string which is surfaced as the returned error.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrUnauthenticated is returned when the backend rejects the session.
// Callers fall back to the guest presentation.
var ErrUnauthenticated = errors.New("not authenticated")

// User is the authenticated console user.
type User struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// TopEndpoint is one row of the most-called endpoints list.
type TopEndpoint struct {
	Endpoint  string  `json:"endpoint"`
	Count     int     `json:"count"`
	AvgTime   float64 `json:"avgTime"`
	ErrorRate float64 `json:"errorRate"`
}

// EndpointStat holds full per-endpoint usage statistics.
type EndpointStat struct {
	Count     int     `json:"count"`
	AvgTime   float64 `json:"avgTime"`
	MinTime   float64 `json:"minTime"`
	MaxTime   float64 `json:"maxTime"`
	Errors    int     `json:"errors"`
	ErrorRate float64 `json:"errorRate"`
}

// StatsReport is the admin API usage report.
type StatsReport struct {
	TopEndpoints []TopEndpoint           `json:"topEndpoints"`
	Stats        map[string]EndpointStat `json:"stats"`
}

// TokenFunc returns the current bearer token, or "" for guest requests.
type TokenFunc func(ctx context.Context) string

// Client is the REST client for the bot backend.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenFunc
	log     zerolog.Logger
}

// New creates a client for the backend at baseURL. token may be nil.
func New(baseURL string, timeout time.Duration, token TokenFunc, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if token == nil {
		token = func(context.Context) string { return "" }
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
		log:     log,
	}
}

// Session returns the authenticated user. Returns ErrUnauthenticated when
// the backend reports no valid session.
func (c *Client) Session(ctx context.Context) (User, error) {
	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		User    *User  `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/session", nil, &out); err != nil {
		return User{}, err
	}
	if !out.Success || out.User == nil {
		return User{}, backendErr(out.Error, ErrUnauthenticated)
	}
	return *out.User, nil
}

// Login authenticates and returns a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	return c.authRequest(ctx, "/api/auth/login", username, password)
}

// Register creates an account and returns a bearer token.
func (c *Client) Register(ctx context.Context, username, password string) (string, error) {
	return c.authRequest(ctx, "/api/auth/register", username, password)
}

func (c *Client) authRequest(ctx context.Context, path, username, password string) (string, error) {
	in := map[string]string{"username": username, "password": password}
	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Token   string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, path, in, &out); err != nil {
		return "", err
	}
	if !out.Success || out.Token == "" {
		return "", backendErr(out.Error, errors.New("login rejected"))
	}
	return out.Token, nil
}

// Logout invalidates the session on the backend.
func (c *Client) Logout(ctx context.Context) error {
	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, &out); err != nil {
		return err
	}
	if !out.Success {
		return backendErr(out.Error, errors.New("logout rejected"))
	}
	return nil
}

// Stats fetches the admin API usage report.
func (c *Client) Stats(ctx context.Context) (StatsReport, error) {
	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		StatsReport
	}
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, &out); err != nil {
		return StatsReport{}, err
	}
	if !out.Success {
		return StatsReport{}, backendErr(out.Error, errors.New("stats request rejected"))
	}
	return out.StatsReport, nil
}

// ResetStats clears the backend's usage counters and returns its
// confirmation message.
func (c *Client) ResetStats(ctx context.Context) (string, error) {
	var out struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/stats/reset", nil, &out); err != nil {
		return "", err
	}
	if !out.Success {
		return "", backendErr(out.Error, errors.New("stats reset rejected"))
	}
	return out.Message, nil
}

// do issues one request and decodes the JSON response into out.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.token(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("api request")

	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return ErrUnauthenticated
	case resp.StatusCode >= 500:
		return fmt.Errorf("%s %s: backend returned %s", method, path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// backendErr prefers the backend's error string, falling back otherwise.
func backendErr(msg string, fallback error) error {
	if msg != "" {
		return errors.New(msg)
	}
	return fallback
}
