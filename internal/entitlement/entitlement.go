// Package entitlement resolves which lessons a user may open. The first
// lesson is always free; the rest require an active subscription looked up
// from the companion bot's HTTP API.
package entitlement

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 5 * time.Second

// Client queries the subscription API. A zero BaseURL client grants only
// the free tier.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// NewClient builds a client for the subscription API at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type subscriptionResponse struct {
	HasSubscription bool `json:"has_subscription"`
}

// HasSubscription reports whether userID holds an active subscription.
// Lookup failures degrade to the free tier rather than blocking the session.
func (c *Client) HasSubscription(ctx context.Context, userID int64) bool {
	if c.baseURL == "" || userID <= 0 {
		return false
	}

	url := fmt.Sprintf("%s/api/subscription/%d", c.baseURL, userID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.log.Warn("entitlement: build request", "error", err)
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("entitlement: subscription check failed, defaulting to free tier", "error", err)
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("entitlement: unexpected status, defaulting to free tier", "status", resp.StatusCode)
		return false
	}
	var body subscriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.Warn("entitlement: decode response", "error", err)
		return false
	}
	return body.HasSubscription
}

// Unlocked reports whether the given lesson id is selectable. Lesson 1 is
// free for everyone.
func Unlocked(lessonID int, subscribed bool) bool {
	if lessonID == 1 {
		return true
	}
	return subscribed
}
