// Package recaptcha verifies reCAPTCHA v3 tokens against Google's siteverify
// endpoint. The check is fail-closed: any transport or decoding failure is
// reported as an unsuccessful verification with score 0.
package recaptcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const defaultEndpoint = "https://www.google.com/recaptcha/api/siteverify"

// Result is the subset of the siteverify response the registration flow
// cares about.
type Result struct {
	Success bool    `json:"success"`
	Score   float64 `json:"score"`
	Action  string  `json:"action"`
}

type Client struct {
	secret     string
	endpoint   string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(secret string, log zerolog.Logger) *Client {
	return &Client{
		secret:     secret,
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// WithEndpoint overrides the siteverify URL. Used by tests.
func (c *Client) WithEndpoint(endpoint string) *Client {
	c.endpoint = endpoint
	return c
}

// Verify checks a client token. It never returns an error: a verification
// outage must reject submissions, not let them through.
func (c *Client) Verify(ctx context.Context, token string) Result {
	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		c.log.Error().Err(err).Msg("failed to build recaptcha request")
		return Result{}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Msg("failed to verify recaptcha token")
		return Result{}
	}
	defer resp.Body.Close()

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.log.Error().Err(err).Msg("failed to decode recaptcha response")
		return Result{}
	}

	return result
}
