// Package fast2sms sends SMS through the Fast2SMS bulk API. Without an API
// key the client runs in simulated mode and only logs.
package fast2sms

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/carealert-backend/internal/provider"
)

const (
	providerName   = "fast2sms"
	defaultBaseURL = "https://www.fast2sms.com/dev/bulkV2"

	// MaxMessageRunes is the longest message sent in one SMS.
	MaxMessageRunes = 160
)

// Client talks to the Fast2SMS bulk API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client. An empty apiKey puts it in simulated mode;
// an empty baseURL selects the public Fast2SMS endpoint.
func NewClient(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", providerName),
	}
}

// Simulated reports whether sends are only logged.
func (c *Client) Simulated() bool { return c.apiKey == "" }

type sendRequest struct {
	Route    string `json:"route"`
	Message  string `json:"message"`
	Language string `json:"language"`
	Flash    int    `json:"flash"`
	Numbers  string `json:"numbers"`
}

type sendResponse struct {
	Return    bool            `json:"return"`
	RequestID string          `json:"request_id"`
	Message   json.RawMessage `json:"message"`
}

// Send delivers message to a normalized 10-digit number.
func (c *Client) Send(ctx context.Context, number, message string) (provider.SendResult, error) {
	message = Truncate(message, MaxMessageRunes)

	if c.Simulated() {
		id := "simulated-" + uuid.NewString()
		c.log.InfoContext(ctx, "sms simulated",
			slog.String("message_id", id),
			slog.Int("length", len([]rune(message))),
		)
		return provider.SendResult{MessageID: id, Simulated: true}, nil
	}

	payload, err := json.Marshal(sendRequest{
		Route:    "q",
		Message:  message,
		Language: "english",
		Numbers:  number,
	})
	if err != nil {
		return provider.SendResult{}, fmt.Errorf("fast2sms: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return provider.SendResult{}, fmt.Errorf("fast2sms: create request: %w", err)
	}
	req.Header.Set("authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return provider.SendResult{}, &provider.DeliveryError{Provider: providerName, Retryable: true, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return provider.SendResult{}, &provider.DeliveryError{Provider: providerName, Retryable: true, Err: err}
	}

	var out sendResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return provider.SendResult{}, &provider.DeliveryError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Retryable:  provider.RetryableStatus(resp.StatusCode),
			Err:        fmt.Errorf("decode response: %w", err),
		}
	}

	if !out.Return {
		c.log.WarnContext(ctx, "sms rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("reason", responseMessage(out.Message)),
		)
		return provider.SendResult{}, &provider.DeliveryError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Retryable:  provider.RetryableStatus(resp.StatusCode),
			Err:        errors.New(responseMessage(out.Message)),
		}
	}

	c.log.DebugContext(ctx, "sms sent", slog.String("request_id", out.RequestID))
	return provider.SendResult{MessageID: out.RequestID}, nil
}

// responseMessage flattens the API's message field, which is either a
// string or a list of strings.
func responseMessage(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil && s != "" {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[0]
	}
	return "sms rejected by provider"
}

// Truncate shortens s to at most n runes.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
