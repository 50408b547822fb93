package otp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// GatewaySender delivers codes through an external SMS gateway over HTTP.
type GatewaySender struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	attempts   int
	retryDelay time.Duration
}

// NewGatewaySender builds a sender for the given gateway endpoint.
func NewGatewaySender(endpoint, apiKey string, timeout time.Duration) *GatewaySender {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GatewaySender{
		endpoint:   strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: &http.Client{Timeout: timeout},
		attempts:   3,
		retryDelay: 200 * time.Millisecond,
	}
}

// Send posts the message to the gateway, retrying transient failures.
func (s *GatewaySender) Send(ctx context.Context, phone, code string) error {
	if s.endpoint == "" {
		return errors.New("sms gateway endpoint is empty")
	}

	var lastErr error
	for i := 0; i < s.attempts; i++ {
		if err := s.post(ctx, phone, code); err == nil {
			return nil
		} else {
			lastErr = err
		}
		if s.retryDelay > 0 {
			time.Sleep(s.retryDelay)
		}
	}
	return lastErr
}

func (s *GatewaySender) post(ctx context.Context, phone, code string) error {
	payload := map[string]any{
		"to":   phone,
		"text": fmt.Sprintf("Your Eventour login code is %s. It expires in a few minutes.", code),
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to build sms payload: %w", err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	timeout := s.httpClient.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodPost, s.endpoint+"/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sms request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		message, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return fmt.Errorf("sms gateway error: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(message)))
	}
	return nil
}

// LogSender writes codes to the log instead of sending them. Used in local
// development when no gateway is configured.
type LogSender struct {
	logger *log.Logger
}

func NewLogSender(logger *log.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, phone, code string) error {
	if s.logger != nil {
		s.logger.Printf("login code for %s: %s", phone, code)
	}
	return nil
}
