package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Source identifies this service in outgoing notifications.
const Source = "asset-management-api"

// NotificationLevel represents the severity level of a notification
type NotificationLevel string

const (
	LevelInfo    NotificationLevel = "info"
	LevelWarning NotificationLevel = "warning"
)

// Notifier sends notifications to an external webhook.
type Notifier interface {
	SendNotification(ctx context.Context, notification Notification) error
	IsHealthy(ctx context.Context) bool
}

// NotificationConfig holds configuration for the notification client
type NotificationConfig struct {
	URL            string
	Timeout        time.Duration
	RetryAttempts  int
	RetryDelay     time.Duration
	MaxPayloadSize int64
}

// Notification represents the payload for the notification webhook
type Notification struct {
	Level     NotificationLevel `json:"level"`
	Recipient string            `json:"recipient"`
	Subject   string            `json:"subject"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp,omitempty"`
	Source    string            `json:"source,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Validate checks if the notification is valid
func (n *Notification) Validate() error {
	switch n.Level {
	case "":
		return errors.New("notification level is required")
	case LevelInfo, LevelWarning:
	default:
		return fmt.Errorf("invalid notification level: %s", n.Level)
	}
	if n.Recipient == "" {
		return errors.New("notification recipient is required")
	}
	if n.Message == "" {
		return errors.New("notification message is required")
	}
	if len(n.Message) > 1000 {
		return errors.New("notification message too long (max 1000 characters)")
	}
	return nil
}

// permanentError marks failures that retrying cannot fix.
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// webhookClient posts notifications as JSON to a single URL.
type webhookClient struct {
	config NotificationConfig
	client *http.Client
	logger *log.Logger
}

// NewNotifierWithConfig creates a webhook Notifier. An empty URL yields a
// notifier that discards everything.
func NewNotifierWithConfig(config NotificationConfig, logger *log.Logger) Notifier {
	if config.URL == "" {
		return NoopNotifier{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &webhookClient{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
		logger: logger,
	}
}

// SendNotification validates n and posts it, retrying transient failures
// with a linear backoff.
func (c *webhookClient) SendNotification(ctx context.Context, n Notification) error {
	if err := n.Validate(); err != nil {
		return fmt.Errorf("invalid notification: %w", err)
	}
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now().UTC()
	}
	if n.Source == "" {
		n.Source = Source
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}
	if int64(len(payload)) > c.config.MaxPayloadSize {
		return fmt.Errorf("notification payload too large: %d bytes (max %d)", len(payload), c.config.MaxPayloadSize)
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.RetryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(c.config.RetryDelay * time.Duration(attempt)):
			}
			c.logger.Printf("Retrying notification to %s (attempt %d/%d)", n.Recipient, attempt+1, c.config.RetryAttempts+1)
		}

		lastErr = c.post(ctx, payload)
		if lastErr == nil {
			return nil
		}
		c.logger.Printf("Notification attempt %d failed: %v", attempt+1, lastErr)

		var perm *permanentError
		if errors.As(lastErr, &perm) || ctx.Err() != nil {
			return lastErr
		}
	}

	return fmt.Errorf("failed to send notification after %d attempts: %w", c.config.RetryAttempts+1, lastErr)
}

// post performs a single delivery attempt
func (c *webhookClient) post(ctx context.Context, payload []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.URL, bytes.NewReader(payload))
	if err != nil {
		return &permanentError{fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", Source+"/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	switch {
	case resp.StatusCode >= 500:
		return fmt.Errorf("notification service returned error status %d: %s", resp.StatusCode, string(body))
	case resp.StatusCode >= 400:
		return &permanentError{fmt.Errorf("notification service rejected request with status %d: %s", resp.StatusCode, string(body))}
	}
	return nil
}

// IsHealthy checks if the notification webhook answers
func (c *webhookClient) IsHealthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.config.URL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", Source+"/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode < 500
}

// NoopNotifier drops every notification. It is used when no webhook URL
// is configured.
type NoopNotifier struct{}

// SendNotification implements Notifier.
func (NoopNotifier) SendNotification(ctx context.Context, n Notification) error { return nil }

// IsHealthy implements Notifier.
func (NoopNotifier) IsHealthy(ctx context.Context) bool { return true }
