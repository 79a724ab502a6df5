// Package notifier implements best-effort delivery of transfer
// notifications to an external HTTP service. Failures here never change
// the outcome of a transfer; the retry policy is entirely this client's
// concern.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	defaultTimeout = 5 * time.Second
	maxAttempts    = 3
	baseBackoff    = 200 * time.Millisecond
)

// Client posts transfer notifications to an external HTTP service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logrus.Entry
}

// NewClient creates a notifier client. An empty baseURL disables delivery.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		log:        logrus.WithField("component", "notifier"),
	}
}

type payload struct {
	Payer uint   `json:"payer"`
	Payee uint   `json:"payee"`
	Value string `json:"value"`
}

// NotifyTransfer delivers a transfer notification, retrying transient
// failures with exponential backoff. The caller logs the returned error
// and moves on; it must never affect the transfer itself.
func (c *Client) NotifyTransfer(ctx context.Context, payerID, payeeID uint, amount decimal.Decimal) error {
	if c.baseURL == "" {
		c.log.Debug("notifier URL not configured, skipping delivery")
		return nil
	}

	body, err := json.Marshal(payload{Payer: payerID, Payee: payeeID, Value: amount.String()})
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(baseBackoff << (attempt - 1)):
			}
		}

		lastErr = c.send(ctx, body)
		if lastErr == nil {
			return nil
		}
		c.log.WithFields(logrus.Fields{
			"attempt": attempt + 1,
			"error":   lastErr,
		}).Warn("notification delivery failed")
	}
	return lastErr
}

func (c *Client) send(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("notifier returned status %d", resp.StatusCode)
	}
	return nil
}
