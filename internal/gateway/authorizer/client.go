// Package authorizer implements the external payment authorization client.
// The decision policy lives in the transaction engine; this client only
// reports the oracle's answer or a transport failure.
package authorizer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const defaultTimeout = 10 * time.Second

// Client queries an external HTTP service for transfer authorization.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logrus.Entry
}

// NewClient creates an authorizer client. An empty baseURL means the
// oracle is unconfigured: every call is approved, loudly, for local
// development only.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    baseURL,
		log:        logrus.WithField("component", "authorizer"),
	}
}

type response struct {
	Data struct {
		Authorization bool `json:"authorization"`
	} `json:"data"`
	Message    string `json:"message"`
	Authorized bool   `json:"authorized"`
}

// Authorize consults the oracle for the proposed transfer. A transport
// failure is returned as an error distinct from an explicit false decision.
func (c *Client) Authorize(ctx context.Context, payerID, payeeID uint, amount decimal.Decimal) (bool, error) {
	if c.baseURL == "" {
		c.log.Warn("authorizer URL not configured, approving automatically")
		return true, nil
	}

	q := url.Values{}
	q.Set("payer", fmt.Sprint(payerID))
	q.Set("payee", fmt.Sprint(payeeID))
	q.Set("value", amount.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return false, fmt.Errorf("failed to build authorization request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("authorizer unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read authorizer response: %w", err)
	}

	// Some oracle deployments answer denials with a non-2xx status but a
	// well-formed body; the body is authoritative when it parses.
	authorized, parseErr := parseDecision(body)
	if parseErr != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return false, fmt.Errorf("authorizer returned status %d", resp.StatusCode)
		}
		return false, parseErr
	}

	c.log.WithFields(logrus.Fields{
		"payer":      payerID,
		"payee":      payeeID,
		"authorized": authorized,
	}).Info("authorization decision received")

	return authorized, nil
}

func parseDecision(body []byte) (bool, error) {
	var r response
	if err := json.Unmarshal(body, &r); err != nil {
		return false, fmt.Errorf("failed to decode authorizer response: %w", err)
	}
	if r.Data.Authorization {
		return true, nil
	}
	if r.Message == "Autorizado" {
		return true, nil
	}
	return r.Authorized, nil
}
