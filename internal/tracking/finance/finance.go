// Package finance consumes the external payment collaborator. Payment state
// is an informational overlay on stages: document completion and payment
// completion are independent axes and the gating engine never locks on it.
package finance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"time"

	"deedflow/internal/tracking/models"
	id "deedflow/pkg/domain"
	"deedflow/pkg/platform/circuit"
)

// ErrCircuitOpen is returned while the billing service is considered down,
// replacing the noise of per-call errors with one stable condition the
// service can log cheaply.
var ErrCircuitOpen = errors.New("billing circuit open")

const defaultRetryAfter = 30 * time.Second

// HTTPClient fetches per-stage payment requirements from the billing service.
// A circuit breaker tracks consecutive outcomes; while the circuit is open
// calls return ErrCircuitOpen without touching the network, except for one
// trial call per retry window that probes whether billing has recovered.
type HTTPClient struct {
	baseURL    string
	client     *http.Client
	breaker    *circuit.Breaker
	logger     *slog.Logger
	retryAfter time.Duration

	mu          sync.Mutex
	lastAttempt time.Time
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithRetryAfter sets how long an open circuit suppresses upstream calls
// before the next trial call is allowed.
func WithRetryAfter(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.retryAfter = d
	}
}

func NewHTTPClient(baseURL string, logger *slog.Logger, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: 5 * time.Second},
		breaker:    circuit.New("billing"),
		logger:     logger,
		retryAfter: defaultRetryAfter,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Gate returns the payment requirement for one stage.
func (c *HTTPClient) Gate(ctx context.Context, tx id.TransactionID, stageNumber int) (*models.FinancialGate, error) {
	if c.breaker.IsOpen() && !c.claimTrial() {
		return nil, ErrCircuitOpen
	}

	gate, err := c.fetch(ctx, tx, stageNumber)
	if err != nil {
		useFallback, change := c.breaker.RecordFailure()
		if change.Opened {
			c.markAttempt()
			c.logger.WarnContext(ctx, "billing circuit opened",
				"breaker", c.breaker.Name(),
				"error", err.Error(),
			)
		}
		if useFallback {
			return nil, ErrCircuitOpen
		}
		return nil, err
	}

	if _, change := c.breaker.RecordSuccess(); change.Closed {
		c.logger.InfoContext(ctx, "billing circuit closed",
			"breaker", c.breaker.Name(),
		)
	}
	return gate, nil
}

// claimTrial reports whether the retry window since the last upstream attempt
// has elapsed, and claims the trial slot when it has. Only one caller per
// window gets through to probe an open circuit.
func (c *HTTPClient) claimTrial() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if time.Since(c.lastAttempt) < c.retryAfter {
		return false
	}
	c.lastAttempt = time.Now()
	return true
}

func (c *HTTPClient) markAttempt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastAttempt = time.Now()
}

func (c *HTTPClient) fetch(ctx context.Context, tx id.TransactionID, stageNumber int) (*models.FinancialGate, error) {
	url := c.baseURL + "/transactions/" + tx.String() + "/stages/" + strconv.Itoa(stageNumber) + "/financial-gate"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build financial gate request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch financial gate: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("financial gate returned status %d", resp.StatusCode)
	}

	var gate models.FinancialGate
	if err := json.NewDecoder(resp.Body).Decode(&gate); err != nil {
		return nil, fmt.Errorf("decode financial gate: %w", err)
	}
	return &gate, nil
}

// Disabled is the collaborator stand-in when no billing service is
// configured: every stage reports no pending amount.
type Disabled struct{}

func (Disabled) Gate(ctx context.Context, tx id.TransactionID, stageNumber int) (*models.FinancialGate, error) {
	return &models.FinancialGate{IsComplete: true}, nil
}
