package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"deposit-accounts/internal/config"
	"deposit-accounts/internal/dto"

	"github.com/google/uuid"
)

var (
	ErrCustomerNotFound           = errors.New("customer not found")
	ErrCustomerServiceUnavailable = errors.New("customer service unavailable")
)

// customerClient resolves customers over HTTP from the customer directory
// service, guarded by a circuit breaker
type customerClient struct {
	baseURL    string
	httpClient *http.Client
	breaker    CircuitBreakerInterface
	logger     *slog.Logger
	metrics    MetricsRecorderInterface
}

// NewCustomerClient creates a customer directory client
func NewCustomerClient(
	cfg *config.CustomerServiceConfig,
	breaker CircuitBreakerInterface,
	logger *slog.Logger,
	metrics MetricsRecorderInterface,
) CustomerServiceInterface {
	return &customerClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		breaker: breaker,
		logger:  logger,
		metrics: metrics,
	}
}

// GetCustomerByID resolves a customer from the directory service
func (c *customerClient) GetCustomerByID(ctx context.Context, customerID uuid.UUID) (*dto.CustomerResponse, error) {
	if c.breaker.IsOpen() {
		c.logger.Warn("customer lookup rejected, circuit breaker open", "customer_id", customerID)
		c.metrics.IncrementCounter("customer_lookup", map[string]string{"status": "breaker_open"})
		return nil, ErrCustomerServiceUnavailable
	}

	start := time.Now()
	customer, err := c.fetchCustomer(ctx, customerID)
	c.metrics.RecordProcessingTime("customer_lookup", time.Since(start))

	if err != nil {
		// A missing customer is a definitive answer from the directory,
		// not a directory outage
		if errors.Is(err, ErrCustomerNotFound) {
			c.breaker.RecordSuccess()
			c.metrics.IncrementCounter("customer_lookup", map[string]string{"status": "not_found"})
			return nil, err
		}

		c.breaker.RecordFailure()
		c.metrics.IncrementCounter("customer_lookup", map[string]string{"status": "error"})
		c.logger.Error("customer lookup failed", "customer_id", customerID, "error", err)
		return nil, ErrCustomerServiceUnavailable
	}

	c.breaker.RecordSuccess()
	c.metrics.IncrementCounter("customer_lookup", map[string]string{"status": "success"})
	return customer, nil
}

func (c *customerClient) fetchCustomer(ctx context.Context, customerID uuid.UUID) (*dto.CustomerResponse, error) {
	url := fmt.Sprintf("%s/api/customers/%s", c.baseURL, customerID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build customer request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("customer request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrCustomerNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("customer service returned status %d", resp.StatusCode)
	}

	var customer dto.CustomerResponse
	if err := json.NewDecoder(resp.Body).Decode(&customer); err != nil {
		return nil, fmt.Errorf("failed to decode customer response: %w", err)
	}

	if !dto.IsValidCustomerType(customer.CustomerType) {
		return nil, fmt.Errorf("customer service returned unknown customer type %q", customer.CustomerType)
	}

	return &customer, nil
}
