package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/jengzang/voyager-backend-go/internal/models"
)

// DefaultTimeout bounds one generation round trip
const DefaultTimeout = 100 * time.Second

// maxBodyBytes caps the size of a generator response
const maxBodyBytes = 16 << 20

// ErrBodyTooLarge is wrapped in a *FailedError when a response exceeds the cap
var ErrBodyTooLarge = errors.New("generator response too large")

// Client talks to the external itinerary generator
type Client struct {
	endpoint string
	timeout  time.Duration
	maxBody  int64
	http     *http.Client
}

// NewClient creates a generator client. A non-positive timeout uses DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		timeout:  timeout,
		maxBody:  maxBodyBytes,
		http:     &http.Client{Timeout: timeout},
	}
}

// Timeout returns the effective round-trip timeout
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// Endpoint returns the generator URL
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Generate requests a trip and returns it validated
func (c *Client) Generate(ctx context.Context, req models.GenerationRequest) (*models.Trip, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode generation request: %w", err)
	}

	body, err := c.Forward(ctx, payload)
	if err != nil {
		return nil, err
	}

	return DecodeTrip(body)
}

// Forward posts payload to the generator unchanged and returns the raw
// success body. Failures are *TimeoutError or *FailedError.
func (c *Client) Forward(ctx context.Context, payload []byte) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, &FailedError{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{Timeout: c.timeout, Err: err}
		}
		return nil, &FailedError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		if isTimeout(err) {
			return nil, &TimeoutError{Timeout: c.timeout, Err: err}
		}
		return nil, &FailedError{StatusCode: resp.StatusCode, Err: err}
	}
	if int64(len(body)) > c.maxBody {
		log.Printf("[Generator] POST %s -> %d body over %d bytes", c.endpoint, resp.StatusCode, c.maxBody)
		return nil, &FailedError{StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: over %d bytes", ErrBodyTooLarge, c.maxBody)}
	}

	log.Printf("[Generator] POST %s -> %d (%d bytes, %v)", c.endpoint, resp.StatusCode, len(body), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FailedError{
			StatusCode: resp.StatusCode,
			Message:    errorField(body),
		}
	}

	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// errorField extracts {"error": "..."} from a body, tolerating anything else
func errorField(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}
