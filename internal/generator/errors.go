package generator

import (
	"errors"
	"fmt"
	"time"

	"github.com/jengzang/voyager-backend-go/internal/models"
)

// User-facing messages
const (
	failurePrefix         = "Trip generation failed: "
	GenericFailureMessage = "Server timed out. Please try again."
)

// TimeoutError means the generator did not answer within the deadline
type TimeoutError struct {
	Timeout time.Duration
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("generator timed out after %s: %v", e.Timeout, e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// FailedError means the generator could not be reached or answered with a
// non-2xx status. Message holds the generator's own error text, if any.
type FailedError struct {
	StatusCode int // 0 when no response arrived
	Message    string
	Err        error
}

func (e *FailedError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Message != "":
		return fmt.Sprintf("generator returned %d: %s", e.StatusCode, e.Message)
	case e.StatusCode != 0 && e.Err != nil:
		return fmt.Sprintf("generator returned %d: %v", e.StatusCode, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("generator returned %d", e.StatusCode)
	default:
		return fmt.Sprintf("generator request failed: %v", e.Err)
	}
}

func (e *FailedError) Unwrap() error { return e.Err }

// MalformedTripError means a 2xx body did not have the trip shape
type MalformedTripError struct {
	Reason  string
	Message string // "error" field found in the body, if any
	Err     error
}

func (e *MalformedTripError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed trip: %s: %v", e.Reason, e.Err)
	}
	return "malformed trip: " + e.Reason
}

func (e *MalformedTripError) Unwrap() error { return e.Err }

// UserMessage maps any generation error to the text shown to the user.
// The generator's reported message wins; everything else gets the generic one.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var failed *FailedError
	if errors.As(err, &failed) && failed.Message != "" {
		return failurePrefix + failed.Message
	}
	var malformed *MalformedTripError
	if errors.As(err, &malformed) && malformed.Message != "" {
		return failurePrefix + malformed.Message
	}
	return failurePrefix + GenericFailureMessage
}

// Outcome classifies err for the audit log
func Outcome(err error) string {
	var (
		timeout   *TimeoutError
		malformed *MalformedTripError
	)
	switch {
	case err == nil:
		return models.OutcomeOK
	case errors.As(err, &timeout):
		return models.OutcomeTimeout
	case errors.As(err, &malformed):
		return models.OutcomeMalformed
	default:
		return models.OutcomeFailed
	}
}
