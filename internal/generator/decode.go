package generator

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jengzang/voyager-backend-go/internal/models"
)

var validate = validator.New()

// DecodeTrip normalizes a generator success body into a validated trip.
// The body may be a trip object or a JSON string holding one, optionally
// wrapped in a markdown code fence.
func DecodeTrip(body []byte) (*models.Trip, error) {
	raw := bytes.TrimSpace(body)
	if len(raw) == 0 {
		return nil, &MalformedTripError{Reason: "empty response"}
	}

	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return nil, &MalformedTripError{Reason: "undecodable string payload", Err: err}
		}
		raw = []byte(stripFence(encoded))
	}

	var trip models.Trip
	if err := json.Unmarshal(raw, &trip); err != nil {
		return nil, &MalformedTripError{Reason: "not a trip object", Message: errorField(raw), Err: err}
	}

	if err := ValidateTrip(&trip); err != nil {
		return nil, &MalformedTripError{Reason: "trip shape", Message: errorField(raw), Err: err}
	}

	return &trip, nil
}

// ValidateTrip checks the trip shape the engine and adapter rely on
func ValidateTrip(trip *models.Trip) error {
	return validate.Struct(trip)
}

func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
