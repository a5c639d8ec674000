package cda

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError represents an error response from the Delivery API.
type APIError struct {
	Sys       Sys    `json:"sys"       yaml:"sys"`
	Message   string `json:"message"   yaml:"message"`
	RequestID string `json:"requestId" yaml:"requestId"`

	StatusCode int `json:"-" yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status: %d, request: %s)", e.Sys.ID, e.Message, e.StatusCode, e.RequestID)
}

// Error ids returned by the API in sys.id.
const (
	ErrorIDNotFound           = "NotFound"
	ErrorIDAccessTokenInvalid = "AccessTokenInvalid"
	ErrorIDAccessDenied       = "AccessDenied"
	ErrorIDBadRequest         = "BadRequest"
	ErrorIDRateLimitExceeded  = "RateLimitExceeded"
	ErrorIDInvalidQuery       = "InvalidQuery"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired     = errors.New("config is required")
	ErrSpaceIDRequired    = errors.New("space ID must be provided")
	ErrTokenRequired      = errors.New("access token must be provided")
	ErrMalformedResource  = errors.New("malformed resource")
	ErrMissingContentType = errors.New("missing content type")
	ErrContentTypeIDEmpty = errors.New("content type ID is required")
	ErrEntryIDRequired    = errors.New("entry ID is required")
	ErrAssetIDRequired    = errors.New("asset ID is required")
	ErrNilCallback        = errors.New("callback must not be nil")
)

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Sys.ID == ErrorIDNotFound || apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// IsUnauthorized checks if the error is an invalid-token error.
func IsUnauthorized(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Sys.ID == ErrorIDAccessTokenInvalid || apiErr.StatusCode == http.StatusUnauthorized
	}

	return false
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.Sys.ID == ErrorIDRateLimitExceeded || apiErr.StatusCode == http.StatusTooManyRequests
	}

	return false
}

// IsMalformed checks if the error is a malformed-resource error. Malformed
// responses are never retried and never stored in the cache.
func IsMalformed(err error) bool {
	return errors.Is(err, ErrMalformedResource)
}

// ParseAPIError parses an error response body, attaching the HTTP status.
func ParseAPIError(data []byte, statusCode int) (*APIError, error) {
	var apiErr APIError

	err := json.Unmarshal(data, &apiErr)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal error response: %w", err)
	}

	apiErr.StatusCode = statusCode

	return &apiErr, nil
}
