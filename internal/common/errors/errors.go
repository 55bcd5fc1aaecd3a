// Package errors provides standardized error handling for the listing
// summary pipeline.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Pipeline error taxonomy. Upstream fetch failures degrade to defaults at
// the call site; generation and parse failures propagate to the request
// boundary.
const (
	ErrCodeListingFetchFailed      ErrorCode = "LISTING_FETCH_FAILED"
	ErrCodeReviewsFetchFailed      ErrorCode = "REVIEWS_FETCH_FAILED"
	ErrCodeAvailabilityFetchFailed ErrorCode = "AVAILABILITY_FETCH_FAILED"
	ErrCodePriceFetchFailed        ErrorCode = "PRICE_FETCH_FAILED"

	ErrCodeGenerationFailed  ErrorCode = "GENERATION_FAILED"
	ErrCodeGenerationTimeout ErrorCode = "GENERATION_TIMEOUT"
	ErrCodeMarkerNotFound    ErrorCode = "MARKER_NOT_FOUND"

	ErrCodeListingIDRequired ErrorCode = "LISTING_ID_REQUIRED"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// HasCode reports whether err is a StandardError carrying the given code.
func HasCode(err error, code ErrorCode) bool {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr.Code == code
	}
	return false
}

// Normalize ensures we always have a StandardError at the request boundary.
func Normalize(err error) *StandardError {
	var stdErr *StandardError
	if errors.As(err, &stdErr) {
		return stdErr
	}
	return &StandardError{
		Code:      "INTERNAL_ERROR",
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 2. Error Constructors
// ==========================

// NewListingFetchFailedError wraps an upstream listing-detail failure.
func NewListingFetchFailedError(listingID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeListingFetchFailed,
		Message:   "Failed to fetch listing from marketplace",
		Details:   fmt.Sprintf("listingId: %s, error: %s", listingID, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReviewsFetchFailedError wraps an upstream reviews failure.
func NewReviewsFetchFailedError(boatID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeReviewsFetchFailed,
		Message:   "Failed to fetch reviews from marketplace",
		Details:   fmt.Sprintf("boatId: %s, error: %s", boatID, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewAvailabilityFetchFailedError wraps an upstream availability failure.
func NewAvailabilityFetchFailedError(boatID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeAvailabilityFetchFailed,
		Message:   "Failed to fetch availability dates from marketplace",
		Details:   fmt.Sprintf("boatId: %s, error: %s", boatID, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewPriceFetchFailedError wraps an upstream calculated-price failure.
func NewPriceFetchFailedError(boatID string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePriceFetchFailed,
		Message:   "Failed to fetch calculated price from marketplace",
		Details:   fmt.Sprintf("boatId: %s, error: %s", boatID, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenerationFailedError wraps a text-generation provider failure.
func NewGenerationFailedError(variant string, err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationFailed,
		Message:   "Text-generation call failed",
		Details:   fmt.Sprintf("variant: %s, error: %s", variant, err.Error()),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenerationTimeoutError marks a text-generation provider timeout.
func NewGenerationTimeoutError(variant string) *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationTimeout,
		Message:   "Text-generation call timed out",
		Details:   fmt.Sprintf("variant: %s", variant),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewMarkerNotFoundError marks a completion that lacks an expected
// section marker, making it unparseable.
func NewMarkerNotFoundError(marker, variant string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMarkerNotFound,
		Message:   "Expected section marker not found in completion text",
		Details:   fmt.Sprintf("marker: %q, variant: %s", marker, variant),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewListingIDRequiredError marks a blank listing-ID submission.
func NewListingIDRequiredError() *StandardError {
	return &StandardError{
		Code:      ErrCodeListingIDRequired,
		Message:   "Please enter a valid Listing ID.",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}
