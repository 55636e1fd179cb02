// Package errors defines custom error types for better error handling and debugging.
// CatalogError provides context-aware error reporting with type classification.
package errors

import (
	stderrors "errors"
	"fmt"
)

// CatalogError represents errors that occur while serving catalog operations
type CatalogError struct {
	Type    string
	Message string
	Cause   error
}

func (e *CatalogError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *CatalogError) Unwrap() error {
	return e.Cause
}

// Error type constants
const (
	ErrorTypeConfigurationInvalid = "CONFIGURATION_INVALID"
	ErrorTypeSearchFailed         = "SEARCH_FAILED"
	ErrorTypeDetailsFetchFailed   = "DETAILS_FETCH_FAILED"
	ErrorTypeProviderBusy         = "PROVIDER_BUSY"
	ErrorTypeDatabaseFailure      = "DATABASE_FAILURE"
	ErrorTypeInvalidID            = "INVALID_ID"
	ErrorTypeGameNotFound         = "GAME_NOT_FOUND"
)

// NewCatalogError creates a new CatalogError
func NewCatalogError(errorType, message string, cause error) *CatalogError {
	return &CatalogError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigurationError creates a configuration-related error
func NewConfigurationError(message string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypeConfigurationInvalid, message, cause)
}

// NewSearchError creates a search-failure error
func NewSearchError(message string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypeSearchFailed, message, cause)
}

// NewDetailsError creates a details-fetch-failure error
func NewDetailsError(message string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypeDetailsFetchFailed, message, cause)
}

// NewProviderBusyError creates an error for exhausted throttle retries.
// Callers can message users that the provider is busy and they should
// try again later.
func NewProviderBusyError(operation string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypeProviderBusy, fmt.Sprintf("provider busy during %s", operation), cause)
}

// NewDatabaseError creates a persistence-related error
func NewDatabaseError(message string, cause error) *CatalogError {
	return NewCatalogError(ErrorTypeDatabaseFailure, message, cause)
}

// NewInvalidIDError creates an invalid ID error
func NewInvalidIDError(id string) *CatalogError {
	return NewCatalogError(ErrorTypeInvalidID, fmt.Sprintf("invalid game ID: %s", id), nil)
}

// NewGameNotFoundError creates a not-found error for the saved-games store
func NewGameNotFoundError(id string) *CatalogError {
	return NewCatalogError(ErrorTypeGameNotFound, fmt.Sprintf("game %s not found", id), nil)
}

// IsType reports whether err is (or wraps) a CatalogError of the given type.
func IsType(err error, errorType string) bool {
	var catErr *CatalogError
	if stderrors.As(err, &catErr) {
		return catErr.Type == errorType
	}
	return false
}
