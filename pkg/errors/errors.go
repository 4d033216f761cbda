// Package errors provides the custom error types used throughout costsync.
// They enable programmatic error checking with errors.Is while keeping
// every failure renderable as a single human-readable message, which is
// what a one-shot batch run ultimately reports.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the costsync system.
var (
	// ErrNotFound indicates that a requested resource was not found.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid or missing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAuthFailed indicates that a credential was rejected by an API.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRateLimited indicates that an API rate limit has been exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrServiceUnavailable indicates that a remote service is temporarily unavailable.
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrTimeout indicates that an operation timed out.
	ErrTimeout = errors.New("operation timed out")

	// ErrCanceled indicates that an operation was canceled.
	ErrCanceled = errors.New("operation canceled")
)

// NotFoundError represents an error when a named resource has no match.
// Available carries the names that do exist so an operator can spot a typo
// from the failure message alone.
type NotFoundError struct {
	Resource  string
	Name      string
	Available []string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if len(e.Available) > 0 {
		return fmt.Sprintf("%s %q not found (available: %s)", e.Resource, e.Name, strings.Join(e.Available, ", "))
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}

// Is implements errors.Is support.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resource, name string, available []string) *NotFoundError {
	return &NotFoundError{Resource: resource, Name: name, Available: available}
}

// ValidationError represents missing or invalid configuration input.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid input %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid input: %s", e.Message)
}

// Is implements errors.Is support.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// APIError represents an error response from a remote API.
type APIError struct {
	Service    string // "github", "billing"
	StatusCode int
	Endpoint   string
	Message    string
	Err        error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s API error (status %d) on %s: %s", e.Service, e.StatusCode, e.Endpoint, e.Message)
	}
	return fmt.Sprintf("%s API error on %s: %s", e.Service, e.Endpoint, e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support, mapping status classes to sentinels.
func (e *APIError) Is(target error) bool {
	switch {
	case e.StatusCode == 401 || e.StatusCode == 403:
		return target == ErrAuthFailed
	case e.StatusCode == 404:
		return target == ErrNotFound
	case e.StatusCode == 429:
		return target == ErrRateLimited
	case e.StatusCode >= 500:
		return target == ErrServiceUnavailable
	}
	return false
}

// NewAPIError creates a new APIError.
func NewAPIError(service string, statusCode int, endpoint, message string) *APIError {
	return &APIError{
		Service:    service,
		StatusCode: statusCode,
		Endpoint:   endpoint,
		Message:    message,
	}
}

// AuthenticationError represents a rejected or unusable credential.
type AuthenticationError struct {
	Service string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	if e.Service != "" {
		return fmt.Sprintf("authentication error for %s: %s", e.Service, e.Message)
	}
	return fmt.Sprintf("authentication error: %s", e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *AuthenticationError) Is(target error) bool {
	return target == ErrAuthFailed
}

// ConfigError represents a configuration loading error.
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap implements errors.Unwrap.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{Component: component, Message: message, Err: err}
}

// FetchError represents a failed membership fetch from one upstream source.
// Whether it is fatal depends on how many sources feed the run; the sync
// layer owns that policy.
type FetchError struct {
	Source string // "org" or "org/team" form
	Err    error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch members of %s: %v", e.Source, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// WrapFetch wraps an error as a FetchError.
func WrapFetch(source string, err error) error {
	if err == nil {
		return nil
	}
	return &FetchError{Source: source, Err: err}
}

// MutationError represents a failed add or remove call against the target
// group store. It aborts the remaining batch; mutations already applied are
// not rolled back.
type MutationError struct {
	Operation  string // "add", "remove"
	CostCenter string
	Login      string
	Err        error
}

// Error implements the error interface.
func (e *MutationError) Error() string {
	return fmt.Sprintf("failed to %s user %s on cost center %s: %v", e.Operation, e.Login, e.CostCenter, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *MutationError) Unwrap() error {
	return e.Err
}

// NewMutationError creates a new MutationError.
func NewMutationError(operation, costCenter, login string, err error) *MutationError {
	return &MutationError{Operation: operation, CostCenter: costCenter, Login: login, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is an invalid input error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsAuthFailed checks if an error is an authentication failure.
func IsAuthFailed(err error) bool {
	return errors.Is(err, ErrAuthFailed)
}

// IsRateLimited checks if an error is a rate limit error.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsServiceUnavailable checks if an error indicates remote unavailability.
func IsServiceUnavailable(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}

// IsTimeout checks if an error is a timeout error.
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}
