// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates business rule validation failed.
	ErrValidation = errors.New("validation failed")

	// ErrForbidden indicates the operation is not permitted by business rules.
	ErrForbidden = errors.New("forbidden")

	// ErrUnavailable indicates a required dependency is unavailable.
	ErrUnavailable = errors.New("unavailable")

	// ErrUpstreamContract indicates a dependency answered with data that
	// does not satisfy the contract the service relies on.
	ErrUpstreamContract = errors.New("upstream contract violated")

	// ErrMisconfigured indicates the service lacks configuration it needs
	// to complete the operation.
	ErrMisconfigured = errors.New("service misconfigured")
)

// Rashi computation failure kinds. Each wraps one of the categories above so
// adapters can map by category and still distinguish the precise kind.
var (
	// ErrMissingLocation is returned when neither a place nor a coordinate
	// pair was supplied.
	ErrMissingLocation = fmt.Errorf("%w: either place or coordinates are required", ErrValidation)

	// ErrMalformedCoordinate is returned when a degree, minute, second or
	// hemisphere token cannot be interpreted.
	ErrMalformedCoordinate = fmt.Errorf("%w: malformed coordinate", ErrValidation)

	// ErrPlaceNotFound is returned when the geocoder has no candidate for a place.
	ErrPlaceNotFound = fmt.Errorf("place %w", ErrNotFound)

	// ErrGatewayUnavailable is returned when an external gateway call fails
	// at the transport level or answers with a non-2xx status.
	ErrGatewayUnavailable = fmt.Errorf("gateway %w", ErrUnavailable)

	// ErrMoonSignNotFound is returned when the astrology response carries no
	// usable moon sign under any known shape.
	ErrMoonSignNotFound = fmt.Errorf("%w: moon sign (rashi) not found in API response", ErrUpstreamContract)

	// ErrUnknownSign is returned when a moon sign index has no rashi.
	ErrUnknownSign = fmt.Errorf("%w: unknown moon sign", ErrUpstreamContract)
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// CoordinateError reports which coordinate token could not be interpreted.
type CoordinateError struct {
	Field string
	Value string
}

// Error implements the error interface.
func (e *CoordinateError) Error() string {
	return fmt.Sprintf("malformed coordinate: %s=%q", e.Field, e.Value)
}

// Unwrap returns ErrMalformedCoordinate for errors.Is() support.
func (e *CoordinateError) Unwrap() error {
	return ErrMalformedCoordinate
}

// ForbiddenError provides context for forbidden errors.
type ForbiddenError struct {
	Operation string
	Reason    string
}

// Error implements the error interface.
func (e *ForbiddenError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("operation %q forbidden: %s", e.Operation, e.Reason)
	}

	return fmt.Sprintf("operation %q forbidden", e.Operation)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}

// NewForbiddenError creates a forbidden error with context.
func NewForbiddenError(operation, reason string) error {
	return &ForbiddenError{Operation: operation, Reason: reason}
}

// GatewayError describes a failed call to an external gateway.
// StatusCode is zero when no response was received.
type GatewayError struct {
	Service    string
	StatusCode int
	Reason     string
}

// Error implements the error interface.
func (e *GatewayError) Error() string {
	switch {
	case e.StatusCode > 0 && e.Reason != "":
		return fmt.Sprintf("%s error: %d: %s", e.Service, e.StatusCode, e.Reason)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s error: %d", e.Service, e.StatusCode)
	case e.Reason != "":
		return fmt.Sprintf("service %q unavailable: %s", e.Service, e.Reason)
	default:
		return fmt.Sprintf("service %q unavailable", e.Service)
	}
}

// Unwrap returns ErrGatewayUnavailable for errors.Is() support.
func (e *GatewayError) Unwrap() error {
	return ErrGatewayUnavailable
}

// NewGatewayError creates a gateway error for a transport-level failure.
func NewGatewayError(service, reason string) error {
	return &GatewayError{Service: service, Reason: reason}
}

// NewGatewayStatusError creates a gateway error annotated with the upstream status.
func NewGatewayStatusError(service string, status int) error {
	return &GatewayError{Service: service, StatusCode: status}
}

// MisconfiguredError names the setting the service is missing.
type MisconfiguredError struct {
	Service string
	Setting string
}

// Error implements the error interface.
func (e *MisconfiguredError) Error() string {
	return fmt.Sprintf("%s: %s not configured", e.Service, e.Setting)
}

// Unwrap returns ErrMisconfigured for errors.Is() support.
func (e *MisconfiguredError) Unwrap() error {
	return ErrMisconfigured
}

// NewMisconfiguredError creates a misconfiguration error.
func NewMisconfiguredError(service, setting string) error {
	return &MisconfiguredError{Service: service, Setting: setting}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsForbidden checks if an error is a forbidden error.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsUnavailable checks if an error is an unavailable error.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// IsUpstreamContract checks if an error is an upstream contract violation.
func IsUpstreamContract(err error) bool {
	return errors.Is(err, ErrUpstreamContract)
}

// IsMisconfigured checks if an error is a misconfiguration error.
func IsMisconfigured(err error) bool {
	return errors.Is(err, ErrMisconfigured)
}
