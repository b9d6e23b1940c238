package domain

import (
	"errors"
	"fmt"
)

// ValidationError is raised before any network call; it never reaches the
// HTTP adapter.
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

// UnauthorizedError is returned for 401 responses after the session has been
// invalidated.
type UnauthorizedError struct {
	Msg string
}

func (e UnauthorizedError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "unauthorized"
}

// APIError carries a non-2xx server response. Message is the server payload
// verbatim when present.
type APIError struct {
	Status  int
	Message string
}

func (e APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.Status)
}

// NetworkError wraps transport failures where no response was received.
type NetworkError struct {
	Err error
}

func (e NetworkError) Error() string {
	return "connection error, please try again"
}

func (e NetworkError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsUnauthorized(err error) bool {
	var target UnauthorizedError
	return errors.As(err, &target)
}

func IsNetwork(err error) bool {
	var target NetworkError
	return errors.As(err, &target)
}

// IsBusinessRejection reports a 4xx server rejection other than auth, e.g.
// "cannot exceed balance". Surfaced inline on the initiating form.
func IsBusinessRejection(err error) bool {
	var target APIError
	if !errors.As(err, &target) {
		return false
	}
	return target.Status >= 400 && target.Status < 500
}

// IsServerFailure reports an unexpected 5xx.
func IsServerFailure(err error) bool {
	var target APIError
	if !errors.As(err, &target) {
		return false
	}
	return target.Status >= 500
}

// ErrorMessage extracts a user-facing message for any error in the taxonomy.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
