package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrEmailAlreadyInUse    = errors.New("email already in use")
	ErrInvalidCredentials   = errors.New("incorrect email or password")
	ErrAccountLocked        = errors.New("account is temporarily locked due to multiple failed login attempts")
	ErrAccountDisabled      = errors.New("account is disabled")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrPasswordReused       = errors.New("cannot reuse recent passwords")
	ErrSamePassword         = errors.New("new password cannot be the same as current password")
	ErrWrongPassword        = errors.New("current password is incorrect")
)

// ValidationError collects field-scoped input violations. It is recovered at
// the handler boundary and rendered as a structured response body.
type ValidationError struct {
	Fields map[string][]string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add appends a violation message for the given field.
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// Empty reports whether no violations have been recorded.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	if e.Empty() {
		return "validation failed"
	}
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, field := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %s", field, strings.Join(e.Fields[field], ", "))
	}
	return b.String()
}
