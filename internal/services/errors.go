package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Define common service errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrValidation           = errors.New("validation failed")
	ErrDuplicateApplication = errors.New("freelancer already applied to this job")
	ErrInvalidTransition    = errors.New("invalid state transition")
	ErrQuotaExceeded        = errors.New("submission quota exceeded")
	ErrShortlistFull        = errors.New("shortlist is full")
)

// ValidationError carries per-field messages. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
