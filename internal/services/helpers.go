package services

import (
	"errors"
	"fmt"
	"log"

	"bid-ledger-api/internal/models"
	"bid-ledger-api/internal/storage"

	"github.com/go-playground/validator/v10"
)

// isValidApplicationTransition defines the allowed status changes.
// The hire side effect on sibling applications goes through the same table.
func isValidApplicationTransition(from, to models.ApplicationStatus) bool {
	switch from {
	case models.ApplicationStatusSubmitted:
		return to == models.ApplicationStatusShortlisted ||
			to == models.ApplicationStatusHired ||
			to == models.ApplicationStatusRejected
	case models.ApplicationStatusShortlisted:
		return to == models.ApplicationStatusHired || to == models.ApplicationStatusRejected
	case models.ApplicationStatusHired, models.ApplicationStatusRejected:
		// Terminal states
		return false
	default:
		return false
	}
}

// MapRepoError maps storage errors to service errors
func MapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrDuplicateApplication, operation, err)
	}
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// fieldErrors turns validator output into a field -> message map.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		out["request"] = err.Error()
		return out
	}
	for _, fe := range validationErrors {
		name := fe.Field()
		switch fe.Tag() {
		case "required":
			out[name] = fmt.Sprintf("Field '%s' is required", name)
		case "gt":
			out[name] = fmt.Sprintf("Field '%s' must be greater than %s", name, fe.Param())
		case "gte":
			out[name] = fmt.Sprintf("Field '%s' must be at least %s", name, fe.Param())
		case "lte":
			out[name] = fmt.Sprintf("Field '%s' must be at most %s", name, fe.Param())
		case "max":
			out[name] = fmt.Sprintf("Field '%s' must be at most %s characters long", name, fe.Param())
		case "url":
			out[name] = fmt.Sprintf("Field '%s' must be a valid URL", name)
		default:
			out[name] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", name, fe.Tag())
		}
	}
	return out
}
