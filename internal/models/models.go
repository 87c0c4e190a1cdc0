package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusSubmitted   ApplicationStatus = "submitted"
	ApplicationStatusShortlisted ApplicationStatus = "shortlisted"
	ApplicationStatusHired       ApplicationStatus = "hired"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
)

// IsTerminal reports whether no further transition may start from the status.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusHired || s == ApplicationStatusRejected
}

// Valid reports whether s is one of the known statuses.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusSubmitted, ApplicationStatusShortlisted, ApplicationStatusHired, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// FreelancerSnapshot is the freelancer's public profile as it looked when the
// application was submitted. It is never refreshed from the profile store.
type FreelancerSnapshot struct {
	Name         string  `json:"name" db:"freelancer_name"`
	Username     string  `json:"username" db:"freelancer_username"`
	Avatar       string  `json:"avatar,omitempty" db:"freelancer_avatar"`
	GradientFrom string  `json:"gradient_from,omitempty" db:"freelancer_gradient_from"`
	GradientTo   string  `json:"gradient_to,omitempty" db:"freelancer_gradient_to"`
	Rating       float64 `json:"rating" db:"freelancer_rating"`
}

// Application is one freelancer's bid on one job.
type Application struct {
	ID           uuid.UUID          `json:"id" db:"id"`
	JobID        uuid.UUID          `json:"job_id" db:"job_id"`
	FreelancerID uuid.UUID          `json:"freelancer_id" db:"freelancer_id"`
	Freelancer   FreelancerSnapshot `json:"freelancer"`

	ProposedPrice      float64 `json:"proposed_price" db:"proposed_price"`
	DeliveryDays       int     `json:"delivery_days" db:"delivery_days"`
	Pitch              string  `json:"pitch" db:"pitch"`
	PortfolioSampleURL string  `json:"portfolio_sample_url,omitempty" db:"portfolio_sample_url"`
	QuestionForCreator string  `json:"question_for_creator,omitempty" db:"question_for_creator"`

	// Position records submission order within the job, starting at 1.
	Position int               `json:"position" db:"position"`
	Status   ApplicationStatus `json:"status" db:"status"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// JobSummary aggregates one job's applications by status.
type JobSummary struct {
	JobID    uuid.UUID
	Total    int
	ByStatus map[ApplicationStatus]int
	HiredID  *uuid.UUID
}

// Eligibility reasons
const (
	IneligibleAlreadyApplied = "already_applied"
	IneligibleQuotaExhausted = "quota_exhausted"
)

// Eligibility describes whether a freelancer may submit to a job right now.
type Eligibility struct {
	HasApplied     bool
	Eligible       bool
	Reason         string
	RemainingQuota int        // -1 when no quota is configured
	QuotaResetsAt  *time.Time // when the oldest submission in the window ages out
}
