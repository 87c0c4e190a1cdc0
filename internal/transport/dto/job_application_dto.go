package dto

import (
	"time"

	"bid-ledger-api/internal/models"

	"github.com/google/uuid"
)

// SubmitApplicationRequest is the payload produced by the submission form.
// JobID comes from the path and FreelancerID from the auth context.
type SubmitApplicationRequest struct {
	JobID        uuid.UUID `json:"-" validate:"required"`
	FreelancerID uuid.UUID `json:"-" validate:"required"`

	FreelancerName         string  `json:"freelancer_name" validate:"omitempty,max=100"`
	FreelancerUsername     string  `json:"freelancer_username" validate:"omitempty,max=50"`
	FreelancerAvatar       string  `json:"freelancer_avatar" validate:"omitempty,max=2048"`
	FreelancerGradientFrom string  `json:"freelancer_gradient_from" validate:"omitempty,max=32"`
	FreelancerGradientTo   string  `json:"freelancer_gradient_to" validate:"omitempty,max=32"`
	FreelancerRating       float64 `json:"freelancer_rating" validate:"gte=0,lte=5"`

	ProposedPrice      float64 `json:"proposed_price" validate:"gt=0"`
	DeliveryDays       int     `json:"delivery_days" validate:"gt=0"`
	Pitch              string  `json:"pitch" validate:"required"` // Length is checked against the configured limit
	PortfolioSampleURL string  `json:"portfolio_sample_url" validate:"omitempty,url"`
	QuestionForCreator string  `json:"question_for_creator" validate:"omitempty,max=300"`
}

// FreelancerResponse is the snapshot embedded in an application response.
type FreelancerResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Avatar       string    `json:"avatar,omitempty"`
	GradientFrom string    `json:"gradient_from,omitempty"`
	GradientTo   string    `json:"gradient_to,omitempty"`
	Rating       float64   `json:"rating"`
}

type JobApplicationResponse struct {
	ID                 uuid.UUID                `json:"id"`
	JobID              uuid.UUID                `json:"job_id"`
	Freelancer         FreelancerResponse       `json:"freelancer"`
	ProposedPrice      float64                  `json:"proposed_price"`
	DeliveryDays       int                      `json:"delivery_days"`
	Pitch              string                   `json:"pitch"`
	PortfolioSampleURL string                   `json:"portfolio_sample_url,omitempty"`
	QuestionForCreator string                   `json:"question_for_creator,omitempty"`
	Position           int                      `json:"position"`
	Status             models.ApplicationStatus `json:"status"`
	CreatedAt          string                   `json:"created_at"`
	UpdatedAt          string                   `json:"updated_at"`
}

// JobSummaryResponse is the review dashboard header for one job.
type JobSummaryResponse struct {
	JobID            uuid.UUID                        `json:"job_id"`
	Total            int                              `json:"total"`
	ByStatus         map[models.ApplicationStatus]int `json:"by_status"`
	ShortlistedCount int                              `json:"shortlisted_count"`
	ShortlistLimit   int                              `json:"shortlist_limit,omitempty"`
	HiredID          *uuid.UUID                       `json:"hired_application_id,omitempty"`
}

// EligibilityResponse tells a freelancer whether they may apply to a job.
type EligibilityResponse struct {
	JobID          uuid.UUID  `json:"job_id"`
	HasApplied     bool       `json:"has_applied"`
	Eligible       bool       `json:"eligible"`
	Reason         string     `json:"reason,omitempty"`
	RemainingQuota int        `json:"remaining_quota"`
	QuotaResetsAt  *time.Time `json:"quota_resets_at,omitempty"`
}
