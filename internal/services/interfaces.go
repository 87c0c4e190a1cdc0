package services

import (
	"context"

	"bid-ledger-api/internal/models"
	"bid-ledger-api/internal/transport/dto"

	"github.com/google/uuid"
)

// ApplicationLedger defines the job application workflow: submission,
// queries for the review dashboard and the freelancer status view, and the
// shortlist/hire/reject transitions.
type ApplicationLedger interface {
	Submit(ctx context.Context, req *dto.SubmitApplicationRequest) (*models.Application, error)
	GetApplication(ctx context.Context, applicationID uuid.UUID) (*models.Application, error)
	ListForJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error)
	ListForFreelancer(ctx context.Context, freelancerID uuid.UUID) ([]models.Application, error)
	HasApplied(ctx context.Context, jobID, freelancerID uuid.UUID) (bool, error)
	CanSubmit(ctx context.Context, jobID, freelancerID uuid.UUID) (*models.Eligibility, error)
	ShortlistedCount(ctx context.Context, jobID uuid.UUID) (int, error)
	JobSummary(ctx context.Context, jobID uuid.UUID) (*models.JobSummary, error)

	Shortlist(ctx context.Context, applicationID uuid.UUID) (*models.Application, error)
	Hire(ctx context.Context, applicationID uuid.UUID) (*models.Application, error)
	Reject(ctx context.Context, applicationID uuid.UUID) (*models.Application, error)
}
