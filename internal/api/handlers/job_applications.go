package handlers

import (
	"context"
	"log"
	"net/http"

	"bid-ledger-api/internal/api/middleware"
	"bid-ledger-api/internal/models"
	"bid-ledger-api/internal/services"
	"bid-ledger-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// JobApplicationHandler holds dependencies for job application operations.
type JobApplicationHandler struct {
	ledger         services.ApplicationLedger
	shortlistLimit int
}

// NewJobApplicationHandler creates a new JobApplicationHandler. shortlistLimit
// is only reported back in job summaries; the ledger enforces it.
func NewJobApplicationHandler(ledger services.ApplicationLedger, shortlistLimit int) *JobApplicationHandler {
	return &JobApplicationHandler{
		ledger:         ledger,
		shortlistLimit: shortlistLimit,
	}
}

// SubmitApplication godoc
//
//	@Summary		Apply for a job
//	@Description	Submits the authenticated freelancer's bid on a job. Each freelancer may apply once per job.
//	@Tags			job_applications
//	@Accept			json
//	@Produce		json
//	@Param			job_id		path		string							true	"Job ID"	Format(uuid)
//	@Param			application	body		dto.SubmitApplicationRequest	true	"Bid details"
//	@Success		201			{object}	dto.JobApplicationResponse		"Application submitted"
//	@Failure		400			{object}	map[string]interface{}			"Invalid input"
//	@Failure		401			{object}	map[string]string				"Unauthorized"
//	@Failure		409			{object}	map[string]string				"Already applied"
//	@Failure		429			{object}	map[string]string				"Rate limited or quota reached"
//	@Failure		500			{object}	map[string]string				"Internal Server Error"
//	@Router			/jobs/{job_id}/applications [post]
//	@Security		BearerAuth
func (h *JobApplicationHandler) SubmitApplication(c *gin.Context) {
	userID, ok := requireUser(c, "SubmitApplication")
	if !ok {
		return
	}
	jobID, ok := parseUUIDParam(c, "job_id", "job")
	if !ok {
		return
	}

	var req dto.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.JobID = jobID
	req.FreelancerID = userID

	app, err := h.ledger.Submit(c.Request.Context(), &req)
	if err != nil {
		respondLedgerError(c, "submit application", err)
		return
	}

	c.JSON(http.StatusCreated, MapApplicationToResponse(app))
}

// ListApplicationsByJob godoc
//
//	@Summary		List applications for a job
//	@Description	Returns every application to the job in submission order.
//	@Tags			job_applications
//	@Produce		json
//	@Param			job_id	path		string						true	"Job ID"	Format(uuid)
//	@Success		200		{array}		dto.JobApplicationResponse	"Applications in position order"
//	@Failure		400		{object}	map[string]string			"Invalid job ID"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/jobs/{job_id}/applications [get]
//	@Security		BearerAuth
func (h *JobApplicationHandler) ListApplicationsByJob(c *gin.Context) {
	jobID, ok := parseUUIDParam(c, "job_id", "job")
	if !ok {
		return
	}

	apps, err := h.ledger.ListForJob(c.Request.Context(), jobID)
	if err != nil {
		respondLedgerError(c, "retrieve applications", err)
		return
	}

	c.JSON(http.StatusOK, mapApplications(apps))
}

// GetJobSummary godoc
//
//	@Summary		Summarize applications for a job
//	@Description	Returns per-status counts, the shortlisted count and the hired application if any.
//	@Tags			job_applications
//	@Produce		json
//	@Param			job_id	path		string					true	"Job ID"	Format(uuid)
//	@Success		200		{object}	dto.JobSummaryResponse	"Summary"
//	@Failure		400		{object}	map[string]string		"Invalid job ID"
//	@Failure		401		{object}	map[string]string		"Unauthorized"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/jobs/{job_id}/applications/summary [get]
//	@Security		BearerAuth
func (h *JobApplicationHandler) GetJobSummary(c *gin.Context) {
	jobID, ok := parseUUIDParam(c, "job_id", "job")
	if !ok {
		return
	}

	summary, err := h.ledger.JobSummary(c.Request.Context(), jobID)
	if err != nil {
		respondLedgerError(c, "summarize applications", err)
		return
	}

	c.JSON(http.StatusOK, dto.JobSummaryResponse{
		JobID:            summary.JobID,
		Total:            summary.Total,
		ByStatus:         summary.ByStatus,
		ShortlistedCount: summary.ByStatus[models.ApplicationStatusShortlisted],
		ShortlistLimit:   h.shortlistLimit,
		HiredID:          summary.HiredID,
	})
}

// GetEligibility godoc
//
//	@Summary		Check whether the caller may apply
//	@Description	Reports whether the authenticated freelancer already applied to the job and how much submission quota is left.
//	@Tags			job_applications
//	@Produce		json
//	@Param			job_id	path		string					true	"Job ID"	Format(uuid)
//	@Success		200		{object}	dto.EligibilityResponse	"Eligibility"
//	@Failure		400		{object}	map[string]string		"Invalid job ID"
//	@Failure		401		{object}	map[string]string		"Unauthorized"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/jobs/{job_id}/applications/eligibility [get]
//	@Security		BearerAuth
func (h *JobApplicationHandler) GetEligibility(c *gin.Context) {
	userID, ok := requireUser(c, "GetEligibility")
	if !ok {
		return
	}
	jobID, ok := parseUUIDParam(c, "job_id", "job")
	if !ok {
		return
	}

	elig, err := h.ledger.CanSubmit(c.Request.Context(), jobID, userID)
	if err != nil {
		respondLedgerError(c, "check eligibility", err)
		return
	}

	c.JSON(http.StatusOK, dto.EligibilityResponse{
		JobID:          jobID,
		HasApplied:     elig.HasApplied,
		Eligible:       elig.Eligible,
		Reason:         elig.Reason,
		RemainingQuota: elig.RemainingQuota,
		QuotaResetsAt:  elig.QuotaResetsAt,
	})
}

// ListMyApplications godoc
//
//	@Summary		List the caller's applications
//	@Description	Returns the authenticated freelancer's applications across all jobs, most recent first.
//	@Tags			job_applications
//	@Produce		json
//	@Success		200	{array}		dto.JobApplicationResponse	"Applications"
//	@Failure		401	{object}	map[string]string			"Unauthorized"
//	@Failure		500	{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/my [get]
//	@Security		BearerAuth
func (h *JobApplicationHandler) ListMyApplications(c *gin.Context) {
	userID, ok := requireUser(c, "ListMyApplications")
	if !ok {
		return
	}

	apps, err := h.ledger.ListForFreelancer(c.Request.Context(), userID)
	if err != nil {
		respondLedgerError(c, "retrieve applications", err)
		return
	}

	c.JSON(http.StatusOK, mapApplications(apps))
}

// GetApplicationByID godoc
//
//	@Summary		Get a job application by ID
//	@Tags			job_applications
//	@Produce		json
//	@Param			id	path		string						true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.JobApplicationResponse	"Application"
//	@Failure		400	{object}	map[string]string			"Invalid ID format"
//	@Failure		401	{object}	map[string]string			"Unauthorized"
//	@Failure		404	{object}	map[string]string			"Application Not Found"
//	@Failure		500	{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/{id} [get]
//	@Security		BearerAuth
func (h *JobApplicationHandler) GetApplicationByID(c *gin.Context) {
	appID, ok := parseUUIDParam(c, "id", "application")
	if !ok {
		return
	}

	app, err := h.ledger.GetApplication(c.Request.Context(), appID)
	if err != nil {
		respondLedgerError(c, "retrieve application", err)
		return
	}

	c.JSON(http.StatusOK, MapApplicationToResponse(app))
}

// ShortlistApplication godoc
//
//	@Summary		Shortlist an application
//	@Tags			job_applications
//	@Produce		json
//	@Param			id	path		string						true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.JobApplicationResponse	"Shortlisted application"
//	@Failure		404	{object}	map[string]string			"Application Not Found"
//	@Failure		409	{object}	map[string]string			"Not shortlistable or shortlist full"
//	@Router			/applications/{id}/shortlist [patch]
//	@Security		BearerAuth
func (h *JobApplicationHandler) ShortlistApplication(c *gin.Context) {
	h.transition(c, "shortlist", h.ledger.Shortlist)
}

// HireApplication godoc
//
//	@Summary		Hire an application
//	@Description	Hires the application and rejects the job's other applications that were not shortlisted.
//	@Tags			job_applications
//	@Produce		json
//	@Param			id	path		string						true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.JobApplicationResponse	"Hired application"
//	@Failure		404	{object}	map[string]string			"Application Not Found"
//	@Failure		409	{object}	map[string]string			"Not hireable"
//	@Router			/applications/{id}/hire [patch]
//	@Security		BearerAuth
func (h *JobApplicationHandler) HireApplication(c *gin.Context) {
	h.transition(c, "hire", h.ledger.Hire)
}

// RejectApplication godoc
//
//	@Summary		Reject an application
//	@Tags			job_applications
//	@Produce		json
//	@Param			id	path		string						true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.JobApplicationResponse	"Rejected application"
//	@Failure		404	{object}	map[string]string			"Application Not Found"
//	@Failure		409	{object}	map[string]string			"Already hired"
//	@Router			/applications/{id}/reject [patch]
//	@Security		BearerAuth
func (h *JobApplicationHandler) RejectApplication(c *gin.Context) {
	h.transition(c, "reject", h.ledger.Reject)
}

func (h *JobApplicationHandler) transition(c *gin.Context, action string, apply func(context.Context, uuid.UUID) (*models.Application, error)) {
	appID, ok := parseUUIDParam(c, "id", "application")
	if !ok {
		return
	}

	app, err := apply(c.Request.Context(), appID)
	if err != nil {
		respondLedgerError(c, action+" application", err)
		return
	}

	c.JSON(http.StatusOK, MapApplicationToResponse(app))
}

func requireUser(c *gin.Context, handler string) (uuid.UUID, bool) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("%s: Error getting user ID from context: %v", handler, err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return uuid.Nil, false
	}
	return userID, true
}
