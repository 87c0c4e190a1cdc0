package routes

import (
	"bid-ledger-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterJobApplicationRoutes registers all routes related to job applications.
// submitLimiter runs after authentication on the submit route only.
func RegisterJobApplicationRoutes(
	rg *gin.RouterGroup,
	jobAppHandler handlers.JobApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
	submitLimiter gin.HandlerFunc,
) {
	// Review dashboard and submission, scoped to one job
	jobsGroup := rg.Group("/jobs/:job_id/applications")
	jobsGroup.Use(authMiddleware)
	{
		jobsGroup.POST("", submitLimiter, jobAppHandler.SubmitApplication)
		jobsGroup.GET("", jobAppHandler.ListApplicationsByJob)
		jobsGroup.GET("/summary", jobAppHandler.GetJobSummary)
		jobsGroup.GET("/eligibility", jobAppHandler.GetEligibility)
	}

	appsGroup := rg.Group("/applications")
	appsGroup.Use(authMiddleware)
	{
		appsGroup.GET("/my", jobAppHandler.ListMyApplications)
		appsGroup.GET("/:id", jobAppHandler.GetApplicationByID)
		appsGroup.PATCH("/:id/shortlist", jobAppHandler.ShortlistApplication)
		appsGroup.PATCH("/:id/hire", jobAppHandler.HireApplication)
		appsGroup.PATCH("/:id/reject", jobAppHandler.RejectApplication)
	}
}
