package handlers

import "github.com/gin-gonic/gin"

// JobApplicationHandlerInterface defines the methods needed by the application routes.
type JobApplicationHandlerInterface interface {
	SubmitApplication(c *gin.Context)
	ListApplicationsByJob(c *gin.Context)
	GetJobSummary(c *gin.Context)
	GetEligibility(c *gin.Context)
	ListMyApplications(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	ShortlistApplication(c *gin.Context)
	HireApplication(c *gin.Context)
	RejectApplication(c *gin.Context)
}

// Ensure handlers implements the interface (compile-time check)
var _ JobApplicationHandlerInterface = (*JobApplicationHandler)(nil)
