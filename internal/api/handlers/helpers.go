package handlers

import (
	"net/http"
	"time"

	"bid-ledger-api/internal/models"
	"bid-ledger-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseUUIDParam reads a UUID path parameter, answering 400 when malformed.
func parseUUIDParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// MapApplicationToResponse converts a models.Application to a dto.JobApplicationResponse
func MapApplicationToResponse(app *models.Application) dto.JobApplicationResponse {
	return dto.JobApplicationResponse{
		ID:    app.ID,
		JobID: app.JobID,
		Freelancer: dto.FreelancerResponse{
			ID:           app.FreelancerID,
			Name:         app.Freelancer.Name,
			Username:     app.Freelancer.Username,
			Avatar:       app.Freelancer.Avatar,
			GradientFrom: app.Freelancer.GradientFrom,
			GradientTo:   app.Freelancer.GradientTo,
			Rating:       app.Freelancer.Rating,
		},
		ProposedPrice:      app.ProposedPrice,
		DeliveryDays:       app.DeliveryDays,
		Pitch:              app.Pitch,
		PortfolioSampleURL: app.PortfolioSampleURL,
		QuestionForCreator: app.QuestionForCreator,
		Position:           app.Position,
		Status:             app.Status,
		CreatedAt:          app.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          app.UpdatedAt.Format(time.RFC3339),
	}
}

func mapApplications(apps []models.Application) []dto.JobApplicationResponse {
	out := make([]dto.JobApplicationResponse, 0, len(apps))
	for i := range apps {
		out = append(out, MapApplicationToResponse(&apps[i]))
	}
	return out
}
