package handlers

import (
	"net/http"
	"strings"

	"ridebook/internal/domain/models"
	"ridebook/internal/repositories"
	"ridebook/internal/utils"

	"github.com/gin-gonic/gin"
)

type feedbackPayload struct {
	Name    string        `json:"name"`
	Email   string        `json:"email"`
	Message string        `json:"message"`
	Rating  utils.FlexInt `json:"rating"`
}

// CreateFeedback stores one public feedback entry.
// POST /create-feedback
func CreateFeedback(c *gin.Context) {
	var payload feedbackPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	if strings.TrimSpace(payload.Name) == "" {
		RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}
	if strings.TrimSpace(payload.Message) == "" {
		RespondError(c, http.StatusBadRequest, "message is required", nil)
		return
	}

	f := models.Feedback{
		Name:    strings.TrimSpace(payload.Name),
		Email:   strings.TrimSpace(payload.Email),
		Message: strings.TrimSpace(payload.Message),
		Rating:  payload.Rating.Value,
	}

	created, err := repositories.FeedbackRepository{}.Insert(f)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to store feedback", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"feedback": created})
}

// GetFeedback lists feedback entries for the admin.
// GET /api/admin/feedback
func GetFeedback(c *gin.Context) {
	list, err := repositories.FeedbackRepository{}.ListAll()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load feedback", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feedback": list, "total": len(list)})
}
