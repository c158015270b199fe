package handlers

import (
	"database/sql"
	"io"
	"net/http"

	"ridebook/internal/repositories"
	"ridebook/internal/utils"

	"github.com/gin-gonic/gin"
)

// GetSettings returns the site contact/social record.
// GET /get-settings
func GetSettings(c *gin.Context) {
	s, err := repositories.SettingsRepository{}.GetFirst()
	if err != nil {
		if err == sql.ErrNoRows {
			RespondError(c, http.StatusNotFound, "settings not found", nil)
			return
		}
		RespondError(c, http.StatusInternalServerError, "failed to load settings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": s})
}

// UpdateSettings applies supplied keys to the first settings row.
// POST /update-settings
func UpdateSettings(c *gin.Context) {
	rawJSON, err := io.ReadAll(c.Request.Body)
	if err != nil || len(rawJSON) == 0 {
		RespondError(c, http.StatusBadRequest, "empty body", err)
		return
	}

	s, err := repositories.SettingsRepository{}.UpdateFirst(rawJSON, utils.NowUTC())
	if err != nil {
		if err == sql.ErrNoRows {
			RespondError(c, http.StatusNotFound, "settings not found", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": s})
}
