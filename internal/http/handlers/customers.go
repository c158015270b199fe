package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"ridebook/internal/repositories"
	"ridebook/internal/utils"

	"github.com/gin-gonic/gin"
)

type updateProfileRequest struct {
	CustomerID utils.FlexInt `json:"customer_id"`
	Name       string        `json:"name"`
}

// UpdateProfile applies a customer's name change.
// POST /update-profile   |   PUT /api/customers/:id
func UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var id int64
	if idStr := strings.TrimSpace(c.Param("id")); idStr != "" {
		parsed, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || parsed <= 0 {
			RespondError(c, http.StatusBadRequest, "invalid id", nil)
			return
		}
		id = parsed
	} else if req.CustomerID.Value != nil {
		id = int64(*req.CustomerID.Value)
	}

	if err := (repositories.CustomerRepository{}).UpdateName(id, req.Name); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "profile updated", "customer_id": id, "name": strings.TrimSpace(req.Name)})
}
