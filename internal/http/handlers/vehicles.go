package handlers

import (
	"database/sql"
	"io"
	"net/http"
	"strconv"
	"strings"

	"ridebook/internal/domain/models"
	"ridebook/internal/repositories"
	"ridebook/internal/utils"

	"github.com/gin-gonic/gin"
)

type vehiclePayload struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	VehicleType string          `json:"vehicle_type"`
	Capacity    utils.FlexInt   `json:"capacity"`
	PerKmRate   utils.FlexFloat `json:"per_km_rate"`
	BaseRate    utils.FlexFloat `json:"base_rate"`
	ImageURL    string          `json:"image_url"`
	Available   *bool           `json:"available"`
}

// GetVehicles is the public fleet list; only available vehicles.
// GET /get-vehicles
func GetVehicles(c *gin.Context) {
	list, err := repositories.VehicleRepository{}.List(true)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load vehicles", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": list})
}

// GetAllVehicles is the admin fleet list, availability regardless.
// GET /api/admin/vehicles
func GetAllVehicles(c *gin.Context) {
	list, err := repositories.VehicleRepository{}.List(false)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load vehicles", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicles": list})
}

// CreateVehicle adds a fleet entry; name is the only required field.
// POST /create-vehicle
func CreateVehicle(c *gin.Context) {
	var payload vehiclePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	name := strings.TrimSpace(payload.Name)
	if name == "" {
		RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}

	available := true
	if payload.Available != nil {
		available = *payload.Available
	}

	v := models.Vehicle{
		Name:        name,
		VehicleType: strings.TrimSpace(payload.VehicleType),
		Capacity:    payload.Capacity.Value,
		PerKmRate:   payload.PerKmRate.Value,
		BaseRate:    payload.BaseRate.Value,
		ImageURL:    strings.TrimSpace(payload.ImageURL),
		Available:   available,
	}

	created, err := repositories.VehicleRepository{}.Insert(v)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vehicle": created})
}

func vehicleIDFrom(c *gin.Context, rawJSON []byte) (int64, bool) {
	if idStr := strings.TrimSpace(c.Param("id")); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			RespondError(c, http.StatusBadRequest, "invalid id", nil)
			return 0, false
		}
		return id, true
	}

	// flat paths carry the id in the body
	var probe struct {
		ID utils.FlexInt `json:"id"`
	}
	if len(rawJSON) > 0 {
		_ = jsonUnmarshal(rawJSON, &probe)
	}
	if probe.ID.Value == nil || *probe.ID.Value <= 0 {
		RespondError(c, http.StatusBadRequest, "id is required", nil)
		return 0, false
	}
	return int64(*probe.ID.Value), true
}

// UpdateVehicle applies a sparse patch: only supplied keys change, and
// supplied empty-string numerics become NULL.
// POST|PUT /update-vehicle   |   PUT /api/admin/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	rawJSON, err := io.ReadAll(c.Request.Body)
	if err != nil || len(rawJSON) == 0 {
		RespondError(c, http.StatusBadRequest, "empty body", err)
		return
	}

	id, ok := vehicleIDFrom(c, rawJSON)
	if !ok {
		return
	}

	updated, err := repositories.VehicleRepository{}.UpdatePartial(id, rawJSON, utils.NowUTC())
	if err != nil {
		if err == sql.ErrNoRows {
			RespondError(c, http.StatusNotFound, "vehicle not found", nil)
			return
		}
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vehicle": updated})
}

// DeleteVehicle removes a fleet entry.
// POST /delete-vehicle   |   DELETE /api/admin/vehicles/:id
func DeleteVehicle(c *gin.Context) {
	var id int64
	if idStr := strings.TrimSpace(c.Param("id")); idStr != "" {
		parsed, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || parsed <= 0 {
			RespondError(c, http.StatusBadRequest, "invalid id", nil)
			return
		}
		id = parsed
	} else {
		var req struct {
			ID utils.FlexInt `json:"id"`
		}
		if !BindJSONOrError(c, &req) {
			return
		}
		if req.ID.Value == nil || *req.ID.Value <= 0 {
			RespondError(c, http.StatusBadRequest, "id is required", nil)
			return
		}
		id = int64(*req.ID.Value)
	}

	if err := (repositories.VehicleRepository{}).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "vehicle deleted", "id": id})
}
