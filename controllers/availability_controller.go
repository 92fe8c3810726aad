package controllers

import (
	"net/http"
	"strconv"
	"time"

	"wisma-backend/services"
	"wisma-backend/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{AvailabilitySvc: svc}
}

// parseAvailabilityQuery reads check_in/check_out/building_id from the
// query string. Malformed or inverted dates are rejected here with the
// same code the service uses, so the guest page always gets a 4xx and a
// distinguishable code instead of a silent zero.
func parseAvailabilityQuery(c *gin.Context) (*uint, time.Time, time.Time, bool) {
	checkIn, err := time.Parse("2006-01-02", c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, services.ErrInvalidRange.Error(),
			"check_in must be a YYYY-MM-DD date.")
		return nil, time.Time{}, time.Time{}, false
	}
	checkOut, err := time.Parse("2006-01-02", c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, services.ErrInvalidRange.Error(),
			"check_out must be a YYYY-MM-DD date.")
		return nil, time.Time{}, time.Time{}, false
	}

	var buildingID *uint
	if raw := c.Query("building_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid_building_id",
				"building_id must be a positive integer.")
			return nil, time.Time{}, time.Time{}, false
		}
		v := uint(id)
		buildingID = &v
	}

	return buildingID, checkIn, checkOut, true
}

// GetAvailability is the guest-facing probe:
// GET /api/availability?check_in=...&check_out=...&building_id=...
func (ac *AvailabilityController) GetAvailability(c *gin.Context) {
	buildingID, checkIn, checkOut, ok := parseAvailabilityQuery(c)
	if !ok {
		return
	}

	count, err := ac.AvailabilitySvc.CountAvailable(buildingID, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"available_count": count})
}

// GetAvailableRooms lists the free rooms for the range, for the guest
// browse page.
func (ac *AvailabilityController) GetAvailableRooms(c *gin.Context) {
	buildingID, checkIn, checkOut, ok := parseAvailabilityQuery(c)
	if !ok {
		return
	}

	rooms, err := ac.AvailabilitySvc.AvailableRooms(buildingID, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, rooms)
}
