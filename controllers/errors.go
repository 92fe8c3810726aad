package controllers

import (
	"errors"
	"log"
	"net/http"

	"wisma-backend/services"
	"wisma-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the service sentinels onto HTTP statuses. The
// sentinel text is the wire code so clients can branch without parsing
// messages. Anything unmapped is a storage fault: logged and surfaced as
// a generic 500, never retried here.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrDuplicateRoom):
		utils.JSONError(c, http.StatusConflict, services.ErrDuplicateRoom.Error(),
			"A room with this number already exists in the selected building.")
	case errors.Is(err, services.ErrInvalidRange):
		utils.JSONError(c, http.StatusBadRequest, services.ErrInvalidRange.Error(),
			"check_out must be strictly after check_in and both must be YYYY-MM-DD dates.")
	case errors.Is(err, services.ErrNoAvailability):
		utils.JSONError(c, http.StatusConflict, services.ErrNoAvailability.Error(),
			"No room is available for the requested dates.")
	case errors.Is(err, services.ErrInvalidState):
		utils.JSONError(c, http.StatusConflict, services.ErrInvalidState.Error(),
			"This action is not allowed in the record's current state.")
	case errors.Is(err, services.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, services.ErrInvalidInput.Error(),
			"One or more fields are out of range.")
	case errors.Is(err, services.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, services.ErrNotFound.Error(),
			"Record not found.")
	case errors.Is(err, services.ErrConflict):
		utils.JSONError(c, http.StatusConflict, services.ErrConflict.Error(),
			"The record is still referenced and cannot be removed.")
	default:
		log.Printf("❌ unexpected service error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal_error",
			"Something went wrong, please try again later.")
	}
}
