package controllers

import (
	"net/http"
	"strconv"

	"wisma-backend/models"
	"wisma-backend/services"
	"wisma-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	RoomSvc *services.RoomService
}

func NewRoomController(svc *services.RoomService) *RoomController {
	return &RoomController{RoomSvc: svc}
}

// RoomRequest is the admin create/update payload. The roomstatus rule is
// registered in routes.SetupRouter.
type RoomRequest struct {
	BuildingID  uint   `json:"buildingId" binding:"required"`
	RoomNumber  string `json:"roomNumber" binding:"required,max=5"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	Status      string `json:"status" binding:"omitempty,roomstatus"`
	Facilities  string `json:"facilities"`
	Description string `json:"description"`
}

func (rc *RoomController) GetRooms(c *gin.Context) {
	var buildingID *uint
	if raw := c.Query("building_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid_building_id",
				"building_id must be a positive integer.")
			return
		}
		v := uint(id)
		buildingID = &v
	}

	rooms, err := rc.RoomSvc.GetAll(buildingID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_id", "Room id must be a positive integer.")
		return
	}

	room, err := rc.RoomSvc.GetByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	room, err := rc.RoomSvc.Create(models.Room{
		BuildingID:  req.BuildingID,
		RoomNumber:  req.RoomNumber,
		Capacity:    req.Capacity,
		Status:      req.Status,
		Facilities:  req.Facilities,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_id", "Room id must be a positive integer.")
		return
	}

	var req RoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	room := models.Room{
		BuildingID:  req.BuildingID,
		RoomNumber:  req.RoomNumber,
		Capacity:    req.Capacity,
		Status:      req.Status,
		Facilities:  req.Facilities,
		Description: req.Description,
	}
	room.ID = uint(id)

	updated, err := rc.RoomSvc.Update(room)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_id", "Room id must be a positive integer.")
		return
	}

	if err := rc.RoomSvc.Delete(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Room deleted successfully"})
}
