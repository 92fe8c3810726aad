package controllers

import (
	"net/http"
	"strconv"

	"wisma-backend/models"
	"wisma-backend/services"
	"wisma-backend/utils"

	"github.com/gin-gonic/gin"
)

type BuildingController struct {
	BuildingSvc *services.BuildingService
}

func NewBuildingController(svc *services.BuildingService) *BuildingController {
	return &BuildingController{BuildingSvc: svc}
}

type BuildingRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Address string `json:"address" binding:"max=255"`
}

func (bc *BuildingController) GetBuildings(c *gin.Context) {
	buildings, err := bc.BuildingSvc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, buildings)
}

func (bc *BuildingController) GetBuildingByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_id", "Building id must be a positive integer.")
		return
	}

	building, err := bc.BuildingSvc.GetByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, building)
}

func (bc *BuildingController) CreateBuilding(c *gin.Context) {
	var req BuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	building, err := bc.BuildingSvc.Create(models.Building{Name: req.Name, Address: req.Address})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, building)
}

func (bc *BuildingController) UpdateBuilding(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_id", "Building id must be a positive integer.")
		return
	}

	var req BuildingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	building := models.Building{ID: uint(id), Name: req.Name, Address: req.Address}
	updated, err := bc.BuildingSvc.Update(building)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (bc *BuildingController) DeleteBuilding(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_id", "Building id must be a positive integer.")
		return
	}

	if err := bc.BuildingSvc.Delete(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Building deleted successfully"})
}
