package controllers

import (
	"net/http"
	"strconv"

	"wisma-backend/models"
	"wisma-backend/services"
	"wisma-backend/utils"

	"github.com/gin-gonic/gin"
)

type InstitutionController struct {
	InstitutionSvc *services.InstitutionService
}

func NewInstitutionController(svc *services.InstitutionService) *InstitutionController {
	return &InstitutionController{InstitutionSvc: svc}
}

type InstitutionRequest struct {
	Name          string `json:"name" binding:"required,max=100"`
	RatePerPerson int64  `json:"ratePerPerson" binding:"required,gt=0"`
}

func (ic *InstitutionController) GetInstitutions(c *gin.Context) {
	list, err := ic.InstitutionSvc.GetAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ic *InstitutionController) GetInstitutionByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_id", "Institution id must be a positive integer.")
		return
	}

	inst, err := ic.InstitutionSvc.GetByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, inst)
}

func (ic *InstitutionController) CreateInstitution(c *gin.Context) {
	var req InstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	inst, err := ic.InstitutionSvc.Create(models.Institution{
		Name:          req.Name,
		RatePerPerson: req.RatePerPerson,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, inst)
}

func (ic *InstitutionController) UpdateInstitution(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_id", "Institution id must be a positive integer.")
		return
	}

	var req InstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_payload", err.Error())
		return
	}

	inst := models.Institution{ID: uint(id), Name: req.Name, RatePerPerson: req.RatePerPerson}
	updated, err := ic.InstitutionSvc.Update(inst)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (ic *InstitutionController) DeleteInstitution(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid_id", "Institution id must be a positive integer.")
		return
	}

	if err := ic.InstitutionSvc.Delete(uint(id)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Institution deleted successfully"})
}
