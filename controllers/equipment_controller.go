package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"equipment_portal/app"
	"equipment_portal/apperr"
	"equipment_portal/db"
	"equipment_portal/models"
)

type EquipmentController struct {
	repo *db.Repo
	log  *zap.Logger
}

func NewEquipmentController(repo *db.Repo, log *zap.Logger) *EquipmentController {
	return &EquipmentController{repo: repo, log: log}
}

// GET /api/equipment (public)
func (ec *EquipmentController) List(c *gin.Context) {
	items, err := ec.repo.ListEquipment(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

type equipmentInput struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Condition string `json:"condition"`
	Quantity  int    `json:"quantity"`
}

// POST /api/equipment (admin)
func (ec *EquipmentController) Create(c *gin.Context) {
	var in equipmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.NewValidation("invalid json body"))
		return
	}
	if in.Name == "" {
		fail(c, apperr.NewValidation("name required"))
		return
	}
	if in.Quantity < 0 {
		fail(c, apperr.NewValidation("quantity must not be negative"))
		return
	}
	condition := in.Condition
	if condition == "" {
		condition = "Good"
	}
	eq := &models.Equipment{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Category:  in.Category,
		Condition: condition,
		Quantity:  in.Quantity,
	}
	eq.SyncAvailability()
	if err := ec.repo.CreateEquipment(c.Request.Context(), eq); err != nil {
		fail(c, err)
		return
	}
	ec.log.Info("equipment created", zap.String("id", eq.ID), zap.String("name", eq.Name))
	c.JSON(http.StatusOK, eq)
}

type equipmentPatchInput struct {
	Name      *string `json:"name"`
	Category  *string `json:"category"`
	Condition *string `json:"condition"`
	Quantity  *int    `json:"quantity"`
}

// PUT /api/equipment/:id (admin)
func (ec *EquipmentController) Update(c *gin.Context) {
	var in equipmentPatchInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.NewValidation("invalid json body"))
		return
	}
	eq, err := ec.repo.UpdateEquipment(c.Request.Context(), c.Param("id"), db.EquipmentPatch{
		Name:      in.Name,
		Category:  in.Category,
		Condition: in.Condition,
		Quantity:  in.Quantity,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, eq)
}

// DELETE /api/equipment/:id (admin)
func (ec *EquipmentController) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := ec.repo.DeleteEquipment(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	ec.log.Info("equipment deleted", zap.String("id", id))
	c.JSON(http.StatusOK, app.H{"success": true})
}
