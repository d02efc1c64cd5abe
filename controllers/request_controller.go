package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"equipment_portal/app"
	"equipment_portal/apperr"
	"equipment_portal/db"
)

type RequestController struct {
	repo *db.Repo
	log  *zap.Logger
}

func NewRequestController(repo *db.Repo, log *zap.Logger) *RequestController {
	return &RequestController{repo: repo, log: log}
}

type requestInput struct {
	EquipmentID string `json:"equipmentId"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// POST /api/requests
func (rc *RequestController) Create(c *gin.Context) {
	var in requestInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, apperr.NewValidation("invalid json body"))
		return
	}
	if in.EquipmentID == "" || in.StartDate == "" || in.EndDate == "" {
		fail(c, apperr.NewValidation("equipmentId, startDate and endDate required"))
		return
	}
	username, _ := app.Identity(c)

	req, err := rc.repo.CreateRequest(c.Request.Context(), in.EquipmentID, username, in.StartDate, in.EndDate)
	if err != nil {
		fail(c, err)
		return
	}
	rc.log.Info("borrow request created",
		zap.String("request_id", req.ID),
		zap.String("equipment_id", req.EquipmentID),
		zap.String("requester", req.Requester))
	c.JSON(http.StatusOK, req)
}

// GET /api/requests
func (rc *RequestController) List(c *gin.Context) {
	username, role := app.Identity(c)
	rs, err := rc.repo.ListRequests(c.Request.Context(), username, role)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rs)
}

// PUT /api/requests/:id/approve (staff/admin)
func (rc *RequestController) Approve(c *gin.Context) {
	username, _ := app.Identity(c)
	req, err := rc.repo.ApproveRequest(c.Request.Context(), c.Param("id"), username)
	if err != nil {
		if apperr.IsCode(err, apperr.CodeConflict) {
			rc.log.Warn("approval refused",
				zap.String("request_id", c.Param("id")),
				zap.String("reason", apperr.Message(err)))
		}
		fail(c, err)
		return
	}
	rc.log.Info("borrow request approved",
		zap.String("request_id", req.ID),
		zap.String("approver", username))
	c.JSON(http.StatusOK, req)
}

// PUT /api/requests/:id/reject (staff/admin)
func (rc *RequestController) Reject(c *gin.Context) {
	username, _ := app.Identity(c)
	req, err := rc.repo.RejectRequest(c.Request.Context(), c.Param("id"), username)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// PUT /api/requests/:id/return (staff/admin or the requester)
func (rc *RequestController) Return(c *gin.Context) {
	username, role := app.Identity(c)
	req, err := rc.repo.ReturnRequest(c.Request.Context(), c.Param("id"), username, role)
	if err != nil {
		fail(c, err)
		return
	}
	rc.log.Info("borrow request returned",
		zap.String("request_id", req.ID),
		zap.String("by", username))
	c.JSON(http.StatusOK, req)
}
