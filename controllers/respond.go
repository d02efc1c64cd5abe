package controllers

import (
	"equipment_portal/app"
	"equipment_portal/apperr"

	"github.com/gin-gonic/gin"
)

// fail answers with the status and message mapped from the error taxonomy.
func fail(c *gin.Context, err error) {
	c.JSON(apperr.HTTPStatus(err), app.H{"message": apperr.Message(err)})
}
