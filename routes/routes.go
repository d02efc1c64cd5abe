package routes

import (
	"github.com/gin-gonic/gin"

	"equipment_portal/app"
	"equipment_portal/controllers"
	"equipment_portal/db"
	"equipment_portal/models"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	repo := db.NewRepo(a.DB)
	authCtl := controllers.NewAuthController(repo, a.Sessions(), a.Log)
	equipCtl := controllers.NewEquipmentController(repo, a.Log)
	reqCtl := controllers.NewRequestController(repo, a.Log)

	authMW := app.AuthRequired(a.Sessions())
	staffMW := app.RoleRequired(models.RoleStaff, models.RoleAdmin)
	adminMW := app.RoleRequired(models.RoleAdmin)

	// ------------------------------
	// Auth
	// ------------------------------
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", authCtl.Signup)
		auth.POST("/login", authCtl.Login)
		auth.GET("/me", authMW, authCtl.Me)
		auth.POST("/logout", authMW, authCtl.Logout)
	}

	// ------------------------------
	// Equipment (browse is public, CRUD is admin)
	// ------------------------------
	equipment := r.Group("/api/equipment")
	{
		equipment.GET("", equipCtl.List)

		equipment.POST("", authMW, adminMW, equipCtl.Create)
		equipment.PUT("/:id", authMW, adminMW, equipCtl.Update)
		equipment.DELETE("/:id", authMW, adminMW, equipCtl.Delete)
	}

	// ------------------------------
	// Borrow requests
	// ------------------------------
	requests := r.Group("/api/requests", authMW)
	{
		requests.POST("", reqCtl.Create)
		requests.GET("", reqCtl.List)

		requests.PUT("/:id/approve", staffMW, reqCtl.Approve)
		requests.PUT("/:id/reject", staffMW, reqCtl.Reject)
		// return is allowed for the requester too; checked in the core
		requests.PUT("/:id/return", reqCtl.Return)
	}
}
