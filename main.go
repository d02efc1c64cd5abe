package main

import (
	"os"

	"go.uber.org/zap"

	"equipment_portal/app"
	"equipment_portal/config"
	"equipment_portal/routes"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	application.Log.Info("listening", zap.String("port", port))
	_ = r.Run(":" + port)
}
