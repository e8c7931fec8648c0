package main

import (
	"lostfound/app"
	"lostfound/config"
	"lostfound/routes"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	port := application.Config.Port
	application.Log.Info("listening", "port", port)
	if err := r.Run(":" + port); err != nil {
		application.Log.Fatal("server stopped", "error", err)
	}
}
