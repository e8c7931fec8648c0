package routes

import (
	"time"

	"lostfound/app"
	"lostfound/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	authCtl := controllers.NewAuthController(s)
	itemCtl := controllers.NewItemController(s)
	reportCtl := controllers.NewLossReportController(s)
	claimCtl := controllers.NewClaimController(s)
	locCtl := controllers.NewLocationController(s)

	authMW := app.AuthRequired(s.Repo, a.Config.JWTSecret)
	seenMW := app.TouchLastSeen(s.Repo, a.RDB, 5*time.Minute)

	// ------------------------------
	// Auth
	// ------------------------------
	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
	}
	authed := auth.Group("", authMW, seenMW)
	{
		authed.GET("/profile", authCtl.GetProfile)
		authed.PUT("/profile", authCtl.UpdateProfile)
	}

	// ------------------------------
	// Items (browse is public, everything else scoped to the caller)
	// ------------------------------
	r.GET("/items", itemCtl.ListItems)
	r.GET("/items/:id", itemCtl.GetItem)

	items := r.Group("/items", authMW, seenMW)
	{
		items.POST("", itemCtl.CreateItem)
		items.GET("/me", itemCtl.ListMyItems)
		items.PATCH("/:id", itemCtl.UpdateItemState)
		items.DELETE("/:id", itemCtl.DeleteItem)
	}

	// ------------------------------
	// Loss reports
	// ------------------------------
	reports := r.Group("/loss-reports", authMW, seenMW)
	{
		reports.POST("", reportCtl.CreateLossReport)
		reports.GET("", reportCtl.ListMyLossReports)
	}

	// ------------------------------
	// Claims
	// ------------------------------
	claims := r.Group("/claims", authMW, seenMW)
	{
		claims.POST("", claimCtl.CreateClaim)
		claims.GET("", claimCtl.ListMyClaims) // ?type=filed|received
		claims.PATCH("/:id/status", claimCtl.UpdateClaimStatus)
	}

	// ------------------------------
	// Location autocomplete
	// ------------------------------
	locations := r.Group("/locations", authMW)
	{
		locations.GET("/search", locCtl.SearchLocations)
	}
}
