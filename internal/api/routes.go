package api

import (
	"net/http"

	"github.com/nutrigenie/nutrigenie/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"
)

// SetupRoutes wires the handlers and middleware onto the router.
func SetupRoutes(
	router *gin.Engine,
	store sessions.Store,
	planService service.PlanService,
	logger zerolog.Logger,
) {
	planHandler := NewPlanHandler(planService, logger)
	authHandler := NewAuthHandler(store, logger)

	router.Use(RequestID())
	router.Use(RequestLogger(logger))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/", planHandler.Home)
	router.GET("/new", planHandler.NewPlan)
	router.POST("/submit", planHandler.Submit)

	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)

	// The session gate guards only the dashboard.
	router.GET("/dashboard", RequireLogin(store), planHandler.Dashboard)
	router.POST("/delete-plan", planHandler.DeletePlan)
}
