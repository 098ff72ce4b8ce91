package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/MounTainVSCO/oceans-api/internal/infrastructure"
)

func RegisterRoutes(e *echo.Echo, authHandler *AuthHandler, siteHandler *SiteHandler, jwtService *infrastructure.JWTService) {
	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.POST("/password", authHandler.ChangePassword, RequireAuth(jwtService))

	me := api.Group("/me", RequireAuth(jwtService))
	me.GET("", authHandler.Me)
	me.PATCH("", authHandler.UpdateProfile)

	sites := api.Group("/sites")
	sites.POST("", siteHandler.Create, RequireAuth(jwtService))
	sites.GET("", siteHandler.List, RequireAuth(jwtService))
	sites.GET("/:id", siteHandler.Get, OptionalAuth(jwtService))
	sites.PATCH("/:id", siteHandler.Update, RequireAuth(jwtService))
	sites.DELETE("/:id", siteHandler.Delete, RequireAuth(jwtService))

	api.GET("/users/:userId/sites/:slug", siteHandler.GetBySlug, OptionalAuth(jwtService))
}
