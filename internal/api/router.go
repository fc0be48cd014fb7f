package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	_ "matka-admin/docs"
	"matka-admin/internal/api/handler"
	"matka-admin/pkg/router"
)

// RegisterRoutes wires the admin API onto the router.
func RegisterRoutes(r *router.Router, h *handler.Handler) {
	r.GET("/api/v1/users", h.ListUsers)
	r.GET("/api/v1/users/summary", h.GetUserSummary)
	r.GET("/api/v1/dashboard", h.GetDashboard)

	r.POST("/api/v1/exports", h.CreateExport)
	r.GET("/api/v1/exports", h.ListExports)
	r.GET("/api/v1/download/*", h.DownloadReport)

	r.POST("/api/v1/filters", h.CreateFilterPreset)
	r.GET("/api/v1/filters", h.ListFilterPresets)
	r.DELETE("/api/v1/filters/*", h.DeleteFilterPreset)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
