package api

import (
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Fi1osof/hotels-booking-demo/internal/api/handler"
	"github.com/Fi1osof/hotels-booking-demo/pkg/router"
)

func RegisterRoutes(r *router.Router) {
	// More specific routes first
	r.GET("/api/v1/hotels/stats", handler.GetStatistics)
	r.POST("/api/v1/hotels/transform", handler.TransformHotels)
	r.GET("/api/v1/hotels", handler.GetHotels)

	r.POST("/api/v1/sessions", handler.CreateSession)
	r.GET("/api/v1/sessions/*/view", handler.GetSessionView)
	r.POST("/api/v1/sessions/*/actions", handler.ApplySessionAction)
	r.DELETE("/api/v1/sessions/*", handler.CloseSession)

	r.GET("/swagger/*", router.HandlerFunc(httpSwagger.WrapHandler))
}
