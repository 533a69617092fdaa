package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/greenroute/carbon-backend-go/internal/handler"
	"github.com/greenroute/carbon-backend-go/internal/middleware"
)

// SetupRouter builds the HTTP surface over the analysis engine.
func SetupRouter(analysisHandler *handler.AnalysisHandler, tripHandler *handler.TripHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Carbon Analysis API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		analysis := api.Group("/analysis")
		analysis.Use(middleware.RateLimit(30, time.Minute))
		{
			analysis.POST("/:subjectID/range", analysisHandler.AnalyzeRange)
			analysis.GET("/:subjectID/summary", analysisHandler.Summary)
			analysis.POST("/:subjectID/:date", analysisHandler.Analyze)
		}

		trips := api.Group("/trips")
		{
			trips.GET("", tripHandler.GetTrips)
			trips.GET("/:id", tripHandler.GetTripByID)
		}
	}

	return r
}
