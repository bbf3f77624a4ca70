package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Kavitha0809/Redesign-IRCTC/database"
	"github.com/Kavitha0809/Redesign-IRCTC/services"

	"github.com/gin-gonic/gin"
)

// TrackHandler serves GET /api/track/:number with the synthesized live status
// for the tracking page.
func TrackHandler(c *gin.Context) {
	status, err := services.TrackTrain(c.Param("number"), time.Now())
	if errors.Is(err, services.ErrTrainNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Train not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch train status"})
		return
	}

	c.JSON(http.StatusOK, status)
}

// AnalyticsHandler serves GET /api/analytics: the most searched routes,
// aggregated from the search log.
func AnalyticsHandler(c *gin.Context) {
	if database.DB == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Database not initialized"})
		return
	}

	routes, err := database.PopularRoutes(5)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load analytics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"popular_routes": routes})
}

// HealthHandler reports service and database status.
func HealthHandler(c *gin.Context) {
	db := database.DB
	dbStatus := "ok"
	if db == nil {
		dbStatus = "not initialized"
	} else if err := db.Ping(); err != nil {
		dbStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"service":  "Redesign-IRCTC API",
		"database": dbStatus,
	})
}
