package handlers

import (
	"net/http"
	"strconv"

	"github.com/Kavitha0809/Redesign-IRCTC/services"

	"github.com/gin-gonic/gin"
)

// RecommendationsHandler serves GET /api/recommendations. Every query param is
// optional; the engine degrades gracefully on missing input.
func RecommendationsHandler(engine *services.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		q := services.Query{
			From: c.Query("from"),
			To:   c.Query("to"),
			Date: c.Query("date"),
		}

		class := c.Query("class")
		maxPrice := c.Query("max_price")
		timePref := c.Query("time")
		if class != "" || maxPrice != "" || timePref != "" {
			prefs := &services.Preferences{
				Class:          services.TravelClass(class),
				TimePreference: timePref,
			}
			if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
				prefs.MaxPrice = v
			}
			q.Preferences = prefs
		}

		c.JSON(http.StatusOK, gin.H{
			"recommendations": engine.Recommendations(q),
		})
	}
}

// PredictPriceHandler serves POST /api/predict-price.
func PredictPriceHandler(engine *services.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q services.Query
		if err := c.ShouldBindJSON(&q); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		c.JSON(http.StatusOK, engine.PredictPrice(q))
	}
}
