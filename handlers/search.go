package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Kavitha0809/Redesign-IRCTC/database"
	"github.com/Kavitha0809/Redesign-IRCTC/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SearchResponse struct {
	SearchID   string           `json:"search_id"`
	From       string           `json:"from"`
	To         string           `json:"to"`
	Date       string           `json:"date"`
	Class      string           `json:"class,omitempty"`
	Passengers int              `json:"passengers"`
	Trains     []services.Train `json:"trains"`
}

// SearchHandler serves GET /api/search. The results come from the demo
// catalog; the search itself is logged for the analytics endpoint.
func SearchHandler(engine *services.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		from := strings.TrimSpace(c.Query("from"))
		to := strings.TrimSpace(c.Query("to"))
		date := strings.TrimSpace(c.Query("date"))

		if from == "" || to == "" || date == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required search parameters"})
			return
		}

		if _, err := time.Parse("2006-01-02", date); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
			return
		}

		class := services.TravelClass(c.Query("class"))
		if class == "all" {
			class = ""
		}

		passengers, err := strconv.Atoi(c.DefaultQuery("passengers", "1"))
		if err != nil || passengers <= 0 {
			passengers = 1
		}

		trains := services.SearchTrains(from, to, class)
		for i := range trains {
			trains[i].AIScore = engine.PopularityOf(to)
		}

		searchID := uuid.New().String()
		if database.DB != nil {
			if err := database.SaveSearch(&database.Search{
				ID:          searchID,
				Origin:      from,
				Destination: to,
				TravelDate:  date,
				Class:       string(class),
				Passengers:  passengers,
			}); err != nil {
				// Search results still go out; only the analytics log is lost.
				log.Printf("⚠️  Failed to log search: %v", err)
			}
		}

		c.JSON(http.StatusOK, SearchResponse{
			SearchID:   searchID,
			From:       from,
			To:         to,
			Date:       date,
			Class:      string(class),
			Passengers: passengers,
			Trains:     trains,
		})
	}
}

// SuggestStationsHandler serves GET /api/stations/suggest for the home page
// typeahead.
func SuggestStationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"suggestions": services.SuggestStations(c.Query("q")),
	})
}
