package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/Kavitha0809/Redesign-IRCTC/database"
	"github.com/Kavitha0809/Redesign-IRCTC/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingRequest struct {
	TrainNumber string               `json:"train_number" binding:"required"`
	From        string               `json:"from" binding:"required"`
	To          string               `json:"to" binding:"required"`
	Date        string               `json:"date" binding:"required"`
	Class       string               `json:"class" binding:"required,oneof=AC Sleeper General"`
	Passengers  []services.Passenger `json:"passengers" binding:"required,min=1,dive"`
}

type BookingResponse struct {
	BookingID  string               `json:"booking_id"`
	PNR        string               `json:"pnr"`
	TrainName  string               `json:"train_name"`
	TotalFare  int                  `json:"total_fare"`
	Status     string               `json:"status"`
	TicketURL  string               `json:"ticket_url"`
	Passengers []services.Passenger `json:"passengers"`
}

// CreateBookingHandler serves POST /api/bookings: validates the request
// against the demo catalog, computes the fare and persists the booking under a
// fresh PNR.
func CreateBookingHandler(c *gin.Context) {
	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid travel date format. Use YYYY-MM-DD"})
		return
	}

	train, ok := services.FindTrain(req.TrainNumber)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Train not found"})
		return
	}

	class := services.TravelClass(req.Class)
	if train.Availability.SeatsFor(class) < len(req.Passengers) {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("Not enough %s seats available", req.Class)})
		return
	}

	totalFare := train.Fares.FareFor(class) * len(req.Passengers)

	passengersJSON, err := json.Marshal(req.Passengers)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode passenger details"})
		return
	}

	booking := &database.Booking{
		ID:             uuid.New().String(),
		PNR:            generatePNR(),
		TrainNumber:    train.Number,
		TrainName:      train.Name,
		Origin:         req.From,
		Destination:    req.To,
		TravelDate:     req.Date,
		Class:          req.Class,
		PassengersJSON: string(passengersJSON),
		TotalFare:      totalFare,
		Status:         "Confirmed",
	}

	if err := database.SaveBooking(booking); err != nil {
		log.Printf("❌ Failed to save booking: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save booking"})
		return
	}

	log.Printf("✅ Booking confirmed: PNR %s (%d passengers on %s)", booking.PNR, len(req.Passengers), train.Number)

	c.JSON(http.StatusCreated, BookingResponse{
		BookingID:  booking.ID,
		PNR:        booking.PNR,
		TrainName:  booking.TrainName,
		TotalFare:  totalFare,
		Status:     booking.Status,
		TicketURL:  "/api/bookings/" + booking.PNR + "/ticket",
		Passengers: req.Passengers,
	})
}

// GetBookingHandler serves GET /api/bookings/:pnr for the confirmation and
// PNR-status pages.
func GetBookingHandler(c *gin.Context) {
	booking, err := database.GetBookingByPNR(c.Param("pnr"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	var passengers []services.Passenger
	if err := json.Unmarshal([]byte(booking.PassengersJSON), &passengers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse stored passenger data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pnr":          booking.PNR,
		"train_number": booking.TrainNumber,
		"train_name":   booking.TrainName,
		"from":         booking.Origin,
		"to":           booking.Destination,
		"date":         booking.TravelDate,
		"class":        booking.Class,
		"passengers":   passengers,
		"total_fare":   booking.TotalFare,
		"status":       booking.Status,
		"booked_at":    booking.CreatedAt,
	})
}

// DownloadTicketHandler serves GET /api/bookings/:pnr/ticket; the PDF is
// rendered on demand from the stored booking.
func DownloadTicketHandler(c *gin.Context) {
	booking, err := database.GetBookingByPNR(c.Param("pnr"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}

	var passengers []services.Passenger
	if err := json.Unmarshal([]byte(booking.PassengersJSON), &passengers); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse stored passenger data"})
		return
	}

	train, _ := services.FindTrain(booking.TrainNumber)

	pdfBytes, err := services.GenerateTicketPDF(services.TicketData{
		PNR:         booking.PNR,
		TrainNumber: booking.TrainNumber,
		TrainName:   booking.TrainName,
		Origin:      booking.Origin,
		Destination: booking.Destination,
		TravelDate:  booking.TravelDate,
		Departure:   train.Departure,
		Arrival:     train.Arrival,
		Class:       booking.Class,
		Passengers:  passengers,
		TotalFare:   booking.TotalFare,
		Status:      booking.Status,
		BookedAt:    booking.CreatedAt,
	})
	if err != nil {
		log.Printf("❌ Ticket PDF generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate ticket"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=irctc-ticket-"+booking.PNR+".pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

// generatePNR returns a 10-digit reference; the bookings table enforces
// uniqueness.
func generatePNR() string {
	return fmt.Sprintf("%010d", rand.Int63n(1e10))
}
