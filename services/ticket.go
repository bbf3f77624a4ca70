package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type Passenger struct {
	Name   string `json:"name" binding:"required"`
	Age    int    `json:"age" binding:"required,gte=1,lte=120"`
	Gender string `json:"gender" binding:"required,oneof=male female other"`
}

type TicketData struct {
	PNR         string
	TrainNumber string
	TrainName   string
	Origin      string
	Destination string
	TravelDate  string
	Departure   string
	Arrival     string
	Class       string
	Passengers  []Passenger
	TotalFare   int
	Status      string
	BookedAt    time.Time
}

// GenerateTicketPDF renders an e-ticket and returns raw bytes (no filesystem
// needed).
func GenerateTicketPDF(data TicketData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(30, 64, 175) // rail blue
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "IRCTC Redesign", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(250, 204, 21)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "Electronic Reservation Slip (Demo)", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Disclaimer ───────────────────────────────────────────
	pdf.SetFillColor(255, 248, 225)
	pdf.SetDrawColor(250, 204, 21)
	pdf.SetTextColor(130, 90, 20)
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetLineWidth(0.4)
	y := pdf.GetY()
	pdf.Rect(20, y, 170, 12, "FD")
	pdf.SetXY(23, y+2)
	pdf.MultiCell(164, 4,
		"This is a demonstration ticket. It is not valid for travel and no payment was taken.",
		"", "C", false)

	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Ln(6)

	// ── Section Helper ───────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(30, 64, 175)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	// ── Journey ──────────────────────────────────────────────
	sectionHeader("Journey Details")
	row("PNR", data.PNR)
	row("Train", fmt.Sprintf("%s (%s)", data.TrainName, data.TrainNumber))
	row("From", fmt.Sprintf("%s  dep %s", data.Origin, data.Departure))
	row("To", fmt.Sprintf("%s  arr %s", data.Destination, data.Arrival))
	row("Date of Journey", data.TravelDate)
	row("Class", data.Class)
	row("Status", data.Status)
	pdf.Ln(4)

	// ── Passengers ───────────────────────────────────────────
	sectionHeader("Passengers")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(10, 7, "#", "B", 0, "L", false, 0, "")
	pdf.CellFormat(90, 7, "Name", "B", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Age", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, "Gender", "B", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for i, p := range data.Passengers {
		pdf.CellFormat(10, 7, fmt.Sprintf("%d", i+1), "", 0, "L", false, 0, "")
		pdf.CellFormat(90, 7, p.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%d", p.Age), "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, p.Gender, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// ── Fare ─────────────────────────────────────────────────
	sectionHeader("Fare")
	row("Total Fare", fmt.Sprintf("Rs. %d", data.TotalFare))
	row("Booked At", data.BookedAt.Format("2 January 2006 15:04"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
