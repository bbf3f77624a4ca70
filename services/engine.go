package services

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"
)

// ─── Types ────────────────────────────────────────────────────────────────────

type TravelClass string

const (
	ClassAC      TravelClass = "AC"
	ClassSleeper TravelClass = "Sleeper"
	ClassGeneral TravelClass = "General"
)

type Preferences struct {
	Class          TravelClass `json:"class,omitempty"`
	MaxPrice       float64     `json:"max_price,omitempty"`
	TimePreference string      `json:"time_preference,omitempty"` // morning | afternoon | night
}

// Query carries whatever the caller has harvested from the search form.
// Every field is optional; missing data just narrows the output.
type Query struct {
	From        string       `json:"from,omitempty"`
	To          string       `json:"to,omitempty"`
	Date        string       `json:"date,omitempty"` // YYYY-MM-DD
	Preferences *Preferences `json:"preferences,omitempty"`
}

type Recommendation struct {
	Type        string `json:"type"` // popular | trending | holiday
	Title       string `json:"title"`
	Description string `json:"description"`
	From        string `json:"from"`
	To          string `json:"to"`
	Date        string `json:"date"`
	Price       string `json:"price"`
	Confidence  int    `json:"confidence"`
}

type PriceFactor struct {
	Name   string  `json:"name"`
	Impact float64 `json:"impact"`
}

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type PricePrediction struct {
	EstimatedPrice int           `json:"estimated_price"`
	Confidence     int           `json:"confidence"`
	PriceRange     PriceRange    `json:"price_range"`
	Factors        []PriceFactor `json:"factors"`
}

// ─── Engine ───────────────────────────────────────────────────────────────────

const basePrice = 1000

type DestinationScore struct {
	Name  string `json:"name"`
	Score int    `json:"score"` // 0–100 popularity weight
}

type EngineConfig struct {
	Destinations   []DestinationScore
	SeasonalEvents map[time.Month][]string
}

// DefaultEngineConfig returns the seeded reference tables the demo ships with.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Destinations: []DestinationScore{
			{"Mumbai", 95},
			{"Delhi", 90},
			{"Bangalore", 85},
			{"Kolkata", 80},
			{"Chennai", 75},
		},
		SeasonalEvents: map[time.Month][]string{
			time.October:  {"Diwali", "Durga Puja"},
			time.December: {"Christmas", "New Year"},
			time.March:    {"Holi"},
		},
	}
}

// Engine produces route recommendations and fare estimates from a pair of
// static reference tables. It holds no mutable state after construction, so a
// single instance is safe to share across handlers.
type Engine struct {
	destinations []DestinationScore
	events       map[time.Month][]string
	now          func() time.Time
	intn         func(n int) int
}

type EngineOption func(*Engine)

// WithClock overrides the wall clock used for seasonal and lead-time math.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// WithRandomSource overrides the destination picker, e.g. with a fixed value
// under test.
func WithRandomSource(intn func(n int) int) EngineOption {
	return func(e *Engine) { e.intn = intn }
}

func NewEngine(cfg EngineConfig, opts ...EngineOption) *Engine {
	e := &Engine{
		destinations: append([]DestinationScore(nil), cfg.Destinations...),
		events:       make(map[time.Month][]string, len(cfg.SeasonalEvents)),
		now:          time.Now,
		intn:         rand.Intn,
	}
	for m, names := range cfg.SeasonalEvents {
		e.events[m] = append([]string(nil), names...)
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PopularityOf reports the popularity score for a destination, or 0 when the
// destination is not in the reference table.
func (e *Engine) PopularityOf(destination string) int {
	for _, d := range e.destinations {
		if d.Name == destination {
			return d.Score
		}
	}
	return 0
}

// ─── Recommendations ──────────────────────────────────────────────────────────

// Recommendations returns popular routes, current-month festival specials and
// an optional class-based pick, in that order. Absent input never fails the
// call; it only shrinks the list.
func (e *Engine) Recommendations(q Query) []Recommendation {
	now := e.now()
	date := formatDate(now)

	from := q.From
	if from == "" {
		from = "Your Location"
	}

	recs := make([]Recommendation, 0, 5)

	// Top destinations by popularity; table order breaks ties.
	top := append([]DestinationScore(nil), e.destinations...)
	sort.SliceStable(top, func(i, j int) bool { return top[i].Score > top[j].Score })
	if len(top) > 3 {
		top = top[:3]
	}
	for _, d := range top {
		recs = append(recs, Recommendation{
			Type:        "popular",
			Title:       fmt.Sprintf("Popular Route to %s", d.Name),
			Description: "High demand route with excellent connectivity",
			From:        from,
			To:          d.Name,
			Date:        date,
			Price:       formatPrice(d.Score),
			Confidence:  d.Score,
		})
	}

	// Festival specials for the current month.
	for _, event := range e.events[now.Month()] {
		recs = append(recs, Recommendation{
			Type:        "holiday",
			Title:       fmt.Sprintf("%s Special", event),
			Description: fmt.Sprintf("Special trains for %s celebration", event),
			From:        from,
			To:          e.randomDestination(),
			Date:        date,
			Price:       formatPrice(85),
			Confidence:  85,
		})
	}

	// Personalized pick when the caller stated a class preference.
	if q.Preferences != nil && q.Preferences.Class != "" {
		recs = append(recs, Recommendation{
			Type:        "trending",
			Title:       "Personalized Route",
			Description: fmt.Sprintf("Based on your %s class preference", q.Preferences.Class),
			From:        from,
			To:          e.randomDestination(),
			Date:        date,
			Price:       formatPrice(90),
			Confidence:  90,
		})
	}

	return recs
}

// ─── Price prediction ─────────────────────────────────────────────────────────

// PredictPrice estimates a fare from a fixed base price plus additive
// percentage impacts for season, class and booking lead time. Deterministic
// for a fixed clock; there is no random component.
func (e *Engine) PredictPrice(q Query) PricePrediction {
	now := e.now()

	factors := make([]PriceFactor, 0, 3)
	total := 0.0

	seasonal := seasonalImpact(now.Month())
	factors = append(factors, PriceFactor{Name: "Seasonal Demand", Impact: seasonal})
	total += seasonal

	if q.Preferences != nil && q.Preferences.Class != "" {
		class := classImpact(q.Preferences.Class)
		factors = append(factors, PriceFactor{Name: "Class Selection", Impact: class})
		total += class
	}

	timing := timingImpact(q.Date, now)
	factors = append(factors, PriceFactor{Name: "Booking Timing", Impact: timing})
	total += timing

	estimated := basePrice * (1 + total/100)

	return PricePrediction{
		EstimatedPrice: int(math.Round(estimated)),
		Confidence:     confidence(factors),
		PriceRange: PriceRange{
			Min: int(math.Round(estimated * 0.9)),
			Max: int(math.Round(estimated * 1.1)),
		},
		Factors: factors,
	}
}

// seasonalImpact buckets the current month into festival season (Oct–Jan),
// shoulder season (Feb–Mar, Aug–Sep) and low season (Apr–Jul).
func seasonalImpact(m time.Month) float64 {
	switch {
	case m >= time.October || m == time.January:
		return 25
	case m == time.February, m == time.March, m == time.August, m == time.September:
		return 15
	default:
		return 5
	}
}

func classImpact(class TravelClass) float64 {
	switch class {
	case ClassAC:
		return 30
	case ClassSleeper:
		return 15
	default:
		return 0
	}
}

// timingImpact adds a last-minute premium based on days until travel. An
// absent or unparseable date contributes nothing.
func timingImpact(travelDate string, now time.Time) float64 {
	if travelDate == "" {
		return 0
	}
	d, err := time.Parse("2006-01-02", travelDate)
	if err != nil {
		return 0
	}

	daysUntilTravel := int(d.Sub(now).Hours() / 24)
	if daysUntilTravel < 0 {
		daysUntilTravel = 0
	}

	if daysUntilTravel < 7 {
		return 20 // last-minute premium
	}
	if daysUntilTravel < 30 {
		return 10 // standard booking window
	}
	return 0 // advance booking
}

// confidence shrinks as the average absolute impact grows, clamped to [70, 95].
func confidence(factors []PriceFactor) int {
	total := 0.0
	for _, f := range factors {
		total += math.Abs(f.Impact)
	}
	c := 100 - total/float64(len(factors))
	if c > 95 {
		c = 95
	}
	if c < 70 {
		c = 70
	}
	return int(math.Round(c))
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func (e *Engine) randomDestination() string {
	if len(e.destinations) == 0 {
		return ""
	}
	return e.destinations[e.intn(len(e.destinations))].Name
}

func formatPrice(score int) string {
	return fmt.Sprintf("₹%d", basePrice+score*10)
}

func formatDate(t time.Time) string {
	return t.Format("2 January 2006")
}
