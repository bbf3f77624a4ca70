package services

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) EngineOption {
	return WithClock(func() time.Time { return t })
}

func fixedPick(n int) EngineOption {
	return WithRandomSource(func(int) int { return n })
}

func newTestEngine(now time.Time, opts ...EngineOption) *Engine {
	opts = append([]EngineOption{fixedClock(now), fixedPick(0)}, opts...)
	return NewEngine(DefaultEngineConfig(), opts...)
}

// ─── Recommendations ──────────────────────────────────────────────────────────

func TestRecommendationsPopularOrdering(t *testing.T) {
	now := time.Date(2025, time.April, 10, 12, 0, 0, 0, time.UTC)
	e := newTestEngine(now)

	recs := e.Recommendations(Query{From: "Delhi"})
	require.Len(t, recs, 3) // April has no festival events, no class preference

	wantTo := []string{"Mumbai", "Delhi", "Bangalore"}
	wantConf := []int{95, 90, 85}
	for i, rec := range recs {
		assert.Equal(t, "popular", rec.Type)
		assert.Equal(t, fmt.Sprintf("Popular Route to %s", wantTo[i]), rec.Title)
		assert.Equal(t, wantTo[i], rec.To)
		assert.Equal(t, wantConf[i], rec.Confidence)
		assert.Equal(t, "Delhi", rec.From)
	}
}

func TestRecommendationsIncludeFestivalsAndClassPick(t *testing.T) {
	now := time.Date(2025, time.October, 5, 9, 0, 0, 0, time.UTC)
	e := newTestEngine(now, fixedPick(2))

	recs := e.Recommendations(Query{
		Preferences: &Preferences{Class: ClassSleeper},
	})
	// 3 popular + 2 October events + 1 trending
	require.Len(t, recs, 6)

	assert.Equal(t, "Diwali Special", recs[3].Title)
	assert.Equal(t, "holiday", recs[3].Type)
	assert.Equal(t, 85, recs[3].Confidence)
	assert.Equal(t, "Bangalore", recs[3].To) // stubbed pick, index 2

	assert.Equal(t, "Durga Puja Special", recs[4].Title)

	assert.Equal(t, "trending", recs[5].Type)
	assert.Equal(t, "Personalized Route", recs[5].Title)
	assert.Equal(t, "Based on your Sleeper class preference", recs[5].Description)
	assert.Equal(t, 90, recs[5].Confidence)
}

func TestRecommendationsDefaultOrigin(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	e := newTestEngine(now)

	recs := e.Recommendations(Query{})
	require.NotEmpty(t, recs)
	for _, rec := range recs {
		assert.Equal(t, "Your Location", rec.From)
	}
}

func TestRecommendationsInvariants(t *testing.T) {
	priceRe := regexp.MustCompile(`^₹[0-9]+$`)

	for month := time.January; month <= time.December; month++ {
		now := time.Date(2025, month, 15, 10, 0, 0, 0, time.UTC)
		e := newTestEngine(now)

		recs := e.Recommendations(Query{Preferences: &Preferences{Class: ClassAC}})
		events := len(DefaultEngineConfig().SeasonalEvents[month])

		assert.GreaterOrEqual(t, len(recs), 3, "month %s", month)
		assert.LessOrEqual(t, len(recs), 3+events+1, "month %s", month)

		for _, rec := range recs {
			assert.GreaterOrEqual(t, rec.Confidence, 0)
			assert.LessOrEqual(t, rec.Confidence, 100)
			assert.Regexp(t, priceRe, rec.Price)
			assert.Equal(t, "15 "+month.String()+" 2025", rec.Date)
		}
	}
}

func TestRecommendationsNoPreferencesNoTrending(t *testing.T) {
	now := time.Date(2025, time.December, 20, 0, 0, 0, 0, time.UTC)
	e := newTestEngine(now)

	recs := e.Recommendations(Query{To: "Chennai"})
	for _, rec := range recs {
		assert.NotEqual(t, "trending", rec.Type)
	}
}

// ─── Price prediction ─────────────────────────────────────────────────────────

func TestPredictPriceNovemberACScenario(t *testing.T) {
	now := time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC)
	e := newTestEngine(now)

	p := e.PredictPrice(Query{
		Date:        "2025-11-18", // 8 days out: within 30 but not 7
		Preferences: &Preferences{Class: ClassAC},
	})

	require.Len(t, p.Factors, 3)
	assert.Equal(t, PriceFactor{Name: "Seasonal Demand", Impact: 25}, p.Factors[0])
	assert.Equal(t, PriceFactor{Name: "Class Selection", Impact: 30}, p.Factors[1])
	assert.Equal(t, PriceFactor{Name: "Booking Timing", Impact: 10}, p.Factors[2])

	assert.Equal(t, 1650, p.EstimatedPrice)
	assert.Equal(t, PriceRange{Min: 1485, Max: 1815}, p.PriceRange)
	assert.Equal(t, 78, p.Confidence) // 100 - 65/3, clamped to [70, 95]
}

func TestPredictPriceMissingDateZeroTiming(t *testing.T) {
	now := time.Date(2025, time.November, 10, 0, 0, 0, 0, time.UTC)
	e := newTestEngine(now)

	p := e.PredictPrice(Query{})
	require.Len(t, p.Factors, 2) // no class preference, so no class factor

	var timing *PriceFactor
	for i := range p.Factors {
		if p.Factors[i].Name == "Booking Timing" {
			timing = &p.Factors[i]
		}
	}
	require.NotNil(t, timing)
	assert.Zero(t, timing.Impact)
}

func TestPredictPriceIdempotent(t *testing.T) {
	now := time.Date(2025, time.March, 3, 8, 30, 0, 0, time.UTC)
	e := newTestEngine(now)

	q := Query{Date: "2025-03-20", Preferences: &Preferences{Class: ClassSleeper}}
	first := e.PredictPrice(q)
	second := e.PredictPrice(q)
	assert.Equal(t, first, second)
}

func TestPredictPriceInvariants(t *testing.T) {
	queries := []Query{
		{},
		{Date: "2025-06-02"},
		{Preferences: &Preferences{Class: ClassAC}},
		{Date: "2026-01-01", Preferences: &Preferences{Class: ClassGeneral}},
		{Date: "not-a-date"},
	}

	for month := time.January; month <= time.December; month++ {
		now := time.Date(2025, month, 1, 0, 0, 0, 0, time.UTC)
		e := newTestEngine(now)

		for _, q := range queries {
			p := e.PredictPrice(q)
			assert.LessOrEqual(t, p.PriceRange.Min, p.EstimatedPrice)
			assert.GreaterOrEqual(t, p.PriceRange.Max, p.EstimatedPrice)
			assert.GreaterOrEqual(t, p.Confidence, 70)
			assert.LessOrEqual(t, p.Confidence, 95)
		}
	}
}

func TestPredictPriceLastMinutePremium(t *testing.T) {
	now := time.Date(2025, time.May, 10, 0, 0, 0, 0, time.UTC)
	e := newTestEngine(now)

	p := e.PredictPrice(Query{Date: "2025-05-13"})
	require.Len(t, p.Factors, 2)
	assert.Equal(t, 20.0, p.Factors[1].Impact)

	// Low season (5) + last minute (20) on the 1000 base.
	assert.Equal(t, 1250, p.EstimatedPrice)
}

func TestSeasonalImpactBands(t *testing.T) {
	want := map[time.Month]float64{
		time.January:   25,
		time.February:  15,
		time.March:     15,
		time.April:     5,
		time.May:       5,
		time.June:      5,
		time.July:      5,
		time.August:    15,
		time.September: 15,
		time.October:   25,
		time.November:  25,
		time.December:  25,
	}
	for m, impact := range want {
		assert.Equal(t, impact, seasonalImpact(m), "month %s", m)
	}
}

func TestClassImpact(t *testing.T) {
	assert.Equal(t, 30.0, classImpact(ClassAC))
	assert.Equal(t, 15.0, classImpact(ClassSleeper))
	assert.Equal(t, 0.0, classImpact(ClassGeneral))
	assert.Equal(t, 0.0, classImpact(TravelClass("FirstClass")))
}

func TestPopularityOf(t *testing.T) {
	e := newTestEngine(time.Now())
	assert.Equal(t, 95, e.PopularityOf("Mumbai"))
	assert.Equal(t, 0, e.PopularityOf("Shimla"))
}
