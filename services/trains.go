package services

import (
	"fmt"
	"math"
	"strings"
)

// ─── Types ────────────────────────────────────────────────────────────────────

type ClassFares struct {
	AC      int `json:"ac"`
	Sleeper int `json:"sleeper"`
	General int `json:"general"`
}

type ClassSeats struct {
	AC      int `json:"ac"`
	Sleeper int `json:"sleeper"`
	General int `json:"general"`
}

type Train struct {
	Number       string     `json:"number"`
	Name         string     `json:"name"`
	Departure    string     `json:"departure"` // HH:MM at origin
	Arrival      string     `json:"arrival"`
	Duration     string     `json:"duration"`
	Fares        ClassFares `json:"fares"`
	Availability ClassSeats `json:"availability"`
	AIScore      int        `json:"ai_score"`
	MatchScore   int        `json:"match_score"`
}

// Fare multipliers per class, aligned with the price engine's class impacts.
const (
	acFareMultiplier      = 1.30
	sleeperFareMultiplier = 1.15
)

// ─── Catalog (demo data, no live inventory) ───────────────────────────────────

type trainInfo struct {
	number    string
	name      string
	departure string
	arrival   string
	duration  string
	baseFare  int // General-class fare; AC and Sleeper derive from it
	seats     ClassSeats
	route     []string // stations in travel order, used by tracking
}

var trainCatalog = []trainInfo{
	{
		number: "RJD-101", name: "Rajdhani Express",
		departure: "06:00", arrival: "18:00", duration: "12h 00m",
		baseFare: 2100,
		seats:    ClassSeats{AC: 12, Sleeper: 18, General: 15},
		route:    []string{"New Delhi", "Agra Cantt", "Jhansi", "Bhopal", "Nagpur", "Mumbai Central"},
	},
	{
		number: "SHT-202", name: "Shatabdi Express",
		departure: "08:30", arrival: "16:30", duration: "8h 00m",
		baseFare: 1800,
		seats:    ClassSeats{AC: 10, Sleeper: 14, General: 8},
		route:    []string{"New Delhi", "Ghaziabad", "Aligarh", "Kanpur Central", "Lucknow"},
	},
	{
		number: "DRT-303", name: "Duronto Express",
		departure: "22:00", arrival: "08:00", duration: "10h 00m",
		baseFare: 1950,
		seats:    ClassSeats{AC: 8, Sleeper: 12, General: 8},
		route:    []string{"Mumbai Central", "Surat", "Vadodara", "Ratlam", "Kota", "New Delhi"},
	},
}

// ─── Search ───────────────────────────────────────────────────────────────────

// SearchTrains returns the demo catalog with fares derived from the General
// base fare and a match score reflecting the requested class. Every route
// yields the same trains; there is no real inventory behind this.
func SearchTrains(from, to string, class TravelClass) []Train {
	trains := make([]Train, 0, len(trainCatalog))
	for _, info := range trainCatalog {
		trains = append(trains, Train{
			Number:       info.number,
			Name:         info.name,
			Departure:    info.departure,
			Arrival:      info.arrival,
			Duration:     info.duration,
			Fares:        faresFor(info.baseFare),
			Availability: info.seats,
			MatchScore:   matchScore(info.seats, class),
		})
	}
	return trains
}

func faresFor(base int) ClassFares {
	return ClassFares{
		AC:      int(math.Round(float64(base) * acFareMultiplier)),
		Sleeper: int(math.Round(float64(base) * sleeperFareMultiplier)),
		General: base,
	}
}

// FareFor returns the fare for one seat in the given class; an unknown class
// falls back to the General fare.
func (f ClassFares) FareFor(class TravelClass) int {
	switch class {
	case ClassAC:
		return f.AC
	case ClassSleeper:
		return f.Sleeper
	default:
		return f.General
	}
}

func (s ClassSeats) SeatsFor(class TravelClass) int {
	switch class {
	case ClassAC:
		return s.AC
	case ClassSleeper:
		return s.Sleeper
	default:
		return s.General
	}
}

func matchScore(seats ClassSeats, class TravelClass) int {
	if class == "" {
		return 75
	}
	if seats.SeatsFor(class) > 0 {
		return 90
	}
	return 60
}

// FindTrain looks a train up by number, case-insensitively.
func FindTrain(number string) (Train, bool) {
	info, ok := findTrainInfo(number)
	if !ok {
		return Train{}, false
	}
	return Train{
		Number:       info.number,
		Name:         info.name,
		Departure:    info.departure,
		Arrival:      info.arrival,
		Duration:     info.duration,
		Fares:        faresFor(info.baseFare),
		Availability: info.seats,
	}, true
}

func findTrainInfo(number string) (trainInfo, bool) {
	for _, info := range trainCatalog {
		if strings.EqualFold(info.number, number) {
			return info, true
		}
	}
	return trainInfo{}, false
}

// ─── Station suggestions ──────────────────────────────────────────────────────

// SuggestStations mirrors the home page's typeahead: once the input is longer
// than two characters it offers the usual station name variants.
func SuggestStations(q string) []string {
	q = strings.TrimSpace(q)
	if len(q) <= 2 {
		return nil
	}
	return []string{
		fmt.Sprintf("%s Central", q),
		fmt.Sprintf("%s Junction", q),
		fmt.Sprintf("%s Railway Station", q),
	}
}
