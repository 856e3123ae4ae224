// Package planner builds day-by-day itineraries with a budget breakdown.
package planner

import (
	"errors"
	"math"
	"strings"
)

// MaxDays bounds the length of a plan
const MaxDays = 30

// activitiesPerDay is how many activities a day starts with before clipping
const activitiesPerDay = 3

// fallbackDestination is used for destinations without an activity list
const fallbackDestination = "kerala"

var (
	ErrInvalidDays   = errors.New("days must be between 1 and 30")
	ErrInvalidBudget = errors.New("daily budget must not be negative")
)

// Activity is one thing to do on a day, with its estimated cost in rupees
type Activity struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Cost        int    `json:"cost" yaml:"cost"`
}

var activities = map[string][]Activity{
	"kerala": {
		{"Backwater Cruise", "Relaxing boat ride through serene backwaters", 800},
		{"Tea Plantation Visit", "Explore Munnar tea estates", 300},
		{"Local Food Tour", "Try authentic Kerala cuisine", 400},
		{"Cultural Performance", "Watch traditional Kathakali dance", 200},
	},
	"goa": {
		{"Beach Time", "Relax at beautiful beaches", 100},
		{"Water Sports", "Try parasailing or jet skiing", 1000},
		{"Seafood Dinner", "Fresh seafood at beach shack", 600},
		{"Night Market", "Explore local markets and shops", 200},
	},
	"rajasthan": {
		{"Palace Visit", "Explore royal palaces and forts", 500},
		{"Desert Safari", "Camel ride in the Thar desert", 700},
		{"Cultural Dance", "Watch folk dance performances", 300},
		{"Local Bazaar", "Shop for handicrafts and textiles", 400},
	},
}

// Request describes the trip to plan
type Request struct {
	Destination string `json:"destination" form:"destination" binding:"required"`
	Days        int    `json:"days" form:"days" binding:"required"`
	DailyBudget int    `json:"dailyBudget" form:"dailyBudget"`
	TravelType  string `json:"travelType,omitempty" form:"travelType"`
	Interests   string `json:"interests,omitempty" form:"interests"`
}

// Day lists the activities of one day of the trip
type Day struct {
	Number     int        `json:"day" yaml:"day"`
	Activities []Activity `json:"activities" yaml:"activities"`
}

// Budget splits the daily budget 40/30/20/10 across stay, food, activities
// and transport
type Budget struct {
	Daily      int `json:"daily" yaml:"daily"`
	Stay       int `json:"stay" yaml:"stay"`
	Food       int `json:"food" yaml:"food"`
	Activities int `json:"activities" yaml:"activities"`
	Transport  int `json:"transport" yaml:"transport"`
	Total      int `json:"total" yaml:"total"`
}

// Itinerary is a planned trip
type Itinerary struct {
	Destination string `json:"destination" yaml:"destination"`
	Days        []Day  `json:"days" yaml:"days"`
	Budget      Budget `json:"budget" yaml:"budget"`
}

// DestinationKey normalizes a destination name to its lookup key, so
// "Himachal Pradesh" becomes "himachalpradesh"
func DestinationKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}

// Plan builds the itinerary for req
func Plan(req Request) (Itinerary, error) {
	if req.Days < 1 || req.Days > MaxDays {
		return Itinerary{}, ErrInvalidDays
	}
	if req.DailyBudget < 0 {
		return Itinerary{}, ErrInvalidBudget
	}

	key := DestinationKey(req.Destination)
	list, ok := activities[key]
	if !ok {
		list = activities[fallbackDestination]
	}

	it := Itinerary{
		Destination: key,
		Days:        make([]Day, 0, req.Days),
		Budget:      SplitBudget(req.DailyBudget, req.Days),
	}
	for d := 1; d <= req.Days; d++ {
		it.Days = append(it.Days, Day{Number: d, Activities: activitiesForDay(list, d)})
	}
	return it, nil
}

// activitiesForDay rotates through list, clipping at its end
func activitiesForDay(list []Activity, day int) []Activity {
	start := (day - 1) % len(list)
	end := start + activitiesPerDay
	if end > len(list) {
		end = len(list)
	}
	out := make([]Activity, end-start)
	copy(out, list[start:end])
	return out
}

// SplitBudget breaks daily down by category and totals it over days
func SplitBudget(daily, days int) Budget {
	share := func(pct float64) int {
		return int(math.Round(float64(daily) * pct))
	}
	return Budget{
		Daily:      daily,
		Stay:       share(0.4),
		Food:       share(0.3),
		Activities: share(0.2),
		Transport:  share(0.1),
		Total:      daily * days,
	}
}
