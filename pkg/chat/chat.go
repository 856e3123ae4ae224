// Package chat answers travel questions from a fixed keyword table.
package chat

import (
	"math/rand"
	"strings"
)

// BotName prefixes replies in the chat window
const BotName = "Safar AI"

type rule struct {
	match func(msg string) bool
	reply string
}

func allOf(words ...string) func(string) bool {
	return func(msg string) bool {
		for _, w := range words {
			if !strings.Contains(msg, w) {
				return false
			}
		}
		return true
	}
}

func anyOf(words ...string) func(string) bool {
	return func(msg string) bool {
		for _, w := range words {
			if strings.Contains(msg, w) {
				return true
			}
		}
		return false
	}
}

// first match wins
var rules = []rule{
	{allOf("goa", "beach"), "Goa has amazing beaches! Anjuna, Baga, and Calangute are popular. For a more relaxed vibe, try Palolem or Agonda. Best time to visit is November-February. Budget around ₹2,000-4,000 per day including stay and food."},
	{allOf("kerala", "budget"), "A Kerala trip can cost ₹1,500-3,000 per day. Backwater houseboat stays are around ₹2,000-5,000 per person. Food is affordable (₹200-400/meal). Best to visit October-March for pleasant weather."},
	{func(msg string) bool { return allOf("rajasthan", "time")(msg) || strings.Contains(msg, "weather") }, "Best time to visit Rajasthan is October-February when temperatures are mild (15-25°C). Avoid April-June (extremely hot, up to 45°C) and July-September (monsoon). December-February can be cooler in desert areas."},
	{anyOf("family"), "For family trips, I recommend Kerala (backwaters and houseboats), Goa (beaches and resorts), or Himachal Pradesh (hill stations). These destinations offer safe, comfortable travel with activities for all ages."},
	{anyOf("budget", "cheap", "affordable"), "For budget travel in India, consider Goa, Himachal Pradesh, or Kerala. Daily costs can be kept under ₹2,000 including stay, food, and local transport. Use local buses, stay in guesthouses, and eat at local restaurants."},
	{anyOf("food", "eat"), "Indian cuisine varies by region! In Kerala, try appam with fish curry. Rajasthan offers dal baati churma. Goa has amazing seafood. Always try local street food, but choose clean establishments. Most dishes are vegetarian-friendly."},
}

// Fallbacks are used when no keyword rule matches
var Fallbacks = []string{
	"That's an interesting question! Let me help you with that. What specific destination are you planning to visit?",
	"I'd be happy to help with your travel plans. Could you tell me more about what you're looking for?",
	"Great question! I can provide information about destinations, budgets, itineraries, and local tips. What would you like to know?",
	"Travel planning is exciting! I can help you find the perfect destination based on your preferences, budget, and travel style.",
}

// Responder picks replies. The picker chooses among the fallbacks and
// receives the number of choices.
type Responder struct {
	pick func(n int) int
}

// NewResponder returns a Responder whose fallback choice is driven by seed
func NewResponder(seed int64) *Responder {
	rnd := rand.New(rand.NewSource(seed))
	return &Responder{pick: rnd.Intn}
}

// NewResponderWithPicker lets callers decide which fallback is used
func NewResponderWithPicker(pick func(n int) int) *Responder {
	return &Responder{pick: pick}
}

// Reply answers a message. It has no state beyond the fallback picker.
func (r *Responder) Reply(message string) string {
	msg := strings.ToLower(message)
	for _, rule := range rules {
		if rule.match(msg) {
			return rule.reply
		}
	}
	return Fallbacks[r.pick(len(Fallbacks))]
}
