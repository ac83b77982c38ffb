// README: Ride preferences extracted from free-text user input.
package prefs

type ACPreference string

const (
	ACPreferred   ACPreference = "preferred"
	ACNotNeeded   ACPreference = "not_needed"
	ACUnspecified ACPreference = "unspecified"
)

// Ride categories in canonical form. Provider profiles map these to
// app-specific ride type labels.
const (
	RideCar      = "car"
	RideRickshaw = "rickshaw"
	RideBike     = "bike"
	RideAuto     = "auto"
	RidePremium  = "premium"
)

// RidePreferences is the structured form of one free-text request.
// It is constructed once per request and never mutated afterwards.
type RidePreferences struct {
	Destination string       `json:"destination"`
	RideType    string       `json:"ride_type"`
	Passengers  int          `json:"passengers"`
	Luggage     bool         `json:"luggage"`
	AC          ACPreference `json:"ac_preference"`
	Budget      *float64     `json:"budget_constraint,omitempty"`

	// Note carries a diagnostic when a field fell back to its default.
	Note string `json:"note,omitempty"`
}

// Destination is one canonical destination with its matching keywords.
// Table order is significant: disambiguation scans entries in order.
type Destination struct {
	Name     string
	Keywords []string
}

// DefaultDestinations is the shipped canonical destination table.
var DefaultDestinations = []Destination{
	{Name: "work", Keywords: []string{"work", "office", "workplace", "company"}},
	{Name: "home", Keywords: []string{"home", "house", "apartment", "residence"}},
	{
		Name:     "jaypee institute of information technology sec 62 noida",
		Keywords: []string{"jaypee", "jiit", "sec 62", "sector 62", "noida"},
	},
	{
		Name:     "jaypee institute of information technology sec 128 jaypee wishtown noida",
		Keywords: []string{"jaypee", "jiit", "sec 128", "sector 128", "wishtown", "noida"},
	},
}
