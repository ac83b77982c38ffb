// README: Preference extractor tests (destination matching, categories, auxiliary fields).
package prefs

import (
	"io"
	"log"
	"reflect"
	"testing"
)

func newTestExtractor(destinations []Destination) *Extractor {
	return NewExtractor(destinations, log.New(io.Discard, "", 0))
}

func TestExtractDestinationTable(t *testing.T) {
	e := newTestExtractor(nil)

	cases := []struct {
		input string
		want  string
	}{
		{"take me to the office", "work"},
		{"go home please", "home"},
		{"Go to jiit sec 62 by rickshaw", "jaypee institute of information technology sec 62 noida"},
		{"jiit sector 128 wishtown", "jaypee institute of information technology sec 128 jaypee wishtown noida"},
	}
	for _, tc := range cases {
		got := e.Extract(tc.input)
		if got.Destination != tc.want {
			t.Errorf("Extract(%q).Destination = %q, want %q", tc.input, got.Destination, tc.want)
		}
	}
}

// A specific-keyword hit must win even when the other candidate has
// more raw keyword matches.
func TestExtractDisambiguationSpecificBeatsCount(t *testing.T) {
	table := []Destination{
		{Name: "campus north", Keywords: []string{"campus", "university", "college", "north"}},
		{Name: "campus sec 12", Keywords: []string{"campus", "sec 12"}},
	}
	e := newTestExtractor(table)

	// Three hits for campus north, two for campus sec 12, but only
	// the latter has a specific keyword present.
	got := e.Extract("north university campus sec 12")
	if got.Destination != "campus sec 12" {
		t.Errorf("Destination = %q, want %q", got.Destination, "campus sec 12")
	}
}

func TestExtractDisambiguationFallsBackToBestCount(t *testing.T) {
	table := []Destination{
		{Name: "east market", Keywords: []string{"market", "east"}},
		{Name: "west market", Keywords: []string{"market", "west", "mall"}},
	}
	e := newTestExtractor(table)

	got := e.Extract("go to the west market mall")
	if got.Destination != "west market" {
		t.Errorf("Destination = %q, want %q", got.Destination, "west market")
	}

	// Equal counts resolve to the earliest table entry.
	got = e.Extract("go to the market")
	if got.Destination != "east market" {
		t.Errorf("tie Destination = %q, want %q", got.Destination, "east market")
	}
}

func TestExtractDirectionalPhraseFallback(t *testing.T) {
	e := newTestExtractor(nil)

	cases := []struct {
		input string
		want  string
	}{
		{"take me to times square by car", "times square"},
		{"head to central station please", "central station"},
		{"towards the mall now", "the mall"},
		{"i want a ride", DefaultDestinationText},
		{"", DefaultDestinationText},
	}
	for _, tc := range cases {
		got := e.Extract(tc.input)
		if got.Destination != tc.want {
			t.Errorf("Extract(%q).Destination = %q, want %q", tc.input, got.Destination, tc.want)
		}
	}
}

func TestClassifyRideTypePrecedence(t *testing.T) {
	e := newTestExtractor(nil)

	cases := []struct {
		input string
		want  string
	}{
		{"go to the mall", RideCar},
		{"go to the mall by rickshaw", RideRickshaw},
		{"go to the mall on a bike", RideBike},
		{"go to the mall by auto", RideAuto},
		{"premium car to the mall", RidePremium},
		{"need an suv to the mall", RidePremium},
		// Rickshaw tokens take precedence over premium tokens.
		{"premium rickshaw to the mall", RideRickshaw},
		// Bike beats auto, auto beats premium.
		{"auto or bike to the mall", RideBike},
		{"premium auto to the mall", RideAuto},
	}
	for _, tc := range cases {
		got := e.Extract(tc.input)
		if got.RideType != tc.want {
			t.Errorf("Extract(%q).RideType = %q, want %q", tc.input, got.RideType, tc.want)
		}
	}
}

func TestExtractACPreference(t *testing.T) {
	e := newTestExtractor(nil)

	cases := []struct {
		input string
		want  ACPreference
	}{
		{"go to the mall", ACUnspecified},
		{"go to the mall, need ac", ACPreferred},
		{"air conditioned ride to the mall", ACPreferred},
		{"go to the mall, no ac needed", ACNotNeeded},
		{"non-ac auto to the mall", ACNotNeeded},
		{"without ac to the mall", ACNotNeeded},
	}
	for _, tc := range cases {
		got := e.Extract(tc.input)
		if got.AC != tc.want {
			t.Errorf("Extract(%q).AC = %q, want %q", tc.input, got.AC, tc.want)
		}
	}
}

func TestExtractPassengersAndLuggage(t *testing.T) {
	e := newTestExtractor(nil)

	got := e.Extract("go to the mall, 3 of us with luggage")
	if got.Passengers != 3 {
		t.Errorf("Passengers = %d, want 3", got.Passengers)
	}
	if !got.Luggage {
		t.Error("Luggage = false, want true")
	}

	// A numeric phrase without a we/us token does not override the default.
	got = e.Extract("go to the mall for 3 people")
	if got.Passengers != 1 {
		t.Errorf("Passengers = %d, want 1", got.Passengers)
	}

	got = e.Extract("we need a ride to the mall")
	if got.Passengers != 1 {
		t.Errorf("Passengers without count = %d, want 1", got.Passengers)
	}
}

func TestExtractBudget(t *testing.T) {
	e := newTestExtractor(nil)

	got := e.Extract("go to the mall under 250")
	if got.Budget == nil || *got.Budget != 250 {
		t.Fatalf("Budget = %v, want 250", got.Budget)
	}

	got = e.Extract("go to the mall")
	if got.Budget != nil {
		t.Errorf("Budget = %v, want nil", *got.Budget)
	}
}

// Scenario: "Go to jiit sec 62 by rickshaw" resolves both the sec-62
// destination and the rickshaw category.
func TestExtractJIITScenario(t *testing.T) {
	e := newTestExtractor(nil)

	got := e.Extract("Go to jiit sec 62 by rickshaw")
	if got.Destination != "jaypee institute of information technology sec 62 noida" {
		t.Errorf("Destination = %q", got.Destination)
	}
	if got.RideType != RideRickshaw {
		t.Errorf("RideType = %q, want %q", got.RideType, RideRickshaw)
	}
}

func TestExtractIdempotent(t *testing.T) {
	e := newTestExtractor(nil)

	const input = "Go to jiit sec 62 by rickshaw, 2 of us with bags, need ac, under 300"
	first := e.Extract(input)
	second := e.Extract(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Extract not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
