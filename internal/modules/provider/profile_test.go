// README: Profile tests: ride-type mapping and goal templating.
package provider

import (
	"strings"
	"testing"

	"cabnav/internal/modules/prefs"
)

func TestRideTypeLabel(t *testing.T) {
	tests := []struct {
		profile  Profile
		category string
		want     string
	}{
		{UberProfile, prefs.RideCar, "UberGo"},
		{UberProfile, prefs.RideBike, "Uber Moto"},
		{UberProfile, "unknown", "UberGo"},
		{OlaProfile, prefs.RideRickshaw, "Ola Auto"},
		{OlaProfile, prefs.RidePremium, "Ola Plus"},
		{RapidoProfile, prefs.RideBike, "Bike"},
		{RapidoProfile, prefs.RideCar, "Auto"},
		{RapidoProfile, "", "Auto"},
	}
	for _, tt := range tests {
		if got := tt.profile.RideTypeLabel(tt.category); got != tt.want {
			t.Errorf("%s.RideTypeLabel(%q) = %q, want %q", tt.profile.Name, tt.category, got, tt.want)
		}
	}
}

func TestQuoteGoalEmbedsDetails(t *testing.T) {
	p := prefs.RidePreferences{RideType: prefs.RideBike, AC: prefs.ACPreferred}
	goal := UberProfile.QuoteGoal("Current Location", "JIIT Sector 62", p)

	for _, want := range []string{"Uber", "JIIT Sector 62", `"Uber Moto"`, "AC variant"} {
		if !strings.Contains(goal, want) {
			t.Errorf("quote goal missing %q:\n%s", want, goal)
		}
	}
}

func TestQuoteGoalOmitsACWhenUnspecified(t *testing.T) {
	goal := OlaProfile.QuoteGoal("A", "B", prefs.RidePreferences{RideType: prefs.RideCar})
	if strings.Contains(goal, "AC variant") {
		t.Errorf("AC instruction present without an AC preference:\n%s", goal)
	}
}

func TestQuoteGoalIncludesProviderHints(t *testing.T) {
	goal := RapidoProfile.QuoteGoal("A", "B", prefs.RidePreferences{})
	if !strings.Contains(goal, "defaults to Bike") {
		t.Errorf("provider hint missing:\n%s", goal)
	}
}

func TestBookingGoalEmbedsQuote(t *testing.T) {
	quote := PriceQuote{Provider: "ola", RideType: "Ola Auto", EstimatedPrice: 142.5, Currency: "INR"}
	p := prefs.RidePreferences{Passengers: 3, Luggage: true}
	goal := OlaProfile.BookingGoal("Home", "Airport", p, quote)

	for _, want := range []string{"Ola", "Home", "Airport", "Ola Auto", "142.50 INR", "Passengers: 3", "luggage", "coupons"} {
		if !strings.Contains(goal, want) {
			t.Errorf("booking goal missing %q:\n%s", want, goal)
		}
	}
}

func TestDefaultProfilesOrder(t *testing.T) {
	want := []string{"uber", "ola", "rapido"}
	if len(DefaultProfiles) != len(want) {
		t.Fatalf("len(DefaultProfiles) = %d, want %d", len(DefaultProfiles), len(want))
	}
	for i, name := range want {
		if DefaultProfiles[i].Name != name {
			t.Errorf("DefaultProfiles[%d].Name = %q, want %q", i, DefaultProfiles[i].Name, name)
		}
	}
}
