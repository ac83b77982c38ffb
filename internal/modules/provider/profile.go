// README: Per-provider configuration: app identity, ride-type map, goal templates.
package provider

import (
	"fmt"
	"strings"

	"cabnav/internal/modules/prefs"
)

// Profile is everything that distinguishes one provider integration:
// app identity, the canonical-category → app-label mapping, and the
// provider-specific hint lines spliced into automation goals. Agents
// are configuration variants over this data, not subclasses.
type Profile struct {
	// Name is the provider key used in configuration and results.
	Name string

	// DisplayName is the human-readable app name used in goal text.
	DisplayName string

	// Package is the app's package identifier on Android.
	Package string

	// RideTypes maps canonical ride categories to app labels.
	// DefaultRideType is used for categories missing from the map.
	RideTypes       map[string]string
	DefaultRideType string

	// QuoteHints and BookingHints are extra per-app instruction lines
	// (e.g. where the destination field sits, coupon steps).
	QuoteHints   []string
	BookingHints []string
}

// RideTypeLabel maps a canonical ride category to this provider's label.
func (p Profile) RideTypeLabel(category string) string {
	if label, ok := p.RideTypes[strings.ToLower(category)]; ok {
		return label
	}
	return p.DefaultRideType
}

// QuoteGoal builds the natural-language fare-extraction goal for this
// provider: destination entry, suggestion selection, ride-type lookup.
func (p Profile) QuoteGoal(pickup, destination string, rp prefs.RidePreferences) string {
	label := p.RideTypeLabel(rp.RideType)

	var b strings.Builder
	fmt.Fprintf(&b, "Open the %s app and get a fare estimate.\n\n", p.DisplayName)
	b.WriteString("STEP-BY-STEP INSTRUCTIONS:\n")
	fmt.Fprintf(&b, "1. Make sure the %s app is open and ready\n", p.DisplayName)
	b.WriteString("2. Find the destination input field\n")
	b.WriteString("3. Tap the destination field\n")
	fmt.Fprintf(&b, "4. Type the destination: %s\n", destination)
	b.WriteString("5. Wait for suggestions to appear and tap the first matching result\n")
	fmt.Fprintf(&b, "6. On the fare estimate screen, find the %q ride option\n", label)
	b.WriteString("7. Extract the fare information for that option\n")
	for _, hint := range p.QuoteHints {
		fmt.Fprintf(&b, "- %s\n", hint)
	}
	b.WriteString("\nINFORMATION TO EXTRACT:\n")
	b.WriteString("- Ride option name exactly as shown\n")
	b.WriteString("- Estimated fare as a plain number\n")
	b.WriteString("- Estimated arrival time\n")
	b.WriteString("- Distance if visible\n")
	b.WriteString("- Any surge pricing or extra charges\n")
	if rp.AC == prefs.ACPreferred {
		b.WriteString("- Prefer the AC variant of the ride option if the app offers one\n")
	}
	return b.String()
}

// BookingGoal builds the booking goal embedding pickup, destination,
// the provider ride label and the quoted price.
func (p Profile) BookingGoal(pickup, destination string, rp prefs.RidePreferences, quote PriceQuote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Complete a %s ride booking with these details:\n\n", p.DisplayName)
	fmt.Fprintf(&b, "- Pickup: %s\n", pickup)
	fmt.Fprintf(&b, "- Destination: %s\n", destination)
	fmt.Fprintf(&b, "- Ride Type: %s\n", quote.RideType)
	fmt.Fprintf(&b, "- Estimated Fare: %.2f %s\n", quote.EstimatedPrice, quote.Currency)
	fmt.Fprintf(&b, "- Passengers: %d\n", rp.Passengers)
	if rp.Luggage {
		b.WriteString("- Extra luggage space is needed\n")
	}
	b.WriteString("\nSteps:\n")
	b.WriteString("1. Enter the pickup location or confirm the current location\n")
	fmt.Fprintf(&b, "2. Enter destination: %s\n", destination)
	fmt.Fprintf(&b, "3. Select ride type: %s\n", quote.RideType)
	for _, hint := range p.BookingHints {
		fmt.Fprintf(&b, "- %s\n", hint)
	}
	b.WriteString("4. Proceed to confirmation and complete the booking\n")
	b.WriteString("\nExtract the booking ID, status, driver and vehicle details if shown, final fare and ETA.\n")
	return b.String()
}

// Profiles for the supported providers. Ride-type maps mirror the
// labels each app actually shows.
var (
	UberProfile = Profile{
		Name:        "uber",
		DisplayName: "Uber",
		Package:     "com.ubercab",
		RideTypes: map[string]string{
			prefs.RideCar:      "UberGo",
			prefs.RideRickshaw: "Uber Auto",
			prefs.RideBike:     "Uber Moto",
			prefs.RidePremium:  "Uber XL",
			prefs.RideAuto:     "Uber Auto",
		},
		DefaultRideType: "UberGo",
		QuoteHints: []string{
			`The destination field usually says "Where to?" or shows a search icon`,
		},
	}

	OlaProfile = Profile{
		Name:        "ola",
		DisplayName: "Ola",
		Package:     "com.olacabs.customer",
		RideTypes: map[string]string{
			prefs.RideCar:      "Ola Prime",
			prefs.RideRickshaw: "Ola Auto",
			prefs.RideBike:     "Ola Bike",
			prefs.RidePremium:  "Ola Plus",
			prefs.RideAuto:     "Ola Auto",
		},
		DefaultRideType: "Ola Prime",
		QuoteHints: []string{
			`The destination field usually says "Where to?" at the top`,
		},
		BookingHints: []string{
			"Apply any available offers or coupons if visible",
		},
	}

	RapidoProfile = Profile{
		Name:        "rapido",
		DisplayName: "Rapido",
		Package:     "com.rapido.passenger",
		RideTypes: map[string]string{
			prefs.RideCar:      "Auto",
			prefs.RideRickshaw: "Auto",
			prefs.RideBike:     "Bike",
			prefs.RidePremium:  "Auto",
			prefs.RideAuto:     "Auto",
		},
		DefaultRideType: "Auto",
		QuoteHints: []string{
			"Rapido defaults to Bike; switch the category tab if another type is requested",
		},
	}
)

// DefaultProfiles lists the shipped providers in configured order.
var DefaultProfiles = []Profile{UberProfile, OlaProfile, RapidoProfile}
