// README: Quote and booking value objects returned by provider agents.
package provider

// DefaultCurrency is assumed when a provider does not state one.
const DefaultCurrency = "INR"

// PriceQuote is one priced offer from a single provider. It is
// produced once per provider per comparison and never mutated.
type PriceQuote struct {
	Provider       string  `json:"provider"`
	RideType       string  `json:"ride_type"`
	EstimatedPrice float64 `json:"estimated_price"`
	EstimatedTime  string  `json:"estimated_time"`
	Distance       *string `json:"distance,omitempty"`
	Currency       string  `json:"currency"`
	ExtraCharges   *string `json:"extra_charges,omitempty"`
	Available      bool    `json:"available"`
}

// BookingConfirmation is produced at most once per successful booking.
type BookingConfirmation struct {
	BookingID        string   `json:"booking_id"`
	Provider         string   `json:"provider"`
	RideType         string   `json:"ride_type"`
	EstimatedPrice   float64  `json:"estimated_price"`
	EstimatedArrival string   `json:"estimated_arrival"`
	DriverName       *string  `json:"driver_name,omitempty"`
	DriverRating     *float64 `json:"driver_rating,omitempty"`
	VehicleDetails   *string  `json:"vehicle_details,omitempty"`
	Status           string   `json:"status"`
	Pickup           string   `json:"pickup_location"`
	Destination      string   `json:"destination"`
}

// quoteResultSchema is the shape hint handed to the automation layer
// for fare extraction runs.
const quoteResultSchema = `{
  "ride_type": "string (ride option name as shown in the app)",
  "estimated_price": number,
  "estimated_time": "string (e.g. '7 mins')",
  "distance": "string or null (e.g. '4.2 km')",
  "currency": "string (default 'INR')",
  "extra_charges": "string or null (surge, toll, etc.)",
  "available": boolean
}`

// bookingResultSchema is the shape hint for booking runs.
const bookingResultSchema = `{
  "booking_id": "string",
  "ride_type": "string",
  "estimated_price": number,
  "estimated_arrival": "string (e.g. '5 mins')",
  "driver_name": "string or null",
  "driver_rating": number or null,
  "vehicle_details": "string or null (plate, model, color)",
  "status": "string (e.g. 'confirmed')"
}`
