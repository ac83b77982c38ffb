// README: Fare history rows recorded from finished comparisons.
package history

import (
	"time"

	"cabnav/internal/types"
)

type Entry struct {
	ID          types.ID
	Provider    string
	RideType    string
	Price       float64
	Currency    string
	Pickup      string
	Destination string
	CreatedAt   time.Time
}
