// README: Fare and ETA string helpers.
package compare

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	fareNumRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
	etaRe     = regexp.MustCompile(`(\d+)`)
)

// FormatCurrency renders an amount for display. INR gets the rupee
// sign, everything else the bare currency code.
func FormatCurrency(amount float64, currency string) string {
	if currency == "" || currency == "INR" {
		return fmt.Sprintf("₹%.2f", amount)
	}
	return fmt.Sprintf("%s %.2f", currency, amount)
}

// ParseFareRange extracts (min, max) from fare strings like "₹100-150"
// or "100". Single values report min == max.
func ParseFareRange(fare string) (float64, float64, bool) {
	nums := fareNumRe.FindAllString(fare, -1)
	if len(nums) == 0 {
		return 0, 0, false
	}
	lo, err := strconv.ParseFloat(nums[0], 64)
	if err != nil {
		return 0, 0, false
	}
	hi := lo
	if len(nums) > 1 {
		if v, err := strconv.ParseFloat(nums[1], 64); err == nil {
			hi = v
		}
	}
	return lo, hi, true
}

// ETAMinutes extracts the leading minute count from strings like
// "5 mins" or "7-10 mins away".
func ETAMinutes(eta string) (int, bool) {
	m := etaRe.FindStringSubmatch(eta)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
