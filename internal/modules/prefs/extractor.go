// README: Rule-based preference extractor (destination matching, ride category, AC, passengers).
package prefs

import (
	"log"
	"regexp"
	"strconv"
	"strings"
)

// DefaultDestinationText is substituted when no destination can be resolved.
const DefaultDestinationText = "current location"

// Extractor turns free-text ride requests into RidePreferences.
// It never fails: unresolvable fields fall back to safe defaults and
// the condition is recorded on the Note field and logged.
type Extractor struct {
	destinations []Destination
	logger       *log.Logger
}

// NewExtractor builds an extractor over the given destination table.
// A nil or empty table falls back to DefaultDestinations.
func NewExtractor(destinations []Destination, logger *log.Logger) *Extractor {
	if len(destinations) == 0 {
		destinations = DefaultDestinations
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Extractor{destinations: destinations, logger: logger}
}

var (
	directionRe = regexp.MustCompile(`(?:^|\s)(?:go to|take me to|head to|towards?|near|to)\s+([a-z][a-z\s]*)`)
	passengerRe = regexp.MustCompile(`(\d+)\s+(?:of us|people|passengers|persons)`)
	budgetRe    = regexp.MustCompile(`(?:under|within|budget(?: of)?|less than|max)\s*(?:₹|rs\.?\s*)?(\d+(?:\.\d+)?)`)
	acRe        = regexp.MustCompile(`\b(?:ac|a/c|air)\b`)
	acNegRe     = regexp.MustCompile(`\b(?:no ac|without ac|non-ac|non ac)\b`)
	wordRe      = regexp.MustCompile(`[a-z0-9/-]+`)
)

// stopWords terminate a directional destination phrase.
var stopWords = map[string]bool{
	"in": true, "by": true, "using": true, "with": true, "as": true,
	"please": true, "now": true,
}

// Extract parses text into structured ride preferences.
func (e *Extractor) Extract(text string) RidePreferences {
	lower := strings.ToLower(strings.TrimSpace(text))

	p := RidePreferences{
		RideType:   RideCar,
		Passengers: 1,
		AC:         ACUnspecified,
	}

	if lower == "" {
		p.Destination = DefaultDestinationText
		p.Note = "empty input; using defaults"
		e.logger.Printf("prefs: empty input, defaulting to %q", p.Destination)
		return p
	}

	dest, matched := e.matchDestination(lower)
	if !matched {
		dest = extractDirectionalPhrase(lower)
		if dest == "" {
			dest = DefaultDestinationText
			p.Note = "destination not recognized; using current location"
			e.logger.Printf("prefs: no destination in %q, defaulting to %q", text, dest)
		}
	}
	p.Destination = dest

	p.RideType = classifyRideType(lower)
	p.AC = classifyAC(lower)
	p.Luggage = hasAnyToken(lower, "luggage", "bag", "bags", "baggage", "suitcase")

	if hasAnyToken(lower, "we", "us") {
		if m := passengerRe.FindStringSubmatch(lower); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
				p.Passengers = n
			}
		}
	}

	if m := budgetRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil && v >= 0 {
			p.Budget = &v
		}
	}

	return p
}

// matchDestination resolves the input against the canonical table.
// Pass 1 counts keyword hits per destination. Pass 2 disambiguates
// multi-candidate results: the first candidate in table order with a
// specific-keyword hit wins; otherwise the highest raw count, earliest
// in table order on ties.
func (e *Extractor) matchDestination(lower string) (string, bool) {
	type candidate struct {
		dest  Destination
		count int
	}
	var candidates []candidate
	for _, d := range e.destinations {
		n := 0
		for _, kw := range d.Keywords {
			if strings.Contains(lower, kw) {
				n++
			}
		}
		if n > 0 {
			candidates = append(candidates, candidate{dest: d, count: n})
		}
	}

	if len(candidates) == 0 {
		return "", false
	}
	if len(candidates) == 1 {
		return candidates[0].dest.Name, true
	}

	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.dest.Name
	}
	e.logger.Printf("prefs: multiple destination matches: %s", strings.Join(names, ", "))

	// Candidates stay in table order, so the first specific hit is deterministic.
	for _, c := range candidates {
		for _, kw := range c.dest.Keywords {
			if isSpecificKeyword(kw) && strings.Contains(lower, kw) {
				e.logger.Printf("prefs: disambiguated to %q via keyword %q", c.dest.Name, kw)
				return c.dest.Name, true
			}
		}
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.count > best.count {
			best = c
		}
	}
	e.logger.Printf("prefs: using best match %q (%d keyword hits)", best.dest.Name, best.count)
	return best.dest.Name, true
}

// isSpecificKeyword reports whether a keyword is precise enough to
// disambiguate between destinations: a long purely-numeric token, or
// one naming a sector ("sec"/"sector").
func isSpecificKeyword(kw string) bool {
	if len(kw) > 3 && isAllDigits(kw) {
		return true
	}
	return strings.Contains(kw, "sec") || strings.Contains(kw, "sector")
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// extractDirectionalPhrase pulls a destination phrase out of text like
// "take me to the central station by car", stopping before trailing
// qualifiers. Returns "" when no directional marker is present.
func extractDirectionalPhrase(lower string) string {
	m := directionRe.FindStringSubmatch(lower)
	if m == nil {
		return ""
	}
	words := strings.Fields(m[1])
	var kept []string
	for _, w := range words {
		if stopWords[w] {
			break
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// classifyRideType tests keyword groups in fixed priority order.
// Rickshaw wins over every later group; car is the default.
func classifyRideType(lower string) string {
	switch {
	case strings.Contains(lower, "rick") || strings.Contains(lower, "rickshaw") || strings.Contains(lower, "auto-rickshaw"):
		return RideRickshaw
	case strings.Contains(lower, "bike") || strings.Contains(lower, "motorcycle") || strings.Contains(lower, "two-wheeler"):
		return RideBike
	case strings.Contains(lower, "auto"):
		return RideAuto
	case strings.Contains(lower, "premium") || strings.Contains(lower, "comfortable") || hasAnyToken(lower, "xl", "suv"):
		return RidePremium
	default:
		return RideCar
	}
}

// classifyAC resolves the tri-state AC preference. Explicit negation
// always wins over a bare AC/air token.
func classifyAC(lower string) ACPreference {
	if acNegRe.MatchString(lower) {
		return ACNotNeeded
	}
	if acRe.MatchString(lower) {
		return ACPreferred
	}
	return ACUnspecified
}

// hasAnyToken reports whether any of the given whole words appears in
// the input. Substring checks are too loose here ("we" in "week").
func hasAnyToken(lower string, tokens ...string) bool {
	words := wordRe.FindAllString(lower, -1)
	for _, w := range words {
		for _, t := range tokens {
			if w == t {
				return true
			}
		}
	}
	return false
}
