// README: Location normalization against a canonical alias table.
package location

import "strings"

// aliases maps common shorthand to full location names.
var aliases = map[string]string{
	"airport":         "Indira Gandhi International Airport",
	"igia":            "Indira Gandhi International Airport",
	"railway station": "New Delhi Railway Station",
	"station":         "New Delhi Railway Station",
	"t1":              "Terminal 1, IGI Airport",
	"t2":              "Terminal 2, IGI Airport",
	"t3":              "Terminal 3, IGI Airport",
	"home":            "Home",
	"office":          "Office",
}

// Normalize trims, title-cases and expands known shorthand names.
func Normalize(loc string) string {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return loc
	}
	if full, ok := aliases[strings.ToLower(loc)]; ok {
		return full
	}
	return titleCase(loc)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
