package building

import "strings"

// DefaultCirculationKeywords are the name fragments marking a door as
// belonging to a circulation zone (corridors, halls, stair cores), in
// English and Spanish.
var DefaultCirculationKeywords = []string{
	"corridor", "hall", "lobby", "stair", "pasillo", "distrib", "circulation",
}

// CirculationKeyword returns the first keyword, in list order, found
// case-insensitively in the door's Name or Mark. ok is false when none
// matches.
func CirculationKeyword(d Door, keywords []string) (kw string, ok bool) {
	text := strings.ToLower(d.Name + " " + d.Mark)
	for _, k := range keywords {
		if k == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(k)) {
			return k, true
		}
	}

	return "", false
}

// IsCirculation reports whether d matches any of keywords.
func IsCirculation(d Door, keywords []string) bool {
	_, ok := CirculationKeyword(d, keywords)

	return ok
}
