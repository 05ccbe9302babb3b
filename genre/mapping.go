package genre

import "sort"

// primaryMapping maps detailed provider labels onto the closed primary set.
// The table is intentionally broad: providers disagree about spelling and
// granularity, and every row here is one fewer label landing in "other".
var primaryMapping = map[string]string{
	// pop
	"pop":           "pop",
	"dance pop":     "pop",
	"electropop":    "pop",
	"synth pop":     "pop",
	"synthpop":      "pop",
	"teen pop":      "pop",
	"power pop":     "pop",
	"art pop":       "pop",
	"baroque pop":   "pop",
	"chamber pop":   "pop",
	"bubblegum pop": "pop",

	// hip-hop
	"rap":                 "hip-hop",
	"hip-hop":             "hip-hop",
	"hip hop":             "hip-hop",
	"trap":                "hip-hop",
	"pop rap":             "hip-hop",
	"melodic rap":         "hip-hop",
	"conscious hip hop":   "hip-hop",
	"old school hip hop":  "hip-hop",
	"east coast hip hop":  "hip-hop",
	"west coast hip hop":  "hip-hop",
	"southern hip hop":    "hip-hop",
	"gangster rap":        "hip-hop",
	"drill":               "hip-hop",
	"grime":               "hip-hop",

	// rock
	"rock":             "rock",
	"hard rock":        "rock",
	"classic rock":     "rock",
	"progressive rock": "rock",
	"psychedelic rock": "rock",
	"garage rock":      "rock",
	"blues rock":       "rock",
	"folk rock":        "rock",
	"pop rock":         "rock",
	"punk rock":        "rock",
	"metal":            "rock",
	"heavy metal":      "rock",
	"nu metal":         "rock",

	// alternative
	"alternative":      "alternative",
	"alternative rock": "alternative",
	"indie":            "alternative",
	"indie rock":       "alternative",
	"indie pop":        "alternative",
	"alternative pop":  "alternative",
	"indie folk":       "alternative",
	"shoegaze":         "alternative",
	"post-punk":        "alternative",
	"post-rock":        "alternative",
	"emo":              "alternative",
	"grunge":           "alternative",
	"new wave":         "alternative",
	"britpop":          "alternative",

	// country
	"country":      "country",
	"country pop":  "country",
	"new country":  "country",
	"country rock": "country",
	"americana":    "country",
	"bluegrass":    "country",
	"country folk": "country",

	// electronic
	"electronic":    "electronic",
	"edm":           "electronic",
	"house":         "electronic",
	"techno":        "electronic",
	"trance":        "electronic",
	"dubstep":       "electronic",
	"ambient":       "electronic",
	"drum and bass": "electronic",
	"breakbeat":     "electronic",
	"garage":        "electronic",
	"uk garage":     "electronic",
	"future bass":   "electronic",
	"synthwave":     "electronic",

	// r&b
	"r&b":              "r&b",
	"rnb":              "r&b",
	"rhythm and blues": "r&b",
	"soul":             "r&b",
	"neo soul":         "r&b",
	"contemporary r&b": "r&b",
	"funk":             "r&b",
	"gospel":           "r&b",
	"motown":           "r&b",
	"quiet storm":      "r&b",

	// latin
	"latin":            "latin",
	"reggaeton":        "latin",
	"latin pop":        "latin",
	"latin trap":       "latin",
	"salsa":            "latin",
	"bachata":          "latin",
	"merengue":         "latin",
	"cumbia":           "latin",
	"regional mexican": "latin",
	"mariachi":         "latin",

	// folk
	"folk":              "folk",
	"acoustic":          "folk",
	"singer-songwriter": "folk",
	"contemporary folk": "folk",
	"traditional folk":  "folk",
	"celtic":            "folk",
	"world music":       "folk",
	"world":             "folk",

	// jazz
	"jazz":        "jazz",
	"smooth jazz": "jazz",
	"bebop":       "jazz",
	"fusion":      "jazz",
	"acid jazz":   "jazz",
	"latin jazz":  "jazz",
	"big band":    "jazz",
	"swing":       "jazz",
	"cool jazz":   "jazz",
	"hard bop":    "jazz",
}

// mappingKeys holds the table's keys longest-first for the containment
// fallback in MapLabel.
var mappingKeys = func() []string {
	keys := make([]string, 0, len(primaryMapping))
	for key := range primaryMapping {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()
