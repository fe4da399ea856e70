package permit

import (
	"regexp"
	"strings"
)

// Permit documents from the reservation system print two kinds of lines we
// care about: reservation windows and field headings.
//
//	Sat, Dec 6, 2025 8:00 AM Sat, Dec 6, 2025 1:00 PM
//	Shoreline North Field (Athletic Field Use)
var (
	timeSlotPattern = regexp.MustCompile(
		`^[A-Za-z]{3}, [A-Za-z]{3} \d{1,2}, \d{4} \d{1,2}:\d{2} (?:AM|PM)` +
			`(?: [A-Za-z]{3}, [A-Za-z]{3} \d{1,2}, \d{4} \d{1,2}:\d{2} (?:AM|PM))*`,
	)
	fieldNamePattern = regexp.MustCompile(`^[A-Za-z\s]+ \(Athletic Field Use\)`)
)

// extraction holds the structured lines pulled out of a document.
type extraction struct {
	timeSlots  []string
	fieldNames []string
	fieldSlots map[string][]string
}

// extract walks the document line by line. A field heading becomes the
// current field; slot lines that follow attach to it. Slot lines seen before
// any heading are kept in the flat list but not attributed. maxItems caps
// each category independently.
func extract(text string, maxItems int) extraction {
	out := extraction{fieldSlots: make(map[string][]string)}
	current := ""

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case timeSlotPattern.MatchString(line):
			if len(out.timeSlots) >= maxItems {
				continue
			}
			out.timeSlots = append(out.timeSlots, line)
			if current != "" {
				out.fieldSlots[current] = append(out.fieldSlots[current], line)
			}
		case fieldNamePattern.MatchString(line):
			if len(out.fieldNames) >= maxItems {
				continue
			}
			out.fieldNames = append(out.fieldNames, line)
			out.fieldSlots[line] = []string{}
			current = line
		}
	}
	return out
}
