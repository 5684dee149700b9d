// internal/domain/tour/service.go
package tour

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var dayRe = regexp.MustCompile(`(?i)day\s*(\d+)`)

// unnumberedDay sorts any detail without a parseable "Day N" label after all
// numbered days.
const unnumberedDay = 999

// DayNumber extracts the numeric day from an itinerary label. "Intro" sorts
// before everything (0); labels without a number sort last.
func DayNumber(label string) int {
	if label == "Intro" {
		return 0
	}
	m := dayRe.FindStringSubmatch(label)
	if m == nil {
		return unnumberedDay
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return unnumberedDay
	}
	return n
}

// SortDetails orders an itinerary chronologically: "Intro" first, then by the
// number in the "Day N" label, unparseable labels last. The sort is stable so
// ties keep the underlying order.
func SortDetails(details []Detail) {
	sort.SliceStable(details, func(i, j int) bool {
		return DayNumber(details[i].Day) < DayNumber(details[j].Day)
	})
}

// DayLabel is the label given to the i-th (0-based) detail at creation time.
func DayLabel(i int) string {
	return fmt.Sprintf("Day %d", i+1)
}

// ApplyCreateDefaults fills the per-day descriptive fields with the catalog
// defaults used when a tour is first created.
func (d *Detail) ApplyCreateDefaults() {
	setDefault(&d.OperatorName, "Explore!")
	setDefault(&d.TourStyleTitle, "Travel Style")
	setDefault(&d.TourStyleDesc, "Discovery")
	setDefault(&d.GuideTypeTitle, "Travel Guide")
	setDefault(&d.GuideTypeDesc, "Local Guides")
	setDefault(&d.IntensityTitle, "Fitness Level")
	setDefault(&d.IntensityDesc, "Challenging")
	setDefault(&d.Language, "English, French")
	setDefault(&d.GroupSize, "1-16 people")
	setDefault(&d.AgeRange, "Min 12+")
}

func setDefault(field *string, def string) {
	if strings.TrimSpace(*field) == "" {
		*field = def
	}
}

// ----------------------------------------
// Recommendation
// ----------------------------------------

// Answer is the traveler questionnaire used by the recommendation endpoint.
type Answer struct {
	Budget float64 `json:"budget"`
	Type   string  `json:"type"` // beach | mountain | city
	Days   int     `json:"days"`
}

// Recommend scores every tour against an answer and returns the best match:
// +3 when the requested type appears in the location, +2 when the price fits
// the budget, +1 when the duration is within one day. Returns nil for an
// empty catalog.
func Recommend(tours []Tour, ans Answer) *Tour {
	var best *Tour
	bestScore := -1

	for i := range tours {
		t := &tours[i]
		score := 0

		if ans.Type != "" && strings.Contains(strings.ToLower(t.Location), strings.ToLower(ans.Type)) {
			score += 3
		}
		if t.Price <= ans.Budget {
			score += 2
		}
		if days, err := strconv.Atoi(strings.TrimSpace(t.Duration)); err == nil {
			if diff := days - ans.Days; diff <= 1 && diff >= -1 {
				score++
			}
		}

		if score > bestScore {
			bestScore = score
			best = t
		}
	}
	return best
}
