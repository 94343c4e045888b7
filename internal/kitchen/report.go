package kitchen

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/bistro/internal/domain"
)

// Stats is a point-in-time view of the kitchen aggregates.
type Stats struct {
	Dishes              int
	Capacity            int // storage.Unbounded for no limit
	PrepTimeSum         int
	AveragePrepTime     int
	ElaborateCount      int
	ElaboratePercentage float64
	ByCuisine           map[domain.Cuisine]int
}

// Stats collects every aggregate in one pass over the query methods.
func (k *Kitchen) Stats() Stats {
	s := Stats{
		Dishes:              k.Size(),
		Capacity:            k.Capacity(),
		PrepTimeSum:         k.PrepTimeSum(),
		AveragePrepTime:     k.AveragePrepTime(),
		ElaborateCount:      k.ElaborateCount(),
		ElaboratePercentage: k.ElaboratePercentage(),
		ByCuisine:           make(map[domain.Cuisine]int, len(domain.Cuisines)),
	}
	for _, c := range domain.Cuisines {
		s.ByCuisine[c] = k.Tally(c.String())
	}
	return s
}

// Report renders the cuisine tallies followed by the average prep time
// and the elaborate percentage:
//
//	ITALIAN: 2
//	...
//	OTHER: 1
//
//	AVERAGE PREP TIME: 62
//	ELABORATE DISHES: 53.85%
func (k *Kitchen) Report() string {
	var b strings.Builder
	for _, c := range domain.Cuisines {
		fmt.Fprintf(&b, "%s: %d\n", c, k.Tally(c.String()))
	}
	b.WriteByte('\n')
	fmt.Fprintf(&b, "AVERAGE PREP TIME: %d\n", k.AveragePrepTime())
	fmt.Fprintf(&b, "ELABORATE DISHES: %.2f%%\n", k.ElaboratePercentage())
	return b.String()
}
