// Package kitchen implements the dish catalog: an owning collection of
// dishes with prep-time and elaborate-dish aggregates kept in step with
// every insert and removal.
package kitchen

import (
	"math"

	"github.com/hammamikhairi/bistro/internal/domain"
	"github.com/hammamikhairi/bistro/internal/logger"
	"github.com/hammamikhairi/bistro/internal/storage"
)

// Compile-time interface check.
var _ domain.DishSink = (*Kitchen)(nil)

// Option configures the kitchen.
type Option func(*Kitchen)

// WithCapacity bounds how many dishes the kitchen holds. Zero means
// unbounded.
func WithCapacity(n int) Option {
	return func(k *Kitchen) {
		k.capacity = n
	}
}

// Kitchen owns a set of dishes, unique under base-field equality. It is
// not safe for concurrent use.
type Kitchen struct {
	dishes   *storage.Bag[domain.Dish]
	capacity int
	log      *logger.Logger

	// Cached aggregates, adjusted on each successful Add/Remove.
	totalPrepTime int
	elaborate     int
}

// New creates an empty kitchen.
func New(log *logger.Logger, opts ...Option) *Kitchen {
	k := &Kitchen{
		capacity: storage.Unbounded,
		log:      log,
	}
	for _, opt := range opts {
		opt(k)
	}
	k.dishes = storage.NewBag(k.capacity, domain.SameDish, log)
	return k
}

// Add takes ownership of dish. Returns false for a nil dish, typed or
// not, and when an equal dish is already present or the kitchen is full.
func (k *Kitchen) Add(dish domain.Dish) bool {
	if domain.IsNil(dish) {
		return false
	}
	if !k.dishes.Add(dish) {
		k.log.Debug("dish %q not added (duplicate or full)", dish.Common().Name)
		return false
	}

	b := dish.Common()
	k.totalPrepTime += b.PrepTime
	if b.Elaborate() {
		k.elaborate++
	}
	k.log.Debug("added %s %q (prep=%dm, elaborate=%v)", dish.Kind(), b.Name, b.PrepTime, b.Elaborate())
	return true
}

// Remove drops the member equal to dish. Returns false when the kitchen
// is empty or holds no such dish.
func (k *Kitchen) Remove(dish domain.Dish) bool {
	if k.dishes.Len() == 0 || domain.IsNil(dish) {
		return false
	}
	removed, ok := k.dishes.Remove(dish)
	if !ok {
		return false
	}

	// Use the stored member: it is what the aggregates were built from.
	b := removed.Common()
	k.totalPrepTime -= b.PrepTime
	if b.Elaborate() {
		k.elaborate--
	}
	k.log.Debug("removed %s %q", removed.Kind(), b.Name)
	return true
}

// Capacity returns the dish limit, or storage.Unbounded.
func (k *Kitchen) Capacity() int { return k.dishes.Cap() }

// Size returns the number of dishes held.
func (k *Kitchen) Size() int { return k.dishes.Len() }

// Contains reports whether an equal dish is held.
func (k *Kitchen) Contains(dish domain.Dish) bool {
	return !domain.IsNil(dish) && k.dishes.Contains(dish)
}

// Dishes returns the members in insertion order. The slice is a copy but
// the dishes are shared; they stay owned by the kitchen.
func (k *Kitchen) Dishes() []domain.Dish { return k.dishes.Items() }

// PrepTimeSum returns the total prep time of all members.
func (k *Kitchen) PrepTimeSum() int {
	if k.Size() == 0 {
		return 0
	}
	return k.totalPrepTime
}

// AveragePrepTime scans the members and returns their mean prep time,
// rounded half away from zero. Zero when empty.
func (k *Kitchen) AveragePrepTime() int {
	n := k.Size()
	if n == 0 {
		return 0
	}
	total := 0
	for _, d := range k.dishes.Items() {
		total += d.Common().PrepTime
	}
	return int(math.Round(float64(total) / float64(n)))
}

// ElaborateCount returns how many members are elaborate.
func (k *Kitchen) ElaborateCount() int {
	if k.Size() == 0 || k.elaborate == 0 {
		return 0
	}
	return k.elaborate
}

// ElaboratePercentage returns the share of elaborate members as a
// percentage rounded to two decimals.
func (k *Kitchen) ElaboratePercentage() float64 {
	n := k.Size()
	if n == 0 || k.elaborate == 0 {
		return 0
	}
	return math.Round(float64(k.elaborate)/float64(n)*10000) / 100
}

// Tally counts members whose cuisine literal equals cuisine exactly.
// Unknown literals count nothing.
func (k *Kitchen) Tally(cuisine string) int {
	count := 0
	for _, d := range k.dishes.Items() {
		if d.Common().Cuisine.String() == cuisine {
			count++
		}
	}
	return count
}

// ReleaseBelowPrepTime removes every member that takes less than
// threshold minutes and returns how many were removed.
func (k *Kitchen) ReleaseBelowPrepTime(threshold int) int {
	n := k.releaseWhere(func(d domain.Dish) bool {
		return d.Common().PrepTime < threshold
	})
	k.log.Info("released %d dishes below %d minutes", n, threshold)
	return n
}

// ReleaseByCuisine removes every member of the given cuisine literal and
// returns how many were removed.
func (k *Kitchen) ReleaseByCuisine(cuisine string) int {
	n := k.releaseWhere(func(d domain.Dish) bool {
		return d.Common().Cuisine.String() == cuisine
	})
	k.log.Info("released %d %s dishes", n, cuisine)
	return n
}

// releaseWhere picks victims from a snapshot before removing any, so a
// removal never shifts an unchecked member past the scan.
func (k *Kitchen) releaseWhere(match func(domain.Dish) bool) int {
	var victims []domain.Dish
	for _, d := range k.dishes.Items() {
		if match(d) {
			victims = append(victims, d)
		}
	}
	removed := 0
	for _, d := range victims {
		if k.Remove(d) {
			removed++
		}
	}
	return removed
}

// ApplyDietaryAdjustment runs the request against every member in place.
// Membership does not change. Accommodation can shrink ingredient lists,
// so the aggregates are rebuilt once afterwards.
func (k *Kitchen) ApplyDietaryAdjustment(req domain.DietaryRequest) {
	for _, d := range k.dishes.Items() {
		d.Accommodate(req)
	}
	before := k.elaborate
	k.resync()
	if before != k.elaborate {
		k.log.Debug("elaborate count changed by adjustment: %d -> %d", before, k.elaborate)
	}
	k.log.Info("applied dietary adjustment (%s) to %d dishes", req, k.Size())
}

func (k *Kitchen) resync() {
	k.totalPrepTime, k.elaborate = 0, 0
	for _, d := range k.dishes.Items() {
		b := d.Common()
		k.totalPrepTime += b.PrepTime
		if b.Elaborate() {
			k.elaborate++
		}
	}
}
