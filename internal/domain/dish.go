// Package domain defines the core types of the bistro catalog: the dish
// variants, their enums, dietary requests and the shared sentinel errors.
// All other packages depend on domain; domain depends on nothing.
package domain

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Cuisine is the cuisine category of a dish.
type Cuisine int

const (
	CuisineItalian Cuisine = iota
	CuisineMexican
	CuisineChinese
	CuisineIndian
	CuisineAmerican
	CuisineFrench
	CuisineOther
)

// Cuisines lists every cuisine in report order.
var Cuisines = []Cuisine{
	CuisineItalian,
	CuisineMexican,
	CuisineChinese,
	CuisineIndian,
	CuisineAmerican,
	CuisineFrench,
	CuisineOther,
}

// String returns the uppercase literal used in menu files and reports.
func (c Cuisine) String() string {
	switch c {
	case CuisineItalian:
		return "ITALIAN"
	case CuisineMexican:
		return "MEXICAN"
	case CuisineChinese:
		return "CHINESE"
	case CuisineIndian:
		return "INDIAN"
	case CuisineAmerican:
		return "AMERICAN"
	case CuisineFrench:
		return "FRENCH"
	default:
		return "OTHER"
	}
}

// CuisineFromString matches the exact uppercase literal. Anything else
// is CuisineOther.
func CuisineFromString(s string) Cuisine {
	for _, c := range Cuisines {
		if c.String() == s {
			return c
		}
	}
	return CuisineOther
}

// Elaborate thresholds.
const (
	ElaborateMinIngredients = 5
	ElaborateMinPrepTime    = 60
)

// Base holds the fields shared by every dish. Two dishes are equal when
// all base fields match.
type Base struct {
	Name        string
	Ingredients []string
	PrepTime    int // minutes
	Price       float64
	Cuisine     Cuisine
}

// Equal reports whether b and o match on every base field.
func (b *Base) Equal(o *Base) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.Name == o.Name &&
		b.PrepTime == o.PrepTime &&
		b.Price == o.Price &&
		b.Cuisine == o.Cuisine &&
		slices.Equal(b.Ingredients, o.Ingredients)
}

// Elaborate reports whether the dish has at least five ingredients and
// takes an hour or more to prepare.
func (b *Base) Elaborate() bool {
	return len(b.Ingredients) >= ElaborateMinIngredients && b.PrepTime >= ElaborateMinPrepTime
}

// Validate rejects negative prep times and negative or non-finite prices.
// A NaN price would never compare equal, not even to itself.
func (b *Base) Validate() error {
	if math.IsNaN(b.Price) || math.IsInf(b.Price, 0) {
		return fmt.Errorf("%w: price %v is not a finite number", ErrInvalidDish, b.Price)
	}
	if b.PrepTime < 0 {
		return fmt.Errorf("%w: prep time %d is negative", ErrInvalidDish, b.PrepTime)
	}
	if b.Price < 0 {
		return fmt.Errorf("%w: price %.2f is negative", ErrInvalidDish, b.Price)
	}
	return nil
}

func (b *Base) details() []Detail {
	return []Detail{
		{"Dish Name", b.Name},
		{"Ingredients", strings.Join(b.Ingredients, ", ")},
		{"Preparation Time", fmt.Sprintf("%d minutes", b.PrepTime)},
		{"Price", fmt.Sprintf("$%.2f", b.Price)},
		{"Cuisine Type", b.Cuisine.String()},
	}
}

// Detail is one labelled display line of a dish.
type Detail struct {
	Label string
	Value string
}

// Dish is the closed set of menu variants: *Appetizer, *MainCourse and
// *Dessert.
type Dish interface {
	// Common exposes the shared fields. The pointer aliases the dish and
	// is nil for a nil variant pointer.
	Common() *Base
	// Kind names the variant.
	Kind() Kind
	// Details returns the display lines, base fields first.
	Details() []Detail
	// Accommodate rewrites the dish in place for the request.
	Accommodate(req DietaryRequest)

	sealed()
}

// Kind identifies a dish variant.
type Kind int

const (
	KindAppetizer Kind = iota
	KindMainCourse
	KindDessert
)

// String returns the DISHTYPE literal used in menu files.
func (k Kind) String() string {
	switch k {
	case KindAppetizer:
		return "APPETIZER"
	case KindMainCourse:
		return "MAINCOURSE"
	case KindDessert:
		return "DESSERT"
	default:
		return "UNKNOWN"
	}
}

// IsNil reports whether d is nil or a nil pointer of one of the
// variants.
func IsNil(d Dish) bool {
	return d == nil || d.Common() == nil
}

// SameDish reports whether a and b are equal under the base-field rule.
// Nil dishes, typed or not, only equal each other.
func SameDish(a, b Dish) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	return a.Common().Equal(b.Common())
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
