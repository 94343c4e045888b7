package domain

import "strconv"

// ServingStyle is how an appetizer reaches the table.
type ServingStyle int

const (
	ServingPlated ServingStyle = iota
	ServingFamilyStyle
	ServingBuffet
)

// String returns the menu file literal.
func (s ServingStyle) String() string {
	switch s {
	case ServingFamilyStyle:
		return "FAMILY_STYLE"
	case ServingBuffet:
		return "BUFFET"
	default:
		return "PLATED"
	}
}

// Label returns the display text.
func (s ServingStyle) Label() string {
	switch s {
	case ServingFamilyStyle:
		return "Family Style"
	case ServingBuffet:
		return "Buffet"
	default:
		return "Plated"
	}
}

// ServingStyleFromString falls back to ServingPlated for unknown text.
func ServingStyleFromString(s string) ServingStyle {
	switch s {
	case "FAMILY_STYLE":
		return ServingFamilyStyle
	case "BUFFET":
		return ServingBuffet
	default:
		return ServingPlated
	}
}

// Appetizer is a starter dish.
type Appetizer struct {
	Base
	ServingStyle   ServingStyle
	SpicinessLevel int
	Vegetarian     bool
}

var _ Dish = (*Appetizer)(nil)

// Common returns nil for a nil Appetizer.
func (a *Appetizer) Common() *Base {
	if a == nil {
		return nil
	}
	return &a.Base
}

func (a *Appetizer) Kind() Kind { return KindAppetizer }
func (a *Appetizer) sealed()    {}

// Details returns the display lines.
func (a *Appetizer) Details() []Detail {
	return append(a.Base.details(),
		Detail{"Serving Style", a.ServingStyle.Label()},
		Detail{"Spiciness Level", strconv.Itoa(a.SpicinessLevel)},
		Detail{"Vegetarian", yesNo(a.Vegetarian)},
	)
}

// Accommodate applies, in order: vegetarian, low sodium, gluten free.
func (a *Appetizer) Accommodate(req DietaryRequest) {
	if req.Vegetarian {
		a.Vegetarian = true
		a.Ingredients = substituteMeat(a.Ingredients)
	}
	if req.LowSodium {
		a.SpicinessLevel = lowerClamped(a.SpicinessLevel, 2)
	}
	if req.GlutenFree {
		a.Ingredients = without(a.Ingredients, glutenous)
	}
}
