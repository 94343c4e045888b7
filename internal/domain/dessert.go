package domain

import "strconv"

// FlavorProfile is the dominant taste of a dessert.
type FlavorProfile int

const (
	FlavorSweet FlavorProfile = iota
	FlavorBitter
	FlavorSour
	FlavorSalty
	FlavorUmami
)

// String returns the menu file literal.
func (f FlavorProfile) String() string {
	switch f {
	case FlavorBitter:
		return "BITTER"
	case FlavorSour:
		return "SOUR"
	case FlavorSalty:
		return "SALTY"
	case FlavorUmami:
		return "UMAMI"
	default:
		return "SWEET"
	}
}

// Label returns the display text. One label per profile.
func (f FlavorProfile) Label() string {
	switch f {
	case FlavorBitter:
		return "Bitter"
	case FlavorSour:
		return "Sour"
	case FlavorSalty:
		return "Salty"
	case FlavorUmami:
		return "Umami"
	default:
		return "Sweet"
	}
}

// FlavorProfileFromString falls back to FlavorSweet for unknown text.
func FlavorProfileFromString(s string) FlavorProfile {
	switch s {
	case "BITTER":
		return FlavorBitter
	case "SOUR":
		return FlavorSour
	case "SALTY":
		return FlavorSalty
	case "UMAMI":
		return FlavorUmami
	default:
		return FlavorSweet
	}
}

// Dessert closes the meal.
type Dessert struct {
	Base
	FlavorProfile  FlavorProfile
	SweetnessLevel int
	ContainsNuts   bool
}

var _ Dish = (*Dessert)(nil)

// Common returns nil for a nil Dessert.
func (d *Dessert) Common() *Base {
	if d == nil {
		return nil
	}
	return &d.Base
}

func (d *Dessert) Kind() Kind { return KindDessert }
func (d *Dessert) sealed()    {}

// Details returns the display lines.
func (d *Dessert) Details() []Detail {
	return append(d.Base.details(),
		Detail{"Flavor Profile", d.FlavorProfile.Label()},
		Detail{"Sweetness Level", strconv.Itoa(d.SweetnessLevel)},
		Detail{"Contains Nuts", yesNo(d.ContainsNuts)},
	)
}

// Accommodate applies, in order: nut free, low sugar, vegan.
func (d *Dessert) Accommodate(req DietaryRequest) {
	if req.NutFree {
		d.ContainsNuts = false
		d.Ingredients = without(d.Ingredients, nuts)
	}
	if req.LowSugar {
		d.SweetnessLevel = lowerClamped(d.SweetnessLevel, 3)
	}
	if req.Vegan {
		d.Ingredients = without(d.Ingredients, dairyAndEggs)
	}
}
