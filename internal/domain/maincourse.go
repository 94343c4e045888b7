package domain

import (
	"strings"
)

// CookingMethod is how a main course is prepared.
type CookingMethod int

const (
	CookingGrilled CookingMethod = iota
	CookingBaked
	CookingBoiled
	CookingFried
	CookingSteamed
	CookingRaw
)

var cookingMethods = []struct {
	literal, label string
}{
	CookingGrilled: {"GRILLED", "Grilled"},
	CookingBaked:   {"BAKED", "Baked"},
	CookingBoiled:  {"BOILED", "Boiled"},
	CookingFried:   {"FRIED", "Fried"},
	CookingSteamed: {"STEAMED", "Steamed"},
	CookingRaw:     {"RAW", "Raw"},
}

func (m CookingMethod) valid() bool { return m >= 0 && int(m) < len(cookingMethods) }

// String returns the menu file literal.
func (m CookingMethod) String() string {
	if !m.valid() {
		return cookingMethods[CookingGrilled].literal
	}
	return cookingMethods[m].literal
}

// Label returns the display text.
func (m CookingMethod) Label() string {
	if !m.valid() {
		return cookingMethods[CookingGrilled].label
	}
	return cookingMethods[m].label
}

// CookingMethodFromString falls back to CookingGrilled for unknown text.
func CookingMethodFromString(s string) CookingMethod {
	for i, m := range cookingMethods {
		if m.literal == s {
			return CookingMethod(i)
		}
	}
	return CookingGrilled
}

// SideCategory classifies a side dish.
type SideCategory int

const (
	SideGrain SideCategory = iota
	SidePasta
	SideLegume
	SideBread
	SideSalad
	SideSoup
	SideStarches
	SideVegetable
)

var sideCategories = []struct {
	literal, label string
}{
	SideGrain:     {"GRAIN", "Grain"},
	SidePasta:     {"PASTA", "Pasta"},
	SideLegume:    {"LEGUME", "Legume"},
	SideBread:     {"BREAD", "Bread"},
	SideSalad:     {"SALAD", "Salad"},
	SideSoup:      {"SOUP", "Soup"},
	SideStarches:  {"STARCHES", "Starches"},
	SideVegetable: {"VEGETABLE", "Vegetable"},
}

func (c SideCategory) valid() bool { return c >= 0 && int(c) < len(sideCategories) }

// String returns the menu file literal.
func (c SideCategory) String() string {
	if !c.valid() {
		return sideCategories[SideGrain].literal
	}
	return sideCategories[c].literal
}

// Label returns the display text.
func (c SideCategory) Label() string {
	if !c.valid() {
		return sideCategories[SideGrain].label
	}
	return sideCategories[c].label
}

// SideCategoryFromString falls back to SideGrain for unknown text.
func SideCategoryFromString(s string) SideCategory {
	for i, c := range sideCategories {
		if c.literal == s {
			return SideCategory(i)
		}
	}
	return SideGrain
}

// Gluten reports whether the category contains gluten.
func (c SideCategory) Gluten() bool {
	switch c {
	case SideGrain, SidePasta, SideBread, SideStarches:
		return true
	}
	return false
}

// SideDish accompanies a main course.
type SideDish struct {
	Name     string
	Category SideCategory
}

// MainCourse is an entrée.
type MainCourse struct {
	Base
	CookingMethod CookingMethod
	ProteinType   string
	SideDishes    []SideDish
	GlutenFree    bool
}

var _ Dish = (*MainCourse)(nil)

// Common returns nil for a nil MainCourse.
func (m *MainCourse) Common() *Base {
	if m == nil {
		return nil
	}
	return &m.Base
}

func (m *MainCourse) Kind() Kind { return KindMainCourse }
func (m *MainCourse) sealed()    {}

// Details returns the display lines.
func (m *MainCourse) Details() []Detail {
	sides := make([]string, len(m.SideDishes))
	for i, sd := range m.SideDishes {
		sides[i] = sd.Name + " (Category: " + sd.Category.Label() + ")"
	}
	return append(m.Base.details(),
		Detail{"Cooking Method", m.CookingMethod.Label()},
		Detail{"Protein Type", m.ProteinType},
		Detail{"Side Dishes", strings.Join(sides, ", ")},
		Detail{"Gluten-Free", yesNo(m.GlutenFree)},
	)
}

// Accommodate applies, in order: vegetarian, vegan, gluten free.
func (m *MainCourse) Accommodate(req DietaryRequest) {
	if req.Vegetarian {
		m.ProteinType = TofuProtein
		m.Ingredients = substituteMeat(m.Ingredients)
	}
	if req.Vegan {
		m.ProteinType = TofuProtein
		m.Ingredients = without(m.Ingredients, dairyAndEggs)
	}
	if req.GlutenFree {
		m.GlutenFree = true
		kept := make([]SideDish, 0, len(m.SideDishes))
		for _, sd := range m.SideDishes {
			if !sd.Category.Gluten() {
				kept = append(kept, sd)
			}
		}
		m.SideDishes = kept
	}
}
