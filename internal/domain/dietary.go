package domain

import "strings"

// DietaryRequest selects which accommodation rules to run. Flags are
// independent; any combination is valid.
type DietaryRequest struct {
	Vegetarian bool `yaml:"vegetarian"`
	Vegan      bool `yaml:"vegan"`
	GlutenFree bool `yaml:"gluten_free"`
	NutFree    bool `yaml:"nut_free"`
	LowSodium  bool `yaml:"low_sodium"`
	LowSugar   bool `yaml:"low_sugar"`
}

// Empty reports whether no flag is set.
func (r DietaryRequest) Empty() bool {
	return r == DietaryRequest{}
}

// String lists the set flags, e.g. "vegetarian,gluten_free".
func (r DietaryRequest) String() string {
	var on []string
	for _, f := range []struct {
		name string
		set  bool
	}{
		{"vegetarian", r.Vegetarian},
		{"vegan", r.Vegan},
		{"gluten_free", r.GlutenFree},
		{"nut_free", r.NutFree},
		{"low_sodium", r.LowSodium},
		{"low_sugar", r.LowSugar},
	} {
		if f.set {
			on = append(on, f.name)
		}
	}
	if len(on) == 0 {
		return "none"
	}
	return strings.Join(on, ",")
}

// Replacements for the first and second non-vegetarian ingredient.
const (
	FirstSubstitute  = "Beans"
	SecondSubstitute = "Mushrooms"
)

// TofuProtein replaces the protein of vegetarian and vegan main courses.
const TofuProtein = "Tofu"

type ingredientSet map[string]struct{}

func newIngredientSet(names ...string) ingredientSet {
	s := make(ingredientSet, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

func (s ingredientSet) has(name string) bool {
	_, ok := s[name]
	return ok
}

var (
	nonVegetarian = newIngredientSet("Meat", "Chicken", "Fish", "Beef", "Pork", "Lamb", "Shrimp", "Bacon")
	glutenous     = newIngredientSet("Wheat", "Flour", "Bread", "Pasta", "Barley", "Rye", "Oats", "Crust")
	dairyAndEggs  = newIngredientSet("Milk", "Eggs", "Cheese", "Butter", "Cream", "Yogurt")
	nuts          = newIngredientSet("Almonds", "Walnuts", "Pecans", "Hazelnuts", "Peanuts", "Cashews", "Pistachios")
)

// substituteMeat swaps the first non-vegetarian ingredient for Beans,
// the second for Mushrooms and drops every later one. The counter spans
// the whole list, not each ingredient name.
func substituteMeat(ingredients []string) []string {
	out := make([]string, 0, len(ingredients))
	matched := 0
	for _, ing := range ingredients {
		if !nonVegetarian.has(ing) {
			out = append(out, ing)
			continue
		}
		switch matched {
		case 0:
			out = append(out, FirstSubstitute)
		case 1:
			out = append(out, SecondSubstitute)
		}
		matched++
	}
	return out
}

// without returns ingredients minus every member of banned, order kept.
func without(ingredients []string, banned ingredientSet) []string {
	out := make([]string, 0, len(ingredients))
	for _, ing := range ingredients {
		if !banned.has(ing) {
			out = append(out, ing)
		}
	}
	return out
}

func lowerClamped(level, by int) int {
	if level -= by; level < 0 {
		return 0
	}
	return level
}
