// Package menu turns delimited menu records into dishes and feeds them
// to a kitchen.
//
// A record has seven comma-separated fields:
//
//	DISHTYPE,NAME,INGREDIENTS,PREP_TIME,PRICE,CUISINE,ADDITIONAL_ATTRS
//
// INGREDIENTS is a semicolon list. ADDITIONAL_ATTRS is a semicolon list
// whose layout depends on DISHTYPE; main course side dishes are a pipe
// list of name:CATEGORY pairs.
package menu

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hammamikhairi/bistro/internal/domain"
)

// Field positions within a record.
const (
	fieldType = iota
	fieldName
	fieldIngredients
	fieldPrepTime
	fieldPrice
	fieldCuisine
	fieldAttrs

	recordFields
)

const (
	listSep     = ";"
	sideSep     = "|"
	sidePairSep = ":"
)

// ParseRecord builds one dish from the fields of a record.
//
// An unrecognised DISHTYPE returns domain.ErrUnknownDishType; callers
// skip such records. Unknown enum text falls back to that field's
// default. A missing or non-numeric number returns an error wrapping
// domain.ErrMalformedRecord; a negative one wraps domain.ErrInvalidDish.
func ParseRecord(fields []string) (domain.Dish, error) {
	get := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	kind := get(fieldType)
	switch kind {
	case "APPETIZER", "MAINCOURSE", "DESSERT":
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDishType, kind)
	}

	prep, err := parseInt("prep time", get(fieldPrepTime))
	if err != nil {
		return nil, err
	}
	price, err := parseFloat("price", get(fieldPrice))
	if err != nil {
		return nil, err
	}

	base := domain.Base{
		Name:        get(fieldName),
		Ingredients: splitList(get(fieldIngredients), listSep),
		PrepTime:    prep,
		Price:       price,
		Cuisine:     domain.CuisineFromString(get(fieldCuisine)),
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}

	attrs := strings.Split(get(fieldAttrs), listSep)
	attr := func(i int) string {
		if i < len(attrs) {
			return attrs[i]
		}
		return ""
	}

	switch kind {
	case "APPETIZER":
		spice, err := parseLevel("spiciness level", attr(1))
		if err != nil {
			return nil, err
		}
		return &domain.Appetizer{
			Base:           base,
			ServingStyle:   domain.ServingStyleFromString(attr(0)),
			SpicinessLevel: spice,
			Vegetarian:     parseBool(attr(2)),
		}, nil

	case "MAINCOURSE":
		return &domain.MainCourse{
			Base:          base,
			CookingMethod: domain.CookingMethodFromString(attr(0)),
			ProteinType:   attr(1),
			SideDishes:    parseSideDishes(attr(2)),
			GlutenFree:    parseBool(attr(3)),
		}, nil

	default:
		sweet, err := parseLevel("sweetness level", attr(1))
		if err != nil {
			return nil, err
		}
		return &domain.Dessert{
			Base:           base,
			FlavorProfile:  domain.FlavorProfileFromString(attr(0)),
			SweetnessLevel: sweet,
			ContainsNuts:   parseBool(attr(2)),
		}, nil
	}
}

// splitList splits on sep and drops empty entries.
func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseSideDishes(s string) []domain.SideDish {
	var out []domain.SideDish
	for _, entry := range splitList(s, sideSep) {
		name, category, _ := strings.Cut(entry, sidePairSep)
		out = append(out, domain.SideDish{
			Name:     name,
			Category: domain.SideCategoryFromString(category),
		})
	}
	return out
}

func parseInt(what, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %v", domain.ErrMalformedRecord, what, s, err)
	}
	return n, nil
}

func parseFloat(what, s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q: %v", domain.ErrMalformedRecord, what, s, err)
	}
	return f, nil
}

func parseLevel(what, s string) (int, error) {
	n, err := parseInt(what, s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %s %d is negative", domain.ErrInvalidDish, what, n)
	}
	return n, nil
}

// parseBool is true only for the literal "true".
func parseBool(s string) bool { return s == "true" }
