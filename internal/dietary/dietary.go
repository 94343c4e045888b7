// Package dietary resolves operator input into dietary requests. Input is
// either a flag list ("vegetarian,gluten_free") or the name of a profile.
// Profiles come built in and can be extended from a YAML file:
//
//	profiles:
//	  pescatarian:
//	    vegetarian: true
//	  keto:
//	    low_sugar: true
//	    gluten_free: true
package dietary

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/bistro/internal/domain"
	"github.com/hammamikhairi/bistro/internal/logger"
)

// flagSetters maps a flag name, and its aliases, to the field it sets.
var flagSetters = map[string]func(*domain.DietaryRequest){
	"vegetarian":  func(r *domain.DietaryRequest) { r.Vegetarian = true },
	"vegan":       func(r *domain.DietaryRequest) { r.Vegan = true },
	"gluten_free": func(r *domain.DietaryRequest) { r.GlutenFree = true },
	"glutenfree":  func(r *domain.DietaryRequest) { r.GlutenFree = true },
	"nut_free":    func(r *domain.DietaryRequest) { r.NutFree = true },
	"nutfree":     func(r *domain.DietaryRequest) { r.NutFree = true },
	"low_sodium":  func(r *domain.DietaryRequest) { r.LowSodium = true },
	"lowsodium":   func(r *domain.DietaryRequest) { r.LowSodium = true },
	"low_sugar":   func(r *domain.DietaryRequest) { r.LowSugar = true },
	"lowsugar":    func(r *domain.DietaryRequest) { r.LowSugar = true },
}

// ParseFlags turns a comma or space separated flag list into a request.
// Dashes count as underscores and case is ignored.
func ParseFlags(list string) (domain.DietaryRequest, error) {
	var req domain.DietaryRequest
	tokens := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	for _, tok := range tokens {
		name := strings.ReplaceAll(strings.ToLower(tok), "-", "_")
		set, ok := flagSetters[name]
		if !ok {
			return domain.DietaryRequest{}, fmt.Errorf("%w: %q", domain.ErrUnknownDietaryFlag, tok)
		}
		set(&req)
	}
	return req, nil
}

// flagRequest returns the request a lone flag name produces.
func flagRequest(name string) (domain.DietaryRequest, bool) {
	set, ok := flagSetters[name]
	if !ok {
		return domain.DietaryRequest{}, false
	}
	var req domain.DietaryRequest
	set(&req)
	return req, true
}

// builtin profiles, always available. A profile never takes the name of
// a flag unless it sets exactly that flag.
func builtin() map[string]domain.DietaryRequest {
	return map[string]domain.DietaryRequest{
		"vegetarian":  {Vegetarian: true},
		"plant_based": {Vegetarian: true, Vegan: true},
		"celiac":      {GlutenFree: true},
		"allergy":     {NutFree: true},
		"heart":       {LowSodium: true, LowSugar: true},
		"everything":  {Vegetarian: true, Vegan: true, GlutenFree: true, NutFree: true, LowSodium: true, LowSugar: true},
	}
}

// Profiles is a named set of dietary requests.
type Profiles struct {
	byName map[string]domain.DietaryRequest
	log    *logger.Logger
}

// NewProfiles returns the built-in profiles.
func NewProfiles(log *logger.Logger) *Profiles {
	return &Profiles{byName: builtin(), log: log}
}

type profileFile struct {
	Profiles map[string]domain.DietaryRequest `yaml:"profiles"`
}

// Load merges profiles from a YAML document. Entries with the name of an
// existing profile replace it. A document with a profile named after a
// flag that sets anything else is rejected whole.
func (p *Profiles) Load(r io.Reader) error {
	var doc profileFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return fmt.Errorf("decoding dietary profiles: %w", err)
	}
	for name, req := range doc.Profiles {
		if flag, ok := flagRequest(strings.ToLower(name)); ok && req != flag {
			return fmt.Errorf("profile %q shadows the flag of the same name with %s", name, req)
		}
	}
	for name, req := range doc.Profiles {
		key := strings.ToLower(name)
		if _, ok := p.byName[key]; ok {
			p.log.Debug("profile %q overridden", key)
		}
		p.byName[key] = req
	}
	p.log.Debug("loaded %d dietary profiles", len(doc.Profiles))
	return nil
}

// LoadFile merges profiles from the YAML file at path.
func (p *Profiles) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dietary profiles: %w", err)
	}
	defer f.Close()
	return p.Load(f)
}

// Get returns the named profile.
func (p *Profiles) Get(name string) (domain.DietaryRequest, error) {
	req, ok := p.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return domain.DietaryRequest{}, fmt.Errorf("%w: %q", domain.ErrUnknownProfile, name)
	}
	return req, nil
}

// Names lists the profile names in alphabetical order.
func (p *Profiles) Names() []string {
	out := make([]string, 0, len(p.byName))
	for name := range p.byName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Resolve interprets input as a profile name first, then as a flag list.
func (p *Profiles) Resolve(input string) (domain.DietaryRequest, error) {
	if req, err := p.Get(input); err == nil {
		return req, nil
	}
	req, err := ParseFlags(input)
	if err != nil {
		return domain.DietaryRequest{}, fmt.Errorf("%q is neither a profile nor a flag list: %w", input, err)
	}
	return req, nil
}
