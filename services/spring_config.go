package services

import (
	"strings"

	"github.com/railcoach/SpringShop/methods"
)

// SpringTypeDef is one row of the spring-type master, decoded for resolution
type SpringTypeDef struct {
	SpringType  string   `json:"spring_type"`
	CoachTypes  []string `json:"coach_types"`
	MaxPerBogie int      `json:"max_per_bogie"`
}

// SpringConfiguration maps spring position name -> quantity per bogie.
// Insertion order drives the column order of the report tables, so a plain
// map will not do; re-adding an existing name updates the value in place.
type SpringConfiguration struct {
	names  []string
	counts map[string]int
}

func NewSpringConfiguration() *SpringConfiguration {
	return &SpringConfiguration{counts: make(map[string]int)}
}

func (sc *SpringConfiguration) Set(name string, count int) {
	if _, ok := sc.counts[name]; !ok {
		sc.names = append(sc.names, name)
	}
	sc.counts[name] = count
}

func (sc *SpringConfiguration) Get(name string) (int, bool) {
	count, ok := sc.counts[name]
	return count, ok
}

// Names returns position names in insertion order
func (sc *SpringConfiguration) Names() []string {
	out := make([]string, len(sc.names))
	copy(out, sc.names)
	return out
}

// Keys returns the normalized answer keys in insertion order
func (sc *SpringConfiguration) Keys() []string {
	keys := make([]string, 0, len(sc.names))
	for _, name := range sc.names {
		keys = append(keys, methods.PositionKey(name))
	}
	return keys
}

func (sc *SpringConfiguration) Len() int {
	return len(sc.names)
}

// ResolveSpringConfiguration derives the expected spring positions for a coach.
// Air-sprung coaches carry no secondary coil springs, so secondary positions are
// skipped; coil-sprung coaches always get the two secondary coil positions.
// Unknown coach types yield an empty configuration, not an error.
func ResolveSpringConfiguration(coachType string, secondaryType string, master []SpringTypeDef) *SpringConfiguration {
	cfg := NewSpringConfiguration()
	secondaryNorm := strings.ToUpper(strings.TrimSpace(secondaryType))

	for _, def := range master {
		if !methods.IsStringInSlice(coachType, def.CoachTypes) {
			continue
		}
		if strings.Contains(secondaryNorm, "AIR") && strings.Contains(strings.ToLower(def.SpringType), "secondary") {
			continue
		}
		count := def.MaxPerBogie
		if count <= 0 {
			count = 4
		}
		cfg.Set(def.SpringType, count)
	}

	if strings.Contains(secondaryNorm, "COIL") {
		for _, name := range []string{"Secondary Outer", "Secondary Inner"} {
			if _, ok := cfg.Get(name); !ok {
				cfg.Set(name, 2)
			}
		}
	}

	return cfg
}
