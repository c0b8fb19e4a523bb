package types

import (
	"fmt"
	"strings"
)

// Species is the closed set of animals the zoo can house.
type Species string

// Known species.
const (
	SpeciesBuzzard  Species = "buzzard"
	SpeciesGazelle  Species = "gazelle"
	SpeciesLion     Species = "lion"
	SpeciesParrot   Species = "parrot"
	SpeciesSeal     Species = "seal"
	SpeciesShark    Species = "shark"
	SpeciesStarfish Species = "starfish"
	SpeciesZebra    Species = "zebra"
)

// AllSpecies lists every species in a stable order.
var AllSpecies = []Species{
	SpeciesBuzzard,
	SpeciesGazelle,
	SpeciesLion,
	SpeciesParrot,
	SpeciesSeal,
	SpeciesShark,
	SpeciesStarfish,
	SpeciesZebra,
}

// speciesHabitat maps each species to the habitat kind that must contain it.
var speciesHabitat = map[Species]AreaKind{
	SpeciesBuzzard:  KindCage,
	SpeciesParrot:   KindCage,
	SpeciesGazelle:  KindEnclosure,
	SpeciesLion:     KindEnclosure,
	SpeciesZebra:    KindEnclosure,
	SpeciesSeal:     KindAquarium,
	SpeciesShark:    KindAquarium,
	SpeciesStarfish: KindAquarium,
}

// compatibility lists, for each species, the species it accepts as a
// neighbor. The table is read in one direction only: Compatible(a, b) looks
// up a's row. Seals accept starfish but not sharks.
var compatibility = map[Species]map[Species]bool{
	SpeciesBuzzard:  {SpeciesBuzzard: true},
	SpeciesParrot:   {SpeciesParrot: true},
	SpeciesGazelle:  {SpeciesGazelle: true, SpeciesZebra: true},
	SpeciesZebra:    {SpeciesGazelle: true, SpeciesZebra: true},
	SpeciesLion:     {SpeciesLion: true},
	SpeciesSeal:     {SpeciesSeal: true, SpeciesStarfish: true},
	SpeciesShark:    {SpeciesShark: true, SpeciesStarfish: true},
	SpeciesStarfish: {SpeciesStarfish: true, SpeciesSeal: true, SpeciesShark: true},
}

// ParseSpecies converts a case-insensitive species name into a Species.
// Returns ErrUnknownSpecies for anything outside the closed set.
func ParseSpecies(s string) (Species, error) {
	sp := Species(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := speciesHabitat[sp]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSpecies, s)
	}
	return sp, nil
}

// Valid reports whether s is one of the known species.
func (s Species) Valid() bool {
	_, ok := speciesHabitat[s]
	return ok
}

// Habitat returns the kind of area that must contain this species, or the
// empty kind for an unknown species.
func (s Species) Habitat() AreaKind {
	return speciesHabitat[s]
}

// String returns the species name.
func (s Species) String() string {
	return string(s)
}

// MarshalText implements encoding.TextMarshaler.
func (s Species) MarshalText() ([]byte, error) {
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so species decode from
// YAML and config files in any letter case.
func (s *Species) UnmarshalText(text []byte) error {
	sp, err := ParseSpecies(string(text))
	if err != nil {
		return err
	}
	*s = sp
	return nil
}

// Compatible reports whether an animal of species a accepts living with an
// animal of species b. The rule is looked up from a's side only.
func Compatible(a, b Species) bool {
	return compatibility[a][b]
}

// CompatibleWithAll reports whether animal accepts every member of group.
// An empty group is vacuously compatible.
func CompatibleWithAll(animal *Animal, group []*Animal) bool {
	for _, other := range group {
		if !animal.CompatibleWith(other) {
			return false
		}
	}
	return true
}
