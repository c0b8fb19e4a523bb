package types

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Animal is an individual resident of the zoo. Animals are immutable once
// constructed; AnimalID labels two animals that share a nickname in output.
// Placement tells animals apart by pointer, not by AnimalID.
type Animal struct {
	AnimalID string  `json:"animal_id"` // UUID v7, generated on creation.
	Nickname string  `json:"nickname"`
	Species  Species `json:"species"`
}

// NewAnimal creates an animal of the given species.
// Returns ErrUnknownSpecies if the species is not recognized and
// ErrInvalidAnimal if the nickname is blank.
func NewAnimal(nickname string, species Species) (*Animal, error) {
	if !species.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, species)
	}
	if strings.TrimSpace(nickname) == "" {
		return nil, fmt.Errorf("%w: nickname must not be empty", ErrInvalidAnimal)
	}
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate animal id: %w", err)
	}
	return &Animal{
		AnimalID: id.String(),
		Nickname: nickname,
		Species:  species,
	}, nil
}

// Habitat returns the kind of area this animal must be placed in.
func (a *Animal) Habitat() AreaKind {
	return a.Species.Habitat()
}

// CompatibleWith reports whether this animal accepts other as a neighbor.
func (a *Animal) CompatibleWith(other *Animal) bool {
	return Compatible(a.Species, other.Species)
}
