package zoo

import (
	"fmt"

	"github.com/ngoguened/zoo/pkg/types"
)

// AddAnimal tries to place animal in the area registered under areaID.
// The checks run in a fixed order and the first failing one decides the
// outcome:
//
//  1. OutcomeNotAHabitat   the area is a human area
//  2. OutcomeWrongHabitat  the area is not the kind the species needs
//  3. OutcomeHabitatFull   the habitat is at capacity
//  4. OutcomeIncompatible  the animal refuses one of the residents
//  5. OutcomeAlreadyHoused this very animal already lives in a habitat
//
// Animals are told apart by pointer: two values with equal fields are two
// animals. Only OutcomeAdded changes anything: the animal is appended to the
// habitat's residents.
func (z *Zoo) AddAnimal(areaID int, animal *types.Animal) (types.Outcome, error) {
	if animal == nil {
		return 0, fmt.Errorf("add animal to %d: %w: nil animal", areaID, types.ErrInvalidAnimal)
	}

	z.mu.Lock()
	defer z.mu.Unlock()

	area, ok := z.areas[areaID]
	if !ok {
		return 0, fmt.Errorf("add animal to %d: %w", areaID, types.ErrUnknownArea)
	}

	outcome := z.placement(area, animal)
	if outcome.Added() {
		area.Admit(animal)
		z.housed[animal] = areaID
	}
	z.metrics.placed(outcome)

	z.log.Debug("animal placement",
		"area_id", areaID,
		"nickname", animal.Nickname,
		"species", animal.Species,
		"outcome", outcome)
	return outcome, nil
}

// placement decides the outcome of placing animal in area without changing
// anything.
func (z *Zoo) placement(area *types.Area, animal *types.Animal) types.Outcome {
	switch {
	case !area.IsHabitat():
		return types.OutcomeNotAHabitat
	case area.Kind() != animal.Habitat():
		return types.OutcomeWrongHabitat
	case area.IsFull():
		return types.OutcomeHabitatFull
	case !types.CompatibleWithAll(animal, area.Animals()):
		return types.OutcomeIncompatible
	}
	if _, housed := z.housed[animal]; housed {
		return types.OutcomeAlreadyHoused
	}
	return types.OutcomeAdded
}
