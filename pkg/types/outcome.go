package types

// Outcome is the result of trying to place an animal in an area.
type Outcome int

// Placement outcomes, in the order the checks run. The numeric values of the
// first five match the historical result codes reported by Code.
const (
	OutcomeAdded Outcome = iota
	OutcomeNotAHabitat
	OutcomeWrongHabitat
	OutcomeHabitatFull
	OutcomeIncompatible
	OutcomeAlreadyHoused
)

var outcomeNames = map[Outcome]string{
	OutcomeAdded:         "animal_added",
	OutcomeNotAHabitat:   "not_a_habitat",
	OutcomeWrongHabitat:  "wrong_habitat",
	OutcomeHabitatFull:   "habitat_full",
	OutcomeIncompatible:  "incompatible_inhabitants",
	OutcomeAlreadyHoused: "already_housed",
}

// String returns the snake_case name of the outcome.
func (o Outcome) String() string {
	if name, ok := outcomeNames[o]; ok {
		return name
	}
	return "unknown"
}

// Code returns the outcome as a byte-sized result code.
func (o Outcome) Code() byte {
	return byte(o)
}

// Added reports whether the animal was placed.
func (o Outcome) Added() bool {
	return o == OutcomeAdded
}
