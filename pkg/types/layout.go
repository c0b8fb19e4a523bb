package types

import (
	"errors"
	"fmt"
)

// EntranceName is the layout name of the entrance. Every zoo has one, so
// layouts reference it without declaring it.
const EntranceName = "entrance"

// Layout is a declarative description of a zoo: the areas to register, the
// paths between them, the animals to place, and the cash machine setup.
type Layout struct {
	Fee         Fee              `yaml:"fee" mapstructure:"fee"`
	Cash        map[int]int      `yaml:"cash,omitempty" mapstructure:"cash"`
	Areas       []AreaSpec       `yaml:"areas" mapstructure:"areas"`
	Connections []ConnectionSpec `yaml:"connections,omitempty" mapstructure:"connections"`
	Animals     []AnimalSpec     `yaml:"animals,omitempty" mapstructure:"animals"`
}

// Fee is the entrance fee split into pounds and pence.
type Fee struct {
	Pounds int `yaml:"pounds" mapstructure:"pounds"`
	Pence  int `yaml:"pence" mapstructure:"pence"`
}

// AreaSpec declares one area. Capacity is ignored for human areas.
type AreaSpec struct {
	Name     string   `yaml:"name" mapstructure:"name"`
	Kind     AreaKind `yaml:"kind" mapstructure:"kind"`
	Capacity int      `yaml:"capacity,omitempty" mapstructure:"capacity"`
}

// ConnectionSpec declares a path from one named area to another.
type ConnectionSpec struct {
	From          string `yaml:"from" mapstructure:"from"`
	To            string `yaml:"to" mapstructure:"to"`
	Bidirectional bool   `yaml:"bidirectional,omitempty" mapstructure:"bidirectional"`
}

// AnimalSpec declares an animal and the named area it lives in.
type AnimalSpec struct {
	Nickname string  `yaml:"nickname" mapstructure:"nickname"`
	Species  Species `yaml:"species" mapstructure:"species"`
	Area     string  `yaml:"area" mapstructure:"area"`
}

// Validate checks that the layout is self-consistent. Every problem found is
// reported, joined, and wrapped in ErrInvalidLayout. Whether animals fit
// their habitats is only known once they are placed and is not checked here.
func (l Layout) Validate() error {
	var errs []error

	if l.Fee.Pounds < 0 || l.Fee.Pence < 0 {
		errs = append(errs, fmt.Errorf("fee must not be negative"))
	}
	for pence, n := range l.Cash {
		if _, err := ParseDenomination(pence); err != nil {
			errs = append(errs, fmt.Errorf("cash: %w", err))
			continue
		}
		if n < 0 {
			errs = append(errs, fmt.Errorf("cash: %w: %d x%d", ErrNegativeCount, pence, n))
		}
	}

	names := map[string]bool{EntranceName: true}
	for i, a := range l.Areas {
		switch {
		case a.Name == "":
			errs = append(errs, fmt.Errorf("areas[%d]: name must not be empty", i))
		case names[a.Name]:
			errs = append(errs, fmt.Errorf("areas[%d]: %w: %q", i, ErrDuplicateArea, a.Name))
		}
		names[a.Name] = true

		if !a.Kind.Valid() {
			errs = append(errs, fmt.Errorf("areas[%d]: %w: %q", i, ErrUnknownAreaKind, a.Kind))
		} else if a.Kind == KindEntrance {
			errs = append(errs, fmt.Errorf("areas[%d]: %w: the entrance is implicit", i, ErrDuplicateArea))
		}
		if a.Capacity < 0 {
			errs = append(errs, fmt.Errorf("areas[%d]: capacity must not be negative", i))
		}
	}

	for i, c := range l.Connections {
		if !names[c.From] {
			errs = append(errs, fmt.Errorf("connections[%d]: %w: %q", i, ErrUnknownArea, c.From))
		}
		if !names[c.To] {
			errs = append(errs, fmt.Errorf("connections[%d]: %w: %q", i, ErrUnknownArea, c.To))
		}
	}

	for i, a := range l.Animals {
		if a.Nickname == "" {
			errs = append(errs, fmt.Errorf("animals[%d]: %w: nickname must not be empty", i, ErrInvalidAnimal))
		}
		if !a.Species.Valid() {
			errs = append(errs, fmt.Errorf("animals[%d]: %w: %q", i, ErrUnknownSpecies, a.Species))
		}
		if !names[a.Area] {
			errs = append(errs, fmt.Errorf("animals[%d]: %w: %q", i, ErrUnknownArea, a.Area))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidLayout, errors.Join(errs...))
	}
	return nil
}
