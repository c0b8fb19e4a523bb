package zoo

import (
	"fmt"

	"github.com/ngoguened/zoo/pkg/types"
)

// Build creates a zoo from a layout. Areas are registered in declaration
// order, so the first declared area gets id 1. The returned map gives the id
// of every named area, the entrance included.
//
// Returns an error wrapping ErrInvalidLayout if the layout fails validation,
// or ErrLayoutPlacement if a declared animal is refused by its habitat.
func Build(layout types.Layout, opts ...Option) (*Zoo, map[string]int, error) {
	if err := layout.Validate(); err != nil {
		return nil, nil, err
	}

	z, err := New(opts...)
	if err != nil {
		return nil, nil, err
	}

	ids := map[string]int{types.EntranceName: EntranceID}
	for _, spec := range layout.Areas {
		area, err := types.NewArea(spec.Kind, spec.Capacity)
		if err != nil {
			return nil, nil, fmt.Errorf("area %q: %w", spec.Name, err)
		}
		area.Name = spec.Name

		id, err := z.AddArea(area)
		if err != nil {
			return nil, nil, fmt.Errorf("area %q: %w", spec.Name, err)
		}
		ids[spec.Name] = id
	}

	for _, c := range layout.Connections {
		if err := z.ConnectAreas(ids[c.From], ids[c.To]); err != nil {
			return nil, nil, fmt.Errorf("connection %q -> %q: %w", c.From, c.To, err)
		}
		if c.Bidirectional {
			if err := z.ConnectAreas(ids[c.To], ids[c.From]); err != nil {
				return nil, nil, fmt.Errorf("connection %q -> %q: %w", c.To, c.From, err)
			}
		}
	}

	for _, spec := range layout.Animals {
		animal, err := types.NewAnimal(spec.Nickname, spec.Species)
		if err != nil {
			return nil, nil, fmt.Errorf("animal %q: %w", spec.Nickname, err)
		}
		outcome, err := z.AddAnimal(ids[spec.Area], animal)
		if err != nil {
			return nil, nil, fmt.Errorf("animal %q: %w", spec.Nickname, err)
		}
		if !outcome.Added() {
			return nil, nil, fmt.Errorf("animal %q in %q: %w: %s",
				spec.Nickname, spec.Area, types.ErrLayoutPlacement, outcome)
		}
	}

	z.SetEntranceFee(layout.Fee.Pounds, layout.Fee.Pence)
	cash, err := types.NewCashCount(layout.Cash)
	if err != nil {
		return nil, nil, fmt.Errorf("cash: %w", err)
	}
	z.SetCashSupply(cash)

	return z, ids, nil
}
