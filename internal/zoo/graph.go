package zoo

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ngoguened/zoo/pkg/types"
)

// allocateID returns the id area would be registered under: 0 for an
// entrance, otherwise the smallest positive id not in use. The caller holds
// the lock.
func (z *Zoo) allocateID(area *types.Area) int {
	if area.Kind() == types.KindEntrance {
		return EntranceID
	}
	id := 1
	for {
		if _, taken := z.areas[id]; !taken {
			return id
		}
		id++
	}
}

// AddArea registers area under a freshly allocated id and returns the id.
// Areas are compared by identity: registering the same *Area twice fails,
// two distinct areas with equal contents do not. A second entrance collides
// with id 0 and fails the same way.
//
// Residents the area already holds, such as those of a removed area added
// back, are indexed as housed here. If one of them already lives in another
// registered habitat the add fails with ErrDuplicateArea.
func (z *Zoo) AddArea(area *types.Area) (int, error) {
	if area == nil {
		return 0, fmt.Errorf("add area: %w: nil area", types.ErrUnknownArea)
	}

	z.mu.Lock()
	defer z.mu.Unlock()

	for id, existing := range z.areas {
		if existing == area {
			return 0, fmt.Errorf("add area: %w: already registered as %d", types.ErrDuplicateArea, id)
		}
	}

	id := z.allocateID(area)
	if _, taken := z.areas[id]; taken {
		return 0, fmt.Errorf("add area: %w: id %d is taken by the entrance", types.ErrDuplicateArea, id)
	}
	residents := area.Animals()
	for i, animal := range residents {
		if other, housed := z.housed[animal]; housed {
			return 0, fmt.Errorf("add area: %w: resident %q is already housed in %d",
				types.ErrDuplicateArea, animal.Nickname, other)
		}
		if slices.Contains(residents[:i], animal) {
			return 0, fmt.Errorf("add area: %w: resident %q is listed twice",
				types.ErrDuplicateArea, animal.Nickname)
		}
	}
	z.areas[id] = area
	for _, animal := range residents {
		z.housed[animal] = id
	}
	z.metrics.setAreas(len(z.areas))

	z.log.Debug("area added", "area_id", id, "kind", area.Kind(), "capacity", area.Capacity())
	return id, nil
}

// RemoveArea unregisters the area and releases its residents. Edges from
// other areas that lead to it are kept; path checks still accept a hop
// along such an edge, and Visit records nothing for the missing area.
func (z *Zoo) RemoveArea(areaID int) error {
	z.mu.Lock()
	defer z.mu.Unlock()

	area, ok := z.areas[areaID]
	if !ok {
		return fmt.Errorf("remove area %d: %w", areaID, types.ErrUnknownArea)
	}
	if area.Kind() == types.KindEntrance {
		return fmt.Errorf("remove area %d: %w", areaID, types.ErrProtectedArea)
	}

	delete(z.areas, areaID)
	for _, animal := range area.Animals() {
		delete(z.housed, animal)
	}
	z.metrics.setAreas(len(z.areas))

	z.log.Debug("area removed", "area_id", areaID, "kind", area.Kind())
	return nil
}

// GetArea returns the area registered under areaID.
func (z *Zoo) GetArea(areaID int) (*types.Area, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	area, ok := z.areas[areaID]
	if !ok {
		return nil, fmt.Errorf("area %d: %w", areaID, types.ErrUnknownArea)
	}
	return area, nil
}

// AreaIDs returns every registered id in ascending order.
func (z *Zoo) AreaIDs() []int {
	z.mu.RLock()
	defer z.mu.RUnlock()

	return slices.Sorted(maps.Keys(z.areas))
}

// ConnectAreas adds a one-way edge from one area to another. A second call
// with the same pair changes nothing. Call it twice, swapping the ids, for a
// two-way path.
func (z *Zoo) ConnectAreas(fromAreaID, toAreaID int) error {
	z.mu.Lock()
	defer z.mu.Unlock()

	from, ok := z.areas[fromAreaID]
	if !ok {
		return fmt.Errorf("connect %d -> %d: %w: %d", fromAreaID, toAreaID, types.ErrUnknownArea, fromAreaID)
	}
	if _, ok := z.areas[toAreaID]; !ok {
		return fmt.Errorf("connect %d -> %d: %w: %d", fromAreaID, toAreaID, types.ErrUnknownArea, toAreaID)
	}
	if from.IsAdjacentTo(toAreaID) {
		return nil
	}

	from.AddAdjacentArea(toAreaID)
	z.log.Debug("areas connected", "from", fromAreaID, "to", toAreaID)
	return nil
}

// DisconnectAreas removes the edge from one area to another, if there is
// one. The target need not be registered, so edges left behind by
// RemoveArea can be cleared.
// Returns ErrUnknownArea if fromAreaID is not registered.
func (z *Zoo) DisconnectAreas(fromAreaID, toAreaID int) error {
	z.mu.Lock()
	defer z.mu.Unlock()

	from, ok := z.areas[fromAreaID]
	if !ok {
		return fmt.Errorf("disconnect %d -> %d: %w: %d", fromAreaID, toAreaID, types.ErrUnknownArea, fromAreaID)
	}
	if !from.IsAdjacentTo(toAreaID) {
		return nil
	}

	from.RemoveAdjacentArea(toAreaID)
	z.log.Debug("areas disconnected", "from", fromAreaID, "to", toAreaID)
	return nil
}
