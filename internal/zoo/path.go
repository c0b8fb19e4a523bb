package zoo

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ngoguened/zoo/pkg/types"
)

// IsPathAllowed reports whether a visitor can walk areaIDs in order. An
// empty path is not allowed. A single id is allowed if it names a registered
// area. Longer paths need every hop to start at a registered area and follow
// one of its edges; the last id is only checked through that edge, so an
// edge left pointing at a removed area can still be walked.
func (z *Zoo) IsPathAllowed(areaIDs []int) bool {
	z.mu.RLock()
	defer z.mu.RUnlock()

	return z.pathAllowed(areaIDs)
}

// pathAllowed is IsPathAllowed without locking.
func (z *Zoo) pathAllowed(areaIDs []int) bool {
	switch len(areaIDs) {
	case 0:
		return false
	case 1:
		_, ok := z.areas[areaIDs[0]]
		return ok
	}
	for i := 0; i+1 < len(areaIDs); i++ {
		area, ok := z.areas[areaIDs[i]]
		if !ok || !area.IsAdjacentTo(areaIDs[i+1]) {
			return false
		}
	}
	return true
}

// Visit returns the nicknames a visitor writes down walking areaIDs. Each
// habitat on the path contributes its residents in the order they were
// added, once per time it is visited; human areas and ids that are no longer
// registered contribute nothing.
// Returns ErrInvalidPath if the path is not allowed. A valid path past empty
// habitats yields an empty, non-nil slice.
func (z *Zoo) Visit(areaIDs []int) ([]string, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	if !z.pathAllowed(areaIDs) {
		return nil, fmt.Errorf("visit %v: %w", areaIDs, types.ErrInvalidPath)
	}

	names := []string{}
	for _, id := range areaIDs {
		area, ok := z.areas[id]
		if !ok || !area.IsHabitat() {
			continue
		}
		for _, animal := range area.Animals() {
			names = append(names, animal.Nickname)
		}
	}
	return names, nil
}

// reachWalker carries the state of one reachability search.
type reachWalker struct {
	areas   map[int]*types.Area
	visited map[int]bool
}

// traverse marks id and, depth first, everything reachable from it.
// Edges to unregistered ids are skipped.
func (w *reachWalker) traverse(id int) {
	area, ok := w.areas[id]
	if !ok || w.visited[id] {
		return
	}
	w.visited[id] = true
	for _, next := range area.AdjacentAreas() {
		w.traverse(next)
	}
}

// FindUnreachableAreas returns, ascending, the ids no visitor can reach by
// following edges from the entrance. Runs in O(V+E).
func (z *Zoo) FindUnreachableAreas() []int {
	z.mu.RLock()
	defer z.mu.RUnlock()

	w := &reachWalker{
		areas:   z.areas,
		visited: make(map[int]bool, len(z.areas)),
	}
	w.traverse(EntranceID)

	unreachable := []int{}
	for _, id := range slices.Sorted(maps.Keys(z.areas)) {
		if !w.visited[id] {
			unreachable = append(unreachable, id)
		}
	}
	return unreachable
}
