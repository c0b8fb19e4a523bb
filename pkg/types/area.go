package types

import (
	"fmt"
	"slices"
	"strings"
)

// AreaKind tags an area. Entrance and picnic areas are human areas; cages,
// enclosures and aquariums are habitats and double as the containment kind
// an animal requires.
type AreaKind string

// Area kinds.
const (
	KindEntrance   AreaKind = "entrance"
	KindPicnicArea AreaKind = "picnic_area"
	KindEnclosure  AreaKind = "enclosure"
	KindAquarium   AreaKind = "aquarium"
	KindCage       AreaKind = "cage"
)

// habitatKinds is the set of area kinds that hold animals.
var habitatKinds = map[AreaKind]bool{
	KindEnclosure: true,
	KindAquarium:  true,
	KindCage:      true,
}

// humanKinds is the set of area kinds reserved for visitors.
var humanKinds = map[AreaKind]bool{
	KindEntrance:   true,
	KindPicnicArea: true,
}

// ParseAreaKind converts a case-insensitive name into an AreaKind. Spaces and
// hyphens are accepted in place of underscores ("picnic area").
func ParseAreaKind(s string) (AreaKind, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	k := AreaKind(norm)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAreaKind, s)
	}
	return k, nil
}

// Valid reports whether k is a known area kind.
func (k AreaKind) Valid() bool {
	return habitatKinds[k] || humanKinds[k]
}

// IsHabitat reports whether areas of this kind hold animals.
func (k AreaKind) IsHabitat() bool {
	return habitatKinds[k]
}

// String returns the kind name.
func (k AreaKind) String() string {
	return string(k)
}

// MarshalText implements encoding.TextMarshaler.
func (k AreaKind) MarshalText() ([]byte, error) {
	return []byte(k), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *AreaKind) UnmarshalText(text []byte) error {
	parsed, err := ParseAreaKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Area is a node of the zoo graph. Its id is owned by the graph that
// registers it; the area itself only knows its outgoing edges and, for
// habitats, its capacity and residents.
//
// Area methods do not lock. The Zoo that owns an area serializes access.
type Area struct {
	// Name is an optional label used by layouts and CLI output.
	Name string

	kind      AreaKind
	capacity  int
	adjacent  []int
	residents []*Animal
}

// NewEntrance creates the entrance area. A zoo holds exactly one.
func NewEntrance() *Area {
	return &Area{kind: KindEntrance}
}

// NewPicnicArea creates a human-only picnic area.
func NewPicnicArea() *Area {
	return &Area{kind: KindPicnicArea}
}

// NewEnclosure creates an enclosure habitat holding up to capacity animals.
func NewEnclosure(capacity int) *Area {
	return newHabitat(KindEnclosure, capacity)
}

// NewAquarium creates an aquarium habitat holding up to capacity animals.
func NewAquarium(capacity int) *Area {
	return newHabitat(KindAquarium, capacity)
}

// NewCage creates a cage habitat holding up to capacity animals.
func NewCage(capacity int) *Area {
	return newHabitat(KindCage, capacity)
}

// NewArea creates an area of any kind. Capacity is ignored for human areas.
// Returns ErrUnknownAreaKind if kind is not recognized.
func NewArea(kind AreaKind, capacity int) (*Area, error) {
	switch {
	case kind.IsHabitat():
		return newHabitat(kind, capacity), nil
	case kind.Valid():
		return &Area{kind: kind}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAreaKind, kind)
	}
}

// newHabitat clamps negative capacities to zero.
func newHabitat(kind AreaKind, capacity int) *Area {
	return &Area{kind: kind, capacity: max(capacity, 0)}
}

// Kind returns the area's kind tag.
func (a *Area) Kind() AreaKind {
	return a.kind
}

// IsHabitat reports whether the area holds animals.
func (a *Area) IsHabitat() bool {
	return a.kind.IsHabitat()
}

// Capacity returns the maximum number of residents; 0 for human areas.
func (a *Area) Capacity() int {
	return a.capacity
}

// IsFull reports whether the habitat already holds Capacity animals.
// Human areas are always full.
func (a *Area) IsFull() bool {
	return len(a.residents) >= a.capacity
}

// Animals returns a copy of the residents in insertion order.
func (a *Area) Animals() []*Animal {
	return slices.Clone(a.residents)
}

// Admit appends animal to the residents if the area is a habitat with room
// left, and reports whether it did. Containment and compatibility are the
// caller's responsibility.
func (a *Area) Admit(animal *Animal) bool {
	if !a.IsHabitat() || a.IsFull() {
		return false
	}
	a.residents = append(a.residents, animal)
	return true
}

// AdjacentAreas returns a copy of the outgoing edges in insertion order.
func (a *Area) AdjacentAreas() []int {
	return slices.Clone(a.adjacent)
}

// IsAdjacentTo reports whether an edge leads from this area to areaID.
func (a *Area) IsAdjacentTo(areaID int) bool {
	return slices.Contains(a.adjacent, areaID)
}

// AddAdjacentArea appends an outgoing edge. Duplicates are the caller's
// concern; Zoo.ConnectAreas never adds one.
func (a *Area) AddAdjacentArea(areaID int) {
	a.adjacent = append(a.adjacent, areaID)
}

// RemoveAdjacentArea removes the first outgoing edge to areaID, if any.
func (a *Area) RemoveAdjacentArea(areaID int) {
	if i := slices.Index(a.adjacent, areaID); i >= 0 {
		a.adjacent = slices.Delete(a.adjacent, i, i+1)
	}
}
