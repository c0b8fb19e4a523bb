// Package zoo implements the zoo engine: the directed area graph, animal
// placement, path queries, and the entrance cash register.
//
// A Zoo is created with its entrance already registered at id 0. All state
// is in memory; one RWMutex per Zoo serializes mutations so a Zoo may be
// shared between goroutines.
package zoo

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ngoguened/zoo/pkg/types"
)

// EntranceID is the id of the entrance in every zoo.
const EntranceID = 0

// Zoo implements types.Zoo.
type Zoo struct {
	mu       sync.RWMutex
	areas    map[int]*types.Area
	housed   map[*types.Animal]int // animal → id of the habitat holding it
	register *Register

	log     *slog.Logger
	metrics *metrics
}

var _ types.Zoo = (*Zoo)(nil)

// New creates a zoo holding only its entrance, with no fee and an empty
// cash machine.
func New(opts ...Option) (*Zoo, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	m, err := newMetrics(o.registerer)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	entrance := types.NewEntrance()
	entrance.Name = types.EntranceName

	z := &Zoo{
		areas:    map[int]*types.Area{EntranceID: entrance},
		housed:   make(map[*types.Animal]int),
		register: NewRegister(),
		log:      o.logger,
		metrics:  m,
	}
	z.metrics.setAreas(len(z.areas))
	return z, nil
}
