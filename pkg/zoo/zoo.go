// Package zoo is the public entry point for building zoos. It exposes the
// engine's constructors while keeping the implementation internal.
//
// Example:
//
//	z, err := zoo.New()
//	if err != nil {
//	    return err
//	}
//	id, _ := z.AddArea(types.NewEnclosure(4))
//	stripes, _ := types.NewAnimal("Stripes", types.SpeciesZebra)
//	outcome, _ := z.AddAnimal(id, stripes)
package zoo

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ngoguened/zoo/internal/zoo"
	"github.com/ngoguened/zoo/pkg/types"
)

// Version is the release of the zoo module.
const Version = "0.1.0"

// Option configures a zoo built by New or FromLayout.
type Option = zoo.Option

// WithLogger sets the logger used by the zoo.
func WithLogger(l *slog.Logger) Option {
	return zoo.WithLogger(l)
}

// WithRegisterer registers the zoo's Prometheus collectors on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return zoo.WithRegisterer(reg)
}

// New creates a zoo holding only its entrance.
func New(opts ...Option) (types.Zoo, error) {
	z, err := zoo.New(opts...)
	if err != nil {
		return nil, err
	}
	return z, nil
}

// FromLayout creates a zoo from a layout and returns it with the id of every
// named area.
func FromLayout(layout types.Layout, opts ...Option) (types.Zoo, map[string]int, error) {
	z, ids, err := zoo.Build(layout, opts...)
	if err != nil {
		return nil, nil, err
	}
	return z, ids, nil
}
