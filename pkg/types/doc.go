// Package types defines the Zoo interface, the passive zoo records (areas,
// animals, cash counts, placement outcomes, layouts) and the standard errors
// shared by the engine and the CLI.
//
// Areas and animals are tagged data. Behavior that depends on a tag, such as
// which habitat an animal needs or which species may share a habitat, is
// expressed as lookup tables in this package rather than as methods on
// per-kind types.
package types
