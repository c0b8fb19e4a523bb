package types

import "errors"

// Area graph errors.
var (
	ErrDuplicateArea = errors.New("area already registered")
	ErrProtectedArea = errors.New("the entrance cannot be removed")
	ErrUnknownArea   = errors.New("area not found")
	ErrInvalidPath   = errors.New("path is not allowed")
)

// Record errors.
var (
	ErrInvalidAnimal       = errors.New("invalid animal")
	ErrUnknownSpecies      = errors.New("unknown species")
	ErrUnknownAreaKind     = errors.New("unknown area kind")
	ErrInvalidDenomination = errors.New("must be 2000, 1000, 500, 200, 100, 50, 20, or 10")
	ErrNegativeCount       = errors.New("cash count must not be negative")
)

// Cash register outcomes. These describe a rejected payment; they are
// normal business results and never worth retrying with the same input.
var (
	ErrFeeNotCovered      = errors.New("cash inserted does not cover the entrance fee")
	ErrInsufficientChange = errors.New("machine cannot make exact change")
)

// Layout errors.
var (
	ErrInvalidLayout   = errors.New("invalid layout")
	ErrLayoutPlacement = errors.New("layout animal could not be placed")
)
