package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Denomination is the value of a note or coin in pence.
type Denomination int

// Accepted denominations, largest first.
const (
	TwentyPoundNote Denomination = 2000
	TenPoundNote    Denomination = 1000
	FivePoundNote   Denomination = 500
	TwoPoundCoin    Denomination = 200
	OnePoundCoin    Denomination = 100
	FiftyPenceCoin  Denomination = 50
	TwentyPenceCoin Denomination = 20
	TenPenceCoin    Denomination = 10
)

// Denominations lists every accepted denomination from largest to smallest.
// Change is always computed in this order.
var Denominations = []Denomination{
	TwentyPoundNote,
	TenPoundNote,
	FivePoundNote,
	TwoPoundCoin,
	OnePoundCoin,
	FiftyPenceCoin,
	TwentyPenceCoin,
	TenPenceCoin,
}

// denominationIndex maps a denomination to its slot in CashCount.
var denominationIndex = map[Denomination]int{
	TwentyPoundNote: 0,
	TenPoundNote:    1,
	FivePoundNote:   2,
	TwoPoundCoin:    3,
	OnePoundCoin:    4,
	FiftyPenceCoin:  5,
	TwentyPenceCoin: 6,
	TenPenceCoin:    7,
}

// ParseDenomination validates a value in pence.
// Returns ErrInvalidDenomination for anything outside the accepted set.
func ParseDenomination(pence int) (Denomination, error) {
	d := Denomination(pence)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidDenomination, pence)
	}
	return d, nil
}

// Valid reports whether d is an accepted denomination.
func (d Denomination) Valid() bool {
	_, ok := denominationIndex[d]
	return ok
}

// IsNote reports whether d is a banknote rather than a coin.
func (d Denomination) IsNote() bool {
	return d >= FivePoundNote
}

// String renders the denomination as it is printed on the cash: "£20", "50p".
func (d Denomination) String() string {
	if d >= OnePoundCoin {
		return fmt.Sprintf("£%d", int(d)/100)
	}
	return fmt.Sprintf("%dp", int(d))
}

// CashCount holds a number of notes and coins per denomination. It describes
// machine stock, a payment inserted by a visitor, or change handed back.
// The zero value is an empty count. CashCount is a value type: assigning it
// copies the counts.
type CashCount struct {
	counts [8]int
}

// NewCashCount builds a CashCount from a denomination → count map.
// Returns ErrInvalidDenomination or ErrNegativeCount on bad input.
func NewCashCount(counts map[int]int) (CashCount, error) {
	var c CashCount
	for pence, n := range counts {
		d, err := ParseDenomination(pence)
		if err != nil {
			return CashCount{}, err
		}
		if err := c.Set(d, n); err != nil {
			return CashCount{}, err
		}
	}
	return c, nil
}

// Count returns the number of units held for d; 0 for an unknown denomination.
func (c CashCount) Count(d Denomination) int {
	i, ok := denominationIndex[d]
	if !ok {
		return 0
	}
	return c.counts[i]
}

// Set overwrites the number of units held for d.
// Returns ErrInvalidDenomination or ErrNegativeCount.
func (c *CashCount) Set(d Denomination, n int) error {
	i, ok := denominationIndex[d]
	if !ok {
		return fmt.Errorf("%w: got %d", ErrInvalidDenomination, int(d))
	}
	if n < 0 {
		return fmt.Errorf("%w: %s x%d", ErrNegativeCount, d, n)
	}
	c.counts[i] = n
	return nil
}

// Add returns the sum of two counts, denomination by denomination.
func (c CashCount) Add(other CashCount) CashCount {
	for i := range c.counts {
		c.counts[i] += other.counts[i]
	}
	return c
}

// Total returns the value of the count in pence.
func (c CashCount) Total() int {
	total := 0
	for _, d := range Denominations {
		total += c.Count(d) * int(d)
	}
	return total
}

// IsZero reports whether the count holds no cash at all.
func (c CashCount) IsZero() bool {
	return c.counts == [8]int{}
}

// Map returns the non-zero counts keyed by denomination value in pence.
func (c CashCount) Map() map[int]int {
	m := make(map[int]int)
	for _, d := range Denominations {
		if n := c.Count(d); n > 0 {
			m[int(d)] = n
		}
	}
	return m
}

// MarshalJSON encodes the count as an object keyed by denomination in pence.
func (c CashCount) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Map())
}

// UnmarshalJSON decodes an object keyed by denomination in pence.
func (c *CashCount) UnmarshalJSON(data []byte) error {
	var m map[int]int
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	parsed, err := NewCashCount(m)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// String lists the non-zero counts largest first, e.g. "£10 x1, 50p x2".
func (c CashCount) String() string {
	var parts []string
	for _, d := range Denominations {
		if n := c.Count(d); n > 0 {
			parts = append(parts, fmt.Sprintf("%s x%d", d, n))
		}
	}
	if len(parts) == 0 {
		return "nothing"
	}
	return strings.Join(parts, ", ")
}

// FormatPence renders an amount in pence as pounds, e.g. 1250 → "£12.50".
func FormatPence(pence int) string {
	sign := ""
	if pence < 0 {
		sign = "-"
		pence = -pence
	}
	return fmt.Sprintf("%s£%d.%02d", sign, pence/100, pence%100)
}
