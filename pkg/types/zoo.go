package types

// Zoo is the full operational surface of a zoo: the area graph, animal
// placement, path queries, and the entrance cash machine.
type Zoo interface {
	// AddArea registers area and returns its id. The entrance always gets
	// id 0; other areas get the smallest free positive id.
	// Returns ErrDuplicateArea if the same area is already registered or a
	// second entrance is added.
	AddArea(area *Area) (int, error)

	// RemoveArea unregisters an area. Edges pointing at it from other areas
	// are left in place.
	// Returns ErrProtectedArea for the entrance and ErrUnknownArea for an
	// id that is not registered.
	RemoveArea(areaID int) error

	// GetArea returns the area registered under areaID.
	// Returns ErrUnknownArea if there is none.
	GetArea(areaID int) (*Area, error)

	// AreaIDs returns every registered id in ascending order.
	AreaIDs() []int

	// AddAnimal tries to place animal in the area. The outcome reports
	// whether the animal was added and, if not, which rule refused it.
	// Returns ErrUnknownArea or ErrInvalidAnimal for bad arguments.
	AddAnimal(areaID int, animal *Animal) (Outcome, error)

	// ConnectAreas adds a one-way edge. Connecting twice is a no-op.
	// Returns ErrUnknownArea if either id is not registered.
	ConnectAreas(fromAreaID, toAreaID int) error

	// DisconnectAreas removes a one-way edge. Removing a missing edge is a
	// no-op. Returns ErrUnknownArea if fromAreaID is not registered.
	DisconnectAreas(fromAreaID, toAreaID int) error

	// IsPathAllowed reports whether a visitor can walk the given ids in order.
	// Each hop needs a registered source and an edge to the next id; an edge
	// left pointing at a removed area still counts.
	IsPathAllowed(areaIDs []int) bool

	// Visit returns the nicknames of the animals seen along the path, in
	// order; ids no longer registered contribute nothing. Returns
	// ErrInvalidPath if the path is not allowed.
	Visit(areaIDs []int) ([]string, error)

	// FindUnreachableAreas returns the ids that cannot be reached from the
	// entrance, ascending.
	FindUnreachableAreas() []int

	// SetEntranceFee sets the fee charged at the entrance.
	SetEntranceFee(pounds, pence int)

	// EntranceFee returns the fee in pence.
	EntranceFee() int

	// SetCashSupply overwrites the machine's stock with coins.
	SetCashSupply(coins CashCount)

	// CashSupply returns a copy of the machine's stock.
	CashSupply() CashCount

	// MakeChange withdraws change worth amount pence from the machine.
	// Returns ErrInsufficientChange, leaving the stock untouched, when the
	// greedy withdrawal cannot reach the exact amount.
	MakeChange(amount int) (CashCount, error)

	// PayEntranceFee takes cash from a visitor. It returns the change on
	// success, or the inserted cash unchanged when the payment is refused.
	PayEntranceFee(inserted CashCount) CashCount

	// Pay is PayEntranceFee with the outcome spelled out. The error is
	// ErrFeeNotCovered or ErrInsufficientChange on refusal.
	Pay(inserted CashCount) (Payment, error)
}

// Payment describes one entrance fee transaction.
type Payment struct {
	Fee      int       `json:"fee"`      // Fee in pence at the time of payment.
	Inserted CashCount `json:"inserted"` // Cash the visitor put in.
	Returned CashCount `json:"returned"` // Change, or Inserted when refused.
	Accepted bool      `json:"accepted"` // Whether the machine kept the fee.
}
