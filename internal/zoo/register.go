package zoo

import (
	"fmt"

	"github.com/ngoguened/zoo/pkg/types"
)

// Register is the entrance cash machine: its stock of notes and coins and
// the fee it charges. Register does not lock; Zoo serializes access.
type Register struct {
	stock types.CashCount
	fee   int // pence
}

// NewRegister returns an empty machine charging nothing.
func NewRegister() *Register {
	return &Register{}
}

// SetFee sets the fee to pounds×100 + pence.
func (r *Register) SetFee(pounds, pence int) {
	r.fee = pounds*100 + pence
}

// Fee returns the fee in pence.
func (r *Register) Fee() int {
	return r.fee
}

// Stock overwrites the machine's count for every denomination with the
// count in coins. It replaces rather than adds.
func (r *Register) Stock(coins types.CashCount) {
	for _, d := range types.Denominations {
		// Counts in a CashCount are valid by construction.
		_ = r.stock.Set(d, coins.Count(d))
	}
}

// Supply returns a copy of the machine's stock.
func (r *Register) Supply() types.CashCount {
	return r.stock
}

// MakeChange withdraws amount pence from the stock, greedily: for each
// denomination from largest to smallest it takes units while the remaining
// amount is at least the denomination and the machine still holds one.
//
// Greedy change-making never backtracks, so it can fail when exact change
// exists. With 60p owed and a stock of one 50p and three 20p it takes the
// 50p, is left owing 10p, and fails, although three 20p would do.
//
// The withdrawal happens as the units are taken: on failure the stock has
// already lost the units taken so far. Callers that need all-or-nothing
// behavior snapshot Supply beforehand and restore it, as Pay does.
// Returns ErrInsufficientChange if the amount cannot be reached exactly.
func (r *Register) MakeChange(amount int) (types.CashCount, error) {
	var change types.CashCount
	if amount < 0 {
		return change, fmt.Errorf("make change for %s: %w", types.FormatPence(amount), types.ErrInsufficientChange)
	}

	remaining := amount
	for _, d := range types.Denominations {
		for remaining >= int(d) && r.stock.Count(d) >= 1 {
			_ = change.Set(d, change.Count(d)+1)
			_ = r.stock.Set(d, r.stock.Count(d)-1)
			remaining -= int(d)
		}
	}
	if remaining != 0 {
		return types.CashCount{}, fmt.Errorf("make change for %s: %w: %s short",
			types.FormatPence(amount), types.ErrInsufficientChange, types.FormatPence(remaining))
	}
	return change, nil
}

// Pay runs one entrance fee transaction.
//
// If inserted is worth less than the fee the payment is refused with
// ErrFeeNotCovered and the stock is not touched. Otherwise the inserted cash
// goes into the machine and change for the difference is withdrawn. If the
// machine cannot make exact change, the whole transaction is rolled back,
// deposit and partial withdrawal alike, and the payment is refused with
// ErrInsufficientChange. A refused payment returns the inserted cash.
func (r *Register) Pay(inserted types.CashCount) (types.Payment, error) {
	p := types.Payment{
		Fee:      r.fee,
		Inserted: inserted,
		Returned: inserted,
	}

	value := inserted.Total()
	if value < r.fee {
		return p, fmt.Errorf("pay %s against %s: %w",
			types.FormatPence(value), types.FormatPence(r.fee), types.ErrFeeNotCovered)
	}

	snapshot := r.stock
	r.stock = r.stock.Add(inserted)
	change, err := r.MakeChange(value - r.fee)
	if err != nil {
		r.stock = snapshot
		return p, fmt.Errorf("pay %s against %s: %w",
			types.FormatPence(value), types.FormatPence(r.fee), err)
	}

	p.Returned = change
	p.Accepted = true
	return p, nil
}

// SetEntranceFee sets the entrance fee.
func (z *Zoo) SetEntranceFee(pounds, pence int) {
	z.mu.Lock()
	defer z.mu.Unlock()

	z.register.SetFee(pounds, pence)
	z.log.Debug("entrance fee set", "fee", types.FormatPence(z.register.Fee()))
}

// EntranceFee returns the entrance fee in pence.
func (z *Zoo) EntranceFee() int {
	z.mu.RLock()
	defer z.mu.RUnlock()

	return z.register.Fee()
}

// SetCashSupply overwrites the machine's stock with coins.
func (z *Zoo) SetCashSupply(coins types.CashCount) {
	z.mu.Lock()
	defer z.mu.Unlock()

	z.register.Stock(coins)
	z.log.Debug("cash supply set", "supply", coins.String(), "total", types.FormatPence(coins.Total()))
}

// CashSupply returns a copy of the machine's stock.
func (z *Zoo) CashSupply() types.CashCount {
	z.mu.RLock()
	defer z.mu.RUnlock()

	return z.register.Supply()
}

// MakeChange withdraws change worth amount pence from the machine. Unlike
// Register.MakeChange it is all-or-nothing: on ErrInsufficientChange the
// stock is left as it was.
func (z *Zoo) MakeChange(amount int) (types.CashCount, error) {
	z.mu.Lock()
	defer z.mu.Unlock()

	snapshot := z.register.Supply()
	change, err := z.register.MakeChange(amount)
	if err != nil {
		z.register.Stock(snapshot)
		return types.CashCount{}, err
	}
	return change, nil
}

// PayEntranceFee takes inserted from a visitor and returns the change, or
// inserted unchanged when the payment is refused.
func (z *Zoo) PayEntranceFee(inserted types.CashCount) types.CashCount {
	p, _ := z.Pay(inserted)
	return p.Returned
}

// Pay takes inserted from a visitor and reports the transaction.
func (z *Zoo) Pay(inserted types.CashCount) (types.Payment, error) {
	z.mu.Lock()
	defer z.mu.Unlock()

	p, err := z.register.Pay(inserted)
	z.metrics.paid(err)
	if err != nil {
		z.log.Info("entrance fee refused",
			"inserted", types.FormatPence(inserted.Total()),
			"fee", types.FormatPence(p.Fee),
			"error", err)
		return p, err
	}

	z.log.Debug("entrance fee paid",
		"inserted", types.FormatPence(inserted.Total()),
		"change", p.Returned.String())
	return p, nil
}
