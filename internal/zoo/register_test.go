package zoo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/ngoguened/zoo/pkg/types"
)

func TestRegisterSetFee(t *testing.T) {
	r := NewRegister()
	assert.Equal(t, 0, r.Fee())

	r.SetFee(12, 50)
	assert.Equal(t, 1250, r.Fee())

	r.SetFee(0, 250)
	assert.Equal(t, 250, r.Fee(), "pence above 99 carry into pounds")
}

func TestRegisterStockOverwrites(t *testing.T) {
	r := NewRegister()
	r.Stock(mustCash(t, map[int]int{1000: 2, 50: 3}))
	r.Stock(mustCash(t, map[int]int{50: 1}))

	assert.Equal(t, map[int]int{50: 1}, r.Supply().Map())
}

func TestRegisterMakeChange(t *testing.T) {
	tests := []struct {
		name       string
		stock      map[int]int
		amount     int
		want       map[int]int
		wantErr    bool
		wantRemain map[int]int
	}{
		{
			name:       "largest units first",
			stock:      map[int]int{50: 1, 20: 1, 10: 1},
			amount:     70,
			want:       map[int]int{50: 1, 20: 1},
			wantRemain: map[int]int{10: 1},
		},
		{
			name:       "small coins only",
			stock:      map[int]int{10: 7},
			amount:     70,
			want:       map[int]int{10: 7},
			wantRemain: map[int]int{},
		},
		{
			name:       "zero amount",
			stock:      map[int]int{100: 1},
			amount:     0,
			want:       map[int]int{},
			wantRemain: map[int]int{100: 1},
		},
		{
			name:       "skips notes larger than the amount",
			stock:      map[int]int{2000: 1, 500: 1, 200: 2},
			amount:     900,
			want:       map[int]int{500: 1, 200: 2},
			wantRemain: map[int]int{2000: 1},
		},
		{
			name:       "not enough small coins",
			stock:      map[int]int{10: 6},
			amount:     70,
			wantErr:    true,
			wantRemain: map[int]int{},
		},
		{
			name:       "greedy misses exact change",
			stock:      map[int]int{50: 1, 20: 3},
			amount:     60,
			wantErr:    true,
			wantRemain: map[int]int{20: 3},
		},
		{
			name:       "negative amount",
			stock:      map[int]int{10: 1},
			amount:     -10,
			wantErr:    true,
			wantRemain: map[int]int{10: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegister()
			r.Stock(mustCash(t, tt.stock))

			change, err := r.MakeChange(tt.amount)
			if tt.wantErr {
				assert.ErrorIs(t, err, types.ErrInsufficientChange)
				assert.True(t, change.IsZero())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, change.Map())
				assert.Equal(t, tt.amount, change.Total())
			}
			assert.Equal(t, tt.wantRemain, r.Supply().Map(), "units taken stay taken")
		})
	}
}

func TestRegisterPay(t *testing.T) {
	tests := []struct {
		name         string
		fee          int
		stock        map[int]int
		inserted     map[int]int
		wantErr      error
		wantReturned map[int]int
		wantStock    map[int]int
	}{
		{
			name:         "exact payment",
			fee:          500,
			inserted:     map[int]int{500: 1},
			wantReturned: map[int]int{},
			wantStock:    map[int]int{500: 1},
		},
		{
			name:         "change from the stock",
			fee:          500,
			stock:        map[int]int{500: 1},
			inserted:     map[int]int{1000: 1},
			wantReturned: map[int]int{500: 1},
			wantStock:    map[int]int{1000: 1},
		},
		{
			name:         "change from the inserted cash",
			fee:          150,
			inserted:     map[int]int{100: 1, 50: 2},
			wantReturned: map[int]int{50: 1},
			wantStock:    map[int]int{100: 1, 50: 1},
		},
		{
			name:         "fee not covered",
			fee:          500,
			stock:        map[int]int{100: 4},
			inserted:     map[int]int{200: 2},
			wantErr:      types.ErrFeeNotCovered,
			wantReturned: map[int]int{200: 2},
			wantStock:    map[int]int{100: 4},
		},
		{
			name:         "no change available rolls back",
			fee:          500,
			stock:        map[int]int{200: 1},
			inserted:     map[int]int{2000: 1},
			wantErr:      types.ErrInsufficientChange,
			wantReturned: map[int]int{2000: 1},
			wantStock:    map[int]int{200: 1},
		},
		{
			name:         "partial withdrawal rolls back",
			fee:          440,
			stock:        map[int]int{50: 1, 20: 3},
			inserted:     map[int]int{500: 1},
			wantErr:      types.ErrInsufficientChange,
			wantReturned: map[int]int{500: 1},
			wantStock:    map[int]int{50: 1, 20: 3},
		},
		{
			name:         "free entry returns everything",
			fee:          0,
			inserted:     map[int]int{100: 1},
			wantReturned: map[int]int{100: 1},
			wantStock:    map[int]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegister()
			r.SetFee(0, tt.fee)
			r.Stock(mustCash(t, tt.stock))
			inserted := mustCash(t, tt.inserted)

			p, err := r.Pay(inserted)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, p.Accepted)
			} else {
				require.NoError(t, err)
				assert.True(t, p.Accepted)
			}
			assert.Equal(t, tt.fee, p.Fee)
			assert.Equal(t, inserted, p.Inserted)
			assert.Equal(t, tt.wantReturned, p.Returned.Map())
			assert.Equal(t, tt.wantStock, r.Supply().Map())
		})
	}
}

func TestZooMakeChangeIsAtomic(t *testing.T) {
	z := newTestZoo(t)
	stock := mustCash(t, map[int]int{50: 1, 20: 3})
	z.SetCashSupply(stock)

	_, err := z.MakeChange(60)
	assert.ErrorIs(t, err, types.ErrInsufficientChange)
	assert.Equal(t, stock, z.CashSupply())

	change, err := z.MakeChange(70)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{50: 1, 20: 1}, change.Map())
	assert.Equal(t, map[int]int{20: 2}, z.CashSupply().Map())
}

func TestZooPayEntranceFee(t *testing.T) {
	z := newTestZoo(t)
	z.SetEntranceFee(5, 0)
	z.SetCashSupply(mustCash(t, map[int]int{500: 1}))
	assert.Equal(t, 500, z.EntranceFee())

	change := z.PayEntranceFee(mustCash(t, map[int]int{1000: 1}))
	assert.Equal(t, map[int]int{500: 1}, change.Map())

	short := mustCash(t, map[int]int{200: 1})
	assert.Equal(t, short, z.PayEntranceFee(short))
	assert.Equal(t, map[int]int{1000: 1}, z.CashSupply().Map())
}

func TestZooSetCashSupplyCopies(t *testing.T) {
	z := newTestZoo(t)
	coins := mustCash(t, map[int]int{100: 2})
	z.SetCashSupply(coins)

	require.NoError(t, coins.Set(types.OnePoundCoin, 9))
	assert.Equal(t, 2, z.CashSupply().Count(types.OnePoundCoin))
}

func drawCash(rt *rapid.T, label string, maxUnits int) types.CashCount {
	var c types.CashCount
	for _, d := range types.Denominations {
		n := rapid.IntRange(0, maxUnits).Draw(rt, label+" "+d.String())
		require.NoError(rt, c.Set(d, n))
	}
	return c
}

func TestProperty_PayConservesValue(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := NewRegister()
		fee := rapid.IntRange(0, 100).Draw(rt, "fee") * 10
		r.SetFee(0, fee)
		r.Stock(drawCash(rt, "stock", 3))
		before := r.Supply()
		inserted := drawCash(rt, "inserted", 2)

		p, err := r.Pay(inserted)
		if err != nil {
			assert.False(rt, p.Accepted)
			assert.Equal(rt, before, r.Supply(), "refused payment leaves the stock untouched")
			assert.Equal(rt, inserted, p.Returned)
			return
		}

		assert.True(rt, p.Accepted)
		assert.Equal(rt, inserted.Total()-fee, p.Returned.Total())
		assert.Equal(rt, before.Total()+fee, r.Supply().Total())
		for _, d := range types.Denominations {
			assert.GreaterOrEqual(rt, r.Supply().Count(d), 0)
		}
	})
}

func TestProperty_MakeChangeIsExactOrFails(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := NewRegister()
		r.Stock(drawCash(rt, "stock", 4))
		before := r.Supply()
		amount := rapid.IntRange(0, 200).Draw(rt, "amount") * 10

		change, err := r.MakeChange(amount)
		if err != nil {
			assert.ErrorIs(rt, err, types.ErrInsufficientChange)
			return
		}
		assert.Equal(rt, amount, change.Total())
		assert.Equal(rt, before.Total()-amount, r.Supply().Total())
	})
}
