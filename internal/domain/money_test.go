package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyAdd(t *testing.T) {
	a := NewMoney(10, 2, 3, OriginItem)
	b := NewMoney(5, 1, 7, OriginItem)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, NewMoney(15, 3, 10, OriginItem), sum)
}

func TestMoneyAdd_OriginMismatch(t *testing.T) {
	item := NewMoney(0, 0, 5, OriginItem)
	coins := NewMoney(0, 0, 5, OriginCurrency)

	_, err := item.Add(coins)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOriginMismatch)
}

func TestMoneyAdd_TotalAcceptsAnyOrigin(t *testing.T) {
	total := NewTotal()

	total, err := total.Add(NewMoney(0, 0, 5, OriginItem))
	require.NoError(t, err)
	total, err = total.Add(NewMoney(0, 0, 7, OriginCurrency))
	require.NoError(t, err)

	assert.Equal(t, 12, total.GP)
	assert.Equal(t, OriginTotal, total.Origin)
}

func TestMoneyAdd_EmptyOriginDefaultsToItem(t *testing.T) {
	implicit := Money{GP: 1}
	explicit := NewMoney(0, 0, 2, OriginItem)

	sum, err := implicit.Add(explicit)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.GP)
}

func TestMoneyAddScalar(t *testing.T) {
	m := NewMoney(1, 2, 3, OriginItem).AddScalar(10)
	assert.Equal(t, NewMoney(11, 12, 13, OriginItem), m)
}

func TestMoneyScale(t *testing.T) {
	m := NewMoney(1, 2, 3, OriginCurrency).Scale(4)
	assert.Equal(t, NewMoney(4, 8, 12, OriginCurrency), m)
}

func TestMoneyNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Money
		want Money
	}{
		{"already normalized", Money{CP: 99, SP: 9, GP: 1}, Money{CP: 99, SP: 9, GP: 1}},
		{"copper folds to gold", Money{CP: 250}, Money{CP: 50, GP: 2}},
		{"silver folds to gold", Money{SP: 34}, Money{SP: 4, GP: 3}},
		{"copper never folds into silver", Money{CP: 150, SP: 9}, Money{CP: 50, SP: 9, GP: 1}},
		{"both fold independently", Money{CP: 1234, SP: 56, GP: 7}, Money{CP: 34, SP: 6, GP: 24}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.want, got)

			// Idempotent: normalizing again is a no-op.
			assert.Equal(t, got, got.Normalize())
			assert.GreaterOrEqual(t, got.CP, 0)
			assert.Less(t, got.CP, 100)
			assert.GreaterOrEqual(t, got.SP, 0)
			assert.Less(t, got.SP, 10)
		})
	}
}

func TestHigherRarity(t *testing.T) {
	tests := []struct {
		a, b, want Rarity
	}{
		{RarityCommon, RarityCommon, RarityCommon},
		{RarityCommon, RarityUncommon, RarityUncommon},
		{RarityCommon, RarityRare, RarityRare},
		{RarityUncommon, RarityCommon, RarityUncommon},
		{RarityUncommon, RarityUncommon, RarityUncommon},
		{RarityUncommon, RarityRare, RarityRare},
		{RarityRare, RarityCommon, RarityRare},
		{RarityRare, RarityUncommon, RarityRare},
		{RarityRare, RarityRare, RarityRare},
	}

	for _, tt := range tests {
		t.Run(string(tt.a)+"_"+string(tt.b), func(t *testing.T) {
			assert.Equal(t, tt.want, HigherRarity(tt.a, tt.b))
			// Commutative
			assert.Equal(t, HigherRarity(tt.a, tt.b), HigherRarity(tt.b, tt.a))
		})
	}
}
