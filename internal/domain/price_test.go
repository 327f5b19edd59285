package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Money
		wantErr bool
	}{
		{name: "gold", input: "25 gp", want: Money{GP: 25, Origin: OriginItem}},
		{name: "silver", input: "3 sp", want: Money{SP: 3, Origin: OriginItem}},
		{name: "copper", input: "150 cp", want: Money{CP: 150, Origin: OriginItem}},
		{name: "no space", input: "32sp", want: Money{SP: 32, Origin: OriginItem}},
		{name: "thousands separators", input: "1,250 gp", want: Money{GP: 1250, Origin: OriginItem}},
		{name: "surrounding whitespace", input: "  40 gp ", want: Money{GP: 40, Origin: OriginItem}},
		{name: "zero", input: "0 gp", want: Money{Origin: OriginItem}},
		{name: "unknown denomination", input: "25 pp", wantErr: true},
		{name: "no denomination", input: "25", wantErr: true},
		{name: "not a number", input: "many gp", wantErr: true},
		{name: "trailing words", input: "25 gp extra", wantErr: true},
		{name: "misplaced separator", input: "1,25 gp", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.input, OriginItem)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePriceKeepsOrigin(t *testing.T) {
	got, err := ParsePrice("25 gp", OriginCurrency)
	require.NoError(t, err)

	assert.Equal(t, OriginCurrency, got.Origin)
}

func TestIsPrice(t *testing.T) {
	assert.True(t, IsPrice("25 gp"))
	assert.True(t, IsPrice("1,000 gp"))
	assert.True(t, IsPrice("2sp"))

	// Item names containing digits are not coinage.
	assert.False(t, IsPrice("+1 longsword"))
	assert.False(t, IsPrice("bag of 5 marbles"))
	assert.False(t, IsPrice("longsword"))
}
