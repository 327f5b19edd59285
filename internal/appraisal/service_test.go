package appraisal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootLedger_Go/internal/domain"
)

func TestAppraiseLootSeparatesOrigins(t *testing.T) {
	svc := newTestService(t)

	lines := []domain.LootLine{
		{Name: "longsword", Amount: 2},
		{Name: "25 gp", Amount: 1},
	}

	summary, err := svc.AppraiseLoot(context.Background(), lines, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Items.GP)
	assert.Equal(t, domain.OriginItem, summary.Items.Origin)
	assert.Equal(t, 25, summary.Currency.GP)
	assert.Equal(t, domain.OriginCurrency, summary.Currency.Origin)
	assert.Equal(t, 27, summary.Total.GP)
	assert.Equal(t, 2, summary.Lines)
	assert.Empty(t, summary.Skipped)
}

func TestAppraiseLootSkipsUnknownAndContinues(t *testing.T) {
	svc := newTestService(t)

	lines := []domain.LootLine{
		{Name: "longsword", Amount: 1},
		{Name: "flobberdoodle", Amount: 1},
		{Name: "dagger", Amount: 1},
	}

	summary, err := svc.AppraiseLoot(context.Background(), lines, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"flobberdoodle"}, summary.Skipped)
	assert.Equal(t, 1, summary.Items.GP)
	assert.Equal(t, 2, summary.Items.SP)
	assert.Equal(t, 3, summary.Lines)
}

func TestAppraiseLootExtraCurrency(t *testing.T) {
	svc := newTestService(t)

	summary, err := svc.AppraiseLoot(context.Background(), nil, 150)
	require.NoError(t, err)

	assert.Equal(t, 150, summary.Currency.GP)
	assert.Equal(t, 150, summary.Total.GP)
	assert.Equal(t, 0, summary.Lines)
}

func TestAppraiseLootNormalizesTotals(t *testing.T) {
	svc := newTestService(t)

	// 12 daggers at 2 sp each is 24 sp, reported as 2 gp 4 sp.
	lines := []domain.LootLine{{Name: "dagger", Amount: 12}}

	summary, err := svc.AppraiseLoot(context.Background(), lines, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Items.GP)
	assert.Equal(t, 4, summary.Items.SP)
	assert.Equal(t, 0, summary.Items.CP)
}

func TestAppraiseLootEmpty(t *testing.T) {
	svc := newTestService(t)

	summary, err := svc.AppraiseLoot(context.Background(), nil, 0)
	require.NoError(t, err)

	assert.True(t, summary.Total.IsZero())
	assert.Equal(t, 0, summary.Lines)
	assert.Empty(t, summary.Skipped)
}

func TestCompareToExpectedSingleLevel(t *testing.T) {
	svc := newTestService(t)

	lines := []domain.LootLine{{Name: "100 gp", Amount: 1}}
	summary, err := svc.AppraiseLoot(context.Background(), lines, 0)
	require.NoError(t, err)

	comparison, err := svc.CompareToExpected(summary, "1")
	require.NoError(t, err)

	assert.Equal(t, 175, comparison.ExpectedGP)
	assert.Equal(t, 75, comparison.DifferenceGP)
	assert.Equal(t, VerdictTooLittle, comparison.Verdict)
}

func TestCompareToExpectedRangeSumsInclusive(t *testing.T) {
	svc := newTestService(t)

	summary, err := svc.AppraiseLoot(context.Background(), nil, 0)
	require.NoError(t, err)

	// Levels 5 through 8 inclusive: 1350 + 2000 + 2900 + 4000.
	comparison, err := svc.CompareToExpected(summary, "5-8")
	require.NoError(t, err)

	assert.Equal(t, 10250, comparison.ExpectedGP)
	assert.Equal(t, VerdictTooLittle, comparison.Verdict)
}

func TestCompareToExpectedTooMuch(t *testing.T) {
	svc := newTestService(t)

	summary, err := svc.AppraiseLoot(context.Background(), nil, 500)
	require.NoError(t, err)

	comparison, err := svc.CompareToExpected(summary, "1")
	require.NoError(t, err)

	assert.Equal(t, -325, comparison.DifferenceGP)
	assert.Equal(t, VerdictTooMuch, comparison.Verdict)
}

func TestCompareToExpectedExactMatch(t *testing.T) {
	svc := newTestService(t)

	summary, err := svc.AppraiseLoot(context.Background(), nil, 175)
	require.NoError(t, err)

	comparison, err := svc.CompareToExpected(summary, "1")
	require.NoError(t, err)

	assert.Equal(t, 0, comparison.DifferenceGP)
	assert.Equal(t, VerdictNone, comparison.Verdict)
}

func TestCompareToExpectedInvalidSpec(t *testing.T) {
	svc := newTestService(t)

	summary, err := svc.AppraiseLoot(context.Background(), nil, 0)
	require.NoError(t, err)

	_, err = svc.CompareToExpected(summary, "banana")
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
}

func TestParseLevelSpec(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		lo      int
		hi      int
		wantErr bool
	}{
		{name: "single level", spec: "7", lo: 7, hi: 7},
		{name: "range", spec: "5-8", lo: 5, hi: 8},
		{name: "reversed range swaps", spec: "8-5", lo: 5, hi: 8},
		{name: "whitespace tolerated", spec: " 3 - 4 ", lo: 3, hi: 4},
		{name: "full range", spec: "1-20", lo: 1, hi: 20},
		{name: "zero", spec: "0", wantErr: true},
		{name: "too high", spec: "21", wantErr: true},
		{name: "range exceeds cap", spec: "1-25", wantErr: true},
		{name: "not a number", spec: "abc", wantErr: true},
		{name: "empty", spec: "", wantErr: true},
		{name: "half-open", spec: "5-", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi, err := ParseLevelSpec(tt.spec)

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidLevel)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lo, lo)
			assert.Equal(t, tt.hi, hi)
		})
	}
}

func TestUnitPriceCacheIsQuantityIndependent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	// Prime the cache at a non-unit quantity, then read back at one.
	bulk, err := svc.AppraiseItem(ctx, "longsword", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, bulk.Price.GP)

	single, err := svc.AppraiseItem(ctx, "longsword", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, single.Price.GP)
}

func TestAppraiseItemZeroAmount(t *testing.T) {
	svc := newTestService(t)

	info, err := svc.AppraiseItem(context.Background(), "longsword", 0)
	require.NoError(t, err)

	assert.True(t, info.Price.IsZero())
}
