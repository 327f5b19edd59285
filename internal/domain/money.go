package domain

import "fmt"

// Origin tags a Money value with where it came from. Totals derived from
// item pricing and totals derived from raw coinage must never be summed
// into each other by accident, so Add refuses to mix origins.
type Origin string

const (
	OriginItem     Origin = "item"
	OriginCurrency Origin = "currency"
	OriginTotal    Origin = "total"
)

// Money is an additive three-denomination currency amount.
// The zero value is zero coins with origin "item".
type Money struct {
	CP     int    `json:"cp"`
	SP     int    `json:"sp"`
	GP     int    `json:"gp"`
	Origin Origin `json:"origin,omitempty"`

	// lax disables origin checking; only grand totals opt out.
	lax bool
}

// NewMoney creates a Money amount with the given origin.
func NewMoney(cp, sp, gp int, origin Origin) Money {
	return Money{CP: cp, SP: sp, GP: gp, Origin: origin}
}

// NewTotal creates an empty accumulator that accepts amounts of any origin.
func NewTotal() Money {
	return Money{Origin: OriginTotal, lax: true}
}

// Add returns the component-wise sum of m and other.
// It fails with ErrOriginMismatch when both sides enforce origin checking
// and their origins differ; the result keeps m's origin.
func (m Money) Add(other Money) (Money, error) {
	if !m.lax && !other.lax && m.origin() != other.origin() {
		return Money{}, fmt.Errorf("%w: %s + %s", ErrOriginMismatch, m.origin(), other.origin())
	}
	return Money{
		CP:     m.CP + other.CP,
		SP:     m.SP + other.SP,
		GP:     m.GP + other.GP,
		Origin: m.Origin,
		lax:    m.lax,
	}, nil
}

// AddScalar adds n to all three denominations, for uniform offsets.
func (m Money) AddScalar(n int) Money {
	return Money{CP: m.CP + n, SP: m.SP + n, GP: m.GP + n, Origin: m.Origin, lax: m.lax}
}

// Scale multiplies all three denominations by n. Prices are linear in
// quantity, so unit prices are scaled rather than re-derived.
func (m Money) Scale(n int) Money {
	return Money{CP: m.CP * n, SP: m.SP * n, GP: m.GP * n, Origin: m.Origin, lax: m.lax}
}

// Normalize folds whole coins upward into gold: cp and sp convert to gp
// independently before either remainder is taken, so copper is never first
// folded into silver. Intended to run once, at reporting time. Idempotent.
func (m Money) Normalize() Money {
	out := m
	out.GP += out.CP / 100
	out.GP += out.SP / 10
	out.CP %= 100
	out.SP %= 10
	return out
}

// IsZero reports whether the amount holds no coins.
func (m Money) IsZero() bool {
	return m.CP == 0 && m.SP == 0 && m.GP == 0
}

func (m Money) origin() Origin {
	if m.Origin == "" {
		return OriginItem
	}
	return m.Origin
}

// String renders the amount for logs and CLI output.
func (m Money) String() string {
	return fmt.Sprintf("%d cp, %d sp, %d gp", m.CP, m.SP, m.GP)
}
