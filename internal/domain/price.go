package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// priceRe matches the catalog price mini-format: an integer with optional
// thousands separators followed by a coin denomination, e.g. "1,200 gp"
// or "32sp". Anchored so that item names containing digits never match.
var priceRe = regexp.MustCompile(`^\s*(\d{1,3}(?:,\d{3})*|\d+)\s*(cp|sp|gp)\s*$`)

// ParsePrice parses a "<amount> <cp|sp|gp>" string into a Money value
// with the given origin. Fails with ErrInvalidPrice when the string does
// not follow the format.
func ParsePrice(s string, origin Origin) (Money, error) {
	m := priceRe.FindStringSubmatch(s)
	if m == nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	amount, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}

	switch m[2] {
	case "cp":
		return NewMoney(amount, 0, 0, origin), nil
	case "sp":
		return NewMoney(0, amount, 0, origin), nil
	case "gp":
		return NewMoney(0, 0, amount, origin), nil
	default:
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, m[2])
	}
}

// IsPrice reports whether the whole string parses as a plain amount of
// coinage. Used for the currency short-circuit in name decomposition.
func IsPrice(s string) bool {
	return priceRe.MatchString(s)
}
