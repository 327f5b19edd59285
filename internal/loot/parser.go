// Package loot parses user-supplied loot lists: one item per line, a
// comma-separated name and optional amount.
package loot

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/osse101/LootLedger_Go/internal/domain"
)

// DefaultAmount is used when a line has no usable quantity.
const DefaultAmount = 1

// Parse reads loot lines from r. Names are lowercased; a blank or
// non-numeric amount defaults to 1; negative amounts are clamped to zero
// so they cannot subtract from totals. Blank lines are skipped.
func Parse(r io.Reader) ([]domain.LootLine, error) {
	var lines []domain.LootLine

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		name, amountField, _ := strings.Cut(line, ",")
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}

		amount := DefaultAmount
		if field := strings.TrimSpace(amountField); field != "" {
			if n, err := strconv.Atoi(field); err == nil {
				amount = n
			}
		}
		if amount < 0 {
			amount = 0
		}

		lines = append(lines, domain.LootLine{Name: name, Amount: amount})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to read loot list: %v", domain.ErrInvalidInput, err)
	}

	return lines, nil
}

// ParseString parses loot lines from an in-memory string, for API input.
func ParseString(s string) ([]domain.LootLine, error) {
	return Parse(strings.NewReader(s))
}
