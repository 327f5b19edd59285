package appraisal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/osse101/LootLedger_Go/internal/catalog"
	"github.com/osse101/LootLedger_Go/internal/domain"
	"github.com/osse101/LootLedger_Go/internal/logger"
)

// Summary holds the per-origin totals for one loot list, post-normalization.
type Summary struct {
	Items    domain.Money `json:"items"`
	Currency domain.Money `json:"currency"`
	Total    domain.Money `json:"total"`
	Lines    int          `json:"lines"`
	Skipped  []string     `json:"skipped,omitempty"`
}

// Comparison is the signed difference of a loot total against the
// expected wealth for a level or level range.
type Comparison struct {
	ExpectedGP   int    `json:"expected_gp"`
	DifferenceGP int    `json:"difference_gp"` // expected minus actual
	Verdict      string `json:"verdict"`       // "too much", "too little" or "none"
}

// Service defines the interface for pricing operations
type Service interface {
	AppraiseItem(ctx context.Context, name string, amount int) (domain.ItemInfo, error)
	AppraiseLoot(ctx context.Context, lines []domain.LootLine, extraGP int) (*Summary, error)
	CompareToExpected(summary *Summary, levelSpec string) (*Comparison, error)
}

type service struct {
	catalog *catalog.Catalog

	// Unit-price cache. The catalog never changes after load and prices
	// are linear in quantity, so cached unit results are always valid.
	cache *lru.Cache[string, domain.ItemInfo]
}

// NewService creates a new appraisal service over an immutable catalog.
func NewService(cat *catalog.Catalog, cacheSize int) (Service, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[string, domain.ItemInfo](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create appraisal cache: %w", err)
	}
	return &service{catalog: cat, cache: cache}, nil
}

// AppraiseItem decomposes a single item name and scales its price by the
// purchase quantity. Unknown names fail with domain.ErrItemNotFound after
// logging a closest-match suggestion.
func (s *service) AppraiseItem(ctx context.Context, name string, amount int) (domain.ItemInfo, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	unit, err := s.unitInfo(ctx, name)
	if err != nil {
		return domain.ItemInfo{}, err
	}

	info := unit
	info.Price = unit.Price.Scale(amount)
	return info, nil
}

// unitInfo resolves the quantity-one pricing for a name, consulting the
// cache first. Only the outermost resolution logs; recursive probing
// inside rune breakdown stays quiet.
func (s *service) unitInfo(ctx context.Context, name string) (domain.ItemInfo, error) {
	if cached, ok := s.cache.Get(name); ok {
		return cached, nil
	}

	var info domain.ItemInfo
	var err error
	if hasPotencyToken(name) {
		info, err = s.runeBreakdown(name)
	} else {
		info, err = s.resolve(name, "")
	}

	if err != nil {
		log := logger.FromContext(ctx)
		if errors.Is(err, domain.ErrItemNotFound) {
			log.Warn("Ignoring unknown item",
				"name", name,
				"suggestion", s.catalog.ClosestMatch(name))
		} else {
			log.Warn("Skipping unpriceable item", "name", name, "error", err)
		}
		return domain.ItemInfo{}, err
	}

	s.cache.Add(name, info)
	return info, nil
}

// AppraiseLoot prices every line of a loot list and accumulates the
// results into per-origin totals. A line that cannot be priced is
// recorded in Skipped and contributes zero; it never aborts the batch.
// extraGP is a flat amount of additional gold counted as currency.
func (s *service) AppraiseLoot(ctx context.Context, lines []domain.LootLine, extraGP int) (*Summary, error) {
	log := logger.FromContext(ctx)

	items := domain.NewMoney(0, 0, 0, domain.OriginItem)
	coins := domain.NewMoney(0, 0, 0, domain.OriginCurrency)
	var skipped []string

	for _, line := range lines {
		info, err := s.AppraiseItem(ctx, line.Name, line.Amount)
		if err != nil {
			skipped = append(skipped, line.Name)
			continue
		}

		switch info.Price.Origin {
		case domain.OriginCurrency:
			coins, err = coins.Add(info.Price)
		default:
			items, err = items.Add(info.Price)
		}
		if err != nil {
			// Origin mismatch here is a programming error, not bad input.
			return nil, err
		}
	}

	if extraGP != 0 {
		var err error
		coins, err = coins.Add(domain.NewMoney(0, 0, extraGP, domain.OriginCurrency))
		if err != nil {
			return nil, err
		}
	}

	items = items.Normalize()
	coins = coins.Normalize()

	total := domain.NewTotal()
	total, err := total.Add(items)
	if err != nil {
		return nil, err
	}
	total, err = total.Add(coins)
	if err != nil {
		return nil, err
	}

	log.Info("Loot appraised",
		"lines", len(lines),
		"skipped", len(skipped),
		"total_gp", total.Normalize().GP)

	return &Summary{
		Items:    items,
		Currency: coins,
		Total:    total.Normalize(),
		Lines:    len(lines),
		Skipped:  skipped,
	}, nil
}

// CompareToExpected compares a summary's grand total against the
// expected wealth for a level ("7") or inclusive level range ("5-8").
func (s *service) CompareToExpected(summary *Summary, levelSpec string) (*Comparison, error) {
	lo, hi, err := ParseLevelSpec(levelSpec)
	if err != nil {
		return nil, err
	}

	expected, err := s.catalog.ExpectedWealthRange(lo, hi)
	if err != nil {
		return nil, err
	}

	diff := expected - summary.Total.GP
	verdict := VerdictNone
	switch {
	case diff < 0:
		verdict = VerdictTooMuch
	case diff > 0:
		verdict = VerdictTooLittle
	}

	return &Comparison{
		ExpectedGP:   expected,
		DifferenceGP: diff,
		Verdict:      verdict,
	}, nil
}

// ParseLevelSpec parses "N" or "X-Y" into an inclusive level range
// within 1-20. Reversed ranges are swapped rather than rejected.
func ParseLevelSpec(spec string) (lo, hi int, err error) {
	spec = strings.TrimSpace(spec)
	parts := strings.SplitN(spec, "-", 2)

	lo, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidLevel, spec)
	}
	hi = lo
	if len(parts) == 2 {
		hi, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidLevel, spec)
		}
	}

	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < catalog.MinLevel || hi > catalog.MaxLevel {
		return 0, 0, fmt.Errorf("%w: %q", domain.ErrInvalidLevel, spec)
	}
	return lo, hi, nil
}
