package catalog

import (
	"fmt"
	"strings"

	"github.com/xrash/smetrics"

	"github.com/osse101/LootLedger_Go/internal/domain"
)

// Catalog holds the immutable lookup tables the pricing engine works on:
// item rows, rune-name aliases, the precious-material name set and the
// level to expected-wealth table. It is built once at startup and never
// mutated afterwards, so it is safe for unlimited concurrent readers.
type Catalog struct {
	// Rows keyed by lowercase name. The same name can occur in more than
	// one category; restricted lookups disambiguate.
	entries map[string][]domain.CatalogEntry

	// All names, for edit-distance suggestions.
	names []string

	// Token -> replacement name. An empty replacement marks a
	// grammatical filler that contributes nothing priceable.
	aliases map[string]string

	materials map[string]struct{}

	// Expected total wealth in gp, indexed by level (1-20).
	wealth map[int]int
}

// New builds a Catalog from already-parsed tables. The loader is the usual
// entry point; tests construct small catalogs directly.
func New(entries []domain.CatalogEntry, aliases map[string]string, materials []string, wealth map[int]int) *Catalog {
	c := &Catalog{
		entries:   make(map[string][]domain.CatalogEntry, len(entries)),
		names:     make([]string, 0, len(entries)),
		aliases:   make(map[string]string, len(aliases)),
		materials: make(map[string]struct{}, len(materials)),
		wealth:    make(map[int]int, len(wealth)),
	}

	for _, e := range entries {
		name := strings.ToLower(e.Name)
		if _, seen := c.entries[name]; !seen {
			c.names = append(c.names, name)
		}
		e.Name = name
		e.Category = domain.Category(strings.ToLower(string(e.Category)))
		c.entries[name] = append(c.entries[name], e)
	}
	for token, replacement := range aliases {
		c.aliases[strings.ToLower(token)] = strings.ToLower(replacement)
	}
	for _, m := range materials {
		c.materials[strings.ToLower(m)] = struct{}{}
	}
	for level, gp := range wealth {
		c.wealth[level] = gp
	}

	return c
}

// Lookup finds the entry with the given lowercase name. When restrict is
// non-empty the search is limited to rows whose category string contains
// it, which resolves cross-category name collisions.
func (c *Catalog) Lookup(name string, restrict domain.Category) (domain.CatalogEntry, error) {
	rows, ok := c.entries[name]
	if !ok {
		return domain.CatalogEntry{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
	}

	if restrict == "" {
		return rows[0], nil
	}
	for _, row := range rows {
		if strings.Contains(string(row.Category), string(restrict)) {
			return row, nil
		}
	}
	return domain.CatalogEntry{}, fmt.Errorf("%w: %s (category %s)", domain.ErrItemNotFound, name, restrict)
}

// ClosestMatch returns the catalog name nearest to the given one by edit
// distance, for human-readable "did you mean" warnings. Best effort: it
// never fails, and returns "" on an empty catalog.
func (c *Catalog) ClosestMatch(name string) string {
	best := ""
	bestDist := -1
	for _, candidate := range c.names {
		d := smetrics.WagnerFischer(name, candidate, 1, 1, 2)
		if bestDist < 0 || d < bestDist {
			best = candidate
			bestDist = d
		}
	}
	return best
}

// IsMaterial reports whether name is a known precious material.
func (c *Catalog) IsMaterial(name string) bool {
	_, ok := c.materials[name]
	return ok
}

// AliasFor looks up a rune-name replacement for the given token. The
// second return distinguishes "no alias" from "alias to nothing" (a
// filler word to drop).
func (c *Catalog) AliasFor(token string) (string, bool) {
	replacement, ok := c.aliases[token]
	return replacement, ok
}

// ExpectedWealth returns the expected total party wealth in gp for a
// single level between 1 and 20.
func (c *Catalog) ExpectedWealth(level int) (int, error) {
	if level < MinLevel || level > MaxLevel {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidLevel, level)
	}
	return c.wealth[level], nil
}

// ExpectedWealthRange sums the expected-wealth rows for levels lo through
// hi, inclusive of both endpoints.
func (c *Catalog) ExpectedWealthRange(lo, hi int) (int, error) {
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo < MinLevel || hi > MaxLevel {
		return 0, fmt.Errorf("%w: %d-%d", domain.ErrInvalidLevel, lo, hi)
	}

	total := 0
	for level := lo; level <= hi; level++ {
		total += c.wealth[level]
	}
	return total, nil
}

// Size returns the number of distinct item names loaded.
func (c *Catalog) Size() int {
	return len(c.names)
}
