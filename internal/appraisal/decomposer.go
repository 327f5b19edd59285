package appraisal

import (
	"fmt"
	"strings"

	"github.com/osse101/LootLedger_Go/internal/domain"
)

// resolve decomposes a single item name into unit pricing information.
// It is the quiet half of the two-level API: it reports misses as errors
// and never logs, because rune breakdown calls it repeatedly to probe
// candidate substrings. restrict limits the catalog search to rows whose
// category contains the given key.
func (s *service) resolve(name string, restrict domain.Category) (domain.ItemInfo, error) {
	name = strings.TrimSpace(name)

	// Plain coinage short-circuits everything; "25 gp" is never an item.
	if domain.IsPrice(name) {
		price, err := domain.ParsePrice(name, domain.OriginCurrency)
		if err != nil {
			return domain.ItemInfo{}, err
		}
		return domain.ItemInfo{
			Name:     name,
			Price:    price,
			Category: domain.CategoryCurrency,
			Level:    -1,
			Rarity:   domain.RarityCommon,
		}, nil
	}

	words := strings.Fields(name)
	material, grade, base, err := s.splitMaterial(words)
	if err != nil {
		return domain.ItemInfo{}, err
	}
	if material == "" {
		base = strings.Join(words, " ")
	}

	entry, err := s.catalog.Lookup(base, restrict)
	if err != nil {
		return domain.ItemInfo{}, err
	}

	price, err := domain.ParsePrice(entry.Price, domain.OriginItem)
	if err != nil {
		return domain.ItemInfo{}, err
	}

	info := domain.ItemInfo{
		Name:     base,
		Price:    price,
		Category: entry.Category,
		Level:    entry.Level,
		Rarity:   entry.Rarity,
	}

	if material != "" {
		return s.applyMaterial(info, material, grade)
	}
	return info, nil
}

// splitMaterial detects a one- or two-word precious-material prefix and
// the trailing grade token. It returns empty strings when the name has no
// material prefix. The prefix is only stripped when at least a base word
// and a grade token remain, so bare material names still resolve as
// ordinary items.
func (s *service) splitMaterial(words []string) (material, grade, base string, err error) {
	matWords := 0
	if len(words) >= 3 && s.catalog.IsMaterial(words[0]) {
		matWords = 1
	} else if len(words) >= 4 && s.catalog.IsMaterial(words[0]+" "+words[1]) {
		matWords = 2
	}
	if matWords == 0 {
		return "", "", "", nil
	}

	material = strings.Join(words[:matWords], " ")
	gradeToken := words[len(words)-1]
	grade = canonicalGrade(gradeToken)
	if grade == "" {
		return "", "", "", fmt.Errorf("%w: material %q with grade token %q", domain.ErrMissingGrade, material, gradeToken)
	}

	base = strings.Join(words[matWords:len(words)-1], " ")
	return material, grade, base, nil
}

// canonicalGrade normalizes any token containing a bare grade word to the
// parenthesized catalog form, or returns "" when the token is not a grade.
func canonicalGrade(token string) string {
	for _, g := range materialGrades {
		if strings.Contains(token, g.word) {
			return g.canonical
		}
	}
	return ""
}

// applyMaterial adds the material price adjustment for the item's
// category and grade on top of the base price. Materials can raise but
// never lower the effective level and rarity.
func (s *service) applyMaterial(base domain.ItemInfo, material, grade string) (domain.ItemInfo, error) {
	keyword, ok := materialKeywords[base.Category]
	if !ok {
		return domain.ItemInfo{}, fmt.Errorf("%w: material %q on category %q", domain.ErrMissingGrade, material, base.Category)
	}

	rowName := material + " " + keyword + " " + grade
	row, err := s.catalog.Lookup(rowName, "")
	if err != nil {
		return domain.ItemInfo{}, err
	}

	adjustment, err := domain.ParsePrice(row.Price, domain.OriginItem)
	if err != nil {
		return domain.ItemInfo{}, err
	}

	price, err := base.Price.Add(adjustment)
	if err != nil {
		return domain.ItemInfo{}, err
	}

	level := base.Level
	if row.Level > level {
		level = row.Level
	}

	return domain.ItemInfo{
		Name:     material + " " + base.Name + " " + grade,
		Price:    price,
		Category: base.Category,
		Level:    level,
		Rarity:   domain.HigherRarity(base.Rarity, row.Rarity),
	}, nil
}

// hasPotencyToken reports whether the name carries a fundamental rune and
// must go through rune breakdown.
func hasPotencyToken(name string) bool {
	for _, tok := range potencyTokens {
		if strings.Contains(name, tok) {
			return true
		}
	}
	return false
}

// runeBreakdown prices a name containing a potency rune by walking its
// tokens left to right and summing each rune's own catalog price plus the
// final base item. The cursor advances by one or two tokens per step; the
// token list itself is never modified.
func (s *service) runeBreakdown(name string) (domain.ItemInfo, error) {
	tokens := strings.Fields(name)

	sum := domain.NewMoney(0, 0, 0, domain.OriginItem)
	level := 0
	rarity := domain.RarityCommon
	var category domain.Category
	potency := 0
	skipNext := false

	accumulate := func(info domain.ItemInfo) error {
		added, err := sum.Add(info.Price)
		if err != nil {
			return err
		}
		sum = added
		if info.Level > level {
			level = info.Level
		}
		rarity = domain.HigherRarity(rarity, info.Rarity)
		category = info.Category
		return nil
	}

	for i := 0; i < len(tokens); i++ {
		if skipNext {
			skipNext = false
			continue
		}
		token := tokens[i]

		// Potency runes are cached, not accumulated; the last one wins.
		switch token {
		case "+1":
			potency = 1
			continue
		case "+2":
			potency = 2
			continue
		case "+3":
			potency = 3
			continue
		}

		// Grade prefix fuses with the next token: "greater striking"
		// resolves as "striking (greater)".
		if gradePrefixes[token] && i+1 < len(tokens) {
			fused := tokens[i+1] + " (" + token + ")"
			if info, err := s.resolve(fused, ""); err == nil {
				if err := accumulate(info); err != nil {
					return domain.ItemInfo{}, err
				}
			}
			skipNext = true
			continue
		}

		// Alias table: a non-empty replacement stands for a different
		// priceable name, an empty one is grammatical filler.
		if replacement, ok := s.catalog.AliasFor(token); ok {
			if replacement == "" {
				continue
			}
			if info, err := s.resolve(replacement, ""); err == nil {
				if err := accumulate(info); err != nil {
					return domain.ItemInfo{}, err
				}
			}
			continue
		}

		// Materials are never rune names; force the remainder fallback.
		var info domain.ItemInfo
		err := fmt.Errorf("%w: %s", domain.ErrItemNotFound, token)
		if !s.catalog.IsMaterial(token) {
			info, err = s.resolve(token, domain.CategoryRunes)
			if err != nil {
				info, err = s.resolve(token, "")
			}
		}

		if err != nil {
			// Not a rune: the token starts the trailing base-item name.
			// Base items only appear once, at the end, so a hit ends the
			// walk entirely.
			remainder := strings.Join(tokens[i:], " ")
			info, err = s.resolve(remainder, "")
			if err != nil {
				return domain.ItemInfo{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, name)
			}
			if err := accumulate(info); err != nil {
				return domain.ItemInfo{}, err
			}
			break
		}

		if err := accumulate(info); err != nil {
			return domain.ItemInfo{}, err
		}
	}

	displayName := normalizeTrailingGrade(tokens)

	if potency > 0 {
		if stats, ok := potencyStats[category]; ok {
			surcharge := domain.NewMoney(0, 0, stats[potency-1].GP, domain.OriginItem)
			added, err := sum.Add(surcharge)
			if err != nil {
				return domain.ItemInfo{}, err
			}
			sum = added
			if floor := stats[potency-1].Floor; floor > level {
				level = floor
			}
		}
	}

	return domain.ItemInfo{
		Name:     displayName,
		Price:    sum,
		Category: category,
		Level:    level,
		Rarity:   rarity,
	}, nil
}

// normalizeTrailingGrade rewrites a trailing bare grade word ("low",
// "(standard)", ...) to the canonical parenthesized form in the display
// name.
func normalizeTrailingGrade(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	if grade := canonicalGrade(tokens[len(tokens)-1]); grade != "" {
		normalized := make([]string, len(tokens))
		copy(normalized, tokens)
		normalized[len(normalized)-1] = grade
		return strings.Join(normalized, " ")
	}
	return strings.Join(tokens, " ")
}
