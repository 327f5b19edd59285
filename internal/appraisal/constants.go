package appraisal

import "github.com/osse101/LootLedger_Go/internal/domain"

// DefaultCacheSize bounds the unit-price LRU cache.
const DefaultCacheSize = 512

// potencyTokens are the fundamental rune prefixes. Seeing any of them
// anywhere in a raw name routes the whole name through rune breakdown.
var potencyTokens = [...]string{"+1", "+2", "+3"}

// gradePrefixes are the rune grade words that fuse with the following
// token into "<rune> (<grade>)".
var gradePrefixes = map[string]bool{
	"lesser":   true,
	"moderate": true,
	"greater":  true,
	"major":    true,
	"true":     true,
}

// materialGrades maps any token containing the bare grade word to the
// canonical parenthesized form used by the catalog.
var materialGrades = []struct {
	word      string
	canonical string
}{
	{"low", "(low-grade)"},
	{"standard", "(standard-grade)"},
	{"high", "(high-grade)"},
}

// materialKeywords maps an item category to the keyword used in material
// price row names ("silver weapon (low-grade)" and so on).
var materialKeywords = map[domain.Category]string{
	domain.CategoryWeapons:         "weapon",
	domain.CategoryArmor:           "armor",
	domain.CategoryShields:         "shield",
	domain.CategoryMaterials:       "object",
	domain.CategoryAdventuringGear: "object",
}

// potencyStats is the flat gold surcharge and level floor per potency
// tier, keyed by category. Categories outside weapons and armor take no
// surcharge and no floor.
var potencyStats = map[domain.Category][3]struct {
	GP    int
	Floor int
}{
	domain.CategoryWeapons: {{35, 2}, {935, 10}, {8935, 16}},
	domain.CategoryArmor:   {{160, 5}, {1060, 11}, {20560, 18}},
}

// Difference verdicts against expected wealth
const (
	VerdictTooMuch   = "too much"
	VerdictTooLittle = "too little"
	VerdictNone      = "none"
)
