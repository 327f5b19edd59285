package domain

// Category classifies a catalog entry. Values mirror the catalog data and
// are compared as plain lowercase strings; restricted lookups match on
// substring, so category names stay singular tokens in the data.
type Category string

const (
	CategoryWeapons         Category = "weapons"
	CategoryArmor           Category = "armor"
	CategoryShields         Category = "shields"
	CategoryAdventuringGear Category = "adventuring gear"
	CategoryMaterials       Category = "materials"
	CategoryRunes           Category = "runes"
	CategoryCurrency        Category = "currency"
)

// Rarity is the item rarity ladder.
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
)

// rank returns the position in the total order common < uncommon < rare.
// Unknown values rank lowest.
func (r Rarity) rank() int {
	switch r {
	case RarityCommon:
		return 1
	case RarityUncommon:
		return 2
	case RarityRare:
		return 3
	default:
		return 0
	}
}

// HigherRarity returns the higher of two rarities. Commutative; ties
// resolve to either side.
func HigherRarity(a, b Rarity) Rarity {
	if a.rank() > b.rank() {
		return a
	}
	return b
}

// Valid reports whether r is one of the three known rarities.
func (r Rarity) Valid() bool {
	return r.rank() > 0
}

// CatalogEntry is one row of the item catalog. Price keeps the raw
// "<digits> <cp|sp|gp>" string from the data; it is parsed on demand.
type CatalogEntry struct {
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Level    int      `json:"level"`
	Rarity   Rarity   `json:"rarity"`
	Price    string   `json:"price"`
}

// ItemInfo is the result of decomposing and pricing one item name.
// Level is -1 for plain currency.
type ItemInfo struct {
	Name     string   `json:"name"`
	Price    Money    `json:"price"`
	Category Category `json:"category"`
	Level    int      `json:"level"`
	Rarity   Rarity   `json:"rarity"`
}

/// LootLine is one entry of a user-supplied loot list: a lowercased item
// name and a purchase quantity (defaulted to 1 by the parser).
type LootLine struct {
	Name   string `json:"name"`
	Amount int    `json:"amount"`
}
