package catalog

// Table file names expected inside the tables directory
const (
	ItemsFileName     = "items.csv"
	AliasesFileName   = "rune_aliases.csv"
	MaterialsFileName = "materials.csv"
	WealthFileName    = "treasure_by_level.csv"
)

// Level bounds for the expected-wealth table
const (
	MinLevel = 1
	MaxLevel = 20
)

// Error message formats for table loading
const (
	ErrMsgReadTableFailed  = "failed to read table file: %w"
	ErrMsgParseTableFailed = "failed to parse table file %s: %w"
	ErrFmtRowFieldCount    = "%w: %s row %d has %d fields, want %d"
	ErrFmtRowBadLevel      = "%w: %s row %d has invalid level %q"
	ErrFmtRowBadRarity     = "%w: %s row %d has invalid rarity %q"
	ErrFmtRowBadPrice      = "%w: %s row %d has invalid price %q"
	ErrFmtRowEmptyName     = "%w: %s row %d has an empty name"
	ErrFmtDuplicateRow     = "%w: '%s' in category '%s'"
	ErrFmtWealthRowCount   = "%w: expected-wealth table has %d rows, want %d"
)
