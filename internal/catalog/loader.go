package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/osse101/LootLedger_Go/internal/domain"
)

// Sentinel errors for table loading
var (
	ErrInvalidTable = errors.New("invalid table")

	ErrDuplicateEntry = errors.New("duplicate catalog entry")
)

// Loader reads and validates the catalog tables from a directory.
type Loader interface {
	Load(dir string) (*Catalog, error)
}

type tableLoader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &tableLoader{}
}

// Load reads the four catalog tables from dir and builds an immutable
// Catalog. Rows are validated as they are read; any malformed row fails
// the whole load, since the catalog is trusted configuration.
func (l *tableLoader) Load(dir string) (*Catalog, error) {
	entries, err := l.loadItems(filepath.Join(dir, ItemsFileName))
	if err != nil {
		return nil, err
	}

	aliases, err := l.loadAliases(filepath.Join(dir, AliasesFileName))
	if err != nil {
		return nil, err
	}

	materials, err := l.loadMaterials(filepath.Join(dir, MaterialsFileName))
	if err != nil {
		return nil, err
	}

	wealth, err := l.loadWealth(filepath.Join(dir, WealthFileName))
	if err != nil {
		return nil, err
	}

	return New(entries, aliases, materials, wealth), nil
}

func readTable(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadTableFailed, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf(ErrMsgParseTableFailed, filepath.Base(path), err)
	}
	return records, nil
}

// loadItems parses name,category,level,rarity,price rows. A header row is
// recognized by its literal "name" first field and skipped.
func (l *tableLoader) loadItems(path string) ([]domain.CatalogEntry, error) {
	records, err := readTable(path)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(records))
	entries := make([]domain.CatalogEntry, 0, len(records))

	for i, rec := range records {
		if i == 0 && len(rec) > 0 && strings.EqualFold(rec[0], "name") {
			continue
		}
		if len(rec) != 5 {
			return nil, fmt.Errorf(ErrFmtRowFieldCount, ErrInvalidTable, ItemsFileName, i+1, len(rec), 5)
		}

		name := strings.ToLower(strings.TrimSpace(rec[0]))
		if name == "" {
			return nil, fmt.Errorf(ErrFmtRowEmptyName, ErrInvalidTable, ItemsFileName, i+1)
		}
		category := strings.ToLower(strings.TrimSpace(rec[1]))

		key := name + "\x00" + category
		if seen[key] {
			return nil, fmt.Errorf(ErrFmtDuplicateRow, ErrDuplicateEntry, name, category)
		}
		seen[key] = true

		level, err := strconv.Atoi(strings.TrimSpace(rec[2]))
		if err != nil || level < 0 {
			return nil, fmt.Errorf(ErrFmtRowBadLevel, ErrInvalidTable, ItemsFileName, i+1, rec[2])
		}

		rarity := domain.Rarity(strings.ToLower(strings.TrimSpace(rec[3])))
		if !rarity.Valid() {
			return nil, fmt.Errorf(ErrFmtRowBadRarity, ErrInvalidTable, ItemsFileName, i+1, rec[3])
		}

		price := strings.TrimSpace(rec[4])
		if _, err := domain.ParsePrice(price, domain.OriginItem); err != nil {
			return nil, fmt.Errorf(ErrFmtRowBadPrice, ErrInvalidTable, ItemsFileName, i+1, rec[4])
		}

		entries = append(entries, domain.CatalogEntry{
			Name:     name,
			Category: domain.Category(category),
			Level:    level,
			Rarity:   rarity,
			Price:    price,
		})
	}

	return entries, nil
}

// loadAliases parses name,replacement rows. A missing second field means
// the token is a grammatical filler and prices to nothing.
func (l *tableLoader) loadAliases(path string) (map[string]string, error) {
	records, err := readTable(path)
	if err != nil {
		return nil, err
	}

	aliases := make(map[string]string, len(records))
	for i, rec := range records {
		if len(rec) < 1 || len(rec) > 2 {
			return nil, fmt.Errorf(ErrFmtRowFieldCount, ErrInvalidTable, AliasesFileName, i+1, len(rec), 2)
		}

		name := strings.ToLower(strings.TrimSpace(rec[0]))
		if name == "" {
			return nil, fmt.Errorf(ErrFmtRowEmptyName, ErrInvalidTable, AliasesFileName, i+1)
		}

		replacement := ""
		if len(rec) == 2 {
			replacement = strings.ToLower(strings.TrimSpace(rec[1]))
		}
		aliases[name] = replacement
	}

	return aliases, nil
}

// loadMaterials parses a one-name-per-line material list.
func (l *tableLoader) loadMaterials(path string) ([]string, error) {
	records, err := readTable(path)
	if err != nil {
		return nil, err
	}

	materials := make([]string, 0, len(records))
	for i, rec := range records {
		name := strings.ToLower(strings.TrimSpace(rec[0]))
		if name == "" {
			return nil, fmt.Errorf(ErrFmtRowEmptyName, ErrInvalidTable, MaterialsFileName, i+1)
		}
		materials = append(materials, name)
	}

	return materials, nil
}

// loadWealth parses level,total_gp rows and requires exactly one row per
// level 1-20.
func (l *tableLoader) loadWealth(path string) (map[int]int, error) {
	records, err := readTable(path)
	if err != nil {
		return nil, err
	}

	wealth := make(map[int]int, MaxLevel)
	for i, rec := range records {
		if i == 0 && len(rec) > 0 && strings.EqualFold(rec[0], "level") {
			continue
		}
		if len(rec) != 2 {
			return nil, fmt.Errorf(ErrFmtRowFieldCount, ErrInvalidTable, WealthFileName, i+1, len(rec), 2)
		}

		level, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil || level < MinLevel || level > MaxLevel {
			return nil, fmt.Errorf(ErrFmtRowBadLevel, ErrInvalidTable, WealthFileName, i+1, rec[0])
		}

		gp, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil || gp < 0 {
			return nil, fmt.Errorf(ErrFmtRowBadPrice, ErrInvalidTable, WealthFileName, i+1, rec[1])
		}

		wealth[level] = gp
	}

	if len(wealth) != MaxLevel {
		return nil, fmt.Errorf(ErrFmtWealthRowCount, ErrInvalidTable, len(wealth), MaxLevel)
	}

	return wealth, nil
}
