package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/LootLedger_Go/internal/domain"
)

func testCatalog() *Catalog {
	return New(
		[]domain.CatalogEntry{
			{Name: "Longsword", Category: "Weapons", Level: 0, Rarity: domain.RarityCommon, Price: "1 gp"},
			{Name: "chain", Category: domain.CategoryAdventuringGear, Level: 0, Rarity: domain.RarityCommon, Price: "4 gp"},
			{Name: "chain", Category: domain.CategoryWeapons, Level: 1, Rarity: domain.RarityUncommon, Price: "9 gp"},
			{Name: "striking", Category: domain.CategoryRunes, Level: 4, Rarity: domain.RarityCommon, Price: "65 gp"},
		},
		map[string]string{"of": "", "ghost": "ghost touch"},
		[]string{"silver", "cold iron"},
		map[int]int{
			1: 175, 2: 300, 3: 500, 4: 850, 5: 1350,
			6: 2000, 7: 2900, 8: 4000,
		},
	)
}

func TestLookupUnrestricted(t *testing.T) {
	cat := testCatalog()

	entry, err := cat.Lookup("longsword", "")
	require.NoError(t, err)

	assert.Equal(t, "longsword", entry.Name)
	assert.Equal(t, domain.CategoryWeapons, entry.Category)
	assert.Equal(t, "1 gp", entry.Price)
}

func TestLookupUnknownName(t *testing.T) {
	cat := testCatalog()

	_, err := cat.Lookup("flobberdoodle", "")

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestLookupRestrictedDisambiguates(t *testing.T) {
	cat := testCatalog()

	// Unrestricted lookup returns the first row loaded.
	entry, err := cat.Lookup("chain", "")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryAdventuringGear, entry.Category)

	entry, err = cat.Lookup("chain", domain.CategoryWeapons)
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryWeapons, entry.Category)
	assert.Equal(t, "9 gp", entry.Price)
}

func TestLookupRestrictedSubstringMatch(t *testing.T) {
	cat := testCatalog()

	// "weapon" matches category "weapons" by substring.
	entry, err := cat.Lookup("chain", "weapon")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryWeapons, entry.Category)
}

func TestLookupRestrictedMiss(t *testing.T) {
	cat := testCatalog()

	_, err := cat.Lookup("longsword", domain.CategoryRunes)

	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestClosestMatch(t *testing.T) {
	cat := testCatalog()

	assert.Equal(t, "longsword", cat.ClosestMatch("longswrod"))
	assert.Equal(t, "chain", cat.ClosestMatch("chian"))
}

func TestClosestMatchEmptyCatalog(t *testing.T) {
	cat := New(nil, nil, nil, nil)

	assert.Equal(t, "", cat.ClosestMatch("anything"))
}

func TestIsMaterial(t *testing.T) {
	cat := testCatalog()

	assert.True(t, cat.IsMaterial("silver"))
	assert.True(t, cat.IsMaterial("cold iron"))
	assert.False(t, cat.IsMaterial("longsword"))
}

func TestAliasFor(t *testing.T) {
	cat := testCatalog()

	replacement, ok := cat.AliasFor("ghost")
	assert.True(t, ok)
	assert.Equal(t, "ghost touch", replacement)

	// Filler words alias to nothing but are still known.
	replacement, ok = cat.AliasFor("of")
	assert.True(t, ok)
	assert.Equal(t, "", replacement)

	_, ok = cat.AliasFor("sword")
	assert.False(t, ok)
}

func TestExpectedWealth(t *testing.T) {
	cat := testCatalog()

	gp, err := cat.ExpectedWealth(5)
	require.NoError(t, err)
	assert.Equal(t, 1350, gp)

	_, err = cat.ExpectedWealth(0)
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)

	_, err = cat.ExpectedWealth(21)
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
}

func TestExpectedWealthRangeIncludesBothEndpoints(t *testing.T) {
	cat := testCatalog()

	// 5 through 8: 1350 + 2000 + 2900 + 4000.
	gp, err := cat.ExpectedWealthRange(5, 8)
	require.NoError(t, err)
	assert.Equal(t, 10250, gp)

	// A single-level range is just that level.
	gp, err = cat.ExpectedWealthRange(7, 7)
	require.NoError(t, err)
	assert.Equal(t, 2900, gp)
}

func TestExpectedWealthRangeSwapsReversedBounds(t *testing.T) {
	cat := testCatalog()

	gp, err := cat.ExpectedWealthRange(8, 5)
	require.NoError(t, err)
	assert.Equal(t, 10250, gp)
}

func TestExpectedWealthRangeOutOfBounds(t *testing.T) {
	cat := testCatalog()

	_, err := cat.ExpectedWealthRange(0, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)

	_, err = cat.ExpectedWealthRange(18, 21)
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
}

func TestSize(t *testing.T) {
	cat := testCatalog()

	// "chain" appears in two categories but counts once.
	assert.Equal(t, 3, cat.Size())
}
