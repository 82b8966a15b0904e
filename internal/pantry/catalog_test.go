package pantry

import (
	"os"
	"path/filepath"
	"testing"

	"pantry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	catalog := DefaultCatalog()

	tests := []struct {
		token string
		want  models.Category
		ok    bool
	}{
		{"olive_oil", models.CategoryOilsVinegars, true},
		{"brown_rice", models.CategoryGrains, true},
		{"garlic_powder", models.CategorySpices, true},
		{"tomato_sauce", models.CategoryCannedGoods, true},
		{"coconut_milk", models.CategoryCannedGoods, true},
		{"vanilla_extract", models.CategoryBaking, true},
		{"soy_sauce", models.CategoryCondiments, true},
		{"honey", models.CategoryCondiments, true},
		{"chia_seeds", models.CategoryNutsSeeds, true},
		{"peanut_butter", models.CategoryDriedGoods, true},
		{"xyz_unknown", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := catalog.Categorize(tt.token)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategorize_FirstCategoryWins(t *testing.T) {
	catalog := DefaultCatalog()

	// "rice_vinegar" matches grains (rice) and oils_vinegars (vinegar);
	// grains comes first.
	got, ok := catalog.Categorize("rice_vinegar")
	require.True(t, ok)
	assert.Equal(t, models.CategoryGrains, got)

	// Substring matching accepts words that merely contain a vocabulary entry.
	got, ok = catalog.Categorize("basilica")
	require.True(t, ok)
	assert.Equal(t, models.CategorySpices, got)
}

func TestDefaultCatalog(t *testing.T) {
	catalog := DefaultCatalog()

	require.NoError(t, catalog.Validate())
	assert.Equal(t, []models.Category{
		models.CategoryGrains,
		models.CategorySpices,
		models.CategoryOilsVinegars,
		models.CategoryCannedGoods,
		models.CategoryBaking,
		models.CategoryCondiments,
		models.CategoryNutsSeeds,
		models.CategoryDriedGoods,
	}, catalog.CategoryNames())
	assert.Len(t, catalog.Essentials, 15)
	assert.Same(t, catalog, DefaultCatalog())

	for _, category := range catalog.Categories {
		for _, item := range category.Items {
			assert.Equal(t, item, Normalize(item), "vocabulary entries are canonical")
		}
	}
}

func TestParseCatalog(t *testing.T) {
	doc := []byte(`
categories:
  - name: Snacks
    items: ["Potato Chips", pretzels]
  - name: drinks
    items: [sparkling water]
essentials: ["Potato Chips", sparkling water]
complements:
  Potato Chips: [salsa, "French Onion Dip"]
`)

	catalog, err := ParseCatalog(doc)
	require.NoError(t, err)

	assert.Equal(t, []models.Category{"snacks", "drinks"}, catalog.CategoryNames())
	assert.Equal(t, []string{"potato_chips", "pretzels"}, catalog.Categories[0].Items)
	assert.Equal(t, []string{"potato_chips", "sparkling_water"}, catalog.Essentials)
	assert.Equal(t, []string{"salsa", "french_onion_dip"}, catalog.Complements["potato_chips"])

	category, ok := catalog.Categorize("salted_potato_chips")
	require.True(t, ok)
	assert.Equal(t, models.Category("snacks"), category)
}

func TestParseCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "categories: [unterminated"},
		{"no categories", "essentials: [rice]"},
		{"empty category items", "categories:\n  - name: grains\n    items: []"},
		{"duplicate category", "categories:\n  - name: grains\n    items: [rice]\n  - name: Grains\n    items: [oats]"},
		{"blank item", "categories:\n  - name: grains\n    items: ['!!!']"},
		{"blank essential", "categories:\n  - name: grains\n    items: [rice]\nessentials: ['  ']"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories:\n  - name: grains\n    items: [rice]\n"), 0o644))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []models.Category{models.CategoryGrains}, catalog.CategoryNames())

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
