package pantry

import (
	"testing"
	"time"

	"pantry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryTemplate(t *testing.T) {
	stamp := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	analyzer := NewAnalyzer(nil, WithClock(func() time.Time { return stamp }))

	template := analyzer.InventoryTemplate()

	assert.Equal(t, stamp, template.LastUpdated)
	require.Len(t, template.Categories, 8)

	for _, name := range analyzer.Catalog().CategoryNames() {
		category, ok := template.Categories[name]
		require.True(t, ok, "category %s", name)
		assert.NotEmpty(t, category.Items)

		for item, entry := range category.Items {
			assert.NotContains(t, item, "_")
			assert.Equal(t, 0, entry.Quantity, item)
			assert.Equal(t, "units", entry.Unit, item)
			assert.Nil(t, entry.ExpiryDate, item)
			assert.Nil(t, entry.LastRestocked, item)
			assert.Equal(t, 1, entry.LowStockThreshold, item)
		}
	}

	assert.Contains(t, template.Categories[models.CategoryOilsVinegars].Items, "olive oil")
	assert.Len(t, template.Categories[models.CategoryGrains].Items, 7)
}

func TestInventoryTemplate_FreshPerCall(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	first := analyzer.InventoryTemplate()
	entry := first.Categories[models.CategoryGrains].Items["rice"]
	entry.Quantity = 5
	first.Categories[models.CategoryGrains].Items["rice"] = entry

	second := analyzer.InventoryTemplate()
	assert.Equal(t, 0, second.Categories[models.CategoryGrains].Items["rice"].Quantity)
}
