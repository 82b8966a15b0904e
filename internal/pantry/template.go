package pantry

import "pantry/internal/models"

// InventoryTemplate builds an empty tracking skeleton covering every catalog
// item, stamped with the current time
func (a *Analyzer) InventoryTemplate() models.InventoryTemplate {
	template := models.InventoryTemplate{
		LastUpdated: a.now(),
		Categories:  make(map[models.Category]models.CategoryInventory, len(a.catalog.Categories)),
	}

	for _, category := range a.catalog.Categories {
		items := make(map[string]models.InventoryEntry, len(category.Items))
		for _, item := range category.Items {
			items[Display(item)] = models.NewInventoryEntry()
		}
		template.Categories[category.Name] = models.CategoryInventory{Items: items}
	}

	return template
}
