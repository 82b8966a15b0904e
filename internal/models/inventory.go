package models

import "time"

// Category represents one of the fixed pantry groupings
type Category string

const (
	// Pantry categories, in classification order
	CategoryGrains        Category = "grains"
	CategorySpices        Category = "spices"
	CategoryOilsVinegars  Category = "oils_vinegars"
	CategoryCannedGoods   Category = "canned_goods"
	CategoryBaking        Category = "baking"
	CategoryCondiments    Category = "condiments"
	CategoryNutsSeeds     Category = "nuts_seeds"
	CategoryDriedGoods    Category = "dried_goods"
	CategoryUncategorized Category = "uncategorized"
)

// InventoryStatus represents the stock status of a tracked pantry item
type InventoryStatus string

const (
	StatusInStock    InventoryStatus = "in_stock"
	StatusLow        InventoryStatus = "low"
	StatusOutOfStock InventoryStatus = "out_of_stock"
	StatusExpired    InventoryStatus = "expired"
)

const (
	// DefaultUnit is used when an item is tracked without a unit
	DefaultUnit = "units"
	// DefaultLowStockThreshold is the quantity at or below which an item is low
	DefaultLowStockThreshold = 1
)

// InventoryEntry is the per-item metadata record of an inventory template
type InventoryEntry struct {
	Quantity          int        `json:"quantity"`
	Unit              string     `json:"unit"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	LastRestocked     *time.Time `json:"last_restocked"`
	LowStockThreshold int        `json:"low_stock_threshold"`
}

// NewInventoryEntry returns an entry with all defaults applied
func NewInventoryEntry() InventoryEntry {
	return InventoryEntry{
		Quantity:          0,
		Unit:              DefaultUnit,
		LowStockThreshold: DefaultLowStockThreshold,
	}
}

// CategoryInventory holds the template entries of one category keyed by display name
type CategoryInventory struct {
	Items map[string]InventoryEntry `json:"items"`
}

// InventoryTemplate is an empty tracking skeleton covering every catalog item
type InventoryTemplate struct {
	LastUpdated time.Time                      `json:"last_updated"`
	Categories  map[Category]CategoryInventory `json:"categories"`
}

// InventoryItem represents an item tracked in the pantry stock book
type InventoryItem struct {
	ID                string     `json:"id"`
	Key               string     `json:"key"`
	Name              string     `json:"name"`
	Category          Category   `json:"category"`
	Quantity          int        `json:"quantity"`
	Unit              string     `json:"unit"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
	LastRestocked     *time.Time `json:"last_restocked,omitempty"`
	LowStockThreshold int        `json:"low_stock_threshold"`
}

// IsLowStock reports whether the quantity is at or below the threshold
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.LowStockThreshold
}

// IsExpired reports whether the item has an expiry date before now
func (i InventoryItem) IsExpired(now time.Time) bool {
	return i.ExpiryDate != nil && now.After(*i.ExpiryDate)
}

// Status derives the stock status of the item at the given time
func (i InventoryItem) Status(now time.Time) InventoryStatus {
	switch {
	case i.IsExpired(now):
		return StatusExpired
	case i.Quantity == 0:
		return StatusOutOfStock
	case i.IsLowStock():
		return StatusLow
	default:
		return StatusInStock
	}
}

// ShoppingList collects what needs buying to keep the pantry stocked
type ShoppingList struct {
	LowStock          []string `json:"low_stock"`
	MissingEssentials []string `json:"missing_essentials"`
	WellStocked       bool     `json:"well_stocked"`
}
