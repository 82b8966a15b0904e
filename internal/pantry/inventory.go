package pantry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"pantry/internal/models"

	"github.com/oklog/ulid/v2"
)

var (
	// ErrItemNotFound is returned when an operation names an untracked item
	ErrItemNotFound = errors.New("item not found")
	// ErrInvalidQuantity is returned for negative quantities
	ErrInvalidQuantity = errors.New("quantity must not be negative")
)

// Inventory is an in-memory pantry stock book keyed by canonical item name
type Inventory struct {
	catalog *Catalog
	now     func() time.Time

	mu    sync.RWMutex
	items map[string]*models.InventoryItem
}

// NewInventory creates an empty stock book. A nil catalog selects the built-in one.
func NewInventory(catalog *Catalog, opts ...InventoryOption) *Inventory {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	inv := &Inventory{
		catalog: catalog,
		now:     time.Now,
		items:   make(map[string]*models.InventoryItem),
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// InventoryOption configures an Inventory
type InventoryOption func(*Inventory)

// WithInventoryClock overrides the time source used for restock dates
func WithInventoryClock(now func() time.Time) InventoryOption {
	return func(inv *Inventory) {
		inv.now = now
	}
}

// AddItem records a purchase. Quantities of an already tracked item are
// summed. An empty category is filled in from the catalog.
func (inv *Inventory) AddItem(name string, category models.Category, quantity int, unit string) (models.InventoryItem, error) {
	key := Normalize(name)
	if key == "" {
		return models.InventoryItem{}, models.ErrMissingName
	}
	if quantity < 0 {
		return models.InventoryItem{}, fmt.Errorf("add %q: %w", name, ErrInvalidQuantity)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	restocked := inv.now()
	if item, exists := inv.items[key]; exists {
		item.Quantity += quantity
		item.LastRestocked = &restocked
		return *item, nil
	}

	if category == "" {
		category = models.CategoryUncategorized
		if matched, ok := inv.catalog.Categorize(key); ok {
			category = matched
		}
	}
	if unit == "" {
		unit = models.DefaultUnit
	}

	item := &models.InventoryItem{
		ID:                ulid.Make().String(),
		Key:               key,
		Name:              name,
		Category:          category,
		Quantity:          quantity,
		Unit:              unit,
		LastRestocked:     &restocked,
		LowStockThreshold: models.DefaultLowStockThreshold,
	}
	inv.items[key] = item
	return *item, nil
}

// RemoveItem takes quantity out of stock. Stock never drops below zero.
func (inv *Inventory) RemoveItem(name string, quantity int) (models.InventoryItem, error) {
	if quantity < 0 {
		return models.InventoryItem{}, fmt.Errorf("remove %q: %w", name, ErrInvalidQuantity)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	item, exists := inv.items[Normalize(name)]
	if !exists {
		return models.InventoryItem{}, fmt.Errorf("remove %q: %w", name, ErrItemNotFound)
	}

	item.Quantity -= quantity
	if item.Quantity < 0 {
		item.Quantity = 0
	}
	return *item, nil
}

// SetExpiry records the expiry date of a tracked item
func (inv *Inventory) SetExpiry(name string, expiry time.Time) (models.InventoryItem, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	item, exists := inv.items[Normalize(name)]
	if !exists {
		return models.InventoryItem{}, fmt.Errorf("set expiry of %q: %w", name, ErrItemNotFound)
	}
	item.ExpiryDate = &expiry
	return *item, nil
}

// Get returns a tracked item by name
func (inv *Inventory) Get(name string) (models.InventoryItem, bool) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	item, exists := inv.items[Normalize(name)]
	if !exists {
		return models.InventoryItem{}, false
	}
	return *item, true
}

// Items returns a snapshot of every tracked item ordered by key
func (inv *Inventory) Items() []models.InventoryItem {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	items := make([]models.InventoryItem, 0, len(inv.items))
	for _, item := range inv.items {
		items = append(items, *item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Key < items[j].Key
	})
	return items
}

// LowStock lists the names of items at or below their threshold
func (inv *Inventory) LowStock() []string {
	names := make([]string, 0)
	for _, item := range inv.Items() {
		if item.IsLowStock() {
			names = append(names, item.Name)
		}
	}
	return names
}

// Expired lists the names of items whose expiry date has passed
func (inv *Inventory) Expired() []string {
	now := inv.now()
	names := make([]string, 0)
	for _, item := range inv.Items() {
		if item.IsExpired(now) {
			names = append(names, item.Name)
		}
	}
	return names
}

// StatusOf derives an item's stock status at the inventory's current time
func (inv *Inventory) StatusOf(item models.InventoryItem) models.InventoryStatus {
	return item.Status(inv.now())
}

// StatusCounts tallies tracked items by stock status using the inventory clock
func (inv *Inventory) StatusCounts() map[models.InventoryStatus]int {
	now := inv.now()
	counts := make(map[models.InventoryStatus]int)
	for _, item := range inv.Items() {
		counts[item.Status(now)]++
	}
	return counts
}

// MissingEssentials lists, in essential-list order, the essentials that are
// untracked or out of stock
func (inv *Inventory) MissingEssentials() []string {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	missing := make([]string, 0)
	for _, essential := range inv.catalog.Essentials {
		item, exists := inv.items[essential]
		if !exists || item.Quantity == 0 {
			missing = append(missing, Display(essential))
		}
	}
	return missing
}

// ByCategory groups the tracked items by their category
func (inv *Inventory) ByCategory() map[models.Category][]models.InventoryItem {
	grouped := make(map[models.Category][]models.InventoryItem)
	for _, item := range inv.Items() {
		grouped[item.Category] = append(grouped[item.Category], item)
	}
	return grouped
}

// ShoppingList combines low-stock items and missing essentials
func (inv *Inventory) ShoppingList() models.ShoppingList {
	list := models.ShoppingList{
		LowStock:          inv.LowStock(),
		MissingEssentials: inv.MissingEssentials(),
	}
	list.WellStocked = len(list.LowStock) == 0 && len(list.MissingEssentials) == 0
	return list
}
