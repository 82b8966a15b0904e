package pantry

import "strings"

// GroceryOther is the shopping-list aisle for names no keyword matches
const GroceryOther = "Other"

// groceryAisles is checked in order; the first keyword found in a name wins
var groceryAisles = []struct {
	keyword string
	aisle   string
}{
	{"apple", "Fruits"}, {"banana", "Fruits"}, {"orange", "Fruits"},
	{"grapes", "Fruits"}, {"mango", "Fruits"}, {"watermelon", "Fruits"},
	{"strawberries", "Fruits"}, {"cherries", "Fruits"}, {"pineapple", "Fruits"},

	{"potato", "Vegetables"}, {"onion", "Vegetables"}, {"tomato", "Vegetables"},
	{"carrot", "Vegetables"}, {"spinach", "Vegetables"}, {"broccoli", "Vegetables"},
	{"cucumber", "Vegetables"},

	{"milk", "Dairy"}, {"cheese", "Dairy"}, {"butter", "Dairy"}, {"yogurt", "Dairy"},

	{"chips", "Snacks"}, {"cookies", "Snacks"}, {"nuts", "Snacks"},

	{"bread", "Bakery"}, {"cake", "Bakery"}, {"muffins", "Bakery"},

	{"rice", "Grains"}, {"pasta", "Grains"}, {"flour", "Grains"},

	{"sugar", "Pantry"}, {"salt", "Pantry"}, {"oil", "Pantry"},
	{"ketchup", "Pantry"}, {"honey", "Pantry"},

	{"soap", "Household"},

	{"toothpaste", "Personal Care"}, {"shampoo", "Personal Care"},
}

// GroceryCategory names the shopping-list aisle an item belongs to.
// Unlike Categorize this uses store aisles rather than pantry shelves.
func GroceryCategory(name string) string {
	lowered := strings.ToLower(name)
	for _, entry := range groceryAisles {
		if strings.Contains(lowered, entry.keyword) {
			return entry.aisle
		}
	}
	return GroceryOther
}
