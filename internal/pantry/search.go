package pantry

import (
	"regexp"
	"strconv"
	"strings"
)

// Product is a priced item in the product list
type Product struct {
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Price int    `json:"price"`
}

var products = []Product{
	{"Apple", "Organic", 100},
	{"Banana", "Fresh", 40},
	{"Mango", "Local", 120},
	{"Orange", "Imported", 90},
	{"Grapes", "Green", 80},
	{"Strawberries", "Fresh", 150},
	{"Cherries", "Organic", 200},
	{"Pineapple", "Queen", 110},
	{"Watermelon", "Sweet", 70},

	{"Potato", "Local", 30},
	{"Onion", "Nashik", 40},
	{"Tomato", "Desi", 50},
	{"Carrot", "Organic", 60},
	{"Broccoli", "Fresh", 80},
	{"Spinach", "Organic", 25},
	{"Cucumber", "Farm Fresh", 35},

	{"Rice", "Basmati", 200},
	{"Brown Rice", "Organic", 250},
	{"Wheat Flour", "Aashirvaad", 220},
	{"Pasta", "Local", 90},
	{"Sugar", "Refined", 50},
	{"Jaggery", "Organic", 70},
	{"Salt", "Tata", 20},
	{"Olive Oil", "Figaro", 450},
	{"Vegetable Oil", "Fortune", 150},

	{"Milk", "Amul", 30},
	{"Almond Milk", "So Good", 120},
	{"Butter", "Amul", 55},
	{"Margarine", "Nutralite", 60},
	{"Cheese", "Britannia", 80},
	{"Yogurt", "Nestle", 40},

	{"Cookies", "Britannia", 50},
	{"Chips", "Lays", 20},
	{"Baked Chips", "Lays", 30},
	{"Salsa", "Doritos", 100},
	{"Nuts", "Happilo", 300},

	{"Bread", "Modern", 40},
	{"Brown Bread", "Britannia", 50},

	{"Pasta Sauce", "Barilla", 180},
	{"Ketchup", "Kissan", 90},
	{"Honey", "Dabur", 150},

	{"Toothpaste", "Colgate", 40},
	{"Soap", "Dove", 45},
	{"Shampoo", "Head & Shoulders", 180},
}

var (
	underPrice   = regexp.MustCompile(`under\s*(\d+)`)
	overPrice    = regexp.MustCompile(`over\s*(\d+)`)
	betweenPrice = regexp.MustCompile(`between\s*(\d+)\s*and\s*(\d+)`)
)

// SearchQuery is a free-text product query with its filters pulled out.
// A zero MinPrice or MaxPrice means no bound.
type SearchQuery struct {
	Text     string `json:"text"`
	MinPrice int    `json:"min_price,omitempty"`
	MaxPrice int    `json:"max_price,omitempty"`
	Brand    string `json:"brand,omitempty"`
}

// ParseQuery extracts "under N", "over N", "between N and M" and a known
// brand name from a query. What remains is the text to match.
func ParseQuery(query string) SearchQuery {
	parsed := SearchQuery{Text: strings.ToLower(query)}

	if m := underPrice.FindStringSubmatch(parsed.Text); m != nil {
		parsed.MaxPrice = atoiOrZero(m[1])
		parsed.Text = strings.TrimSpace(strings.Replace(parsed.Text, m[0], "", 1))
	}
	if m := overPrice.FindStringSubmatch(parsed.Text); m != nil {
		parsed.MinPrice = atoiOrZero(m[1])
		parsed.Text = strings.TrimSpace(strings.Replace(parsed.Text, m[0], "", 1))
	}
	if m := betweenPrice.FindStringSubmatch(parsed.Text); m != nil {
		parsed.MinPrice = atoiOrZero(m[1])
		parsed.MaxPrice = atoiOrZero(m[2])
		parsed.Text = strings.TrimSpace(strings.Replace(parsed.Text, m[0], "", 1))
	}

	// Later brands in the list override earlier ones.
	for _, brand := range productBrands() {
		if strings.Contains(parsed.Text, brand) {
			parsed.Brand = brand
			parsed.Text = strings.TrimSpace(strings.Replace(parsed.Text, brand, "", 1))
		}
	}
	return parsed
}

// Search returns the products whose name or brand contains the query text
// and which satisfy its price and brand filters, in product-list order
func Search(query string) []Product {
	parsed := ParseQuery(query)

	results := make([]Product, 0)
	for _, product := range products {
		name, brand := strings.ToLower(product.Name), strings.ToLower(product.Brand)
		if !strings.Contains(name, parsed.Text) && !strings.Contains(brand, parsed.Text) {
			continue
		}
		if parsed.MaxPrice > 0 && product.Price > parsed.MaxPrice {
			continue
		}
		if parsed.MinPrice > 0 && product.Price < parsed.MinPrice {
			continue
		}
		if parsed.Brand != "" && brand != parsed.Brand {
			continue
		}
		results = append(results, product)
	}
	return results
}

// ItemPrice looks up the listed price of a product by exact name, ignoring case
func ItemPrice(name string) (int, bool) {
	for _, product := range products {
		if strings.EqualFold(product.Name, name) {
			return product.Price, true
		}
	}
	return 0, false
}

// productBrands lists the distinct lowercased brands in first-seen order
func productBrands() []string {
	seen := make(map[string]bool)
	brands := make([]string, 0)
	for _, product := range products {
		brand := strings.ToLower(product.Brand)
		if !seen[brand] {
			seen[brand] = true
			brands = append(brands, brand)
		}
	}
	return brands
}

func atoiOrZero(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}
