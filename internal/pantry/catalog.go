package pantry

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"pantry/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoryVocabulary is a pantry category and the canonical tokens that identify it
type CategoryVocabulary struct {
	Name  models.Category `yaml:"name"`
	Items []string        `yaml:"items"`
}

// Catalog holds the static lookup tables used by the analyzer. A Catalog is
// built once at start-up and shared read-only afterwards; nothing in this
// package mutates one after construction.
type Catalog struct {
	// Categories are tried in order; the first match wins
	Categories  []CategoryVocabulary `yaml:"categories"`
	Essentials  []string             `yaml:"essentials"`
	Complements map[string][]string  `yaml:"complements"`
}

var defaultCatalog = &Catalog{
	Categories: []CategoryVocabulary{
		{Name: models.CategoryGrains, Items: []string{"rice", "pasta", "oats", "quinoa", "barley", "couscous", "bulgur"}},
		{Name: models.CategorySpices, Items: []string{"salt", "pepper", "garlic_powder", "onion_powder", "paprika", "cumin", "oregano", "basil"}},
		{Name: models.CategoryOilsVinegars, Items: []string{"olive_oil", "vegetable_oil", "coconut_oil", "vinegar", "balsamic_vinegar"}},
		{Name: models.CategoryCannedGoods, Items: []string{"canned_tomatoes", "tomato_sauce", "canned_beans", "chicken_broth", "coconut_milk"}},
		{Name: models.CategoryBaking, Items: []string{"flour", "sugar", "baking_powder", "baking_soda", "vanilla_extract", "cocoa_powder"}},
		{Name: models.CategoryCondiments, Items: []string{"soy_sauce", "hot_sauce", "ketchup", "mustard", "mayonnaise", "honey"}},
		{Name: models.CategoryNutsSeeds, Items: []string{"almonds", "walnuts", "peanuts", "cashews", "chia_seeds", "sunflower_seeds"}},
		{Name: models.CategoryDriedGoods, Items: []string{"raisins", "dates", "dried_cranberries", "peanut_butter", "jam"}},
	},
	Essentials: []string{
		"rice", "pasta", "olive_oil", "salt", "black_pepper", "garlic_powder",
		"flour", "sugar", "canned_tomatoes", "chicken_broth", "soy_sauce",
		"honey", "oats", "peanut_butter", "canned_beans",
	},
	Complements: map[string][]string{
		"pasta":           {"tomato_sauce", "parmesan", "olive_oil"},
		"rice":            {"soy_sauce", "sesame_oil", "garlic"},
		"oats":            {"honey", "cinnamon", "dried_cranberries"},
		"flour":           {"baking_powder", "vanilla_extract", "sugar"},
		"chicken_broth":   {"rice", "pasta", "vegetables"},
		"canned_tomatoes": {"basil", "oregano", "garlic_powder"},
	},
}

// DefaultCatalog returns the built-in catalog. The returned value is shared.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// LoadCatalog reads a catalog from a YAML file. Every entry is normalized so
// the file may use display names ("olive oil") or canonical tokens.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog document
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw Catalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	catalog := &Catalog{
		Categories:  make([]CategoryVocabulary, 0, len(raw.Categories)),
		Essentials:  normalizeAll(raw.Essentials),
		Complements: make(map[string][]string, len(raw.Complements)),
	}
	for _, category := range raw.Categories {
		catalog.Categories = append(catalog.Categories, CategoryVocabulary{
			Name:  models.Category(Normalize(string(category.Name))),
			Items: normalizeAll(category.Items),
		})
	}
	for item, complements := range raw.Complements {
		catalog.Complements[Normalize(item)] = normalizeAll(complements)
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// Validate checks that the catalog is usable for classification
func (c *Catalog) Validate() error {
	if len(c.Categories) == 0 {
		return errors.New("catalog has no categories")
	}

	seen := make(map[models.Category]bool, len(c.Categories))
	for _, category := range c.Categories {
		if category.Name == "" {
			return errors.New("catalog category name is required")
		}
		if seen[category.Name] {
			return fmt.Errorf("duplicate catalog category: %s", category.Name)
		}
		seen[category.Name] = true

		if len(category.Items) == 0 {
			return fmt.Errorf("catalog category %s has no items", category.Name)
		}
		for _, item := range category.Items {
			if item == "" {
				return fmt.Errorf("catalog category %s has an empty item", category.Name)
			}
		}
	}

	for _, essential := range c.Essentials {
		if essential == "" {
			return errors.New("catalog has an empty essential item")
		}
	}
	return nil
}

// Categorize returns the first category whose vocabulary contains a word that
// is a substring of token. Matching is deliberately order-dependent: a token
// such as "basilica" lands in spices because it contains "basil".
func (c *Catalog) Categorize(token string) (models.Category, bool) {
	if token == "" {
		return "", false
	}
	for _, category := range c.Categories {
		for _, item := range category.Items {
			if strings.Contains(token, item) {
				return category.Name, true
			}
		}
	}
	return "", false
}

// CategoryNames lists the catalog categories in classification order
func (c *Catalog) CategoryNames() []models.Category {
	names := make([]models.Category, len(c.Categories))
	for i, category := range c.Categories {
		names[i] = category.Name
	}
	return names
}
