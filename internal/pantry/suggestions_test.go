package pantry

import (
	"fmt"
	"testing"

	"pantry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPantrySuggestions_Complements(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	suggestions := analyzer.PantrySuggestions([]string{"pasta"}, nil)

	assert.Contains(t, suggestions, models.Suggestion{
		Item:     "tomato sauce",
		Reason:   "Great with pasta",
		Category: models.SuggestionCategoryPantry,
	})
	for _, suggestion := range suggestions {
		assert.NotEqual(t, "pasta", suggestion.Item)
	}
}

func TestPantrySuggestions_Order(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	suggestions := analyzer.PantrySuggestions([]string{"pasta", "rice", "olive oil"}, nil)

	assert.Equal(t, []models.Suggestion{
		{Item: "tomato sauce", Reason: "Great with pasta", Category: "pantry"},
		{Item: "parmesan", Reason: "Great with pasta", Category: "pantry"},
		{Item: "soy sauce", Reason: "Great with rice", Category: "pantry"},
		{Item: "sesame oil", Reason: "Great with rice", Category: "pantry"},
		{Item: "garlic", Reason: "Great with rice", Category: "pantry"},
		{Item: "salt", Reason: "Pantry essential", Category: "pantry"},
		{Item: "black pepper", Reason: "Pantry essential", Category: "pantry"},
		{Item: "garlic powder", Reason: "Pantry essential", Category: "pantry"},
	}, suggestions)
}

func TestPantrySuggestions_EssentialsOnly(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	suggestions := analyzer.PantrySuggestions(nil, nil)

	require.Len(t, suggestions, MaxPantrySuggestions)
	items := make([]string, len(suggestions))
	for i, suggestion := range suggestions {
		assert.Equal(t, "Pantry essential", suggestion.Reason)
		items[i] = suggestion.Item
	}
	assert.Equal(t, []string{
		"rice", "pasta", "olive oil", "salt", "black pepper", "garlic powder", "flour", "sugar",
	}, items)
}

func TestPantrySuggestions_NeverExceedsCap(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	inputs := [][]string{
		nil,
		{"pasta"},
		{"pasta", "rice", "oats", "flour", "chicken broth", "canned tomatoes"},
		{"pasta", "pasta", "pasta", "Pasta!", "rice", "rice"},
	}
	many := make([]string, 0, 200)
	for i := 0; i < 200; i++ {
		many = append(many, fmt.Sprintf("item %d", i))
	}
	inputs = append(inputs, many)

	for _, items := range inputs {
		assert.LessOrEqual(t, len(analyzer.PantrySuggestions(items, nil)), MaxPantrySuggestions)
	}
}

func TestPantrySuggestions_ExcludesPresentItems(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	inputs := [][]string{
		{"pasta", "Tomato Sauce"},
		{"chicken broth", "rice", "pasta"},
		{"canned tomatoes", "basil", "oregano"},
		{"Organic Brown Rice", "oats", "honey"},
	}

	for _, items := range inputs {
		present := normalizeAll(items)
		for _, suggestion := range analyzer.PantrySuggestions(items, nil) {
			assert.NotContains(t, present, Normalize(suggestion.Item), "items %v", items)
		}
	}
}

func TestPantrySuggestions_EssentialSubstringOfPresent(t *testing.T) {
	analyzer := NewAnalyzer(nil)

	suggestions := analyzer.PantrySuggestions([]string{"organic brown rice"}, nil)

	for _, suggestion := range suggestions {
		assert.NotEqual(t, "rice", suggestion.Item)
	}
	assert.Equal(t, "pasta", suggestions[0].Item)
}

func TestPantrySuggestions_NoDuplicateItems(t *testing.T) {
	catalog := &Catalog{
		Categories: []CategoryVocabulary{
			{Name: models.CategoryGrains, Items: []string{"oats"}},
		},
		Essentials: []string{"honey", "salt"},
		Complements: map[string][]string{
			"oats": {"honey", "cinnamon"},
		},
	}
	analyzer := NewAnalyzer(catalog)

	suggestions := analyzer.PantrySuggestions([]string{"oats", "Oats"}, nil)

	assert.Equal(t, []models.Suggestion{
		{Item: "honey", Reason: "Great with oats", Category: "pantry"},
		{Item: "cinnamon", Reason: "Great with oats", Category: "pantry"},
		{Item: "salt", Reason: "Pantry essential", Category: "pantry"},
	}, suggestions)

	for _, items := range [][]string{nil, {"pasta"}, {"flour", "oats", "rice"}, {"chicken broth", "pasta"}} {
		seen := make(map[string]bool)
		for _, suggestion := range NewAnalyzer(nil).PantrySuggestions(items, nil) {
			assert.False(t, seen[suggestion.Item], "duplicate %q for %v", suggestion.Item, items)
			seen[suggestion.Item] = true
		}
	}
}

func TestPantrySuggestions_PreferencesIgnored(t *testing.T) {
	analyzer := NewAnalyzer(nil)
	items := []string{"flour", "oats"}

	prefs := &Preferences{Dietary: []string{"vegan"}, Disliked: []string{"honey"}}

	assert.Equal(t, analyzer.PantrySuggestions(items, nil), analyzer.PantrySuggestions(items, prefs))
}
