package models

import "encoding/json"

// SuggestionCategoryPantry tags suggestions produced by the pantry analyzer
const SuggestionCategoryPantry = "pantry"

// Suggestion is a recommended item with a human-readable reason
type Suggestion struct {
	Item     string `json:"item"`
	Reason   string `json:"reason"`
	Category string `json:"category"`
}

// ItemCount pairs a canonical item with the number of times it was bought
type ItemCount struct {
	Item  string
	Count int
}

// MarshalJSON encodes the pair as a two-element array, e.g. ["pasta", 3]
func (ic ItemCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{ic.Item, ic.Count})
}

// PatternAnalysis is the result of analyzing a shopping history
type PatternAnalysis struct {
	MostBoughtItems      []ItemCount      `json:"most_bought_items"`
	CategoryDistribution map[Category]int `json:"category_distribution"`
	MissingEssentials    []string         `json:"missing_essentials"`
}
