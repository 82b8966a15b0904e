package pantry

// Lookup tables for the shopping-list suggestion flow
var (
	historyPairings = []struct {
		trigger    string
		suggestion string
	}{
		{"bread", "butter"},
		{"milk", "cookies"},
		{"pasta", "pasta sauce"},
		{"chips", "salsa"},
	}

	seasonalItems = []string{
		"mango", "orange", "watermelon", "grapes", "apple", "strawberries", "cherries",
	}

	substitutes = map[string]string{
		"milk":       "almond milk",
		"butter":     "margarine",
		"bread":      "brown bread",
		"sugar":      "jaggery",
		"chips":      "baked chips",
		"white_rice": "brown rice",
	}
)

// SmartSuggestions proposes items for a shopping list from its history:
// common pairings, seasonal produce and healthier substitutes. The result has
// no duplicates, keeps first-seen order and never repeats a history item.
// Items are compared in canonical form.
func SmartSuggestions(history []string) []string {
	tokens := normalizeAll(history)
	inHistory := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		inHistory[token] = true
	}

	candidates := make([]string, 0, len(historyPairings)+len(seasonalItems)+len(tokens))
	for _, pairing := range historyPairings {
		if inHistory[pairing.trigger] {
			candidates = append(candidates, pairing.suggestion)
		}
	}
	candidates = append(candidates, seasonalItems...)
	for _, token := range tokens {
		if substitute, ok := substitutes[token]; ok {
			candidates = append(candidates, substitute)
		}
	}

	suggestions := make([]string, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, candidate := range candidates {
		token := Normalize(candidate)
		if seen[token] || inHistory[token] {
			continue
		}
		seen[token] = true
		suggestions = append(suggestions, candidate)
	}
	return suggestions
}
