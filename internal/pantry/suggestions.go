package pantry

import "pantry/internal/models"

// MaxPantrySuggestions caps the length of a pantry suggestion list
const MaxPantrySuggestions = 8

// Preferences is reserved for user-specific tuning of suggestions. It is
// accepted by PantrySuggestions but does not influence the result yet.
type Preferences struct {
	Dietary  []string `json:"dietary,omitempty" yaml:"dietary"`
	Disliked []string `json:"disliked,omitempty" yaml:"disliked"`
}

// PantrySuggestions proposes complements for the current items, then pads
// with missing essentials, capped at MaxPantrySuggestions.
//
// Complements come first, per current item in input order and per table
// order, skipping anything already present. Essentials follow in list order
// unless they are a substring of a present item. An item suggested as a
// complement is not repeated as an essential.
func (a *Analyzer) PantrySuggestions(currentItems []string, prefs *Preferences) []models.Suggestion {
	present := normalizeAll(currentItems)
	presentSet := make(map[string]bool, len(present))
	for _, token := range present {
		presentSet[token] = true
	}

	suggestions := make([]models.Suggestion, 0, MaxPantrySuggestions)
	suggested := make(map[string]bool)
	add := func(token, reason string) bool {
		if suggested[token] {
			return true
		}
		if len(suggestions) >= MaxPantrySuggestions {
			return false
		}
		suggested[token] = true
		suggestions = append(suggestions, models.Suggestion{
			Item:     Display(token),
			Reason:   reason,
			Category: models.SuggestionCategoryPantry,
		})
		return true
	}

	for _, item := range present {
		for _, complement := range a.catalog.Complements[item] {
			if presentSet[complement] {
				continue
			}
			if !add(complement, "Great with "+Display(item)) {
				return suggestions
			}
		}
	}

	for _, essential := range a.catalog.Essentials {
		if containedIn(essential, present) {
			continue
		}
		if !add(essential, "Pantry essential") {
			return suggestions
		}
	}

	return suggestions
}
