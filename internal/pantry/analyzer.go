package pantry

import (
	"sort"
	"time"

	"pantry/internal/models"
)

// MostBoughtLimit caps the number of entries in a frequency ranking
const MostBoughtLimit = 10

// Analyzer turns shopping histories into frequency profiles, essential gaps
// and restocking suggestions. It holds no per-request state and is safe for
// concurrent use.
type Analyzer struct {
	catalog *Catalog
	now     func() time.Time
}

// Option configures an Analyzer
type Option func(*Analyzer)

// WithClock overrides the time source used to stamp inventory templates
func WithClock(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// NewAnalyzer creates an analyzer over the given catalog. A nil catalog
// selects the built-in one.
func NewAnalyzer(catalog *Catalog, opts ...Option) *Analyzer {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	a := &Analyzer{
		catalog: catalog,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Catalog returns the catalog the analyzer classifies against
func (a *Analyzer) Catalog() *Catalog {
	return a.catalog
}

// AnalyzeShoppingPatterns builds the frequency profile and essentials gap of
// a shopping history
func (a *Analyzer) AnalyzeShoppingPatterns(records []models.PurchaseRecord) models.PatternAnalysis {
	tokens := recordTokens(records)

	return models.PatternAnalysis{
		MostBoughtItems:      MostBought(tokens, MostBoughtLimit),
		CategoryDistribution: a.CategoryDistribution(tokens),
		MissingEssentials:    a.missingEssentials(tokens),
	}
}

// MissingEssentials lists, in essential-list order, the essentials that are
// not a substring of any purchased item
func (a *Analyzer) MissingEssentials(records []models.PurchaseRecord) []string {
	return a.missingEssentials(recordTokens(records))
}

func (a *Analyzer) missingEssentials(tokens []string) []string {
	missing := make([]string, 0)
	for _, essential := range a.catalog.Essentials {
		if !containedIn(essential, tokens) {
			missing = append(missing, Display(essential))
		}
	}
	return missing
}

// CategoryDistribution counts how many tokens fall into each category.
// Categories without a match are left out of the map.
func (a *Analyzer) CategoryDistribution(tokens []string) map[models.Category]int {
	distribution := make(map[models.Category]int)
	for _, token := range tokens {
		if category, ok := a.catalog.Categorize(token); ok {
			distribution[category]++
		}
	}
	return distribution
}

// MostBought ranks tokens by count, most frequent first. Ties keep the order
// in which the tokens were first seen. Empty tokens are not counted.
func MostBought(tokens []string, limit int) []models.ItemCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, token := range tokens {
		if token == "" {
			continue
		}
		if _, seen := counts[token]; !seen {
			order = append(order, token)
		}
		counts[token]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if limit >= 0 && len(order) > limit {
		order = order[:limit]
	}

	ranked := make([]models.ItemCount, len(order))
	for i, token := range order {
		ranked[i] = models.ItemCount{Item: token, Count: counts[token]}
	}
	return ranked
}

func recordTokens(records []models.PurchaseRecord) []string {
	tokens := make([]string, len(records))
	for i, record := range records {
		tokens[i] = Normalize(record.Name)
	}
	return tokens
}
