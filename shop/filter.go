// Package shop derives the browse view from the catalog: search, category,
// art style and price filters plus sorting. Everything here is pure.
package shop

import (
	"math"
	"sort"
	"strings"

	"github.com/junaidrashid-git/tribal-art-api/models"
)

type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
)

// PriceRange is a labeled bucket over whole rupees, both ends inclusive.
type PriceRange struct {
	Label string `json:"label"`
	Min   int64  `json:"min"`
	Max   int64  `json:"max"`
}

// PriceRanges are the fixed shop buckets. They are compared on the floored
// rupee amount so every non-negative price lands in exactly one bucket.
var PriceRanges = []PriceRange{
	{Label: "Under ₹5,000", Min: 0, Max: 4999},
	{Label: "₹5,000 - ₹10,000", Min: 5000, Max: 10000},
	{Label: "₹10,000 - ₹20,000", Min: 10001, Max: 20000},
	{Label: "Above ₹20,000", Min: 20001, Max: math.MaxInt64},
}

// KnownArtStyles are offered as filters whenever some product mentions them.
var KnownArtStyles = []string{
	"Gond Art", "Warli Art", "Madhubani Art", "Pithora Art", "Dokra Art",
	"Toda Embroidery", "Bhil Art", "Santhal Art", "Saura Art", "Kurumba Art",
}

type Filter struct {
	Query       string
	Categories  []string
	ArtStyles   []string
	PriceRanges []string
	Sort        SortKey
}

// Apply returns the products matching f, in the order f asks for. The input
// slice is not modified. Groups combine with AND, values within a group
// with OR.
func Apply(products []models.Product, f Filter) []models.Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))
	ranges := lookupRanges(f.PriceRanges)

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if query != "" && !matchesQuery(p, query) {
			continue
		}
		if len(f.Categories) > 0 && !contains(f.Categories, p.Category) {
			continue
		}
		if len(f.ArtStyles) > 0 && !matchesAnyStyle(p, f.ArtStyles) {
			continue
		}
		if len(f.PriceRanges) > 0 && !inAnyRange(p, ranges) {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	}
	return out
}

// InRange reports whether the product's price falls in r.
func InRange(p models.Product, r PriceRange) bool {
	rupees := p.Price.Floor().IntPart()
	return rupees >= r.Min && rupees <= r.Max
}

// MatchesArtStyle is the fuzzy style match: the style name, lowercased and
// without its " art" suffix, is looked for in the art form, the title and
// the tags.
func MatchesArtStyle(p models.Product, style string) bool {
	full := strings.ToLower(style)
	short := strings.Replace(full, " art", "", 1)

	if p.ArtForm != nil && strings.Contains(strings.ToLower(*p.ArtForm), short) {
		return true
	}
	title := strings.ToLower(p.Title)
	if strings.Contains(title, short) || strings.Contains(title, full) {
		return true
	}
	for _, tag := range p.Tags {
		tag = strings.ToLower(tag)
		if strings.Contains(tag, short) || strings.Contains(tag, full) {
			return true
		}
	}
	return false
}

func matchesQuery(p models.Product, query string) bool {
	return strings.Contains(strings.ToLower(p.Title), query) ||
		strings.Contains(strings.ToLower(p.SellerName()), query) ||
		strings.Contains(strings.ToLower(p.Category), query)
}

func matchesAnyStyle(p models.Product, styles []string) bool {
	for _, style := range styles {
		if MatchesArtStyle(p, style) {
			return true
		}
	}
	return false
}

func inAnyRange(p models.Product, ranges []PriceRange) bool {
	for _, r := range ranges {
		if InRange(p, r) {
			return true
		}
	}
	return false
}

// lookupRanges drops unknown labels, so a filter of only unknown labels
// matches nothing.
func lookupRanges(labels []string) []PriceRange {
	var out []PriceRange
	for _, label := range labels {
		for _, r := range PriceRanges {
			if r.Label == label {
				out = append(out, r)
			}
		}
	}
	return out
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
