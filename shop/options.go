package shop

import (
	"sort"
	"strings"

	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/shopspring/decimal"
)

// Options feed the filter sidebar.
type Options struct {
	Categories  []string     `json:"categories"`
	ArtStyles   []string     `json:"art_styles"`
	PriceRanges []PriceRange `json:"price_ranges"`
	SortKeys    []SortKey    `json:"sort_keys"`
}

func OptionsFor(products []models.Product) Options {
	return Options{
		Categories:  Categories(products),
		ArtStyles:   ArtStyles(products),
		PriceRanges: PriceRanges,
		SortKeys:    []SortKey{SortNewest, SortPriceLow, SortPriceHigh},
	}
}

// Categories lists the distinct categories, sorted.
func Categories(products []models.Product) []string {
	seen := map[string]bool{}
	for _, p := range products {
		if p.Category != "" {
			seen[p.Category] = true
		}
	}
	return sortedKeys(seen)
}

// ArtStyles lists every art form in use plus the known styles that some
// product's title or tags mention, sorted.
func ArtStyles(products []models.Product) []string {
	seen := map[string]bool{}
	for _, p := range products {
		if p.ArtForm != nil && *p.ArtForm != "" {
			seen[*p.ArtForm] = true
		}
		for _, style := range KnownArtStyles {
			if mentionsStyle(p, style) {
				seen[style] = true
			}
		}
	}
	return sortedKeys(seen)
}

// mentionsStyle is MatchesArtStyle without the art form, which is already
// listed on its own.
func mentionsStyle(p models.Product, style string) bool {
	q := p
	q.ArtForm = nil
	return MatchesArtStyle(q, style)
}

// Featured is the first n products of the catalog, i.e. the newest.
func Featured(products []models.Product, n int) []models.Product {
	if n > len(products) {
		n = len(products)
	}
	out := make([]models.Product, n)
	copy(out, products[:n])
	return out
}

var categoryTags = map[string][]string{
	"Painting":  {"handmade", "art", "canvas"},
	"Sculpture": {"3d", "carved", "artistic"},
	"Pottery":   {"ceramic", "clay", "traditional"},
	"Textile":   {"fabric", "woven", "handloom"},
	"Decor":     {"home", "decoration", "interior"},
	"Portrait":  {"face", "figure", "realistic"},
}

var artFormTags = map[string][]string{
	"Madhubani":   {"bihar", "folk", "mithila"},
	"Warli":       {"maharashtra", "tribal", "geometric"},
	"Gond":        {"madhya pradesh", "dots", "patterns"},
	"Pattachitra": {"odisha", "scroll", "mythological"},
	"Tanjore":     {"tamil nadu", "gold", "religious"},
	"Kalamkari":   {"andhra pradesh", "pen work", "natural dyes"},
}

// ProductCategories and ArtForms are the choices offered on the listing form.
var (
	ProductCategories = []string{"Portrait", "Painting", "Sculpture", "Decor", "Pottery", "Textile"}
	ArtForms          = []string{
		"Madhubani", "Warli", "Gond", "Dhokra", "Lippn", "Terracotta art",
		"Baster art", "Bhil / Pithora", "Bamboo craft",
	}
)

// GenerateTags builds a listing's tags from its form selections, without
// duplicates, in first-seen order.
func GenerateTags(category, artForm, region string) []string {
	var tags []string
	for _, v := range []string{category, artForm, region} {
		if v != "" {
			tags = append(tags, strings.ToLower(v))
		}
	}
	tags = append(tags, categoryTags[category]...)
	tags = append(tags, artFormTags[artForm]...)
	return dedupe(tags)
}

// ParseList splits a comma separated form field, dropping blanks.
func ParseList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

var serviceFeeRate = decimal.RequireFromString("0.05")

// ServiceFee is the platform's 5% cut, rounded to whole rupees.
func ServiceFee(price decimal.Decimal) decimal.Decimal {
	return price.Mul(serviceFeeRate).Round(0)
}

func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := values[:0:0]
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func sortedKeys(m map[string]bool) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
