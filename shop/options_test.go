package shop

import (
	"testing"

	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCategoriesAndArtStyles(t *testing.T) {
	products := []models.Product{
		{Category: "Painting", ArtForm: artForm("Madhubani")},
		{Category: "Pottery", Title: "Santhal village pot"},
		{Category: "Painting", Tags: []string{"gond", "dots"}},
		{Category: ""},
	}
	assert.Equal(t, []string{"Painting", "Pottery"}, Categories(products))
	assert.Equal(t, []string{"Gond Art", "Madhubani", "Santhal Art"}, ArtStyles(products))
}

func TestGenerateTags(t *testing.T) {
	assert.Equal(t,
		[]string{"painting", "warli", "maharashtra", "handmade", "art", "canvas", "tribal", "geometric"},
		GenerateTags("Painting", "Warli", "Maharashtra"))

	assert.Equal(t,
		[]string{"pottery", "dhokra", "west bengal", "ceramic", "clay", "traditional"},
		GenerateTags("Pottery", "Dhokra", "West Bengal"))

	assert.Empty(t, GenerateTags("", "", ""))
}

func TestParseList(t *testing.T) {
	assert.Equal(t, []string{"cotton", "natural dye"}, ParseList(" cotton, natural dye ,, "))
	assert.Nil(t, ParseList(""))
}

func TestServiceFee(t *testing.T) {
	assert.Equal(t, "150", ServiceFee(decimal.NewFromInt(3000)).String())
	assert.Equal(t, "50", ServiceFee(decimal.NewFromInt(999)).String())
	assert.Equal(t, "0", ServiceFee(decimal.Zero).String())
}

func TestFeatured(t *testing.T) {
	products := []models.Product{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	assert.Equal(t, []string{"1", "2"}, idsOf(Featured(products, 2)))
	assert.Len(t, Featured(products, 6), 3)
}
