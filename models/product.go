package models

import (
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type ProductStatus string

const (
	ProductActive ProductStatus = "active"
	ProductDraft  ProductStatus = "draft"
	ProductSold   ProductStatus = "sold"
)

// Valid reports whether s is one of the known listing states.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductActive, ProductDraft, ProductSold:
		return true
	}
	return false
}

type Product struct {
	ID            string              `gorm:"type:uuid;primaryKey" json:"id"`
	SellerID      string              `gorm:"type:uuid;index;not null" json:"seller_id"`
	Seller        Seller              `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE" json:"seller"`
	Title         string              `gorm:"not null" json:"title"`
	Description   string              `gorm:"type:text" json:"description"`
	Price         decimal.Decimal     `gorm:"type:decimal(12,2);not null" json:"price"`
	OriginalPrice decimal.NullDecimal `gorm:"type:decimal(12,2)" json:"original_price"`
	Category      string              `gorm:"index" json:"category"`
	Region        string              `json:"region"`
	ArtForm       *string             `json:"art_form"`
	Dimensions    string              `json:"dimensions"`
	Materials     pq.StringArray      `gorm:"type:text[]" json:"materials"`
	Colors        pq.StringArray      `gorm:"type:text[]" json:"colors"`
	Tags          pq.StringArray      `gorm:"type:text[]" json:"tags"`
	Images        pq.StringArray      `gorm:"type:text[]" json:"images"`
	FeaturedImage string              `json:"featured_image"`
	Status        ProductStatus       `gorm:"type:VARCHAR(20);default:'draft';index" json:"status"`
	CreatedAt     time.Time           `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// SellerName is the denormalized display name joined at read time.
func (p Product) SellerName() string {
	return p.Seller.DisplayName
}

// DiscountPercent is the whole-number markdown from OriginalPrice, or 0 when
// there is none.
func (p Product) DiscountPercent() int64 {
	if !p.OriginalPrice.Valid || !p.OriginalPrice.Decimal.GreaterThan(p.Price) {
		return 0
	}
	off := p.OriginalPrice.Decimal.Sub(p.Price).Div(p.OriginalPrice.Decimal).Mul(decimal.NewFromInt(100))
	return off.Round(0).IntPart()
}
