package models

import "time"

// WishlistItem links a user to a saved product. Existence only.
type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:wishlist_user_product_key" json:"user_id"`
	ProductID string    `gorm:"type:uuid;not null;uniqueIndex:wishlist_user_product_key" json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product"`
	CreatedAt time.Time `json:"created_at"`
}

func (WishlistItem) TableName() string {
	return "wishlist"
}
