package store

import (
	"context"

	"github.com/junaidrashid-git/tribal-art-api/models"
)

func (s *Store) WishlistItems(ctx context.Context, userID string) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := s.db.WithContext(ctx).
		Preload("Product.Seller").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}

// InsertWishlistItem fails with gorm.ErrDuplicatedKey when the pair exists.
func (s *Store) InsertWishlistItem(ctx context.Context, userID, productID string) error {
	if !validID(productID) {
		return unknownProduct(productID)
	}
	item := models.WishlistItem{UserID: userID, ProductID: productID}
	return s.db.WithContext(ctx).Omit("Product").Create(&item).Error
}

func (s *Store) DeleteWishlistItem(ctx context.Context, userID, productID string) error {
	if !validID(productID) {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error
}
