package store

import (
	"context"

	"github.com/junaidrashid-git/tribal-art-api/models"
)

// CartItems returns the user's lines joined with product and seller, so
// prices and titles are always current.
func (s *Store) CartItems(ctx context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := s.db.WithContext(ctx).
		Preload("Product.Seller").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (s *Store) InsertCartItem(ctx context.Context, userID, productID string, quantity int) error {
	if !validID(productID) {
		return unknownProduct(productID)
	}
	item := models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	return s.db.WithContext(ctx).Omit("Product").Create(&item).Error
}

func (s *Store) UpdateCartQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if !validID(productID) {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error
}

func (s *Store) DeleteCartItem(ctx context.Context, userID, productID string) error {
	if !validID(productID) {
		return nil
	}
	return s.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
}

func (s *Store) ClearCart(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
