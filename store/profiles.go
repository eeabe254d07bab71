package store

import (
	"context"
	"time"

	"github.com/junaidrashid-git/tribal-art-api/models"
)

func (s *Store) ProfileByID(ctx context.Context, id string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

func (s *Store) CreateProfile(ctx context.Context, profile *models.Profile) error {
	return s.db.WithContext(ctx).Create(profile).Error
}

func (s *Store) UpdateProfile(ctx context.Context, id string, updates map[string]interface{}) error {
	updates["updated_at"] = time.Now()
	return s.db.WithContext(ctx).Model(&models.Profile{}).Where("id = ?", id).Updates(updates).Error
}

// BuyerOrders lists a user's orders, newest first.
func (s *Store) BuyerOrders(ctx context.Context, buyerID string) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items").
		Where("buyer_id = ?", buyerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
