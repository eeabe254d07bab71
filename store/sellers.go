package store

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/tribal-art-api/models"
)

func (s *Store) SellerByUserID(ctx context.Context, userID string) (*models.Seller, error) {
	var seller models.Seller
	if err := s.db.WithContext(ctx).First(&seller, "user_id = ?", userID).Error; err != nil {
		return nil, notFound(err)
	}
	return &seller, nil
}

func (s *Store) SellerByID(ctx context.Context, id string) (*models.Seller, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	var seller models.Seller
	if err := s.db.WithContext(ctx).First(&seller, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &seller, nil
}

// Sellers lists artists newest first, optionally narrowed by a case-insensitive
// display name search.
func (s *Store) Sellers(ctx context.Context, search string) ([]models.Seller, error) {
	query := s.db.WithContext(ctx).Model(&models.Seller{})
	if search != "" {
		query = query.Where(`display_name ILIKE ? ESCAPE '\'`, containsPattern(search))
	}
	var sellers []models.Seller
	err := query.Order("created_at DESC").Find(&sellers).Error
	return sellers, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern matches search literally anywhere in a LIKE operand.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

func (s *Store) CreateSeller(ctx context.Context, seller *models.Seller) error {
	if seller.ID == "" {
		seller.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Create(seller).Error
}

func (s *Store) RenameSeller(ctx context.Context, userID, displayName string) error {
	return s.db.WithContext(ctx).
		Model(&models.Seller{}).
		Where("user_id = ?", userID).
		Update("display_name", displayName).Error
}

// SellersByStatus backs the moderation queue, oldest first.
func (s *Store) SellersByStatus(ctx context.Context, status models.OnboardingStatus) ([]models.Seller, error) {
	var sellers []models.Seller
	err := s.db.WithContext(ctx).
		Where("onboarding_status = ?", status).
		Order("created_at ASC").
		Find(&sellers).Error
	return sellers, err
}

func (s *Store) SetSellerStatus(ctx context.Context, id string, status models.OnboardingStatus) (*models.Seller, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	result := s.db.WithContext(ctx).
		Model(&models.Seller{}).
		Where("id = ?", id).
		Update("onboarding_status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.SellerByID(ctx, id)
}
