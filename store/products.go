package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActiveProducts is the catalog query: active listings with their seller,
// newest first.
func (s *Store) ActiveProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Preload("Seller").
		Where("status = ?", models.ProductActive).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// ProductByID returns a product in any status, seller joined.
func (s *Store) ProductByID(ctx context.Context, id string) (*models.Product, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	var product models.Product
	if err := s.db.WithContext(ctx).Preload("Seller").First(&product, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &product, nil
}

// SellerProducts lists every product of a seller, drafts and sold included.
func (s *Store) SellerProducts(ctx context.Context, sellerID string) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

// ActiveSellerProducts backs the public artist page.
func (s *Store) ActiveSellerProducts(ctx context.Context, sellerID string) ([]models.Product, error) {
	var products []models.Product
	err := s.db.WithContext(ctx).
		Where("seller_id = ? AND status = ?", sellerID, models.ProductActive).
		Order("created_at DESC").
		Find(&products).Error
	return products, err
}

func (s *Store) CreateProduct(ctx context.Context, p *models.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return s.db.WithContext(ctx).Omit("Seller").Create(p).Error
}

// UpdateProduct applies updates to a product owned by sellerID and returns
// the fresh row.
func (s *Store) UpdateProduct(ctx context.Context, sellerID, id string, updates map[string]interface{}) (*models.Product, error) {
	if !validID(id) {
		return nil, ErrNoRowsAffected
	}
	updates["updated_at"] = time.Now()
	result := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ? AND seller_id = ?", id, sellerID).
		Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNoRowsAffected
	}
	return s.ProductByID(ctx, id)
}

// DeleteProduct hard-deletes a product owned by sellerID. Cart and wishlist
// rows go with it through the cascading foreign keys.
func (s *Store) DeleteProduct(ctx context.Context, sellerID, id string) error {
	if !validID(id) {
		return ErrNoRowsAffected
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ? AND seller_id = ?", id, sellerID).Delete(&models.Product{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNoRowsAffected
		}
		return nil
	})
}

// UpsertSellerProduct is used by the spreadsheet import: an existing id owned
// by the seller is updated, anything else is inserted. The owned row is locked
// while it is rewritten.
func (s *Store) UpsertSellerProduct(ctx context.Context, sellerID string, p *models.Product) (created bool, err error) {
	p.SellerID = sellerID
	if !validID(p.ID) {
		p.ID = ""
	}
	if p.ID == "" {
		return true, s.CreateProduct(ctx, p)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Product
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&existing, "id = ? AND seller_id = ?", p.ID, sellerID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			p.ID = uuid.NewString()
			return tx.Omit("Seller").Create(p).Error
		}
		if err != nil {
			return err
		}
		p.CreatedAt = existing.CreatedAt
		return tx.Omit("Seller").Save(p).Error
	})
	return created, err
}
