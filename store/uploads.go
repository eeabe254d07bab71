package store

import (
	"context"

	"github.com/junaidrashid-git/tribal-art-api/models"
)

func (s *Store) SaveImageUpload(ctx context.Context, userID, fileName, fileURL string) (*models.ImageUpload, error) {
	return models.SaveImageUpload(s.db.WithContext(ctx), userID, fileName, fileURL)
}

func (s *Store) ImageUploads(ctx context.Context, userID string) ([]models.ImageUpload, error) {
	return models.ListImageUploads(s.db.WithContext(ctx), userID)
}
