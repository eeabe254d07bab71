package models

import (
	"log"
	"time"

	"gorm.io/gorm"
)

// ImageUpload records every object pushed to storage so orphaned images can
// be found later.
type ImageUpload struct {
	ID        uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string         `json:"user_id" gorm:"type:uuid;index"`
	FileName  string         `json:"file_name" gorm:"not null"`
	FileURL   string         `json:"file_url" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func SaveImageUpload(db *gorm.DB, userID, fileName, fileURL string) (*ImageUpload, error) {
	rec := &ImageUpload{
		UserID:   userID,
		FileName: fileName,
		FileURL:  fileURL,
	}
	if err := db.Create(rec).Error; err != nil {
		return nil, err
	}

	log.Printf("📁 Saved upload in DB: %s -> %s", fileName, fileURL)
	return rec, nil
}

func ListImageUploads(db *gorm.DB, userID string) ([]ImageUpload, error) {
	var files []ImageUpload
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}
