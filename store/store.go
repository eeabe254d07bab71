// Package store is the remote data service: Postgres through GORM. The state
// packages (catalog, cart, wishlist) only see it through their own small
// interfaces.
package store

import (
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrNoRowsAffected is returned when a write matched nothing, usually
	// because the row belongs to someone else.
	ErrNoRowsAffected = errors.New("no rows affected")
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the handle for the few handlers that issue one-off queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Open connects with error translation on, so unique violations come back as
// gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Migrate creates every table the service uses.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.PasswordReset{},
		&models.Seller{},
		&models.Product{},
		&models.CartItem{},
		&models.WishlistItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.ImageUpload{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	log.Println("✅ Database schema ready")
	return nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// validID reports whether id can name a row; every primary key is a uuid.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// unknownProduct is returned for product ids that cannot exist, so callers see
// the same error as a missing foreign key.
func unknownProduct(id string) error {
	return fmt.Errorf("product %q: %w", id, gorm.ErrForeignKeyViolated)
}
