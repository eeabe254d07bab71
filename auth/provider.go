package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTTL = time.Hour

// Metadata travels with a sign-up.
type Metadata struct {
	FullName string
}

// Grant is the result of a successful sign-in or sign-up.
type Grant struct {
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Provider is the remote auth surface the Session talks to.
type Provider interface {
	SignUp(ctx context.Context, email, password string, meta Metadata) (*Grant, error)
	SignIn(ctx context.Context, email, password string) (*Grant, error)
	SignOut(ctx context.Context, userID string) error
	ResetPassword(ctx context.Context, email string) error
}

// ResetMailer delivers password reset tokens.
type ResetMailer interface {
	SendReset(ctx context.Context, email, token string) error
}

// LogMailer prints reset links instead of mailing them.
type LogMailer struct {
	BaseURL string
}

func (m LogMailer) SendReset(_ context.Context, email, token string) error {
	log.Printf("✉️ Password reset for %s: %s/auth?reset=true&token=%s", email, m.BaseURL, token)
	return nil
}

// DBProvider keeps users in Postgres and authenticates with bcrypt + JWT.
type DBProvider struct {
	db     *gorm.DB
	tokens *Tokens
	mailer ResetMailer
	now    func() time.Time
}

func NewDBProvider(db *gorm.DB, tokens *Tokens, mailer ResetMailer) *DBProvider {
	return &DBProvider{db: db, tokens: tokens, mailer: mailer, now: time.Now}
}

func (p *DBProvider) SignUp(ctx context.Context, email, password string, meta Metadata) (*Grant, error) {
	email = normalizeEmail(email)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		FullName:     strings.TrimSpace(meta.FullName),
		PasswordHash: string(hash),
		Provider:     "password",
	}
	err = p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Profile{
			ID:          user.ID,
			Email:       user.Email,
			FullName:    user.FullName,
			Preferences: models.DefaultPreferences(),
		}).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	log.Printf("📝 New user registered: %s", email)
	return p.grant(user)
}

func (p *DBProvider) SignIn(ctx context.Context, email, password string) (*Grant, error) {
	var user models.User
	err := p.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user.PasswordHash == "" || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return p.grant(&user)
}

// SignOut invalidates every token issued to the user so far.
func (p *DBProvider) SignOut(ctx context.Context, userID string) error {
	return p.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", userID).
		Update("token_version", gorm.Expr("token_version + 1")).Error
}

// ResetPassword mails a one-hour reset token. Unknown emails succeed silently
// so the endpoint cannot be used to probe for accounts.
func (p *DBProvider) ResetPassword(ctx context.Context, email string) error {
	var user models.User
	err := p.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}
	token := hex.EncodeToString(raw)

	reset := models.PasswordReset{
		TokenHash: hashToken(token),
		UserID:    user.ID,
		ExpiresAt: p.now().Add(resetTTL),
	}
	if err := p.db.WithContext(ctx).Create(&reset).Error; err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}
	return p.mailer.SendReset(ctx, user.Email, token)
}

// ConfirmReset sets a new password from a mailed token. Existing sessions
// are signed out.
func (p *DBProvider) ConfirmReset(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return ErrMissingFields
	}
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reset models.PasswordReset
		err := tx.Where("token_hash = ? AND used_at IS NULL AND expires_at > ?", hashToken(token), p.now()).
			First(&reset).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetInvalid
		}
		if err != nil {
			return err
		}

		now := p.now()
		if err := tx.Model(&reset).Update("used_at", &now).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", reset.UserID).Updates(map[string]interface{}{
			"password_hash": string(hash),
			"token_version": gorm.Expr("token_version + 1"),
		}).Error
	})
}

// Authenticate resolves an access token to its user. Tokens issued before the
// last sign-out are rejected.
func (p *DBProvider) Authenticate(ctx context.Context, token string) (*models.User, error) {
	claims, err := p.tokens.Parse(token)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := p.db.WithContext(ctx).First(&user, "id = ?", claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	if user.TokenVersion != claims.Version {
		return nil, ErrInvalidToken
	}
	return &user, nil
}

// SignInExternal finds or creates the user behind a verified Google identity.
func (p *DBProvider) SignInExternal(ctx context.Context, id *ExternalIdentity) (*Grant, error) {
	email := normalizeEmail(id.Email)
	var user models.User
	err := p.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			ID:       uuid.NewString(),
			Email:    email,
			FullName: id.Name,
			Provider: id.Provider,
		}
		err = p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			return tx.Create(&models.Profile{
				ID:          user.ID,
				Email:       user.Email,
				FullName:    user.FullName,
				Preferences: models.DefaultPreferences(),
			}).Error
		})
		switch {
		case errors.Is(err, gorm.ErrDuplicatedKey):
			// a concurrent sign-in for the same email created the row first
			user = models.User{}
			if err := p.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
				return nil, fmt.Errorf("find user: %w", err)
			}
		case err != nil:
			return nil, fmt.Errorf("create user: %w", err)
		default:
			log.Printf("📝 New %s user registered: %s", id.Provider, email)
		}
	case err != nil:
		return nil, fmt.Errorf("find user: %w", err)
	}
	return p.grant(&user)
}

func (p *DBProvider) grant(user *models.User) (*Grant, error) {
	token, expiresAt, err := p.tokens.Issue(user)
	if err != nil {
		return nil, err
	}
	return &Grant{User: user, Token: token, ExpiresAt: expiresAt}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
