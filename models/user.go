package models

import "time"

// User is the identity every other record hangs off. Only the auth package
// writes it.
type User struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	FullName     string    `json:"full_name"`
	PasswordHash string    `json:"-"`
	Provider     string    `gorm:"type:VARCHAR(20);default:'password'" json:"provider"` // "password" or "google"
	TokenVersion int       `gorm:"not null;default:0" json:"-"`                         // bumped on sign-out
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile holds the editable buyer details shown on the profile page.
type Profile struct {
	ID          string      `gorm:"type:uuid;primaryKey" json:"id"` // same as User.ID
	Email       string      `json:"email"`
	FullName    string      `json:"full_name"`
	Phone       string      `json:"phone"`
	Bio         string      `json:"bio"`
	DateOfBirth *time.Time  `json:"date_of_birth"`
	Address     Address     `gorm:"embedded" json:"address"`
	Preferences Preferences `gorm:"embedded;embeddedPrefix:pref_" json:"preferences"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Address model embedded in Profile and Order
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

type Preferences struct {
	EmailNotifications bool `gorm:"default:true" json:"email_notifications"`
	SMSNotifications   bool `gorm:"default:false" json:"sms_notifications"`
	MarketingEmails    bool `gorm:"default:true" json:"marketing_emails"`
}

// DefaultPreferences are applied when a profile is created on first visit.
func DefaultPreferences() Preferences {
	return Preferences{EmailNotifications: true, MarketingEmails: true}
}

// PasswordReset stores a sha256 of the emailed token, never the token itself.
type PasswordReset struct {
	ID        uint      `gorm:"primaryKey"`
	TokenHash string    `gorm:"uniqueIndex;not null"`
	UserID    string    `gorm:"type:uuid;index;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	UsedAt    *time.Time
	CreatedAt time.Time
}
