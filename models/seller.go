package models

import "time"

type OnboardingStatus string

const (
	OnboardingPending  OnboardingStatus = "pending"
	OnboardingApproved OnboardingStatus = "approved"
	OnboardingRejected OnboardingStatus = "rejected"
)

// Seller is the artist profile of a user. One per user, enforced by the
// unique index on UserID.
type Seller struct {
	ID               string           `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           string           `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	DisplayName      string           `gorm:"not null" json:"display_name"`
	Bio              string           `json:"bio"`
	Region           string           `gorm:"index" json:"region"`
	OnboardingStatus OnboardingStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"onboarding_status"`
	AvatarURL        string           `json:"avatar_url"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// SellerRef is the slice of a seller embedded into product rows.
type SellerRef struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Region      string `json:"region"`
}

func (s Seller) Ref() SellerRef {
	return SellerRef{ID: s.ID, DisplayName: s.DisplayName, Region: s.Region}
}
