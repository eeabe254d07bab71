package userControllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/middleware"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/junaidrashid-git/tribal-art-api/store"
)

type Profiles interface {
	ProfileByID(ctx context.Context, id string) (*models.Profile, error)
	CreateProfile(ctx context.Context, profile *models.Profile) error
	UpdateProfile(ctx context.Context, id string, updates map[string]interface{}) error
	RenameSeller(ctx context.Context, userID, displayName string) error
}

type AddressInput struct {
	Street  *string `json:"street"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Pincode *string `json:"pincode"`
}

type PreferencesInput struct {
	EmailNotifications *bool `json:"email_notifications"`
	SMSNotifications   *bool `json:"sms_notifications"`
	MarketingEmails    *bool `json:"marketing_emails"`
}

type UpdateProfileInput struct {
	FullName    *string           `json:"full_name"`
	Phone       *string           `json:"phone"`
	Bio         *string           `json:"bio"`
	DateOfBirth *string           `json:"date_of_birth"` // YYYY-MM-DD, "" clears
	Address     *AddressInput     `json:"address"`
	Preferences *PreferencesInput `json:"preferences"`
	ArtistName  *string           `json:"artist_name"` // renames the seller profile too
}

// loadProfile returns the user's profile, creating it with defaults on first
// visit.
func loadProfile(ctx context.Context, profiles Profiles, user *models.User) (*models.Profile, error) {
	profile, err := profiles.ProfileByID(ctx, user.ID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, err
	}

	profile = &models.Profile{
		ID:          user.ID,
		Email:       user.Email,
		FullName:    user.FullName,
		Preferences: models.DefaultPreferences(),
	}
	if err := profiles.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}
	log.Printf("👤 Created profile for %s", user.ID)
	return profile, nil
}

// GET /user/profile
func GetProfile(profiles Profiles) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.Session(c).User()
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in"})
			return
		}
		profile, err := loadProfile(c.Request.Context(), profiles, user)
		if err != nil {
			log.Printf("❌ Failed to load profile for %s: %v", user.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

// PUT /user/profile
func UpdateProfile(profiles Profiles) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.Session(c).User()
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in"})
			return
		}

		var input UpdateProfileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		updates, err := input.updates()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx := c.Request.Context()
		if _, err := loadProfile(ctx, profiles, user); err != nil {
			log.Printf("❌ Failed to load profile for %s: %v", user.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}
		if len(updates) > 0 {
			if err := profiles.UpdateProfile(ctx, user.ID, updates); err != nil {
				log.Printf("❌ Failed to update profile for %s: %v", user.ID, err)
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
				return
			}
		}
		if input.ArtistName != nil {
			if name := strings.TrimSpace(*input.ArtistName); name != "" {
				if err := profiles.RenameSeller(ctx, user.ID, name); err != nil {
					log.Printf("❌ Failed to rename seller for %s: %v", user.ID, err)
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update artist name"})
					return
				}
			}
		}

		profile, err := profiles.ProfileByID(ctx, user.ID)
		if err != nil {
			log.Printf("❌ Failed to reload profile for %s: %v", user.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}
		c.JSON(http.StatusOK, profile)
	}
}

func (in UpdateProfileInput) updates() (map[string]interface{}, error) {
	updates := make(map[string]interface{})
	if in.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*in.FullName)
	}
	if in.Phone != nil {
		updates["phone"] = strings.TrimSpace(*in.Phone)
	}
	if in.Bio != nil {
		updates["bio"] = *in.Bio
	}
	if in.DateOfBirth != nil {
		if *in.DateOfBirth == "" {
			updates["date_of_birth"] = nil
		} else {
			dob, err := time.Parse("2006-01-02", *in.DateOfBirth)
			if err != nil {
				return nil, errors.New("date_of_birth must be YYYY-MM-DD")
			}
			updates["date_of_birth"] = dob
		}
	}
	if a := in.Address; a != nil {
		setString(updates, "street", a.Street)
		setString(updates, "city", a.City)
		setString(updates, "state", a.State)
		setString(updates, "pincode", a.Pincode)
	}
	if p := in.Preferences; p != nil {
		setBool(updates, "pref_email_notifications", p.EmailNotifications)
		setBool(updates, "pref_sms_notifications", p.SMSNotifications)
		setBool(updates, "pref_marketing_emails", p.MarketingEmails)
	}
	return updates, nil
}

func setString(m map[string]interface{}, column string, v *string) {
	if v != nil {
		m[column] = strings.TrimSpace(*v)
	}
}

func setBool(m map[string]interface{}, column string, v *bool) {
	if v != nil {
		m[column] = *v
	}
}
