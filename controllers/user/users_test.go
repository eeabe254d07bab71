package userControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/auth"
	"github.com/junaidrashid-git/tribal-art-api/middleware"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/junaidrashid-git/tribal-art-api/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accounts struct{ auth.Provider }

func (accounts) Authenticate(_ context.Context, token string) (*models.User, error) {
	return &models.User{ID: token, Email: token + "@example.com", FullName: "Asha Devi"}, nil
}

type memProfiles struct {
	profiles map[string]*models.Profile
	sellers  map[string]string
	creates  int
}

func (m *memProfiles) ProfileByID(_ context.Context, id string) (*models.Profile, error) {
	p, ok := m.profiles[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *p
	return &out, nil
}

func (m *memProfiles) CreateProfile(_ context.Context, profile *models.Profile) error {
	m.creates++
	p := *profile
	m.profiles[profile.ID] = &p
	return nil
}

func (m *memProfiles) UpdateProfile(_ context.Context, id string, updates map[string]interface{}) error {
	p := m.profiles[id]
	for k, v := range updates {
		switch k {
		case "full_name":
			p.FullName = v.(string)
		case "phone":
			p.Phone = v.(string)
		case "city":
			p.Address.City = v.(string)
		case "pincode":
			p.Address.Pincode = v.(string)
		case "date_of_birth":
			dob := v.(time.Time)
			p.DateOfBirth = &dob
		case "pref_sms_notifications":
			p.Preferences.SMSNotifications = v.(bool)
		}
	}
	return nil
}

func (m *memProfiles) RenameSeller(_ context.Context, userID, displayName string) error {
	m.sellers[userID] = displayName
	return nil
}

func setupRouter(profiles *memProfiles) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/user", middleware.ValidateToken(accounts{}))
	g.GET("/profile", GetProfile(profiles))
	g.PUT("/profile", UpdateProfile(profiles))
	return r
}

func do(r *gin.Engine, method, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/user/profile", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer u1")
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetProfileCreatesOnFirstVisit(t *testing.T) {
	profiles := &memProfiles{profiles: map[string]*models.Profile{}, sellers: map[string]string{}}
	r := setupRouter(profiles)

	w := do(r, http.MethodGet, "")
	require.Equal(t, http.StatusOK, w.Code)
	var p models.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Asha Devi", p.FullName)
	assert.Equal(t, "u1@example.com", p.Email)
	assert.Equal(t, models.DefaultPreferences(), p.Preferences)

	do(r, http.MethodGet, "")
	assert.Equal(t, 1, profiles.creates)
}

func TestUpdateProfile(t *testing.T) {
	profiles := &memProfiles{profiles: map[string]*models.Profile{}, sellers: map[string]string{}}
	r := setupRouter(profiles)

	body := `{"full_name":" Asha D ","phone":"98200","date_of_birth":"1990-04-12",
		"address":{"city":"Dahanu","pincode":"401602"},
		"preferences":{"sms_notifications":true},
		"artist_name":"Asha Warli Studio"}`
	w := do(r, http.MethodPut, body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var p models.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, "Asha D", p.FullName)
	assert.Equal(t, "Dahanu", p.Address.City)
	assert.Equal(t, "401602", p.Address.Pincode)
	assert.True(t, p.Preferences.SMSNotifications)
	assert.True(t, p.Preferences.EmailNotifications)
	require.NotNil(t, p.DateOfBirth)
	assert.Equal(t, "1990-04-12", p.DateOfBirth.Format("2006-01-02"))
	assert.Equal(t, "Asha Warli Studio", profiles.sellers["u1"])
}

func TestUpdateProfileRejectsBadDate(t *testing.T) {
	profiles := &memProfiles{profiles: map[string]*models.Profile{}, sellers: map[string]string{}}
	w := do(setupRouter(profiles), http.MethodPut, `{"date_of_birth":"12/04/1990"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, profiles.creates)
}
