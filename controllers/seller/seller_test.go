package sellerControllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/tribal-art-api/auth"
	"github.com/junaidrashid-git/tribal-art-api/middleware"
	"github.com/junaidrashid-git/tribal-art-api/models"
	"github.com/junaidrashid-git/tribal-art-api/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type accounts struct{ auth.Provider }

func (accounts) Authenticate(_ context.Context, token string) (*models.User, error) {
	return &models.User{ID: token, Email: token + "@example.com", FullName: strings.ToUpper(token[:1]) + token[1:]}, nil
}

type memDirectory struct {
	sellers  []models.Seller
	products []models.Product
	// raceOnCreate makes CreateSeller fail like a concurrent insert would.
	raceOnCreate bool
}

func (m *memDirectory) Sellers(_ context.Context, search string) ([]models.Seller, error) {
	var out []models.Seller
	for _, s := range m.sellers {
		if strings.Contains(strings.ToLower(s.DisplayName), strings.ToLower(search)) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memDirectory) SellerByID(_ context.Context, id string) (*models.Seller, error) {
	for _, s := range m.sellers {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memDirectory) SellerByUserID(_ context.Context, userID string) (*models.Seller, error) {
	for _, s := range m.sellers {
		if s.UserID == userID {
			return &s, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memDirectory) CreateSeller(_ context.Context, seller *models.Seller) error {
	if m.raceOnCreate {
		return gorm.ErrDuplicatedKey
	}
	seller.ID = "s-" + seller.UserID
	m.sellers = append(m.sellers, *seller)
	return nil
}

func (m *memDirectory) ActiveSellerProducts(_ context.Context, sellerID string) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if p.SellerID == sellerID && p.Status == models.ProductActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memDirectory) ImageUploads(_ context.Context, userID string) ([]models.ImageUpload, error) {
	return []models.ImageUpload{{UserID: userID, FileName: "a.png", FileURL: "/uploads/a.png"}}, nil
}

func setupRouter(dir *memDirectory) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/sellers", GetSellers(dir))
	r.GET("/sellers/:id", GetSellerProfile(dir))
	u := r.Group("/user", middleware.ValidateToken(accounts{}))
	u.POST("/seller", BecomeSeller(dir))
	u.GET("/seller", GetMySeller(dir))
	u.GET("/seller/uploads", GetMyUploads(dir))
	return r
}

func do(r *gin.Engine, method, path, user, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("Authorization", "Bearer "+user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBecomeSeller(t *testing.T) {
	dir := &memDirectory{}
	r := setupRouter(dir)

	w := do(r, http.MethodPost, "/user/seller", "asha", `{"bio":"Warli painter"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, dir.sellers)

	w = do(r, http.MethodPost, "/user/seller", "asha", `{"region":"Maharashtra","bio":"Warli painter"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var seller models.Seller
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &seller))
	assert.Equal(t, "Asha", seller.DisplayName)
	assert.Equal(t, models.OnboardingApproved, seller.OnboardingStatus)

	w = do(r, http.MethodPost, "/user/seller", "asha", `{"region":"Goa"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Len(t, dir.sellers, 1)

	w = do(r, http.MethodGet, "/user/seller", "asha", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(r, http.MethodGet, "/user/seller", "ravi", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBecomeSellerUniqueViolation(t *testing.T) {
	dir := &memDirectory{raceOnCreate: true}
	w := do(setupRouter(dir), http.MethodPost, "/user/seller", "asha", `{"region":"Goa","display_name":"A"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t, `{"error":"You're already registered as a seller!"}`, w.Body.String())
}

func TestPublicArtistPages(t *testing.T) {
	dir := &memDirectory{
		sellers: []models.Seller{
			{ID: "s1", DisplayName: "Asha Warli"},
			{ID: "s2", DisplayName: "Ravi Gond"},
		},
		products: []models.Product{
			{ID: "p1", SellerID: "s1", Status: models.ProductActive},
			{ID: "p2", SellerID: "s1", Status: models.ProductDraft},
			{ID: "p3", SellerID: "s2", Status: models.ProductActive},
		},
	}
	r := setupRouter(dir)

	w := do(r, http.MethodGet, "/sellers?search=gond", "", "")
	var sellers []models.Seller
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sellers))
	require.Len(t, sellers, 1)
	assert.Equal(t, "s2", sellers[0].ID)

	w = do(r, http.MethodGet, "/sellers/s1", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Seller   models.Seller    `json:"seller"`
		Products []models.Product `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, "Asha Warli", page.Seller.DisplayName)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "p1", page.Products[0].ID)

	w = do(r, http.MethodGet, "/sellers/s9", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMyUploads(t *testing.T) {
	w := do(setupRouter(&memDirectory{}), http.MethodGet, "/user/seller/uploads", "asha", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"file_url":"/uploads/a.png"`)
}

func TestDisplayNameFallback(t *testing.T) {
	assert.Equal(t, "Given", displayName(" Given ", &models.User{FullName: "Full"}))
	assert.Equal(t, "Full", displayName("", &models.User{FullName: "Full", Email: "x@y"}))
	assert.Equal(t, "asha", displayName("", &models.User{Email: "asha@example.com"}))
}
