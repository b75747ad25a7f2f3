package catalogControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KetkiGokakkar/LuxuryWatches/auth"
	"github.com/KetkiGokakkar/LuxuryWatches/models"
	"github.com/KetkiGokakkar/LuxuryWatches/routes"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupCatalogRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Address{}, &models.Brand{}, &models.Category{},
		&models.Watch{}, &models.Review{}, &models.GuestSession{},
		&models.Cart{}, &models.CartItem{}, &models.Order{}, &models.OrderItem{},
	))

	r := gin.New()
	routes.SetupCatalogRoutes(r, db)
	return r, db
}

type seed struct {
	brand    string
	category string
	name     string
	desc     string
	price    string
	active   bool
}

func seedCatalog(t *testing.T, db *gorm.DB, rows []seed) map[string]models.Watch {
	t.Helper()
	watches := make(map[string]models.Watch, len(rows))
	for _, row := range rows {
		var brand models.Brand
		require.NoError(t, db.Where(models.Brand{Name: row.brand}).
			FirstOrCreate(&brand, models.Brand{Name: row.brand}).Error)

		var categoryID *uint
		if row.category != "" {
			var category models.Category
			require.NoError(t, db.Where(models.Category{Name: row.category}).
				FirstOrCreate(&category, models.Category{Name: row.category}).Error)
			categoryID = &category.ID
		}

		price, err := decimal.NewFromString(row.price)
		require.NoError(t, err)
		watch := models.Watch{
			Name:        row.name,
			Slug:        models.WatchSlug(row.brand, row.name),
			BrandID:     brand.ID,
			CategoryID:  categoryID,
			Description: row.desc,
			Price:       price,
			Stock:       5,
			IsActive:    row.active,
		}
		require.NoError(t, db.Create(&watch).Error)
		watches[row.name] = watch
		// keep created_at ordering deterministic for the newest sort
		time.Sleep(2 * time.Millisecond)
	}
	return watches
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func listedNames(t *testing.T, w *httptest.ResponseRecorder) []string {
	t.Helper()
	var payload struct {
		Watches []struct {
			Name  string          `json:"name"`
			Price decimal.Decimal `json:"price"`
		} `json:"watches"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	names := make([]string, 0, len(payload.Watches))
	for _, watch := range payload.Watches {
		names = append(names, watch.Name)
	}
	return names
}

func defaultCatalog(t *testing.T, db *gorm.DB) map[string]models.Watch {
	return seedCatalog(t, db, []seed{
		{brand: "Rolex", category: "Dive", name: "Submariner", desc: "iconic dive watch", price: "9100.00", active: true},
		{brand: "Omega", category: "Chronograph", name: "Speedmaster", desc: "the moonwatch", price: "6400.00", active: true},
		{brand: "Omega", category: "Dive", name: "Seamaster", desc: "bond's choice", price: "5200.00", active: true},
		{brand: "Nomos", category: "", name: "Tangente", desc: "bauhaus dress piece", price: "1800.00", active: true},
		{brand: "Rolex", category: "Dive", name: "Sea-Dweller", desc: "saturation diver", price: "11500.00", active: false},
	})
}

func TestListWatchesExcludesInactive(t *testing.T) {
	r, db := setupCatalogRouter(t)
	defaultCatalog(t, db)

	w := get(r, "/watches/")
	require.Equal(t, http.StatusOK, w.Code)
	names := listedNames(t, w)
	assert.Len(t, names, 4)
	assert.NotContains(t, names, "Sea-Dweller")
}

func TestListWatchesFilterByBrandSlug(t *testing.T) {
	r, db := setupCatalogRouter(t)
	defaultCatalog(t, db)

	w := get(r, "/watches/?brand=omega")
	require.Equal(t, http.StatusOK, w.Code)
	names := listedNames(t, w)
	assert.ElementsMatch(t, []string{"Speedmaster", "Seamaster"}, names)
}

func TestListWatchesFilterByCategorySlug(t *testing.T) {
	r, db := setupCatalogRouter(t)
	defaultCatalog(t, db)

	w := get(r, "/watches/?category=dive")
	require.Equal(t, http.StatusOK, w.Code)
	names := listedNames(t, w)
	assert.ElementsMatch(t, []string{"Submariner", "Seamaster"}, names)
}

func TestListWatchesPriceRangeInclusive(t *testing.T) {
	r, db := setupCatalogRouter(t)
	defaultCatalog(t, db)

	w := get(r, "/watches/?min_price=5200&max_price=6400")
	require.Equal(t, http.StatusOK, w.Code)
	names := listedNames(t, w)
	assert.ElementsMatch(t, []string{"Speedmaster", "Seamaster"}, names)

	w = get(r, "/watches/?min_price=notanumber")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListWatchesSortPriceLow(t *testing.T) {
	r, db := setupCatalogRouter(t)
	defaultCatalog(t, db)

	w := get(r, "/watches/?sort=price_low")
	require.Equal(t, http.StatusOK, w.Code)
	names := listedNames(t, w)
	assert.Equal(t, []string{"Tangente", "Seamaster", "Speedmaster", "Submariner"}, names)
}

func TestListWatchesSortNewestDefault(t *testing.T) {
	r, db := setupCatalogRouter(t)
	defaultCatalog(t, db)

	w := get(r, "/watches/")
	require.Equal(t, http.StatusOK, w.Code)
	names := listedNames(t, w)
	assert.Equal(t, []string{"Tangente", "Seamaster", "Speedmaster", "Submariner"}, names)
}

func TestListWatchesSortByRating(t *testing.T) {
	r, db := setupCatalogRouter(t)
	watches := defaultCatalog(t, db)

	alice := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	bob := models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)

	for _, review := range []models.Review{
		{WatchID: watches["Tangente"].ID, UserID: alice.ID, Rating: 5},
		{WatchID: watches["Tangente"].ID, UserID: bob.ID, Rating: 4},
		{WatchID: watches["Submariner"].ID, UserID: alice.ID, Rating: 3},
	} {
		require.NoError(t, db.Create(&review).Error)
	}

	w := get(r, "/watches/?sort=rating")
	require.Equal(t, http.StatusOK, w.Code)
	names := listedNames(t, w)
	require.Len(t, names, 4)
	assert.Equal(t, "Tangente", names[0])
	assert.Equal(t, "Submariner", names[1])
	// never-reviewed watches trail the reviewed ones
	assert.ElementsMatch(t, []string{"Speedmaster", "Seamaster"}, names[2:])
}

func TestSearchMatchesBrandName(t *testing.T) {
	r, db := setupCatalogRouter(t)
	defaultCatalog(t, db)

	w := get(r, "/search/?q=omeg")
	require.Equal(t, http.StatusOK, w.Code)
	names := listedNames(t, w)
	assert.ElementsMatch(t, []string{"Speedmaster", "Seamaster"}, names)
}

func TestSearchMatchesDescriptionAndCategory(t *testing.T) {
	r, db := setupCatalogRouter(t)
	defaultCatalog(t, db)

	w := get(r, "/search/?q=bauhaus")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Tangente"}, listedNames(t, w))

	w = get(r, "/search/?q=chronograph")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Speedmaster"}, listedNames(t, w))
}

func TestSearchWithoutQueryReturnsActiveCatalog(t *testing.T) {
	r, db := setupCatalogRouter(t)
	defaultCatalog(t, db)

	w := get(r, "/search/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, listedNames(t, w), 4)
}

func TestWatchDetail(t *testing.T) {
	r, db := setupCatalogRouter(t)
	watches := defaultCatalog(t, db)

	w := get(r, "/watches/"+watches["Speedmaster"].Slug+"/")
	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, true, payload["in_stock"])
	assert.Equal(t, float64(0), payload["avg_rating"])

	related := payload["related"].([]interface{})
	require.Len(t, related, 1) // Seamaster, same brand

	// inactive watches 404 even with a valid slug
	w = get(r, "/watches/"+watches["Sea-Dweller"].Slug+"/")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = get(r, "/watches/no-such-watch/")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddReviewAndDuplicateRejected(t *testing.T) {
	r, db := setupCatalogRouter(t)
	watches := defaultCatalog(t, db)

	user := models.User{Username: "ravi", Email: "ravi@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	token, err := auth.IssueToken(user.ID)
	require.NoError(t, err)

	post := func(body gin.H, token string) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		_ = json.NewEncoder(&buf).Encode(body)
		req := httptest.NewRequest(http.MethodPost, "/watches/"+watches["Submariner"].Slug+"/review/", &buf)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	// anonymous submissions are rejected
	w := post(gin.H{"rating": 5, "title": "great"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = post(gin.H{"rating": 4, "title": "solid", "comment": "wears well"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	// a second submission by the same user is rejected; the first stays
	w = post(gin.H{"rating": 1, "title": "changed my mind"}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var reviews []models.Review
	require.NoError(t, db.Find(&reviews).Error)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)

	// rating out of range
	w = post(gin.H{"rating": 6}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddReviewDefaultsRatingToFive(t *testing.T) {
	r, db := setupCatalogRouter(t)
	watches := defaultCatalog(t, db)

	user := models.User{Username: "sana", Email: "sana@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	token, err := auth.IssueToken(user.ID)
	require.NoError(t, err)

	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(gin.H{"title": "no rating given"})
	req := httptest.NewRequest(http.MethodPost, "/watches/"+watches["Tangente"].Slug+"/review/", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var review models.Review
	require.NoError(t, db.First(&review).Error)
	assert.Equal(t, 5, review.Rating)
}

func TestHome(t *testing.T) {
	r, db := setupCatalogRouter(t)
	watches := defaultCatalog(t, db)
	require.NoError(t, db.Model(&models.Watch{}).Where("id = ?", watches["Submariner"].ID).
		Update("is_featured", true).Error)

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	featured := payload["featured"].([]interface{})
	require.Len(t, featured, 1)
	assert.Len(t, payload["brands"].([]interface{}), 3)
	assert.Len(t, payload["categories"].([]interface{}), 2)
}
