package orderControllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"testing"

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

func setupOrderRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
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
	routes.SetupCartRoutes(r, db)
	routes.SetupOrderRoutes(r, db, nil)
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, username string) (models.User, string) {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		FirstName:    "Test",
	}
	require.NoError(t, db.Create(&user).Error)
	token, err := auth.IssueToken(user.ID)
	require.NoError(t, err)
	return user, token
}

func seedAddress(t *testing.T, db *gorm.DB, userID uint) models.Address {
	t.Helper()
	address := models.Address{
		UserID:       userID,
		FullName:     "Test Buyer",
		Phone:        "9999999999",
		AddressLine1: "14 MG Road",
		City:         "Bengaluru",
		State:        "Karnataka",
		PostalCode:   "560001",
		Country:      "India",
	}
	require.NoError(t, db.Create(&address).Error)
	return address
}

func seedWatch(t *testing.T, db *gorm.DB, brandName, name, price string, stock int) models.Watch {
	t.Helper()
	var brand models.Brand
	require.NoError(t, db.Where(models.Brand{Name: brandName}).FirstOrCreate(&brand, models.Brand{Name: brandName}).Error)

	p, err := decimal.NewFromString(price)
	require.NoError(t, err)
	watch := models.Watch{
		Name:     name,
		Slug:     models.WatchSlug(brandName, name),
		BrandID:  brand.ID,
		Price:    p,
		Stock:    stock,
		IsActive: true,
	}
	require.NoError(t, db.Create(&watch).Error)
	return watch
}

func doJSON(r http.Handler, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func addToCart(t *testing.T, r http.Handler, token string, watchID uint, quantity int) {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/cart/add/"+strconv.FormatUint(uint64(watchID), 10)+"/",
		gin.H{"quantity": quantity}, token)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCheckoutEmptyCartCreatesNoOrder(t *testing.T) {
	r, db := setupOrderRouter(t)
	user, token := seedUser(t, db, "arjun")
	address := seedAddress(t, db, user.ID)

	w := doJSON(r, http.MethodPost, "/cart/checkout/", gin.H{"address_id": address.ID}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCheckoutRequiresAddress(t *testing.T) {
	r, db := setupOrderRouter(t)
	_, token := seedUser(t, db, "priya")
	watch := seedWatch(t, db, "Omega", "Seamaster", "5200.00", 10)
	addToCart(t, r, token, watch.ID, 1)

	w := doJSON(r, http.MethodPost, "/cart/checkout/", gin.H{}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please select a delivery address.", decode(t, w)["error"])

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCheckoutRejectsForeignAddress(t *testing.T) {
	r, db := setupOrderRouter(t)
	_, token := seedUser(t, db, "buyer")
	other, _ := seedUser(t, db, "other")
	foreign := seedAddress(t, db, other.ID)

	watch := seedWatch(t, db, "Rolex", "Datejust", "8800.00", 10)
	addToCart(t, r, token, watch.ID, 1)

	w := doJSON(r, http.MethodPost, "/cart/checkout/", gin.H{"address_id": foreign.ID}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	db.Model(&models.Order{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCheckoutPlacesOrder(t *testing.T) {
	r, db := setupOrderRouter(t)
	user, token := seedUser(t, db, "kavya")
	address := seedAddress(t, db, user.ID)

	watchA := seedWatch(t, db, "Omega", "Speedmaster", "100.00", 10)
	watchB := seedWatch(t, db, "Tudor", "Black Bay", "50.00", 5)
	addToCart(t, r, token, watchA.ID, 2)
	addToCart(t, r, token, watchB.ID, 1)

	w := doJSON(r, http.MethodPost, "/cart/checkout/", gin.H{"address_id": address.ID}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	payload := decode(t, w)
	orderNumber, _ := payload["order_number"].(string)
	assert.Regexp(t, regexp.MustCompile(`^LW-[0-9A-F]{8}$`), orderNumber)

	var order models.Order
	require.NoError(t, db.Preload("Items").Where("order_number = ?", orderNumber).First(&order).Error)
	assert.Equal(t, user.ID, order.UserID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, "250.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "45.00", order.Tax.StringFixed(2))
	assert.Equal(t, "295.00", order.Total.StringFixed(2))
	require.Len(t, order.Items, 2)

	// snapshot carries name, brand and price at purchase time
	byName := map[string]models.OrderItem{}
	for _, item := range order.Items {
		byName[item.WatchName] = item
	}
	speedy := byName["Omega Speedmaster"]
	assert.Equal(t, "Omega", speedy.WatchBrand)
	assert.Equal(t, "100.00", speedy.Price.StringFixed(2))
	assert.Equal(t, 2, speedy.Quantity)

	// address copied verbatim
	assert.Equal(t, "Test Buyer", order.FullName)
	assert.Equal(t, "14 MG Road", order.AddressLine1)
	assert.Equal(t, "kavya@example.com", order.Email)

	// stock decremented, cart emptied
	var a, b models.Watch
	require.NoError(t, db.First(&a, watchA.ID).Error)
	require.NoError(t, db.First(&b, watchB.ID).Error)
	assert.Equal(t, 8, a.Stock)
	assert.Equal(t, 4, b.Stock)

	var itemCount int64
	db.Model(&models.CartItem{}).Count(&itemCount)
	assert.Equal(t, int64(0), itemCount)
}

func TestOrderItemSnapshotSurvivesPriceChange(t *testing.T) {
	r, db := setupOrderRouter(t)
	user, token := seedUser(t, db, "dev")
	address := seedAddress(t, db, user.ID)

	watch := seedWatch(t, db, "Cartier", "Tank", "4000.00", 10)
	addToCart(t, r, token, watch.ID, 1)

	w := doJSON(r, http.MethodPost, "/cart/checkout/", gin.H{"address_id": address.ID}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	require.NoError(t, db.Model(&models.Watch{}).Where("id = ?", watch.ID).
		Update("price", "9999.00").Error)

	var item models.OrderItem
	require.NoError(t, db.First(&item).Error)
	assert.Equal(t, "4000.00", item.Price.StringFixed(2))
	assert.Equal(t, "Cartier Tank", item.WatchName)
}

func TestOrderRetrievalScopedToOwner(t *testing.T) {
	r, db := setupOrderRouter(t)
	user, token := seedUser(t, db, "owner")
	address := seedAddress(t, db, user.ID)
	_, otherToken := seedUser(t, db, "stranger")

	watch := seedWatch(t, db, "Breitling", "Navitimer", "7300.00", 10)
	addToCart(t, r, token, watch.ID, 1)

	w := doJSON(r, http.MethodPost, "/cart/checkout/", gin.H{"address_id": address.ID}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	orderNumber := decode(t, w)["order_number"].(string)

	w = doJSON(r, http.MethodGet, "/cart/order/"+orderNumber+"/", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/cart/order/"+orderNumber+"/confirm/", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/cart/order/"+orderNumber+"/", nil, otherToken)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/cart/orders/", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	orders := decode(t, w)["orders"].([]interface{})
	assert.Len(t, orders, 1)

	w = doJSON(r, http.MethodGet, "/cart/orders/", nil, otherToken)
	require.Equal(t, http.StatusOK, w.Code)
	orders = decode(t, w)["orders"].([]interface{})
	assert.Len(t, orders, 0)
}

func TestCheckoutRequiresLogin(t *testing.T) {
	r, _ := setupOrderRouter(t)
	w := doJSON(r, http.MethodPost, "/cart/checkout/", gin.H{"address_id": 1}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
