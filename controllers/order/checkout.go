package orderControllers

import (
	"errors"
	"net/http"
	"strings"

	cartControllers "github.com/KetkiGokakkar/LuxuryWatches/controllers/cart"
	"github.com/KetkiGokakkar/LuxuryWatches/events"
	"github.com/KetkiGokakkar/LuxuryWatches/middleware"
	"github.com/KetkiGokakkar/LuxuryWatches/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type checkoutInput struct {
	AddressID uint `json:"address_id"`
}

const orderNumberAttempts = 3

// Checkout shows the cart and the caller's saved addresses.
// GET /cart/checkout/
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		cart, ok := loadUserCart(c, db)
		if !ok {
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty."})
			return
		}

		addresses := []models.Address{}
		if err := db.Where("user_id = ?", userID).Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":     cart.Items,
			"subtotal":  cart.Subtotal().StringFixed(2),
			"tax":       cart.Tax().StringFixed(2),
			"total":     cart.Total().StringFixed(2),
			"addresses": addresses,
		})
	}
}

// PlaceOrder turns the cart into an immutable order in one transaction:
// order row, denormalized item snapshots, stock decrements, cart clearing.
// Stock is decremented without a sufficiency check; inventory may go
// negative, matching the catalog's derived in_stock read.
// POST /cart/checkout/
func PlaceOrder(db *gorm.DB, publisher *events.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		cart, ok := loadUserCart(c, db)
		if !ok {
			return
		}
		if len(cart.Items) == 0 {
			middleware.RecordCheckout(false)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty."})
			return
		}

		var input checkoutInput
		if err := c.ShouldBindJSON(&input); err != nil || input.AddressID == 0 {
			middleware.RecordCheckout(false)
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please select a delivery address."})
			return
		}

		var address models.Address
		err := db.Where("id = ? AND user_id = ?", input.AddressID, userID).First(&address).Error
		if err != nil {
			middleware.RecordCheckout(false)
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch address"})
			}
			return
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			middleware.RecordCheckout(false)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		var order models.Order
		for attempt := 0; ; attempt++ {
			order = models.Order{
				UserID:       userID,
				FullName:     address.FullName,
				Email:        user.Email,
				Phone:        address.Phone,
				AddressLine1: address.AddressLine1,
				AddressLine2: address.AddressLine2,
				City:         address.City,
				State:        address.State,
				PostalCode:   address.PostalCode,
				Country:      address.Country,
				Subtotal:     cart.Subtotal(),
				Tax:          cart.Tax(),
				Total:        cart.Total(),
				Status:       models.OrderStatusPending,
			}

			err = db.Transaction(func(tx *gorm.DB) error {
				if err := tx.Create(&order).Error; err != nil {
					return err
				}

				for _, item := range cart.Items {
					watchID := item.WatchID
					snapshot := models.OrderItem{
						OrderID:    order.ID,
						WatchID:    &watchID,
						WatchName:  item.Watch.Brand.Name + " " + item.Watch.Name,
						WatchBrand: item.Watch.Brand.Name,
						Price:      item.Watch.Price,
						Quantity:   item.Quantity,
					}
					if err := tx.Create(&snapshot).Error; err != nil {
						return err
					}
					order.Items = append(order.Items, snapshot)

					err := tx.Model(&models.Watch{}).
						Where("id = ?", item.WatchID).
						UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity)).Error
					if err != nil {
						return err
					}
				}

				return tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error
			})

			// The order number comes from an 8-hex random token; on the rare
			// collision, regenerate and retry.
			if err != nil && isDuplicateKey(err) && attempt < orderNumberAttempts-1 {
				continue
			}
			break
		}
		if err != nil {
			middleware.RecordCheckout(false)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		middleware.RecordCheckout(true)
		publisher.OrderPlaced(&order)

		c.JSON(http.StatusCreated, gin.H{
			"success":      true,
			"message":      "Order placed successfully!",
			"order_number": order.OrderNumber,
		})
	}
}

// loadUserCart fetches the authenticated caller's cart with items. The cart
// row is created lazily like everywhere else.
func loadUserCart(c *gin.Context, db *gorm.DB) (*models.Cart, bool) {
	cart, err := cartControllers.ResolveCart(c, db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
		return nil, false
	}
	if err := db.Preload("Items.Watch.Brand").First(cart, cart.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return nil, false
	}
	return cart, true
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
