package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/KetkiGokakkar/LuxuryWatches/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type quantityInput struct {
	Quantity int `json:"quantity"`
}

// GET /cart/
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, err := ResolveCart(c, db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			return
		}

		if err := db.Preload("Items.Watch.Brand").First(cart, cart.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"items":       cart.Items,
			"total_items": cart.TotalItems(),
			"subtotal":    cart.Subtotal().StringFixed(2),
			"tax":         cart.Tax().StringFixed(2),
			"total":       cart.Total().StringFixed(2),
		})
	}
}

// AddToCart puts a watch in the caller's cart. Adding a watch that is
// already there increments its quantity by the requested amount. There is no
// upper bound against stock.
// POST /cart/add/:watch_id/
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		watchID, err := strconv.ParseUint(c.Param("watch_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid watch id"})
			return
		}

		var input quantityInput
		_ = c.ShouldBindJSON(&input)
		quantity := input.Quantity
		if quantity < 1 {
			quantity = 1
		}

		var watch models.Watch
		err = db.Preload("Brand").
			Where("id = ? AND is_active = ?", watchID, true).
			First(&watch).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Watch not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watch"})
			}
			return
		}

		cart, err := ResolveCart(c, db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
			return
		}

		var item models.CartItem
		err = db.Where("cart_id = ? AND watch_id = ?", cart.ID, watch.ID).First(&item).Error
		switch {
		case err == gorm.ErrRecordNotFound:
			item = models.CartItem{CartID: cart.ID, WatchID: watch.ID, Quantity: quantity}
			if err := db.Create(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
				return
			}
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		default:
			item.Quantity += quantity
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"cart_count": cartCount(c, db),
			"message":    watch.Brand.Name + " " + watch.Name + " added to cart!",
		})
	}
}

// UpdateCartItem replaces an item's quantity; zero or less deletes the row.
// POST /cart/update/:item_id/
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart, item, ok := ownedItem(c, db)
		if !ok {
			return
		}

		var input quantityInput
		_ = c.ShouldBindJSON(&input)

		lineTotal := "0"
		if input.Quantity <= 0 {
			if err := db.Delete(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
				return
			}
		} else {
			item.Quantity = input.Quantity
			if err := db.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
			lineTotal = item.LineTotal().StringFixed(2)
		}

		if err := db.Preload("Items.Watch").First(cart, cart.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"cart_count": cart.TotalItems(),
			"subtotal":   cart.Subtotal().StringFixed(2),
			"tax":        cart.Tax().StringFixed(2),
			"total":      cart.Total().StringFixed(2),
			"line_total": lineTotal,
		})
	}
}

// POST /cart/remove/:item_id/
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, item, ok := ownedItem(c, db)
		if !ok {
			return
		}

		if err := db.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove cart item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "Item removed from cart.",
			"cart_count": cartCount(c, db),
		})
	}
}

// ownedItem loads the addressed cart item scoped to the caller's own cart.
// An item belonging to someone else's cart reads as not found.
func ownedItem(c *gin.Context, db *gorm.DB) (*models.Cart, models.CartItem, bool) {
	var item models.CartItem

	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
		return nil, item, false
	}

	cart, err := ResolveCart(c, db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve cart"})
		return nil, item, false
	}

	err = db.Preload("Watch").
		Where("id = ? AND cart_id = ?", itemID, cart.ID).
		First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
		}
		return nil, item, false
	}

	return cart, item, true
}
