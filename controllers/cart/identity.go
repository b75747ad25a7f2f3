package cartControllers

import (
	"time"

	"github.com/KetkiGokakkar/LuxuryWatches/middleware"
	"github.com/KetkiGokakkar/LuxuryWatches/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// SessionCookie carries the anonymous visitor's session key.
	SessionCookie = "lw_session"

	// sessionKeyContext caches a freshly created session key for the rest of
	// the request; the cookie only exists on the response at that point.
	sessionKeyContext = "session_key"

	sessionTTL = 30 * 24 * time.Hour
)

// ResolveCart returns the cart for the caller: one per authenticated user,
// or one per anonymous session key, each created lazily. Anonymous carts are
// not merged when the visitor later logs in.
func ResolveCart(c *gin.Context, db *gorm.DB) (*models.Cart, error) {
	if userID, ok := middleware.UserID(c); ok {
		var cart models.Cart
		err := db.Where(models.Cart{UserID: &userID}).
			FirstOrCreate(&cart, models.Cart{UserID: &userID}).Error
		if err != nil {
			return nil, err
		}
		return &cart, nil
	}

	sessionKey, err := c.Cookie(SessionCookie)
	if err != nil || sessionKey == "" {
		if cached, ok := c.Get(sessionKeyContext); ok {
			sessionKey = cached.(string)
		} else {
			sessionKey, err = createSession(c, db)
			if err != nil {
				return nil, err
			}
		}
	}

	var cart models.Cart
	err = db.Where(models.Cart{SessionKey: &sessionKey}).
		FirstOrCreate(&cart, models.Cart{SessionKey: &sessionKey}).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func createSession(c *gin.Context, db *gorm.DB) (string, error) {
	session := models.GuestSession{
		SessionKey: uuid.NewString(),
		ExpiresAt:  time.Now().Add(sessionTTL),
	}
	if err := db.Create(&session).Error; err != nil {
		return "", err
	}
	c.SetCookie(SessionCookie, session.SessionKey, int(sessionTTL.Seconds()), "/", "", false, true)
	c.Set(sessionKeyContext, session.SessionKey)
	return session.SessionKey, nil
}

// cartCount is the badge counter; lookup failures collapse to zero.
func cartCount(c *gin.Context, db *gorm.DB) int {
	cart, err := ResolveCart(c, db)
	if err != nil {
		return 0
	}
	if err := db.Preload("Items").First(cart, cart.ID).Error; err != nil {
		return 0
	}
	return cart.TotalItems()
}
