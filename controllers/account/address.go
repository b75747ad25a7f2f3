package accountControllers

import (
	"net/http"
	"strconv"

	"github.com/KetkiGokakkar/LuxuryWatches/middleware"
	"github.com/KetkiGokakkar/LuxuryWatches/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type addressInput struct {
	FullName     string `json:"full_name" binding:"required"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1" binding:"required"`
	AddressLine2 string `json:"address_line2"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"required"`
	PostalCode   string `json:"postal_code" binding:"required"`
	Country      string `json:"country"`
	IsDefault    bool   `json:"is_default"`
}

// POST /accounts/address/add/
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		var input addressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		address := models.Address{
			UserID:       userID,
			FullName:     input.FullName,
			Phone:        input.Phone,
			AddressLine1: input.AddressLine1,
			AddressLine2: input.AddressLine2,
			City:         input.City,
			State:        input.State,
			PostalCode:   input.PostalCode,
			Country:      input.Country,
			IsDefault:    input.IsDefault,
		}
		if err := db.Create(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add address"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "Address added successfully!", "address": address})
	}
}

// PUT /accounts/address/:id/edit/
func EditAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := ownedAddress(c, db)
		if !ok {
			return
		}

		var input addressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		address.FullName = input.FullName
		address.Phone = input.Phone
		address.AddressLine1 = input.AddressLine1
		address.AddressLine2 = input.AddressLine2
		address.City = input.City
		address.State = input.State
		address.PostalCode = input.PostalCode
		if input.Country != "" {
			address.Country = input.Country
		}
		address.IsDefault = input.IsDefault

		if err := db.Save(address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Address updated!", "address": address})
	}
}

// POST /accounts/address/:id/delete/
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		address, ok := ownedAddress(c, db)
		if !ok {
			return
		}

		if err := db.Delete(address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Address deleted."})
	}
}

// ownedAddress loads the addressed row scoped to its owner; a foreign id
// reads as not found.
func ownedAddress(c *gin.Context, db *gorm.DB) (*models.Address, bool) {
	userID, _ := middleware.UserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address id"})
		return nil, false
	}

	var address models.Address
	err = db.Where("id = ? AND user_id = ?", id, userID).First(&address).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch address"})
		}
		return nil, false
	}
	return &address, true
}
