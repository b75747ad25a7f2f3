package adminControllers

import (
	"net/http"
	"strconv"

	"github.com/KetkiGokakkar/LuxuryWatches/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type watchInput struct {
	Name          string           `json:"name" binding:"required"`
	BrandID       uint             `json:"brand_id" binding:"required"`
	CategoryID    *uint            `json:"category_id"`
	Description   string           `json:"description"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	OriginalPrice *decimal.Decimal `json:"original_price"`

	CaseMaterial    string `json:"case_material"`
	CaseDiameter    string `json:"case_diameter"`
	Movement        string `json:"movement"`
	WaterResistance string `json:"water_resistance"`
	StrapMaterial   string `json:"strap_material"`
	DialColor       string `json:"dial_color"`
	Crystal         string `json:"crystal"`
	PowerReserve    string `json:"power_reserve"`
	ReferenceNumber string `json:"reference_number"`

	Stock        *int  `json:"stock"`
	IsFeatured   *bool `json:"is_featured"`
	IsNewArrival *bool `json:"is_new_arrival"`
	IsBestseller *bool `json:"is_bestseller"`
	IsActive     *bool `json:"is_active"`
}

// GET /admin/watches — includes inactive entries, unlike the public catalog.
func ListWatches(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var watches []models.Watch
		err := db.Preload("Brand").Preload("Category").
			Order("created_at DESC").
			Find(&watches).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watches"})
			return
		}
		c.JSON(http.StatusOK, watches)
	}
}

// POST /admin/watches
func CreateWatch(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input watchInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var brand models.Brand
		if err := db.First(&brand, input.BrandID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Brand does not exist"})
			return
		}
		if input.CategoryID != nil {
			var category models.Category
			if err := db.First(&category, *input.CategoryID).Error; err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Category does not exist"})
				return
			}
		}

		watch := models.Watch{
			Name:            input.Name,
			Slug:            models.WatchSlug(brand.Name, input.Name),
			BrandID:         input.BrandID,
			CategoryID:      input.CategoryID,
			Description:     input.Description,
			Price:           input.Price,
			OriginalPrice:   input.OriginalPrice,
			CaseMaterial:    input.CaseMaterial,
			CaseDiameter:    input.CaseDiameter,
			Movement:        input.Movement,
			WaterResistance: input.WaterResistance,
			StrapMaterial:   input.StrapMaterial,
			DialColor:       input.DialColor,
			Crystal:         input.Crystal,
			PowerReserve:    input.PowerReserve,
			ReferenceNumber: input.ReferenceNumber,
			Stock:           10,
			IsActive:        true,
		}
		if input.Stock != nil {
			watch.Stock = *input.Stock
		}
		if input.IsFeatured != nil {
			watch.IsFeatured = *input.IsFeatured
		}
		if input.IsNewArrival != nil {
			watch.IsNewArrival = *input.IsNewArrival
		}
		if input.IsBestseller != nil {
			watch.IsBestseller = *input.IsBestseller
		}
		if input.IsActive != nil {
			watch.IsActive = *input.IsActive
		}

		if err := db.Create(&watch).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create watch"})
			return
		}
		c.JSON(http.StatusCreated, watch)
	}
}

// PUT /admin/watches/:id
func UpdateWatch(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		watch, ok := watchByID(c, db)
		if !ok {
			return
		}

		var input watchInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var brand models.Brand
		if err := db.First(&brand, input.BrandID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Brand does not exist"})
			return
		}

		watch.Name = input.Name
		watch.BrandID = input.BrandID
		watch.CategoryID = input.CategoryID
		watch.Description = input.Description
		watch.Price = input.Price
		watch.OriginalPrice = input.OriginalPrice
		watch.CaseMaterial = input.CaseMaterial
		watch.CaseDiameter = input.CaseDiameter
		watch.Movement = input.Movement
		watch.WaterResistance = input.WaterResistance
		watch.StrapMaterial = input.StrapMaterial
		watch.DialColor = input.DialColor
		watch.Crystal = input.Crystal
		watch.PowerReserve = input.PowerReserve
		watch.ReferenceNumber = input.ReferenceNumber
		if input.Stock != nil {
			watch.Stock = *input.Stock
		}
		if input.IsFeatured != nil {
			watch.IsFeatured = *input.IsFeatured
		}
		if input.IsNewArrival != nil {
			watch.IsNewArrival = *input.IsNewArrival
		}
		if input.IsBestseller != nil {
			watch.IsBestseller = *input.IsBestseller
		}
		if input.IsActive != nil {
			watch.IsActive = *input.IsActive
		}

		if err := db.Save(watch).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update watch"})
			return
		}
		c.JSON(http.StatusOK, watch)
	}
}

// DELETE /admin/watches/:id
func DeleteWatch(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		watch, ok := watchByID(c, db)
		if !ok {
			return
		}
		if err := db.Delete(watch).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete watch"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Watch deleted"})
	}
}

func watchByID(c *gin.Context, db *gorm.DB) (*models.Watch, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid watch id"})
		return nil, false
	}

	var watch models.Watch
	if err := db.First(&watch, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Watch not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watch"})
		}
		return nil, false
	}
	return &watch, true
}
