package adminControllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/KetkiGokakkar/LuxuryWatches/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// ExportWatchesToExcel dumps the full catalog, inactive entries included.
// GET /admin/watches/export-excel
func ExportWatchesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var watches []models.Watch
		if err := db.Preload("Brand").Preload("Category").Find(&watches).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watches"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Watches")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Brand", "Category", "Description",
			"Price", "OriginalPrice", "Stock", "Active",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, w := range watches {
			row := sheet.AddRow()
			row.AddCell().SetValue(int(w.ID))
			row.AddCell().SetValue(w.Name)
			row.AddCell().SetValue(w.Brand.Name)
			if w.Category != nil {
				row.AddCell().SetValue(w.Category.Name)
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(w.Description)
			row.AddCell().SetValue(w.Price.StringFixed(2))
			if w.OriginalPrice != nil {
				row.AddCell().SetValue(w.OriginalPrice.StringFixed(2))
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(w.Stock)
			row.AddCell().SetValue(strconv.FormatBool(w.IsActive))
		}

		c.Header("Content-Disposition", `attachment; filename="watches.xlsx"`)
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}

// ImportWatchesFromExcel loads catalog rows from an uploaded sheet. Rows
// with an ID update that watch; rows without one create a new watch.
// Malformed rows are skipped and counted.
// POST /admin/watches/import-excel
func ImportWatchesFromExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		excelFileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is required"})
			return
		}

		file, err := excelFileHeader.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open Excel file"})
			return
		}
		defer file.Close()

		xlFile, err := xlsx.OpenReaderAt(file, excelFileHeader.Size)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse Excel file"})
			return
		}

		if len(xlFile.Sheets) == 0 || xlFile.Sheets[0].MaxRow < 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Excel file is empty or missing header row"})
			return
		}

		sheet := xlFile.Sheets[0]
		createdCount, updatedCount, skippedCount := 0, 0, 0

		for i := 1; i < sheet.MaxRow; i++ {
			row := sheet.Rows[i]

			get := func(index int) string {
				if index < len(row.Cells) {
					return strings.TrimSpace(row.Cells[index].String())
				}
				return ""
			}

			idStr := get(0)
			name := get(1)
			brandName := get(2)
			categoryName := get(3)
			description := get(4)
			price, priceErr := decimal.NewFromString(get(5))
			originalPriceStr := get(6)
			stock, _ := strconv.Atoi(get(7))
			active := !strings.EqualFold(get(8), "false")

			if name == "" || brandName == "" || priceErr != nil {
				skippedCount++
				continue
			}

			var brand models.Brand
			if err := db.Where("name = ?", brandName).
				FirstOrCreate(&brand, models.Brand{Name: brandName}).Error; err != nil {
				skippedCount++
				continue
			}

			var categoryID *uint
			if categoryName != "" {
				var category models.Category
				if err := db.Where("name = ?", categoryName).
					FirstOrCreate(&category, models.Category{Name: categoryName}).Error; err == nil {
					categoryID = &category.ID
				}
			}

			var originalPrice *decimal.Decimal
			if originalPriceStr != "" {
				if op, err := decimal.NewFromString(originalPriceStr); err == nil {
					originalPrice = &op
				}
			}

			if idStr != "" {
				id, err := strconv.ParseUint(idStr, 10, 64)
				if err != nil {
					skippedCount++
					continue
				}
				var watch models.Watch
				if err := db.First(&watch, id).Error; err != nil {
					skippedCount++
					continue
				}
				watch.Name = name
				watch.BrandID = brand.ID
				watch.CategoryID = categoryID
				watch.Description = description
				watch.Price = price
				watch.OriginalPrice = originalPrice
				watch.Stock = stock
				watch.IsActive = active
				if err := db.Save(&watch).Error; err != nil {
					skippedCount++
					continue
				}
				updatedCount++
				continue
			}

			watch := models.Watch{
				Name:          name,
				Slug:          models.WatchSlug(brand.Name, name),
				BrandID:       brand.ID,
				CategoryID:    categoryID,
				Description:   description,
				Price:         price,
				OriginalPrice: originalPrice,
				Stock:         stock,
				IsActive:      active,
			}
			if err := db.Create(&watch).Error; err != nil {
				skippedCount++
				continue
			}
			createdCount++
		}

		c.JSON(http.StatusOK, gin.H{
			"created": createdCount,
			"updated": updatedCount,
			"skipped": skippedCount,
		})
	}
}
