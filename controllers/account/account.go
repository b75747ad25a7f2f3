package accountControllers

import (
	"net/http"

	"github.com/KetkiGokakkar/LuxuryWatches/auth"
	"github.com/KetkiGokakkar/LuxuryWatches/middleware"
	"github.com/KetkiGokakkar/LuxuryWatches/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type registerInput struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required,min=8"`
}

type loginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type profileInput struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
}

// POST /accounts/register/
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var existing int64
		db.Model(&models.User{}).
			Where("username = ? OR email = ?", input.Username, input.Email).
			Count(&existing)
		if existing > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already taken"})
			return
		}

		hash, err := auth.HashPassword(input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
			return
		}

		user := models.User{
			Username:     input.Username,
			Email:        input.Email,
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			PasswordHash: hash,
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already taken"})
			return
		}

		token, err := auth.IssueToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Welcome to LuxWatch! Your account has been created.",
			"token":   token,
			"user":    user,
		})
	}
}

// POST /accounts/login/
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var user models.User
		err := db.Where("username = ?", input.Username).First(&user).Error
		if err != nil || !auth.CheckPassword(user.PasswordHash, input.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password."})
			return
		}

		token, err := auth.IssueToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		name := user.FirstName
		if name == "" {
			name = user.Username
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome back, " + name + "!",
			"token":   token,
			"user":    user,
		})
	}
}

// Logout is an acknowledgment; tokens are stateless and expire on their own.
// POST /accounts/logout/
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "You have been logged out."})
	}
}

// GET /accounts/profile/
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		var user models.User
		if err := db.Preload("Addresses").First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// UpdateProfile edits the profile; name and email changes land on the user
// row itself.
// PUT /accounts/profile/
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var input profileInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		updates := make(map[string]interface{})
		if input.FirstName != nil {
			updates["first_name"] = *input.FirstName
		}
		if input.LastName != nil {
			updates["last_name"] = *input.LastName
		}
		if input.Email != nil {
			var taken int64
			db.Model(&models.User{}).
				Where("email = ? AND id <> ?", *input.Email, userID).
				Count(&taken)
			if taken > 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Email already taken"})
				return
			}
			updates["email"] = *input.Email
		}
		if input.Phone != nil {
			updates["phone"] = *input.Phone
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
				return
			}
		}

		c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully!", "user": user})
	}
}
