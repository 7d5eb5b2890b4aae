package userControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/smart-shop0/apperrors"
	"github.com/AmrIbrahim41/smart-shop0/middleware"
	"github.com/AmrIbrahim41/smart-shop0/models"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Type      string `json:"type"`
}

type UpdateProfileRequest struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Phone          *string `json:"phone"`
	City           *string `json:"city"`
	Country        *string `json:"country"`
	ProfilePicture *string `json:"profile_picture"`
}

// InitProfile creates the profile row for a freshly registered user. Called
// explicitly by the registration workflow, in the same transaction as the
// user insert.
func InitProfile(tx *gorm.DB, user *models.User, phone string, userType models.UserType) error {
	if userType != models.UserTypeVendor {
		userType = models.UserTypeCustomer
	}
	profile := models.Profile{
		UserID:   user.ID,
		UserType: userType,
		Phone:    phone,
	}
	if err := tx.Create(&profile).Error; err != nil {
		return err
	}
	user.Profile = profile
	return nil
}

// Register creates the user and its profile atomically. Account activation
// email delivery is handled by an external service.
func Register(db *gorm.DB, req RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&existing).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindPersistence, "registration failed", err)
	}
	if existing > 0 {
		return nil, apperrors.New(apperrors.KindConflict, "this email is already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindPersistence, "registration failed", err)
	}

	user := models.User{
		Email:     email,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsActive:  true,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return InitProfile(tx, &user, req.Phone, models.UserType(req.Type))
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindPersistence, "registration failed", err)
	}

	logrus.WithField("user_id", user.ID).Info("user registered")
	return &user, nil
}

// POST /users/register
func RegisterHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid registration payload", err))
			return
		}
		user, err := Register(db, req)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusCreated, user)
	}
}

// GET /user/profile
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var user models.User
		if err := db.Preload("Profile").First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.New(apperrors.KindNotFound, "user not found"))
				return
			}
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch user", err))
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /user/profile
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid profile payload", err))
			return
		}

		var user models.User
		if err := db.Preload("Profile").First(&user, userID).Error; err != nil {
			apperrors.Respond(c, apperrors.New(apperrors.KindNotFound, "user not found"))
			return
		}

		userUpdates := make(map[string]interface{})
		if req.FirstName != nil {
			userUpdates["first_name"] = *req.FirstName
		}
		if req.LastName != nil {
			userUpdates["last_name"] = *req.LastName
		}

		profileUpdates := make(map[string]interface{})
		if req.Phone != nil {
			profileUpdates["phone"] = *req.Phone
		}
		if req.City != nil {
			profileUpdates["city"] = *req.City
		}
		if req.Country != nil {
			profileUpdates["country"] = *req.Country
		}
		if req.ProfilePicture != nil {
			profileUpdates["profile_picture"] = *req.ProfilePicture
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if len(userUpdates) > 0 {
				if err := tx.Model(&user).Updates(userUpdates).Error; err != nil {
					return err
				}
			}
			if len(profileUpdates) > 0 {
				if err := tx.Model(&user.Profile).Updates(profileUpdates).Error; err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to update profile", err))
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

type AdminUpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	IsStaff   *bool   `json:"is_staff"`
	IsActive  *bool   `json:"is_active"`
}

// GET /admin/users/:id
func GetUserByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "invalid user id"))
			return
		}

		var user models.User
		if err := db.Preload("Profile").First(&user, uint(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.New(apperrors.KindNotFound, "user not found"))
				return
			}
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch user", err))
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /admin/users/:id — admins edit the account fields registration does
// not expose, including the staff flag.
func AdminUpdateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "invalid user id"))
			return
		}

		var req AdminUpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid user payload", err))
			return
		}

		var user models.User
		if err := db.Preload("Profile").First(&user, uint(userID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.New(apperrors.KindNotFound, "user not found"))
				return
			}
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch user", err))
			return
		}

		updates := make(map[string]interface{})
		if req.FirstName != nil {
			updates["first_name"] = *req.FirstName
		}
		if req.LastName != nil {
			updates["last_name"] = *req.LastName
		}
		if req.Email != nil {
			email := strings.ToLower(strings.TrimSpace(*req.Email))
			if email != user.Email {
				var taken int64
				if err := db.Model(&models.User{}).
					Where("email = ? AND id <> ?", email, user.ID).
					Count(&taken).Error; err != nil {
					apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to update user", err))
					return
				}
				if taken > 0 {
					apperrors.Respond(c, apperrors.New(apperrors.KindConflict, "this email is already registered"))
					return
				}
				updates["email"] = email
			}
		}
		if req.IsStaff != nil {
			updates["is_staff"] = *req.IsStaff
		}
		if req.IsActive != nil {
			updates["is_active"] = *req.IsActive
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to update user", err))
				return
			}
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Preload("Profile").
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch users", err))
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// DELETE /admin/users/:id — orders survive with a null owner.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "invalid user id"))
			return
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			var user models.User
			if err := tx.First(&user, uint(userID)).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.New(apperrors.KindNotFound, "user not found")
				}
				return apperrors.Wrap(apperrors.KindPersistence, "failed to delete user", err)
			}
			if err := tx.Model(&models.Order{}).Where("user_id = ?", user.ID).
				Update("user_id", nil).Error; err != nil {
				return apperrors.Wrap(apperrors.KindPersistence, "failed to delete user", err)
			}
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
				return apperrors.Wrap(apperrors.KindPersistence, "failed to delete user", err)
			}
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.WishlistItem{}).Error; err != nil {
				return apperrors.Wrap(apperrors.KindPersistence, "failed to delete user", err)
			}
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.Profile{}).Error; err != nil {
				return apperrors.Wrap(apperrors.KindPersistence, "failed to delete user", err)
			}
			return tx.Delete(&user).Error
		})
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
	}
}
