package userControllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/smart-shop0/apperrors"
	userControllers "github.com/AmrIbrahim41/smart-shop0/controllers/user"
	"github.com/AmrIbrahim41/smart-shop0/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to connect test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Order{},
		&models.CartItem{},
		&models.WishlistItem{},
	)
	require.NoError(t, err, "failed to auto-migrate models")

	return db
}

func TestRegister(t *testing.T) {
	db := setupTestDB(t)

	t.Run("creates user with profile", func(t *testing.T) {
		user, err := userControllers.Register(db, userControllers.RegisterRequest{
			Email:     "Jane@Example.com",
			Password:  "correct horse",
			FirstName: "Jane",
			LastName:  "Doe",
			Phone:     "0100000000",
		})
		require.NoError(t, err)

		assert.Equal(t, "jane@example.com", user.Email, "email must be normalized")
		assert.True(t, user.IsActive)
		assert.NotEqual(t, "correct horse", user.Password, "password must be hashed")
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("correct horse")))

		var profile models.Profile
		require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
		assert.Equal(t, models.UserTypeCustomer, profile.UserType)
		assert.Equal(t, "0100000000", profile.Phone)
	})

	t.Run("vendor type is honored", func(t *testing.T) {
		user, err := userControllers.Register(db, userControllers.RegisterRequest{
			Email:    "vendor@example.com",
			Password: "supersecret",
			Type:     "vendor",
		})
		require.NoError(t, err)

		var profile models.Profile
		require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
		assert.Equal(t, models.UserTypeVendor, profile.UserType)
	})

	t.Run("unknown type falls back to customer", func(t *testing.T) {
		user, err := userControllers.Register(db, userControllers.RegisterRequest{
			Email:    "weird@example.com",
			Password: "supersecret",
			Type:     "superadmin",
		})
		require.NoError(t, err)

		var profile models.Profile
		require.NoError(t, db.Where("user_id = ?", user.ID).First(&profile).Error)
		assert.Equal(t, models.UserTypeCustomer, profile.UserType)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		_, err := userControllers.Register(db, userControllers.RegisterRequest{
			Email:    "JANE@example.com",
			Password: "another pass",
		})
		require.Error(t, err)
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	})
}

func TestRegisterHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	r := gin.New()
	r.POST("/users/register", userControllers.RegisterHandler(db))

	t.Run("201 with user body", func(t *testing.T) {
		body, _ := json.Marshal(gin.H{
			"email":    "new@example.com",
			"password": "longenough",
		})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/users/register", bytes.NewReader(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotContains(t, w.Body.String(), "longenough",
			"response must never echo the password")
	})

	t.Run("short password is rejected", func(t *testing.T) {
		body, _ := json.Marshal(gin.H{
			"email":    "short@example.com",
			"password": "short",
		})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPost, "/users/register", bytes.NewReader(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetUserByID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	user, err := userControllers.Register(db, userControllers.RegisterRequest{
		Email:    "lookup@example.com",
		Password: "supersecret",
		Phone:    "0123456789",
	})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/admin/users/:id", userControllers.GetUserByID(db))

	t.Run("returns the user with their profile", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("/admin/users/%d", user.ID), nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var got models.User
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "lookup@example.com", got.Email)
		assert.Equal(t, "0123456789", got.Profile.Phone)
	})

	t.Run("missing user is not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/admin/users/99999", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestAdminUpdateUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	user, err := userControllers.Register(db, userControllers.RegisterRequest{
		Email:     "edit@example.com",
		Password:  "supersecret",
		FirstName: "Old",
	})
	require.NoError(t, err)
	other, err := userControllers.Register(db, userControllers.RegisterRequest{
		Email:    "taken@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	r := gin.New()
	r.PUT("/admin/users/:id", userControllers.AdminUpdateUser(db))

	update := func(id uint, payload gin.H) *httptest.ResponseRecorder {
		body, _ := json.Marshal(payload)
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, fmt.Sprintf("/admin/users/%d", id), bytes.NewReader(body))
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("updates name and staff flag", func(t *testing.T) {
		w := update(user.ID, gin.H{"first_name": "New", "is_staff": true})
		require.Equal(t, http.StatusOK, w.Code)

		var fresh models.User
		require.NoError(t, db.First(&fresh, user.ID).Error)
		assert.Equal(t, "New", fresh.FirstName)
		assert.True(t, fresh.IsStaff)
	})

	t.Run("normalizes a changed email", func(t *testing.T) {
		w := update(user.ID, gin.H{"email": "  Edited@Example.COM "})
		require.Equal(t, http.StatusOK, w.Code)

		var fresh models.User
		require.NoError(t, db.First(&fresh, user.ID).Error)
		assert.Equal(t, "edited@example.com", fresh.Email)
	})

	t.Run("omitted fields stay untouched", func(t *testing.T) {
		w := update(user.ID, gin.H{"last_name": "Smith"})
		require.Equal(t, http.StatusOK, w.Code)

		var fresh models.User
		require.NoError(t, db.First(&fresh, user.ID).Error)
		assert.Equal(t, "New", fresh.FirstName)
		assert.True(t, fresh.IsStaff)
	})

	t.Run("email already registered conflicts", func(t *testing.T) {
		w := update(user.ID, gin.H{"email": other.Email})
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing user is not found", func(t *testing.T) {
		w := update(99999, gin.H{"first_name": "Ghost"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	user, err := userControllers.Register(db, userControllers.RegisterRequest{
		Email:    "gone@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)

	order := models.Order{OrderRef: "REF-1", UserID: &user.ID, Status: models.OrderStatusPending}
	require.NoError(t, db.Create(&order).Error)
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: 1, Qty: 2}).Error)

	r := gin.New()
	r.DELETE("/admin/users/:id", userControllers.DeleteUser(db))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, fmt.Sprintf("/admin/users/%d", user.ID), nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var users, profiles, carts int64
	db.Model(&models.User{}).Where("id = ?", user.ID).Count(&users)
	db.Model(&models.Profile{}).Where("user_id = ?", user.ID).Count(&profiles)
	db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&carts)
	assert.Zero(t, users)
	assert.Zero(t, profiles)
	assert.Zero(t, carts)

	// the order survives the account, detached from its owner
	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Nil(t, stored.UserID)
}
