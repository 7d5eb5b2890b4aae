package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/smart-shop0/apperrors"
	"github.com/AmrIbrahim41/smart-shop0/models"
)

func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch categories", err))
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name        string `json:"name" binding:"required"`
			Slug        string `json:"slug"`
			Description string `json:"description"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid category payload", err))
			return
		}

		category := models.Category{Name: req.Name, Slug: req.Slug, Description: req.Description}
		if err := db.Create(&category).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindConflict, "category already exists", err))
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "invalid category id"))
			return
		}
		var req struct {
			Name        *string `json:"name"`
			Slug        *string `json:"slug"`
			Description *string `json:"description"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid category payload", err))
			return
		}

		var category models.Category
		if err := db.First(&category, uint(categoryID)).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				apperrors.Respond(c, apperrors.New(apperrors.KindNotFound, "category not found"))
				return
			}
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch category", err))
			return
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Slug != nil {
			updates["slug"] = *req.Slug
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if len(updates) > 0 {
			if err := db.Model(&category).Updates(updates).Error; err != nil {
				apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to update category", err))
				return
			}
		}
		c.JSON(http.StatusOK, category)
	}
}

func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "invalid category id"))
			return
		}
		if err := db.Delete(&models.Category{}, uint(categoryID)).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to delete category", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}

func GetTags(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tags []models.Tag
		if err := db.Find(&tags).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to fetch tags", err))
			return
		}
		c.JSON(http.StatusOK, tags)
	}
}

func CreateTag(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Name string `json:"name" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindValidation, "invalid tag payload", err))
			return
		}
		tag := models.Tag{Name: req.Name}
		if err := db.Create(&tag).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindConflict, "tag already exists", err))
			return
		}
		c.JSON(http.StatusCreated, tag)
	}
}

func DeleteTag(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		tagID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			apperrors.Respond(c, apperrors.New(apperrors.KindValidation, "invalid tag id"))
			return
		}
		if err := db.Delete(&models.Tag{}, uint(tagID)).Error; err != nil {
			apperrors.Respond(c, apperrors.Wrap(apperrors.KindPersistence, "failed to delete tag", err))
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Tag deleted successfully"})
	}
}
