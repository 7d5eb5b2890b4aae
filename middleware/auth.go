package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ValidateToken authenticates the request from a Bearer JWT issued by the
// identity service. On success the authenticated principal is stored in the
// context as user_id (uint) and is_staff (bool).
func ValidateToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}
	isStaff, _ := claims["is_staff"].(bool)

	c.Set("user_id", uint(userID))
	c.Set("is_staff", isStaff)

	c.Next()
}

// RequireAdmin must run after ValidateToken.
func RequireAdmin(c *gin.Context) {
	if isStaff, ok := c.Get("is_staff"); !ok || isStaff != true {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
		c.Abort()
		return
	}
	c.Next()
}

// CurrentUserID returns the authenticated user id set by ValidateToken.
func CurrentUserID(c *gin.Context) (uint, bool) {
	val, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	id, ok := val.(uint)
	return id, ok
}

// IsStaff reports whether the authenticated principal is an admin.
func IsStaff(c *gin.Context) bool {
	val, ok := c.Get("is_staff")
	return ok && val == true
}
