package adminController_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adminController "github.com/AmrIbrahim41/smart-shop0/controllers/admin"
	"github.com/AmrIbrahim41/smart-shop0/models"
)

func TestProductApproval(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupTestDB(t)

	product := models.Product{
		Name:           "New Arrival",
		Price:          decimal.RequireFromString("15.00"),
		ApprovalStatus: models.ApprovalPending,
	}
	require.NoError(t, db.Create(&product).Error)

	r := gin.New()
	r.GET("/admin/products/pending", adminController.ListPendingProducts(db))
	r.PUT("/admin/products/:id/approval", adminController.SetProductApproval(db))

	setApproval := func(id string, status string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(gin.H{"approval_status": status})
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodPut, "/admin/products/"+id+"/approval", bytes.NewReader(body))
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("pending queue lists the product", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/admin/products/pending", nil)
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var pending []models.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
		require.Len(t, pending, 1)
		assert.Equal(t, "New Arrival", pending[0].Name)
	})

	t.Run("approving clears the queue", func(t *testing.T) {
		w := setApproval("1", "approved")
		require.Equal(t, http.StatusOK, w.Code)

		var fresh models.Product
		require.NoError(t, db.First(&fresh, product.ID).Error)
		assert.Equal(t, models.ApprovalApproved, fresh.ApprovalStatus)

		lw := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/admin/products/pending", nil)
		r.ServeHTTP(lw, req)
		var pending []models.Product
		require.NoError(t, json.Unmarshal(lw.Body.Bytes(), &pending))
		assert.Empty(t, pending)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		w := setApproval("1", "vetoed")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing product is not found", func(t *testing.T) {
		w := setApproval("99999", "approved")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
