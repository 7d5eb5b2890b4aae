package adminController_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	adminController "github.com/AmrIbrahim41/smart-shop0/controllers/admin"
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
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.ShippingAddress{},
	)
	require.NoError(t, err, "failed to auto-migrate models")

	return db
}

func seedOrder(t *testing.T, db *gorm.DB, total string, createdAt time.Time) {
	t.Helper()

	order := models.Order{
		OrderRef:      fmt.Sprintf("TEST-%d", time.Now().UnixNano()),
		PaymentMethod: "card",
		TotalPrice:    decimal.RequireFromString(total),
		TaxPrice:      decimal.Zero,
		ShippingPrice: decimal.Zero,
		Status:        models.OrderStatusPending,
	}
	require.NoError(t, db.Create(&order).Error)
	require.NoError(t, db.Model(&order).Update("created_at", createdAt).Error)
}

func TestGetDashboardStats(t *testing.T) {
	db := setupTestDB(t)

	t.Run("empty store reports zeroes", func(t *testing.T) {
		stats, err := adminController.GetDashboardStats(db)
		require.NoError(t, err)

		assert.True(t, stats.TotalSales.IsZero())
		assert.Zero(t, stats.TotalOrders)
		assert.Zero(t, stats.TotalProducts)
		assert.Zero(t, stats.TotalUsers)
		assert.Empty(t, stats.SalesChart)
	})

	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)

	seedOrder(t, db, "100.00", day1)
	seedOrder(t, db, "50.00", day1.Add(2*time.Hour))
	seedOrder(t, db, "25.00", day2)

	require.NoError(t, db.Create(&models.Product{Name: "P", Price: decimal.RequireFromString("1.00")}).Error)
	require.NoError(t, db.Create(&models.User{Email: "a@example.com", Password: "x"}).Error)

	t.Run("totals reflect committed orders", func(t *testing.T) {
		stats, err := adminController.GetDashboardStats(db)
		require.NoError(t, err)

		assert.True(t, stats.TotalSales.Equal(decimal.RequireFromString("175.00")),
			"totalSales = %s", stats.TotalSales)
		assert.Equal(t, int64(3), stats.TotalOrders)
		assert.Equal(t, int64(1), stats.TotalProducts)
		assert.Equal(t, int64(1), stats.TotalUsers)
	})

	t.Run("chart buckets by day, oldest first", func(t *testing.T) {
		stats, err := adminController.GetDashboardStats(db)
		require.NoError(t, err)

		require.Len(t, stats.SalesChart, 2)
		assert.Equal(t, "10/03", stats.SalesChart[0].Date)
		assert.True(t, stats.SalesChart[0].Sales.Equal(decimal.RequireFromString("150.00")),
			"day one sales = %s", stats.SalesChart[0].Sales)
		assert.Equal(t, "11/03", stats.SalesChart[1].Date)
		assert.True(t, stats.SalesChart[1].Sales.Equal(decimal.RequireFromString("25.00")))
	})
}
