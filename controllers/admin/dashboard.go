package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AmrIbrahim41/smart-shop0/apperrors"
	"github.com/AmrIbrahim41/smart-shop0/models"
)

// recentOrdersWindow bounds the sales chart to the latest orders.
const recentOrdersWindow = 10

type SalesPoint struct {
	Date  string          `json:"date"`
	Sales decimal.Decimal `json:"sales"`
}

type DashboardStats struct {
	TotalSales    decimal.Decimal `json:"totalSales"`
	TotalOrders   int64           `json:"totalOrders"`
	TotalProducts int64           `json:"totalProducts"`
	TotalUsers    int64           `json:"totalUsers"`
	SalesChart    []SalesPoint    `json:"salesChart"`
}

// GetDashboardStats computes the rollups on demand. Every number reflects
// committed checkouts only; a checkout in flight is either fully visible or
// not at all.
func GetDashboardStats(db *gorm.DB) (*DashboardStats, error) {
	stats := &DashboardStats{TotalSales: decimal.Zero, SalesChart: []SalesPoint{}}

	var totalSales decimal.NullDecimal
	if err := db.Model(&models.Order{}).
		Select("SUM(total_price)").Scan(&totalSales).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindPersistence, "failed to compute dashboard stats", err)
	}
	if totalSales.Valid {
		stats.TotalSales = totalSales.Decimal
	}

	if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindPersistence, "failed to compute dashboard stats", err)
	}
	if err := db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindPersistence, "failed to compute dashboard stats", err)
	}
	if err := db.Model(&models.User{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindPersistence, "failed to compute dashboard stats", err)
	}

	var recent []models.Order
	if err := db.Order("created_at DESC").Limit(recentOrdersWindow).Find(&recent).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.KindPersistence, "failed to compute dashboard stats", err)
	}

	// Bucket the recent orders by calendar day, oldest first for charting.
	for i := len(recent) - 1; i >= 0; i-- {
		order := recent[i]
		day := order.CreatedAt.Format("02/01")
		if n := len(stats.SalesChart); n > 0 && stats.SalesChart[n-1].Date == day {
			stats.SalesChart[n-1].Sales = stats.SalesChart[n-1].Sales.Add(order.TotalPrice)
			continue
		}
		stats.SalesChart = append(stats.SalesChart, SalesPoint{Date: day, Sales: order.TotalPrice})
	}

	return stats, nil
}

func GetDashboardStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := GetDashboardStats(db)
		if err != nil {
			apperrors.Respond(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
