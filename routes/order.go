package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/AmrIbrahim41/smart-shop0/controllers/order"
	"github.com/AmrIbrahim41/smart-shop0/middleware"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Create a new order from the client's cart snapshot
		orders.POST("", orderControllers.PlaceOrderHandler(db))

		// The requester's own orders
		orders.GET("/mine", orderControllers.GetMyOrdersHandler(db))

		// Order lines containing the requesting vendor's products
		orders.GET("/vendor", orderControllers.GetVendorOrdersHandler(db))

		// Single order: owner, admin, or vendor with an item in it
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))

		// Payment confirmation arrives from the payment provider callback.
		// Any authenticated caller may confirm any order: the callback
		// carries no end-user identity, and marking paid is idempotent.
		orders.PUT("/:orderID/pay", orderControllers.MarkPaidHandler(db))
	}

	adminOrders := r.Group("/orders")
	adminOrders.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// Fetch all orders (admin)
		adminOrders.GET("", orderControllers.GetAllOrdersHandler(db))

		// websocket endpoint for real-time order updates
		adminOrders.GET("/ws", orderControllers.OrderFeedHandler)

		// Update order status (e.g. shipped, cancelled)
		adminOrders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))

		// Mark an order delivered
		adminOrders.PUT("/:orderID/deliver", orderControllers.MarkDeliveredHandler(db))

		// Delete an order
		adminOrders.DELETE("/:orderID", orderControllers.DeleteOrderHandler(db))
	}
}
