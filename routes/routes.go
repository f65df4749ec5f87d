package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"quotify/handlers"
	"quotify/middleware"
	"quotify/utils"
)

// RegisterCategoryRoutes registers category and subcategory endpoints.
func RegisterCategoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	categories := r.Group("/api/categories")
	{
		categories.POST("", hb.Catalog.CreateCategoryHandler)
		categories.GET("", hb.Catalog.ListCategoriesHandler)
		categories.GET("/:id", hb.Catalog.GetCategoryHandler)
		categories.PUT("/:id", hb.Catalog.UpdateCategoryHandler)
		categories.DELETE("/:id", hb.Catalog.DeleteCategoryHandler)
		categories.PUT("/:id/restore", hb.Catalog.RestoreCategoryHandler)
	}

	subcategories := r.Group("/api/subcategories")
	{
		subcategories.POST("", hb.Catalog.CreateSubcategoryHandler)
		subcategories.GET("", hb.Catalog.ListSubcategoriesHandler)
		subcategories.GET("/:id", hb.Catalog.GetSubcategoryHandler)
		subcategories.PUT("/:id", hb.Catalog.UpdateSubcategoryHandler)
		subcategories.DELETE("/:id", hb.Catalog.DeleteSubcategoryHandler)
		subcategories.PUT("/:id/restore", hb.Catalog.RestoreSubcategoryHandler)
		subcategories.GET("/:id/tax", hb.Catalog.GetSubcategoryTaxHandler)
	}
}

// RegisterItemRoutes registers item endpoints, including slot setup,
// effective tax and per-date availability.
func RegisterItemRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	items := r.Group("/api/items")
	{
		items.POST("", hb.Items.CreateItemHandler)
		items.GET("", hb.Items.ListItemsHandler)
		items.GET("/:id", hb.Items.GetItemHandler)
		items.PUT("/:id", hb.Items.UpdateItemHandler)
		items.DELETE("/:id", hb.Items.DeleteItemHandler)
		items.PUT("/:id/restore", hb.Items.RestoreItemHandler)
		items.PUT("/:id/slots", hb.Items.SetItemSlotsHandler)
		items.GET("/:id/tax", hb.Items.GetItemTaxHandler)
		items.GET("/:id/availability", hb.Booking.AvailabilityHandler)
	}
}

// RegisterAddonRoutes registers addon group endpoints.
func RegisterAddonRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	groups := r.Group("/api/addon-groups")
	{
		groups.POST("", hb.Addons.CreateAddonGroupHandler)
		groups.GET("", hb.Addons.ListAddonGroupsHandler)
		groups.GET("/:id", hb.Addons.GetAddonGroupHandler)
		groups.PUT("/:id", hb.Addons.UpdateAddonGroupHandler)
		groups.DELETE("/:id", hb.Addons.DeleteAddonGroupHandler)
	}
}

// RegisterQuoteRoutes registers the price computation endpoint.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/quotes", hb.Quotes.QuoteHandler)
}

// RegisterBookingRoutes sets up the reservation lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookings := r.Group("/api/bookings")
	{
		bookings.POST("", hb.Booking.CreateBookingHandler)
		bookings.GET("", hb.Booking.ListBookingsHandler)
		bookings.GET("/:id", hb.Booking.GetBookingHandler)
		bookings.PUT("/:id", hb.Booking.UpdateBookingHandler)
		bookings.PUT("/:id/confirm", hb.Booking.ConfirmBookingHandler)
		bookings.PUT("/:id/cancel", hb.Booking.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterCategoryRoutes(r, hb)
	RegisterItemRoutes(r, hb)
	RegisterAddonRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
}
