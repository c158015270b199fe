package api

import (
	"log"
	stdhttp "net/http"

	intconfig "ridebook/internal/config"
	h "ridebook/internal/http/handlers"
	"ridebook/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.Configure(env)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(stdhttp.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	adminAuth := middleware.AdminAuth(env)
	metadataAuth := middleware.MetadataAuth(env)

	// Flat function-style paths kept for the deployed frontend.
	r.POST("/admin-login", h.AdminLogin)
	r.POST("/create-booking", h.CreateBooking)
	r.GET("/get-booking", h.GetBookingByCode)
	r.GET("/get-bookings", adminAuth, h.GetBookings)
	r.GET("/get-customer-bookings", h.GetCustomerBookings)
	r.POST("/update-booking", adminAuth, h.UpdateBooking)
	r.GET("/get-booking-ticket", adminAuth, h.GetBookingTicket)
	r.POST("/create-vehicle", adminAuth, h.CreateVehicle)
	r.POST("/update-vehicle", adminAuth, h.UpdateVehicle)
	r.PUT("/update-vehicle", adminAuth, h.UpdateVehicle)
	r.POST("/delete-vehicle", adminAuth, h.DeleteVehicle)
	r.GET("/get-vehicles", h.GetVehicles)
	r.POST("/create-feedback", h.CreateFeedback)
	r.POST("/update-profile", h.UpdateProfile)
	r.GET("/get-settings", h.GetSettings)
	r.POST("/update-settings", adminAuth, h.UpdateSettings)
	r.POST("/validate-coupon", h.ValidateCoupon)

	r.GET("/metadata-crud", metadataAuth, h.MetadataGet)
	r.POST("/metadata-crud", metadataAuth, h.MetadataUpsert)
	r.PUT("/metadata-crud", metadataAuth, h.MetadataUpsert)
	r.DELETE("/metadata-crud", metadataAuth, h.MetadataDelete)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.AdminLogin)

		// Public booking flow
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:code", h.GetBookingByCode)
		api.GET("/customers/:id/bookings", h.GetCustomerBookings)
		api.PUT("/customers/:id", h.UpdateProfile)

		// Public fleet + site content
		api.GET("/vehicles", h.GetVehicles)
		api.GET("/settings", h.GetSettings)
		api.POST("/feedback", h.CreateFeedback)
		api.POST("/coupons/validate", h.ValidateCoupon)

		// Admin back-office
		admin := api.Group("/admin", adminAuth)
		admin.GET("/bookings", h.GetBookings)
		admin.POST("/bookings/status", h.UpdateBooking)
		admin.GET("/bookings/:code/ticket", h.GetBookingTicket)
		admin.GET("/vehicles", h.GetAllVehicles)
		admin.POST("/vehicles", h.CreateVehicle)
		admin.PUT("/vehicles/:id", h.UpdateVehicle)
		admin.DELETE("/vehicles/:id", h.DeleteVehicle)
		admin.GET("/feedback", h.GetFeedback)
		admin.PUT("/settings", h.UpdateSettings)
	}

	return r
}
