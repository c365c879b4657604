package routes

import (
	"salonbook-backend/config"
	"salonbook-backend/controllers"
	"salonbook-backend/libs"
	"salonbook-backend/models"
	"salonbook-backend/stores"
	"salonbook-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires the two role surfaces. Admin and customer groups are
// disjoint; each is guarded by its own role check and shares nothing beyond
// the stores.
func SetupRouter(users stores.UserStore, catalog stores.CatalogStore, bookings stores.BookingStore, blobs libs.BlobStore) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Authorization", "Content-Type"}
	r.Use(cors.New(corsConfig))

	r.Use(config.PerformanceLogger())

	authCtrl := controllers.NewAuthController(users)
	serviceCtrl := controllers.NewServiceController(catalog, users, blobs)
	bookingCtrl := controllers.NewBookingController(bookings)
	profileCtrl := controllers.NewProfileController(users)

	auth := r.Group("/auth")
	{
		auth.POST("/register", authCtrl.Register)
		auth.POST("/login", authCtrl.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", authCtrl.Me)
		auth.GET("/profile", profileCtrl.GetProfile)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Admin surface: catalog management and the customer booking list
		admin := api.Group("/admin", utils.RequireRole(string(models.RoleAdmin)))
		{
			services := admin.Group("/services")
			{
				services.GET("", serviceCtrl.GetServices)
				services.POST("", serviceCtrl.CreateService)
				services.GET("/:id", serviceCtrl.GetService)
				services.PUT("/:id", serviceCtrl.UpdateService)
				services.DELETE("/:id", serviceCtrl.DeleteService)

				// Legacy name-keyed surface, broadcast semantics
				services.PUT("/by-name/:name", serviceCtrl.UpdateServiceByName)
				services.DELETE("/by-name/:name", serviceCtrl.DeleteServiceByName)
			}

			admin.GET("/bookings", bookingCtrl.GetBookings)
		}

		// Customer surface: catalog browsing and own booking flow
		customer := api.Group("/customer", utils.RequireRole(string(models.RoleCustomer)))
		{
			customer.GET("/services", serviceCtrl.GetServices)
			customer.GET("/services/:id", serviceCtrl.GetService)

			customerBookings := customer.Group("/bookings")
			{
				customerBookings.GET("", bookingCtrl.GetBookings)
				customerBookings.POST("", bookingCtrl.CreateBooking)
				customerBookings.DELETE("/:id", bookingCtrl.DeleteBooking)
				customerBookings.GET("/stream", bookingCtrl.StreamBookings)
			}
		}
	}

	return r
}
