package main

import (
	"fmt"
	"log"

	"salonbook-backend/config"
	"salonbook-backend/libs"
	"salonbook-backend/models"
	"salonbook-backend/routes"
	"salonbook-backend/services"
	"salonbook-backend/stores"

	"github.com/gin-gonic/gin"
)

func init() {
	config.LoadConfig()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Service{},
		&models.Booking{},
		&models.ReminderLog{},
	)
}

func main() {
	users := stores.NewGormUserStore(config.DB)
	catalog := stores.NewGormCatalogStore(config.DB)
	bookings := stores.NewGormBookingStore(config.DB)

	var blobs libs.BlobStore
	if cld, err := libs.NewCloudinaryBlobStore(); err != nil {
		log.Printf("Cloudinary not configured, image uploads disabled: %v", err)
	} else {
		blobs = cld
	}

	reminders := services.NewReminderService(config.DB, bookings)
	reminders.StartScheduler()

	r := routes.SetupRouter(users, catalog, bookings, blobs)
	printRoutes(r)
	r.Run(":" + config.AppConfig.Port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
