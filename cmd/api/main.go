package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"vehiclerental/internal/config"
	"vehiclerental/internal/database"
	"vehiclerental/internal/middleware"
	"vehiclerental/internal/modules/auth"
	"vehiclerental/internal/modules/booking"
	"vehiclerental/internal/modules/user"
	"vehiclerental/internal/modules/vehicle"
	jwtsvc "vehiclerental/internal/pkg/jwt"
	"vehiclerental/internal/pkg/response"
	"vehiclerental/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	vehicleRepo := repository.NewVehicleRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.TokenTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	userHandler := user.NewHandler(user.NewService(userRepo, bookingRepo))
	vehicleHandler := vehicle.NewHandler(vehicle.NewService(vehicleRepo, bookingRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, vehicleRepo))

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Vehicle Rental System API is running...")
	})

	authed := middleware.JWTAuth(j)
	adminOnly := middleware.AdminOnly()

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)

		users := v1.Group("/users")
		{
			users.GET("", authed, adminOnly, userHandler.GetAll)
			users.PUT("/:userId", authed, userHandler.Update)
			users.DELETE("/:userId", authed, adminOnly, userHandler.Delete)
		}

		vehicles := v1.Group("/vehicles")
		{
			vehicles.POST("", authed, adminOnly, vehicleHandler.Create)
			vehicles.GET("", vehicleHandler.GetAll)
			vehicles.GET("/:vehicleId", vehicleHandler.GetByID)
			vehicles.PUT("/:vehicleId", authed, adminOnly, vehicleHandler.Update)
			vehicles.DELETE("/:vehicleId", authed, adminOnly, vehicleHandler.Delete)
		}

		bookings := v1.Group("/bookings")
		bookings.Use(authed)
		{
			bookings.POST("", bookingHandler.Create)
			bookings.GET("", bookingHandler.List)
			bookings.PUT("/:bookingId/cancel", bookingHandler.Cancel)
			bookings.PUT("/:bookingId/return", adminOnly, bookingHandler.Return)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found")
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
