package config

import (
	"os"
	"time"

	"remat-backend/internal/api/handlers"
	"remat-backend/internal/api/routes"
	"remat-backend/internal/middleware"
	"remat-backend/internal/utils"
	"remat-backend/internal/utils/storage"
	"remat-backend/pkg/analytics"
	"remat-backend/pkg/bin"
	"remat-backend/pkg/geocode"
	"remat-backend/pkg/jwt"
	"remat-backend/pkg/pickup"
	"remat-backend/pkg/route"
	"remat-backend/pkg/user"
	"remat-backend/pkg/waste"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	binRepository := bin.NewBinRepository(db)
	pickupRepository := pickup.NewPickupRepository(db)
	wasteRepository := waste.NewWasteRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	binService := bin.NewBinService(binRepository)
	wasteService := waste.NewWasteService(wasteRepository, binRepository)
	pickupService := pickup.NewPickupService(pickupRepository, s3)
	routeService := route.NewRouteService()
	geocodeService := geocode.NewGeocodeService()
	analyticsService := analytics.NewAnalyticsService(
		binRepository,
		pickupRepository,
		wasteRepository,
		userRepository,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	binHandler := handlers.NewBinHandler(binService, wasteService, validator)
	pickupHandler := handlers.NewPickupHandler(pickupService, validator)
	wasteHandler := handlers.NewWasteHandler(wasteService, validator)
	routeHandler := handlers.NewRouteHandler(routeService, validator)
	geocodeHandler := handlers.NewGeocodeHandler(geocodeService)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService)

	// routes
	routesConfig := routes.Config{
		App:              app,
		UserHandler:      userHandler,
		BinHandler:       binHandler,
		PickupHandler:    pickupHandler,
		WasteHandler:     wasteHandler,
		RouteHandler:     routeHandler,
		GeocodeHandler:   geocodeHandler,
		AnalyticsHandler: analyticsHandler,
		Middleware:       middlewares,
		JWTService:       jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
