package routes

import (
	"remat-backend/internal/api/handlers"
	"remat-backend/internal/middleware"
	"remat-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App              *fiber.App
	UserHandler      handlers.UserHandler
	BinHandler       handlers.BinHandler
	PickupHandler    handlers.PickupHandler
	WasteHandler     handlers.WasteHandler
	RouteHandler     handlers.RouteHandler
	GeocodeHandler   handlers.GeocodeHandler
	AnalyticsHandler handlers.AnalyticsHandler
	Middleware       middleware.Middleware
	JWTService       jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Bins()
	c.BinPanel()
	c.Pickups()
	c.Waste()
	c.Geo()
	c.Admin()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Get("/leaderboard", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetLeaderboard)
		user.Get("/transactions", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetTransactions)
	}
}

func (c *Config) Bins() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)
	admin := c.Middleware.OnlyAdmin()

	bins := c.App.Group("/api/bins")
	{
		bins.Get("/nearby", auth, c.BinHandler.GetNearbyBins)
		bins.Get("/resolve-qr", auth, c.BinHandler.ResolveQR)
		bins.Get("", auth, c.BinHandler.GetBins)
		bins.Get("/:id", auth, c.BinHandler.GetBin)

		bins.Post("", auth, admin, c.BinHandler.CreateBin)
		bins.Put("/:id", auth, admin, c.BinHandler.UpdateBin)
		bins.Delete("/:id", auth, admin, c.BinHandler.DeleteBin)
	}
}

// BinPanel serves the screen a user lands on after scanning a bin's QR code.
func (c *Config) BinPanel() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	panel := c.App.Group("/bin/panel")
	{
		panel.Get("/:id", c.BinHandler.GetBinPanel)
		panel.Post("/:id/confirm", auth, c.BinHandler.ConfirmDeposit)
	}
}

func (c *Config) Pickups() {
	pickups := c.App.Group("/user/pickup-requests", c.Middleware.AuthMiddleware(c.JWTService))
	{
		pickups.Post("", c.PickupHandler.CreatePickup)
		pickups.Get("", c.PickupHandler.GetUserPickups)
		pickups.Get("/:id", c.PickupHandler.GetUserPickupDetails)
		pickups.Patch("/:id/location", c.PickupHandler.UpdateLocation)
		pickups.Delete("/:id", c.PickupHandler.DeletePickup)
	}
}

func (c *Config) Waste() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Post("/user/detect-waste", auth, c.WasteHandler.DetectWaste)
	c.App.Post("/user/submit-waste", auth, c.WasteHandler.SubmitWaste)
}

func (c *Config) Geo() {
	auth := c.Middleware.AuthMiddleware(c.JWTService)

	c.App.Post("/api/route/optimize", auth, c.RouteHandler.OptimizeRoute)
	c.App.Get("/api/geocode/search", c.GeocodeHandler.Search)
	c.App.Get("/api/geocode/reverse", c.GeocodeHandler.Reverse)
}

func (c *Config) Admin() {
	admin := c.App.Group(
		"/admin",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.OnlyAdmin(),
	)
	{
		admin.Get("/pickup-requests", c.PickupHandler.GetAllPickups)
		admin.Get("/pickup-requests/:id", c.PickupHandler.GetPickupDetails)
		admin.Patch("/pickup-requests/:id/accept", c.PickupHandler.AcceptPickup)
		admin.Patch("/pickup-requests/:id/reject", c.PickupHandler.RejectPickup)
		admin.Get("/analytics", c.AnalyticsHandler.GetAnalytics)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
