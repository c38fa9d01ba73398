package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-store-api/internal/handler"
	"go-store-api/internal/middleware"
	"go-store-api/internal/model"
	"go-store-api/internal/repository"
	"go-store-api/internal/service"
	"go-store-api/internal/ws"
	"go-store-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.Product{}, &model.Stock{}, &model.Order{}, &model.User{})

	// 3. Behavior flags.
	// STOCK_ATOMIC_UPDATES=false reproduces the legacy two-step quantity
	// writes (documented lost-update window); default is the atomic
	// conditional update. LEGACY_ERROR_STATUS=true collapses every service
	// failure to HTTP 500 like the original API did.
	atomicUpdates := os.Getenv("STOCK_ATOMIC_UPDATES") != "false"
	legacyErrors := os.Getenv("LEGACY_ERROR_STATUS") == "true"
	if !atomicUpdates {
		log.Println("Warning: running with non-atomic stock updates (compatibility mode)")
	}

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	productRepo := repository.NewProductRepo(db)
	stockRepo := repository.NewStockRepo(db)
	orderRepo := repository.NewOrderRepo(db)
	userRepo := repository.NewUserRepo(db)

	productService := service.NewProductService(productRepo, stockRepo)
	stockService := service.NewStockService(stockRepo, productRepo, wsHub, service.StockConfig{AtomicUpdates: atomicUpdates})
	orderService := service.NewOrderService(orderRepo)
	authService := service.NewAuthService(userRepo)
	reportService := service.NewReportService(stockRepo)

	productHandler := handler.NewProductHandler(productService, legacyErrors)
	stockHandler := handler.NewStockHandler(stockService, legacyErrors)
	orderHandler := handler.NewOrderHandler(orderService, legacyErrors)
	authHandler := handler.NewAuthHandler(authService, legacyErrors)
	reportHandler := handler.NewReportHandler(reportService, legacyErrors)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Store API v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)

	// Catalog reads are public
	api.Get("/products", productHandler.List)
	api.Post("/products/search", productHandler.GetByName)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Product Routes
	protected.Post("/products", productHandler.Create)
	protected.Patch("/products/:id", productHandler.UpdatePartial)
	protected.Put("/products/:id", productHandler.UpdateFull)
	protected.Delete("/products/:id", productHandler.Delete)

	// Stock Routes
	protected.Post("/stock", stockHandler.Create)
	protected.Get("/stock", stockHandler.List)
	protected.Get("/stock/:productId", stockHandler.GetByProduct)
	protected.Patch("/stock/:productId", stockHandler.Update)
	protected.Post("/stock/:productId/add", stockHandler.AddQuantity)
	protected.Post("/stock/:productId/remove", stockHandler.RemoveQuantity)
	protected.Delete("/stock/:productId", stockHandler.Delete)

	// Order Routes
	protected.Post("/orders", orderHandler.Create)
	protected.Get("/orders", orderHandler.ListMine)
	protected.Get("/orders/all", middleware.RequireAdmin(), orderHandler.ListAll)
	protected.Get("/orders/:id", orderHandler.GetByID)
	protected.Patch("/orders/:id/status", orderHandler.UpdateStatus)

	// Report Routes
	protected.Get("/reports/stock", reportHandler.StockReport)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
