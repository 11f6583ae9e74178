package main

import (
	"log"

	"go_trustedbot_backend/bootstrap"
	"go_trustedbot_backend/config"
	"go_trustedbot_backend/middleware"
	"go_trustedbot_backend/pkg/logging"
	"go_trustedbot_backend/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}
	logging.Init()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := app.Shutdown(); err != nil {
			logging.Logger.Error("fail Shutdown", "error", err)
		}
	}()

	server := fiber.New()
	server.Use(middleware.Logger())
	server.Use(middleware.CORS())

	routes.RegisterChatRoutes(server, app.Handlers.ChatHandler)
	routes.SetupWebSocketRoutes(server, app.Handlers.WSHandler)

	port := cfg.HttpPort
	if port == "" {
		port = "3000"
	}
	log.Println("Server running on http://localhost:" + port)
	log.Fatal(server.Listen(":" + port))
}
