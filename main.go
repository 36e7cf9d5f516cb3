package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"etickets/database"
	"etickets/helper"
	"etickets/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // poster uploads
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173",
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartMovieStatusScheduler()
	helper.StartCartSweeper()

	router.SetupRoutes(app)

	// Stop the background jobs and drain the server on SIGINT/SIGTERM.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		helper.StopMovieStatusScheduler()
		helper.StopCartSweeper()
		if err := app.Shutdown(); err != nil {
			log.Printf("server shutdown: %v", err)
		}
	}()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8002"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
