package routes

import (
	"context"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	database "hrms_backend/internals/databases"
	helper "hrms_backend/internals/helpers"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("HRMS Lite API is running")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := pingDB(c, db); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		uptime := time.Since(startTime).Seconds()

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(uptime),
			"environment":    os.Getenv("APP_ENV"),
		})
	})

	app.Get("/db-check", func(c *fiber.Ctx) error {
		if err := pingDB(c, db); err != nil {
			return helper.JsonError(c, fiber.StatusServiceUnavailable, "Database connection failed")
		}
		return c.JSON(fiber.Map{"status": "Database connected successfully"})
	})
}

func pingDB(c *fiber.Ctx, db *gorm.DB) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()
	return database.Ping(ctx, db)
}
