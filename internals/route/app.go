package routes

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hrms_backend/internals/configs"
	helper "hrms_backend/internals/helpers"
	"hrms_backend/internals/middlewares"
)

// NewApp builds the Fiber app with the global middleware chain and all routes.
func NewApp(db *gorm.DB, cfg configs.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "HRMS Lite API",
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.FromFiberError,
	})

	middlewares.SetupMiddlewares(app, cfg)
	SetupRoutes(app, db)
	return app
}
