package middlewares

import (
	"time"

	"github.com/guipadovan/library-manager/internals/configs"
	"github.com/guipadovan/library-manager/internals/middlewares/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
)

// SetupMiddlewares registers the global chain, outermost first.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestID(5 * time.Second))
	app.Use(logger.LoggerMiddleware(configs.AppTimezone))
	app.Use(CorsMiddleware(configs.CORSOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter(100, time.Minute))
}
