// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/guipadovan/library-manager/internals/configs"
	bookController "github.com/guipadovan/library-manager/internals/features/library/books/controller"
	helper "github.com/guipadovan/library-manager/internals/helpers"
	"github.com/guipadovan/library-manager/internals/middlewares"
	"github.com/guipadovan/library-manager/internals/middlewares/auth"
	routeDetails "github.com/guipadovan/library-manager/internals/route/details"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

// NewApp builds the fiber app with the JSON codec, error handler and global middlewares.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "librarymanager",
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		DisableStartupMessage: true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})
	middlewares.SetupMiddlewares(app)
	return app
}

func SetupRoutes(app *fiber.App, db *gorm.DB, searcher bookController.BookSearcher) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== GROUPS =====================
	v1 := app.Group("/v1")

	log.Println("[INFO] Setting up ADMIN group (Bearer JWT, role=admin)...")
	admin := v1.Group("/admin", auth.AdminOnly(configs.JWTSecret))

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Library routes...")
	routeDetails.LibraryRoutes(v1, db, searcher)
	routeDetails.LibraryAdminRoutes(admin, db)
}
