package main

import (
	"context"
	"fmt"
	"log"

	"push-console/internal/analytics"
	common_api "push-console/internal/common/api"
	"push-console/internal/config"
	"push-console/internal/database"
	"push-console/internal/fcm"
	"push-console/internal/features/auth"
	"push-console/internal/features/automation"
	"push-console/internal/features/device"
	"push-console/internal/features/events"
	"push-console/internal/features/push"
	"push-console/internal/features/scheduler"
	"push-console/internal/features/segments"
	"push-console/internal/logger"
	"push-console/internal/middleware"
	"push-console/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "status": "ok"})
	})

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d route groups\n", len(routes))
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database
			database.NewDatabase,

			// Provider clients
			fcm.NewSender,
			analytics.NewClient,

			// Initialize Repository
			automation.NewAutomationRepository,
			device.NewDeviceRepository,

			// Delivery pipeline
			push.NewGateway,
			automation.NewDispatcher,

			// Initialize Services
			auth.NewAuthService,
			automation.NewAutomationService,
			scheduler.NewSweepService,
			segments.NewSegmentsService,

			// Interface adapters
			func(c *analytics.Client) segments.AudienceLister { return c },

			// Initialize Controllers
			auth.NewAuthController,
			automation.NewAutomationController,
			push.NewPushController,
			segments.NewSegmentsController,
			events.NewEventsController,
			device.NewDeviceController,

			// Initialize API Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(automation.NewAutomationApi),
			AsRoute(push.NewPushApi),
			AsRoute(segments.NewSegmentsApi),
			AsRoute(events.NewEventsApi),
			AsRoute(device.NewDeviceApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			func(cfg *config.Config) {
				utils.SetSecret(cfg.JWTSecret)
			},

			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, sweep scheduler.SweepService) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return sweep.Start(ctx)
					},
					OnStop: func(ctx context.Context) error {
						return sweep.Stop()
					},
				})
			},
		),
	)

	app.Run()
}
