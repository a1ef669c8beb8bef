package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"tpo-portal-backend/config"
	apiv1 "tpo-portal-backend/controllers/v1"
	"tpo-portal-backend/db"
	_ "tpo-portal-backend/docs"
	"tpo-portal-backend/fiberlog"
	"tpo-portal-backend/initializers"
	"tpo-portal-backend/lib/ratelimit"
	"tpo-portal-backend/lib/ws"
	"tpo-portal-backend/middleware"
	apimodels "tpo-portal-backend/models/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	initializers.InitAllServices(ctx)

	app := fiber.New(fiber.Config{
		BodyLimit: config.Conf.App.BodyLimit,
	})
	app.Use(fiberRecover.New())
	app.Use(requestid.New())

	swaggerCfg := swagger.Config{
		Path:     "/swagger",
		FilePath: "./docs/swagger.json",
	}
	app.Use(swagger.New(swaggerCfg))
	app.Get("/health", func(ctx *fiber.Ctx) error {
		if err := db.PingDB(); err != nil {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("database is not reachable"))
		}
		return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
	})

	//api
	apiV1 := fiber.New()
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	if config.Conf.App.ErrNotifyAddr != "" {
		apiV1.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyAddr))
	}
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PATCH, DELETE, PUT",
	}))
	apiV1.Use(middleware.WithBodyLimit(int64(config.Conf.App.BodyLimit)))
	apiV1.Use(middleware.AuthorizationRequired())
	apiV1.Use(middleware.RateLimit(ratelimit.Instance, config.Conf.RateLimit.Requests, initializers.RateLimitWindow()))
	apiV1.Use(middleware.RbacMiddleware())

	apiv1.InitAccountApiRouters(apiV1)
	apiv1.InitJobPostingApiRouters(apiV1)
	apiv1.InitStatsApiRouters(apiV1)

	//coordinator
	coordinator := fiber.New()
	apiV1.Mount("/coordinator", coordinator)
	apiv1.InitProfileVerificationApiRouters(coordinator)
	apiv1.InitApplicationReviewApiRouters(coordinator)

	//admin
	admin := fiber.New()
	apiV1.Mount("/admin", admin)
	admin.Use(middleware.AdminRoleRequired())
	apiv1.InitApplicationAdminApiRouters(admin)

	//notifications
	wsApp := fiber.New()
	apiV1.Mount("/ws", wsApp)
	ws.InitWs(wsApp)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-c:
		case <-ctx.Done():
			return
		}
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		cancel()
		wg.Wait()
		return err
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
	return nil
}
