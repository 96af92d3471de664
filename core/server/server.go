package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"scheduler-callback-api/core/cache"
	"scheduler-callback-api/core/config"
	"scheduler-callback-api/core/constants"
	"scheduler-callback-api/core/database"
	"scheduler-callback-api/core/logger"
	"scheduler-callback-api/core/middleware"
	"scheduler-callback-api/core/queue"
	"scheduler-callback-api/core/storage"
	"scheduler-callback-api/modules/notification"
	"scheduler-callback-api/modules/optaplan"
	"scheduler-callback-api/modules/scheduler"
)

// Run loads configuration, wires infrastructure and modules, and serves
// until the listener fails.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}

	redisCache := cache.NewRedisCache(cfg.Redis)
	if err := redisCache.Ping(context.Background()); err != nil {
		logger.Warn("redis not reachable at startup", "error", err.Error())
	}

	objects := storage.NewS3Store(cfg.S3)

	taskQueue := queue.NewAsynqQueue(cfg.Redis, constants.SolutionWorkerQueue)
	defer taskQueue.Close()

	mw := middleware.NewMiddleware()

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1")

	notificationSvc := notification.Init(api, db, mw)
	scheduler.Init(api, redisCache, objects, notificationSvc, mw)
	optaplan.Init(api, objects, taskQueue)

	logger.Info("server starting", "port", cfg.Server.Port)
	return e.Start(":" + cfg.Server.Port)
}
