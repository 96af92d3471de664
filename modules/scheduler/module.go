package scheduler

import (
	"github.com/labstack/echo/v4"

	"scheduler-callback-api/core/cache"
	"scheduler-callback-api/core/config"
	"scheduler-callback-api/core/middleware"
	"scheduler-callback-api/core/storage"
	notifservice "scheduler-callback-api/modules/notification/service"
	"scheduler-callback-api/modules/scheduler/controller"
	"scheduler-callback-api/modules/scheduler/repository"
	"scheduler-callback-api/modules/scheduler/router"
	"scheduler-callback-api/modules/scheduler/service"
)

func Init(e *echo.Group, c cache.Cache, objects storage.ObjectStore, notifications *notifservice.NotificationService, mw *middleware.Middleware) {
	cfg := config.Get()

	store := repository.NewPendingRequestStore(c)
	notifier := service.NewChatNotifier(cfg.Chat.WebhookURL)

	callbackSvc := service.NewCallbackService(store, notifier, notifications)
	scheduleSvc := service.NewScheduleService(store, objects)

	callbackCtrl := controller.NewCallbackController(callbackSvc)
	scheduleCtrl := controller.NewScheduleController(scheduleSvc)

	router.NewSchedulerRouter(callbackCtrl, scheduleCtrl).Register(e, mw)
}
