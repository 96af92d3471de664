package notification

import (
	"github.com/labstack/echo/v4"

	"scheduler-callback-api/core/database"
	"scheduler-callback-api/core/middleware"
	"scheduler-callback-api/modules/notification/controller"
	"scheduler-callback-api/modules/notification/repository"
	"scheduler-callback-api/modules/notification/router"
	"scheduler-callback-api/modules/notification/service"
)

func Init(e *echo.Group, db database.Database, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(e, mw)

	return svc
}
