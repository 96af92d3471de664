package optaplan

import (
	"github.com/labstack/echo/v4"

	"scheduler-callback-api/core/queue"
	"scheduler-callback-api/core/storage"
	"scheduler-callback-api/modules/optaplan/controller"
	"scheduler-callback-api/modules/optaplan/router"
	"scheduler-callback-api/modules/optaplan/service"
)

func Init(e *echo.Group, objects storage.ObjectStore, q queue.TaskQueue) {
	svc := service.NewStagingService(objects, q)
	ctrl := controller.NewStagingController(svc)

	router.NewOptaPlanRouter(ctrl).Register(e)
}
