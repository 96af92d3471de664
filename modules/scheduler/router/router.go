package router

import (
	"github.com/labstack/echo/v4"

	"scheduler-callback-api/core/middleware"
	"scheduler-callback-api/modules/scheduler/controller"
)

type SchedulerRouter struct {
	callback *controller.CallbackController
	schedule *controller.ScheduleController
}

func NewSchedulerRouter(callback *controller.CallbackController, schedule *controller.ScheduleController) *SchedulerRouter {
	return &SchedulerRouter{callback: callback, schedule: schedule}
}

func (r *SchedulerRouter) Register(e *echo.Group, mw *middleware.Middleware) {
	// Machine endpoint: authenticated by the shared callback token, not JWT.
	e.POST("/callbacks/scheduler", r.callback.HandleSchedulerCallback)

	private := e.Group("/private/schedule-requests", mw.AuthMiddleware())
	private.POST("", r.schedule.Submit)
}
