package router

import (
	"github.com/labstack/echo/v4"

	"scheduler-callback-api/modules/optaplan/controller"
)

type OptaPlanRouter struct {
	controller *controller.StagingController
}

func NewOptaPlanRouter(controller *controller.StagingController) *OptaPlanRouter {
	return &OptaPlanRouter{controller: controller}
}

func (r *OptaPlanRouter) Register(e *echo.Group) {
	e.POST("/callbacks/scheduler-admin", r.controller.HandleSolutionCallback)
}
