package controller

import (
	"github.com/labstack/echo/v4"

	"scheduler-callback-api/core/controller"
	"scheduler-callback-api/core/errors"
	"scheduler-callback-api/modules/scheduler/dto"
	"scheduler-callback-api/modules/scheduler/service"
)

type ScheduleController struct {
	service *service.ScheduleService
	controller.BaseController
}

func NewScheduleController(service *service.ScheduleService) *ScheduleController {
	return &ScheduleController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// Submit stages a solver payload and opens a pending scheduling round for
// the authenticated user.
func (c *ScheduleController) Submit(ctx echo.Context) error {
	userID, ok := ctx.Get("user_id").(string)
	if !ok || userID == "" {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	req := new(dto.SubmitScheduleRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body", nil)
	}

	result, err := c.service.Submit(ctx.Request().Context(), userID, req)
	if err != nil {
		return c.ErrorResponse(ctx, err)
	}

	return c.SuccessResponse(ctx, result, "Scheduling request submitted")
}
