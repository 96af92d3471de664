package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"scheduler-callback-api/core/logger"
	"scheduler-callback-api/modules/optaplan/dto"
	"scheduler-callback-api/modules/optaplan/service"
)

// StagingController receives the calendar-side solver callback and stages
// the merged solution for the downstream calendar writer. Like the scheduler
// callback, it answers in the solver's flat wire format.
type StagingController struct {
	service *service.StagingService
}

func NewStagingController(service *service.StagingService) *StagingController {
	return &StagingController{service: service}
}

func (c *StagingController) HandleSolutionCallback(ctx echo.Context) error {
	solution := new(dto.OptaPlanSolution)
	if err := ctx.Bind(solution); err != nil {
		return ctx.JSON(http.StatusBadRequest, dto.StagingAck{Message: "invalid request body"})
	}

	result, appErr := c.service.ProcessSolution(ctx.Request().Context(), solution)
	if appErr != nil {
		logger.Error("StagingController:HandleSolutionCallback:Error:", appErr)
		return ctx.JSON(http.StatusBadRequest, dto.StagingAck{Message: appErr.Message})
	}

	if result == service.StagingRejectedScore {
		return ctx.JSON(http.StatusOK, dto.StagingAck{
			Message: "Acknowledged scheduler callback. Negative hard score, solution not processed.",
		})
	}

	return ctx.JSON(http.StatusAccepted, dto.StagingAck{Message: "success"})
}
