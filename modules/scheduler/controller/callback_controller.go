package controller

import (
	"crypto/subtle"
	"encoding/json"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"scheduler-callback-api/core/config"
	"scheduler-callback-api/core/constants"
	"scheduler-callback-api/core/logger"
	"scheduler-callback-api/modules/scheduler/dto"
	"scheduler-callback-api/modules/scheduler/service"
)

// CallbackController receives asynchronous solution callbacks from the
// solver. It speaks the solver's wire contract directly, so responses are
// flat {"message": ...} / {"error": ...} bodies rather than the standard
// response envelope.
type CallbackController struct {
	service *service.CallbackService
}

func NewCallbackController(service *service.CallbackService) *CallbackController {
	return &CallbackController{service: service}
}

// HandleSchedulerCallback authenticates and processes a finished solution.
// Gate order matters: security configuration, then token presence, then
// token match, then payload shape. A valid callback with no pending entry is
// acknowledged with 200 so the solver does not retry.
func (c *CallbackController) HandleSchedulerCallback(ctx echo.Context) error {
	cfg, ok := config.GetSafe()
	if !ok || cfg.Callback.SecretToken == "" {
		logger.Error("CallbackController:HandleSchedulerCallback:SecretNotConfigured")
		return ctx.JSON(http.StatusInternalServerError, dto.CallbackError{
			Error: "Internal Server Error: Callback security not configured.",
		})
	}

	token := ctx.Request().Header.Get(constants.CallbackTokenHeader)
	if token == "" {
		return ctx.JSON(http.StatusUnauthorized, dto.CallbackError{
			Error: "Unauthorized: Missing callback token.",
		})
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Callback.SecretToken)) != 1 {
		logger.Warn("CallbackController:HandleSchedulerCallback:InvalidToken")
		return ctx.JSON(http.StatusForbidden, dto.CallbackError{
			Error: "Forbidden: Invalid callback token.",
		})
	}

	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil || len(body) == 0 {
		return ctx.JSON(http.StatusBadRequest, dto.CallbackError{
			Error: "Bad Request: Empty payload.",
		})
	}

	var solution dto.TimeTableSolutionDto
	if err := json.Unmarshal(body, &solution); err != nil {
		return ctx.JSON(http.StatusBadRequest, dto.CallbackError{
			Error: "Bad Request: Invalid JSON payload.",
		})
	}

	// eventPartList must be present; an empty list is legitimate and means
	// the round finished with nothing to report per item.
	if solution.FileKey == "" || solution.HostID == "" || solution.EventPartList == nil {
		return ctx.JSON(http.StatusBadRequest, dto.CallbackError{
			Error: "Bad Request: Missing fileKey, hostId, or eventPartList.",
		})
	}

	matched, procErr := c.service.ProcessSolution(ctx.Request().Context(), &solution)
	if procErr != nil {
		logger.Error("CallbackController:HandleSchedulerCallback:ProcessError:", procErr)
		return ctx.JSON(http.StatusInternalServerError, dto.CallbackError{
			Error: "Callback received, but an internal error occurred during solution processing.",
		})
	}
	if !matched {
		return ctx.JSON(http.StatusOK, dto.CallbackAck{
			Message: "Callback received, but no matching pending request found or already processed.",
		})
	}

	return ctx.JSON(http.StatusOK, dto.CallbackAck{
		Message: "Callback processed successfully. User notification attempted.",
	})
}
