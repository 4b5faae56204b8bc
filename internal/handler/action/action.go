package action

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/dwarvesf/lending-backend/internal/controller"
	"github.com/dwarvesf/lending-backend/internal/model"
	"github.com/dwarvesf/lending-backend/internal/telemetry"
	"github.com/dwarvesf/lending-backend/internal/utils/config"
	"github.com/dwarvesf/lending-backend/internal/utils/logger"
	"github.com/dwarvesf/lending-backend/internal/view"
)

const maxEventsLimit = 500

type OpenActionRequest struct {
	Action  string `json:"action" binding:"required" validate:"oneof=Supply Borrow Withdraw Adjust Repay"`
	TokenID string `json:"token_id" binding:"required"`
}

type UpdateAmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
	IsMax  bool            `json:"is_max"`
}

type ToggleCollateralRequest struct {
	UseAsCollateral    *bool `json:"use_as_collateral" binding:"required"`
	CanUseAsCollateral bool  `json:"can_use_as_collateral"`
}

type EligibilityRequest struct {
	CanUseAsCollateral *bool `json:"can_use_as_collateral" binding:"required"`
}

type EligibilityResponse struct {
	Corrected bool        `json:"corrected"`
	Session   interface{} `json:"session"`
}

type handler struct {
	controller controller.IController
	telemetry  telemetry.ITelemetry
	logger     *logger.Logger
	appConfig  *config.AppConfig
	validate   *validator.Validate
}

func New(controller controller.IController, telemetry telemetry.ITelemetry, logger *logger.Logger, appConfig *config.AppConfig) IHandler {
	return &handler{
		controller: controller,
		telemetry:  telemetry,
		logger:     logger,
		appConfig:  appConfig,
		validate:   validator.New(),
	}
}

// OpenAction godoc
// @Summary Open an action
// @Description Shows the action surface for an asset and resets the input
// @id openAction
// @Tags Action
// @Accept json
// @Produce json
// @Param account_id path string true "Account ID"
// @Param request body OpenActionRequest true "Action and token"
// @Success 200 {object} selection.Session
// @Failure 400 {object} view.ErrorResponse
// @Failure 500 {object} view.ErrorResponse
// @Router /accounts/{account_id}/action [post]
func (h *handler) OpenAction(c *gin.Context) {
	var req OpenActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[OpenAction][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		h.logger.Error("[OpenAction][Validator]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	session, err := h.controller.OpenAction(c.Request.Context(), c.Param("account_id"), model.Action(req.Action), req.TokenID)
	if err != nil {
		h.respondError(c, "OpenAction", err, req, "failed to open action")
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any](session, nil, nil, ""))
}

// GetSession godoc
// @Summary Get the action surface
// @Description Returns the current selection state of the account
// @id getSession
// @Tags Action
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {object} selection.Session
// @Failure 404 {object} view.ErrorResponse
// @Router /accounts/{account_id}/action [get]
func (h *handler) GetSession(c *gin.Context) {
	session, err := h.controller.GetSession(c.Request.Context(), c.Param("account_id"))
	if err != nil {
		h.respondError(c, "GetSession", err, nil, "failed to get action")
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any](session, nil, nil, ""))
}

// Dismiss godoc
// @Summary Dismiss the action surface
// @id dismissAction
// @Tags Action
// @Produce json
// @Param account_id path string true "Account ID"
// @Success 200 {object} view.MessageResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /accounts/{account_id}/action [delete]
func (h *handler) Dismiss(c *gin.Context) {
	if err := h.controller.Dismiss(c.Request.Context(), c.Param("account_id")); err != nil {
		h.respondError(c, "Dismiss", err, nil, "failed to dismiss action")
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any]("action dismissed", nil, nil, ""))
}

// UpdateAmount godoc
// @Summary Update the amount
// @id updateAmount
// @Tags Action
// @Accept json
// @Produce json
// @Param account_id path string true "Account ID"
// @Param request body UpdateAmountRequest true "Amount and max shortcut"
// @Success 200 {object} selection.Session
// @Failure 400 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /accounts/{account_id}/action/amount [put]
func (h *handler) UpdateAmount(c *gin.Context) {
	var req UpdateAmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[UpdateAmount][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	session, err := h.controller.UpdateAmount(c.Request.Context(), c.Param("account_id"), req.Amount, req.IsMax)
	if err != nil {
		h.respondError(c, "UpdateAmount", err, req, "failed to update amount")
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any](session, nil, nil, ""))
}

// ToggleCollateral godoc
// @Summary Toggle use as collateral
// @Description Refused when the asset cannot be used as collateral
// @id toggleCollateral
// @Tags Action
// @Accept json
// @Produce json
// @Param account_id path string true "Account ID"
// @Param request body ToggleCollateralRequest true "New flag and asset eligibility"
// @Success 200 {object} selection.Session
// @Failure 400 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /accounts/{account_id}/action/collateral [put]
func (h *handler) ToggleCollateral(c *gin.Context) {
	var req ToggleCollateralRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[ToggleCollateral][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	session, err := h.controller.ToggleCollateral(c.Request.Context(), c.Param("account_id"), *req.UseAsCollateral, req.CanUseAsCollateral)
	if err != nil {
		h.respondError(c, "ToggleCollateral", err, req, "failed to toggle collateral")
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any](session, nil, nil, ""))
}

// SyncEligibility godoc
// @Summary Report collateral eligibility
// @Description Clears the collateral flag when the asset is no longer eligible
// @id syncEligibility
// @Tags Action
// @Accept json
// @Produce json
// @Param account_id path string true "Account ID"
// @Param request body EligibilityRequest true "Asset eligibility"
// @Success 200 {object} EligibilityResponse
// @Failure 400 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /accounts/{account_id}/action/eligibility [post]
func (h *handler) SyncEligibility(c *gin.Context) {
	var req EligibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[SyncEligibility][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, req, "invalid request"))
		return
	}

	session, corrected, err := h.controller.SyncCollateral(c.Request.Context(), c.Param("account_id"), *req.CanUseAsCollateral)
	if err != nil {
		h.respondError(c, "SyncEligibility", err, req, "failed to sync eligibility")
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any](EligibilityResponse{
		Corrected: corrected,
		Session:   session,
	}, nil, nil, ""))
}

// Preview godoc
// @Summary Preview the action
// @Description Limits, gate result and the request that would be dispatched
// @id previewAction
// @Tags Action
// @Accept json
// @Produce json
// @Param account_id path string true "Account ID"
// @Param request body controller.SubmitInput true "Protocol state of the asset"
// @Success 200 {object} controller.Preview
// @Failure 400 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /accounts/{account_id}/action/preview [post]
func (h *handler) Preview(c *gin.Context) {
	in, ok := h.bindSubmitInput(c, "Preview")
	if !ok {
		return
	}

	preview, err := h.controller.Preview(c.Request.Context(), c.Param("account_id"), in)
	if err != nil {
		h.respondError(c, "Preview", err, in, "failed to preview action")
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any](preview, nil, nil, ""))
}

// Submit godoc
// @Summary Submit the action
// @Description Dispatches the transaction in the background and dismisses the action surface
// @id submitAction
// @Tags Action
// @Accept json
// @Produce json
// @Param account_id path string true "Account ID"
// @Param request body controller.SubmitInput true "Protocol state of the asset"
// @Success 202 {object} controller.SubmitResult
// @Failure 400 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Failure 409 {object} view.ErrorResponse
// @Failure 500 {object} view.ErrorResponse
// @Router /accounts/{account_id}/action/submit [post]
func (h *handler) Submit(c *gin.Context) {
	in, ok := h.bindSubmitInput(c, "Submit")
	if !ok {
		return
	}

	result, err := h.controller.Submit(c.Request.Context(), c.Param("account_id"), in)
	if err != nil {
		h.respondError(c, "Submit", err, in, "failed to submit action")
		return
	}

	c.JSON(http.StatusAccepted, view.CreateResponse[any](result, nil, nil, ""))
}

// ListEvents godoc
// @Summary List telemetry events
// @id listEvents
// @Tags Action
// @Produce json
// @Param account_id path string true "Account ID"
// @Param limit query int false "Max number of events"
// @Success 200 {array} model.ActionEvent
// @Failure 400 {object} view.ErrorResponse
// @Failure 500 {object} view.ErrorResponse
// @Router /accounts/{account_id}/events [get]
func (h *handler) ListEvents(c *gin.Context) {
	limit := h.appConfig.Telemetry.EventsQueryLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, errors.New("limit must be a positive integer"), raw, "invalid request"))
			return
		}
		limit = parsed
	}
	if limit > maxEventsLimit {
		limit = maxEventsLimit
	}

	events, err := h.telemetry.ListEvents(c.Request.Context(), c.Param("account_id"), limit)
	if err != nil {
		h.logger.Error("[ListEvents][ListEvents]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.CreateResponse[any](nil, err, nil, "failed to list events"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any](events, nil, nil, ""))
}

func (h *handler) bindSubmitInput(c *gin.Context, caller string) (controller.SubmitInput, bool) {
	var in controller.SubmitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.logger.Error("["+caller+"][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, in, "invalid request"))
		return in, false
	}

	if err := h.validate.Struct(in); err != nil {
		h.logger.Error("["+caller+"][Validator]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, in, "invalid request"))
		return in, false
	}
	return in, true
}

func (h *handler) respondError(c *gin.Context, caller string, err error, req interface{}, msg string) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		h.logger.Error("["+caller+"]", map[string]string{
			"account": c.Param("account_id"),
			"error":   err.Error(),
		})
	}
	c.JSON(status, view.CreateResponse[any](nil, err, req, msg))
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, controller.ErrInvalidAction),
		errors.Is(err, controller.ErrInvalidAmount),
		errors.Is(err, controller.ErrActionNotAllowed),
		errors.Is(err, controller.ErrCollateralNotEligible):
		return http.StatusBadRequest
	case errors.Is(err, controller.ErrNoActiveAction):
		return http.StatusNotFound
	case errors.Is(err, controller.ErrSubmissionInFlight):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
