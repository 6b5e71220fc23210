package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/adapter/http/middleware"
	"oficina_xpto/internal/domain/roadmap"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidJobOrderPayload = pkg.NewDomainErrorSimple("INVALID_JOB_ORDER_INPUT", "Invalid job order payload", http.StatusBadRequest)
)

// JobOrderHandler handles HTTP requests for the job-order lifecycle.

type JobOrderHandler struct {
	usecase usecase.IJobOrderUseCase
}

func NewJobOrderHandler(uc usecase.IJobOrderUseCase) *JobOrderHandler {
	return &JobOrderHandler{usecase: uc}
}

// UpsertJobOrder creates or updates the whole aggregate from one payload.
func (h *JobOrderHandler) UpsertJobOrder(c *gin.Context) {
	var payload request.JobOrderUpsertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.Upsert(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobOrder(o, nil))
}

// GetJobOrder returns one aggregate by order number, actor names resolved.
func (h *JobOrderHandler) GetJobOrder(c *gin.Context) {
	orderNumber := c.Param("order_number")
	log.Printf("[joborder][handler] get start order_number=%s", orderNumber)

	o, err := h.usecase.GetByOrderNumber(c.Request.Context(), orderNumber)
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	names := h.usecase.ActorNames(c.Request.Context(), o)
	c.JSON(http.StatusOK, response.FromJobOrder(o, names))
}

// ListJobOrders filters by status class or plate number.
func (h *JobOrderHandler) ListJobOrders(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	if plate := c.Query("plate"); plate != "" {
		list, err := h.usecase.ListByPlateNumber(c.Request.Context(), plate, limit)
		if err != nil {
			appErr := mapJobOrderError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromJobOrders(list))
		return
	}

	statusClass := c.Query("status")
	if statusClass == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Provide a status or plate filter", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	list, err := h.usecase.ListByStatusClass(c.Request.Context(), statusClass, limit)
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobOrders(list))
}

// AdvanceStage moves the order one roadmap stage forward (or cancels).
func (h *JobOrderHandler) AdvanceStage(c *gin.Context) {
	orderNumber := c.Param("order_number")

	var payload request.AdvanceStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.AdvanceStage(c.Request.Context(), orderNumber, payload.Stage, actorFrom(c, payload.Actor))
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobOrder(o, nil))
}

// QualityDecision approves or rejects the active quality check.
func (h *JobOrderHandler) QualityDecision(c *gin.Context) {
	orderNumber := c.Param("order_number")

	var payload request.QualityDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Approve == nil {
		c.JSON(errInvalidJobOrderPayload.HTTPStatus, errInvalidJobOrderPayload.ToHTTPError())
		return
	}

	o, err := h.usecase.QualityDecision(c.Request.Context(), orderNumber, *payload.Approve, actorFrom(c, payload.Actor))
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobOrder(o, nil))
}

// CancelJobOrder terminates the order; its record survives as cancelled.
func (h *JobOrderHandler) CancelJobOrder(c *gin.Context) {
	orderNumber := c.Param("order_number")

	var payload request.CancelOrderRequest
	_ = c.ShouldBindJSON(&payload)

	o, err := h.usecase.Cancel(c.Request.Context(), orderNumber, actorFrom(c, payload.Actor))
	if err != nil {
		appErr := mapJobOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJobOrder(o, nil))
}

// actorFrom prefers the authenticated identity over a body-supplied actor.
func actorFrom(c *gin.Context, fallback string) string {
	if id := c.GetString(middleware.ContextActorID); id != "" {
		return id
	}
	return fallback
}

func mapJobOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderNumber),
		errors.Is(err, usecase.ErrNoServiceLines),
		errors.Is(err, usecase.ErrInvalidMonetaryInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobOrderNotFound):
		return pkg.NewDomainErrorSimple("JOB_ORDER_NOT_FOUND", "Job order not found", http.StatusNotFound)
	case errors.Is(err, roadmap.ErrUnknownStage):
		return pkg.NewDomainErrorSimple("UNKNOWN_STAGE", "Unknown roadmap stage", http.StatusBadRequest)
	case errors.Is(err, roadmap.ErrInvalidTransition),
		errors.Is(err, usecase.ErrOrderAlreadyTerminal),
		errors.Is(err, usecase.ErrServiceLinesNotTerminal):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Stage transition not allowed", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
