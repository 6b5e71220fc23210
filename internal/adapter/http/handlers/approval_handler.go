package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidApprovalPayload = pkg.NewDomainErrorSimple("INVALID_APPROVAL_INPUT", "Invalid approval payload", http.StatusBadRequest)
)

// ApprovalHandler handles HTTP requests for the service-line approval
// sub-workflow.

type ApprovalHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewApprovalHandler(uc usecase.IApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// RequestServiceAction opens a postpone/cancel request for one line.
func (h *ApprovalHandler) RequestServiceAction(c *gin.Context) {
	orderNumber := c.Param("order_number")

	var payload request.ServiceActionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApprovalPayload.HTTPStatus, errInvalidApprovalPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.RequestServiceAction(c.Request.Context(), orderNumber, payload.ServiceLineID, payload.Action, actorFrom(c, ""))
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromApprovalRequest(created))
}

// RequestNewServiceLine appends a new costed line pending approval.
func (h *ApprovalHandler) RequestNewServiceLine(c *gin.Context) {
	orderNumber := c.Param("order_number")

	var payload request.NewServiceLineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApprovalPayload.HTTPStatus, errInvalidApprovalPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.RequestNewServiceLine(c.Request.Context(), orderNumber, payload.Name, payload.Price, actorFrom(c, ""))
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromApprovalRequest(created))
}

// ListByOrder returns every request ever opened for an order.
func (h *ApprovalHandler) ListByOrder(c *gin.Context) {
	requests, err := h.usecase.ListByOrder(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApprovalRequests(requests))
}

// ListPending returns the supervisor work queue.
func (h *ApprovalHandler) ListPending(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	requests, err := h.usecase.ListPending(c.Request.Context(), limit)
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApprovalRequests(requests))
}

// Decide records the one-and-only decision on a pending request.
func (h *ApprovalHandler) Decide(c *gin.Context) {
	requestID := c.Param("request_id")

	var payload request.ApprovalDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Approve == nil {
		c.JSON(errInvalidApprovalPayload.HTTPStatus, errInvalidApprovalPayload.ToHTTPError())
		return
	}

	decided, err := h.usecase.Decide(c.Request.Context(), requestID, *payload.Approve, actorFrom(c, ""), payload.Note)
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromApprovalRequest(decided))
}

func mapApprovalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestedAction):
		return pkg.NewDomainErrorSimple("INVALID_ACTION", "Requested action must be postpone or cancel", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobOrderNotFound):
		return pkg.NewDomainErrorSimple("JOB_ORDER_NOT_FOUND", "Job order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceLineNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_LINE_NOT_FOUND", "Service line not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApprovalNotFound):
		return pkg.NewDomainErrorSimple("APPROVAL_NOT_FOUND", "Approval request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApprovalAlreadyDecided),
		errors.Is(err, usecase.ErrActionAlreadyApplied):
		return pkg.NewDomainErrorSimple("APPROVAL_CONFLICT", "Approval request already settled", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
