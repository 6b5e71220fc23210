package handlers

import (
	"errors"
	"log"
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/adapter/http/middleware"
	"oficina_xpto/internal/domain/billing"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBillingPayload = pkg.NewDomainErrorSimple("INVALID_BILLING_INPUT", "Invalid billing payload", http.StatusBadRequest)
)

// BillingHandler handles HTTP requests for payments, discounts and refunds.

type BillingHandler struct {
	usecase usecase.IBillingUseCase
}

func NewBillingHandler(uc usecase.IBillingUseCase) *BillingHandler {
	return &BillingHandler{usecase: uc}
}

// RecordPayment appends a payment to the order's ledger.
func (h *BillingHandler) RecordPayment(c *gin.Context) {
	orderNumber := c.Param("order_number")

	var payload request.PaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillingPayload.HTTPStatus, errInvalidBillingPayload.ToHTTPError())
		return
	}

	log.Printf("[billing][handler] record payment start order_number=%s amount=%.2f method=%s", orderNumber, payload.Amount, payload.Method)
	created, err := h.usecase.RecordPayment(c.Request.Context(), orderNumber, payload.Amount, payload.Method, payload.Reference, payload.ResolvePaidAt(), actorFrom(c, ""))
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentRecord(created))
}

// ListPayments returns the full ledger of an order.
func (h *BillingHandler) ListPayments(c *gin.Context) {
	records, err := h.usecase.ListPayments(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecords(records))
}

// AdjustPayment rewrites a ledger entry's amount.
func (h *BillingHandler) AdjustPayment(c *gin.Context) {
	var payload request.PaymentAdjustRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillingPayload.HTTPStatus, errInvalidBillingPayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.AdjustPayment(c.Request.Context(), c.Param("payment_id"), payload.Amount)
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentRecord(updated))
}

// DeletePayment removes a ledger entry.
func (h *BillingHandler) DeletePayment(c *gin.Context) {
	if err := h.usecase.DeletePayment(c.Request.Context(), c.Param("payment_id")); err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// SetDiscount applies a discount bounded by the caller's role ceiling.
func (h *BillingHandler) SetDiscount(c *gin.Context) {
	orderNumber := c.Param("order_number")

	var payload request.DiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Discount == nil {
		c.JSON(errInvalidBillingPayload.HTTPStatus, errInvalidBillingPayload.ToHTTPError())
		return
	}

	role := c.GetString(middleware.ContextUserRole)
	o, err := h.usecase.SetDiscount(c.Request.Context(), orderNumber, *payload.Discount, role)
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobOrder(o, nil))
}

// Refund gives money back on a cancelled order.
func (h *BillingHandler) Refund(c *gin.Context) {
	orderNumber := c.Param("order_number")

	var payload request.RefundRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBillingPayload.HTTPStatus, errInvalidBillingPayload.ToHTTPError())
		return
	}

	log.Printf("[billing][handler] refund start order_number=%s amount=%.2f", orderNumber, payload.Amount)
	o, err := h.usecase.Refund(c.Request.Context(), orderNumber, payload.Amount, actorFrom(c, ""))
	if err != nil {
		appErr := mapBillingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobOrder(o, nil))
}

func mapBillingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderNumber),
		errors.Is(err, billing.ErrInvalidPaymentAmount),
		errors.Is(err, billing.ErrNegativeAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, billing.ErrDiscountExceedsCeiling):
		return pkg.NewDomainErrorSimple("DISCOUNT_EXCEEDS_CEILING", "Discount exceeds the allowed ceiling", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrJobOrderNotFound):
		return pkg.NewDomainErrorSimple("JOB_ORDER_NOT_FOUND", "Job order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRefundNotEligible):
		return pkg.NewDomainErrorSimple("REFUND_NOT_ELIGIBLE", "Order not eligible for refund", http.StatusConflict)
	case errors.Is(err, billing.ErrRefundExceedsPayments):
		return pkg.NewDomainErrorSimple("REFUND_EXCEEDS_PAYMENTS", "Refund exceeds the collected total", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrRefundPartiallyApplied):
		return pkg.NewDomainError("REFUND_PARTIALLY_APPLIED", "Refund applied partially; manual reconciliation required", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
