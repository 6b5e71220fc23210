package handlers

import (
	"errors"
	"log"
	"net/http"

	request "oficina_xpto/internal/adapter/http/dto/request"
	response "oficina_xpto/internal/adapter/http/dto/response"
	"oficina_xpto/internal/infrastructure/documents"
	"oficina_xpto/internal/usecase"
	"oficina_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidExitPermitPayload = pkg.NewDomainErrorSimple("INVALID_EXIT_PERMIT_INPUT", "Invalid exit permit payload", http.StatusBadRequest)
)

// ExitPermitHandler handles HTTP requests for vehicle-release permits.

type ExitPermitHandler struct {
	usecase usecase.IExitPermitUseCase
}

func NewExitPermitHandler(uc usecase.IExitPermitUseCase) *ExitPermitHandler {
	return &ExitPermitHandler{usecase: uc}
}

// IssueExitPermit creates the once-only release permit.
func (h *ExitPermitHandler) IssueExitPermit(c *gin.Context) {
	orderNumber := c.Param("order_number")

	var payload request.ExitPermitRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidExitPermitPayload.HTTPStatus, errInvalidExitPermitPayload.ToHTTPError())
		return
	}

	log.Printf("[exitpermit][handler] issue start order_number=%s collected_by=%s", orderNumber, payload.CollectedByName)
	o, err := h.usecase.Issue(c.Request.Context(), orderNumber, payload.CollectedByName, payload.CollectedByMobile, payload.NextServiceDate, actorFrom(c, ""))
	if err != nil {
		appErr := mapExitPermitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJobOrder(o, nil))
}

// GetExitPermit returns the permit attached to an order.
func (h *ExitPermitHandler) GetExitPermit(c *gin.Context) {
	o, err := h.usecase.Get(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		appErr := mapExitPermitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJobOrder(o, nil))
}

// GetExitPermitSlip streams the printable gate slip.
func (h *ExitPermitHandler) GetExitPermitSlip(c *gin.Context) {
	o, err := h.usecase.Get(c.Request.Context(), c.Param("order_number"))
	if err != nil {
		appErr := mapExitPermitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	pdf, filename, err := documents.BuildExitPermitSlip(o)
	if err != nil {
		appErr := mapExitPermitError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func mapExitPermitError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCollector),
		errors.Is(err, usecase.ErrMissingNextService):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrJobOrderNotFound):
		return pkg.NewDomainErrorSimple("JOB_ORDER_NOT_FOUND", "Job order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExitPermitNotFound), errors.Is(err, documents.ErrNoExitPermit):
		return pkg.NewDomainErrorSimple("EXIT_PERMIT_NOT_FOUND", "Exit permit not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrExitPermitNotEligible):
		return pkg.NewDomainErrorSimple("EXIT_PERMIT_NOT_ELIGIBLE", "Order not eligible for exit permit", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
