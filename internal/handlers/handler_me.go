package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vafabank/teller_app/internal/core/domain"
	portssvc "github.com/vafabank/teller_app/internal/core/ports/services"
	"github.com/vafabank/teller_app/internal/dto"
	"github.com/vafabank/teller_app/internal/middleware"
)

// meHandler serves the customer console: profile summary, passbook and
// customer-initiated transfers. The acting customer is always taken from
// the session, never from the request body.
type meHandler struct {
	registry portssvc.RegistrySvcFacade
	ledger   portssvc.LedgerSvcFacade
}

func newMeHandler(rs portssvc.RegistrySvcFacade, ls portssvc.LedgerSvcFacade) *meHandler {
	return &meHandler{registry: rs, ledger: ls}
}

// registerMeRoutes registers the customer-only self-service routes.
func registerMeRoutes(rg *gin.RouterGroup, registry portssvc.RegistrySvcFacade, ledger portssvc.LedgerSvcFacade) {
	h := newMeHandler(registry, ledger)

	me := rg.Group("/me")
	{
		me.GET("", h.summary)
		me.GET("/passbook", h.passbook)
		me.POST("/transfers", h.transfer)
	}
}

// current resolves the session subject to the live customer record; the
// stored collection, not the token, is the source of truth for balances.
func (h *meHandler) current(c *gin.Context) (*domain.Customer, bool) {
	subject, ok := middleware.GetSubjectFromCtx(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	customer, err := h.registry.FindByCustomerID(c.Request.Context(), subject)
	if err != nil {
		respondError(c, err, "Failed to load customer record")
		return nil, false
	}
	return customer, true
}

func (h *meHandler) summary(c *gin.Context) {
	customer, ok := h.current(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

func (h *meHandler) passbook(c *gin.Context) {
	customer, ok := h.current(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToPassbookResponse(customer))
}

// transfer moves funds out of the logged-in customer's own account.
func (h *meHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CustomerTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for customer transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	customer, ok := h.current(c)
	if !ok {
		return
	}

	from, to, err := h.ledger.Transfer(c.Request.Context(), dto.TransferRequest{
		FromAccountNumber: customer.AccountNumber,
		ToAccountNumber:   req.ToAccountNumber,
		Amount:            req.Amount,
		Type:              req.Type,
	})
	if err != nil {
		respondError(c, err, "Failed to apply transfer")
		return
	}

	c.JSON(http.StatusCreated, dto.TransferResponse{
		From: dto.ToAccountActivityResponse(from),
		To:   dto.ToAccountActivityResponse(to),
	})
}
