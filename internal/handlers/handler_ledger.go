package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vafabank/teller_app/internal/core/ports/services"
	"github.com/vafabank/teller_app/internal/dto"
	"github.com/vafabank/teller_app/internal/middleware"
)

// ledgerHandler serves the teller console's transaction tab.
type ledgerHandler struct {
	ledger portssvc.LedgerSvcFacade
}

func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{ledger: ls}
}

// registerLedgerRoutes registers the teller-only ledger routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ledger portssvc.LedgerSvcFacade) {
	h := newLedgerHandler(ledger)

	lg := rg.Group("/ledger")
	{
		lg.POST("/deposits", h.deposit)
		lg.POST("/withdrawals", h.withdraw)
		lg.POST("/transfers", h.transfer)
	}
}

func (h *ledgerHandler) deposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for deposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.ledger.Deposit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to apply deposit")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountActivityResponse(account))
}

func (h *ledgerHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	account, err := h.ledger.Withdraw(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to apply withdrawal")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountActivityResponse(account))
}

func (h *ledgerHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	from, to, err := h.ledger.Transfer(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to apply transfer")
		return
	}

	c.JSON(http.StatusCreated, dto.TransferResponse{
		From: dto.ToAccountActivityResponse(from),
		To:   dto.ToAccountActivityResponse(to),
	})
}
