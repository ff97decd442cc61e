package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vafabank/teller_app/internal/core/ports/services"
	"github.com/vafabank/teller_app/internal/dto"
	"github.com/vafabank/teller_app/internal/middleware"
)

// customerHandler serves the account lifecycle: applications and approvals
// for the admin console, lookups, updates and closure for the teller
// console.
type customerHandler struct {
	onboarding portssvc.OnboardingSvcFacade
	registry   portssvc.RegistrySvcFacade
}

func newCustomerHandler(os portssvc.OnboardingSvcFacade, rs portssvc.RegistrySvcFacade) *customerHandler {
	return &customerHandler{onboarding: os, registry: rs}
}

// registerCustomerRoutes splits the customer lifecycle across the admin and
// teller route groups.
func registerCustomerRoutes(admin, teller *gin.RouterGroup, onboarding portssvc.OnboardingSvcFacade, registry portssvc.RegistrySvcFacade) {
	h := newCustomerHandler(onboarding, registry)

	adminCustomers := admin.Group("/customers")
	{
		adminCustomers.GET("/pending", h.listPendingApplications)
		adminCustomers.POST("/:id/approve", h.approveApplication)
	}

	tellerCustomers := teller.Group("/customers")
	{
		tellerCustomers.POST("", h.createApplication)
		tellerCustomers.GET("/:id", h.getByAccountNumber)
		tellerCustomers.PUT("/:id/contact", h.updateContactDetails)
		tellerCustomers.POST("/close", h.closeAccount)
	}
}

// createApplication submits an open-account application. The record stays
// pending (no credentials) until an admin approves it.
func (h *customerHandler) createApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createApplication", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	customer, err := h.onboarding.CreateApplication(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to submit application")
		return
	}

	c.JSON(http.StatusCreated, dto.ToApplicationResponse(customer))
}

// listPendingApplications lists applications awaiting approval.
func (h *customerHandler) listPendingApplications(c *gin.Context) {
	pending, err := h.onboarding.ListPendingApplications(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list pending applications")
		return
	}
	c.JSON(http.StatusOK, dto.ToListApplicationsResponse(pending))
}

// approveApplication activates a pending application and derives its
// login password. The response includes the password for the admin alert.
func (h *customerHandler) approveApplication(c *gin.Context) {
	customerID := c.Param("id")

	customer, err := h.onboarding.ApproveApplication(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err, "Failed to approve application")
		return
	}

	c.JSON(http.StatusOK, dto.ToApplicationResponse(customer))
}

// getByAccountNumber serves the teller lookup screens (transactions,
// updates, receiver-name preview).
func (h *customerHandler) getByAccountNumber(c *gin.Context) {
	accountNumber := c.Param("id")

	customer, err := h.registry.FindByAccountNumber(c.Request.Context(), accountNumber)
	if err != nil {
		respondError(c, err, "Failed to look up account")
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// updateContactDetails mutates the three updatable profile fields.
func (h *customerHandler) updateContactDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountNumber := c.Param("id")

	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateContactDetails", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	customer, err := h.onboarding.UpdateContactDetails(c.Request.Context(), accountNumber, req)
	if err != nil {
		respondError(c, err, "Failed to update account details")
		return
	}

	c.JSON(http.StatusOK, dto.ToCustomerResponse(customer))
}

// closeAccount removes a record iff both identifiers match it.
func (h *customerHandler) closeAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CloseAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for closeAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.onboarding.CloseAccount(c.Request.Context(), req.AccountNumber, req.CustomerID); err != nil {
		respondError(c, err, "Failed to close account")
		return
	}

	c.Status(http.StatusNoContent)
}
