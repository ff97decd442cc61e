package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/vafabank/teller_app/internal/core/ports/services"
	"github.com/vafabank/teller_app/internal/dto"
	"github.com/vafabank/teller_app/internal/middleware"
)

// employeeHandler serves the admin console's staff management tab.
type employeeHandler struct {
	onboarding portssvc.OnboardingSvcFacade
}

func newEmployeeHandler(os portssvc.OnboardingSvcFacade) *employeeHandler {
	return &employeeHandler{onboarding: os}
}

// registerEmployeeRoutes registers the admin-only employee routes.
func registerEmployeeRoutes(rg *gin.RouterGroup, onboarding portssvc.OnboardingSvcFacade) {
	h := newEmployeeHandler(onboarding)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
	}
}

// createEmployee creates a staff record with a derived password and echoes
// it back, so the admin can hand the credentials over.
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.onboarding.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created", slog.String("user_id", employee.UserID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees returns all staff records except the reserved admin.
func (h *employeeHandler) listEmployees(c *gin.Context) {
	employees, err := h.onboarding.ListEmployees(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees))
}
