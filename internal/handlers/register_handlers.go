package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/vafabank/teller_app/internal/core/domain"
	portssvc "github.com/vafabank/teller_app/internal/core/ports/services"
	"github.com/vafabank/teller_app/internal/middleware"
	"github.com/vafabank/teller_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, services.Auth)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group: one JWT gate for the whole
// group, then one role-fenced subgroup per console.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	admin := v1.Group("", middleware.RequireRole(domain.RoleAdmin))
	teller := v1.Group("", middleware.RequireRole(domain.RoleEmployee))
	customer := v1.Group("", middleware.RequireRole(domain.RoleCustomer))

	registerEmployeeRoutes(admin, services.Onboarding)
	registerCustomerRoutes(admin, teller, services.Onboarding, services.Registry)
	registerLedgerRoutes(teller, services.Ledger)
	registerMeRoutes(customer, services.Registry, services.Ledger)
}
