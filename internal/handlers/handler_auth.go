package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/vafabank/teller_app/internal/core/ports/services"
	"github.com/vafabank/teller_app/internal/dto"
	"github.com/vafabank/teller_app/internal/middleware"
	"github.com/vafabank/teller_app/internal/platform/config"
	"github.com/vafabank/teller_app/internal/utils"
)

// authHandler handles login requests for all three consoles.
type authHandler struct {
	authService portssvc.AuthSvcFacade
	cfg         *config.Config
}

func newAuthHandler(as portssvc.AuthSvcFacade, cfg *config.Config) *authHandler {
	return &authHandler{authService: as, cfg: cfg}
}

// registerAuthRoutes sets up the public login route behind a per-IP rate
// limit.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, authService portssvc.AuthSvcFacade) {
	h := newAuthHandler(authService, cfg)

	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", limitMiddleware, h.login)
	}
}

// login resolves an identifier/password pair to an actor and issues a
// role-scoped session token.
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	actor, err := h.authService.Login(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	token, err := utils.GenerateSessionJWT(actor, h.cfg.JWTSecret, h.cfg.JWTExpiryDuration, h.cfg.JWTIssuer)
	if err != nil {
		logger.Error("Failed to sign session token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	fullName := ""
	if actor.Employee != nil {
		fullName = actor.Employee.FullName
	} else if actor.Customer != nil {
		fullName = actor.Customer.FullName
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:    token,
		Role:     actor.Role,
		FullName: fullName,
		Subject:  actor.Subject(),
	})
}
