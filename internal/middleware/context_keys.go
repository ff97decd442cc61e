package middleware

import (
	"context"

	"github.com/vafabank/teller_app/internal/core/domain"
)

const (
	subjectCtxKey = contextKey("subject")
	roleCtxKey    = contextKey("role")
)

// GetSubjectFromCtx retrieves the authenticated subject (employee userId or
// customerId) from the request context.
func GetSubjectFromCtx(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectCtxKey).(string)
	return subject, ok
}

// GetRoleFromCtx retrieves the authenticated actor role from the request
// context.
func GetRoleFromCtx(ctx context.Context) (domain.Role, bool) {
	role, ok := ctx.Value(roleCtxKey).(domain.Role)
	return role, ok
}
