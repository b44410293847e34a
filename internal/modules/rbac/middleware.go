package rbac

import (
	"context"
	"encoding/json"
	"net/http"
)

// Op is a permission operation kind.
type Op int

const (
	OpRead Op = iota
	OpWrite
	OpDelete
)

type contextKey string

const roleKey contextKey = "rbac.role"

// WithRole returns a context carrying the caller's role. Set by the auth
// middleware after token verification.
func WithRole(ctx context.Context, role Role) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromContext extracts the caller's role, if any.
func RoleFromContext(ctx context.Context) (Role, bool) {
	role, ok := ctx.Value(roleKey).(Role)
	return role, ok
}

// Require gates a route on the policy. Requests without a role in context,
// or whose role lacks the permission, are rejected with 403 before the
// handler runs.
func Require(policy *Policy, resource Resource, op Op) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok || !allowed(policy, role, resource, op) {
				deny(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func allowed(policy *Policy, role Role, resource Resource, op Op) bool {
	switch op {
	case OpRead:
		return policy.CanRead(role, resource)
	case OpWrite:
		return policy.CanWrite(role, resource)
	case OpDelete:
		return policy.CanDelete(role, resource)
	}
	return false
}

func deny(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)
	json.NewEncoder(w).Encode(map[string]string{"error": "permission denied"})
}
