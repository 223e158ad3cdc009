package middleware

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/revision-planner-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

// PrincipalOptions configures how a request's principal is chosen.
type PrincipalOptions struct {
	// Validator checks bearer tokens. Nil ignores the Authorization header.
	Validator tokenValidator
	// DefaultOwner stands in for requests without a token.
	DefaultOwner uuid.UUID
	// AllowAnonymous lets requests without a token run as DefaultOwner.
	AllowAnonymous bool
}

// Principal puts the request's principal into the context. A valid bearer
// token names the user; an invalid one is rejected with 401. Without a token
// the placeholder owner is used when anonymous access is allowed.
func Principal(opts PrincipalOptions) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)

			if token != "" && opts.Validator != nil {
				userID, err := opts.Validator.ValidateToken(token)
				if err != nil {
					writeError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				next.ServeHTTP(w, r.WithContext(attach(r.Context(), ctxutil.Principal{UserID: userID})))
				return
			}

			if !opts.AllowAnonymous || opts.DefaultOwner == uuid.Nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(attach(r.Context(), ctxutil.Principal{
				UserID:      opts.DefaultOwner,
				Placeholder: true,
			})))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

func attach(ctx context.Context, p ctxutil.Principal) context.Context {
	if h, ok := ctx.Value(holderKey{}).(*principalHolder); ok {
		h.set(p)
	}
	return ctxutil.WithPrincipal(ctx, p)
}

type holderKey struct{}

// principalHolder lets outer middleware see the principal chosen further in.
type principalHolder struct {
	mu sync.Mutex
	p  ctxutil.Principal
	ok bool
}

func withPrincipalHolder(ctx context.Context, h *principalHolder) context.Context {
	return context.WithValue(ctx, holderKey{}, h)
}

func (h *principalHolder) set(p ctxutil.Principal) {
	h.mu.Lock()
	h.p, h.ok = p, true
	h.mu.Unlock()
}

func (h *principalHolder) get() (ctxutil.Principal, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.p, h.ok
}
