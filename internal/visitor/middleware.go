package visitor

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/saulo-duarte/ignite-guild/internal/config"
)

type contextKey struct{}

func WithVisitor(ctx context.Context, visitorID string) context.Context {
	return context.WithValue(ctx, contextKey{}, visitorID)
}

func FromContext(ctx context.Context) (string, error) {
	id, ok := ctx.Value(contextKey{}).(string)
	if !ok || id == "" {
		return "", ErrNoVisitor
	}
	return id, nil
}

// Middleware resolves the visitor cookie into a visitor id on the request
// context, issuing a fresh id when the cookie is missing or invalid.
func (t *Tokens) Middleware(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := config.WithContext(r.Context())

			if c, err := r.Cookie(CookieName); err == nil {
				claims, err := t.Validate(c.Value)
				if err == nil {
					next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), claims.VisitorID)))
					return
				}
				log.WithError(err).Debug("Discarding invalid visitor cookie")
			}

			id := uuid.NewString()
			token, err := t.Generate(id)
			if err != nil {
				log.WithError(err).Error("Failed to sign visitor token")
				next.ServeHTTP(w, r)
				return
			}

			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(t.ttl.Seconds()),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
			log.WithField("visitor_id", id).Debug("Issued visitor id")

			next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), id)))
		})
	}
}
