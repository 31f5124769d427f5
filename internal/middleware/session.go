package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/printworks/storefront-server-go/internal/audit"
	"github.com/printworks/storefront-server-go/internal/session"
)

const CartSessionMaxAge = 30 * 24 * time.Hour

type contextKey string

const CartTokenContextKey contextKey = "cartToken"

// GetCartToken returns the session token installed by the cart session
// middleware, or "" outside of it.
func GetCartToken(ctx context.Context) string {
	if token, ok := ctx.Value(CartTokenContextKey).(string); ok {
		return token
	}
	return ""
}

// CartSessionMiddleware resolves the caller's cart session token from the
// cookie jar, regenerating it when absent or malformed, and threads the
// token through the request context. Handlers receive the token by value
// and never touch the cookie themselves.
type CartSessionMiddleware struct {
	secure bool
}

func NewCartSessionMiddleware(secure bool) *CartSessionMiddleware {
	return &CartSessionMiddleware{secure: secure}
}

func (m *CartSessionMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		store := &cookieStore{w: w, r: r, secure: m.secure}
		manager := session.NewManager(store)

		stored, present := store.Get(session.StorageKey)
		token := manager.ObtainToken()

		switch {
		case !present:
			audit.LogFromRequest(r, audit.Event{
				Type:    audit.EventSessionCreate,
				Details: map[string]interface{}{"sessionHash": session.Hash(token)},
			})
		case token != stored:
			// A stored value failed format validation and was replaced.
			audit.LogFromRequest(r, audit.Event{
				Type:    audit.EventSessionRegenerate,
				Details: map[string]interface{}{"sessionHash": session.Hash(token)},
			})
		}

		ctx := context.WithValue(r.Context(), CartTokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// cookieStore adapts one request/response pair to the session.Store
// shape: the shopper's cookie jar is the durable client-side storage.
type cookieStore struct {
	w      http.ResponseWriter
	r      *http.Request
	secure bool
}

func (s *cookieStore) Get(key string) (string, bool) {
	cookie, err := s.r.Cookie(key)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (s *cookieStore) Set(key, value string) {
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(CartSessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *cookieStore) Remove(key string) {
	http.SetCookie(s.w, &http.Cookie{
		Name:   key,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
