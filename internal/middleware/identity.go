package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-order-service/pkg/utils"
)

// Заголовки выставляет шлюз после проверки токена
const (
	UserIDHeader   = "X-User-ID"
	UserRoleHeader = "X-User-Role"

	adminRole = "admin"
)

type requesterKey struct{}

// Identity кладёт в контекст пользователя, от имени которого выполняется запрос.
// Запросы без идентификатора пользователя отклоняются с 401.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok := requesterFromHeaders(r)
		if !ok {
			utils.WriteError(w, "Not authorized, no token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithRequester(r.Context(), req)))
	})
}

func requesterFromHeaders(r *http.Request) (entities.Requester, bool) {
	userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if userID == "" {
		return entities.Requester{}, false
	}
	return entities.Requester{
		UserID:  userID,
		IsAdmin: strings.EqualFold(strings.TrimSpace(r.Header.Get(UserRoleHeader)), adminRole),
	}, true
}

func WithRequester(ctx context.Context, req entities.Requester) context.Context {
	return context.WithValue(ctx, requesterKey{}, req)
}

func RequesterFromContext(ctx context.Context) (entities.Requester, bool) {
	req, ok := ctx.Value(requesterKey{}).(entities.Requester)
	return req, ok
}
