package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Заголовки сессии, которые выставляет шлюз
const (
	HeaderUserID   = "X-User-ID"
	HeaderUserName = "X-User-Name"
	HeaderUserRole = "X-User-Role"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidRole   = "некорректная роль пользователя"
	msgAdminOnly     = "доступ только для администратора"
)

type contextKey int

const userKey contextKey = iota

// User пользователь текущей сессии
type User struct {
	ID   string
	Name string
	Role string
}

// IsAdmin возвращает true для роли администратора
func (u User) IsAdmin() bool {
	return u.Role == domain.RoleAdmin
}

// Auth извлекает пользователя из заголовков сессии и кладет его в контекст.
// Без X-User-ID запрос отклоняется с 401. Роль по умолчанию client.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		role := strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderUserRole)))
		if role == "" {
			role = domain.RoleClient
		}
		if !isKnownRole(role) {
			handlers.RespondForbidden(w, msgInvalidRole)
			return
		}

		user := User{
			ID:   userID,
			Name: strings.TrimSpace(r.Header.Get(HeaderUserName)),
			Role: role,
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

// AdminOnly пропускает только администраторов. Должен стоять после Auth.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}
		if !user.IsAdmin() {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// WithUser кладет пользователя в контекст
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUser достает пользователя из контекста
func GetUser(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userKey).(User)
	return user, ok
}

// GetUserID достает ID пользователя из контекста
func GetUserID(ctx context.Context) (string, bool) {
	user, ok := GetUser(ctx)
	if !ok {
		return "", false
	}
	return user.ID, true
}

func isKnownRole(role string) bool {
	switch role {
	case domain.RoleAdmin, domain.RoleStaff, domain.RoleClient:
		return true
	default:
		return false
	}
}
