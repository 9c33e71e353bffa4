// Package middleware содержит HTTP middleware сервиса
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/fiestaspark/FP-ReservationService/internal/api/handlers"
)

const (
	msgMissingToken = "se requiere autenticación"
	msgInvalidToken = "token inválido o expirado"
	msgStaffOnly    = "acceso restringido al personal"
)

// RoleStaff роль персонала в claims токена
const RoleStaff = "staff"

// Session данные аутентифицированного клиента из JWT
type Session struct {
	UserID int64
	Role   string
}

type ctxKey struct{}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// GetSession извлекает сессию из контекста запроса
func GetSession(ctx context.Context) (Session, bool) {
	session, ok := ctx.Value(ctxKey{}).(Session)
	return session, ok
}

// Auth проверяет Bearer JWT (HS256) и кладет сессию в контекст запроса
func Auth(secret string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				logger.Warn("%s %s - Unexpected claims type", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			userID, ok := claims["user_id"].(float64)
			if !ok || userID <= 0 {
				logger.Warn("%s %s - Token has no valid user_id claim", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			role, _ := claims["role"].(string)

			session := Session{
				UserID: int64(userID),
				Role:   role,
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireStaff пропускает только аутентифицированный персонал.
// Должен стоять после Auth.
func RequireStaff(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, ok := GetSession(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if session.Role != RoleStaff {
				logger.Warn("%s %s - User %d is not staff", r.Method, r.URL.Path, session.UserID)
				handlers.RespondForbidden(w, msgStaffOnly)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
