package auth

import (
	"errors"
	"net/http"

	"laundry/internal/generated/dto"
	"laundry/internal/pkg/httpjson"
	"laundry/internal/pkg/identity"
	"laundry/pkg/logger"
)

const (
	msgUnauthorized = "로그인이 필요합니다."
	msgForbidden    = "관리자 권한이 필요합니다."
)

// Authenticate кладет пользователя в контекст, если пришел валидный bearer токен.
// Запрос без токена проходит анонимно, с невалидным токеном - 401.
func Authenticate(log handlerLogger, verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := identity.BearerToken(r.Header.Get("Authorization"))
			if errors.Is(err, identity.ErrMissingToken) {
				next.ServeHTTP(w, r)
				return
			}

			caller, err := verifier.Verify(raw)
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("rejected bearer token")
				httpjson.Error(w, log, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.WithCaller(r.Context(), caller)))
		})
	}
}

func RequireCaller(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := identity.CallerFrom(r.Context()); !ok {
				httpjson.Error(w, log, http.StatusUnauthorized, msgUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin пропускает только администраторов. В ответе 403 есть email и имя,
// по которым шла проверка.
func RequireAdmin(log handlerLogger, policy AdminPolicy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := identity.CallerFrom(r.Context())
			if !ok {
				httpjson.Error(w, log, http.StatusUnauthorized, msgUnauthorized)
				return
			}

			if !policy.IsAdmin(caller) {
				log.With(
					logger.NewField("user_id", caller.ID),
					logger.NewField("email", caller.Email),
					logger.NewField("path", r.URL.Path),
				).Warn("admin access denied")
				httpjson.Write(w, log, http.StatusForbidden, dto.ForbiddenResponse{
					Error: msgForbidden,
					Debug: dto.ForbiddenDebug{
						Email: &caller.Email,
						Name:  &caller.Name,
					},
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
