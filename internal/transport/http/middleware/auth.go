package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	apierrors "github.com/short5/feed-service/internal/errors"
)

type viewerKey struct{}
type sessionKey struct{}

// ViewerIdentity извлекает личность зрителя из запроса:
//   - Authorization: Bearer <jwt> — проверяет подпись (HS256) и кладёт
//     uuid из claim sub в контекст; выпуск токенов — забота auth-сервиса,
//     здесь только проверка;
//   - X-Session-Id — анонимная сессия, uuid в контекст как есть.
//
// Запрос без токена — валидный анонимный просмотр. Запрос с битым или
// просроченным токеном отклоняется (401): молча разжаловать зрителя в
// анонимы значило бы отдать ему чужой по составу фид.
func ViewerIdentity(jwtSecret string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if sid := r.Header.Get("X-Session-Id"); sid != "" {
				if sessionID, err := uuid.Parse(strings.TrimSpace(sid)); err == nil {
					ctx = context.WithValue(ctx, sessionKey{}, sessionID)
				}
			}

			auth := r.Header.Get("Authorization")
			if auth == "" {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) || len(auth) == len(prefix) {
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}

			viewerID, err := parseViewer(strings.TrimSpace(auth[len(prefix):]), jwtSecret)
			if err != nil {
				apierrors.WriteError(w, r, apierrors.ErrUnauthenticated)
				return
			}

			ctx = context.WithValue(ctx, viewerKey{}, viewerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// parseViewer проверяет подпись токена и достаёт uuid зрителя из sub.
func parseViewer(token, secret string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(token,
		func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parse token: %w", err)
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("subject claim: %w", err)
	}

	viewerID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("subject is not uuid: %w", err)
	}

	return viewerID, nil
}

// ViewerFrom возвращает идентификатор аутентифицированного зрителя
// (nil — анонимный просмотр).
func ViewerFrom(ctx context.Context) *uuid.UUID {
	if v, ok := ctx.Value(viewerKey{}).(uuid.UUID); ok {
		return &v
	}
	return nil
}

// SessionFrom возвращает идентификатор анонимной сессии (nil — нет).
func SessionFrom(ctx context.Context) *uuid.UUID {
	if v, ok := ctx.Value(sessionKey{}).(uuid.UUID); ok {
		return &v
	}
	return nil
}
