// errors стандартизирует ответы об ошибках HTTP-слоя feed-service.
// На вход — ошибка бизнес-слоя, на выход:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Доменные промахи («нет кандидатов», пустая страница) ошибками не являются
// и сюда не попадают; отказ хранилища намеренно НЕ маскируется под пустую
// выдачу, а отдаётся как 503.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/short5/feed-service/internal/service"
)

// Нестандартный код, часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

var (
	// ErrUnauthenticated — битый/просроченный bearer-токен. Транспорт: 401.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInternal — паника/программная ошибка. Транспорт: 500.
	ErrInternal = errors.New("internal")
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку бизнес-слоя в HTTP-статус и унифицированный
// ответ для фронта.
//
// Поведение:
//   - err == nil — это программная ошибка вызова: возвращаем 500/internal,
//     чтобы не послать "200 OK" с телом ошибки и не маскировать баг;
//   - сентинелы сервиса маппятся явно (invalid argument -> 400, not found
//     -> 404, conflict -> 409);
//   - ошибки контекста — 499/504;
//   - всё прочее трактуется как отказ хранилища/инфраструктуры -> 503.
func ToHTTP(err error) (int, ErrorResponse) {
	switch {
	case err == nil:
		return response(http.StatusInternalServerError, "internal", "internal error")
	case errors.Is(err, service.ErrInvalidArgument):
		return response(http.StatusBadRequest, "invalid_argument", "invalid argument")
	case errors.Is(err, ErrUnauthenticated):
		return response(http.StatusUnauthorized, "unauthenticated", "unauthenticated")
	case errors.Is(err, service.ErrNotFound):
		return response(http.StatusNotFound, "not_found", "not found")
	case errors.Is(err, service.ErrConflict):
		return response(http.StatusConflict, "conflict", "conflict")
	case errors.Is(err, ErrInternal):
		return response(http.StatusInternalServerError, "internal", "internal error")
	case errors.Is(err, context.Canceled):
		return response(StatusClientClosedRequest, "canceled", "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return response(http.StatusGatewayTimeout, "deadline_exceeded", "deadline exceeded")
	default:
		return response(http.StatusServiceUnavailable, "unavailable", "service unavailable")
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func response(status int, code, msg string) (int, ErrorResponse) {
	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}
