// http собирает REST-роутер feed-service.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/short5/feed-service/internal/transport/http/handlers"
	"github.com/short5/feed-service/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger    *slog.Logger
	Timeout   time.Duration
	JWTSecret string
	BasePath  string // например, "/api/v1"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc handlers.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),                      // безопасно ловим паники
		middleware.RequestID(),                    // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger),           // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),                      // счётчики/гистограммы по шаблону маршрута
		middleware.ViewerIdentity(opts.JWTSecret), // зритель из bearer-токена, сессия из заголовка
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// feed
	r.Get("/feed", h.GetFeed)

	// videos
	r.Get("/videos/{id}", h.GetVideoByID)
	r.Post("/videos/{id}/vote", h.VoteOnVideo)
	r.Post("/videos/{id}/view", h.RecordView)
}
