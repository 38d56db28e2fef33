package router

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/trsv-dev/web-media-server/internal/api"
	"github.com/trsv-dev/web-media-server/internal/middleware"
)

// Router Роутер. Все пути и методы уходят в AppHandler, который сам выбирает хендлер
// по первому сегменту пути.
func Router(h *api.HandlersContainer) chi.Router {
	router := chi.NewRouter()

	// middleware логгера всех запросов
	router.Use(middleware.LogMiddleware)
	// паника в хендлере превращается в 500 вместо обрыва соединения
	router.Use(chimiddleware.Recoverer)

	router.Handle("/", h.AppHandler)
	router.Handle("/*", h.AppHandler)

	// на случай путей, которые chi не сопоставил с маршрутами выше
	router.NotFound(h.AppHandler.ServeHTTP)
	router.MethodNotAllowed(h.AppHandler.ServeHTTP)

	return router
}
