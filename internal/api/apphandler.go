package api

import (
	"net/http"

	"github.com/trsv-dev/web-media-server/internal/api/content_handler"
	"github.com/trsv-dev/web-media-server/internal/api/response"
	"github.com/trsv-dev/web-media-server/internal/contextkeys"
	"github.com/trsv-dev/web-media-server/internal/logger"
	"github.com/trsv-dev/web-media-server/internal/route"
)

// AppHandler Точка входа для всех запросов: разбирает путь, выбирает ровно один хендлер
// по типу маршрута и пишет его ответ.
type AppHandler struct {
	content *content_handler.ContentHandler
}

// NewAppHandler Конструктор AppHandler.
func NewAppHandler(content *content_handler.ContentHandler) *AppHandler {
	return &AppHandler{content: content}
}

func (a *AppHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := route.Classify(r)
	res := a.dispatch(req)

	requestID, _ := r.Context().Value(contextkeys.RequestID).(string)

	logger.Log.Debug("Запрос обработан",
		logger.String("request_id", requestID),
		logger.String("route", req.Kind.String()),
		logger.String("path", req.Path),
		logger.Int("status", res.Status))

	if err := response.Write(w, res); err != nil {
		logger.Log.Warn("Ошибка записи ответа",
			logger.String("request_id", requestID),
			logger.String("path", req.Path),
			logger.String("err", err.Error()))
	}
}

func (a *AppHandler) dispatch(req route.Request) response.Result {
	switch req.Kind {
	case route.Default:
		return a.content.Default(req)
	case route.Assets:
		return a.content.Assets(req)
	case route.Media:
		return a.content.Media(req)
	default:
		return a.content.NotFound(req)
	}
}
