package content_handler

import (
	"errors"
	"net/http"

	"github.com/trsv-dev/web-media-server/internal/api/response"
	"github.com/trsv-dev/web-media-server/internal/assets"
	"github.com/trsv-dev/web-media-server/internal/errs"
	"github.com/trsv-dev/web-media-server/internal/logger"
	"github.com/trsv-dev/web-media-server/internal/page"
	"github.com/trsv-dev/web-media-server/internal/route"
)

// ContentHandler Хендлеры разделов: статика, медиа, страница по умолчанию и "не найдено".
type ContentHandler struct {
	resolver assets.Resolver
}

// NewContentHandler Конструктор ContentHandler.
func NewContentHandler(resolver assets.Resolver) *ContentHandler {
	return &ContentHandler{resolver: resolver}
}

// Assets Отдаёт статический файл из корневого каталога.
// 403 при пустом пути, 404 если файла нет, 500 при ошибке чтения.
func (h *ContentHandler) Assets(req route.Request) response.Result {
	file, err := h.resolver.Resolve(req.Rest)
	if err != nil {
		var (
			forbidden *errs.ErrForbidden
			notFound  *errs.ErrNotFound
		)

		switch {
		case errors.As(err, &forbidden):
			return errorPage(http.StatusForbidden, req.Path)
		case errors.As(err, &notFound):
			logger.Log.Debug("Файл не найден",
				logger.String("path", req.Path),
				logger.String("err", err.Error()))
			return errorPage(http.StatusNotFound, req.Path)
		default:
			logger.Log.Error("Ошибка получения файла",
				logger.String("path", req.Path),
				logger.String("err", err.Error()))
			return errorPage(http.StatusInternalServerError, req.Path)
		}
	}

	return response.Bytes(http.StatusOK, file.ContentType, file.Content)
}

// Media Заглушка раздела медиа.
func (h *ContentHandler) Media(req route.Request) response.Result {
	return response.HTML(http.StatusOK, page.Placeholder(page.MediaName))
}

// Default Заглушка главной страницы.
func (h *ContentHandler) Default(req route.Request) response.Result {
	return response.HTML(http.StatusOK, page.Placeholder(page.DefaultName))
}

// NotFound Страница "Not Found" для неизвестных разделов.
func (h *ContentHandler) NotFound(req route.Request) response.Result {
	return errorPage(http.StatusNotFound, req.Path)
}

// Страница ошибки с заголовком по коду статуса и путём запроса в подзаголовке.
func errorPage(status int, path string) response.Result {
	return response.HTML(status, page.Error(http.StatusText(status), path, nil))
}
