package api

import (
	"github.com/trsv-dev/web-media-server/internal/api/content_handler"
	"github.com/trsv-dev/web-media-server/internal/assets"
)

// HandlersContainer Контейнер со всеми handlers приложения (и их зависимостями).
type HandlersContainer struct {
	ContentHandler *content_handler.ContentHandler
	AppHandler     *AppHandler
}

// NewHandlersContainer Конструктор контейнера с зависимостями.
func NewHandlersContainer(resolver assets.Resolver) *HandlersContainer {
	contentHandler := content_handler.NewContentHandler(resolver)
	appHandler := NewAppHandler(contentHandler)

	return &HandlersContainer{
		ContentHandler: contentHandler,
		AppHandler:     appHandler,
	}
}
