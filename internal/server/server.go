package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/trsv-dev/web-media-server/internal/api"
	"github.com/trsv-dev/web-media-server/internal/config"
	"github.com/trsv-dev/web-media-server/internal/logger"
	"github.com/trsv-dev/web-media-server/internal/router"
)

// ReadHeaderTimeout Время на чтение заголовков запроса, после которого соединение закрывается.
const ReadHeaderTimeout = 10 * time.Second

// NewServer Создаёт сервер на адресе из конфигурации со всеми маршрутами приложения.
func NewServer(srvConfig *config.Config, handlers *api.HandlersContainer) *http.Server {
	return &http.Server{
		Addr:              srvConfig.ListenAddress(),
		Handler:           router.Router(handlers),
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

// RunServer Запускает сервер в горутине и возвращает сам сервер и канал ошибок.
// Канал закрывается после остановки сервера.
func RunServer(srvConfig *config.Config, handlers *api.HandlersContainer) (*http.Server, chan error) {
	server := NewServer(srvConfig, handlers)

	// канал ошибок сервера
	serverErrorCh := make(chan error, 1)

	go func() {
		defer close(serverErrorCh)

		logger.Log.Info("Сервер запущен",
			logger.String("address", server.Addr),
			logger.String("docroot", srvConfig.DocRoot))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("Ошибка сервера", logger.String("err", err.Error()))
			// отправляем ошибку в канал ошибок сервера
			serverErrorCh <- err
		}
	}()

	return server, serverErrorCh
}

// Shutdown Мягко останавливает сервер. Если ctx истёк раньше, чем завершились активные
// запросы, соединения закрываются принудительно.
func Shutdown(ctx context.Context, server *http.Server) error {
	err := server.Shutdown(ctx)
	if err == nil {
		return nil
	}

	logger.Log.Warn("Мягкая остановка сервера не завершилась, закрываем соединения",
		logger.String("err", err.Error()))

	if closeErr := server.Close(); closeErr != nil {
		return errors.Join(err, closeErr)
	}

	return err
}
