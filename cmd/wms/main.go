package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/trsv-dev/web-media-server/internal/api"
	"github.com/trsv-dev/web-media-server/internal/assets"
	"github.com/trsv-dev/web-media-server/internal/config"
	"github.com/trsv-dev/web-media-server/internal/logger"
	"github.com/trsv-dev/web-media-server/internal/server"
)

// подменяется в тестах
var osExit = os.Exit

// "Сборка" и запуск проекта.
func main() {
	os.Exit(run())
}

func run() (code int) {
	// recover для логирования паник в main
	defer func() {
		if r := recover(); r != nil {
			log.Println("Паника в main:", fmt.Sprintf("%v", r))
			code = 1
		}
	}()

	// загружаем переменные окружения из .env для локальной разработки
	if errEnv := godotenv.Load(); errEnv != nil && !errors.Is(errEnv, os.ErrNotExist) {
		log.Println("Не удалось загрузить .env:", errEnv)
	}

	// инициализация конфигурации сервера
	srvConfig, err := config.Load(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		log.Println("Ошибка конфигурации:", err)
		return 2
	}

	// инициализация логгера с уровнем логирования из конфигурации
	logger.InitLogger(srvConfig.LogLevel, srvConfig.LogOutput)
	// отложенное закрытие ресурса (актуально если используется файл для логирования)
	defer logger.Close()

	resolver, err := assets.NewFSResolver(srvConfig.DocRoot)
	if err != nil {
		logger.Log.Error("Не удалось открыть корневой каталог", logger.String("err", err.Error()))
		return 1
	}

	handlersContainer := api.NewHandlersContainer(resolver)

	srv, serverErrorCh := server.RunServer(srvConfig, handlersContainer)

	// канал системных сигналов
	stop := make(chan os.Signal, 2)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	exitCode := 0

	// блокируемся тут в ожидании одного из вариантов завершения работы сервера
	select {
	case err, ok := <-serverErrorCh:
		if !ok {
			logger.Log.Info("Канал ошибок сервера закрыт")
			return 0
		}
		logger.Log.Error("Ошибка сервера", logger.String("err", err.Error()))
		exitCode = 1
	case sig := <-stop:
		logger.Log.Info("Получен сигнал остановки приложения", logger.String("sig", sig.String()))
	}

	logger.Log.Info("Начало процедуры остановки приложения...")

	// повторный сигнал или зависшая остановка завершают процесс немедленно
	stopped := make(chan struct{})
	defer close(stopped)
	go forceExit(stop, stopped, srvConfig.ShutdownTimeout+time.Second)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), srvConfig.ShutdownTimeout)
	defer shutdownCancel()

	if err = server.Shutdown(shutdownCtx, srv); err != nil {
		logger.Log.Error("Ошибка остановки сервера", logger.String("err", err.Error()))
		exitCode = 1
	} else {
		logger.Log.Info("Сервер остановлен")
	}

	if err = resolver.Close(); err != nil {
		logger.Log.Warn("Ошибка закрытия корневого каталога", logger.String("err", err.Error()))
	}

	logger.Log.Info("Приложение завершено")

	return exitCode
}

// Завершает процесс, если остановка не уложилась в timeout или пришёл повторный сигнал.
func forceExit(stop <-chan os.Signal, stopped <-chan struct{}, timeout time.Duration) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-stopped:
		return
	case sig := <-stop:
		logger.Log.Warn("Повторный сигнал, принудительное завершение", logger.String("sig", sig.String()))
	case <-timer.C:
		logger.Log.Warn("Таймаут остановки, принудительное завершение")
	}

	_ = logger.Close()
	osExit(1)
}
