package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/trsv-dev/web-media-server/internal/contextkeys"
	"github.com/trsv-dev/web-media-server/internal/logger"
)

// Структура для хранения данных ответа.
type responseData struct {
	status int
	size   int
}

// LoggingResponseWriter Структура, которой можно подменить оригинальный http.ResponseWriter
// для получения ответа и записи ответа в лог.
type LoggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (l *LoggingResponseWriter) Write(b []byte) (int, error) {
	// статус не выставлен явно - net/http отдаст 200
	if l.responseData.status == 0 {
		l.responseData.status = http.StatusOK
	}

	size, err := l.ResponseWriter.Write(b)
	l.responseData.size += size

	return size, err
}

func (l *LoggingResponseWriter) WriteHeader(statusCode int) {
	l.ResponseWriter.WriteHeader(statusCode)
	l.responseData.status = statusCode
}

// Flush Пробрасывает Flush, если оригинальный writer его поддерживает.
func (l *LoggingResponseWriter) Flush() {
	if f, ok := l.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

// LogMiddleware Middleware для логирования всех запросов. Каждому запросу присваивается
// идентификатор, доступный хендлерам через contextkeys.RequestID.
func LogMiddleware(h http.Handler) http.Handler {
	f := func(w http.ResponseWriter, r *http.Request) {
		data := responseData{
			status: 0,
			size:   0,
		}

		lw := LoggingResponseWriter{
			ResponseWriter: w,
			responseData:   &data,
		}

		requestID := uuid.NewString()
		r = r.WithContext(context.WithValue(r.Context(), contextkeys.RequestID, requestID))

		start := time.Now()
		h.ServeHTTP(&lw, r)
		duration := time.Since(start)

		logger.Log.Debug("Got incoming HTTP request",
			logger.String("request_id", requestID),
			logger.String("uri", r.RequestURI),
			logger.String("method", r.Method),
			logger.Int("status", data.status),
			logger.Duration("duration", duration),
			logger.Int("size", data.size),
			logger.String("remote_addr", r.RemoteAddr),
		)
	}

	return http.HandlerFunc(f)
}
