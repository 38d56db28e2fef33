package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trsv-dev/web-media-server/internal/logger"
)

func init() {
	logger.InitLogger("error", "stdout")
}

// Подменяет osExit и возвращает канал с кодами завершения.
func stubExit(t *testing.T) <-chan int {
	t.Helper()

	codes := make(chan int, 1)
	osExit = func(code int) { codes <- code }
	t.Cleanup(func() { osExit = os.Exit })

	return codes
}

// Запускает forceExit в горутине и возвращает канал, закрываемый по её завершении.
func startForceExit(stop <-chan os.Signal, stopped <-chan struct{}, timeout time.Duration) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		forceExit(stop, stopped, timeout)
	}()

	return done
}

// TestForceExit Проверяет принудительное завершение при остановке приложения.
func TestForceExit(t *testing.T) {
	tests := []struct {
		name     string
		signal   bool
		stopped  bool
		timeout  time.Duration
		wantExit bool
	}{
		{
			name:     "повторный сигнал",
			signal:   true,
			timeout:  time.Hour,
			wantExit: true,
		},
		{
			name:     "таймаут остановки",
			timeout:  10 * time.Millisecond,
			wantExit: true,
		},
		{
			name:     "остановка завершилась вовремя",
			stopped:  true,
			timeout:  time.Hour,
			wantExit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes := stubExit(t)

			stop := make(chan os.Signal, 1)
			stopped := make(chan struct{})

			if tt.signal {
				stop <- os.Interrupt
			}
			if tt.stopped {
				close(stopped)
			}

			done := startForceExit(stop, stopped, tt.timeout)

			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatal("forceExit не завершился")
			}

			if tt.wantExit {
				select {
				case code := <-codes:
					assert.Equal(t, 1, code)
				default:
					t.Fatal("процесс не был завершён")
				}
				return
			}

			assert.Empty(t, codes)
		})
	}
}
