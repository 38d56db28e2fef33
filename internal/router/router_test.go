package router

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trsv-dev/web-media-server/internal/api"
	"github.com/trsv-dev/web-media-server/internal/assets"
	"github.com/trsv-dev/web-media-server/internal/logger"
)

func init() {
	logger.InitLogger("error", "stdout")
}

// Собирает роутер поверх временного корневого каталога.
func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()

	base := t.TempDir()
	docRoot := filepath.Join(base, "docroot")
	require.NoError(t, os.MkdirAll(filepath.Join(docRoot, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(docRoot, "styles.css"), []byte("body { margin: 0; }"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(docRoot, "css", "print.css"), []byte("@media print {}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(docRoot, "spartan.png"), []byte{0x89, 'P', 'N', 'G'}, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(base, "secret.txt"), []byte("secret"), 0o644))

	resolver, err := assets.NewFSResolver(docRoot)
	require.NoError(t, err)

	t.Cleanup(func() { resolver.Close() })

	return Router(api.NewHandlersContainer(resolver)), docRoot
}

// Поднимает тестовый сервер с роутером.
func newTestServer(t *testing.T) (*httptest.Server, string) {
	t.Helper()

	handler, docRoot := newTestRouter(t)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv, docRoot
}

func doRequest(t *testing.T, method, url string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp, body
}

// TestRouter Проверяет ответы сервера целиком, включая заголовки.
func TestRouter(t *testing.T) {
	srv, docRoot := newTestServer(t)

	styles, err := os.ReadFile(filepath.Join(docRoot, "styles.css"))
	require.NoError(t, err)

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantType   string
		wantBody   []byte
		contains   []string
	}{
		{
			name:       "styles.css",
			method:     http.MethodGet,
			path:       "/assets/styles.css",
			wantStatus: http.StatusOK,
			wantType:   "text/css; charset=utf-8",
			wantBody:   styles,
		},
		{
			name:       "вложенный файл",
			method:     http.MethodGet,
			path:       "/assets/css/print.css",
			wantStatus: http.StatusOK,
			wantType:   "text/css; charset=utf-8",
			wantBody:   []byte("@media print {}"),
		},
		{
			name:       "бинарный файл",
			method:     http.MethodGet,
			path:       "/assets/spartan.png",
			wantStatus: http.StatusOK,
			wantType:   "image/png",
			wantBody:   []byte{0x89, 'P', 'N', 'G'},
		},
		{
			name:       "пустой путь к статике",
			method:     http.MethodGet,
			path:       "/assets/",
			wantStatus: http.StatusForbidden,
			wantType:   "text/html",
			contains:   []string{"Forbidden"},
		},
		{
			name:       "каталог",
			method:     http.MethodGet,
			path:       "/assets/css/",
			wantStatus: http.StatusNotFound,
			wantType:   "text/html",
			contains:   []string{"Not Found"},
		},
		{
			name:       "выход за корень",
			method:     http.MethodGet,
			path:       "/assets/%2e%2e/secret.txt",
			wantStatus: http.StatusNotFound,
			wantType:   "text/html",
			contains:   []string{"Not Found"},
		},
		{
			name:       "корень",
			method:     http.MethodGet,
			path:       "/",
			wantStatus: http.StatusOK,
			wantType:   "text/html",
			contains:   []string{"DEFAULT"},
		},
		{
			name:       "медиа",
			method:     http.MethodPost,
			path:       "/media/anything",
			wantStatus: http.StatusOK,
			wantType:   "text/html",
			contains:   []string{"MEDIA"},
		},
		{
			name:       "неизвестный раздел",
			method:     http.MethodGet,
			path:       "/nope",
			wantStatus: http.StatusNotFound,
			wantType:   "text/html",
			contains:   []string{"Not Found", "/nope"},
		},
		{
			name:       "неизвестный метод",
			method:     "PURGE",
			path:       "/unknown/anything",
			wantStatus: http.StatusNotFound,
			wantType:   "text/html",
			contains:   []string{"Not Found", "/unknown/anything"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, tt.method, srv.URL+tt.path)

			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantType, resp.Header.Get("Content-Type"))
			assert.Equal(t, strconv.Itoa(len(body)), resp.Header.Get("Content-Length"))

			if tt.wantBody != nil {
				assert.Equal(t, tt.wantBody, body)
			}
			for _, want := range tt.contains {
				assert.Contains(t, string(body), want)
			}
		})
	}
}

// TestRouterStatusLine Проверяет что строка статуса содержит стандартную фразу.
func TestRouterStatusLine(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := doRequest(t, http.MethodGet, srv.URL+"/nope")

	assert.Equal(t, "404 Not Found", resp.Status)
}

// TestRouterLeadingSlashes Проверяет что лишние ведущие слэши не меняют выбор раздела.
func TestRouterLeadingSlashes(t *testing.T) {
	handler, docRoot := newTestRouter(t)

	styles, err := os.ReadFile(filepath.Join(docRoot, "styles.css"))
	require.NoError(t, err)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantType   string
		wantBody   string
	}{
		{
			name:       "статика",
			path:       "//assets/styles.css",
			wantStatus: http.StatusOK,
			wantType:   "text/css; charset=utf-8",
			wantBody:   string(styles),
		},
		{
			name:       "медиа",
			path:       "///media/x",
			wantStatus: http.StatusOK,
			wantType:   "text/html",
			wantBody:   "MEDIA",
		},
		{
			name:       "неизвестный раздел",
			path:       "//nope",
			wantStatus: http.StatusNotFound,
			wantType:   "text/html",
			wantBody:   "Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantType, w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}
