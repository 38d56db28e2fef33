package assets

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/trsv-dev/web-media-server/internal/errs"
)

// DefaultContentType Тип содержимого для файлов с неизвестным расширением.
const DefaultContentType = "application/octet-stream"

// медиа-типы, которых нет во встроенной таблице Go
var extraTypes = map[string]string{
	".flac": "audio/flac",
	".ico":  "image/x-icon",
	".m4a":  "audio/mp4",
	".mkv":  "video/x-matroska",
	".mp3":  "audio/mpeg",
	".mp4":  "video/mp4",
	".ogg":  "audio/ogg",
	".wasm": "application/wasm",
	".webm": "video/webm",
}

var registerOnce sync.Once

func registerTypes() {
	registerOnce.Do(func() {
		for ext, typ := range extraTypes {
			_ = mime.AddExtensionType(ext, typ)
		}
	})
}

// FSResolver Отдаёт файлы из корневого каталога. Доступ за пределы каталога
// (через `..` или символические ссылки) невозможен, такие пути считаются ненайденными.
type FSResolver struct {
	root *os.Root
}

// NewFSResolver Открывает корневой каталог для раздачи статики.
func NewFSResolver(docRoot string) (*FSResolver, error) {
	registerTypes()

	root, err := os.OpenRoot(docRoot)
	if err != nil {
		return nil, fmt.Errorf("не удалось открыть корневой каталог `%s`: %w", docRoot, err)
	}

	return &FSResolver{root: root}, nil
}

// Resolve Ищет файл по сегментам пути, оставшимся после ключа маршрута.
// Пустой путь даёт errs.ErrForbidden, отсутствующий или не обычный файл errs.ErrNotFound.
func (f *FSResolver) Resolve(segments []string) (*File, error) {
	if isEmpty(segments) {
		return nil, errs.NewErrForbidden(strings.Join(segments, "/"))
	}

	name := filepath.Join(segments...)

	info, err := f.root.Stat(name)
	if err != nil {
		return nil, errs.NewErrNotFound(name, err)
	}

	// заодно не даём получить листинг каталога
	if !info.Mode().IsRegular() {
		return nil, errs.NewErrNotFound(name, nil)
	}

	file, err := f.root.Open(name)
	if err != nil {
		return nil, errs.NewErrNotFound(name, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла `%s`: %w", name, err)
	}

	return &File{
		Name:        name,
		ContentType: ContentType(name),
		Content:     content,
		ModTime:     info.ModTime(),
	}, nil
}

// Close Освобождает дескриптор корневого каталога.
func (f *FSResolver) Close() error {
	return f.root.Close()
}

// ContentType Определяет тип содержимого по расширению файла.
func ContentType(name string) string {
	registerTypes()

	if ctype := mime.TypeByExtension(filepath.Ext(name)); ctype != "" {
		return ctype
	}

	return DefaultContentType
}

func isEmpty(segments []string) bool {
	for _, s := range segments {
		if s != "" {
			return false
		}
	}

	return true
}
