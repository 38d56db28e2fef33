package assets

import "time"

// File Содержимое статического файла, полностью прочитанное в память.
type File struct {
	Name        string
	ContentType string
	Content     []byte
	ModTime     time.Time
}

// Resolver Интерфейс поиска статических файлов по сегментам пути.
type Resolver interface {
	Resolve(segments []string) (*File, error)
	Close() error
}
