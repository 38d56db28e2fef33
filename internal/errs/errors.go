package errs

import (
	"errors"
	"fmt"
)

// ErrForbidden Кастомная ошибка, сообщающая о запросе ресурса без указания пути (например, `/assets/`).
type ErrForbidden struct {
	Path string
}

func (f *ErrForbidden) Error() string {
	return fmt.Sprintf("Доступ к `%s` запрещён", f.Path)
}

func NewErrForbidden(path string) *ErrForbidden {
	return &ErrForbidden{
		Path: path,
	}
}

// ErrNotFound Кастомная ошибка, сообщающая о том, что файл не найден, не является обычным файлом
// или находится за пределами корневого каталога.
type ErrNotFound struct {
	Path string
	Err  error
}

func (nf *ErrNotFound) Error() string {
	return fmt.Sprintf("Файл `%s` не найден. Ошибка: %v", nf.Path, nf.Err)
}

func (nf *ErrNotFound) Unwrap() error {
	return nf.Err
}

func NewErrNotFound(path string, err error) *ErrNotFound {
	if err == nil {
		err = errors.New("не является обычным файлом")
	}

	return &ErrNotFound{
		Path: path,
		Err:  err,
	}
}
