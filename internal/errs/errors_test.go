package errs

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrForbidden Проверяет текст ошибки и распознавание через errors.As.
func TestErrForbidden(t *testing.T) {
	err := fmt.Errorf("обёртка: %w", NewErrForbidden("/assets/"))

	var forbidden *ErrForbidden
	assert.True(t, errors.As(err, &forbidden))
	assert.Equal(t, "/assets/", forbidden.Path)
	assert.Contains(t, err.Error(), "/assets/")
}

// TestErrNotFound Проверяет Unwrap и ошибку по умолчанию.
func TestErrNotFound(t *testing.T) {
	tests := []struct {
		name    string
		cause   error
		wantErr error
	}{
		{
			name:    "с исходной ошибкой",
			cause:   fs.ErrNotExist,
			wantErr: fs.ErrNotExist,
		},
		{
			name:  "без исходной ошибки",
			cause: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewErrNotFound("missing.css", tt.cause)

			assert.NotNil(t, err.Unwrap())
			assert.Contains(t, err.Error(), "missing.css")

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}

			var notFound *ErrNotFound
			assert.True(t, errors.As(error(err), &notFound))
		})
	}
}
