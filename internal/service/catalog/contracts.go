package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
)

// DocumentStore хранилище документов каталога
type DocumentStore interface {
	Apply(ctx context.Context, batch *document.Batch) error
	Load(ctx context.Context, kind string) ([]document.Document, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
