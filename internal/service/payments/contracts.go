package payments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
)

// DocumentStore хранилище документов платежей
type DocumentStore interface {
	Apply(ctx context.Context, batch *document.Batch) error
	Load(ctx context.Context, kind string) ([]document.Document, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
