package document

import (
	"context"

	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

// Store хранилище JSON-документов, сгруппированных по виду (kind)
type Store interface {
	// Apply применяет все изменения пакета атомарно
	Apply(ctx context.Context, batch *Batch) error
	// Load возвращает все документы указанного вида
	Load(ctx context.Context, kind string) ([]Document, error)
}

// Переиспользуем интерфейсы из txmanager для работы с БД
type DBExecutor = txmanager.DBExecutor
type TxBeginner = txmanager.TxBeginner

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}
