package document

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

const tableName = "salon_documents"

const createTableQuery = `CREATE TABLE IF NOT EXISTS salon_documents (
	kind       TEXT        NOT NULL,
	id         TEXT        NOT NULL,
	body       JSONB       NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (kind, id)
)`

// Repository хранилище документов в PostgreSQL
type Repository struct {
	db        DBExecutor
	txManager TransactionManager
}

// NewRepository создает новый экземпляр репозитория документов
func NewRepository(db TxBeginner) *Repository {
	return &Repository{
		db:        db,
		txManager: txmanager.NewTransactionManager(db),
	}
}

// EnsureSchema создает таблицу документов, если ее нет
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("%w: EnsureSchema - create table: %v", ErrExecQuery, err)
	}
	return nil
}

// Apply применяет пакет изменений в одной сериализуемой транзакции.
// Если транзакция уже открыта в context, она переиспользуется.
func (r *Repository) Apply(ctx context.Context, batch *Batch) error {
	if batch.IsEmpty() {
		return nil
	}

	err := r.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		executor := txmanager.GetExecutor(ctx, r.db)

		for _, key := range batch.Deletes() {
			query, args, err := buildDeleteQuery(key)
			if err != nil {
				return fmt.Errorf("%w: Apply - build delete query: %v", ErrBuildQuery, err)
			}
			if _, err := executor.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: Apply - delete %s/%s: %v", ErrExecQuery, key.Kind, key.ID, err)
			}
		}

		for _, doc := range batch.Puts() {
			query, args, err := buildUpsertQuery(doc)
			if err != nil {
				return fmt.Errorf("%w: Apply - build upsert query: %v", ErrBuildQuery, err)
			}
			if _, err := executor.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: Apply - upsert %s/%s: %v", ErrExecQuery, doc.Kind, doc.ID, err)
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Apply - %v", ErrTransaction, err)
	}

	return nil
}

// Load возвращает все документы вида kind
func (r *Repository) Load(ctx context.Context, kind string) ([]Document, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := buildLoadQuery(kind)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Load - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		doc := Document{Kind: kind}
		var body []byte
		if err := rows.Scan(&doc.ID, &body); err != nil {
			return nil, fmt.Errorf("%w: Load - scan document: %v", ErrScanRow, err)
		}
		doc.Body = body
		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Load - rows iteration: %v", ErrScanRow, err)
	}

	return docs, nil
}

func buildUpsertQuery(doc Document) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns("kind", "id", "body", "updated_at").
		Values(doc.Kind, doc.ID, string(doc.Body), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (kind, id) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at").
		ToSql()
}

func buildDeleteQuery(key Key) (string, []interface{}, error) {
	return psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"kind": key.Kind, "id": key.ID}).
		ToSql()
}

func buildLoadQuery(kind string) (string, []interface{}, error) {
	return psqlbuilder.Select("id", "body").
		From(tableName).
		Where(squirrel.Eq{"kind": kind}).
		OrderBy("id").
		ToSql()
}
