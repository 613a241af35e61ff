package document

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
)

// MemoryRepository хранилище документов в памяти процесса
type MemoryRepository struct {
	mu   sync.RWMutex
	docs map[string]map[string]json.RawMessage
}

// NewMemoryRepository создает пустое хранилище в памяти
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{docs: make(map[string]map[string]json.RawMessage)}
}

// Apply применяет пакет изменений под одной блокировкой
func (r *MemoryRepository) Apply(ctx context.Context, batch *Batch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if batch.IsEmpty() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, key := range batch.Deletes() {
		if byID, ok := r.docs[key.Kind]; ok {
			delete(byID, key.ID)
		}
	}
	for _, doc := range batch.Puts() {
		byID, ok := r.docs[doc.Kind]
		if !ok {
			byID = make(map[string]json.RawMessage)
			r.docs[doc.Kind] = byID
		}
		body := make(json.RawMessage, len(doc.Body))
		copy(body, doc.Body)
		byID[doc.ID] = body
	}

	return nil
}

// Load возвращает документы вида kind, отсортированные по id
func (r *MemoryRepository) Load(ctx context.Context, kind string) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	byID := r.docs[kind]
	docs := make([]Document, 0, len(byID))
	for id, body := range byID {
		docs = append(docs, Document{Kind: kind, ID: id, Body: body})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

	return docs, nil
}

// Count возвращает количество документов вида kind
func (r *MemoryRepository) Count(kind string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.docs[kind])
}
