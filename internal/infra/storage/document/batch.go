package document

import (
	"encoding/json"
	"fmt"
)

// Key адрес документа
type Key struct {
	Kind string
	ID   string
}

// Document сериализованный документ
type Document struct {
	Kind string
	ID   string
	Body json.RawMessage
}

// Batch набор изменений, применяемых одной операцией.
// Повторный Put или Delete того же ключа заменяет предыдущее изменение.
type Batch struct {
	order   []Key
	puts    map[Key]json.RawMessage
	deletes map[Key]struct{}
}

// NewBatch создает пустой пакет изменений
func NewBatch() *Batch {
	return &Batch{
		puts:    make(map[Key]json.RawMessage),
		deletes: make(map[Key]struct{}),
	}
}

// Put добавляет запись документа в пакет
func (b *Batch) Put(kind, id string, v interface{}) error {
	if kind == "" || id == "" {
		return fmt.Errorf("%w: Put - kind=%q id=%q", ErrInvalidKey, kind, id)
	}

	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: Put - kind=%s id=%s: %v", ErrEncode, kind, id, err)
	}

	key := Key{Kind: kind, ID: id}
	b.track(key)
	delete(b.deletes, key)
	b.puts[key] = body
	return nil
}

// Delete добавляет удаление документа в пакет
func (b *Batch) Delete(kind, id string) {
	key := Key{Kind: kind, ID: id}
	b.track(key)
	delete(b.puts, key)
	b.deletes[key] = struct{}{}
}

// Len возвращает количество затронутых ключей
func (b *Batch) Len() int {
	return len(b.order)
}

// IsEmpty возвращает true, если в пакете нет изменений
func (b *Batch) IsEmpty() bool {
	return b == nil || len(b.order) == 0
}

// Puts возвращает записываемые документы в порядке добавления
func (b *Batch) Puts() []Document {
	docs := make([]Document, 0, len(b.puts))
	for _, key := range b.order {
		if body, ok := b.puts[key]; ok {
			docs = append(docs, Document{Kind: key.Kind, ID: key.ID, Body: body})
		}
	}
	return docs
}

// Deletes возвращает удаляемые ключи в порядке добавления
func (b *Batch) Deletes() []Key {
	keys := make([]Key, 0, len(b.deletes))
	for _, key := range b.order {
		if _, ok := b.deletes[key]; ok {
			keys = append(keys, key)
		}
	}
	return keys
}

func (b *Batch) track(key Key) {
	if _, ok := b.puts[key]; ok {
		return
	}
	if _, ok := b.deletes[key]; ok {
		return
	}
	b.order = append(b.order, key)
}

// Decode десериализует документы в значения типа T
func Decode[T any](docs []Document) ([]T, error) {
	result := make([]T, 0, len(docs))
	for _, doc := range docs {
		var v T
		if err := json.Unmarshal(doc.Body, &v); err != nil {
			return nil, fmt.Errorf("%w: Decode - kind=%s id=%s: %v", ErrDecode, doc.Kind, doc.ID, err)
		}
		result = append(result, v)
	}
	return result, nil
}
