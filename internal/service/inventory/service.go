package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
)

// Service складской учет салона
type Service struct {
	mu           sync.RWMutex
	store        DocumentStore
	timeProvider TimeProvider
	logger       Logger
	items        map[string]*domain.InventoryItem
}

// NewService создает новый экземпляр сервиса склада
func NewService(store DocumentStore, logger Logger) *Service {
	return &Service{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		items:        make(map[string]*domain.InventoryItem),
	}
}

// SetTimeProvider подменяет источник времени
func (s *Service) SetTimeProvider(tp TimeProvider) {
	s.timeProvider = tp
}

// Restore загружает позиции из хранилища
func (s *Service) Restore(ctx context.Context) error {
	docs, err := s.store.Load(ctx, domain.KindInventory)
	if err != nil {
		return fmt.Errorf("%w: Restore - load items: %v", ErrInternal, err)
	}
	items, err := document.Decode[domain.InventoryItem](docs)
	if err != nil {
		return fmt.Errorf("%w: Restore - decode items: %v", ErrInternal, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range items {
		item := items[i]
		s.items[item.ID] = &item
	}

	s.logger.Info("Restore: loaded %d inventory items", len(items))
	return nil
}

// Add добавляет позицию
func (s *Service) Add(ctx context.Context, input ItemInput) (*domain.InventoryItem, error) {
	item := &domain.InventoryItem{
		ID:              uuid.NewString(),
		Name:            strings.TrimSpace(input.Name),
		Category:        strings.TrimSpace(input.Category),
		CurrentQuantity: input.CurrentQuantity,
		IdealQuantity:   input.IdealQuantity,
		Price:           input.Price,
		LowStockAlert:   input.LowStockAlert,
		Supplier:        input.Supplier,
		ImageURL:        input.ImageURL,
		LastRestocked:   s.today(),
	}
	if err := validateItem(item); err != nil {
		s.logger.Warn("Add: validation failed: %v", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(ctx, "Add", item); err != nil {
		return nil, err
	}

	s.items[item.ID] = item
	s.logger.Info("Add: item id=%s name=%s quantity=%d", item.ID, item.Name, item.CurrentQuantity)

	result := *item
	return &result, nil
}

// Update частично обновляет позицию
func (s *Service) Update(ctx context.Context, id string, patch ItemPatch) (*domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}

	updated := *current
	applyPatch(&updated, patch)
	if err := validateItem(&updated); err != nil {
		s.logger.Warn("Update: validation failed for item id=%s: %v", id, err)
		return nil, err
	}

	if err := s.save(ctx, "Update", &updated); err != nil {
		return nil, err
	}

	s.items[id] = &updated
	s.logger.Info("Update: item id=%s updated", id)

	result := updated
	return &result, nil
}

// Restock увеличивает остаток и отмечает дату пополнения
func (s *Service) Restock(ctx context.Context, id string, quantity int) (*domain.InventoryItem, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("%w: restock quantity must be positive", ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}

	updated := *current
	updated.CurrentQuantity += quantity
	updated.LastRestocked = s.today()

	if err := s.save(ctx, "Restock", &updated); err != nil {
		return nil, err
	}

	s.items[id] = &updated
	s.logger.Info("Restock: item id=%s +%d, now %d", id, quantity, updated.CurrentQuantity)

	result := updated
	return &result, nil
}

// Delete удаляет позицию
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrItemNotFound
	}

	batch := document.NewBatch()
	batch.Delete(domain.KindInventory, id)
	if err := s.store.Apply(ctx, batch); err != nil {
		s.logger.Error("Delete: failed to persist item id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - apply batch: %v", ErrInternal, err)
	}

	delete(s.items, id)
	s.logger.Info("Delete: item id=%s deleted", id)
	return nil
}

// Get возвращает позицию по id
func (s *Service) Get(id string) (*domain.InventoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	result := *item
	return &result, nil
}

// List возвращает все позиции
func (s *Service) List() []domain.InventoryItem {
	return s.filter(func(*domain.InventoryItem) bool { return true })
}

// ByCategory возвращает позиции категории
func (s *Service) ByCategory(category string) []domain.InventoryItem {
	return s.filter(func(item *domain.InventoryItem) bool { return strings.EqualFold(item.Category, category) })
}

// LowStock возвращает позиции, остаток которых не выше порога
func (s *Service) LowStock() []domain.InventoryItem {
	return s.filter(func(item *domain.InventoryItem) bool { return item.IsLowStock() })
}

func (s *Service) today() string {
	return s.timeProvider.Now().UTC().Format(domain.DateFormat)
}

func (s *Service) filter(match func(*domain.InventoryItem) bool) []domain.InventoryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.InventoryItem, 0)
	for _, item := range s.items {
		if match(item) {
			result = append(result, *item)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Category != result[j].Category {
			return result[i].Category < result[j].Category
		}
		return result[i].Name < result[j].Name
	})
	return result
}

// save вызывается под s.mu
func (s *Service) save(ctx context.Context, op string, item *domain.InventoryItem) error {
	batch := document.NewBatch()
	if err := batch.Put(domain.KindInventory, item.ID, item); err != nil {
		return fmt.Errorf("%w: %s - %v", ErrInternal, op, err)
	}
	if err := s.store.Apply(ctx, batch); err != nil {
		s.logger.Error("%s: failed to persist item id=%s: %v", op, item.ID, err)
		return fmt.Errorf("%w: %s - apply batch: %v", ErrInternal, op, err)
	}
	return nil
}

func applyPatch(item *domain.InventoryItem, patch ItemPatch) {
	if patch.Name != nil {
		item.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Category != nil {
		item.Category = strings.TrimSpace(*patch.Category)
	}
	if patch.CurrentQuantity != nil {
		item.CurrentQuantity = *patch.CurrentQuantity
	}
	if patch.IdealQuantity != nil {
		item.IdealQuantity = *patch.IdealQuantity
	}
	if patch.Price != nil {
		item.Price = *patch.Price
	}
	if patch.LowStockAlert != nil {
		item.LowStockAlert = *patch.LowStockAlert
	}
	if patch.Supplier != nil {
		item.Supplier = *patch.Supplier
	}
	if patch.ImageURL != nil {
		item.ImageURL = *patch.ImageURL
	}
}
