package catalog

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

// Service каталог услуг салона
type Service struct {
	mu       sync.RWMutex
	store    DocumentStore
	logger   Logger
	services map[string]*domain.Service
}

// NewService создает новый экземпляр каталога
func NewService(store DocumentStore, logger Logger) *Service {
	return &Service{
		store:    store,
		logger:   logger,
		services: make(map[string]*domain.Service),
	}
}

// Restore загружает каталог из хранилища
func (s *Service) Restore(ctx context.Context) error {
	docs, err := s.store.Load(ctx, domain.KindService)
	if err != nil {
		return fmt.Errorf("%w: Restore - load services: %v", ErrInternal, err)
	}
	services, err := document.Decode[domain.Service](docs)
	if err != nil {
		return fmt.Errorf("%w: Restore - decode services: %v", ErrInternal, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range services {
		service := services[i]
		s.services[service.ID] = &service
	}

	s.logger.Info("Restore: loaded %d services", len(services))
	return nil
}

// Seed заполняет пустой каталог указанными услугами
func (s *Service) Seed(ctx context.Context, inputs []ServiceInput) error {
	s.mu.RLock()
	empty := len(s.services) == 0
	s.mu.RUnlock()

	if !empty {
		return nil
	}

	for _, input := range inputs {
		if _, err := s.Create(ctx, input); err != nil {
			return err
		}
	}

	s.logger.Info("Seed: catalog seeded with %d services", len(inputs))
	return nil
}

// Create создает новую услугу
func (s *Service) Create(ctx context.Context, input ServiceInput) (*domain.Service, error) {
	service := &domain.Service{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Duration:    input.Duration,
		Price:       input.Price,
		Category:    strings.TrimSpace(input.Category),
	}
	if err := validateService(service); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(ctx, "Create", service); err != nil {
		return nil, err
	}

	s.services[service.ID] = service
	s.logger.Info("Create: created service id=%s name=%s", service.ID, service.Name)

	result := *service
	return &result, nil
}

// Update частично обновляет услугу
func (s *Service) Update(ctx context.Context, id string, patch ServicePatch) (*domain.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.services[id]
	if !ok {
		s.logger.Warn("Update: service id=%s not found", id)
		return nil, ErrServiceNotFound
	}

	updated := *current
	if patch.Name != nil {
		updated.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Duration != nil {
		updated.Duration = *patch.Duration
	}
	if patch.Price != nil {
		updated.Price = *patch.Price
	}
	if patch.Category != nil {
		updated.Category = strings.TrimSpace(*patch.Category)
	}

	if err := validateService(&updated); err != nil {
		s.logger.Warn("Update: validation failed for service id=%s: %v", id, err)
		return nil, err
	}

	if err := s.save(ctx, "Update", &updated); err != nil {
		return nil, err
	}

	s.services[id] = &updated
	s.logger.Info("Update: updated service id=%s", id)

	result := updated
	return &result, nil
}

// Delete удаляет услугу
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.services[id]; !ok {
		s.logger.Warn("Delete: service id=%s not found", id)
		return ErrServiceNotFound
	}

	batch := document.NewBatch()
	batch.Delete(domain.KindService, id)
	if err := s.store.Apply(ctx, batch); err != nil {
		s.logger.Error("Delete: failed to persist service id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - apply batch: %v", ErrInternal, err)
	}

	delete(s.services, id)
	s.logger.Info("Delete: deleted service id=%s", id)
	return nil
}

// GetService возвращает услугу по id
func (s *Service) GetService(_ context.Context, id string) (*domain.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	service, ok := s.services[id]
	if !ok {
		return nil, ErrServiceNotFound
	}

	result := *service
	return &result, nil
}

// List возвращает все услуги, упорядоченные по категории и названию
func (s *Service) List(_ context.Context) []domain.Service {
	return s.filter(func(*domain.Service) bool { return true })
}

// ListByCategory возвращает услуги категории
func (s *Service) ListByCategory(_ context.Context, category string) []domain.Service {
	return s.filter(func(service *domain.Service) bool {
		return strings.EqualFold(service.Category, category)
	})
}

func (s *Service) filter(match func(*domain.Service) bool) []domain.Service {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Service, 0, len(s.services))
	for _, service := range s.services {
		if match(service) {
			result = append(result, *service)
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
func (s *Service) save(ctx context.Context, op string, service *domain.Service) error {
	batch := document.NewBatch()
	if err := batch.Put(domain.KindService, service.ID, service); err != nil {
		return fmt.Errorf("%w: %s - %v", ErrInternal, op, err)
	}
	if err := s.store.Apply(ctx, batch); err != nil {
		s.logger.Error("%s: failed to persist service id=%s: %v", op, service.ID, err)
		return fmt.Errorf("%w: %s - apply batch: %v", ErrInternal, op, err)
	}
	return nil
}
