package equipment

import (
	"context"

	"github.com/avdeevra/equiprent/internal/domain"
	"github.com/avdeevra/equiprent/internal/repository"
)

type EquipmentUseCase interface {
	List(ctx context.Context) ([]domain.Equipment, error)
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	Create(ctx context.Context, equipment *domain.Equipment) error
	Update(ctx context.Context, id int64, patch domain.EquipmentPatch) (*domain.Equipment, error)
	Delete(ctx context.Context, id int64) error
}

type Cache interface {
	GetEquipment(ctx context.Context) ([]domain.Equipment, error)
	SetEquipment(ctx context.Context, equipment []domain.Equipment) error
	InvalidateEquipment(ctx context.Context) error
}

type EquipmentService struct {
	repo  repository.EquipmentRepository
	cache Cache
}

func NewEquipmentService(repo repository.EquipmentRepository, cache Cache) *EquipmentService {
	return &EquipmentService{repo: repo, cache: cache}
}

func (s *EquipmentService) List(ctx context.Context) ([]domain.Equipment, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetEquipment(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	equipment, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.SetEquipment(ctx, equipment)
	}
	return equipment, nil
}

func (s *EquipmentService) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EquipmentService) Create(ctx context.Context, equipment *domain.Equipment) error {
	if err := s.repo.Create(ctx, equipment); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *EquipmentService) Update(ctx context.Context, id int64, patch domain.EquipmentPatch) (*domain.Equipment, error) {
	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *EquipmentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *EquipmentService) invalidate(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateEquipment(ctx)
	}
}

var _ EquipmentUseCase = (*EquipmentService)(nil)
