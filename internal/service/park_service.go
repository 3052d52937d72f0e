package service

import (
	"context"

	"github.com/madouyatt95/laserpark/internal/dto"
	"github.com/madouyatt95/laserpark/internal/model"
	"github.com/madouyatt95/laserpark/internal/repository"

	"github.com/google/uuid"
)

// ParkService manages venues, the tenancy boundary. Super-admin territory.
type ParkService interface {
	Create(ctx context.Context, req dto.CreateParkRequest) (*dto.ParkResponse, error)
	Update(ctx context.Context, id uuid.UUID, req dto.UpdateParkRequest) (*dto.ParkResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.ParkResponse, error)
	List(ctx context.Context, includeInactive bool) ([]dto.ParkResponse, error)
}

type parkService struct {
	repo repository.ParkRepository
}

func NewParkService(repo repository.ParkRepository) ParkService {
	return &parkService{repo: repo}
}

func (s *parkService) Create(ctx context.Context, req dto.CreateParkRequest) (*dto.ParkResponse, error) {
	currency := req.Currency
	if currency == "" {
		currency = "XOF"
	}
	park := &model.Park{
		Name:     req.Name,
		Country:  req.Country,
		City:     req.City,
		Currency: currency,
		IsActive: true,
	}
	if err := s.repo.Create(ctx, park); err != nil {
		return nil, err
	}
	return parkToResponse(park), nil
}

func (s *parkService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateParkRequest) (*dto.ParkResponse, error) {
	park, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		park.Name = *req.Name
	}
	if req.Country != nil {
		park.Country = *req.Country
	}
	if req.City != nil {
		park.City = *req.City
	}
	if req.IsActive != nil {
		park.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, park); err != nil {
		return nil, err
	}
	return parkToResponse(park), nil
}

func (s *parkService) Get(ctx context.Context, id uuid.UUID) (*dto.ParkResponse, error) {
	park, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return parkToResponse(park), nil
}

func (s *parkService) List(ctx context.Context, includeInactive bool) ([]dto.ParkResponse, error) {
	parks, err := s.repo.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ParkResponse, len(parks))
	for i := range parks {
		out[i] = *parkToResponse(&parks[i])
	}
	return out, nil
}

func parkToResponse(p *model.Park) *dto.ParkResponse {
	return &dto.ParkResponse{
		ID:       p.ID.String(),
		Name:     p.Name,
		Country:  p.Country,
		City:     p.City,
		Currency: p.Currency,
		IsActive: p.IsActive,
	}
}
