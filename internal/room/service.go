package room

import (
	"context"
	"net/http"
	"strings"

	"github.com/penzionapp/guesthouse-booking-backend/internal/pkg/apperror"
	"github.com/penzionapp/guesthouse-booking-backend/internal/pricing"
)

type CreateRequest struct {
	Name            string
	Capacity        int
	PricePerNight   int
	PricingModel    pricing.Model
	SeasonalPricing *pricing.Seasonal
	Description     string
	Available       bool
}

// UpdateRequest carries optional field updates; nil fields are left unchanged.
type UpdateRequest struct {
	Name            *string
	Capacity        *int
	PricePerNight   *int
	PricingModel    *pricing.Model
	SeasonalPricing *pricing.Seasonal
	Description     *string
	Available       *bool
}

type Service interface {
	List(ctx context.Context) ([]*Room, error)
	GetByID(ctx context.Context, id string) (*Room, error)
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Room, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Room, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByID(ctx context.Context, id string) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	if req.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	model := req.PricingModel
	if model == "" {
		model = pricing.ModelSimple
	}
	if model != pricing.ModelSimple && model != pricing.ModelSeasonal {
		return nil, ErrInvalidModel
	}
	if err := req.SeasonalPricing.Validate(); err != nil {
		return nil, apperror.Wrap(err, http.StatusBadRequest, err.Error())
	}

	r := &Room{
		Name:            name,
		Capacity:        req.Capacity,
		PricePerNight:   req.PricePerNight,
		PricingModel:    model,
		SeasonalPricing: req.SeasonalPricing,
		Description:     req.Description,
		Available:       req.Available,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Room, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrNameRequired
		}
		r.Name = name
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, ErrInvalidCapacity
		}
		r.Capacity = *req.Capacity
	}
	if req.PricePerNight != nil {
		r.PricePerNight = *req.PricePerNight
	}
	if req.PricingModel != nil {
		if *req.PricingModel != pricing.ModelSimple && *req.PricingModel != pricing.ModelSeasonal {
			return nil, ErrInvalidModel
		}
		r.PricingModel = *req.PricingModel
	}
	if req.SeasonalPricing != nil {
		if err := req.SeasonalPricing.Validate(); err != nil {
			return nil, apperror.Wrap(err, http.StatusBadRequest, err.Error())
		}
		r.SeasonalPricing = req.SeasonalPricing
	}
	if req.Description != nil {
		r.Description = *req.Description
	}
	if req.Available != nil {
		r.Available = *req.Available
	}

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
