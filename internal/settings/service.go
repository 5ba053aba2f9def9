package settings

import "context"

type Service interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, s Settings) (Settings, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (Settings, error) {
	return s.repo.Get(ctx)
}

func (s *service) Update(ctx context.Context, in Settings) (Settings, error) {
	if err := in.Validate(); err != nil {
		return Settings{}, err
	}
	if err := s.repo.Save(ctx, in); err != nil {
		return Settings{}, err
	}
	return in, nil
}
