package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/circulo-sport/courtdesk/store"
	"github.com/google/uuid"
)

type Service struct {
	courts []Court
	extras *store.Collection[Extra]
	seed   sync.Mutex
}

func NewService(extras *store.Collection[Extra]) *Service {
	return &Service{courts: Courts, extras: extras}
}

func ExtraID(e Extra) string { return e.ID }

func (s *Service) Courts() []Court {
	return s.courts
}

func (s *Service) Court(id string) (Court, bool) {
	for _, court := range s.courts {
		if court.ID == id {
			return court, true
		}
	}

	return Court{}, false
}

// CourtName falls back to the raw id for courts no longer in the catalog.
func (s *Service) CourtName(id string) string {
	if court, ok := s.Court(id); ok {
		return court.Name
	}

	return id
}

func (s *Service) ListExtras(ctx context.Context) ([]Extra, error) {
	if err := s.seedDefaults(ctx); err != nil {
		return nil, err
	}

	return s.extras.All(ctx)
}

func (s *Service) SaveExtra(ctx context.Context, extra Extra) (Extra, error) {
	extra.Name = strings.TrimSpace(extra.Name)

	if extra.Name == "" {
		return Extra{}, fmt.Errorf("%w: name is required", ErrInvalidExtra)
	}

	if extra.Price.IsNegative() {
		return Extra{}, fmt.Errorf("%w: price cannot be negative", ErrInvalidExtra)
	}

	if err := s.seedDefaults(ctx); err != nil {
		return Extra{}, err
	}

	if extra.ID == "" {
		extra.ID = uuid.NewString()
	}

	if err := s.extras.Upsert(ctx, extra); err != nil {
		return Extra{}, fmt.Errorf("failed to save extra: %w", err)
	}

	return extra, nil
}

func (s *Service) DeleteExtra(ctx context.Context, id string) error {
	n, err := s.extras.Delete(ctx, id)

	if err != nil {
		return fmt.Errorf("failed to delete extra: %w", err)
	}

	if n == 0 {
		return ErrExtraNotFound
	}

	return nil
}

func (s *Service) seedDefaults(ctx context.Context) error {
	s.seed.Lock()
	defer s.seed.Unlock()

	exists, err := s.extras.Exists(ctx)

	if err != nil {
		return fmt.Errorf("failed to check extras: %w", err)
	}

	if exists {
		return nil
	}

	return s.extras.Replace(ctx, DefaultExtras)
}
