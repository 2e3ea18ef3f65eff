package profile

import (
	"context"

	"github.com/conduit-labs/conduit/domain"
)

// Service exposes user profiles relative to a viewer and owns the writes to
// the follow ledger; the article pipeline reads the ledger, never writes it.
type Service struct {
	userRepo   domain.UserRepository
	followRepo domain.FollowRepository
}

var _ domain.ProfileUsecase = (*Service)(nil)

func NewService(userRepo domain.UserRepository, followRepo domain.FollowRepository) *Service {
	return &Service{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

func (s *Service) Get(ctx context.Context, viewerID int64, username string) (domain.Profile, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}

	following := false
	if viewerID != 0 {
		following, err = s.followRepo.IsFollowing(ctx, viewerID, u.ID)
		if err != nil {
			return domain.Profile{}, err
		}
	}

	return u.Profile(following), nil
}

func (s *Service) Follow(ctx context.Context, followerID int64, username string) (domain.Profile, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}

	if u.ID == followerID {
		return domain.Profile{}, domain.ErrBadParamInput
	}

	// adding an existing edge is a no-op at the ledger
	if err := s.followRepo.Add(ctx, followerID, u.ID); err != nil {
		return domain.Profile{}, err
	}

	return u.Profile(true), nil
}

func (s *Service) Unfollow(ctx context.Context, followerID int64, username string) (domain.Profile, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return domain.Profile{}, err
	}

	if err := s.followRepo.Remove(ctx, followerID, u.ID); err != nil {
		return domain.Profile{}, err
	}

	return u.Profile(false), nil
}
