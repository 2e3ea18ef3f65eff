package user

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/conduit-labs/conduit/domain"
)

// Service handles registration, authentication and account updates. The rest
// of the system only ever sees the user ids resolved out of tokens by the
// auth middleware.
type Service struct {
	userRepo  domain.UserRepository
	jwtSecret []byte
	jwtTTL    time.Duration
}

var _ domain.UserUsecase = (*Service)(nil)

func NewService(userRepo domain.UserRepository, jwtSecret []byte, jwtTTL time.Duration) *Service {
	return &Service{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		jwtTTL:    jwtTTL,
	}
}

func (s *Service) issueToken(userID int64) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(s.jwtTTL).Unix(),
	})
	return token.SignedString(s.jwtSecret)
}

func (s *Service) authenticated(u domain.User) (domain.AuthenticatedUser, error) {
	token, err := s.issueToken(u.ID)
	if err != nil {
		logrus.Errorf("failed to sign token for user %d: %v", u.ID, err)
		return domain.AuthenticatedUser{}, domain.ErrInternalServerError
	}
	return domain.AuthenticatedUser{User: u, Token: token}, nil
}

func (s *Service) Register(ctx context.Context, email, username, password string) (domain.AuthenticatedUser, error) {
	if email == "" || username == "" || password == "" {
		return domain.AuthenticatedUser{}, domain.ErrBadParamInput
	}

	// pre-check both unique columns; the indexes still catch a racing
	// registration and come back as ErrConflict from Insert
	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return domain.AuthenticatedUser{}, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.AuthenticatedUser{}, err
	}
	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return domain.AuthenticatedUser{}, domain.ErrConflict
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.AuthenticatedUser{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AuthenticatedUser{}, err
	}

	u := domain.User{
		Email:    email,
		Username: username,
		Password: string(hashed),
	}
	if err := s.userRepo.Insert(ctx, &u); err != nil {
		return domain.AuthenticatedUser{}, err
	}

	return s.authenticated(u)
}

func (s *Service) Login(ctx context.Context, email, password string) (domain.AuthenticatedUser, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return domain.AuthenticatedUser{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return domain.AuthenticatedUser{}, domain.ErrBadParamInput
	}

	return s.authenticated(u)
}

func (s *Service) GetCurrent(ctx context.Context, userID int64) (domain.AuthenticatedUser, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.AuthenticatedUser{}, err
	}
	return s.authenticated(u)
}

func (s *Service) Update(ctx context.Context, userID int64, upd domain.UserUpdate) (domain.AuthenticatedUser, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.AuthenticatedUser{}, err
	}

	// absent fields keep their stored values
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Username != nil {
		u.Username = *upd.Username
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Image != nil {
		u.Image = *upd.Image
	}
	if upd.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.AuthenticatedUser{}, err
		}
		u.Password = string(hashed)
	}

	if err := s.userRepo.Update(ctx, &u); err != nil {
		return domain.AuthenticatedUser{}, err
	}

	return s.authenticated(u)
}
