package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/furniture-resale/internal/entities"

	"golang.org/x/crypto/bcrypt"
)

type UserRepo interface {
	GetUserByID(ctx context.Context, userID string) (entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (entities.User, error)
	ListUsers(ctx context.Context, f entities.UserFilter) ([]entities.User, int, error)
	UpdateUserRole(ctx context.Context, userID string, role entities.UserRole) error
}

type TokenIssuer interface {
	Issue(user entities.User) (string, time.Time, error)
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      entities.User
}

type userService struct {
	logger *slog.Logger
	repo   UserRepo
	issuer TokenIssuer
}

func NewUserService(logger *slog.Logger, repo UserRepo, issuer TokenIssuer) *userService {
	return &userService{
		logger: logger.With(slog.String("service", "user")),
		repo:   repo,
		issuer: issuer,
	}
}

func (s *userService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	user, err := s.repo.GetUserByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, entities.ErrUserNotFound) {
		return LoginResult{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, entities.ErrInvalidCredentials
	}

	token, expiresAt, err := s.issuer.Issue(user)
	if err != nil {
		return LoginResult{}, err
	}

	s.logger.Debug("user logged in", slog.String("user_id", user.ID))
	user.PasswordHash = ""
	return LoginResult{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (entities.User, error) {
	return s.repo.GetUserByID(ctx, userID)
}

// CurrentRole reads the stored role of a user.
func (s *userService) CurrentRole(ctx context.Context, userID string) (entities.UserRole, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	return user.Role, nil
}

func (s *userService) ListUsers(ctx context.Context, f entities.UserFilter) ([]entities.User, int, error) {
	return s.repo.ListUsers(ctx, f)
}

// UpdateRole promotes or demotes a user, e.g. registers a customer as a dealer.
func (s *userService) UpdateRole(ctx context.Context, userID string, role entities.UserRole, actorID string) (entities.User, error) {
	if !role.Valid() {
		return entities.User{}, entities.ErrInvalidRole
	}

	if err := s.repo.UpdateUserRole(ctx, userID, role); err != nil {
		return entities.User{}, err
	}

	s.logger.Info("user role changed",
		slog.String("user_id", userID),
		slog.String("role", string(role)),
		slog.String("actor_id", actorID),
	)
	return s.repo.GetUserByID(ctx, userID)
}
