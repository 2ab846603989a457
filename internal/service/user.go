package service

import (
	"context"
	"errors"
	"strings"

	"toollending-backend/internal/domain"
	"toollending-backend/internal/logger"
	"toollending-backend/internal/repository"
	"toollending-backend/internal/security"

	"golang.org/x/crypto/bcrypt"
)

const invalidCredentials = "Invalid username or password"

type userService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewUserService(userRepo repository.UserRepository, tokens security.TokenManager) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

func (s *userService) CreateUser(ctx context.Context, username, password string, role domain.UserRole) (*domain.User, error) {
	logger.EnterMethod("userService.CreateUser", "username", username, "role", role)

	if blank(username, password) {
		return nil, domain.InvalidArgument("Username and password are required")
	}
	if !role.Valid() {
		return nil, domain.InvalidArgument("Unknown role: %s", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     strings.TrimSpace(username),
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.InvalidOperation("Username %s is already taken", user.Username)
		}
		logger.ExitMethodWithError("userService.CreateUser", err, "username", username)
		return nil, err
	}

	logger.ExitMethod("userService.CreateUser", "userID", user.ID)
	return user, nil
}

func (s *userService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	logger.EnterMethod("userService.Login", "username", username)

	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, domain.Unauthenticated(invalidCredentials)
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Login rejected", "username", username)
		return "", nil, domain.Unauthenticated(invalidCredentials)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return "", nil, err
	}

	logger.ExitMethod("userService.Login", "userID", user.ID)
	return token, user, nil
}

// ResolveActingUser loads the user behind the authenticated principal of ctx.
func (s *userService) ResolveActingUser(ctx context.Context) (*domain.User, error) {
	p, ok := security.PrincipalFromContext(ctx)
	if !ok || p.UserID == 0 {
		return nil, domain.Unauthenticated("User is not authenticated")
	}
	user, err := s.userRepo.GetByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.UserNotFound("Authenticated user %s was not found", p.Username)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}
