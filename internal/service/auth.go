package service

import (
	"context"
	"errors"

	"github.com/mkrylova/task-tracker-api/internal/model"
	"github.com/mkrylova/task-tracker-api/internal/repo"
	"github.com/mkrylova/task-tracker-api/internal/token"
)

var (
	ErrEmailTaken = errors.New("user already exists")
	// ErrInvalidCredentials общая для "нет такого email" и "не тот пароль" -
	// по ответу нельзя понять, какая половина учетки неверна
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	users repo.UserRepository
	tokens *token.Service
}

func NewAuthService(users repo.UserRepository, tokens *token.Service) *AuthService {
	return &AuthService{
		users: users,
		tokens: tokens,
	}
}

// Register создает пользователя и сразу выдает токен
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	u, err := model.NewUser(name, email, password)
	if err != nil {
		return "", err
	}

	created, err := s.users.Create(ctx, u)
	if errors.Is(err, repo.ErrorConflict) {
		return "", ErrEmailTaken
	}
	if err != nil {
		return "", err
	}

	return s.tokens.Issue(created.ID)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repo.ErrorNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err // инфраструктурная ошибка уходит как 500, не как отказ в логине
	}

	if !u.CheckPassword(password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(u.ID)
}

// Me возвращает профиль аутентифицированного пользователя
func (s *AuthService) Me(ctx context.Context, userID string) (model.User, error) {
	return s.users.GetByID(ctx, userID)
}
