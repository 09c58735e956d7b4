package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/Freeeeeet/sports_reservation_bot/internal/model"
)

// SignInConfig параметры OAuth приложения
type SignInConfig struct {
	AuthorizeURL string
	ClientID     string
	RedirectURI  string
}

// SignInService строит ссылку на OAuth авторизацию.
// Обмен кода на токен делает внешний сервис, бот только отдаёт ссылку.
type SignInService struct {
	users *UserService
	cfg   SignInConfig
}

func NewSignInService(users *UserService, cfg SignInConfig) *SignInService {
	return &SignInService{
		users: users,
		cfg:   cfg,
	}
}

// SignInLink возвращает ссылку для входа или ErrAlreadySignedIn
func (s *SignInService) SignInLink(ctx context.Context, requester model.Requester) (string, error) {
	_, err := s.users.RequireSignedIn(ctx, requester.ID)
	switch {
	case err == nil:
		return "", model.ErrAlreadySignedIn
	case !errors.Is(err, model.ErrNotSignedIn):
		return "", err
	}

	return s.AuthorizeURL(requester.ID, requester.DisplayName())
}

// AuthorizeURL ссылка с state = "{id}${name}"
func (s *SignInService) AuthorizeURL(telegramID int64, displayName string) (string, error) {
	u, err := url.Parse(s.cfg.AuthorizeURL)
	if err != nil {
		return "", fmt.Errorf("parse authorize url: %w", err)
	}

	q := u.Query()
	q.Set("client_id", s.cfg.ClientID)
	q.Set("redirect_uri", s.cfg.RedirectURI)
	q.Set("response_type", "code")
	q.Set("state", fmt.Sprintf("%d$%s", telegramID, displayName))
	u.RawQuery = q.Encode()

	return u.String(), nil
}
