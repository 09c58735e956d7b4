package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/sports_reservation_bot/internal/model"
	"go.uber.org/zap"
)

// IdentityStore хранилище пользователей, прошедших OAuth вход
type IdentityStore interface {
	GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error)
}

type UserService struct {
	identity IdentityStore
	logger   *zap.Logger
}

func NewUserService(identity IdentityStore, logger *zap.Logger) *UserService {
	return &UserService{
		identity: identity,
		logger:   logger,
	}
}

// GetByTelegramID получает пользователя по Telegram ID, nil если не найден
func (s *UserService) GetByTelegramID(ctx context.Context, telegramID int64) (*model.User, error) {
	return s.identity.GetByTelegramID(ctx, telegramID)
}

// RequireSignedIn возвращает пользователя или ErrNotSignedIn.
// Сбой хранилища отдаётся как ErrIdentityUnavailable, а не как "не вошёл".
func (s *UserService) RequireSignedIn(ctx context.Context, telegramID int64) (*model.User, error) {
	user, err := s.identity.GetByTelegramID(ctx, telegramID)
	if err != nil {
		s.logger.Error("Identity lookup failed",
			zap.Int64("telegram_id", telegramID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", model.ErrIdentityUnavailable, err)
	}

	if user == nil {
		return nil, model.ErrNotSignedIn
	}

	return user, nil
}
