package service

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/sports_reservation_bot/internal/clock"
	"github.com/Freeeeeet/sports_reservation_bot/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReservationStore таблица броней. Insert и DeleteHeld атомарны:
// Insert падает с ErrSlotAlreadyReserved, если слот занят,
// DeleteHeld падает с ErrNoSuchReservation, если брони нет или она чужая.
type ReservationStore interface {
	Insert(ctx context.Context, reservation *model.Reservation) error
	Get(ctx context.Context, key model.SlotKey) (*model.Reservation, error)
	DeleteHeld(ctx context.Context, key model.SlotKey, holderID int64) error
}

// SignInChecker проверка входа через внешнее хранилище идентификации
type SignInChecker interface {
	RequireSignedIn(ctx context.Context, telegramID int64) (*model.User, error)
}

type ReservationService struct {
	store     ReservationStore
	users     SignInChecker
	validator *Validator
	clock     clock.Clock
	logger    *zap.Logger
}

func NewReservationService(
	store ReservationStore,
	users SignInChecker,
	clk clock.Clock,
	logger *zap.Logger,
) *ReservationService {
	return &ReservationService{
		store:     store,
		users:     users,
		validator: NewValidator(clk),
		clock:     clk,
		logger:    logger,
	}
}

// Validate проверяет дату, время и вид спорта
func (s *ReservationService) Validate(date, t, sport string) (*ParsedRequest, error) {
	return s.validator.Validate(date, t, sport)
}

// Reserve бронирует слот для пользователя
func (s *ReservationService) Reserve(ctx context.Context, requester model.Requester, date, t, sport string) (*model.Reservation, error) {
	if _, err := s.users.RequireSignedIn(ctx, requester.ID); err != nil {
		return nil, err
	}

	req, err := s.validator.Validate(date, t, sport)
	if err != nil {
		return nil, err
	}

	reservation := &model.Reservation{
		ID:            uuid.New(),
		Key:           req.Key,
		HolderID:      requester.ID,
		HolderMention: requester.Mention(),
		CreatedAt:     s.clock.Now(),
	}

	if err := s.store.Insert(ctx, reservation); err != nil {
		return nil, err
	}

	s.logger.Info("Slot reserved",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("slot", req.Key.String()),
		zap.Int64("holder_id", requester.ID),
	)

	return reservation, nil
}

// Cancel снимает бронь, если она принадлежит пользователю
func (s *ReservationService) Cancel(ctx context.Context, requester model.Requester, date, t, sport string) error {
	if _, err := s.users.RequireSignedIn(ctx, requester.ID); err != nil {
		return err
	}

	if date == "" || t == "" || sport == "" {
		return model.ErrMissingArguments
	}

	req, err := s.validator.Validate(date, t, sport)
	if err != nil {
		return err
	}

	if err := s.store.DeleteHeld(ctx, req.Key, requester.ID); err != nil {
		return err
	}

	s.logger.Info("Reservation canceled",
		zap.String("slot", req.Key.String()),
		zap.Int64("holder_id", requester.ID),
	)

	return nil
}

// List показывает занятость всех времён на дату для вида спорта.
// Владелец брони не раскрывается.
func (s *ReservationService) List(ctx context.Context, date, sport string) (*model.ListResult, error) {
	if date == "" || sport == "" {
		return nil, model.ErrMissingArguments
	}

	day, err := s.validator.ValidateDate(date)
	if err != nil {
		return nil, err
	}

	normalized, err := NormalizeSport(sport)
	if err != nil {
		return nil, err
	}

	result := &model.ListResult{
		Date:  date,
		Sport: normalized,
		Slots: make([]model.SlotStatus, 0, len(model.AllowedTimes)),
	}

	for _, t := range model.AllowedTimes {
		reservation, err := s.store.Get(ctx, model.NewSlotKey(day, t, normalized))
		if err != nil {
			return nil, fmt.Errorf("get reservation: %w", err)
		}
		result.Slots = append(result.Slots, model.SlotStatus{
			Time:     t,
			Reserved: reservation != nil,
		})
	}

	return result, nil
}
