package service

import (
	"context"
	"errors"
	"time"

	"github.com/Freeeeeet/sports_reservation_bot/internal/clock"
	"github.com/Freeeeeet/sports_reservation_bot/internal/model"
	"github.com/Freeeeeet/sports_reservation_bot/internal/repository"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, 1, 8, 12, 30, 0, 0, time.UTC)

type fakeIdentityStore struct {
	users map[int64]*model.User
	err   error
}

func newFakeIdentityStore(ids ...int64) *fakeIdentityStore {
	store := &fakeIdentityStore{users: make(map[int64]*model.User)}
	for _, id := range ids {
		store.users[id] = &model.User{TelegramID: id, Login: "login"}
	}
	return store
}

func (f *fakeIdentityStore) GetByTelegramID(_ context.Context, telegramID int64) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[telegramID], nil
}

var errStoreDown = errors.New("connection refused")

type failingStore struct{}

func (failingStore) Insert(context.Context, *model.Reservation) error { return errStoreDown }
func (failingStore) Get(context.Context, model.SlotKey) (*model.Reservation, error) {
	return nil, errStoreDown
}
func (failingStore) DeleteHeld(context.Context, model.SlotKey, int64) error { return errStoreDown }

func newTestService(signedIn ...int64) (*ReservationService, *repository.MemoryReservationRepository, *fakeIdentityStore) {
	store := repository.NewMemoryReservationRepository()
	identity := newFakeIdentityStore(signedIn...)
	users := NewUserService(identity, zap.NewNop())
	svc := NewReservationService(store, users, clock.NewFixed(testNow), zap.NewNop())
	return svc, store, identity
}
