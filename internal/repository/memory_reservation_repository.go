package repository

import (
	"context"
	"sync"

	"github.com/Freeeeeet/sports_reservation_bot/internal/model"
)

// MemoryReservationRepository хранит брони в памяти процесса.
// После перезапуска таблица пустая.
type MemoryReservationRepository struct {
	mu           sync.RWMutex
	reservations map[string]model.Reservation // SlotKey.String() -> бронь
}

func NewMemoryReservationRepository() *MemoryReservationRepository {
	return &MemoryReservationRepository{
		reservations: make(map[string]model.Reservation),
	}
}

// Insert создаёт бронь, если слот свободен
func (r *MemoryReservationRepository) Insert(_ context.Context, reservation *model.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := reservation.Key.String()
	if _, exists := r.reservations[key]; exists {
		return model.ErrSlotAlreadyReserved
	}
	r.reservations[key] = *reservation
	return nil
}

// Get получает бронь по ключу слота, nil если слот свободен
func (r *MemoryReservationRepository) Get(_ context.Context, key model.SlotKey) (*model.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reservation, exists := r.reservations[key.String()]
	if !exists {
		return nil, nil
	}
	return &reservation, nil
}

// DeleteHeld удаляет бронь, только если она принадлежит holderID
func (r *MemoryReservationRepository) DeleteHeld(_ context.Context, key model.SlotKey, holderID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key.String()
	reservation, exists := r.reservations[k]
	if !exists || reservation.HolderID != holderID {
		return model.ErrNoSuchReservation
	}
	delete(r.reservations, k)
	return nil
}

// Len количество активных броней
func (r *MemoryReservationRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.reservations)
}
