package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Freeeeeet/sports_reservation_bot/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationRepository хранит брони в Postgres
type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

// Insert создаёт бронь, если слот свободен
func (r *ReservationRepository) Insert(ctx context.Context, reservation *model.Reservation) error {
	query := `
		INSERT INTO reservations (id, slot_date, slot_time, sport, holder_id, holder_mention, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (slot_date, slot_time, sport) DO NOTHING
	`

	result, err := r.pool.Exec(
		ctx, query,
		reservation.ID,
		reservation.Key.Date,
		reservation.Key.Time,
		string(reservation.Key.Sport),
		reservation.HolderID,
		reservation.HolderMention,
		reservation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrSlotAlreadyReserved
	}

	return nil
}

// Get получает бронь по ключу слота
func (r *ReservationRepository) Get(ctx context.Context, key model.SlotKey) (*model.Reservation, error) {
	query := `
		SELECT id, holder_id, holder_mention, created_at
		FROM reservations
		WHERE slot_date = $1 AND slot_time = $2 AND sport = $3
	`

	reservation := model.Reservation{Key: key}
	err := r.pool.QueryRow(ctx, query, key.Date, key.Time, string(key.Sport)).Scan(
		&reservation.ID,
		&reservation.HolderID,
		&reservation.HolderMention,
		&reservation.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	return &reservation, nil
}

// DeleteHeld удаляет бронь, только если она принадлежит holderID
func (r *ReservationRepository) DeleteHeld(ctx context.Context, key model.SlotKey, holderID int64) error {
	query := `
		DELETE FROM reservations
		WHERE slot_date = $1 AND slot_time = $2 AND sport = $3 AND holder_id = $4
	`

	result, err := r.pool.Exec(ctx, query, key.Date, key.Time, string(key.Sport), holderID)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}

	if result.RowsAffected() == 0 {
		return model.ErrNoSuchReservation
	}

	return nil
}
