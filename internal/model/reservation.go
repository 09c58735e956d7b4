package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sport вид спорта, всегда в нижнем регистре
type Sport string

const (
	SportFootball   Sport = "football"
	SportVolleyball Sport = "volleyball"
	SportHandball   Sport = "handball"
	SportBasketball Sport = "basketball"
)

// AllowedSports допустимые виды спорта в порядке отображения
var AllowedSports = []Sport{SportFootball, SportVolleyball, SportHandball, SportBasketball}

// AllowedTimes время начала слотов в порядке отображения
var AllowedTimes = []string{"17:00", "18:00", "19:00"}

// BookingWindowDays сколько дней вперёд (включительно) можно бронировать
const BookingWindowDays = 7

// DateLayout формат даты, который вводит пользователь
const DateLayout = "2006/1/2"

// SlotKey однозначно определяет слот: дата, время и вид спорта
type SlotKey struct {
	Date  time.Time // полночь в часовом поясе бота
	Time  string
	Sport Sport
}

// NewSlotKey обрезает дату до дня
func NewSlotKey(date time.Time, t string, sport Sport) SlotKey {
	y, m, d := date.Date()
	return SlotKey{
		Date:  time.Date(y, m, d, 0, 0, 0, 0, date.Location()),
		Time:  t,
		Sport: sport,
	}
}

// DateString дата ключа в формате YYYY-MM-DD
func (k SlotKey) DateString() string {
	return k.Date.Format(time.DateOnly)
}

func (k SlotKey) String() string {
	return fmt.Sprintf("%s_%s_%s", k.DateString(), k.Time, k.Sport)
}

// Reservation активная бронь слота
type Reservation struct {
	ID            uuid.UUID `json:"id"`
	Key           SlotKey   `json:"key"`
	HolderID      int64     `json:"holder_id"`      // Telegram ID владельца
	HolderMention string    `json:"holder_mention"` // для сообщений
	CreatedAt     time.Time `json:"created_at"`
}

// SlotStatus состояние одного времени в ответе /list
type SlotStatus struct {
	Time     string
	Reserved bool
}

// ListResult состояние всех слотов на дату для вида спорта
type ListResult struct {
	Date  string // как ввёл пользователь
	Sport Sport
	Slots []SlotStatus
}
