package service

import (
	"strings"
	"time"

	"github.com/Freeeeeet/sports_reservation_bot/internal/clock"
	"github.com/Freeeeeet/sports_reservation_bot/internal/model"
)

// ParsedRequest нормализованный запрос на слот
type ParsedRequest struct {
	Date  time.Time
	Time  string
	Sport model.Sport
	Key   model.SlotKey
}

// Границы допустимого времени. Проверка по ним повторяет проверку по
// AllowedTimes и ни на что не влияет.
const (
	firstSlotTime = "17:00"
	lastSlotTime  = "19:00"
)

// Validator проверяет дату, время и вид спорта
type Validator struct {
	clock clock.Clock
}

func NewValidator(clk clock.Clock) *Validator {
	return &Validator{clock: clk}
}

// Validate проверяет запрос целиком: дата, диапазон дат, время, вид спорта
func (v *Validator) Validate(dateStr, timeStr, sportStr string) (*ParsedRequest, error) {
	date, err := v.ValidateDate(dateStr)
	if err != nil {
		return nil, err
	}

	if err := ValidateTime(timeStr); err != nil {
		return nil, err
	}

	sport, err := NormalizeSport(sportStr)
	if err != nil {
		return nil, err
	}

	return &ParsedRequest{
		Date:  date,
		Time:  timeStr,
		Sport: sport,
		Key:   model.NewSlotKey(date, timeStr, sport),
	}, nil
}

// ValidateDate разбирает дату и проверяет, что она в окне [сегодня, сегодня+7]
func (v *Validator) ValidateDate(dateStr string) (time.Time, error) {
	now := v.clock.Now()

	date, err := time.ParseInLocation(model.DateLayout, strings.Trim(dateStr, "/"), now.Location())
	if err != nil {
		return time.Time{}, model.ErrInvalidDateFormat
	}

	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	last := today.AddDate(0, 0, model.BookingWindowDays)

	if date.Before(today) || date.After(last) {
		return time.Time{}, model.ErrDateOutOfRange
	}

	return date, nil
}

// ValidateTime проверяет, что время одно из AllowedTimes
func ValidateTime(timeStr string) error {
	allowed := false
	for _, t := range model.AllowedTimes {
		if t == timeStr {
			allowed = true
			break
		}
	}
	if !allowed {
		return model.ErrInvalidTime
	}

	if timeStr < firstSlotTime || timeStr > lastSlotTime {
		return model.ErrInvalidTime
	}

	return nil
}

// NormalizeSport приводит вид спорта к нижнему регистру и проверяет его
func NormalizeSport(sportStr string) (model.Sport, error) {
	sport := model.Sport(strings.ToLower(sportStr))
	for _, s := range model.AllowedSports {
		if s == sport {
			return sport, nil
		}
	}
	return "", model.ErrInvalidSport
}
