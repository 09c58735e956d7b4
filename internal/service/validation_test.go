package service

import (
	"testing"
	"time"

	"github.com/Freeeeeet/sports_reservation_bot/internal/clock"
	"github.com/Freeeeeet/sports_reservation_bot/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator_Validate(t *testing.T) {
	v := NewValidator(clock.NewFixed(testNow))

	tests := []struct {
		name  string
		date  string
		time  string
		sport string
		err   error
	}{
		{name: "valid", date: "2025/01/10", time: "18:00", sport: "football"},
		{name: "today", date: "2025/01/08", time: "17:00", sport: "handball"},
		{name: "last day of window", date: "2025/01/15", time: "19:00", sport: "basketball"},
		{name: "unpadded month and day", date: "2025/1/9", time: "19:00", sport: "volleyball"},
		{name: "surrounding slashes", date: "/2025/01/10/", time: "18:00", sport: "football"},
		{name: "mixed case sport", date: "2025/01/10", time: "18:00", sport: "FootBall"},
		{name: "dash separated date", date: "2025-01-10", time: "18:00", sport: "football", err: model.ErrInvalidDateFormat},
		{name: "empty date", date: "", time: "18:00", sport: "football", err: model.ErrInvalidDateFormat},
		{name: "impossible date", date: "2025/02/30", time: "18:00", sport: "football", err: model.ErrInvalidDateFormat},
		{name: "yesterday", date: "2025/01/07", time: "18:00", sport: "football", err: model.ErrDateOutOfRange},
		{name: "eight days ahead", date: "2025/01/16", time: "18:00", sport: "football", err: model.ErrDateOutOfRange},
		{name: "time between slots", date: "2025/01/10", time: "17:30", sport: "football", err: model.ErrInvalidTime},
		{name: "time without padding", date: "2025/01/10", time: "7:00", sport: "football", err: model.ErrInvalidTime},
		{name: "unknown sport", date: "2025/01/10", time: "18:00", sport: "tennis", err: model.ErrInvalidSport},
		{name: "date checked before time", date: "2025/01/30", time: "10:00", sport: "tennis", err: model.ErrDateOutOfRange},
		{name: "time checked before sport", date: "2025/01/10", time: "10:00", sport: "tennis", err: model.ErrInvalidTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := v.Validate(tt.date, tt.time, tt.sport)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.Nil(t, req)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.time, req.Time)
			assert.Equal(t, req.Key, model.NewSlotKey(req.Date, req.Time, req.Sport))
		})
	}
}

func TestValidator_SportIsCaseInsensitive(t *testing.T) {
	v := NewValidator(clock.NewFixed(testNow))

	lower, err := v.Validate("2025/01/10", "18:00", "football")
	require.NoError(t, err)
	upper, err := v.Validate("2025/01/10", "18:00", "Football")
	require.NoError(t, err)

	assert.Equal(t, model.SportFootball, upper.Sport)
	assert.Equal(t, lower.Key.String(), upper.Key.String())
	assert.Equal(t, "2025-01-10_18:00_football", upper.Key.String())
}

func TestValidator_TimeOfDayIgnored(t *testing.T) {
	lateEvening := time.Date(2025, 1, 8, 23, 59, 0, 0, time.UTC)
	v := NewValidator(clock.NewFixed(lateEvening))

	_, err := v.ValidateDate("2025/01/08")
	require.NoError(t, err)
	_, err = v.ValidateDate("2025/01/15")
	require.NoError(t, err)
}

func TestValidator_UsesClockLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	// 22:00 UTC 8 января = 03:00 9 января по UTC+5
	v := NewValidator(clock.NewFixed(time.Date(2025, 1, 8, 22, 0, 0, 0, time.UTC).In(loc)))

	_, err := v.ValidateDate("2025/01/08")
	require.ErrorIs(t, err, model.ErrDateOutOfRange)
	_, err = v.ValidateDate("2025/01/16")
	require.NoError(t, err)
}

func TestValidateTime(t *testing.T) {
	for _, allowed := range model.AllowedTimes {
		require.NoError(t, ValidateTime(allowed))
	}
	for _, bad := range []string{"", "16:00", "20:00", "18:00 ", "18"} {
		require.ErrorIs(t, ValidateTime(bad), model.ErrInvalidTime, bad)
	}
}
