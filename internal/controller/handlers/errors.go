package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Freeeeeet/sports_reservation_bot/internal/model"
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(req Request, err error) string {
	switch {
	case errors.Is(err, model.ErrNotSignedIn):
		return fmt.Sprintf("❌ Please sign in to 42 first using the /%s command.", CommandSignIn)
	case errors.Is(err, model.ErrIdentityUnavailable):
		return "❌ Could not check your sign-in status. Please try again later."
	case errors.Is(err, model.ErrAlreadySignedIn):
		return "You are already signed in."
	case errors.Is(err, model.ErrMissingArguments):
		if req.Command == CommandList {
			return "❌ Please provide date and sport."
		}
		return "❌ Please provide date, time, and sport."
	case errors.Is(err, model.ErrInvalidDateFormat):
		return "❌ Invalid date format. Please use YYYY/MM/DD."
	case errors.Is(err, model.ErrDateOutOfRange):
		return "❌ Invalid date. Please choose a date between today and a week from now."
	case errors.Is(err, model.ErrInvalidTime):
		return "❌ Invalid time. Please choose a time from 17:00, 18:00, or 19:00."
	case errors.Is(err, model.ErrInvalidSport):
		return "❌ Invalid sport. Please choose from football, volleyball, handball, and basketball."
	case errors.Is(err, model.ErrSlotAlreadyReserved):
		return fmt.Sprintf("❌ Time slot %s %s for %s is already reserved.",
			req.Arg(0), req.Arg(1), strings.ToLower(req.Arg(2)))
	case errors.Is(err, model.ErrNoSuchReservation):
		return fmt.Sprintf("❌ You don't have a reservation for %s %s for %s.",
			req.Arg(0), req.Arg(1), strings.ToLower(req.Arg(2)))
	default:
		return "❌ Something went wrong. Please try again later."
	}
}

// isUserError ошибки, которые вызваны вводом пользователя, а не сбоем
func isUserError(err error) bool {
	for _, target := range []error{
		model.ErrNotSignedIn,
		model.ErrAlreadySignedIn,
		model.ErrMissingArguments,
		model.ErrInvalidDateFormat,
		model.ErrDateOutOfRange,
		model.ErrInvalidTime,
		model.ErrInvalidSport,
		model.ErrSlotAlreadyReserved,
		model.ErrNoSuchReservation,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
