package model

import "errors"

var (
	ErrNotSignedIn         = errors.New("not signed in")
	ErrIdentityUnavailable = errors.New("identity store unavailable")
	ErrMissingArguments    = errors.New("missing arguments")
	ErrInvalidDateFormat   = errors.New("invalid date format")
	ErrDateOutOfRange      = errors.New("date out of range")
	ErrInvalidTime         = errors.New("invalid time")
	ErrInvalidSport        = errors.New("invalid sport")
	ErrSlotAlreadyReserved = errors.New("slot already reserved")
	ErrNoSuchReservation   = errors.New("no such reservation")
	ErrAlreadySignedIn     = errors.New("already signed in")
)
