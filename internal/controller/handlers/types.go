package handlers

import (
	"github.com/Freeeeeet/sports_reservation_bot/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	reservationService *service.ReservationService
	signInService      *service.SignInService
	registry           *Registry
	logger             *zap.Logger
}

// NewHandlers создаёт обработчики и регистрирует команды
func NewHandlers(
	reservationService *service.ReservationService,
	signInService *service.SignInService,
	logger *zap.Logger,
) *Handlers {
	h := &Handlers{
		reservationService: reservationService,
		signInService:      signInService,
		registry:           NewRegistry(),
		logger:             logger,
	}

	h.registry.Register(CommandSpec{
		Command:     CommandStart,
		Description: "Start using the bot",
		Handle:      h.HandleStart,
	})
	h.registry.Register(CommandSpec{
		Command:     CommandHelp,
		Description: "Get help",
		Handle:      h.HandleHelp,
	})
	h.registry.Register(CommandSpec{
		Command:     CommandReserve,
		Usage:       "YYYY/MM/DD HH:MM sport",
		Description: "Reserve a spot",
		Handle:      h.HandleReserve,
	})
	h.registry.Register(CommandSpec{
		Command:     CommandCancel,
		Usage:       "YYYY/MM/DD HH:MM sport",
		Description: "Cancel a reservation",
		Handle:      h.HandleCancel,
	})
	h.registry.Register(CommandSpec{
		Command:     CommandList,
		Usage:       "YYYY/MM/DD sport",
		Description: "List reservation status",
		Handle:      h.HandleList,
	})
	h.registry.Register(CommandSpec{
		Command:     CommandSignIn,
		Aliases:     []Command{"signin"},
		Description: "Sign in to 42",
		Handle:      h.HandleSignIn,
	})

	return h
}

// Registry зарегистрированные команды
func (h *Handlers) Registry() *Registry {
	return h.registry
}
