package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/sports_reservation_bot/internal/controller/handlers"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Noop кнопка без действия
const Noop = "noop"

// Answerer ответ на callback query, *bot.Bot его реализует
type Answerer interface {
	handlers.Sender
	AnswerCallbackQuery(ctx context.Context, params *bot.AnswerCallbackQueryParams) (bool, error)
}

// Handler обрабатывает нажатия на inline кнопки
type Handler struct {
	handlers *handlers.Handlers
	logger   *zap.Logger
}

func NewHandler(h *handlers.Handlers, logger *zap.Logger) *Handler {
	return &Handler{
		handlers: h,
		logger:   logger,
	}
}

// HandleCallbackQuery точка входа для bot.HandlerTypeCallbackQueryData
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	h.Route(ctx, b, update.CallbackQuery)
}

// Route распределяет callback query по обработчикам
func (h *Handler) Route(ctx context.Context, b Answerer, callback *models.CallbackQuery) {
	data := callback.Data

	h.logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	switch {
	case strings.HasPrefix(data, handlers.QuickReservePrefix):
		h.handleQuickReserve(ctx, b, callback)
	case data == Noop:
		answer(ctx, b, callback.ID, "", false, h.logger)
	default:
		h.logger.Warn("Unknown callback", zap.String("data", data))
		answer(ctx, b, callback.ID, "❌ Unknown action", true, h.logger)
	}
}

// handleQuickReserve бронирует слот по кнопке из /list
func (h *Handler) handleQuickReserve(ctx context.Context, b Answerer, callback *models.CallbackQuery) {
	args, ok := handlers.ParseQuickReserveData(callback.Data)
	if !ok {
		answer(ctx, b, callback.ID, "❌ Invalid data format", true, h.logger)
		return
	}

	req := handlers.Request{
		Command:   handlers.CommandReserve,
		Requester: handlers.RequesterFromUser(&callback.From),
		Args:      args,
	}

	reply, _ := h.handlers.Dispatch(ctx, req)
	answer(ctx, b, callback.ID, reply.Text, true, h.logger)
	h.handlers.SendReply(ctx, b, req.Requester.ID, reply)
}

func answer(ctx context.Context, b Answerer, callbackID, text string, alert bool, logger *zap.Logger) {
	_, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       alert,
	})
	if err != nil {
		logger.Error("Failed to answer callback",
			zap.String("callback_id", callbackID),
			zap.Error(err))
	}
}
