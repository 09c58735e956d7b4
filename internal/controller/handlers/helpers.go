package handlers

import (
	"context"

	"github.com/Freeeeeet/sports_reservation_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Sender отправка сообщений, *bot.Bot его реализует
type Sender interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
}

// RequesterFromUser переводит пользователя Telegram в model.Requester
func RequesterFromUser(user *models.User) model.Requester {
	return model.Requester{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.FirstName,
	}
}

// HandleCommand обрабатывает все текстовые сообщения, начинающиеся с "/"
func (h *Handlers) HandleCommand(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.handleCommand(ctx, b, update)
}

func (h *Handlers) handleCommand(ctx context.Context, sender Sender, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	command, args, ok := ParseCommand(update.Message.Text)
	if !ok {
		return
	}

	req := Request{
		Command:   command,
		Requester: RequesterFromUser(update.Message.From),
		Args:      args,
	}

	reply, found := h.Dispatch(ctx, req)
	if !found {
		h.logger.Debug("Unknown command",
			zap.String("command", string(command)),
			zap.Int64("telegram_id", req.Requester.ID))
		reply = unknownCommandReply()
	}

	// Ответ всегда в личный чат пользователя
	h.SendReply(ctx, sender, req.Requester.ID, reply)
}

// SendReply отправляет ответ и логирует если не удалось
func (h *Handlers) SendReply(ctx context.Context, sender Sender, chatID int64, reply Reply) {
	_, err := sender.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        reply.Text,
		ParseMode:   reply.ParseMode,
		ReplyMarkup: reply.Markup,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}
