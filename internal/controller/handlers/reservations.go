package handlers

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/sports_reservation_bot/internal/controller/keyboard"
	"github.com/Freeeeeet/sports_reservation_bot/internal/model"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// QuickReservePrefix callback кнопки "Reserve HH:MM" под /list: rsv|date|time|sport
const QuickReservePrefix = "rsv|"

// Telegram ограничивает callback data 64 байтами
const maxCallbackDataLen = 64

// HandleReserve обрабатывает /reserve date time sport
func (h *Handlers) HandleReserve(ctx context.Context, req Request) Reply {
	date, t, sport := req.Arg(0), req.Arg(1), req.Arg(2)

	reservation, err := h.reservationService.Reserve(ctx, req.Requester, date, t, sport)
	if err != nil {
		return h.errorReply(req, err)
	}

	return Reply{
		Text: fmt.Sprintf("✅ Reserved %s %s for %s for %s!",
			date, t, reservation.Key.Sport, reservation.HolderMention),
	}
}

// HandleCancel обрабатывает /cancel date time sport
func (h *Handlers) HandleCancel(ctx context.Context, req Request) Reply {
	date, t, sport := req.Arg(0), req.Arg(1), req.Arg(2)

	if err := h.reservationService.Cancel(ctx, req.Requester, date, t, sport); err != nil {
		return h.errorReply(req, err)
	}

	return Reply{
		Text: fmt.Sprintf("✅ Canceled reservation for %s %s for %s.", date, t, strings.ToLower(sport)),
	}
}

// HandleList обрабатывает /list date sport
func (h *Handlers) HandleList(ctx context.Context, req Request) Reply {
	result, err := h.reservationService.List(ctx, req.Arg(0), req.Arg(1))
	if err != nil {
		return h.errorReply(req, err)
	}

	var sb strings.Builder
	sb.WriteString("📋 <b>Reservation Status</b>\n\n")
	fmt.Fprintf(&sb, "Date: <b>%s</b>\nSport: <b>%s</b>\n", html.EscapeString(result.Date), result.Sport)

	kb := keyboard.NewBuilder()
	for _, slot := range result.Slots {
		status := "Not Reserved"
		if slot.Reserved {
			status = "Reserved"
		} else if data, ok := QuickReserveData(result.Date, slot.Time, result.Sport); ok {
			kb.Row(keyboard.Button("📌 Reserve "+slot.Time, data))
		}
		fmt.Fprintf(&sb, "\nTime: <b>%s</b> - Status: <b>%s</b>", slot.Time, status)
	}

	reply := Reply{
		Text:      sb.String(),
		ParseMode: models.ParseModeHTML,
	}
	if markup := kb.Build(); markup != nil {
		reply.Markup = markup
	}
	return reply
}

// QuickReserveData callback data для кнопки брони
func QuickReserveData(date, t string, sport model.Sport) (string, bool) {
	data := QuickReservePrefix + strings.Join([]string{date, t, string(sport)}, "|")
	if len(data) > maxCallbackDataLen {
		return "", false
	}
	return data, true
}

// ParseQuickReserveData разбирает callback data кнопки брони в аргументы /reserve
func ParseQuickReserveData(data string) ([]string, bool) {
	if !strings.HasPrefix(data, QuickReservePrefix) {
		return nil, false
	}
	parts := strings.Split(strings.TrimPrefix(data, QuickReservePrefix), "|")
	if len(parts) != 3 {
		return nil, false
	}
	return parts, true
}

func (h *Handlers) errorReply(req Request, err error) Reply {
	if isUserError(err) {
		h.logger.Debug("Command rejected",
			zap.String("command", string(req.Command)),
			zap.Int64("telegram_id", req.Requester.ID),
			zap.Error(err))
	} else {
		h.logger.Error("Command failed",
			zap.String("command", string(req.Command)),
			zap.Int64("telegram_id", req.Requester.ID),
			zap.Error(err))
	}

	return Reply{Text: ErrorMessage(req, err)}
}
