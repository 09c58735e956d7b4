package handlers

import (
	"context"

	"github.com/Freeeeeet/sports_reservation_bot/internal/controller/keyboard"
)

// HandleSignIn обрабатывает /sign_in: отдаёт ссылку на OAuth вход
func (h *Handlers) HandleSignIn(ctx context.Context, req Request) Reply {
	link, err := h.signInService.SignInLink(ctx, req.Requester)
	if err != nil {
		return h.errorReply(req, err)
	}

	return Reply{
		Text: "🔐 Sign in to 42\n\n" +
			"Please click the button below to sign in to 42. " +
			"This will redirect you to your 42 account.",
		Markup: keyboard.NewBuilder().
			Row(keyboard.URLButton("Sign in", link)).
			Build(),
	}
}
