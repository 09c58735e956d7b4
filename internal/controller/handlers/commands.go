package handlers

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Dispatch находит команду в реестре и выполняет её
func (h *Handlers) Dispatch(ctx context.Context, req Request) (Reply, bool) {
	spec, ok := h.registry.Lookup(req.Command)
	if !ok {
		return Reply{}, false
	}

	h.logger.Info("Command received",
		zap.String("command", string(spec.Command)),
		zap.Int64("telegram_id", req.Requester.ID),
		zap.Strings("args", req.Args))

	req.Command = spec.Command
	return spec.Handle(ctx, req), true
}

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(_ context.Context, req Request) Reply {
	return Reply{
		Text: fmt.Sprintf(
			"👋 Hi, %s!\n\n"+
				"I can reserve sport slots for the next week.\n"+
				"Sign in to 42 with /%s before reserving.\n\n%s",
			req.Requester.Name,
			CommandSignIn,
			h.helpText(),
		),
	}
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(_ context.Context, _ Request) Reply {
	return Reply{Text: h.helpText()}
}

func (h *Handlers) helpText() string {
	var sb strings.Builder
	sb.WriteString("📚 Available commands:\n")
	for _, spec := range h.registry.Specs() {
		sb.WriteString("\n/")
		sb.WriteString(string(spec.Command))
		if spec.Usage != "" {
			sb.WriteString(" ")
			sb.WriteString(spec.Usage)
		}
		sb.WriteString(" - ")
		sb.WriteString(spec.Description)
	}
	return sb.String()
}

func unknownCommandReply() Reply {
	return Reply{Text: fmt.Sprintf("❓ Unknown command. Use /%s to see the available commands.", CommandHelp)}
}
