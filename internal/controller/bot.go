package controller

import (
	"context"

	"github.com/Freeeeeet/sports_reservation_bot/internal/controller/callbacks"
	"github.com/Freeeeeet/sports_reservation_bot/internal/controller/handlers"
	"github.com/Freeeeeet/sports_reservation_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	reservationService *service.ReservationService,
	signInService *service.SignInService,
	logger *zap.Logger,
) *BotController {
	cmdHandlers := handlers.NewHandlers(reservationService, signInService, logger)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbacks.NewHandler(cmdHandlers, logger),
		logger:          logger,
	}
}

// RegisterHandlers регистрирует обработчики команд и кнопок
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	// Все команды идут через реестр, чтобы ловить и /cmd@botname из групп
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/", bot.MatchTypePrefix, c.handlers.HandleCommand)

	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, c.callbackHandler.HandleCallbackQuery)

	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	specs := c.handlers.Registry().Specs()
	commands := make([]models.BotCommand, 0, len(specs))
	for _, spec := range specs {
		commands = append(commands, models.BotCommand{
			Command:     string(spec.Command),
			Description: spec.Description,
		})
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set", zap.Int("commands", len(commands)))
	return nil
}

// Start запускает бота, блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
