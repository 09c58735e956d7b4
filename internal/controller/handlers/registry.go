package handlers

import (
	"context"
	"strings"

	"github.com/Freeeeeet/sports_reservation_bot/internal/model"
	"github.com/go-telegram/bot/models"
)

// Command имя команды без слэша
type Command string

const (
	CommandStart   Command = "start"
	CommandHelp    Command = "help"
	CommandReserve Command = "reserve"
	CommandCancel  Command = "cancel"
	CommandList    Command = "list"
	CommandSignIn  Command = "sign_in"
)

// Request команда от пользователя, без привязки к Telegram
type Request struct {
	Command   Command
	Requester model.Requester
	Args      []string
}

// Arg возвращает i-й аргумент или пустую строку
func (r Request) Arg(i int) string {
	if i < len(r.Args) {
		return r.Args[i]
	}
	return ""
}

// Reply ответ, который уходит в личный чат пользователя
type Reply struct {
	Text      string
	ParseMode models.ParseMode
	Markup    models.ReplyMarkup
}

// CommandFunc обработчик команды
type CommandFunc func(ctx context.Context, req Request) Reply

// CommandSpec описание команды для меню и /help
type CommandSpec struct {
	Command     Command
	Aliases     []Command
	Usage       string
	Description string
	Handle      CommandFunc
}

// Registry команды в порядке регистрации
type Registry struct {
	specs  []CommandSpec
	byName map[Command]CommandSpec
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[Command]CommandSpec),
	}
}

// Register добавляет команду и её алиасы
func (r *Registry) Register(spec CommandSpec) {
	r.specs = append(r.specs, spec)
	r.byName[spec.Command] = spec
	for _, alias := range spec.Aliases {
		r.byName[alias] = spec
	}
}

// Lookup ищет команду по имени или алиасу
func (r *Registry) Lookup(name Command) (CommandSpec, bool) {
	spec, ok := r.byName[name]
	return spec, ok
}

// Specs все команды без алиасов
func (r *Registry) Specs() []CommandSpec {
	return r.specs
}

// ParseCommand разбирает "/reserve@bot 2025/01/10 18:00 football"
func ParseCommand(text string) (Command, []string, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return "", nil, false
	}

	name := strings.TrimPrefix(fields[0], "/")
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}
	if name == "" {
		return "", nil, false
	}

	return Command(strings.ToLower(name)), fields[1:], true
}
