package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/Freeeeeet/sports_reservation_bot/internal/clock"
	"github.com/Freeeeeet/sports_reservation_bot/internal/model"
	"github.com/Freeeeeet/sports_reservation_bot/internal/repository"
	"github.com/Freeeeeet/sports_reservation_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)

type fakeIdentityStore struct {
	signedIn map[int64]bool
	err      error
}

func (f *fakeIdentityStore) GetByTelegramID(_ context.Context, telegramID int64) (*model.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if !f.signedIn[telegramID] {
		return nil, nil
	}
	return &model.User{TelegramID: telegramID, Login: "login"}, nil
}

type fakeSender struct {
	sent []*bot.SendMessageParams
}

func (f *fakeSender) SendMessage(_ context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	f.sent = append(f.sent, params)
	return &models.Message{}, nil
}

func newTestHandlers(signedIn ...int64) (*Handlers, *fakeIdentityStore) {
	identity := &fakeIdentityStore{signedIn: make(map[int64]bool)}
	for _, id := range signedIn {
		identity.signedIn[id] = true
	}

	logger := zap.NewNop()
	users := service.NewUserService(identity, logger)
	reservations := service.NewReservationService(
		repository.NewMemoryReservationRepository(), users, clock.NewFixed(testNow), logger)
	signIn := service.NewSignInService(users, service.SignInConfig{
		AuthorizeURL: "https://api.intra.42.fr/oauth/authorize",
		ClientID:     "client",
		RedirectURI:  "https://example.org/callback",
	})

	return NewHandlers(reservations, signIn, logger), identity
}

func request(cmd Command, id int64, args ...string) Request {
	return Request{
		Command:   cmd,
		Requester: model.Requester{ID: id, Username: fmt.Sprintf("user%d", id), Name: "User"},
		Args:      args,
	}
}

func dispatch(t *testing.T, h *Handlers, req Request) Reply {
	t.Helper()
	reply, ok := h.Dispatch(context.Background(), req)
	require.True(t, ok, "command %q not registered", req.Command)
	return reply
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text string
		cmd  Command
		args []string
		ok   bool
	}{
		{text: "/reserve 2025/01/10 18:00 football", cmd: CommandReserve, args: []string{"2025/01/10", "18:00", "football"}, ok: true},
		{text: "/list@sports_bot  2025/01/10   Football", cmd: CommandList, args: []string{"2025/01/10", "Football"}, ok: true},
		{text: "/HELP", cmd: CommandHelp, args: []string{}, ok: true},
		{text: "hello", ok: false},
		{text: "/", ok: false},
		{text: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			cmd, args, ok := ParseCommand(tt.text)
			require.Equal(t, tt.ok, ok)
			if !ok {
				return
			}
			assert.Equal(t, tt.cmd, cmd)
			assert.Equal(t, tt.args, args)
		})
	}
}

func TestHandlers_ReserveListCancel(t *testing.T) {
	h, _ := newTestHandlers(1, 2)

	reply := dispatch(t, h, request(CommandReserve, 1, "2025/01/10", "18:00", "Football"))
	assert.Equal(t, "✅ Reserved 2025/01/10 18:00 for football for @user1!", reply.Text)

	reply = dispatch(t, h, request(CommandReserve, 2, "2025/01/10", "18:00", "football"))
	assert.Equal(t, "❌ Time slot 2025/01/10 18:00 for football is already reserved.", reply.Text)

	reply = dispatch(t, h, request(CommandList, 2, "2025/01/10", "football"))
	assert.Equal(t, models.ParseModeHTML, reply.ParseMode)
	assert.Contains(t, reply.Text, "Time: <b>17:00</b> - Status: <b>Not Reserved</b>")
	assert.Contains(t, reply.Text, "Time: <b>18:00</b> - Status: <b>Reserved</b>")
	assert.Contains(t, reply.Text, "Time: <b>19:00</b> - Status: <b>Not Reserved</b>")
	assert.NotContains(t, reply.Text, "@user1")

	markup, ok := reply.Markup.(*models.InlineKeyboardMarkup)
	require.True(t, ok)
	require.Len(t, markup.InlineKeyboard, 2)
	assert.Equal(t, "rsv|2025/01/10|17:00|football", markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "rsv|2025/01/10|19:00|football", markup.InlineKeyboard[1][0].CallbackData)

	reply = dispatch(t, h, request(CommandCancel, 2, "2025/01/10", "18:00", "football"))
	assert.Equal(t, "❌ You don't have a reservation for 2025/01/10 18:00 for football.", reply.Text)

	reply = dispatch(t, h, request(CommandCancel, 1, "2025/01/10", "18:00", "football"))
	assert.Equal(t, "✅ Canceled reservation for 2025/01/10 18:00 for football.", reply.Text)

	reply = dispatch(t, h, request(CommandList, 2, "2025/01/10", "football"))
	assert.NotContains(t, reply.Text, "<b>Reserved</b>")
}

func TestHandlers_ErrorMessages(t *testing.T) {
	h, identity := newTestHandlers(1)

	tests := []struct {
		name string
		req  Request
		want string
	}{
		{name: "not signed in", req: request(CommandReserve, 9, "2025/01/10", "18:00", "football"), want: "❌ Please sign in to 42 first using the /sign_in command."},
		{name: "reserve without args", req: request(CommandReserve, 1), want: "❌ Invalid date format. Please use YYYY/MM/DD."},
		{name: "cancel without args", req: request(CommandCancel, 1, "2025/01/10"), want: "❌ Please provide date, time, and sport."},
		{name: "list without args", req: request(CommandList, 1), want: "❌ Please provide date and sport."},
		{name: "out of range", req: request(CommandList, 1, "2025/01/16", "football"), want: "❌ Invalid date. Please choose a date between today and a week from now."},
		{name: "bad time", req: request(CommandReserve, 1, "2025/01/10", "20:00", "football"), want: "❌ Invalid time. Please choose a time from 17:00, 18:00, or 19:00."},
		{name: "bad sport", req: request(CommandReserve, 1, "2025/01/10", "18:00", "golf"), want: "❌ Invalid sport. Please choose from football, volleyball, handball, and basketball."},
		{name: "already signed in", req: request(CommandSignIn, 1), want: "You are already signed in."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dispatch(t, h, tt.req).Text)
		})
	}

	t.Run("identity outage", func(t *testing.T) {
		identity.err = errors.New("connection refused")
		defer func() { identity.err = nil }()

		reply := dispatch(t, h, request(CommandReserve, 1, "2025/01/10", "18:00", "football"))
		assert.Equal(t, "❌ Could not check your sign-in status. Please try again later.", reply.Text)
	})
}

func TestHandlers_SignIn(t *testing.T) {
	h, _ := newTestHandlers()

	reply := dispatch(t, h, Request{
		Command:   "signin",
		Requester: model.Requester{ID: 5, Username: "ann"},
	})

	markup, ok := reply.Markup.(*models.InlineKeyboardMarkup)
	require.True(t, ok)
	link, err := url.Parse(markup.InlineKeyboard[0][0].URL)
	require.NoError(t, err)
	assert.Equal(t, "5$ann", link.Query().Get("state"))
	assert.Equal(t, "client", link.Query().Get("client_id"))
}

func TestHandlers_Help(t *testing.T) {
	h, _ := newTestHandlers()

	text := dispatch(t, h, request(CommandHelp, 1)).Text
	for _, spec := range h.Registry().Specs() {
		assert.Contains(t, text, "/"+string(spec.Command))
		assert.Contains(t, text, spec.Description)
	}
	assert.NotContains(t, text, "/signin")

	assert.True(t, strings.HasPrefix(dispatch(t, h, request(CommandStart, 1)).Text, "👋 Hi, User!"))
}

func TestHandlers_HandleCommandRepliesPrivately(t *testing.T) {
	h, _ := newTestHandlers(1)
	sender := &fakeSender{}

	update := &models.Update{Message: &models.Message{
		Chat: models.Chat{ID: -100500},
		From: &models.User{ID: 1, Username: "user1", FirstName: "User"},
		Text: "/reserve@sports_bot 2025/01/10 17:00 volleyball",
	}}
	h.handleCommand(context.Background(), sender, update)

	require.Len(t, sender.sent, 1)
	assert.Equal(t, int64(1), sender.sent[0].ChatID)
	assert.Equal(t, "✅ Reserved 2025/01/10 17:00 for volleyball for @user1!", sender.sent[0].Text)

	h.handleCommand(context.Background(), sender, &models.Update{Message: &models.Message{
		From: &models.User{ID: 1},
		Text: "/dance",
	}})
	require.Len(t, sender.sent, 2)
	assert.Contains(t, sender.sent[1].Text, "Unknown command")

	h.handleCommand(context.Background(), sender, &models.Update{Message: &models.Message{
		From: &models.User{ID: 1},
		Text: "just chatting",
	}})
	assert.Len(t, sender.sent, 2)
}

func TestQuickReserveData(t *testing.T) {
	data, ok := QuickReserveData("2025/01/10", "18:00", model.SportBasketball)
	require.True(t, ok)

	args, ok := ParseQuickReserveData(data)
	require.True(t, ok)
	assert.Equal(t, []string{"2025/01/10", "18:00", "basketball"}, args)

	_, ok = QuickReserveData(strings.Repeat("/", 60), "18:00", model.SportBasketball)
	assert.False(t, ok)

	_, ok = ParseQuickReserveData("rsv|2025/01/10|18:00")
	assert.False(t, ok)
	_, ok = ParseQuickReserveData("other")
	assert.False(t, ok)
}
