package handler

import (
	"io"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet-bot/internal/config"
	"timesheet-bot/internal/service"
	"timesheet-bot/internal/store"
)

const ownerChat = int64(1001)

type fakeBot struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.sent = append(b.sent, c)
	return tgbotapi.Message{}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.requests = append(b.requests, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

// texts returns the text of every plain message sent so far.
func (b *fakeBot) texts() []string {
	var out []string
	for _, c := range b.sent {
		if m, ok := c.(tgbotapi.MessageConfig); ok {
			out = append(out, m.Text)
		}
	}
	return out
}

func (b *fakeBot) last() string {
	t := b.texts()
	if len(t) == 0 {
		return ""
	}
	return t[len(t)-1]
}

func newTestHandler(t *testing.T) (*Handler, *fakeBot, *store.Store) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	st := store.New(nil, logger)
	bot := &fakeBot{}
	h := NewHandler(bot, Services{
		Employees: service.NewEmployeeService(st, logger),
		Company:   service.NewCompanyService(st, logger),
		Timesheet: service.NewTimesheetService(st, logger),
		Leaves:    service.NewLeaveService(st, logger),
		Closures:  service.NewClosureService(st, logger),
		Reports:   service.NewReportService(st, nil, logger),
	}, &config.BotConfig{OwnerChatID: ownerChat}, logger)
	h.now = func() time.Time { return time.Date(2025, time.September, 15, 10, 0, 0, 0, time.Local) }
	return h, bot, st
}

func command(chatID int64, text string) *tgbotapi.Message {
	length := strings.IndexByte(text, ' ')
	if length < 0 {
		length = len(text)
	}
	return &tgbotapi.Message{
		MessageID: 1,
		Chat:      &tgbotapi.Chat{ID: chatID},
		From:      &tgbotapi.User{UserName: "titolare"},
		Text:      text,
		Entities:  []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}},
	}
}

func (h *Handler) run(text string) {
	h.handleMessage(command(ownerChat, text))
}

func TestRejectsOtherChats(t *testing.T) {
	h, bot, st := newTestHandler(t)
	h.handleMessage(command(555, "/addemployee Mario | Cuoco | 40"))

	assert.Contains(t, bot.last(), "riservato al titolare")
	assert.Empty(t, st.Employees())
}

func TestEmployeeCommands(t *testing.T) {
	h, bot, st := newTestHandler(t)

	h.run("/addemployee Mario Rossi | Cuoco | 40")
	assert.Contains(t, bot.last(), "✅ Dipendente aggiunto.")
	require.Len(t, st.Employees(), 1)

	h.run("/addemployee Mario")
	assert.Contains(t, bot.last(), "Formato: /addemployee")

	h.run("/editschedule 1 8 8 8 8 4 0 0")
	assert.Contains(t, bot.last(), "Ven 4")
	emp, err := st.Employee(1)
	require.NoError(t, err)
	assert.Equal(t, 36.0, emp.ContractHoursWeekly)

	h.run("/editschedule Luigi 8 8 8 8 4 0 0")
	assert.Equal(t, "❌ Orario non salvato: dipendente non trovato", bot.last())

	h.run("/employees")
	assert.Contains(t, bot.last(), "#1 Mario Rossi (Cuoco)")
}

func TestDeleteEmployeeNeedsConfirmation(t *testing.T) {
	h, bot, st := newTestHandler(t)
	h.run("/addemployee Anna | Cassiera | 30")

	h.run("/delemployee Anna")
	msg := bot.sent[len(bot.sent)-1].(tgbotapi.MessageConfig)
	require.NotNil(t, msg.ReplyMarkup)
	assert.Len(t, st.Employees(), 1)

	h.handleCallbackQuery(&tgbotapi.CallbackQuery{
		ID:      "cb",
		Data:    confirmDeleteEmployee + "1",
		Message: &tgbotapi.Message{MessageID: 2, Chat: &tgbotapi.Chat{ID: ownerChat}},
	})
	assert.Equal(t, "✅ Dipendente eliminato.", bot.last())
	assert.Empty(t, st.Employees())
	assert.Len(t, bot.requests, 1)
}

func TestLogAndPermitCommands(t *testing.T) {
	h, bot, st := newTestHandler(t)
	h.run("/addemployee Mario | Cuoco | 40")

	h.run("/log 1 01.09.2025 7.30")
	assert.Equal(t, "✅ Mario, 2025-09-01: 7,30 ore.", bot.last())
	assert.Equal(t, 7.5, st.Hours(1, "2025-09-01"))

	h.run("/log 1 oggi 8")
	assert.Equal(t, 8.0, st.Hours(1, "2025-09-15"))

	h.run("/log 1 01.09.2025 0")
	assert.Contains(t, bot.last(), "cancellate")
	assert.Equal(t, 0.0, st.Hours(1, "2025-09-01"))

	h.run("/log 1 31.02.2025 8")
	assert.Contains(t, bot.last(), "formato data non valido")

	h.run("/permit 1 02.09.2025 3")
	assert.Contains(t, bot.last(), "Ore lavorate: 5")
	assert.Equal(t, 5.0, st.Hours(1, "2025-09-02"))
	require.Len(t, st.Leaves(1), 1)

	h.run("/day 1 02.09.2025")
	assert.Contains(t, bot.last(), "Permesso")
}

func TestPermitRejectsBadHoursWithoutLeavingRequest(t *testing.T) {
	h, bot, st := newTestHandler(t)
	h.run("/addemployee Mario | Cuoco | 40")

	h.run("/permit 1 02.09.2025 abc")
	assert.Equal(t, "❌ Permesso non salvato: valore ore non valido", bot.last())
	assert.Empty(t, st.Leaves(1))

	h.run("/permit 1 02.09.2025 25")
	assert.Equal(t, "❌ Permesso non salvato: le ore devono essere tra 0 e 24", bot.last())
	assert.Empty(t, st.Leaves(1))

	h.run("/leave 1 ferie 02.09.2025")
	assert.Contains(t, bot.last(), "Ferie registrata per Mario")
}

func TestPermitRefusedOnFullDayLeave(t *testing.T) {
	h, bot, st := newTestHandler(t)
	h.run("/addemployee Mario | Cuoco | 40")
	h.run("/leave 1 malattia 08.09.2025")

	h.run("/permit 1 08.09.2025 2")
	assert.Equal(t, "❌ Permesso non salvato: il giorno è già coperto da ferie o malattia", bot.last())
	assert.Equal(t, 0.0, st.Hours(1, "2025-09-08"))
	require.Len(t, st.Leaves(1), 1)
}

func TestLeaveCommands(t *testing.T) {
	h, bot, st := newTestHandler(t)
	h.run("/addemployee Mario | Cuoco | 40")

	h.run("/leave 1 ferie 04.08.2025 10.08.2025")
	assert.Contains(t, bot.last(), "Ferie registrata per Mario: 2025-08-04 → 2025-08-10 (7 giorni)")

	h.run("/leave 1 malattia 08.08.2025")
	assert.Equal(t, "❌ Assenza non salvata: si sovrappone a un'altra assenza", bot.last())

	h.run("/leave 1 gita 20.08.2025")
	assert.Contains(t, bot.last(), "tipo di assenza non valido")

	h.run("/leaves")
	assert.Contains(t, bot.last(), "#1 Mario: Ferie")

	h.run("/reject 1")
	assert.Equal(t, "✅ Richiesta #1: Rejected.", bot.last())

	h.run("/delleave 1")
	assert.Equal(t, "✅ Assenza eliminata.", bot.last())
	assert.Empty(t, st.Leaves(0))

	h.run("/delleave x")
	assert.Equal(t, "Formato: /delleave id", bot.last())
}

func TestReportCommands(t *testing.T) {
	h, bot, _ := newTestHandler(t)
	h.run("/addemployee Mario | Cuoco | 40")

	h.run("/preset 1 09.2025")
	assert.Contains(t, bot.last(), "22 giorni")

	h.run("/month 09.2025")
	assert.Contains(t, bot.last(), "Lavorate 176 / previste 176")

	h.run("/year 2025 Mario")
	assert.Contains(t, bot.last(), "📅 Mario - anno 2025")

	h.run("/detail 1 09.2025")
	assert.Contains(t, bot.last(), "01 Lun Lavorato 8/8")

	h.run("/whatsapp 09.2025")
	assert.True(t, strings.HasPrefix(bot.last(), "📲 Condividi su WhatsApp:\nhttps://wa.me/?text="))

	h.run("/mail 09.2025")
	assert.Equal(t, "❌ E-mail non inviata: invio e-mail non configurato", bot.last())
}

func TestExportCommand(t *testing.T) {
	h, bot, _ := newTestHandler(t)
	h.run("/addemployee Mario | Cuoco | 40")

	h.run("/export mese xlsx 09.2025")
	doc, ok := bot.sent[len(bot.sent)-1].(tgbotapi.DocumentConfig)
	require.True(t, ok)
	assert.Equal(t, "Settembre 2025", doc.Caption)

	h.run("/export anno csv 2024 1")
	doc = bot.sent[len(bot.sent)-1].(tgbotapi.DocumentConfig)
	assert.Equal(t, "Anno 2024", doc.Caption)

	h.run("/export dettaglio pdf 09.2025")
	assert.Equal(t, "❌ Il dettaglio richiede un dipendente.", bot.last())

	h.run("/export mese doc")
	assert.Contains(t, bot.last(), "formato non supportato")
}

func TestCompanyCommands(t *testing.T) {
	h, bot, st := newTestHandler(t)

	h.run("/company nome Bar Sport")
	assert.Contains(t, bot.last(), "🏢 Bar Sport")
	assert.Equal(t, "Bar Sport", st.Company().Name)

	h.run("/company giorni lun,mar,mer,gio,ven,sab")
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, st.Company().WorkingDays)

	h.run("/company colore blu")
	assert.Contains(t, bot.last(), "campo sconosciuto")

	h.run("/closures 09.2025")
	assert.Equal(t, "Nessuna chiusura aziendale in Settembre 2025.", bot.last())
}

func TestUnknownCommandAndText(t *testing.T) {
	h, bot, _ := newTestHandler(t)

	h.run("/boh")
	assert.Contains(t, bot.last(), "Comando sconosciuto")

	h.handleMessage(&tgbotapi.Message{Chat: &tgbotapi.Chat{ID: ownerChat}, Text: "ciao"})
	assert.Contains(t, bot.last(), "/help")
}

func TestParseDate(t *testing.T) {
	now := time.Date(2025, time.September, 15, 18, 30, 0, 0, time.Local)

	cases := map[string]string{
		"01.09.2025": "2025-09-01",
		"01-09-2025": "2025-09-01",
		"01/09/2025": "2025-09-01",
		"2025-09-01": "2025-09-01",
		"03.02":      "2025-02-03",
		"oggi":       "2025-09-15",
		"ieri":       "2025-09-14",
	}
	for in, want := range cases {
		got, err := parseDate(in, now)
		require.NoError(t, err, in)
		assert.Equal(t, want, got.Format("2006-01-02"), in)
	}

	_, err := parseDate("31.02.2025", now)
	assert.Error(t, err)
}

func TestParsePeriod(t *testing.T) {
	now := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.Local)

	for in, want := range map[string][2]int{
		"":        {9, 2025},
		"03.2024": {3, 2024},
		"3.2024":  {3, 2024},
		"03/2024": {3, 2024},
		"2024-03": {3, 2024},
		"11":      {11, 2025},
	} {
		m, y, err := parsePeriod(in, now)
		require.NoError(t, err, in)
		assert.Equal(t, want, [2]int{int(m), y}, in)
	}

	_, _, err := parsePeriod("13", now)
	assert.Error(t, err)

	y, ok := parseYear("2024")
	assert.True(t, ok)
	assert.Equal(t, 2024, y)
	_, ok = parseYear("24")
	assert.False(t, ok)
}
