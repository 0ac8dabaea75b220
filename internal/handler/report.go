package handler

import (
	"fmt"
	"os"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"timesheet-bot/internal/export"
	"timesheet-bot/internal/service"
)

func (h *Handler) showMonth(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	month, year, err := parsePeriod(args, h.now())
	if err != nil {
		h.replyError(chatID, "Report non disponibile", err)
		return
	}
	h.reply(chatID, service.FormatMonthly(h.reports.Monthly(month, year), month, year))
}

// showYear accepts an optional employee and an optional year, in any order.
func (h *Handler) showYear(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	year := h.now().Year()
	var employeeID uint
	for _, f := range strings.Fields(args) {
		if y, ok := parseYear(f); ok {
			year = y
			continue
		}
		emp, err := h.employees.Resolve(f)
		if err != nil {
			h.replyError(chatID, "Report non disponibile", err)
			return
		}
		employeeID = emp.ID
	}

	stats, err := h.reports.Annual(employeeID, year)
	if err != nil {
		h.replyError(chatID, "Report non disponibile", err)
		return
	}
	if len(stats) == 0 {
		h.reply(chatID, "Nessun dipendente registrato.")
		return
	}
	for _, a := range stats {
		h.reply(chatID, service.FormatAnnual(a))
	}
}

func (h *Handler) showDetail(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	ref, period, _ := strings.Cut(strings.TrimSpace(args), " ")
	if ref == "" {
		h.reply(chatID, "Formato: /detail dip [MM.AAAA]")
		return
	}
	emp, err := h.employees.Resolve(ref)
	if err != nil {
		h.replyError(chatID, "Dettaglio non disponibile", err)
		return
	}
	month, year, err := parsePeriod(period, h.now())
	if err != nil {
		h.replyError(chatID, "Dettaglio non disponibile", err)
		return
	}

	emp, rows, err := h.reports.Detail(emp.ID, month, year)
	if err != nil {
		h.replyError(chatID, "Dettaglio non disponibile", err)
		return
	}
	h.reply(chatID, service.FormatDetail(emp, rows))
}

// exportReport renders a report file and uploads it to the chat.
func (h *Handler) exportReport(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	fields := strings.Fields(args)
	if len(fields) < 2 {
		h.reply(chatID, `Formato: /export tipo formato [periodo] [dip]
Tipi: mese, anno, dettaglio
Formati: csv, xlsx, pdf

Esempi:
/export mese xlsx 09.2025
/export anno pdf 2025 1
/export dettaglio csv 09.2025 Anna`)
		return
	}

	kind, err := service.ParseReportKind(fields[0])
	if err != nil {
		h.replyError(chatID, "Export non riuscito", err)
		return
	}
	req := service.ExportRequest{Kind: kind, Format: fields[1]}
	req.Month, req.Year = h.now().Month(), h.now().Year()

	for _, f := range fields[2:] {
		if y, ok := parseYear(f); ok {
			req.Year = y
			continue
		}
		if isPeriod(f) {
			if req.Month, req.Year, err = parsePeriod(f, h.now()); err != nil {
				h.replyError(chatID, "Export non riuscito", err)
				return
			}
			continue
		}
		emp, err := h.employees.Resolve(f)
		if err != nil {
			h.replyError(chatID, "Export non riuscito", err)
			return
		}
		req.EmployeeID = emp.ID
	}
	if kind == service.ReportDetail && req.EmployeeID == 0 {
		h.reply(chatID, "❌ Il dettaglio richiede un dipendente.")
		return
	}

	dir, err := os.MkdirTemp("", "timesheet-export-")
	if err != nil {
		h.replyError(chatID, "Export non riuscito", err)
		return
	}
	defer os.RemoveAll(dir)

	req.Dir = dir
	path, err := h.reports.Export(req)
	if err != nil {
		h.replyError(chatID, "Export non riuscito", err)
		return
	}

	caption := export.Period(req.Month, req.Year)
	if kind == service.ReportAnnual {
		caption = fmt.Sprintf("Anno %d", req.Year)
	}
	if err := h.sender.SendFile(chatID, path, caption); err != nil {
		h.replyError(chatID, "Invio file non riuscito", err)
	}
}

func (h *Handler) mailReport(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	month, year, err := parsePeriod(args, h.now())
	if err != nil {
		h.replyError(chatID, "E-mail non inviata", err)
		return
	}

	dir, err := os.MkdirTemp("", "timesheet-mail-")
	if err != nil {
		h.replyError(chatID, "E-mail non inviata", err)
		return
	}
	defer os.RemoveAll(dir)

	to, err := h.reports.MailMonthly(month, year, dir)
	if err != nil {
		h.replyError(chatID, "E-mail non inviata", err)
		return
	}
	h.reply(chatID, fmt.Sprintf("📧 Riepilogo %s inviato a %s.", export.Period(month, year), strings.Join(to, ", ")))
}

func (h *Handler) whatsAppReport(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	var period, phone string
	for _, f := range strings.Fields(args) {
		if isPeriod(f) && !strings.HasPrefix(f, "+") {
			period = f
			continue
		}
		phone += f
	}
	month, year, err := parsePeriod(period, h.now())
	if err != nil {
		h.replyError(chatID, "Messaggio non disponibile", err)
		return
	}

	text, link := h.reports.WhatsApp(month, year, phone)
	h.reply(chatID, text)
	h.reply(chatID, "📲 Condividi su WhatsApp:\n"+link)
}
