package handler

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"timesheet-bot/internal/export"
	"timesheet-bot/internal/models"
	"timesheet-bot/internal/service"
	"timesheet-bot/pkg/calendar"
)

func (h *Handler) logHours(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	fields := strings.Fields(args)
	if len(fields) != 3 {
		h.reply(chatID, "Formato: /log dip data ore\nEsempio: /log 1 01.09.2025 7.30\nZero ore cancella la giornata.")
		return
	}

	emp, err := h.employees.Resolve(fields[0])
	if err != nil {
		h.replyError(chatID, "Ore non salvate", err)
		return
	}
	date, err := parseDate(fields[1], h.now())
	if err != nil {
		h.replyError(chatID, "Ore non salvate", err)
		return
	}
	hrs, err := h.timesheet.LogHours(emp.ID, date, fields[2])
	if err != nil {
		h.replyError(chatID, "Ore non salvate", err)
		return
	}

	if hrs == 0 {
		h.reply(chatID, fmt.Sprintf("🗑 Ore di %s del %s cancellate.", emp.Name, calendar.FormatDateISO(date)))
		return
	}
	h.reply(chatID, fmt.Sprintf("✅ %s, %s: %s ore.", emp.Name, calendar.FormatDateISO(date), export.Hours(hrs)))
}

// logPermit stores the worked hours left after the permit. A Permesso
// request is created for the day when none covers it yet; days already
// covered by Ferie or Malattia are refused.
func (h *Handler) logPermit(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	fields := strings.Fields(args)
	if len(fields) != 3 {
		h.reply(chatID, "Formato: /permit dip data ore_permesso\nEsempio: /permit 1 02.09.2025 3")
		return
	}

	emp, err := h.employees.Resolve(fields[0])
	if err != nil {
		h.replyError(chatID, "Permesso non salvato", err)
		return
	}
	date, err := parseDate(fields[1], h.now())
	if err != nil {
		h.replyError(chatID, "Permesso non salvato", err)
		return
	}

	if _, err := service.ParsePermit(fields[2]); err != nil {
		h.replyError(chatID, "Permesso non salvato", err)
		return
	}

	var created *models.LeaveRequest
	switch l := h.leaves.LeaveOn(emp.ID, date); {
	case l == nil:
		req, err := h.leaves.Add(emp.ID, models.LeavePermesso, date, date)
		if err != nil {
			h.replyError(chatID, "Permesso non salvato", err)
			return
		}
		created = req
	case l.Type != models.LeavePermesso:
		h.replyError(chatID, "Permesso non salvato", service.ErrFullDayLeave)
		return
	}

	worked, err := h.timesheet.LogPermit(emp.ID, date, fields[2])
	if err != nil {
		if created != nil {
			if delErr := h.leaves.Delete(created.ID); delErr != nil {
				h.logger.WithError(delErr).WithField("id", created.ID).Error("Failed to remove permit request")
			}
		}
		h.replyError(chatID, "Permesso non salvato", err)
		return
	}
	h.reply(chatID, fmt.Sprintf("✅ Permesso registrato per %s il %s. Ore lavorate: %s.",
		emp.Name, calendar.FormatDateISO(date), export.Hours(worked)))
}

func (h *Handler) applyPreset(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	ref, period, _ := strings.Cut(strings.TrimSpace(args), " ")
	if ref == "" {
		h.reply(chatID, "Formato: /preset dip [MM.AAAA]")
		return
	}
	emp, err := h.employees.Resolve(ref)
	if err != nil {
		h.replyError(chatID, "Compilazione non riuscita", err)
		return
	}
	month, year, err := parsePeriod(period, h.now())
	if err != nil {
		h.replyError(chatID, "Compilazione non riuscita", err)
		return
	}

	days, err := h.timesheet.ApplyPreset(emp.ID, month, year)
	if err != nil {
		h.replyError(chatID, "Compilazione non riuscita", err)
		return
	}
	h.reply(chatID, fmt.Sprintf("✅ %s compilato per %s: %d giorni con orario standard.",
		export.Period(month, year), emp.Name, days))
}

func (h *Handler) showDay(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	ref, dateStr, _ := strings.Cut(strings.TrimSpace(args), " ")
	if ref == "" {
		h.reply(chatID, "Formato: /day dip [data]")
		return
	}
	emp, err := h.employees.Resolve(ref)
	if err != nil {
		h.replyError(chatID, "Giornata non disponibile", err)
		return
	}
	date, err := parseDate(strings.TrimSpace(dateStr), h.now())
	if err != nil {
		h.replyError(chatID, "Giornata non disponibile", err)
		return
	}

	day, err := h.timesheet.Day(emp.ID, date)
	if err != nil {
		h.replyError(chatID, "Giornata non disponibile", err)
		return
	}
	h.reply(chatID, service.FormatDay(emp, day))
}
