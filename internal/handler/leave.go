package handler

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"timesheet-bot/internal/models"
	"timesheet-bot/internal/service"
)

func (h *Handler) addLeave(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	fields := strings.Fields(args)
	if len(fields) < 3 || len(fields) > 4 {
		h.reply(chatID, `Formato: /leave dip tipo dal [al]
Tipi: ferie, permesso, malattia

Esempi:
/leave 1 ferie 04.08.2025 15.08.2025
/leave Anna malattia 10.03.2025`)
		return
	}

	emp, err := h.employees.Resolve(fields[0])
	if err != nil {
		h.replyError(chatID, "Assenza non salvata", err)
		return
	}
	leaveType, err := service.ParseLeaveType(fields[1])
	if err != nil {
		h.replyError(chatID, "Assenza non salvata", err)
		return
	}
	start, err := parseDate(fields[2], h.now())
	if err != nil {
		h.replyError(chatID, "Data di inizio non valida", err)
		return
	}
	end := start
	if len(fields) == 4 {
		if end, err = parseDate(fields[3], h.now()); err != nil {
			h.replyError(chatID, "Data di fine non valida", err)
			return
		}
	}

	l, err := h.leaves.Add(emp.ID, leaveType, start, end)
	if err != nil {
		h.replyError(chatID, "Assenza non salvata", err)
		return
	}
	h.reply(chatID, fmt.Sprintf("✅ %s registrata per %s: %s → %s (%d giorni).\nID richiesta: %d",
		l.Type, emp.Name, l.StartDate, l.EndDate, service.CalendarDays(l), l.ID))
}

func (h *Handler) showLeaves(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	var employeeID uint
	if ref := strings.TrimSpace(args); ref != "" {
		emp, err := h.employees.Resolve(ref)
		if err != nil {
			h.replyError(chatID, "Assenze non disponibili", err)
			return
		}
		employeeID = emp.ID
	}

	names := map[uint]string{}
	for _, e := range h.employees.GetAll() {
		names[e.ID] = e.Name
	}
	h.reply(chatID, service.FormatLeaves(h.leaves.List(employeeID), names))
}

func (h *Handler) deleteLeave(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	id, ok := parseID(args)
	if !ok {
		h.reply(chatID, "Formato: /delleave id")
		return
	}
	if err := h.leaves.Delete(id); err != nil {
		h.replyError(chatID, "Assenza non eliminata", err)
		return
	}
	h.reply(chatID, "✅ Assenza eliminata.")
}

func (h *Handler) approveLeave(message *tgbotapi.Message, args string) {
	h.changeLeaveStatus(message, args, h.leaves.Approve)
}

func (h *Handler) rejectLeave(message *tgbotapi.Message, args string) {
	h.changeLeaveStatus(message, args, h.leaves.Reject)
}

func (h *Handler) changeLeaveStatus(message *tgbotapi.Message, args string, apply func(uint) (*models.LeaveRequest, error)) {
	chatID := message.Chat.ID

	id, ok := parseID(args)
	if !ok {
		h.reply(chatID, "Formato: /"+message.Command()+" id")
		return
	}
	l, err := apply(id)
	if err != nil {
		h.replyError(chatID, "Stato non aggiornato", err)
		return
	}
	h.reply(chatID, fmt.Sprintf("✅ Richiesta #%d: %s.", l.ID, l.Status))
}

func parseID(s string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(s), "#"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
