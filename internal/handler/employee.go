package handler

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"timesheet-bot/internal/service"
)

const (
	confirmDeleteEmployee = "confirm_delete_employee_"
	cancelDelete          = "cancel_delete"
)

func (h *Handler) showEmployees(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, service.FormatEmployeeList(h.employees.GetAll()))
}

func (h *Handler) addEmployee(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	parts := strings.Split(args, "|")
	if args == "" || len(parts) != 3 {
		h.reply(chatID, "Formato: /addemployee Nome | Ruolo | ore settimanali\nEsempio: /addemployee Mario Rossi | Cuoco | 40")
		return
	}

	weekly, err := service.ParseHours(parts[2])
	if err != nil || weekly <= 0 {
		h.reply(chatID, "❌ Ore settimanali non valide.")
		return
	}

	emp, err := h.employees.Create(parts[0], parts[1], weekly)
	if err != nil {
		h.replyError(chatID, "Dipendente non creato", err)
		return
	}
	h.reply(chatID, "✅ Dipendente aggiunto.\n\n"+service.FormatEmployee(emp))
}

func (h *Handler) editSchedule(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	fields := strings.Fields(args)
	if len(fields) != 8 {
		h.reply(chatID, "Formato: /editschedule dip Lun Mar Mer Gio Ven Sab Dom\nEsempio: /editschedule 1 8 8 8 8 4 0 0")
		return
	}

	emp, err := h.employees.Resolve(fields[0])
	if err != nil {
		h.replyError(chatID, "Orario non salvato", err)
		return
	}
	schedule, err := service.ParseSchedule(fields[1:])
	if err != nil {
		h.replyError(chatID, "Orario non salvato", err)
		return
	}
	emp, err = h.employees.UpdateSchedule(emp.ID, schedule)
	if err != nil {
		h.replyError(chatID, "Orario non salvato", err)
		return
	}
	h.reply(chatID, "✅ Orario aggiornato.\n\n"+service.FormatEmployee(emp))
}

func (h *Handler) deleteEmployee(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	if strings.TrimSpace(args) == "" {
		h.reply(chatID, "Formato: /delemployee dip")
		return
	}
	emp, err := h.employees.Resolve(args)
	if err != nil {
		h.replyError(chatID, "Eliminazione non possibile", err)
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("⚠️ Eliminare %s? Le ore registrate restano in archivio ma non compariranno nei report.", emp.Name))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Elimina", confirmDeleteEmployee+strconv.FormatUint(uint64(emp.ID), 10)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Annulla", cancelDelete),
		),
	)
	if _, err := h.bot.Send(msg); err != nil {
		h.logger.WithError(err).Error("Failed to send confirmation")
	}
}

func (h *Handler) deleteEmployeeConfirmed(chatID int64, id uint) {
	if err := h.employees.Delete(id); err != nil {
		h.replyError(chatID, "Eliminazione non riuscita", err)
		return
	}
	h.reply(chatID, "✅ Dipendente eliminato.")
}
