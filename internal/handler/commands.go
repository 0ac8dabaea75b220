package handler

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start", "help":
		h.sendHelpMessage(message)

	// Company settings
	case "company", "azienda":
		h.companySettings(message, args)
	case "closures", "chiusure":
		h.showClosures(message, args)

	// Employees
	case "employees", "dipendenti":
		h.showEmployees(message)
	case "addemployee":
		h.addEmployee(message, args)
	case "editschedule":
		h.editSchedule(message, args)
	case "delemployee":
		h.deleteEmployee(message, args)

	// Hours
	case "log", "ore":
		h.logHours(message, args)
	case "permit", "permesso":
		h.logPermit(message, args)
	case "preset":
		h.applyPreset(message, args)
	case "day", "giorno":
		h.showDay(message, args)

	// Leave requests
	case "leave", "assenza":
		h.addLeave(message, args)
	case "leaves", "assenze":
		h.showLeaves(message, args)
	case "delleave":
		h.deleteLeave(message, args)
	case "approve":
		h.approveLeave(message, args)
	case "reject":
		h.rejectLeave(message, args)

	// Reports
	case "month", "mese":
		h.showMonth(message, args)
	case "year", "anno":
		h.showYear(message, args)
	case "detail", "dettaglio":
		h.showDetail(message, args)
	case "export":
		h.exportReport(message, args)
	case "mail":
		h.mailReport(message, args)
	case "whatsapp":
		h.whatsAppReport(message, args)

	default:
		h.sendUnknownCommand(message)
	}
}

func (h *Handler) sendUnknownCommand(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, "❌ Comando sconosciuto. Usa /help per l'elenco dei comandi.")
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, `📋 Comandi disponibili

🏢 Azienda
/company - mostra le impostazioni
/company campo valore - imposta nome, indirizzo, piva, email, testo, giorni
/closures [MM.AAAA] - giorni di chiusura aziendale

👥 Dipendenti
/employees - elenco dipendenti
/addemployee Nome | Ruolo | ore settimanali
/editschedule dip Lun Mar Mer Gio Ven Sab Dom
/delemployee dip

⏰ Ore
/log dip data ore - es. /log 1 01.09.2025 7.30
/permit dip data ore_permesso
/preset dip [MM.AAAA] - compila il mese con l'orario standard
/day dip [data]

🏖️ Assenze
/leave dip ferie|permesso|malattia dal [al]
/leaves [dip]
/delleave id
/approve id, /reject id

📊 Report
/month [MM.AAAA]
/year [dip] [AAAA]
/detail dip [MM.AAAA]
/export mese|anno|dettaglio csv|xlsx|pdf [periodo] [dip]
/mail [MM.AAAA]
/whatsapp [MM.AAAA] [telefono]

"dip" è l'ID o il nome del dipendente. Le ore accettano 7,5 oppure 7.30 per sette ore e mezza.`)
}
