package service

import "errors"

var (
	ErrInvalidRange     = errors.New("la data di fine precede quella di inizio")
	ErrInvalidLeaveType = errors.New("tipo di assenza non valido (ferie, permesso, malattia)")
	ErrInvalidInput     = errors.New("valore ore non valido")
	ErrUnknownFormat    = errors.New("formato non supportato (csv, xlsx, pdf)")
	ErrUnknownReport    = errors.New("report non supportato (mese, anno, dettaglio)")
	ErrFullDayLeave     = errors.New("il giorno è già coperto da ferie o malattia")
)
