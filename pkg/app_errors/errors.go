package apperrors

import "errors"

var (
	ErrRaffleNotFound      = errors.New("raffle not found")
	ErrRaffleNotActive     = errors.New("raffle not active")
	ErrRaffleNotFinished   = errors.New("raffle not finished")
	ErrSlugTaken           = errors.New("slug already in use")
	ErrOrderNotFound       = errors.New("order not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrWinnerNotFound      = errors.New("winner not found")
	ErrTicketsUnavailable  = errors.New("tickets unavailable")
	ErrTicketOutOfRange    = errors.New("ticket number out of range")
	ErrNoTicketsOccupied   = errors.New("no tickets occupied")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidInput        = errors.New("invalid input")
	ErrVersionConflict     = errors.New("settings version conflict")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInternalServerError = errors.New("internal server error")
)
