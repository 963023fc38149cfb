package domain

import "errors"

var (
	ErrEquipmentNotFound  = errors.New("equipment not found")
	ErrBookingConflict    = errors.New("equipment already booked for selected dates")
	ErrInvalidRange       = errors.New("from time must be before to time")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
