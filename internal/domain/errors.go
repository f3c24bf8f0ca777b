package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrTruckNotFound    = errors.New("camión no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrUsernameTaken    = errors.New("el username ya está registrado")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrInvalidDirection = errors.New("tipo debe ser 'entrada' o 'salida'")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrConflict         = errors.New("conflicto con el estado actual")
)
