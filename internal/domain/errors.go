package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrCompanyNotFound    = errors.New("empresa no encontrada")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrNoCompany          = errors.New("el usuario no pertenece a ninguna empresa")
	ErrSeatLimitReached   = errors.New("se alcanzó el límite de licencias contratadas")
	ErrInvalidSeatCount   = errors.New("cantidad de licencias inválida")
	ErrPlanNotFound       = errors.New("plan no encontrado")
	ErrPlanUnavailable    = errors.New("el plan aún no está disponible para compra")
	ErrNoSubscription     = errors.New("la empresa no tiene una suscripción activa")
	ErrInviteNotFound     = errors.New("invitación inexistente o ya aceptada")
	ErrUnknownModule      = errors.New("módulo desconocido")
	ErrInheritanceCycle   = errors.New("configuración inválida en la herencia de roles")
	ErrFieldNotEditable   = errors.New("campo no editable para el rol del usuario")
)

// FieldAccessError indica el campo concreto que FLAC impide modificar.
type FieldAccessError struct {
	Field      string
	Visibility string
}

func (e *FieldAccessError) Error() string {
	return fmt.Sprintf("el campo '%s' es de solo %s", e.Field, e.Visibility)
}

func (e *FieldAccessError) Unwrap() error { return ErrFieldNotEditable }
