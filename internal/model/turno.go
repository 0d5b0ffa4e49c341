package model

import "time"

const (
	// EstadoPending is assigned to every turno at creation.
	EstadoPending = "pending"
	// EstadoCancelado frees the slot for a new booking. Any other string is
	// accepted as a practitioner-assigned estado.
	EstadoCancelado = "cancelado"
)

// Turno is a single appointment request. Fecha and Hora together form the
// slot key: at most one non-cancelled turno may exist per (fecha, hora).
type Turno struct {
	ID        int64     `json:"id"`
	Fecha     string    `json:"fecha"`
	Hora      string    `json:"hora"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Motivo    string    `json:"motivo"`
	Estado    string    `json:"estado"`
	CreatedAt time.Time `json:"createdAt"`
}

// Cancelado reports whether this turno no longer occupies its slot.
func (t *Turno) Cancelado() bool {
	return t.Estado == EstadoCancelado
}

// SlotView is the redacted public projection of a turno. It must never carry
// patient-identifying fields.
type SlotView struct {
	Fecha  string `json:"fecha"`
	Hora   string `json:"hora"`
	Estado string `json:"estado"`
}

// PublicView projects the turno to its slot occupancy data.
func (t *Turno) PublicView() SlotView {
	return SlotView{
		Fecha:  t.Fecha,
		Hora:   t.Hora,
		Estado: t.Estado,
	}
}

// CreateTurnoRequest carries the booking fields. Fecha and hora are opaque
// strings: the slot key is exact string equality, so no format is imposed.
type CreateTurnoRequest struct {
	Fecha    string `json:"fecha" binding:"required"`
	Hora     string `json:"hora" binding:"required"`
	Nombre   string `json:"nombre" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Telefono string `json:"telefono" binding:"required"`
	Motivo   string `json:"motivo"`
}

type UpdateEstadoRequest struct {
	Estado *string `json:"estado"`
}
