package repository

import (
	"context"
	"errors"

	"github.com/nahuelfigueredo/app-web-doctor/internal/model"
)

var (
	// ErrSlotTaken means a non-cancelled turno already holds the (fecha, hora) slot.
	ErrSlotTaken = errors.New("slot already taken")
	// ErrTurnoNotFound means no turno matches the requested id.
	ErrTurnoNotFound = errors.New("turno not found")
	// ErrMedicoExists means registration was attempted while a medico record exists.
	ErrMedicoExists = errors.New("medico already registered")
	// ErrMedicoNotFound means no medico has been registered yet.
	ErrMedicoNotFound = errors.New("medico not registered")
)

type (
	// TurnoRepository handles turno persistence. Implementations serialize
	// each document's read-modify-write cycle.
	TurnoRepository interface {
		List(ctx context.Context) ([]*model.Turno, error)
		Get(ctx context.Context, id int64) (*model.Turno, error)
		// Create appends the turno, returning ErrSlotTaken when a
		// non-cancelled turno already occupies its (fecha, hora) slot.
		Create(ctx context.Context, turno *model.Turno) error
		// UpdateEstado overwrites the estado of the matching turno. An empty
		// estado leaves the field unchanged but still rewrites the document.
		UpdateEstado(ctx context.Context, id int64, estado string) (*model.Turno, error)
	}

	// MedicoRepository handles the singleton practitioner record.
	MedicoRepository interface {
		// Get returns ErrMedicoNotFound while the document is null.
		Get(ctx context.Context) (*model.Medico, error)
		// Create returns ErrMedicoExists once a record is present.
		Create(ctx context.Context, medico *model.Medico) error
	}
)
