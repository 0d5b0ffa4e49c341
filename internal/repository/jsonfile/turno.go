package jsonfile

import (
	"context"

	"github.com/nahuelfigueredo/app-web-doctor/internal/model"
	"github.com/nahuelfigueredo/app-web-doctor/internal/repository"
)

type TurnoRepository struct {
	store *Store
}

func NewTurnoRepository(store *Store) *TurnoRepository {
	return &TurnoRepository{store: store}
}

func (r *TurnoRepository) List(ctx context.Context) ([]*model.Turno, error) {
	r.store.turnosMu.Lock()
	defer r.store.turnosMu.Unlock()

	return r.store.loadTurnos()
}

func (r *TurnoRepository) Get(ctx context.Context, id int64) (*model.Turno, error) {
	r.store.turnosMu.Lock()
	defer r.store.turnosMu.Unlock()

	turnos, err := r.store.loadTurnos()
	if err != nil {
		return nil, err
	}

	for _, t := range turnos {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, repository.ErrTurnoNotFound
}

// Create appends the turno after a linear scan for a live slot collision.
// The scan and the write happen under the document lock, so two concurrent
// creations for the same slot cannot both pass the check.
func (r *TurnoRepository) Create(ctx context.Context, turno *model.Turno) error {
	r.store.turnosMu.Lock()
	defer r.store.turnosMu.Unlock()

	turnos, err := r.store.loadTurnos()
	if err != nil {
		return err
	}

	for _, t := range turnos {
		if t.Fecha == turno.Fecha && t.Hora == turno.Hora && !t.Cancelado() {
			return repository.ErrSlotTaken
		}
	}

	turnos = append(turnos, turno)
	return r.store.saveTurnos(turnos)
}

func (r *TurnoRepository) UpdateEstado(ctx context.Context, id int64, estado string) (*model.Turno, error) {
	r.store.turnosMu.Lock()
	defer r.store.turnosMu.Unlock()

	turnos, err := r.store.loadTurnos()
	if err != nil {
		return nil, err
	}

	var updated *model.Turno
	for _, t := range turnos {
		if t.ID == id {
			if estado != "" {
				t.Estado = estado
			}
			updated = t
			break
		}
	}
	if updated == nil {
		return nil, repository.ErrTurnoNotFound
	}

	if err := r.store.saveTurnos(turnos); err != nil {
		return nil, err
	}
	return updated, nil
}
