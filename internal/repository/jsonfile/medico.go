package jsonfile

import (
	"context"

	"github.com/nahuelfigueredo/app-web-doctor/internal/model"
	"github.com/nahuelfigueredo/app-web-doctor/internal/repository"
)

type MedicoRepository struct {
	store *Store
}

func NewMedicoRepository(store *Store) *MedicoRepository {
	return &MedicoRepository{store: store}
}

func (r *MedicoRepository) Get(ctx context.Context) (*model.Medico, error) {
	r.store.medicoMu.Lock()
	defer r.store.medicoMu.Unlock()

	medico, err := r.store.loadMedico()
	if err != nil {
		return nil, err
	}
	if medico == nil {
		return nil, repository.ErrMedicoNotFound
	}
	return medico, nil
}

// Create persists the singleton record. Registration is permitted only while
// the document is null; the record is never replaced afterwards.
func (r *MedicoRepository) Create(ctx context.Context, medico *model.Medico) error {
	r.store.medicoMu.Lock()
	defer r.store.medicoMu.Unlock()

	existing, err := r.store.loadMedico()
	if err != nil {
		return err
	}
	if existing != nil {
		return repository.ErrMedicoExists
	}

	return r.store.saveMedico(medico)
}
