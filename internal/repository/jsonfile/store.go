package jsonfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nahuelfigueredo/app-web-doctor/internal/model"
)

// Store persists the two application documents as flat JSON files, rewritten
// whole on every mutation. One mutex per document serializes its
// read-modify-write cycle; there is no durability guarantee beyond the write.
type Store struct {
	turnosPath string
	medicoPath string

	turnosMu sync.Mutex
	medicoMu sync.Mutex
}

// NewStore opens the store, seeding each file with an empty document when it
// does not exist so subsequent reads never fail on a missing file.
func NewStore(turnosPath, medicoPath string) (*Store, error) {
	s := &Store{
		turnosPath: turnosPath,
		medicoPath: medicoPath,
	}

	if err := seedFile(turnosPath, []byte("[]")); err != nil {
		return nil, fmt.Errorf("failed to initialize turnos file: %w", err)
	}
	if err := seedFile(medicoPath, []byte("null")); err != nil {
		return nil, fmt.Errorf("failed to initialize medico file: %w", err)
	}

	return s, nil
}

func seedFile(path string, empty []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, empty, 0o644)
}

// loadTurnos reads the full turno collection. Empty content is an empty
// collection; unreadable or malformed content is an error, no recovery.
func (s *Store) loadTurnos() ([]*model.Turno, error) {
	data, err := os.ReadFile(s.turnosPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read turnos file: %w", err)
	}
	if len(data) == 0 {
		return []*model.Turno{}, nil
	}

	var turnos []*model.Turno
	if err := json.Unmarshal(data, &turnos); err != nil {
		return nil, fmt.Errorf("turnos file is corrupt: %w", err)
	}
	if turnos == nil {
		turnos = []*model.Turno{}
	}
	return turnos, nil
}

// saveTurnos overwrites the file with the full pretty-printed collection.
func (s *Store) saveTurnos(turnos []*model.Turno) error {
	if turnos == nil {
		turnos = []*model.Turno{}
	}
	data, err := json.MarshalIndent(turnos, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize turnos: %w", err)
	}
	if err := os.WriteFile(s.turnosPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write turnos file: %w", err)
	}
	return nil
}

// loadMedico reads the practitioner document. A null document means no
// medico has been registered; the caller maps that to its own sentinel.
func (s *Store) loadMedico() (*model.Medico, error) {
	data, err := os.ReadFile(s.medicoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read medico file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var medico *model.Medico
	if err := json.Unmarshal(data, &medico); err != nil {
		return nil, fmt.Errorf("medico file is corrupt: %w", err)
	}
	return medico, nil
}

// saveMedico overwrites the file with the record, or an explicit null when
// medico is nil.
func (s *Store) saveMedico(medico *model.Medico) error {
	data, err := json.MarshalIndent(medico, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize medico: %w", err)
	}
	if err := os.WriteFile(s.medicoPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write medico file: %w", err)
	}
	return nil
}
