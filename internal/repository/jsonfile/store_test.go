package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nahuelfigueredo/app-web-doctor/internal/model"
	"github.com/nahuelfigueredo/app-web-doctor/internal/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(filepath.Join(dir, "turnos.json"), filepath.Join(dir, "medico.json"))
	require.NoError(t, err)
	return store
}

func testTurno(id int64, fecha, hora string) *model.Turno {
	return &model.Turno{
		ID:        id,
		Fecha:     fecha,
		Hora:      hora,
		Nombre:    "Juan Pérez",
		Email:     "juan@example.com",
		Telefono:  "1155551234",
		Estado:    model.EstadoPending,
		CreatedAt: time.Now().UTC(),
	}
}

func TestNewStoreSeedsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	turnosPath := filepath.Join(dir, "nested", "turnos.json")
	medicoPath := filepath.Join(dir, "nested", "medico.json")

	_, err := NewStore(turnosPath, medicoPath)
	require.NoError(t, err)

	turnosData, err := os.ReadFile(turnosPath)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(turnosData))

	medicoData, err := os.ReadFile(medicoPath)
	require.NoError(t, err)
	assert.Equal(t, "null", string(medicoData))
}

func TestNewStoreKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	turnosPath := filepath.Join(dir, "turnos.json")
	medicoPath := filepath.Join(dir, "medico.json")
	require.NoError(t, os.WriteFile(turnosPath, []byte(`[{"id":1,"fecha":"2024-01-01","hora":"10:00","estado":"pending","createdAt":"2024-01-01T00:00:00Z"}]`), 0o644))
	require.NoError(t, os.WriteFile(medicoPath, []byte("null"), 0o644))

	store, err := NewStore(turnosPath, medicoPath)
	require.NoError(t, err)

	turnos, err := NewTurnoRepository(store).List(context.Background())
	require.NoError(t, err)
	require.Len(t, turnos, 1)
	assert.Equal(t, int64(1), turnos[0].ID)
}

func TestTurnoRepositoryEmptyFileIsEmptyList(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.turnosPath, nil, 0o644))

	turnos, err := NewTurnoRepository(store).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, turnos)
}

func TestTurnoRepositoryCorruptFileFails(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, os.WriteFile(store.turnosPath, []byte("{not json"), 0o644))

	_, err := NewTurnoRepository(store).List(context.Background())
	assert.Error(t, err)
}

func TestTurnoRepositoryCreateAndList(t *testing.T) {
	repo := NewTurnoRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testTurno(1, "2024-01-01", "10:00")))
	require.NoError(t, repo.Create(ctx, testTurno(2, "2024-01-01", "11:00")))

	turnos, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, turnos, 2)
}

func TestTurnoRepositorySlotConflict(t *testing.T) {
	repo := NewTurnoRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testTurno(1, "2024-01-01", "10:00")))

	err := repo.Create(ctx, testTurno(2, "2024-01-01", "10:00"))
	assert.ErrorIs(t, err, repository.ErrSlotTaken)

	// A cancelled turno frees the slot.
	_, err = repo.UpdateEstado(ctx, 1, model.EstadoCancelado)
	require.NoError(t, err)
	assert.NoError(t, repo.Create(ctx, testTurno(3, "2024-01-01", "10:00")))
}

func TestTurnoRepositoryUpdateEstado(t *testing.T) {
	repo := NewTurnoRepository(newTestStore(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testTurno(7, "2024-02-02", "09:30")))

	updated, err := repo.UpdateEstado(ctx, 7, "confirmado")
	require.NoError(t, err)
	assert.Equal(t, "confirmado", updated.Estado)

	// Any string is a valid estado; the field is not validated.
	updated, err = repo.UpdateEstado(ctx, 7, "en sala de espera")
	require.NoError(t, err)
	assert.Equal(t, "en sala de espera", updated.Estado)

	// Empty estado leaves the field untouched.
	updated, err = repo.UpdateEstado(ctx, 7, "")
	require.NoError(t, err)
	assert.Equal(t, "en sala de espera", updated.Estado)
}

func TestTurnoRepositoryUpdateEstadoNotFound(t *testing.T) {
	store := newTestStore(t)
	repo := NewTurnoRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testTurno(1, "2024-01-01", "10:00")))
	before, err := os.ReadFile(store.turnosPath)
	require.NoError(t, err)

	_, err = repo.UpdateEstado(ctx, 999, model.EstadoCancelado)
	assert.ErrorIs(t, err, repository.ErrTurnoNotFound)

	after, err := os.ReadFile(store.turnosPath)
	require.NoError(t, err)
	assert.Equal(t, before, after, "a failed update must not alter the stored collection")
}

func TestMedicoRepositorySingleton(t *testing.T) {
	repo := NewMedicoRepository(newTestStore(t))
	ctx := context.Background()

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, repository.ErrMedicoNotFound)

	require.NoError(t, repo.Create(ctx, &model.Medico{Email: "medico@example.com", PasswordHash: "hash"}))

	medico, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "medico@example.com", medico.Email)

	err = repo.Create(ctx, &model.Medico{Email: "otro@example.com", PasswordHash: "hash2"})
	assert.ErrorIs(t, err, repository.ErrMedicoExists)

	// The original record must survive the rejected registration.
	medico, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "medico@example.com", medico.Email)
}
