package turno

import (
	"context"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"github.com/nahuelfigueredo/app-web-doctor/internal/model"
	"github.com/nahuelfigueredo/app-web-doctor/internal/notification"
	"github.com/nahuelfigueredo/app-web-doctor/internal/repository"
)

const (
	slotsCacheKey     = "public_slots"
	slotsCacheTTL     = 30 * time.Second
	slotsCacheCleanup = 5 * time.Minute
)

type Service struct {
	repo     repository.TurnoRepository
	notifier notification.Service
	slots    *cache.Cache

	idMu   sync.Mutex
	lastID int64
}

func NewService(repo repository.TurnoRepository, notifier notification.Service) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		slots:    cache.New(slotsCacheTTL, slotsCacheCleanup),
	}
}

// nextID derives ids from the wall clock, as the stored documents expect
// monotonically increasing integer ids. The guard keeps two creations in the
// same millisecond from colliding within this process.
func (s *Service) nextID() int64 {
	s.idMu.Lock()
	defer s.idMu.Unlock()

	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// CreateTurno books the slot and returns the new record. The repository
// rejects the write when a non-cancelled turno already holds (fecha, hora).
func (s *Service) CreateTurno(ctx context.Context, req *model.CreateTurnoRequest) (*model.Turno, error) {
	turno := &model.Turno{
		ID:        s.nextID(),
		Fecha:     req.Fecha,
		Hora:      req.Hora,
		Nombre:    req.Nombre,
		Email:     req.Email,
		Telefono:  req.Telefono,
		Motivo:    req.Motivo,
		Estado:    model.EstadoPending,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, turno); err != nil {
		return nil, err
	}

	s.slots.Delete(slotsCacheKey)

	// Confirmation mail is best effort and never fails the booking.
	go func(t model.Turno) {
		if err := s.notifier.SendBookingConfirmation(context.Background(), &t); err != nil {
			log.Warn().Err(err).Int64("turno_id", t.ID).Msg("booking confirmation mail failed")
		}
	}(*turno)

	return turno, nil
}

// ListPublicSlots returns the redacted slot occupancy view, omitting every
// patient-identifying field.
func (s *Service) ListPublicSlots(ctx context.Context) ([]model.SlotView, error) {
	if cached, ok := s.slots.Get(slotsCacheKey); ok {
		return cached.([]model.SlotView), nil
	}

	turnos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]model.SlotView, 0, len(turnos))
	for _, t := range turnos {
		views = append(views, t.PublicView())
	}

	s.slots.SetDefault(slotsCacheKey, views)
	return views, nil
}

// ListTurnos returns the full unredacted collection.
func (s *Service) ListTurnos(ctx context.Context) ([]*model.Turno, error) {
	turnos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if turnos == nil {
		turnos = []*model.Turno{}
	}
	return turnos, nil
}

// UpdateEstado overwrites the estado of the matching turno. Any non-empty
// string is accepted; an absent estado leaves the record as it was.
func (s *Service) UpdateEstado(ctx context.Context, id int64, estado string) (*model.Turno, error) {
	turno, err := s.repo.UpdateEstado(ctx, id, estado)
	if err != nil {
		return nil, err
	}

	s.slots.Delete(slotsCacheKey)
	return turno, nil
}
