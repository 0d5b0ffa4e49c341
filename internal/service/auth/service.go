package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/nahuelfigueredo/app-web-doctor/internal/model"
	"github.com/nahuelfigueredo/app-web-doctor/internal/repository"
	"github.com/nahuelfigueredo/app-web-doctor/pkg/auth"
	"github.com/nahuelfigueredo/app-web-doctor/pkg/security"
)

var (
	// ErrInvalidCredentials covers both a wrong email and a wrong password,
	// so the response never reveals which part failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMedicoExists is returned when registration is attempted twice.
	ErrMedicoExists = errors.New("medico already registered")
	// ErrNoMedico is returned on login before any registration.
	ErrNoMedico = errors.New("no medico registered")
)

type Service struct {
	medicoRepo repository.MedicoRepository
	jwtSvc     auth.JWTService
	hasher     security.PasswordHasher
}

func NewService(medicoRepo repository.MedicoRepository, jwtSvc auth.JWTService, hasher security.PasswordHasher) *Service {
	return &Service{
		medicoRepo: medicoRepo,
		jwtSvc:     jwtSvc,
		hasher:     hasher,
	}
}

// Register creates the singleton practitioner record. No session is
// established; the caller must log in afterwards.
func (s *Service) Register(ctx context.Context, email, password string) error {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	medico := &model.Medico{
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.medicoRepo.Create(ctx, medico); err != nil {
		if errors.Is(err, repository.ErrMedicoExists) {
			return ErrMedicoExists
		}
		return fmt.Errorf("failed to persist medico: %w", err)
	}
	return nil
}

// Login verifies the credentials against the stored record and issues a
// signed token carrying the medico's email.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	medico, err := s.medicoRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrMedicoNotFound) {
			return "", ErrNoMedico
		}
		return "", fmt.Errorf("failed to load medico: %w", err)
	}

	if medico.Email != email {
		return "", ErrInvalidCredentials
	}
	if err := s.hasher.Compare(medico.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtSvc.GenerateToken(medico.Email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
