package commands

import (
	"context"

	"stablebook/internal/domain/booking"
	"stablebook/internal/domain/horse"
	"stablebook/internal/infra"
	"stablebook/internal/pkg/errs"
	"stablebook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrHorseNotFound = errs.New("horse not found")

type HorseRequest struct {
	Name     string
	Breed    string
	MinLevel string
	Active   bool
}

type CreateHorseResult struct {
	HorseID uuid.UUID
}

type HorseCommands interface {
	CreateHorse(ctx context.Context, req HorseRequest) (*CreateHorseResult, error)
	UpdateHorse(ctx context.Context, id uuid.UUID, req HorseRequest) error
}

type horseUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewHorseUseCase(uow shared.UnitOfWork) HorseCommands {
	return &horseUseCaseImpl{uow: uow}
}

func (uc *horseUseCaseImpl) CreateHorse(ctx context.Context, req HorseRequest) (*CreateHorseResult, error) {
	minLevel, err := booking.NewExperienceLevel(req.MinLevel)
	if err != nil {
		return nil, err
	}

	entity, err := horse.NewHorse(req.Name, req.Breed, minLevel)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Horses().Create(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, err
	}

	return &CreateHorseResult{HorseID: entity.ID()}, nil
}

// UpdateHorse covers renames and retirement. Retiring keeps the horse on
// finished bookings; admission stops offering it.
func (uc *horseUseCaseImpl) UpdateHorse(ctx context.Context, id uuid.UUID, req HorseRequest) error {
	minLevel, err := booking.NewExperienceLevel(req.MinLevel)
	if err != nil {
		return err
	}

	validated, err := horse.NewHorse(req.Name, req.Breed, minLevel)
	if err != nil {
		return err
	}

	entity := horse.ReconstructHorse(
		id,
		validated.Name(), validated.Breed(), validated.MinLevel(),
		req.Active,
		validated.CreatedAt(), validated.UpdatedAt(),
	)

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Horses().Update(ctx, tx.DB(), entity); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrHorseNotFound
			}
			return err
		}
		return nil
	})
}
