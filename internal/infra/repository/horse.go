package repository

import (
	"context"

	"stablebook/internal/domain/horse"
	"stablebook/internal/infra"
	"stablebook/internal/infra/db"
)

type HorseRepository struct{}

func NewHorseRepository() *HorseRepository {
	return &HorseRepository{}
}

func (r *HorseRepository) Create(ctx context.Context, dbtx db.DBTX, h *horse.Horse) error {
	const query = `
		INSERT INTO horses (id, name, breed, min_level, active)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := dbtx.Exec(ctx, query, h.ID(), h.Name(), h.Breed(), h.MinLevel().String(), h.Active())
	if err != nil {
		return wrapWriteErr("failed to create horse", err)
	}

	return nil
}

func (r *HorseRepository) Update(ctx context.Context, dbtx db.DBTX, h *horse.Horse) error {
	const query = `
		UPDATE horses
		SET name = $2, breed = $3, min_level = $4, active = $5, updated_at = now()
		WHERE id = $1
	`

	tag, err := dbtx.Exec(ctx, query, h.ID(), h.Name(), h.Breed(), h.MinLevel().String(), h.Active())
	if err != nil {
		return wrapWriteErr("failed to update horse", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("horse not found", nil, infra.KindNotFound)
	}

	return nil
}
