package readstore

import (
	"context"

	"stablebook/internal/infra"
	"stablebook/internal/infra/db"
	"stablebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type HorseReadStore struct {
	db db.DBTX
}

func NewHorseReadStore(dbtx db.DBTX) *HorseReadStore {
	return &HorseReadStore{db: dbtx}
}

func (r *HorseReadStore) FindAll(ctx context.Context, activeOnly bool) ([]*queries.HorseView, error) {
	query := `
		SELECT id, name, breed, min_level, active
		FROM horses
		ORDER BY name
	`
	if activeOnly {
		query = `
			SELECT id, name, breed, min_level, active
			FROM horses
			WHERE active = true
			ORDER BY name
		`
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list horses", err)
	}
	defer rows.Close()

	views := []*queries.HorseView{}
	for rows.Next() {
		var view queries.HorseView
		if err := rows.Scan(&view.ID, &view.Name, &view.Breed, &view.MinLevel, &view.Active); err != nil {
			return nil, infra.WrapRepoErr("failed to scan horse", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate horses", err)
	}

	return views, nil
}

// ActiveCount counts how many of the given IDs are active horses, used to
// verify every requested horse exists and is assignable.
func (r *HorseReadStore) ActiveCount(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	const query = `
		SELECT COUNT(*)
		FROM horses
		WHERE active = true AND id = ANY($1)
	`

	var count int64
	if err := r.db.QueryRow(ctx, query, ids).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count active horses", err)
	}

	return count, nil
}
