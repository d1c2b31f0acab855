package favourite

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines favourite data access
type Repository interface {
	ListIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Add(ctx context.Context, userID, tourID uuid.UUID) error
	Remove(ctx context.Context, userID, tourID uuid.UUID) error
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates favourite repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT tour_id
		FROM favourites
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *repository) Add(ctx context.Context, userID, tourID uuid.UUID) error {
	query := `
		INSERT INTO favourites (user_id, tour_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, tour_id) DO NOTHING
	`
	_, err := r.db.ExecContext(ctx, query, userID, tourID)
	return err
}

func (r *repository) Remove(ctx context.Context, userID, tourID uuid.UUID) error {
	query := `DELETE FROM favourites WHERE user_id = $1 AND tour_id = $2`
	_, err := r.db.ExecContext(ctx, query, userID, tourID)
	return err
}
