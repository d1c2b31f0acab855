package tour

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Repository defines catalog data access
type Repository interface {
	List(ctx context.Context) ([]*TourPackage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*TourPackage, error)
}

type repository struct {
	db *sqlx.DB
}

// NewRepository creates tour repository
func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]*TourPackage, error) {
	query := `
		SELECT
			id, title, description, duration_label, rating, created_at,
			price, tags, destinations, itinerary, booking_slots
		FROM tours
		ORDER BY created_at DESC
	`
	var tours []*TourPackage
	if err := r.db.SelectContext(ctx, &tours, query); err != nil {
		return nil, err
	}
	for _, t := range tours {
		t.ParseJSONB()
	}
	return tours, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*TourPackage, error) {
	query := `
		SELECT
			id, title, description, duration_label, rating, created_at,
			price, tags, destinations, itinerary, booking_slots
		FROM tours
		WHERE id = $1
	`
	var t TourPackage
	err := r.db.GetContext(ctx, &t, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	t.ParseJSONB()
	return &t, nil
}
