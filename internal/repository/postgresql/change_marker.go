package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type changeMarkerRepository struct {
	db *database.DB
}

func NewChangeMarkerRepository(db *database.DB) attendance.ChangeMarkerRepository {
	return &changeMarkerRepository{db: db}
}

// Bump implements attendance.ChangeMarkerRepository.
func (c *changeMarkerRepository) Bump(ctx context.Context, at time.Time) (int64, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO change_marker (id, changed_at_ms)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE
		SET changed_at_ms = GREATEST(change_marker.changed_at_ms + 1, EXCLUDED.changed_at_ms)
		RETURNING changed_at_ms
	`

	var marker int64
	if err := q.QueryRow(ctx, query, at.UnixMilli()).Scan(&marker); err != nil {
		return 0, fmt.Errorf("failed to bump change marker: %w", err)
	}

	return marker, nil
}

// Get implements attendance.ChangeMarkerRepository.
func (c *changeMarkerRepository) Get(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, c.db)

	var marker int64
	err := q.QueryRow(ctx, `SELECT changed_at_ms FROM change_marker WHERE id = 1`).Scan(&marker)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get change marker: %w", err)
	}

	return marker, nil
}
