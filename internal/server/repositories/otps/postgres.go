package otps

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, otp *models.Otp) (*models.Otp, error) {

	query :=
		`INSERT INTO otps (id, user_id, code, expires_at)
         VALUES ($1, $2, $3, $4)
		 RETURNING created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		otp.ID, otp.UserID, otp.Code, otp.ExpiresAt).Scan(&otp.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return otp, nil
}

func (r *PostgresRepository) Consume(ctx context.Context, userID string, code string, now time.Time) error {
	query :=
		`UPDATE otps SET is_used = true
		 WHERE user_id = $1 AND code = $2 AND is_used = false AND expires_at > $3
		 `

	res, err := r.db.ExecContext(ctx, query, userID, code, now)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) InvalidateActive(ctx context.Context, userID string, now time.Time) (int64, error) {
	query :=
		`UPDATE otps SET is_used = true
		 WHERE user_id = $1 AND is_used = false AND expires_at > $2
		 `

	res, err := r.db.ExecContext(ctx, query, userID, now)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return affected, nil
}
