package otps

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, otp *models.Otp) (*models.Otp, error)
	// Consume atomically marks the matching unused, unexpired code as used.
	// Returns common.ErrorNotFound when no such code exists, which makes
	// concurrent verification attempts of one code succeed at most once.
	Consume(ctx context.Context, userID string, code string, now time.Time) error
	// InvalidateActive marks every unused, unexpired code of the user as
	// used and reports how many were invalidated.
	InvalidateActive(ctx context.Context, userID string, now time.Time) (int64, error)
}
