// internal/infra/database/postgres_delivery_repository.go
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"homework_status_bot/internal/domain/notification"
)

const deliveriesSchema = `CREATE TABLE IF NOT EXISTS notification_deliveries (
    id         BIGSERIAL PRIMARY KEY,
    chat_id    TEXT        NOT NULL,
    cycle_id   TEXT        NOT NULL DEFAULT '',
    message    TEXT        NOT NULL,
    status     TEXT        NOT NULL CHECK (status IN ('SENT', 'FAILED')),
    error      TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

type PostgresDeliveryRepository struct {
	db *sql.DB
}

func NewPostgresDeliveryRepository(db *sql.DB) *PostgresDeliveryRepository {
	return &PostgresDeliveryRepository{db: db}
}

// EnsureSchema creates the deliveries table when it does not exist yet.
func (r *PostgresDeliveryRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deliveriesSchema); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			return fmt.Errorf("error creating notification_deliveries table (code %s): %w", pqErr.Code, err)
		}
		return fmt.Errorf("error creating notification_deliveries table: %w", err)
	}
	return nil
}

func (r *PostgresDeliveryRepository) CreateDelivery(ctx context.Context, d *notification.Delivery) error {
	query := `INSERT INTO notification_deliveries (chat_id, cycle_id, message, status, error)
               VALUES ($1, $2, $3, $4, $5)
               RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, d.ChatID, d.CycleID, d.Message, d.Status, d.Error).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating notification delivery: %w", err)
	}
	return nil
}

// CountByStatus returns the number of journal rows with the given status.
func (r *PostgresDeliveryRepository) CountByStatus(ctx context.Context, status notification.DeliveryStatus) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notification_deliveries WHERE status = $1`, status).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("error counting notification deliveries: %w", err)
	}
	return n, nil
}
