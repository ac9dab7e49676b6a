package repository

import (
	"context"
	"errors"
	"fmt"

	"bakery-storefront/internal/domains/cart/model"
	"bakery-storefront/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository stores snapshots in cart_snapshots (see migrations/).
type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) Load(ctx context.Context, key string) (*model.Cart, error) {
	const query = `SELECT payload FROM cart_snapshots WHERE storage_key = $1`

	var raw []byte
	err := r.pool.QueryRow(ctx, query, key).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cart %s: %w", key, err)
	}

	cart, err := Decode(raw)
	if err != nil {
		logger.Warn("Discarding unreadable cart snapshot", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return model.NewCart(), nil
	}
	return cart, nil
}

func (r *PostgresRepository) Save(ctx context.Context, key string, cart *model.Cart) error {
	const query = `
		INSERT INTO cart_snapshots (storage_key, payload, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (storage_key)
		DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`

	raw, err := Encode(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart %s: %w", key, err)
	}

	if _, err := r.pool.Exec(ctx, query, key, raw); err != nil {
		return fmt.Errorf("failed to write cart %s: %w", key, err)
	}
	return nil
}
