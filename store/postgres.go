package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores collections in "courtdesk".collections. Values are kept as
// text so that a stored blob reads back byte for byte.
type Postgres struct{ pool *pgxpool.Pool }

func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	sql := `SELECT value FROM "courtdesk".collections WHERE key=$1;`

	var value string
	err := p.pool.QueryRow(ctx, sql, key).Scan(&value)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to fetch key '%v': %w", key, err)
	}

	return []byte(value), nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	sql := `
			INSERT INTO "courtdesk".collections(key, value, "updatedAt")
			VALUES ($1, $2, now())
			ON CONFLICT (key) DO UPDATE SET value=EXCLUDED.value, "updatedAt"=EXCLUDED."updatedAt";
		`

	_, err := p.pool.Exec(ctx, sql, key, string(value))

	if err != nil {
		return fmt.Errorf("failed to write key '%v': %w", key, err)
	}

	return nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	sql := `DELETE FROM "courtdesk".collections WHERE key=$1;`

	_, err := p.pool.Exec(ctx, sql, key)

	if err != nil {
		return fmt.Errorf("failed to delete key '%v': %w", key, err)
	}

	return nil
}

func (p *Postgres) Keys(ctx context.Context, prefix string) ([]string, error) {
	sql := `
            SELECT key FROM "courtdesk".collections
            WHERE starts_with(key, $1)
            ORDER BY key;
        `

	rows, err := p.pool.Query(ctx, sql, prefix)

	if err != nil {
		return nil, fmt.Errorf("failed to list keys with prefix '%v': %w", prefix, err)
	}

	defer rows.Close()

	keys := []string{}

	for rows.Next() {
		var key string

		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("error scanning key row: %w", err)
		}

		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating key rows: %w", err)
	}

	return keys, nil
}
