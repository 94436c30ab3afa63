package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hcstudio/cashtrack/internal/domain"
	"github.com/hcstudio/cashtrack/internal/usecase"
)

// ScopeRepository implements usecase.ScopeRepository. The scope row is the
// serialization point for its movement sequence: EnsureAndLock holds it
// FOR UPDATE until the surrounding transaction ends.
type ScopeRepository struct {
	pool *pgxpool.Pool
}

// NewScopeRepository creates a new ScopeRepository.
func NewScopeRepository(pool *pgxpool.Pool) *ScopeRepository {
	return &ScopeRepository{pool: pool}
}

// EnsureAndLock creates the scope row if it does not exist yet and locks it.
func (r *ScopeRepository) EnsureAndLock(ctx context.Context, tx usecase.Transaction, name string) (*domain.Scope, error) {
	pgxTx := tx.(*Tx).PgxTx()

	now := time.Now().UTC()
	_, err := pgxTx.Exec(ctx, `
		INSERT INTO scopes (name, last_sequence, created_at, updated_at)
		VALUES ($1, 0, $2, $2)
		ON CONFLICT (name) DO NOTHING`,
		name, timeToPgTimestamptz(now),
	)
	if err != nil {
		return nil, err
	}

	row := pgxTx.QueryRow(ctx, `
		SELECT name, last_sequence, created_at, updated_at
		FROM scopes
		WHERE name = $1
		FOR UPDATE`,
		name,
	)

	var scope domain.Scope
	if err := row.Scan(&scope.Name, &scope.LastSequence, &scope.CreatedAt, &scope.UpdatedAt); err != nil {
		return nil, err
	}

	return &scope, nil
}

// UpdateSequence advances the scope's sequence high-water mark.
func (r *ScopeRepository) UpdateSequence(ctx context.Context, tx usecase.Transaction, name string, lastSequence int64, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	tag, err := pgxTx.Exec(ctx, `
		UPDATE scopes
		SET last_sequence = $2, updated_at = $3
		WHERE name = $1`,
		name, lastSequence, timeToPgTimestamptz(updatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrScopeNotFound
	}

	return nil
}

// List lists all known scopes by name.
func (r *ScopeRepository) List(ctx context.Context) ([]*domain.Scope, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT name, last_sequence, created_at, updated_at
		FROM scopes
		ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scopes []*domain.Scope
	for rows.Next() {
		var scope domain.Scope
		if err := rows.Scan(&scope.Name, &scope.LastSequence, &scope.CreatedAt, &scope.UpdatedAt); err != nil {
			return nil, err
		}
		scopes = append(scopes, &scope)
	}

	return scopes, rows.Err()
}
