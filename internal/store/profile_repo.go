package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/pathwise/pathwise/internal/profile"
)

// ProfileRepo stores the profile document as a single JSON row.
type ProfileRepo struct {
	db *sql.DB
}

var _ profile.Repo = (*ProfileRepo)(nil)

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func loadProfile(ctx context.Context, q querier) (*profile.Profile, error) {
	query, args := builder.Select("data").
		From(entsql.Table(tableProfile)).
		Where(entsql.EQ("id", 1)).
		Query()

	var data string
	err := q.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return &profile.Profile{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return profile.Decode([]byte(data))
}

func (r *ProfileRepo) Load(ctx context.Context) (*profile.Profile, error) {
	return loadProfile(ctx, r.db)
}

func (r *ProfileRepo) Update(ctx context.Context, fn func(*profile.Profile) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin profile update: %w", err)
	}
	defer tx.Rollback()

	p, err := loadProfile(ctx, tx)
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}

	data, err := profile.Encode(p)
	if err != nil {
		return err
	}
	query, args := builder.Insert(tableProfile).
		Columns("id", "data", "updated_at").
		Values(1, string(data), time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("id"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return tx.Commit()
}

func (r *ProfileRepo) Reset(ctx context.Context) error {
	query, args := builder.Delete(tableProfile).Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("reset profile: %w", err)
	}
	return nil
}
