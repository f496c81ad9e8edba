package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/pathwise/pathwise/internal/notify"
	"github.com/pathwise/pathwise/internal/planner"
)

// ReminderRepo records the reminders that would be handed to an OS
// scheduler.
type ReminderRepo struct {
	db *sql.DB
}

var (
	_ notify.Registrar = (*ReminderRepo)(nil)
	_ notify.Replacer  = (*ReminderRepo)(nil)
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *ReminderRepo) CancelAll(ctx context.Context) error {
	return cancelReminders(ctx, r.db)
}

func (r *ReminderRepo) Register(ctx context.Context, n notify.Notification) error {
	return insertReminder(ctx, r.db, n)
}

// Replace swaps the registered set for ns in one transaction. On error
// the previous registrations are left untouched.
func (r *ReminderRepo) Replace(ctx context.Context, ns []notify.Notification) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reminder replace: %w", err)
	}
	defer tx.Rollback()

	if err := cancelReminders(ctx, tx); err != nil {
		return err
	}
	for _, n := range ns {
		if err := insertReminder(ctx, tx, n); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func cancelReminders(ctx context.Context, e execer) error {
	query, args := builder.Delete(tableReminders).Query()
	if _, err := e.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("cancel reminders: %w", err)
	}
	return nil
}

func insertReminder(ctx context.Context, e execer, n notify.Notification) error {
	t := n.Trigger
	query, args := builder.Insert(tableReminders).
		Columns("weekday", "hour", "minute", "role", "title", "body", "created_at").
		Values(int(t.Weekday), t.Hour, t.Minute, string(t.Role), n.Title, n.Body, time.Now().UnixMilli()).
		Query()
	if _, err := e.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("register reminder: %w", err)
	}
	return nil
}

// List returns registered reminders in registration order.
func (r *ReminderRepo) List(ctx context.Context) ([]notify.Notification, error) {
	query, args := builder.Select("weekday", "hour", "minute", "role", "title", "body").
		From(entsql.Table(tableReminders)).
		OrderBy("id").
		Query()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	var out []notify.Notification
	for rows.Next() {
		var (
			n       notify.Notification
			weekday int
			role    string
		)
		if err := rows.Scan(&weekday, &n.Trigger.Hour, &n.Trigger.Minute, &role, &n.Title, &n.Body); err != nil {
			return nil, fmt.Errorf("scan reminder: %w", err)
		}
		n.Trigger.Weekday = time.Weekday(weekday)
		n.Trigger.Role = planner.Role(role)
		out = append(out, n)
	}
	return out, rows.Err()
}
