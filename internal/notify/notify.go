// Package notify turns reminder triggers into notifications and hands
// them to a registrar.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/pathwise/pathwise/internal/planner"
	"github.com/pathwise/pathwise/internal/profile"
)

// Notification is a weekly recurring reminder ready for delivery.
type Notification struct {
	Trigger planner.NotificationTrigger
	Title   string
	Body    string
}

// Registrar is the delivery backend. Registrations replace each other
// wholesale: Sync always cancels before it registers.
type Registrar interface {
	CancelAll(ctx context.Context) error
	Register(ctx context.Context, n Notification) error
}

// Replacer is implemented by registrars that can swap the whole set of
// registrations at once. Sync prefers it so a failure never leaves a
// partial set behind.
type Replacer interface {
	Replace(ctx context.Context, ns []Notification) error
}

// Build renders the notification for one trigger.
func Build(t planner.NotificationTrigger, domainName string, lead time.Duration) Notification {
	if domainName == "" {
		domainName = "tech"
	}
	n := Notification{Trigger: t}
	switch t.Role {
	case planner.RolePreSession:
		n.Title = "Study Session Starting Soon"
		n.Body = fmt.Sprintf("Your %s study session starts in %s", domainName, formatLead(lead))
	default:
		n.Title = "Study Time!"
		n.Body = fmt.Sprintf("Time to work on your %s skills", domainName)
	}
	return n
}

// Sync replaces every registered reminder with one notification per
// trigger. An empty trigger list leaves nothing registered. Registrars
// that implement Replacer get the whole set in a single call.
func Sync(ctx context.Context, r Registrar, triggers []planner.NotificationTrigger, domainName string, lead time.Duration) error {
	ns := make([]Notification, 0, len(triggers))
	for _, t := range triggers {
		ns = append(ns, Build(t, domainName, lead))
	}
	if rep, ok := r.(Replacer); ok {
		if err := rep.Replace(ctx, ns); err != nil {
			return fmt.Errorf("replace reminders: %w", err)
		}
		return nil
	}

	if err := r.CancelAll(ctx); err != nil {
		return fmt.Errorf("cancel reminders: %w", err)
	}
	for _, n := range ns {
		if err := r.Register(ctx, n); err != nil {
			return fmt.Errorf("register %s: %w", n.Trigger, err)
		}
	}
	return nil
}

// Reschedule expands the profile's study schedule and syncs the result.
// A profile without a schedule clears every reminder.
func Reschedule(ctx context.Context, r Registrar, exp *planner.Expander, p *profile.Profile, now time.Time) ([]planner.NotificationTrigger, error) {
	var triggers []planner.NotificationTrigger
	if p.Schedule != nil {
		triggers = exp.Expand(*p.Schedule, now)
	}
	var name string
	if p.Domain.Valid() {
		name = p.Domain.DisplayName()
	}
	if err := Sync(ctx, r, triggers, name, exp.Config().LeadTime); err != nil {
		return nil, err
	}
	return triggers, nil
}

func formatLead(d time.Duration) string {
	m := int(d / time.Minute)
	switch {
	case m == 1:
		return "1 minute"
	case m < 60 || m%60 != 0:
		return fmt.Sprintf("%d minutes", m)
	case m == 60:
		return "1 hour"
	default:
		return fmt.Sprintf("%d hours", m/60)
	}
}
