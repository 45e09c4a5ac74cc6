package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/circulo-sport/courtdesk/events"
	"github.com/circulo-sport/courtdesk/store"
	"github.com/go-co-op/gocron/v2"
)

const DefaultRemindEveryDays = 7

type Settings struct {
	RemindEveryDays int        `json:"remindEveryDays"`
	LastBackupAt    *time.Time `json:"lastBackupAt,omitempty"`
}

// ShouldRemind is true when reminders are enabled and either no backup was
// ever taken or at least RemindEveryDays whole days passed since the last one.
func (s Settings) ShouldRemind(now time.Time) bool {
	if s.RemindEveryDays <= 0 {
		return false
	}

	if s.LastBackupAt == nil {
		return true
	}

	days := int(now.Sub(*s.LastBackupAt) / (24 * time.Hour))

	return days >= s.RemindEveryDays
}

func (s *Service) Settings(ctx context.Context) (Settings, error) {
	settings := Settings{RemindEveryDays: DefaultRemindEveryDays}
	raw, err := s.kv.Get(ctx, s.keys.BackupSettings)

	if errors.Is(err, store.ErrNotFound) {
		return settings, nil
	}

	if err != nil {
		return Settings{}, fmt.Errorf("failed to read backup settings: %w", err)
	}

	if err := json.Unmarshal(raw, &settings); err != nil {
		s.logger.Warn("using default backup settings", "err", err)
		return Settings{RemindEveryDays: DefaultRemindEveryDays}, nil
	}

	return settings, nil
}

// SetRemindEveryDays changes the reminder period; 0 disables reminders.
func (s *Service) SetRemindEveryDays(ctx context.Context, days int) (Settings, error) {
	if days < 0 {
		return Settings{}, fmt.Errorf("%w: remindEveryDays cannot be negative", ErrInvalidSettings)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.Settings(ctx)

	if err != nil {
		return Settings{}, err
	}

	settings.RemindEveryDays = days

	return settings, s.saveSettings(ctx, settings)
}

func (s *Service) markBackup(ctx context.Context, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings, err := s.Settings(ctx)

	if err != nil {
		return err
	}

	settings.LastBackupAt = &at

	return s.saveSettings(ctx, settings)
}

func (s *Service) saveSettings(ctx context.Context, settings Settings) error {
	body, err := json.Marshal(settings)

	if err != nil {
		return fmt.Errorf("failed to encode backup settings: %w", err)
	}

	if err := s.kv.Set(ctx, s.keys.BackupSettings, body); err != nil {
		return fmt.Errorf("failed to save backup settings: %w", err)
	}

	return nil
}

// CheckReminder publishes a backup reminder when one is due.
func (s *Service) CheckReminder(ctx context.Context) (bool, error) {
	settings, err := s.Settings(ctx)

	if err != nil {
		return false, err
	}

	now := s.clock.Now()

	if !settings.ShouldRemind(now) {
		return false, nil
	}

	s.events.Publish(events.Event{Type: events.BackupReminder, At: now, Payload: settings})

	return true, nil
}

// ScheduleReminder checks the backup reminder every interval, starting now.
func ScheduleReminder(scheduler gocron.Scheduler, svc *Service, interval time.Duration) (gocron.Job, error) {
	job, err := scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if _, err := svc.CheckReminder(ctx); err != nil {
				svc.logger.Error("backup reminder check failed", "err", err)
			}
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithName("backup-reminder"),
	)

	if err != nil {
		return nil, fmt.Errorf("failed to schedule backup reminder: %w", err)
	}

	return job, nil
}
