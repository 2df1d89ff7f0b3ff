package bootstrap

import (
	"context"
	"log/slog"

	"seatslabs/internal/infra/notifier"
	"seatslabs/internal/infra/readstore"
	"seatslabs/internal/infra/repository"
	"seatslabs/internal/pkg/clock"
	"seatslabs/internal/pkg/config"
	"seatslabs/internal/usecase/reminder"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var ReminderModule = fx.Module("reminder",
	fx.Provide(
		fx.Annotate(
			notifier.NewConsoleEmailSender,
			fx.As(new(reminder.EmailSender)),
		),
		fx.Annotate(
			notifier.NewConsoleSMSSender,
			fx.As(new(reminder.SMSSender)),
		),
		NewReminderJob,
	),
	fx.Invoke(registerReminderJob),
)

func NewReminderJob(pool *pgxpool.Pool, email reminder.EmailSender, sms reminder.SMSSender, clk clock.Clock, cfg config.Config) *reminder.Job {
	return reminder.NewJob(
		readstore.NewReminderReadStore(pool),
		email,
		sms,
		repository.NewNotificationRepository(pool),
		clk,
		cfg.Reminder.Interval,
	)
}

func registerReminderJob(lc fx.Lifecycle, job *reminder.Job, cfg config.Config) {
	if !cfg.Reminder.Enabled {
		slog.Info("reminder job disabled")
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			job.Start()
			slog.Info("reminder job started", "interval", cfg.Reminder.Interval.String())
			return nil
		},
		OnStop: func(_ context.Context) error {
			job.Stop()
			slog.Info("reminder job stopped")
			return nil
		},
	})
}
