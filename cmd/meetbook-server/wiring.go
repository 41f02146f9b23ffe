package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/uptrace/bun"

	"meetbook/backend/internal/availability"
	"meetbook/backend/internal/calendarsync"
	"meetbook/backend/internal/calendarsync/google"
	"meetbook/backend/internal/config"
	"meetbook/backend/internal/domain"
	"meetbook/backend/internal/events"
	"meetbook/backend/internal/ical"
	"meetbook/backend/internal/service/intake"
	"meetbook/backend/internal/service/meetings"
	"meetbook/backend/internal/store"
	"meetbook/backend/internal/store/memory"
	"meetbook/backend/internal/store/postgres"
)

// app holds the assembled services and the resources to release on exit.
type app struct {
	meetings *meetings.Service
	intake   *intake.Service
	ready    func(ctx context.Context) error
	closers  []func() error
}

func (a *app) Close(log *slog.Logger) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Warn("close failed", slog.Any("err", err))
		}
	}
}

func openDatabase(ctx context.Context, cfg config.Config, log *slog.Logger) (*bun.DB, error) {
	log.Info("connecting to database", databaseLogArgs(cfg.DatabaseURL)...)
	db, err := postgres.Open(ctx, cfg.DatabaseURL, postgres.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
	})
	if err != nil {
		args := append([]any{slog.Any("err", err)}, databaseLogArgs(cfg.DatabaseURL)...)
		log.Error("database connection failed", args...)
		return nil, err
	}
	return db, nil
}

func buildApp(ctx context.Context, cfg config.Config, log *slog.Logger, migrate bool) (*app, error) {
	a := &app{}
	ok := false
	defer func() {
		if !ok {
			a.Close(log)
		}
	}()

	var (
		meetingRepo store.MeetingRepository
		leadRepo    store.LeadRepository
	)
	switch cfg.StoreDriver {
	case "memory":
		log.Warn("using in-memory store; bookings are lost on restart")
		meetingRepo = memory.NewMeetingStore()
		leadRepo = memory.NewLeadStore()
	default:
		db, err := openDatabase(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error { return postgres.Close(db) })
		a.ready = func(ctx context.Context) error { return postgres.Ping(ctx, db) }
		if migrate {
			if err := runMigrations(ctx, db, log); err != nil {
				return nil, err
			}
		}
		meetingRepo = postgres.NewMeetingRepo(db)
		leadRepo = postgres.NewLeadRepo(db)
	}

	hours, err := buildHours(cfg.Schedule)
	if err != nil {
		return nil, err
	}
	calOpts := []availability.Option{}
	if cfg.Schedule.BlackoutICSURL != "" {
		feed := ical.NewFeed(cfg.Schedule.BlackoutICSURL, cfg.Schedule.Location, cfg.Schedule.BlackoutRefresh,
			&http.Client{Timeout: 10 * time.Second}, log)
		calOpts = append(calOpts, availability.WithBlackouts(feed))
	}
	calendar := availability.NewCalendar(hours, cfg.Schedule.HorizonDays, meetingRepo, calOpts...)

	opts := []meetings.Option{
		meetings.WithLogger(log),
		meetings.WithDefaultDuration(int(cfg.Schedule.DefaultDuration / time.Minute)),
	}

	syncer, err := buildSyncer(ctx, cfg.Calendar, log)
	if err != nil {
		return nil, err
	}
	if syncer != nil {
		opts = append(opts, meetings.WithSyncer(syncer))
	} else {
		log.Info("calendar sync disabled; bookings confirm without a remote event")
	}

	if cfg.AMQPURL != "" {
		pub := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, log)
		a.closers = append(a.closers, pub.Close)
		opts = append(opts, meetings.WithPublisher(pub))
	}

	a.meetings = meetings.NewService(meetingRepo, calendar, opts...)
	a.intake = intake.NewService(leadRepo, log)
	ok = true
	return a, nil
}

func buildHours(cfg config.ScheduleConfig) (domain.BusinessHours, error) {
	hours, err := domain.NewBusinessHours(cfg.Location, int(cfg.Granularity/time.Minute))
	if err != nil {
		return domain.BusinessHours{}, err
	}
	open, err := domain.ParseTimeOfDay(cfg.Open)
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("schedule.open: %w", err)
	}
	closeAt, err := domain.ParseTimeOfDay(cfg.Close)
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("schedule.close: %w", err)
	}
	days, err := domain.ParseWeekdays(cfg.Weekdays)
	if err != nil {
		return domain.BusinessHours{}, fmt.Errorf("schedule.weekdays: %w", err)
	}
	if err := hours.Open(open, closeAt, days...); err != nil {
		return domain.BusinessHours{}, err
	}
	return hours, nil
}

func buildSyncer(ctx context.Context, cfg config.CalendarConfig, log *slog.Logger) (*calendarsync.Syncer, error) {
	if cfg.Provider != "google" {
		return nil, nil
	}
	client, err := google.New(ctx, google.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RefreshToken: cfg.Google.RefreshToken,
		CalendarID:   cfg.Google.CalendarID,
	})
	if err != nil {
		return nil, fmt.Errorf("google calendar: %w", err)
	}
	return calendarsync.NewSyncer(client, calendarsync.RetryPolicy{
		Attempts:       cfg.Attempts,
		AttemptTimeout: cfg.AttemptTimeout,
		InitialBackoff: cfg.InitialBackoff,
		MaxBackoff:     cfg.MaxBackoff,
	}, log), nil
}

func runMigrations(ctx context.Context, db *bun.DB, log *slog.Logger) error {
	applied, err := postgres.Migrate(ctx, db)
	if err != nil {
		log.Error("migrations failed", slog.Any("err", err))
		return err
	}
	if len(applied) == 0 {
		log.Info("database schema up to date")
		return nil
	}
	log.Info("migrations applied", slog.Any("versions", applied))
	return nil
}

var errMemoryStore = errors.New("store.driver is memory; nothing to migrate")
