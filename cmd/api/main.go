package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/schedule-service/internal/api/http"
	"github.com/spec-kit/schedule-service/internal/api/http/handlers"
	"github.com/spec-kit/schedule-service/internal/auth"
	"github.com/spec-kit/schedule-service/internal/config"
	"github.com/spec-kit/schedule-service/internal/events"
	"github.com/spec-kit/schedule-service/internal/observability"
	"github.com/spec-kit/schedule-service/internal/persistence"
	"github.com/spec-kit/schedule-service/internal/repository"
	"github.com/spec-kit/schedule-service/internal/repository/memory"
	"github.com/spec-kit/schedule-service/internal/seed"
	"github.com/spec-kit/schedule-service/internal/service"
	"github.com/spec-kit/schedule-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App.Name)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	health := map[string]handlers.Pinger{}

	var (
		repos repository.Set
		pg    *persistence.Postgres
	)
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pg, err = persistence.NewPostgres(ctx, cfg.Postgres, logger)
		if err != nil {
			logger.Fatal("failed to connect postgres", zap.Error(err))
		}
		defer pg.Close()

		if cfg.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
				logger.Fatal("failed to run migrations", zap.Error(err))
			}
		}
		repos = repository.NewPostgresSet(pg.PoolHandle())
		health["postgres"] = pg
	default:
		repos = memory.NewSet()
	}

	switch cfg.AvailabilityBackend() {
	case config.DriverRedis:
		redis, err := persistence.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Fatal("failed to connect redis", zap.Error(err))
		}
		defer redis.Close()
		repos.Availability = repository.NewRedisAvailabilityRepository(redis.Client)
		health["redis"] = redis
	case config.DriverPostgres:
		if pg == nil {
			logger.Fatal("postgres availability backend requires STORAGE_DRIVER=postgres")
		}
		repos.Availability = repository.NewPostgresAvailabilityRepository(pg.PoolHandle())
	case config.DriverMemory:
		repos.Availability = memory.NewAvailabilityStore()
	}

	if cfg.Storage.SeedFile != "" {
		if err := seed.LoadFile(ctx, cfg.Storage.SeedFile, repos, cfg.Auth.BcryptCost, logger); err != nil {
			logger.Fatal("failed to load seed", zap.Error(err))
		}
	}

	metrics := observability.NewMetrics()
	bus := events.NewInMemoryBus(logger)

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:    repos.Users,
		StafferRepo: repos.Staffers,
	})
	teamService := service.NewTeamService(service.TeamDependencies{
		TeamRepo:    repos.Team,
		StafferRepo: repos.Staffers,
	})
	availabilityService := service.NewAvailabilityService(service.AvailabilityDependencies{
		AvailabilityRepo: repos.Availability,
		RequestRepo:      repos.Requests,
		Bus:              bus,
	})
	requestService := service.NewRequestService(service.RequestDependencies{
		RequestRepo: repos.Requests,
		Gate:        availabilityService,
		Bus:         bus,
	})
	assignmentService := service.NewAssignmentService(service.AssignmentDependencies{
		AssignmentRepo: repos.Assignments,
		InvitationRepo: repos.Invitations,
		RequestRepo:    repos.Requests,
		Bus:            bus,
		Observer:       metrics,
	})
	calendarService := service.NewCalendarService(service.CalendarDependencies{
		EventRepo:      repos.Events,
		AssignmentRepo: repos.Assignments,
		RequestRepo:    repos.Requests,
		Team:           teamService,
	})
	eventService := service.NewEventService(service.EventDependencies{
		EventRepo:   repos.Events,
		StafferRepo: repos.Staffers,
		Bus:         bus,
	})
	notificationService := service.NewNotificationService(bus, logger, cfg.Notification)

	stopNotifications := worker.StartNotificationWorker(notificationService, bus, metrics)
	defer stopNotifications()

	if cfg.Reminder.Enabled {
		reminders := service.NewReminderService(repos.Assignments, notificationService, cfg.Reminder.Lookahead(), nil)
		reminderWorker, err := worker.NewReminderWorker(cfg.Reminder.Cron, reminders, logger)
		if err != nil {
			logger.Fatal("failed to schedule reminders", zap.Error(err))
		}
		reminderWorker.Start()
		defer reminderWorker.Stop()
	}

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), authService)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, health),
		Auth:           handlers.NewAuthHandler(authService),
		Staffers:       handlers.NewStaffersHandler(service.NewStafferService(repos.Staffers)),
		Team:           handlers.NewTeamHandler(teamService),
		Requests:       handlers.NewRequestsHandler(requestService, assignmentService),
		Availability:   handlers.NewAvailabilityHandler(availabilityService),
		Assignments:    handlers.NewAssignmentsHandler(assignmentService),
		Calendar:       handlers.NewCalendarHandler(calendarService, service.NewReportService(repos.Assignments), eventService),
		Metrics:        metrics,
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
