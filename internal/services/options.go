package services

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/light-bringer/partner-profile-service/internal/app/partner/contracts"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/payload"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/queries/list_events"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/queries/list_history"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/repo"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/sessions"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/usecases/load_profile"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/usecases/save_profile"
	"github.com/light-bringer/partner-profile-service/internal/app/partner/validation"
	"github.com/light-bringer/partner-profile-service/internal/config"
	"github.com/light-bringer/partner-profile-service/internal/pkg/clock"
	"github.com/light-bringer/partner-profile-service/internal/pkg/committer"
	"github.com/light-bringer/partner-profile-service/internal/transport/grpc/profile"
	httphandler "github.com/light-bringer/partner-profile-service/internal/transport/http"
	"github.com/light-bringer/partner-profile-service/internal/transport/taskapi"
)

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	Registry       *sessions.Registry
	SessionHandler *profile.Handler
	HTTPHandler    *gin.Engine
	Metrics        *prometheus.Registry
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*ServiceOptions, error) {
	clk := clock.NewRealClock()

	// 1. Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	// 2. Remote task service, reads cached
	client := taskapi.NewClient(taskapi.Config{
		BaseURL: cfg.TaskAPI.BaseURL,
		Token:   cfg.TaskAPI.Token,
		Timeout: cfg.TaskAPI.Timeout,
	}, logger.Named("taskapi"))
	gateway, err := taskapi.NewCachedGateway(client, cfg.Cache.Size, cfg.Cache.TTL, clk)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile cache: %w", err)
	}

	// 3. Save options
	builder, err := payload.ForStrategy(cfg.Save.Strategy)
	if err != nil {
		return nil, err
	}
	saveOpts := []save_profile.Option{
		save_profile.WithCacheInvalidator(gateway),
		save_profile.WithMetrics(save_profile.MustNewMetrics(reg)),
	}
	if cfg.Save.Validate {
		saveOpts = append(saveOpts, save_profile.WithValidator(validation.New()))
	}

	opts := &ServiceOptions{Metrics: reg}
	routerCfg := httphandler.RouterConfig{
		Gatherer:       reg,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		Logger:         logger.Named("http"),
	}

	// 4. Save history in Spanner; interfaces stay nil when disabled
	var (
		snapshotRepo contracts.SnapshotRepository
		outboxRepo   contracts.OutboxRepository
		comm         contracts.Committer
	)
	if cfg.Spanner.HistoryEnabled {
		spannerClient, err := spanner.NewClient(ctx, cfg.Spanner.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to create Spanner client: %w", err)
		}
		opts.SpannerClient = spannerClient

		snapshotRepo = repo.NewSnapshotRepo(spannerClient)
		outboxRepo = repo.NewOutboxRepo(spannerClient)
		comm = committer.NewCommitter(spannerClient)

		routerCfg.History = list_history.NewQuery(repo.NewHistoryReadModel(spannerClient))
		routerCfg.Events = list_events.NewQuery(repo.NewEventsReadModel(spannerClient))
	}

	// 5. Use cases
	loadProfile := load_profile.NewInteractor(gateway, logger.Named("load_profile"))
	saveProfile := save_profile.NewInteractor(gateway, builder, snapshotRepo, outboxRepo, comm, clk,
		logger.Named("save_profile"), saveOpts...)

	// 6. Transports
	opts.Registry = sessions.NewRegistry(cfg.Sessions.IdleTimeout, clk, logger.Named("sessions"))
	opts.SessionHandler = profile.NewHandler(opts.Registry, loadProfile, saveProfile, logger.Named("grpc"))
	opts.HTTPHandler = httphandler.NewRouter(routerCfg)

	return opts, nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
